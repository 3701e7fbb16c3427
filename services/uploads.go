package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploads writes post attachments into a directory that is served
// publicly under /static/. Stored names are always server-generated;
// the client-supplied file name contributes at most a sanitized
// extension, so hostile names cannot traverse or overwrite anything.
type Uploads struct {
	dir string
}

func NewUploads(dir string) *Uploads {
	return &Uploads{dir: dir}
}

// Store writes the byte stream and returns the public reference path.
func (u *Uploads) Store(clientName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(u.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.NewString() + safeExt(clientName)

	out, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return "/static/" + name, nil
}

// safeExt keeps a short alphanumeric extension from the client name and
// drops everything else.
func safeExt(clientName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(clientName)))
	if len(ext) < 2 || len(ext) > 11 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
