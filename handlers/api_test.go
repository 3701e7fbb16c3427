package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"Plank/database"
	"Plank/services"
)

func newTestServer(t *testing.T) (http.Handler, *database.MemoryStore) {
	t.Helper()
	store := database.NewMemoryStore()
	uploads := services.NewUploads(t.TempDir())
	api := NewAPI(store, uploads)
	return api.Routes(), store
}

func doForm(t *testing.T, h http.Handler, method, path string, form url.Values, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if username != "" {
		req.SetBasicAuth(username, password)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func signup(t *testing.T, h http.Handler, username, password string) {
	t.Helper()
	w := doForm(t, h, http.MethodPost, "/signup",
		url.Values{"username": {username}, "password": {password}}, "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("signup %s: status %d body %s", username, w.Code, w.Body.String())
	}
}

func createPost(t *testing.T, h http.Handler, username, password, title, content, board string) int64 {
	t.Helper()
	w := doForm(t, h, http.MethodPost, "/posts",
		url.Values{"title": {title}, "content": {content}, "board": {board}},
		username, password)
	if w.Code != http.StatusOK {
		t.Fatalf("create post: status %d body %s", w.Code, w.Body.String())
	}
	return decode[idResponse](t, w).ID
}

func TestSignupValidation(t *testing.T) {
	h, _ := newTestServer(t)

	w := doForm(t, h, http.MethodPost, "/signup", url.Values{"username": {"alice"}}, "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing password: status %d, want 400", w.Code)
	}

	signup(t, h, "alice", "pw1")
	w = doForm(t, h, http.MethodPost, "/signup",
		url.Values{"username": {"alice"}, "password": {"other"}}, "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate username: status %d, want 400", w.Code)
	}
	if body := decode[errorBody](t, w); body.Detail != "Username already registered" {
		t.Fatalf("detail = %q", body.Detail)
	}
}

func TestLogin(t *testing.T) {
	h, _ := newTestServer(t)
	signup(t, h, "alice", "pw1")

	w := doForm(t, h, http.MethodPost, "/login", nil, "alice", "pw1")
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d", w.Code)
	}
	resp := decode[loginResponse](t, w)
	if !resp.Success || resp.User == nil || resp.User.Username != "alice" || resp.User.IsAdmin {
		t.Fatalf("login response = %+v", resp)
	}

	w = doForm(t, h, http.MethodPost, "/login", nil, "alice", "wrong")
	if w.Code != http.StatusOK {
		t.Fatalf("bad login: status %d", w.Code)
	}
	resp = decode[loginResponse](t, w)
	if resp.Success || resp.User != nil {
		t.Fatalf("bad login response = %+v", resp)
	}

	w = doForm(t, h, http.MethodPost, "/login", nil, "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("login without credentials: status %d, want 400", w.Code)
	}
}

func TestProtectedRoutesRequireCredentials(t *testing.T) {
	h, _ := newTestServer(t)
	signup(t, h, "alice", "pw1")

	w := doForm(t, h, http.MethodPost, "/posts",
		url.Values{"title": {"t"}, "content": {"c"}, "board": {"free"}}, "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no credentials: status %d, want 401", w.Code)
	}
	if got := w.Header().Get("WWW-Authenticate"); !strings.HasPrefix(got, "Basic") {
		t.Fatalf("WWW-Authenticate = %q", got)
	}

	w = doForm(t, h, http.MethodPost, "/posts",
		url.Values{"title": {"t"}, "content": {"c"}, "board": {"free"}}, "alice", "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: status %d, want 401", w.Code)
	}
}

func TestPostLifecycle(t *testing.T) {
	h, _ := newTestServer(t)
	signup(t, h, "alice", "pw1")

	id := createPost(t, h, "alice", "pw1", "Hi", "Hello", "free")

	// Board listing requires the board parameter.
	w := doForm(t, h, http.MethodGet, "/posts", nil, "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("list without board: status %d, want 400", w.Code)
	}

	w = doForm(t, h, http.MethodGet, "/posts?board=free", nil, "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	list := decode[[]postSummary](t, w)
	if len(list) != 1 || list[0].ID != id || list[0].Author != "alice" || list[0].Views != 0 {
		t.Fatalf("list = %+v", list)
	}

	// Detail reads bump the counter.
	for i := 0; i < 3; i++ {
		w = doForm(t, h, http.MethodGet, "/posts/1", nil, "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("get: status %d", w.Code)
		}
	}
	detail := decode[postDetail](t, w)
	if detail.Title != "Hi" || detail.Content != "Hello" || detail.Author != "alice" || detail.Image != nil {
		t.Fatalf("detail = %+v", detail)
	}

	w = doForm(t, h, http.MethodGet, "/posts?board=free", nil, "", "")
	list = decode[[]postSummary](t, w)
	if list[0].Views != 3 {
		t.Fatalf("views = %d, want 3", list[0].Views)
	}

	w = doForm(t, h, http.MethodGet, "/posts/999", nil, "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing post: status %d, want 404", w.Code)
	}
	w = doForm(t, h, http.MethodGet, "/posts/abc", nil, "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: status %d, want 400", w.Code)
	}
}

func TestCreatePostWithUpload(t *testing.T) {
	h, _ := newTestServer(t)
	signup(t, h, "alice", "pw1")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("title", "Hi")
	mw.WriteField("content", "Hello")
	mw.WriteField("board", "pics")
	fw, err := mw.CreateFormFile("file", "cat.png")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	fw.Write([]byte("pngbytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/posts", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetBasicAuth("alice", "pw1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("create with upload: status %d body %s", w.Code, w.Body.String())
	}
	id := decode[idResponse](t, w).ID

	w2 := doForm(t, h, http.MethodGet, "/posts/1", nil, "", "")
	detail := decode[postDetail](t, w2)
	if detail.ID != id || detail.Image == nil || !strings.HasPrefix(*detail.Image, "/static/") {
		t.Fatalf("detail = %+v", detail)
	}
}

// The full alice/bob walk-through from the board's contract.
func TestBoardScenario(t *testing.T) {
	h, _ := newTestServer(t)
	signup(t, h, "alice", "pw1")
	signup(t, h, "bob", "pw2")

	id := createPost(t, h, "alice", "pw1", "Hi", "Hello", "free")

	w := doForm(t, h, http.MethodPost, "/posts/1/comments",
		url.Values{"content": {"Nice!"}}, "bob", "pw2")
	if w.Code != http.StatusOK {
		t.Fatalf("comment: status %d body %s", w.Code, w.Body.String())
	}

	w = doForm(t, h, http.MethodGet, "/posts/1/comments", nil, "", "")
	comments := decode[[]commentOut](t, w)
	if len(comments) != 1 || comments[0].Author != "bob" || comments[0].Content != "Nice!" {
		t.Fatalf("comments = %+v", comments)
	}

	w = doForm(t, h, http.MethodDelete, "/posts/1", nil, "bob", "pw2")
	if w.Code != http.StatusForbidden {
		t.Fatalf("bob deleting alice's post: status %d, want 403", w.Code)
	}

	w = doForm(t, h, http.MethodDelete, "/posts/1", nil, "alice", "pw1")
	if w.Code != http.StatusOK {
		t.Fatalf("alice deleting own post: status %d", w.Code)
	}
	if resp := decode[successResponse](t, w); !resp.Success {
		t.Fatalf("delete response = %+v", resp)
	}

	w = doForm(t, h, http.MethodGet, "/posts/1/comments", nil, "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("comments of deleted post %d: status %d, want 404", id, w.Code)
	}
}

func TestCommentValidationAndDelete(t *testing.T) {
	h, _ := newTestServer(t)
	signup(t, h, "alice", "pw1")
	signup(t, h, "bob", "pw2")
	createPost(t, h, "alice", "pw1", "Hi", "Hello", "free")

	w := doForm(t, h, http.MethodPost, "/posts/1/comments", nil, "bob", "pw2")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty comment: status %d, want 400", w.Code)
	}

	w = doForm(t, h, http.MethodPost, "/posts/99/comments",
		url.Values{"content": {"hello?"}}, "bob", "pw2")
	if w.Code != http.StatusNotFound {
		t.Fatalf("comment on missing post: status %d, want 404", w.Code)
	}

	w = doForm(t, h, http.MethodPost, "/posts/1/comments",
		url.Values{"content": {"Nice!"}}, "bob", "pw2")
	commentID := decode[idResponse](t, w).ID

	w = doForm(t, h, http.MethodDelete, "/comments/1", nil, "alice", "pw1")
	if w.Code != http.StatusForbidden {
		t.Fatalf("alice deleting bob's comment %d: status %d, want 403", commentID, w.Code)
	}
	w = doForm(t, h, http.MethodDelete, "/comments/1", nil, "bob", "pw2")
	if w.Code != http.StatusOK {
		t.Fatalf("bob deleting own comment: status %d", w.Code)
	}
	w = doForm(t, h, http.MethodDelete, "/comments/1", nil, "bob", "pw2")
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleting deleted comment: status %d, want 404", w.Code)
	}
}

func TestAdminEndpoints(t *testing.T) {
	h, store := newTestServer(t)
	if err := services.EnsureAdmin(store, "admin", "admin"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	signup(t, h, "alice", "pw1")

	w := doForm(t, h, http.MethodGet, "/admin/users", nil, "alice", "pw1")
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-admin user list: status %d, want 403", w.Code)
	}

	w = doForm(t, h, http.MethodGet, "/admin/users", nil, "admin", "admin")
	if w.Code != http.StatusOK {
		t.Fatalf("admin user list: status %d", w.Code)
	}
	users := decode[[]userOut](t, w)
	if len(users) != 2 {
		t.Fatalf("users = %+v", users)
	}
	if users[0].Username != "admin" || !users[0].IsAdmin {
		t.Fatalf("first user = %+v, want the bootstrap admin", users[0])
	}

	w = doForm(t, h, http.MethodDelete, "/admin/users/99", nil, "admin", "admin")
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete missing user: status %d, want 404", w.Code)
	}

	aliceID := users[1].ID
	w = doForm(t, h, http.MethodDelete, "/admin/users/2", nil, "admin", "admin")
	if w.Code != http.StatusOK {
		t.Fatalf("delete user %d: status %d", aliceID, w.Code)
	}

	// Alice's credentials stop working immediately.
	w = doForm(t, h, http.MethodGet, "/admin/users", nil, "alice", "pw1")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("deleted user request: status %d, want 401", w.Code)
	}
}

func TestDeleteOwnAccount(t *testing.T) {
	h, _ := newTestServer(t)
	signup(t, h, "alice", "pw1")
	signup(t, h, "bob", "pw2")
	createPost(t, h, "alice", "pw1", "Hi", "Hello", "free")

	w := doForm(t, h, http.MethodDelete, "/users/me", nil, "alice", "pw1")
	if w.Code != http.StatusOK {
		t.Fatalf("delete me: status %d", w.Code)
	}

	// Her board posts are gone with her.
	w = doForm(t, h, http.MethodGet, "/posts?board=free", nil, "", "")
	if list := decode[[]postSummary](t, w); len(list) != 0 {
		t.Fatalf("posts after account deletion = %+v", list)
	}

	w = doForm(t, h, http.MethodDelete, "/users/me", nil, "alice", "pw1")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("repeat delete me: status %d, want 401", w.Code)
	}
}
