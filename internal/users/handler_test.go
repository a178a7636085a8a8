package users_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"brsr-backend/internal/bootstrap"
	"brsr-backend/internal/shared/config"
)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func postJSON(t *testing.T, app *bootstrap.App, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func TestSignupThenLogin(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/auth/signup", `{"email":"alice@example.com","password":"s3cret-pass","name":"Alice"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("signup: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var signedUp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&signedUp); err != nil {
		t.Fatalf("decode signup: %v", err)
	}
	if signedUp.TokenType != "bearer" || signedUp.AccessToken == "" {
		t.Fatalf("unexpected token payload: %+v", signedUp)
	}
	if signedUp.User.Email != "alice@example.com" || signedUp.User.Name != "Alice" {
		t.Fatalf("unexpected user payload: %+v", signedUp.User)
	}

	login := postJSON(t, app, "/auth/login", `{"email":"alice@example.com","password":"s3cret-pass"}`)
	if login.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", login.Code, login.Body.String())
	}

	// The issued token is accepted by the protected surface.
	var loggedIn struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(login.Body).Decode(&loggedIn); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	req.Header.Set("Authorization", "Bearer "+loggedIn.AccessToken)
	out := httptest.NewRecorder()
	app.Router.ServeHTTP(out, req)
	if out.Code != http.StatusOK {
		t.Fatalf("token rejected by protected route: %d", out.Code)
	}
}

func TestAuthEndpointStatusCodes(t *testing.T) {
	app := newTestApp(t)

	if resp := postJSON(t, app, "/auth/signup", `{"email":`); resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("malformed signup body: expected 422, got %d", resp.Code)
	}
	if resp := postJSON(t, app, "/auth/signup", `{"email":"nope","password":"short"}`); resp.Code != http.StatusBadRequest {
		t.Fatalf("invalid signup input: expected 400, got %d", resp.Code)
	}

	if resp := postJSON(t, app, "/auth/signup", `{"email":"bob@example.com","password":"s3cret-pass"}`); resp.Code != http.StatusOK {
		t.Fatalf("signup: expected 200, got %d", resp.Code)
	}
	if resp := postJSON(t, app, "/auth/signup", `{"email":"bob@example.com","password":"s3cret-pass"}`); resp.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup: expected 400, got %d", resp.Code)
	}

	if resp := postJSON(t, app, "/auth/login", `{"email":"bob@example.com","password":"wrong-pass"}`); resp.Code != http.StatusUnauthorized {
		t.Fatalf("bad credentials: expected 401, got %d", resp.Code)
	}
	if resp := postJSON(t, app, "/auth/login", `{"email":`); resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("malformed login body: expected 422, got %d", resp.Code)
	}
}
