package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ligaescolar/kings-api/internal/domain/user"
	"github.com/ligaescolar/kings-api/internal/infrastructure/repository/memory"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
	"github.com/ligaescolar/kings-api/internal/platform/session"
	"github.com/ligaescolar/kings-api/internal/usecase"
)

func newAuthRouter(t *testing.T) http.Handler {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("kings2026"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	userRepo := memory.NewUserRepository([]user.User{
		{ID: "u-pres", Name: "Diego", Email: "diego@colegio.example", PasswordHash: string(hash), Role: user.RolePresidente},
	})

	sessions, err := session.NewManager("test-secret-test-secret-test!!", time.Hour)
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}

	logger := logging.NewNop()
	handler := NewHandler(Services{
		Auth:  usecase.NewAuthService(userRepo, sessions, logger),
		Users: usecase.NewUserService(userRepo, nil, logger),
	}, time.Hour, logger)

	return NewRouter(handler, sessions, logger, nil)
}

func TestLogin_SetsSessionCookieAndServesMe(t *testing.T) {
	router := newAuthRouter(t)

	loginReq := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"diego@colegio.example","password":"kings2026"}`))
	loginRec := httptest.NewRecorder()
	router.ServeHTTP(loginRec, loginReq)

	if loginRec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", loginRec.Code, loginRec.Body.String())
	}

	var sessionCookie *http.Cookie
	for _, c := range loginRec.Result().Cookies() {
		if c.Name == session.CookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil || sessionCookie.Value == "" {
		t.Fatal("login did not set the session cookie")
	}
	if !sessionCookie.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}

	meReq := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	meReq.AddCookie(sessionCookie)
	meRec := httptest.NewRecorder()
	router.ServeHTTP(meRec, meReq)

	if meRec.Code != http.StatusOK {
		t.Fatalf("me status = %d, body %s", meRec.Code, meRec.Body.String())
	}

	var me struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	}
	if err := json.Unmarshal(meRec.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me.ID != "u-pres" || me.Role != "presidente" {
		t.Fatalf("me = %+v", me)
	}
}

func TestLogin_BadPasswordIs401(t *testing.T) {
	router := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"diego@colegio.example","password":"wrong-password"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestMe_WithoutCookieIs401(t *testing.T) {
	router := newAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
