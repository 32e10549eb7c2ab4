package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ligaescolar/kings-api/internal/domain/user"
	"github.com/ligaescolar/kings-api/internal/platform/session"
	"github.com/ligaescolar/kings-api/internal/usecase"
)

type stubVerifier struct {
	principals map[string]user.Principal
}

func (v stubVerifier) Verify(_ context.Context, token string) (user.Principal, error) {
	p, ok := v.principals[token]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return p, nil
}

func newRoleFixture() (SessionVerifier, http.Handler) {
	verifier := stubVerifier{principals: map[string]user.Principal{
		"admin-token": {UserID: "u-admin", Role: user.RoleAdmin},
		"pres-token":  {UserID: "u-pres", Role: user.RolePresidente},
	}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("X-Principal", p.UserID)
		w.WriteHeader(http.StatusOK)
	})

	return verifier, next
}

func TestRequireRole_MissingCookie(t *testing.T) {
	verifier, next := newRoleFixture()
	handler := RequireRole(verifier, next, user.RoleAdmin)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transactions", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRole_InvalidToken(t *testing.T) {
	verifier, next := newRoleFixture()
	handler := RequireRole(verifier, next, user.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "forged"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRole_WrongRoleIs401(t *testing.T) {
	verifier, next := newRoleFixture()
	handler := RequireRole(verifier, next, user.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "pres-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// A disallowed role answers 401, the same as no session at all.
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRole_AllowedRoleInjectsPrincipal(t *testing.T) {
	verifier, next := newRoleFixture()
	handler := RequireRole(verifier, next, user.RoleAdmin, user.RolePresidente)

	req := httptest.NewRequest(http.MethodGet, "/api/transfers", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "pres-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("X-Principal"); got != "u-pres" {
		t.Fatalf("principal = %q, want u-pres", got)
	}
}

func TestRequireRole_NoRolesMeansAnyAuthenticated(t *testing.T) {
	verifier, next := newRoleFixture()
	handler := RequireRole(verifier, next)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "admin-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
