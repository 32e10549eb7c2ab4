package session

import (
	"testing"
	"time"

	"github.com/ligaescolar/kings-api/internal/domain/user"
)

func TestManager_IssueVerifyRoundtrip(t *testing.T) {
	mgr, err := NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	token, err := mgr.Issue(user.Principal{UserID: "user-1", Role: user.RolePresidente})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	principal, err := mgr.Verify(t.Context(), token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if principal.UserID != "user-1" {
		t.Fatalf("unexpected user id %s", principal.UserID)
	}
	if principal.Role != user.RolePresidente {
		t.Fatalf("unexpected role %s", principal.Role)
	}
}

func TestManager_VerifyRejectsGarbageAndExpired(t *testing.T) {
	mgr, err := NewManager("test-secret", time.Minute)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	if _, err := mgr.Verify(t.Context(), "not-a-token"); err == nil {
		t.Fatal("expected error for garbage token")
	}

	issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mgr.now = func() time.Time { return issuedAt }
	token, err := mgr.Issue(user.Principal{UserID: "user-1", Role: user.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	mgr.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	if _, err := mgr.Verify(t.Context(), token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestManager_VerifyRejectsWrongSecret(t *testing.T) {
	issuer, _ := NewManager("secret-a", time.Hour)
	verifier, _ := NewManager("secret-b", time.Hour)

	token, err := issuer.Issue(user.Principal{UserID: "user-1", Role: user.RoleAlumno})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := verifier.Verify(t.Context(), token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}
