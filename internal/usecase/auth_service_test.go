package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ligaescolar/kings-api/internal/domain/user"
	"github.com/ligaescolar/kings-api/internal/infrastructure/repository/memory"
)

type stubSessionIssuer struct{}

func (stubSessionIssuer) Issue(principal user.Principal) (string, error) {
	return "token-" + principal.UserID, nil
}

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("kings2026"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	userRepo := memory.NewUserRepository([]user.User{
		{ID: "u1", Name: "Diego", Email: "diego@test", PasswordHash: string(hash), Role: user.RolePresidente},
	})

	return NewAuthService(userRepo, stubSessionIssuer{}, testLogger())
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	service := newAuthFixture(t)

	u, token, err := service.Login(context.Background(), "diego@test", "kings2026")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.ID != "u1" || token != "token-u1" {
		t.Fatalf("login result = %s %s", u.ID, token)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	service := newAuthFixture(t)

	_, _, err := service.Login(context.Background(), "diego@test", "nope")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()

	service := newAuthFixture(t)

	_, _, err := service.Login(context.Background(), "nobody@test", "kings2026")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}
