package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ligaescolar/kings-api/internal/domain/user"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
)

type sessionIssuer interface {
	Issue(principal user.Principal) (string, error)
}

type AuthService struct {
	userRepo user.Repository
	sessions sessionIssuer
	logger   *logging.Logger
}

func NewAuthService(userRepo user.Repository, sessions sessionIssuer, logger *logging.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}
}

// Login verifies credentials and mints a session token. Unknown email and
// wrong password both map to ErrUnauthorized so the response does not leak
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (user.User, string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return user.User{}, "", fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return user.User{}, "", fmt.Errorf("get user by email: %w", err)
	}
	if !exists {
		return user.User{}, "", fmt.Errorf("%w: bad credentials", ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return user.User{}, "", fmt.Errorf("%w: bad credentials", ErrUnauthorized)
	}

	token, err := s.sessions.Issue(user.Principal{UserID: u.ID, Role: u.Role})
	if err != nil {
		return user.User{}, "", fmt.Errorf("issue session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", u.ID, "role", string(u.Role))

	return u, token, nil
}
