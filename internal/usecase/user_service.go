package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ligaescolar/kings-api/internal/domain/user"
	"github.com/ligaescolar/kings-api/internal/platform/id"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UserService struct {
	userRepo user.Repository
	idGen    id.Generator
	logger   *logging.Logger
	now      func() time.Time
}

func NewUserService(userRepo user.Repository, idGen id.Generator, logger *logging.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		idGen:    idGen,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]user.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (user.User, error) {
	if strings.TrimSpace(userID) == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}

	return u, nil
}

func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.CreateUser")
	defer span.End()

	role, err := user.ParseRole(input.Role)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(input.Password) < 8 {
		return user.User{}, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, exists, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	} else if exists {
		return user.User{}, fmt.Errorf("%w: email already registered", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	u := user.User{
		ID:           userID,
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now().UTC(),
	}
	if err := u.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user created", "user_id", u.ID, "role", string(u.Role))

	return u, nil
}
