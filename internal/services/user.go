package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nazaaralive/internal/domain"
)

const tokenExpiry = 24 * time.Hour

type userService struct {
	userRepo       domain.UserRepository
	hasher         domain.PasswordHasher
	issuer         domain.TokenIssuer
	contextTimeout time.Duration
}

func NewUserService(userRepo domain.UserRepository, hasher domain.PasswordHasher, issuer domain.TokenIssuer, timeout time.Duration) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		hasher:         hasher,
		issuer:         issuer,
		contextTimeout: timeout,
	}
}

// Login authenticates an admin user and returns a signed token. Unknown
// emails and bad passwords both come back as ErrInvalidCredentials so the
// response does not leak which one failed.
func (s *userService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user by email: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Email, []string{user.Role}, tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
