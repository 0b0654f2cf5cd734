package service

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/repository"
)

var (
	ErrUserEmailExists    = repository.ErrUserEmailExists
	ErrUserNameExists     = repository.ErrUserNameExists
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", domain.ErrUnauthenticated)
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByName(ctx context.Context, name string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Register stores a new user with a hashed password. A taken name or email is
// reported as a validation failure on that field.
func (s *AuthService) Register(ctx context.Context, user domain.User) (domain.User, error) {
	taken := validation.Errors{}
	if err := s.checkTaken(ctx, "name", user.Name, s.repo.FindByName, taken); err != nil {
		return domain.User{}, err
	}
	if err := s.checkTaken(ctx, "email", user.Email, s.repo.FindByEmail, taken); err != nil {
		return domain.User{}, err
	}
	if len(taken) > 0 {
		return domain.User{}, taken
	}

	hashedPassword, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = hashedPassword

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNameExists):
			return domain.User{}, validation.Errors{"name": errTaken}
		case errors.Is(err, ErrUserEmailExists):
			return domain.User{}, validation.Errors{"email": errTaken}
		}

		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Verify returns the user named name when password matches its hash.
func (s *AuthService) Verify(ctx context.Context, name, password string) (domain.User, error) {
	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByName -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

var errTaken = errors.New("has already been taken")

func (s *AuthService) checkTaken(
	ctx context.Context,
	field, value string,
	find func(ctx context.Context, value string) (domain.User, error),
	taken validation.Errors,
) error {
	_, err := find(ctx, value)
	if err == nil {
		taken[field] = errTaken
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("find %s -> %w", field, err)
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	return string(hash), nil
}
