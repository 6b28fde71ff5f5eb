package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/communitywatch/backend/internal/api/validate"
	"github.com/communitywatch/backend/internal/auth"
	"github.com/communitywatch/backend/internal/models"
	repo "github.com/communitywatch/backend/internal/repository"
)

type AuthService struct {
	users  repo.Users
	tokens *auth.TokenManager
}

func NewAuthService(users repo.Users, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type SignupInput struct {
	FullName        string
	Username        string
	Phone           string
	Email           string
	Location        string
	Password        string
	ConfirmPassword string
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) error {
	u := models.User{
		FullName: strings.TrimSpace(in.FullName),
		Username: strings.TrimSpace(in.Username),
		Phone:    strings.TrimSpace(in.Phone),
		Email:    strings.TrimSpace(in.Email),
		Location: strings.TrimSpace(in.Location),
	}
	errs, _ := u.Validate().(validate.Errs)
	if e := validate.Required("password", in.Password); e != nil {
		errs = append(errs, *e)
	}
	if len(errs) > 0 {
		return errs
	}
	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}

	// Pre-check keeps the conflict response specific; the unique indexes
	// remain the authoritative guard if a concurrent signup slips past it.
	_, err := s.users.FindByIdentity(ctx, u.Username, u.Email, u.Phone)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash

	if _, err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies the credentials and returns a signed bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repo.ErrNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return "", ErrInvalidCredentials
	}
	tok, err := s.tokens.Generate(u.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tok, nil
}
