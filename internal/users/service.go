package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"brsr-backend/internal/shared/auth"
)

// ErrInvalidCredentials is returned when login fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidInput is returned for malformed signup input.
var ErrInvalidInput = errors.New("invalid input")

// Service contains signup/login logic and token issuance.
type Service struct {
	Repo   Repo
	Signer *auth.Signer
}

// NewService constructs a Service.
func NewService(repo Repo, signer *auth.Signer) *Service {
	return &Service{Repo: repo, Signer: signer}
}

// AuthResult carries a freshly issued token and its user.
type AuthResult struct {
	Token string
	User  User
}

// Signup registers a new account and returns a bearer token for it.
func (s *Service) Signup(ctx context.Context, email, password, fullName string) (AuthResult, error) {
	email = normalizeEmail(email)
	if !validEmail(email) || len(password) < 8 {
		return AuthResult{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(fullName),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}

	return s.issue(user)
}

// Login verifies credentials and returns a bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *Service) issue(user User) (AuthResult, error) {
	token, err := s.Signer.Sign(auth.Claims{
		Sub:   user.ID,
		Email: user.Email,
		Name:  user.FullName,
	})
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: user}, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
