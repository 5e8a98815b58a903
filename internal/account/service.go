package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/secondchance/secondchance-backend/internal/password"
	"github.com/secondchance/secondchance-backend/internal/token"
)

// Service implements the registration, login and profile-update use cases.
type Service struct {
	repo   Repository
	hasher password.Hasher
	tokens *token.Issuer
}

// NewService creates an account service.
func NewService(repo Repository, hasher password.Hasher, tokens *token.Issuer) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// RegisterInput carries a registration request.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// RegisterResult is returned on successful registration.
type RegisterResult struct {
	Token string
	Email string
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Token     string
	FirstName string
	Email     string
}

// Register creates a new account. The email must not already be registered;
// the check-then-insert pair is not atomic against a concurrent registration
// for the same email, which is the store contract this service inherits.
func (s *Service) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	_, err := s.repo.FindByEmail(ctx, in.Email)
	if err == nil {
		return RegisterResult{}, ErrDuplicateEmail
	}
	if !errors.Is(err, ErrNotFound) {
		return RegisterResult{}, fmt.Errorf("check existing account: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		return RegisterResult{}, err
	}

	signed, err := s.tokens.Issue(id.Hex())
	if err != nil {
		return RegisterResult{}, fmt.Errorf("issue token: %w", err)
	}

	return RegisterResult{Token: signed, Email: user.Email}, nil
}

// Login verifies credentials and issues a token for the account.
func (s *Service) Login(ctx context.Context, email, plainPassword string) (LoginResult, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}

	if !s.hasher.Verify(plainPassword, user.PasswordHash) {
		return LoginResult{}, ErrWrongPassword
	}

	signed, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	return LoginResult{Token: signed, FirstName: user.FirstName, Email: user.Email}, nil
}

// Update merges the provided changes onto the existing account keyed by
// email, stamps updatedAt and persists the whole merged record. It never
// creates an account and never changes the email. Returns a fresh token for
// the updated account.
func (s *Service) Update(ctx context.Context, email string, changes ProfileChanges) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if changes.FirstName != nil {
		user.FirstName = *changes.FirstName
	}
	if changes.LastName != nil {
		user.LastName = *changes.LastName
	}
	if changes.Password != nil {
		hash, err := s.hasher.Hash(*changes.Password)
		if err != nil {
			return "", fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	now := time.Now().UTC()
	user.UpdatedAt = &now

	merged, err := s.repo.Replace(ctx, user)
	if err != nil {
		return "", err
	}

	signed, err := s.tokens.Issue(merged.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return signed, nil
}

// Profile returns the account identified by a verified token claim.
func (s *Service) Profile(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}
