package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"news-cms/internal/domain/entity"
	"news-cms/internal/repository"
)

// isConflict reports whether the store rejected a write on the active-username
// uniqueness constraint.
func isConflict(err error) bool {
	return errors.Is(err, entity.ErrConflict)
}

// TokenType is the fixed token-type label returned on login.
const TokenType = "Bearer"

// dummyPasswordHash is compared against on login when the username does not
// resolve to an active account, so that the unknown-user path costs one
// bcrypt verification just like the wrong-password path.
const dummyPasswordHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// bcryptKeyLimit is bcrypt's key length limit in bytes. Accepted passwords
// may be longer than this, so the key material is truncated to the limit on
// both hashing and verification. Only the first 72 bytes are significant.
const bcryptKeyLimit = 72

func passwordKey(password string) []byte {
	key := []byte(password)
	if len(key) > bcryptKeyLimit {
		key = key[:bcryptKeyLimit]
	}
	return key
}

// LoginResult is the response shape of a successful login.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // seconds
}

// Subject is the account identity returned by ResolveSubject.
type Subject struct {
	ID       string
	Username string
}

// Service implements the credential store: registration, login, and password
// change against bcrypt-hashed credentials, plus subject resolution for
// validated tokens. Token validation itself is on TokenIssuer and needs no
// store access.
type Service struct {
	Repo   repository.AdminRepository
	Tokens *TokenIssuer
	Cost   int // bcrypt cost factor
}

// Register creates a new active admin account.
// The existence check gives the common case a clean conflict error; the
// store's partial unique index is the actual enforcement for the
// check-then-insert race, surfacing a racing insert as ErrUsernameTaken too.
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	existing, err := s.Repo.GetActiveByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("lookup username: %w", err)
	}
	if existing != nil {
		return "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword(passwordKey(password), s.Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	created, err := s.Repo.Create(ctx, username, string(hash))
	if err != nil {
		if isConflict(err) {
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("create account: %w", err)
	}
	if created == nil {
		return "", ErrRegisterFailed
	}

	return "registration successful", nil
}

// Login verifies the credentials of an active account and issues a token.
// Unknown username and wrong password both fail with ErrInvalidCredentials,
// and both paths perform exactly one bcrypt comparison.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	admin, err := s.Repo.GetActiveByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup username: %w", err)
	}
	if admin == nil {
		// burn a hash verification so the two failure paths take
		// comparable time
		_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), passwordKey(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), passwordKey(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   TokenType,
		ExpiresIn:   int64(s.Tokens.TTL().Seconds()),
	}, nil
}

// ResolveSubject maps a validated token subject to an up-to-date account.
// Fails with ErrUserNotFound if the account was soft-deleted after the
// token was issued.
func (s *Service) ResolveSubject(ctx context.Context, adminID string) (*Subject, error) {
	admin, err := s.Repo.GetActiveByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("lookup subject: %w", err)
	}
	if admin == nil {
		return nil, ErrUserNotFound
	}
	return &Subject{ID: admin.ID, Username: admin.Username}, nil
}

// ChangePassword verifies the current password of an active account and
// replaces the stored hash.
func (s *Service) ChangePassword(ctx context.Context, adminID, oldPassword, newPassword string) error {
	admin, err := s.Repo.GetActiveByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("lookup subject: %w", err)
	}
	if admin == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), passwordKey(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword(passwordKey(newPassword), s.Cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	updated, err := s.Repo.UpdatePassword(ctx, adminID, string(hash))
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if updated == nil {
		// account vanished between the read and the conditional write
		return ErrUserNotFound
	}
	return nil
}
