// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/FeliCaldas/WeightTrackPro/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided CPF or password was
	// incorrect. Unknown CPF and wrong password are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid cpf or password")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
	// ErrSetupDone indicates the initial admin has already been created.
	ErrSetupDone = errors.New("users already exist")
)

// AuthService handles authentication and session management.
type AuthService struct {
	users      domain.UserRepository
	sessions   domain.SessionRepository
	sessionTTL time.Duration
}

// NewAuthService creates a new authentication service. ttl bounds the
// lifetime of sessions it mints; zero means 24 hours.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: ttl,
	}
}

// SessionTTL returns the configured session lifetime.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// Login authenticates a user by CPF and password and creates a session.
func (s *AuthService) Login(ctx context.Context, cpf, password string) (*domain.User, string, error) {
	user, err := s.users.GetByCPF(ctx, cpf)
	if err != nil || user == nil || !user.IsActive {
		return nil, "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginSSO creates a session for a user already authenticated by the
// identity provider. The email must belong to an existing active user;
// there is no auto-provisioning, user creation stays an admin action.
func (s *AuthService) LoginSSO(ctx context.Context, email string) (*domain.User, string, error) {
	if email == "" {
		return nil, "", ErrInvalidCredentials
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil || user == nil || !user.IsActive {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout invalidates a session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession resolves a session token to its user.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil || session == nil {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil || user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	return user, nil
}

// Setup creates the first user as an administrator. It only succeeds
// while the users table is empty.
func (s *AuthService) Setup(ctx context.Context, cpf, password, firstName, lastName string) (*domain.User, error) {
	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSetupDone
	}

	var fields []string
	if !validCPF(cpf) {
		fields = append(fields, "cpf")
	}
	if password == "" {
		fields = append(fields, "password")
	}
	if firstName == "" {
		fields = append(fields, "firstName")
	}
	if lastName == "" {
		fields = append(fields, "lastName")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &domain.User{
		CPF:          cpf,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		IsAdmin:      true,
		IsActive:     true,
	})
}

func (s *AuthService) createSession(ctx context.Context, userID int64) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	expiresAt := time.Now().Add(s.sessionTTL)
	if err := s.sessions.Create(ctx, userID, token, expiresAt); err != nil {
		return "", err
	}
	return token, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

func validCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
