// Package auth implements the single-role admin login: bcrypt credentials
// and opaque session tokens stored server-side with an absolute expiry.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/enotalexnot/ztk-catalog/internal/models"
	"github.com/enotalexnot/ztk-catalog/internal/store"
)

// SessionTTL is the absolute session lifetime; there is no renewal.
const SessionTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no valid session")
)

type Service struct {
	store *store.Store
	now   func() time.Time
}

func NewService(s *store.Store) *Service {
	return &Service{store: s, now: time.Now}
}

// NewServiceAt injects a clock, for expiry tests.
func NewServiceAt(s *store.Store, now func() time.Time) *Service {
	return &Service{store: s, now: now}
}

func (a *Service) CreateAdmin(username, password string) (*models.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{Username: username, PasswordHash: string(hash)}
	if err := a.store.CreateAdmin(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Login verifies the password and issues a fresh session token.
func (a *Service) Login(username, password string) (*models.Admin, *models.Session, error) {
	admin, err := a.store.GetAdminByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	token, err := newToken()
	if err != nil {
		return nil, nil, err
	}
	session := &models.Session{
		Token:     token,
		AdminID:   admin.ID,
		ExpiresAt: a.now().Add(SessionTTL),
	}
	if err := a.store.CreateSession(session); err != nil {
		return nil, nil, err
	}
	return admin, session, nil
}

// Validate resolves a cookie token to its admin. An expired row is deleted
// on this first access after expiry and reported as absent.
func (a *Service) Validate(token string) (*models.Admin, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	session, err := a.store.GetSession(token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	if !a.now().Before(session.ExpiresAt) {
		_ = a.store.DeleteSession(token)
		return nil, ErrNoSession
	}
	admin, err := a.store.GetAdmin(session.AdminID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return admin, nil
}

func (a *Service) Logout(token string) error {
	if token == "" {
		return nil
	}
	return a.store.DeleteSession(token)
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
