package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/babuyoga/project-cost-dashboard/internal/database/model"
	"github.com/babuyoga/project-cost-dashboard/internal/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginUser is the identity reported back to the client after login.
type LoginUser struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	IsAdmin      bool   `json:"isAdmin"`
	IsFirstLogin bool   `json:"isFirstLogin"`
}

// LoginResult carries the identity plus the freshly issued session. The
// caller stores SessionID as an HTTP-only cookie expiring at ExpiresAt.
type LoginResult struct {
	User      LoginUser
	SessionID string
	ExpiresAt time.Time
}

// Login verifies the credentials and issues a new session. The disabled
// check runs before password comparison; every subsequent failure reason is
// indistinguishable from a wrong password.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return nil, Validation("Username and password are required")
	}
	if len(username) > maxCredentialLen || len(password) > maxCredentialLen {
		return nil, Validation("Username and password must be %d characters or less", maxCredentialLen)
	}

	user, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Enabled {
		return nil, ErrAccountDisabled
	}

	if err := util.CheckPasswordHash(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Capture the pre-clear value so the client learns this was the first
	// successful login.
	isFirstLogin := user.IsFirstLogin
	if isFirstLogin {
		if err := s.store.ClearFirstLogin(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	session := &model.Session{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(sessionTTL),
		LastSeenAt: now,
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return &LoginResult{
		User: LoginUser{
			ID:           user.ID,
			Username:     user.Username,
			IsAdmin:      user.IsAdmin,
			IsFirstLogin: isFirstLogin,
		},
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout discards the named session. Idempotent: a missing or already
// revoked session is still a successful logout.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	_, err := s.store.DeleteSession(ctx, sessionID)
	return err
}
