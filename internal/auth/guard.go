package auth

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Identity is the context every protected handler acts under.
type Identity struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Validate resolves a session identifier into an identity. Expired and
// orphaned sessions are deleted as a side effect (self-healing); sessions of
// a disabled user are kept and re-validate once the account is re-enabled.
// On success last_seen_at is refreshed.
func (s *Service) Validate(ctx context.Context, sessionID string) (Identity, error) {
	if sessionID == "" {
		return Identity{}, ErrUnauthorized
	}

	session, err := s.store.Session(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Identity{}, ErrUnauthorized
		}
		return Identity{}, err
	}

	now := time.Now()
	if session.ExpiresAt.Before(now) {
		if _, err := s.store.DeleteSession(ctx, sessionID); err != nil {
			return Identity{}, err
		}
		return Identity{}, ErrUnauthorized
	}

	user, err := s.store.UserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Owner deleted out-of-band; drop the dangling session.
			if _, err := s.store.DeleteSession(ctx, sessionID); err != nil {
				return Identity{}, err
			}
			return Identity{}, ErrUnauthorized
		}
		return Identity{}, err
	}

	if !user.Enabled {
		return Identity{}, ErrUnauthorized
	}

	if err := s.store.TouchSession(ctx, sessionID, now); err != nil {
		return Identity{}, err
	}

	return Identity{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}, nil
}

// ValidateAdmin applies Validate first, so an unauthenticated caller never
// learns whether admin rights would have been required.
func (s *Service) ValidateAdmin(ctx context.Context, sessionID string) (Identity, error) {
	identity, err := s.Validate(ctx, sessionID)
	if err != nil {
		return Identity{}, err
	}
	if !identity.IsAdmin {
		return Identity{}, ErrForbidden
	}
	return identity, nil
}
