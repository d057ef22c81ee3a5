package auth

import (
	"context"

	"github.com/babuyoga/project-cost-dashboard/internal/database/model"
)

// RevokeSession removes one session by id, any user's. Unlike logout this
// reports NotFound when nothing was deleted.
func (s *Service) RevokeSession(ctx context.Context, sessionID string) error {
	deleted, err := s.store.DeleteSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// InvalidateUserSessions force-logs-out the target user everywhere and
// reports how many sessions were removed. Zero is a valid outcome.
func (s *Service) InvalidateUserSessions(ctx context.Context, userID string) (int64, error) {
	return s.store.DeleteSessionsForUser(ctx, userID)
}

// ListSessions is read-only; it does not refresh last_seen_at of the rows it
// returns.
func (s *Service) ListSessions(ctx context.Context) ([]model.SessionInfo, error) {
	return s.store.ListSessions(ctx)
}
