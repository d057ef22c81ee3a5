package store

import (
	"context"
	"time"

	"github.com/babuyoga/project-cost-dashboard/internal/database/model"
)

func (s *Store) CreateSession(ctx context.Context, session *model.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *Store) Session(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := s.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession reports how many rows were removed; deleting an absent
// session is not an error here, callers decide whether zero matters.
func (s *Store) DeleteSession(ctx context.Context, id string) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&model.Session{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (s *Store) DeleteSessionsForUser(ctx context.Context, userID string) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&model.Session{}, "user_id = ?", userID)
	return res.RowsAffected, res.Error
}

func (s *Store) TouchSession(ctx context.Context, id string, at time.Time) error {
	return s.db.WithContext(ctx).Model(&model.Session{}).Where("id = ?", id).
		Update("last_seen_at", at).Error
}

// ListSessions returns every session joined with the owning username,
// newest-created first. Read-only; last_seen_at is not touched.
func (s *Store) ListSessions(ctx context.Context) ([]model.SessionInfo, error) {
	var sessions []model.SessionInfo
	err := s.db.WithContext(ctx).Model(&model.Session{}).
		Select("sessions.id, sessions.user_id, users.username, sessions.created_at, sessions.expires_at, sessions.last_seen_at").
		Joins("JOIN users ON users.id = sessions.user_id").
		Order("sessions.created_at DESC").
		Scan(&sessions).Error
	return sessions, err
}

func (s *Store) CountSessionsForUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.Session{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
