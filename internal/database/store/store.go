// Package store is the persistence layer for accounts and sessions. The
// handle is injected at construction; there is no package-level connection.
package store

import (
	"context"
	"time"

	"github.com/babuyoga/project-cost-dashboard/internal/database/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *Store) UserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByUsername matches exactly; usernames are case-sensitive.
func (s *Store) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.db.WithContext(ctx).Order("created_at").Find(&users).Error
	return users, err
}

// SaveUser writes the full row. Uniqueness on username is enforced by the
// database, not pre-checked; a collision surfaces as gorm.ErrDuplicatedKey.
func (s *Store) SaveUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

// UpdatePassword stores a new hash and advances both updated_at and
// password_updated_at. Returns gorm.ErrRecordNotFound if the user id does
// not resolve.
func (s *Store) UpdatePassword(ctx context.Context, id, hash string) error {
	now := time.Now()
	res := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(map[string]any{
		"password_hash":       hash,
		"updated_at":          now,
		"password_updated_at": now,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) SetEnabled(ctx context.Context, id string, enabled bool) error {
	res := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(map[string]any{
		"enabled":    enabled,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) ClearFirstLogin(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		Update("is_first_login", false).Error
}

// DeleteUser removes the user and every session it owns in one transaction,
// so no orphaned session can survive a user delete.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Session{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.User{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
