package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/babuyoga/project-cost-dashboard/internal/database/model"
	"github.com/babuyoga/project-cost-dashboard/internal/util"
	"gorm.io/gorm"
)

// EnsureAdmin seeds the bootstrap administrator account. Idempotent: if the
// username already exists only the admin flag is re-asserted, the password is
// left alone and no duplicate is created.
func (s *Store) EnsureAdmin(ctx context.Context, username, password string) error {
	existing, err := s.UserByUsername(ctx, username)
	if err == nil {
		if !existing.IsAdmin {
			existing.IsAdmin = true
			if err := s.SaveUser(ctx, existing); err != nil {
				return err
			}
		}
		slog.Info("Ensured admin privileges for bootstrap user", "username", username)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     username,
		PasswordHash: hash,
		Enabled:      true,
		IsAdmin:      true,
		IsFirstLogin: true,
	}
	if err := s.CreateUser(ctx, admin); err != nil {
		return err
	}
	slog.Info("Created bootstrap admin user", "username", username)
	return nil
}
