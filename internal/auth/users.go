package auth

import (
	"context"
	"errors"

	"github.com/babuyoga/project-cost-dashboard/internal/database/model"
	"github.com/babuyoga/project-cost-dashboard/internal/util"
	"gorm.io/gorm"
)

// CreateUserInput is the admin account-creation payload. IsAdmin is absent
// on purpose: elevation goes through UpdateUser only.
type CreateUserInput struct {
	Username string
	Password string
	Email    *string
	Enabled  *bool
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.store.ListUsers(ctx)
}

func (s *Service) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.store.UserByID(ctx, id)
	if err != nil {
		return nil, translateUserErr(err)
	}
	return user, nil
}

func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, Validation("Username and password are required")
	}

	hash, err := util.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}

	user := &model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Enabled:      enabled,
		IsAdmin:      false,
		IsFirstLogin: true,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, translateUserErr(err)
	}
	return user, nil
}

// UpdateUser applies a partial update. Only supplied fields change;
// updated_at always advances on a successful write.
func (s *Service) UpdateUser(ctx context.Context, id string, patch model.UserPatch) (*model.User, error) {
	if patch.IsEmpty() {
		return nil, Validation("At least one field (username, email, enabled, isAdmin) is required")
	}

	user, err := s.store.UserByID(ctx, id)
	if err != nil {
		return nil, translateUserErr(err)
	}

	updated := patch.Apply(*user)
	if err := s.store.SaveUser(ctx, &updated); err != nil {
		return nil, translateUserErr(err)
	}
	return &updated, nil
}

// SetUserEnabled is the narrow enable/disable mutation. Disabling does not
// revoke live sessions; they fail at their next guard check instead.
func (s *Service) SetUserEnabled(ctx context.Context, id string, enabled bool) error {
	if err := s.store.SetEnabled(ctx, id, enabled); err != nil {
		return translateUserErr(err)
	}
	return nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if err := s.store.DeleteUser(ctx, id); err != nil {
		return translateUserErr(err)
	}
	return nil
}

// ResetPassword is the admin-initiated reset: no current-password check, and
// existing sessions stay valid until they expire or are revoked separately.
func (s *Service) ResetPassword(ctx context.Context, id, password string) error {
	if password == "" {
		return Validation("Password is required")
	}
	hash, err := util.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.store.UpdatePassword(ctx, id, hash); err != nil {
		return translateUserErr(err)
	}
	return nil
}

// ChangePassword is the self-service path: the current password is verified
// before any mutation, and the caller's sessions remain valid afterwards.
func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword, confirmPassword string) error {
	if currentPassword == "" || newPassword == "" || confirmPassword == "" {
		return Validation("All fields are required")
	}
	if newPassword != confirmPassword {
		return Validation("New passwords do not match")
	}
	if len(newPassword) < 8 {
		return Validation("New password must be at least 8 characters")
	}

	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := util.CheckPasswordHash(currentPassword, user.PasswordHash); err != nil {
		return Validation("Incorrect current password")
	}

	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, user.ID, hash)
}
