// Package auth implements the session subsystem: credential verification,
// session issuance and validation, and the admin user/session managers. All
// state lives in the injected store; the package holds no globals.
package auth

import (
	"errors"
	"time"

	"github.com/babuyoga/project-cost-dashboard/internal/database/store"
	"gorm.io/gorm"
)

const (
	// sessionTTL is fixed at issuance; expiry is never extended.
	sessionTTL = 24 * time.Hour

	// maxCredentialLen mirrors the login form's input bound. It applies only
	// at login; account creation keeps the looser storage limits.
	maxCredentialLen = 26
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func translateUserErr(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateUser
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrUserNotFound
	}
	return err
}
