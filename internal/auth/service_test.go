package auth

import (
	"context"
	"testing"
	"time"

	"github.com/babuyoga/project-cost-dashboard/internal/database/model"
	"github.com/babuyoga/project-cost-dashboard/internal/database/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Session{}))

	st := store.New(db)
	return NewService(st), st
}

func createTestUser(t *testing.T, svc *Service, username, password string) *model.User {
	t.Helper()
	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

// insertSession plants a session row directly, bypassing login, so tests can
// control timestamps.
func insertSession(t *testing.T, st *store.Store, userID string, expiresAt time.Time) *model.Session {
	t.Helper()
	now := time.Now()
	session := &model.Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		CreatedAt:  now,
		ExpiresAt:  expiresAt,
		LastSeenAt: now,
	}
	require.NoError(t, st.CreateSession(context.Background(), session))
	return session
}
