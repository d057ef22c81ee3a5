package auth

import (
	"context"
	"testing"
	"time"

	"github.com/babuyoga/project-cost-dashboard/internal/database/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestValidateRejectsMissingAndUnknown(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Validate(ctx, "")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Validate(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestValidateDeletesExpiredSession(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := createTestUser(t, svc, "alice", "secret-pass")

	session := insertSession(t, st, user.ID, time.Now().Add(-time.Minute))

	_, err := svc.Validate(ctx, session.ID)
	require.ErrorIs(t, err, ErrUnauthorized)

	// lazy cleanup: the expired row must be gone, not just ignored
	_, err = st.Session(ctx, session.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestValidateDeletesOrphanedSession(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session := insertSession(t, st, uuid.NewString(), time.Now().Add(time.Hour))

	_, err := svc.Validate(ctx, session.ID)
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = st.Session(ctx, session.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestValidateDisabledUserKeepsSession(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := createTestUser(t, svc, "alice", "secret-pass")

	result, err := svc.Login(ctx, "alice", "secret-pass")
	require.NoError(t, err)

	require.NoError(t, svc.SetUserEnabled(ctx, user.ID, false))
	_, err = svc.Validate(ctx, result.SessionID)
	require.ErrorIs(t, err, ErrUnauthorized)

	// the session row stays latent and re-validates once re-enabled
	_, err = st.Session(ctx, result.SessionID)
	require.NoError(t, err)

	require.NoError(t, svc.SetUserEnabled(ctx, user.ID, true))
	identity, err := svc.Validate(ctx, result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
}

func TestValidateRefreshesLastSeen(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := createTestUser(t, svc, "alice", "secret-pass")

	session := &model.Session{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		CreatedAt:  time.Now().Add(-2 * time.Hour),
		ExpiresAt:  time.Now().Add(time.Hour),
		LastSeenAt: time.Now().Add(-2 * time.Hour),
	}
	require.NoError(t, st.CreateSession(ctx, session))

	_, err := svc.Validate(ctx, session.ID)
	require.NoError(t, err)

	refreshed, err := st.Session(ctx, session.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), refreshed.LastSeenAt, 5*time.Second)
	// expiry is fixed at issuance, never extended
	assert.WithinDuration(t, session.ExpiresAt, refreshed.ExpiresAt, time.Second)
}

func TestValidateAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	createTestUser(t, svc, "alice", "secret-pass")

	result, err := svc.Login(ctx, "alice", "secret-pass")
	require.NoError(t, err)

	// valid session, no admin rights: Forbidden, not Unauthorized
	_, err = svc.ValidateAdmin(ctx, result.SessionID)
	require.ErrorIs(t, err, ErrForbidden)

	// no session at all never reveals the admin requirement
	_, err = svc.ValidateAdmin(ctx, "")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestPrivilegeChangeTakesEffectOnNextValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	user := createTestUser(t, svc, "alice", "secret-pass")

	result, err := svc.Login(ctx, "alice", "secret-pass")
	require.NoError(t, err)

	_, err = svc.ValidateAdmin(ctx, result.SessionID)
	require.ErrorIs(t, err, ErrForbidden)

	elevated := true
	_, err = svc.UpdateUser(ctx, user.ID, model.UserPatch{IsAdmin: &elevated})
	require.NoError(t, err)

	// same session, no re-login required
	identity, err := svc.ValidateAdmin(ctx, result.SessionID)
	require.NoError(t, err)
	assert.True(t, identity.IsAdmin)
}
