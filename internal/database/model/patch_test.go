package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserPatchApply(t *testing.T) {
	email := "old@example.com"
	base := User{
		Username: "alice",
		Email:    &email,
		Enabled:  true,
		IsAdmin:  false,
	}

	t.Run("empty patch changes nothing", func(t *testing.T) {
		assert.True(t, UserPatch{}.IsEmpty())
		assert.Equal(t, base, UserPatch{}.Apply(base))
	})

	t.Run("only supplied fields change", func(t *testing.T) {
		name := "bob"
		got := UserPatch{Username: &name}.Apply(base)
		assert.Equal(t, "bob", got.Username)
		assert.Equal(t, base.Email, got.Email)
		assert.Equal(t, base.Enabled, got.Enabled)
	})

	t.Run("booleans can be set false", func(t *testing.T) {
		enabled := false
		got := UserPatch{Enabled: &enabled}.Apply(base)
		assert.False(t, got.Enabled)
	})

	t.Run("admin elevation", func(t *testing.T) {
		admin := true
		got := UserPatch{IsAdmin: &admin}.Apply(base)
		assert.True(t, got.IsAdmin)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		name := "carol"
		_ = UserPatch{Username: &name}.Apply(base)
		assert.Equal(t, "alice", base.Username)
	})
}
