package model_test

import (
	"testing"

	"checklist/internal/domains/user/model"

	"github.com/stretchr/testify/assert"
)

func TestUserPatch_Apply(t *testing.T) {
	existing := model.User{
		ID:           "user-1",
		EmailAddress: "jordan@example.com",
		AvatarSeed:   "abc1234",
	}

	t.Run("empty patch returns the entity unchanged", func(t *testing.T) {
		assert.Equal(t, existing, model.UserPatch{}.Apply(existing))
	})

	t.Run("patched fields override, identity preserved", func(t *testing.T) {
		email := "jordan@example.org"
		seed := "zzz9999"

		updated := model.UserPatch{EmailAddress: &email, AvatarSeed: &seed}.Apply(existing)

		assert.Equal(t, "user-1", updated.ID)
		assert.Equal(t, "jordan@example.org", updated.EmailAddress)
		assert.Equal(t, "zzz9999", updated.AvatarSeed)
	})

	t.Run("single field patch leaves the rest", func(t *testing.T) {
		seed := "zzz9999"

		updated := model.UserPatch{AvatarSeed: &seed}.Apply(existing)

		assert.Equal(t, existing.EmailAddress, updated.EmailAddress)
		assert.Equal(t, "zzz9999", updated.AvatarSeed)
	})
}
