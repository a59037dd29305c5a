//go:build unit

package user_test

import (
	"testing"
	"time"

	"lendhub/internal/domain/user"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("normalizes fields", func(t *testing.T) {
		u, err := user.NewUser("  Alice  ", " Alice@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, "alice@example.com", u.Email())
		assert.NotEqual(t, uuid.Nil, u.ID())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := user.NewUser("   ", "a@b.com")
		require.ErrorIs(t, err, user.ErrEmptyName)
	})

	t.Run("invalid email", func(t *testing.T) {
		for _, email := range []string{"", "no-at-sign", "@host", "user@"} {
			_, err := user.NewUser("Alice", email)
			require.ErrorIs(t, err, user.ErrInvalidEmail, email)
		}
	})
}

func TestApplyPatch(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	base := func() *user.User {
		return user.ReconstructUser(uuid.New(), "Alice", "alice@example.com", now, now)
	}
	str := func(s string) *string { return &s }

	t.Run("nil fields keep values", func(t *testing.T) {
		u := base()
		before := user.ReconstructUser(u.ID(), u.Name(), u.Email(), u.CreatedAt(), u.UpdatedAt())
		require.NoError(t, u.Apply(user.Patch{}))
		if diff := cmp.Diff(before, u, cmp.AllowUnexported(user.User{}), cmpopts.EquateComparable(uuid.UUID{})); diff != "" {
			t.Errorf("user changed by empty patch (-want +got):\n%s", diff)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		u := base()
		require.NoError(t, u.Apply(user.Patch{Email: str("Bob@Example.com")}))
		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, "bob@example.com", u.Email())
	})

	t.Run("invalid patch leaves prior fields applied in order", func(t *testing.T) {
		u := base()
		err := u.Apply(user.Patch{Name: str("Bob"), Email: str("broken")})
		require.ErrorIs(t, err, user.ErrInvalidEmail)
		assert.Equal(t, "Bob", u.Name())
		assert.Equal(t, "alice@example.com", u.Email())
	})
}
