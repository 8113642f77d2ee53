package domain_test

import (
	"testing"

	"github.com/lucasdotdev/waveline/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestDeriveRoomID(t *testing.T) {
	t.Parallel()

	t.Run("it should derive the same id regardless of argument order", func(t *testing.T) {
		require.Equal(t, domain.DeriveRoomID("u1", "u2"), domain.DeriveRoomID("u2", "u1"))
	})

	t.Run("it should sort the participants lexicographically", func(t *testing.T) {
		require.Equal(t, "abc_xyz", domain.DeriveRoomID("xyz", "abc"))
		require.Equal(t, "abc_xyz", domain.DeriveRoomID("abc", "xyz"))
	})

	t.Run("it should keep identical participants stable", func(t *testing.T) {
		require.Equal(t, "u1_u1", domain.DeriveRoomID("u1", "u1"))
	})
}
