package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionGuard(t *testing.T) {
	var guard actionGuard

	release, ok := guard.tryAcquire("g1")
	require.True(t, ok)

	t.Run("held lock rejects, never blocks", func(t *testing.T) {
		_, ok := guard.tryAcquire("g1")
		assert.False(t, ok)
	})

	t.Run("other games are independent", func(t *testing.T) {
		release2, ok := guard.tryAcquire("g2")
		require.True(t, ok)
		release2()
	})

	release()

	t.Run("released lock can be taken again", func(t *testing.T) {
		release, ok := guard.tryAcquire("g1")
		require.True(t, ok)
		release()
	})
}
