package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestLimiter(t *testing.T) {
	t.Run("Allows up to burst then denies", func(t *testing.T) {
		l := newLimiter(rate.Limit(0.001), 3)

		for i := 0; i < 3; i++ {
			assert.True(t, l.Allow(42), "call %d", i)
		}
		assert.False(t, l.Allow(42))
	})

	t.Run("Senders have independent buckets", func(t *testing.T) {
		l := newLimiter(rate.Limit(0.001), 1)

		assert.True(t, l.Allow(1))
		assert.False(t, l.Allow(1))
		assert.True(t, l.Allow(2))
	})
}
