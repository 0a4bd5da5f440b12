package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []Status{
	StatusPending, StatusConfirmed, StatusPreparing,
	StatusReady, StatusDelivered, StatusCancelled,
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusPreparing, true},
		{StatusPreparing, StatusReady, true},
		{StatusReady, StatusDelivered, true},
		{StatusPending, StatusReady, true}, // forward jumps are allowed
		{StatusConfirmed, StatusPending, false},
		{StatusDelivered, StatusPending, false},
		{StatusPending, StatusPending, false},
		{StatusPending, Status("shipped"), false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, CanTransition(c.from, c.to),
			"%s -> %s", c.from, c.to)
	}

	t.Run("Cancelled reachable from any non-terminal state", func(t *testing.T) {
		for _, from := range allStatuses {
			got := CanTransition(from, StatusCancelled)
			assert.Equal(t, !from.Terminal(), got, "from %s", from)
		}
	})

	t.Run("Nothing leaves a terminal state", func(t *testing.T) {
		for _, to := range allStatuses {
			assert.False(t, CanTransition(StatusDelivered, to), "delivered -> %s", to)
			assert.False(t, CanTransition(StatusCancelled, to), "cancelled -> %s", to)
		}
	})
}

func TestStatusValid(t *testing.T) {
	for _, s := range allStatuses {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("shipped").Valid())
	assert.False(t, Status("").Valid())
}

func TestStatusFormatting(t *testing.T) {
	// Every variant has a distinct emoji and its own advisory line.
	seen := map[string]bool{}
	for _, s := range allStatuses {
		assert.NotEqual(t, "❓", s.Emoji(), string(s))
		assert.NotEmpty(t, s.Advisory())
		assert.False(t, seen[s.Advisory()], "duplicate advisory for %s", s)
		seen[s.Advisory()] = true
	}

	assert.Equal(t, "❓", Status("mystery").Emoji())
	assert.Contains(t, Status("mystery").Advisory(), "unknown")

	assert.Equal(t, "Pending", StatusPending.Title())
	assert.Equal(t, "", Status("").Title())
}
