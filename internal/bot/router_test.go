package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Run("Recent orders phrasing wins first", func(t *testing.T) {
		assert.Equal(t, IntentRecentOrders, Classify("show me my orders").Intent)
		assert.Equal(t, IntentRecentOrders, Classify("Recent Orders please").Intent)

		// even when the text also carries an order-looking fragment
		assert.Equal(t, IntentRecentOrders, Classify("my orders, not 2 burgers").Intent)
	})

	t.Run("Order ID token", func(t *testing.T) {
		r := Classify("what about ABCD1234?")
		assert.Equal(t, IntentOrderStatus, r.Intent)
		assert.Equal(t, "abcd1234", r.OrderToken)

		// digits-only tokens are valid hex
		r = Classify("12345678")
		assert.Equal(t, IntentOrderStatus, r.Intent)
		assert.Equal(t, "12345678", r.OrderToken)
	})

	t.Run("Token must be exactly eight word-bounded hex chars", func(t *testing.T) {
		assert.NotEqual(t, IntentOrderStatus, Classify("abc123").Intent)
		assert.NotEqual(t, IntentOrderStatus, Classify("abcd1234x is my code").Intent)
	})

	t.Run("Order placement", func(t *testing.T) {
		r := Classify("I'd like 2 Classic Beef, 1 Coffee")
		assert.Equal(t, IntentPlaceOrder, r.Intent)
		assert.Len(t, r.Parsed.Items, 2)
		assert.InDelta(t, 20.47, r.Parsed.Total, 0.001)
	})

	t.Run("Failed placement falls through to small talk", func(t *testing.T) {
		// has a number and a food keyword but nothing resolvable
		r := Classify("I ate 11 burgers once")
		assert.Equal(t, IntentMenuPrompt, r.Intent)
		assert.True(t, r.Parsed.Empty())
	})

	t.Run("Small talk branches", func(t *testing.T) {
		assert.Equal(t, IntentMenuPrompt, Classify("I want food").Intent)
		assert.Equal(t, IntentMenuPrompt, Classify("got any burgers?").Intent)
		assert.Equal(t, IntentOrderPrompt, Classify("how do I order").Intent)
		assert.Equal(t, IntentStatusPrompt, Classify("check status").Intent)
		assert.Equal(t, IntentGreeting, Classify("hello there").Intent)
	})

	t.Run("Case insensitive", func(t *testing.T) {
		assert.Equal(t, IntentRecentOrders, Classify("MY ORDERS").Intent)
		assert.Equal(t, IntentMenuPrompt, Classify("FOOD").Intent)
	})
}
