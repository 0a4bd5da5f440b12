package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseText(t *testing.T) {
	t.Run("Two items with comma", func(t *testing.T) {
		parsed := ParseText("2 Classic Beef, 1 Coffee")

		assert.Len(t, parsed.Items, 2)
		assert.Equal(t, LineItem{Name: "Classic Beef", Price: 8.99, Quantity: 2}, parsed.Items[0])
		assert.Equal(t, LineItem{Name: "Coffee", Price: 2.49, Quantity: 1}, parsed.Items[1])
		assert.InDelta(t, 20.47, parsed.Total, 0.001)
	})

	t.Run("Adjacent fragments without separator", func(t *testing.T) {
		parsed := ParseText("2 fries 1 coffee")

		assert.Len(t, parsed.Items, 2)
		assert.Equal(t, "French Fries", parsed.Items[0].Name)
		assert.Equal(t, 2, parsed.Items[0].Quantity)
		assert.Equal(t, "Coffee", parsed.Items[1].Name)
		assert.Equal(t, 1, parsed.Items[1].Quantity)
	})

	t.Run("Whitespace variation parses identically", func(t *testing.T) {
		a := ParseText("1 Classic Beef")
		b := ParseText("1   classic beef")

		assert.Equal(t, a.Items, b.Items)
		assert.Equal(t, a.Total, b.Total)
	})

	t.Run("Subtotal follows catalog price", func(t *testing.T) {
		parsed := ParseText("3 cheeseburger")

		assert.Len(t, parsed.Items, 1)
		assert.InDelta(t, 3*9.99, parsed.Items[0].Subtotal(), 0.001)
		assert.InDelta(t, 3*9.99, parsed.Total, 0.001)
	})

	t.Run("Unresolved fragment dropped silently", func(t *testing.T) {
		parsed := ParseText("2 unicorn steaks and 1 coffee")

		assert.Len(t, parsed.Items, 1)
		assert.Equal(t, "Coffee", parsed.Items[0].Name)
	})

	t.Run("No recognizable items", func(t *testing.T) {
		parsed := ParseText("I want food")
		assert.True(t, parsed.Empty())
	})

	t.Run("Zero quantity skipped", func(t *testing.T) {
		parsed := ParseText("0 coffee")
		assert.True(t, parsed.Empty())
	})

	t.Run("Fractional quantity does not match", func(t *testing.T) {
		// no digit run here is followed by whitespace and a word run, so
		// the pattern never fires
		parsed := ParseText("one and a half, sorry, 1.5x coffee?")
		assert.True(t, parsed.Empty())
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.True(t, ParseText("").Empty())
	})

	t.Run("Insertion order preserved", func(t *testing.T) {
		parsed := ParseText("1 coffee 1 fries 1 cheeseburger")

		assert.Len(t, parsed.Items, 3)
		assert.Equal(t, "Coffee", parsed.Items[0].Name)
		assert.Equal(t, "French Fries", parsed.Items[1].Name)
		assert.Equal(t, "Cheeseburger", parsed.Items[2].Name)
	})
}
