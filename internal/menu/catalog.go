package menu

import (
	"fmt"
	"strings"
)

// Item is one catalog entry. Prices are fixed at process start; an order
// copies the price at order time instead of referencing the catalog.
type Item struct {
	Name  string
	Price float64
}

type Category struct {
	Name  string
	Emoji string
	Items []Item
}

// Declaration order matters: Lookup resolves ambiguous fragments to the
// first matching item in this order.
var categories = []Category{
	{
		Name:  "Burgers",
		Emoji: "🍔",
		Items: []Item{
			{Name: "Classic Beef", Price: 8.99},
			{Name: "Cheeseburger", Price: 9.99},
			{Name: "Double Cheese", Price: 12.99},
			{Name: "BBQ Bacon", Price: 13.99},
			{Name: "Mushroom Swiss", Price: 11.99},
			{Name: "Spicy Jalapeño", Price: 10.99},
		},
	},
	{
		Name:  "Sides",
		Emoji: "🍟",
		Items: []Item{
			{Name: "French Fries", Price: 3.99},
			{Name: "Onion Rings", Price: 4.99},
			{Name: "Side Salad", Price: 5.99},
		},
	},
	{
		Name:  "Drinks",
		Emoji: "🥤",
		Items: []Item{
			{Name: "Soft Drinks", Price: 2.99},
			{Name: "Fresh Juice", Price: 3.99},
			{Name: "Coffee", Price: 2.49},
		},
	},
}

var flattened = func() []Item {
	var all []Item
	for _, c := range categories {
		all = append(all, c.Items...)
	}
	return all
}()

// Items returns every catalog item in declaration order. The backing data
// is never mutated after init, so concurrent reads are safe.
func Items() []Item {
	return flattened
}

// Lookup resolves a free-text fragment to a catalog item. Matching is
// case-insensitive and bidirectional: "fries" matches "French Fries" and
// "classic beef burger" matches "Classic Beef". The first declared match
// wins. A miss is reported via ok=false, not an error.
func Lookup(fragment string) (Item, bool) {
	frag := strings.ToLower(strings.TrimSpace(fragment))
	if frag == "" {
		return Item{}, false
	}

	for _, it := range flattened {
		name := strings.ToLower(it.Name)
		if strings.Contains(name, frag) || strings.Contains(frag, name) {
			return it, true
		}
	}
	return Item{}, false
}

// Text renders the menu reply, Markdown formatted.
func Text() string {
	var b strings.Builder
	b.WriteString("🍔 *SiBurger Menu* 🍔\n")

	for _, c := range categories {
		b.WriteString(fmt.Sprintf("\n*%s:*\n", c.Name))
		for _, it := range c.Items {
			b.WriteString(fmt.Sprintf("%s %s - $%.2f\n", c.Emoji, it.Name, it.Price))
		}
	}

	b.WriteString("\n💬 To order, just tell me what you want, e.g. \"2 Classic Beef, 1 Coffee\"")
	return b.String()
}
