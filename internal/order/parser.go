package order

import (
	"regexp"
	"strconv"
	"strings"

	"siburger-bot/internal/menu"
)

// lineItemPattern matches "<quantity> <words>". The word run is a maximal
// sequence of letters and spaces, so the next digit in the text starts a
// fresh match: "2 fries 1 coffee" yields two independent fragments.
var lineItemPattern = regexp.MustCompile(`(\d+)\s+([A-Za-z][A-Za-z ]*)`)

// ParsedOrder is the result of interpreting free text as an order.
type ParsedOrder struct {
	Items []LineItem
	Total float64
}

func (p ParsedOrder) Empty() bool {
	return len(p.Items) == 0
}

// ParseText scans a raw message for quantity/item fragments and resolves
// each against the catalog at its current price. The parse is best-effort
// and lossy: fragments that do not resolve are dropped silently, malformed
// input produces fewer line items rather than an error. The result is
// empty iff nothing resolved.
func ParseText(text string) ParsedOrder {
	var parsed ParsedOrder

	for _, m := range lineItemPattern.FindAllStringSubmatch(text, -1) {
		qty, err := strconv.Atoi(m[1])
		if err != nil || qty <= 0 {
			continue
		}

		fragment := strings.ToLower(strings.TrimSpace(m[2]))
		if fragment == "" {
			continue
		}

		item, ok := menu.Lookup(fragment)
		if !ok {
			continue
		}

		li := LineItem{Name: item.Name, Price: item.Price, Quantity: qty}
		parsed.Items = append(parsed.Items, li)
		parsed.Total += li.Subtotal()
	}

	return parsed
}
