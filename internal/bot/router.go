package bot

import (
	"regexp"
	"strings"

	"siburger-bot/internal/order"
)

// Intent is the classified purpose of an inbound free-text message.
type Intent int

const (
	IntentGreeting Intent = iota
	IntentRecentOrders
	IntentOrderStatus
	IntentPlaceOrder
	IntentMenuPrompt
	IntentOrderPrompt
	IntentStatusPrompt
)

type Route struct {
	Intent     Intent
	OrderToken string            // set for IntentOrderStatus
	Parsed     order.ParsedOrder // set for IntentPlaceOrder
}

var (
	// an 8-char hex token delimited by word boundaries reads as an order ID
	hexTokenPattern = regexp.MustCompile(`\b[0-9a-f]{8}\b`)

	// a number followed later in the text by a food keyword reads as an
	// order attempt
	foodMentionPattern = regexp.MustCompile(`(?s)\d.*(burger|fries|coffee|drink|salad|classic|cheese|bacon)`)
)

// Classify decides what a free-text message means. Precedence is fixed and
// first match wins: recent-orders phrasing, then an order-ID token, then an
// order attempt, then keyword small talk. An order attempt that parses to
// zero line items falls through to small talk instead of dead-ending.
// Classify is pure given the text; it touches no storage.
func Classify(text string) Route {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "my orders") || strings.Contains(lower, "recent orders") {
		return Route{Intent: IntentRecentOrders}
	}

	if token := hexTokenPattern.FindString(lower); token != "" {
		return Route{Intent: IntentOrderStatus, OrderToken: token}
	}

	if foodMentionPattern.MatchString(lower) {
		if parsed := order.ParseText(lower); !parsed.Empty() {
			return Route{Intent: IntentPlaceOrder, Parsed: parsed}
		}
	}

	switch {
	case strings.Contains(lower, "burger") || strings.Contains(lower, "food"):
		return Route{Intent: IntentMenuPrompt}
	case strings.Contains(lower, "order"):
		return Route{Intent: IntentOrderPrompt}
	case strings.Contains(lower, "status"):
		return Route{Intent: IntentStatusPrompt}
	default:
		return Route{Intent: IntentGreeting}
	}
}
