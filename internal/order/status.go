package order

import "strings"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// statusRank orders the forward lifecycle. Cancelled sits outside the
// progression and is handled separately.
var statusRank = map[Status]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusPreparing: 2,
	StatusReady:     3,
	StatusDelivered: 4,
}

func (s Status) Valid() bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// Terminal reports whether no further transition is defined out of s.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether from → to is a legal lifecycle move:
// strictly forward through pending → confirmed → preparing → ready →
// delivered, with cancelled reachable from any non-terminal state.
func CanTransition(from, to Status) bool {
	if from.Terminal() || !to.Valid() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return statusRank[to] > statusRank[from]
}

// Emoji maps each status to its marker. The switch is exhaustive over the
// six variants; anything else is an unknown stored value and degrades to a
// question mark instead of crashing formatting.
func (s Status) Emoji() string {
	switch s {
	case StatusPending:
		return "⏳"
	case StatusConfirmed:
		return "✅"
	case StatusPreparing:
		return "👨‍🍳"
	case StatusReady:
		return "🔔"
	case StatusDelivered:
		return "🎉"
	case StatusCancelled:
		return "❌"
	default:
		return "❓"
	}
}

// Advisory is the fixed per-status message appended to a status reply.
func (s Status) Advisory() string {
	switch s {
	case StatusPending:
		return "⏳ Your order is being reviewed. We'll confirm it shortly!"
	case StatusConfirmed:
		return "✅ Your order has been confirmed and will be prepared soon!"
	case StatusPreparing:
		return "👨‍🍳 Your delicious meal is being prepared right now!"
	case StatusReady:
		return "🔔 Your order is ready for pickup or will be delivered soon!"
	case StatusDelivered:
		return "🎉 Your order has been delivered! Enjoy your meal!"
	case StatusCancelled:
		return "❌ This order has been cancelled. Contact us if you have questions."
	default:
		return "❓ Status unknown. Please contact us for more information."
	}
}

// Title renders the status capitalized for display.
func (s Status) Title() string {
	if s == "" {
		return ""
	}
	str := string(s)
	return strings.ToUpper(str[:1]) + str[1:]
}
