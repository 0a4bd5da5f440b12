package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"siburger-bot/internal/logger"
	"siburger-bot/internal/order"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const recentOrdersLimit = 5

// placeOrder persists a parsed order and bumps the sender's order counter.
// The two writes are not atomic with each other; a failed counter update
// is logged but does not fail the order.
func (b *Bot) placeOrder(ctx context.Context, from *tgbotapi.User, parsed order.ParsedOrder) (string, bool) {
	log := logger.FromCtx(ctx)

	if !b.persistent() {
		return degradedReply, false
	}

	o, err := b.orders.Create(ctx, from.ID, from.UserName, parsed.Items, parsed.Total)
	if err != nil {
		log.Error("failed to place order", zap.Error(err))
		return apologyReply, false
	}

	if err := b.users.IncrementOrderCount(ctx, from.ID); err != nil {
		log.Warn("order counter not incremented",
			zap.String("order_id", o.ShortID()),
			zap.Error(err),
		)
	}

	names := make([]string, 0, len(o.Items))
	for _, li := range o.Items {
		names = append(names, fmt.Sprintf("%dx %s", li.Quantity, li.Name))
	}

	return fmt.Sprintf(
		"✅ *Order placed!*\n\n"+
			"*Order ID:* %s\n"+
			"*Items:* %s\n"+
			"*Total:* $%.2f\n\n"+
			"💡 Reply with your order ID anytime to check its status.",
		o.ShortID(),
		strings.Join(names, ", "),
		o.TotalAmount,
	), true
}

// orderStatus answers an order-ID token. Ownership misses get a flat
// refusal that leaks nothing about the order.
func (b *Bot) orderStatus(ctx context.Context, senderID int64, token string) (string, bool) {
	log := logger.FromCtx(ctx)

	if !b.persistent() {
		return degradedReply, false
	}

	o, err := b.orders.GetByPrefix(ctx, token)
	if errors.Is(err, order.ErrNotFound) || errors.Is(err, order.ErrBadID) {
		return notFoundReply, false
	}
	if err != nil {
		log.Error("failed to look up order", zap.Error(err))
		return apologyReply, false
	}

	if !b.orders.Authorize(o, senderID) {
		log.Warn("order status requested by non-owner",
			zap.String("order_id", o.ShortID()),
		)
		return notOwnerReply, false
	}

	return b.orders.FormatStatusReply(o), true
}

func (b *Bot) recentOrders(ctx context.Context, senderID int64) (string, bool) {
	log := logger.FromCtx(ctx)

	if !b.persistent() {
		return degradedReply, false
	}

	orders, err := b.orders.ListForUser(ctx, senderID)
	if err != nil {
		log.Error("failed to list orders", zap.Error(err))
		return apologyReply, false
	}
	if len(orders) == 0 {
		return noOrdersReply, false
	}

	if len(orders) > recentOrdersLimit {
		orders = orders[:recentOrdersLimit]
	}

	lines := make([]string, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, fmt.Sprintf("%s *%s* - $%.2f (%s)",
			o.Status.Emoji(), o.ShortID(), o.TotalAmount, o.Status))
	}

	return fmt.Sprintf(
		"📋 *Your Recent Orders:*\n\n%s\n\n💡 Reply with an order ID to see full details",
		strings.Join(lines, "\n"),
	), true
}
