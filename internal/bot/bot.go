package bot

import (
	"context"
	"fmt"

	"siburger-bot/internal/logger"
	"siburger-bot/internal/menu"
	"siburger-bot/internal/order"
	"siburger-bot/internal/user"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Bot binds the Telegram transport to the ordering core. With nil services
// it runs in degraded mode: static replies work, persistence-dependent
// features answer with an apology per request.
type Bot struct {
	api     *tgbotapi.BotAPI
	orders  order.Service
	users   user.Service
	limiter *limiter
}

func New(token string, orders order.Service, users user.Service) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot api: %w", err)
	}

	return &Bot{
		api:     api,
		orders:  orders,
		users:   users,
		limiter: newLimiter(rate.Limit(1), 5),
	}, nil
}

func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// Run long-polls for updates until the context is cancelled. Each update is
// an independent unit of work handled in its own goroutine; all shared
// state lives behind the store.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, upd)
		}
	}
}

func (b *Bot) persistent() bool {
	return b.orders != nil && b.users != nil
}

func (b *Bot) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil || msg.From == nil {
		return
	}

	ctx = logger.WithUpdateID(ctx, uuid.NewString())
	log := logger.FromCtx(ctx).With(zap.Int64("sender_id", msg.From.ID))

	if !b.limiter.Allow(msg.From.ID) {
		log.Warn("sender rate limited, dropping update")
		return
	}

	log.Info("update received",
		zap.Int("telegram_update_id", upd.UpdateID),
		zap.Bool("command", msg.IsCommand()),
	)

	// Activity tracking runs on every inbound event, independent of what
	// the message turns out to mean.
	if b.persistent() {
		if err := b.users.Touch(ctx, user.Profile{
			ID:        msg.From.ID,
			Username:  msg.From.UserName,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
		}); err != nil {
			log.Warn("failed to record user activity", zap.Error(err))
		}
	}

	var text string
	var markdown bool
	if msg.IsCommand() {
		text, markdown = b.handleCommand(msg.Command())
	} else {
		text, markdown = b.handleText(ctx, msg)
	}

	b.reply(ctx, msg.Chat.ID, text, markdown)
}

func (b *Bot) handleCommand(command string) (string, bool) {
	switch command {
	case "start":
		return startReply, false
	case "help":
		return helpReply, false
	case "menu":
		return menu.Text(), true
	case "order":
		return orderReply, false
	case "status":
		return statusReply, true
	default:
		return greetingReply, false
	}
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) (string, bool) {
	route := Classify(msg.Text)

	switch route.Intent {
	case IntentRecentOrders:
		return b.recentOrders(ctx, msg.From.ID)
	case IntentOrderStatus:
		return b.orderStatus(ctx, msg.From.ID, route.OrderToken)
	case IntentPlaceOrder:
		return b.placeOrder(ctx, msg.From, route.Parsed)
	case IntentMenuPrompt:
		return menuPromptReply, false
	case IntentOrderPrompt:
		return orderPromptReply, false
	case IntentStatusPrompt:
		return statusPromptReply, false
	default:
		return greetingReply, false
	}
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string, markdown bool) {
	out := tgbotapi.NewMessage(chatID, text)
	if markdown {
		out.ParseMode = tgbotapi.ModeMarkdown
	}
	if _, err := b.api.Send(out); err != nil {
		logger.FromCtx(ctx).Error("failed to send reply",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}
