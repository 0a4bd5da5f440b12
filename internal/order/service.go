package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"siburger-bot/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, userID int64, username string, items []LineItem, total float64) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	GetByPrefix(ctx context.Context, prefix string) (*Order, error)
	Authorize(o *Order, requesterID int64) bool
	SetStatus(ctx context.Context, id string, status Status) error
	ListForUser(ctx context.Context, userID int64) ([]*Order, error)
	ListByStatus(ctx context.Context, status Status) ([]*Order, error)
	FormatStatusReply(o *Order) string
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create persists a new pending order. The total is the one computed at
// parse time; it is stored as-is and never recomputed from the catalog.
func (s *service) Create(ctx context.Context, userID int64, username string, items []LineItem, total float64) (*Order, error) {
	log := logger.FromCtx(ctx)

	if len(items) == 0 {
		return nil, ErrNoItems
	}

	now := time.Now()
	o := &Order{
		UserID:      userID,
		Username:    username,
		Items:       items,
		TotalAmount: total,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.Insert(ctx, o)
	if err != nil {
		log.Error("failed to create order",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}
	o.ID = id

	log.Info("order created",
		zap.String("order_id", o.ShortID()),
		zap.Int64("user_id", userID),
		zap.Float64("total", total),
	)

	return o, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Order, error) {
	oid, err := parseHexID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

// GetByPrefix looks up an order by the 8-character token users quote back.
// A full 24-character hex ID is accepted too.
func (s *service) GetByPrefix(ctx context.Context, prefix string) (*Order, error) {
	p := strings.ToLower(strings.TrimSpace(prefix))
	if len(p) == hexIDLen {
		return s.GetByID(ctx, p)
	}
	if len(p) != shortIDLen || !isHex(p) {
		return nil, ErrBadID
	}
	return s.repo.FindByIDPrefix(ctx, p)
}

// Authorize reports whether requesterID owns the order. Callers must not
// reveal order contents on a mismatch.
func (s *service) Authorize(o *Order, requesterID int64) bool {
	return o != nil && o.UserID == requesterID
}

// SetStatus advances an order through the lifecycle. Transitions are
// validated against the lifecycle graph so a delivered order cannot flip
// back to pending.
func (s *service) SetStatus(ctx context.Context, id string, status Status) error {
	log := logger.FromCtx(ctx)

	if !status.Valid() {
		return ErrInvalidStatus
	}

	o, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !CanTransition(o.Status, status) {
		log.Warn("rejected status transition",
			zap.String("order_id", o.ShortID()),
			zap.String("from", string(o.Status)),
			zap.String("to", string(status)),
		)
		return ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, o.ID, status, time.Now()); err != nil {
		log.Error("failed to update order status",
			zap.String("order_id", o.ShortID()),
			zap.Error(err),
		)
		return err
	}

	log.Info("order status updated",
		zap.String("order_id", o.ShortID()),
		zap.String("status", string(status)),
	)
	return nil
}

func (s *service) ListForUser(ctx context.Context, userID int64) ([]*Order, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *service) ListByStatus(ctx context.Context, status Status) ([]*Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.FindByStatus(ctx, status)
}

// FormatStatusReply renders the Markdown status message for one order:
// summary lines plus the fixed per-status advisory. Unknown stored status
// values fall back to the question-mark variants, never a panic.
func (s *service) FormatStatusReply(o *Order) string {
	names := make([]string, 0, len(o.Items))
	for _, li := range o.Items {
		names = append(names, fmt.Sprintf("%dx %s", li.Quantity, li.Name))
	}

	return fmt.Sprintf(
		"%s *Order Status*\n\n"+
			"*Order ID:* %s\n"+
			"*Status:* %s\n"+
			"*Items:* %s\n"+
			"*Total:* $%.2f\n"+
			"*Ordered:* %s\n\n%s",
		o.Status.Emoji(),
		o.ShortID(),
		o.Status.Title(),
		strings.Join(names, ", "),
		o.TotalAmount,
		o.CreatedAt.Format("Jan 2, 2006 3:04 PM"),
		o.Status.Advisory(),
	)
}

func isHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
