package user

import (
	"context"
	"time"

	"siburger-bot/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Touch(ctx context.Context, p Profile) error
	IncrementOrderCount(ctx context.Context, userID int64) error
	Get(ctx context.Context, userID int64) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Touch records one interaction: the first call for a user creates the
// record with a zero order count, later calls overwrite the profile fields
// and lastActive only. Repeated calls with the same profile are idempotent
// apart from lastActive.
func (s *service) Touch(ctx context.Context, p Profile) error {
	if err := s.repo.Upsert(ctx, p, time.Now()); err != nil {
		logger.FromCtx(ctx).Error("failed to touch user",
			zap.Int64("user_id", p.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// IncrementOrderCount adds one to the user's order counter via the store's
// atomic increment, so overlapping orders from the same user never lose an
// update. Called once per successfully created order.
func (s *service) IncrementOrderCount(ctx context.Context, userID int64) error {
	if err := s.repo.IncrementOrderCount(ctx, userID, time.Now()); err != nil {
		logger.FromCtx(ctx).Error("failed to increment order count",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) Get(ctx context.Context, userID int64) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}
