package user

import (
	"context"
	"errors"
	"time"

	"siburger-bot/internal/logger"
	"siburger-bot/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const usersCollection = "users"

type Repository interface {
	Upsert(ctx context.Context, p Profile, now time.Time) error
	IncrementOrderCount(ctx context.Context, userID int64, now time.Time) error
	FindByID(ctx context.Context, userID int64) (*User, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(client *store.Client) Repository {
	return &repository{coll: client.Collection(usersCollection)}
}

// Upsert is a single atomic write: $setOnInsert seeds createdAt and the
// zero order count on first contact, $set refreshes profile and lastActive
// every time. createdAt and orderCount are never touched on update.
func (r *repository) Upsert(ctx context.Context, p Profile, now time.Time) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": p.ID},
		bson.M{
			"$set": bson.M{
				"username":   p.Username,
				"firstName":  p.FirstName,
				"lastName":   p.LastName,
				"lastActive": now,
			},
			"$setOnInsert": bson.M{
				"createdAt":  now,
				"orderCount": int64(0),
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to upsert user",
			zap.Int64("user_id", p.ID),
			zap.Error(err),
		)
	}
	return err
}

// IncrementOrderCount relies on the store's $inc; a read-modify-write here
// would lose updates under concurrent orders from the same user.
func (r *repository) IncrementOrderCount(ctx context.Context, userID int64, now time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{
			"$inc": bson.M{"orderCount": int64(1)},
			"$set": bson.M{"lastActive": now},
		},
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to increment order count",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, userID int64) (*User, error) {
	var u User
	err := r.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
