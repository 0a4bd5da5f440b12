package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"siburger-bot/internal/logger"
	"siburger-bot/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const ordersCollection = "orders"

type Repository interface {
	Insert(ctx context.Context, o *Order) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Order, error)
	FindByIDPrefix(ctx context.Context, prefix string) (*Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status, at time.Time) error
	FindByUser(ctx context.Context, userID int64) ([]*Order, error)
	FindByStatus(ctx context.Context, status Status) ([]*Order, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(client *store.Client) Repository {
	return &repository{coll: client.Collection(ordersCollection)}
}

func (r *repository) Insert(ctx context.Context, o *Order) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, o)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert order",
			zap.Int64("user_id", o.UserID),
			zap.Error(err),
		)
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Order, error) {
	var o Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// FindByIDPrefix resolves an 8-hex-character token to the order whose
// ObjectID starts with it, via a range scan over the padded bounds.
func (r *repository) FindByIDPrefix(ctx context.Context, prefix string) (*Order, error) {
	pad := hexIDLen - len(prefix)

	low, err := primitive.ObjectIDFromHex(prefix + strings.Repeat("0", pad))
	if err != nil {
		return nil, ErrBadID
	}
	high, err := primitive.ObjectIDFromHex(prefix + strings.Repeat("f", pad))
	if err != nil {
		return nil, ErrBadID
	}

	var o Order
	err = r.coll.FindOne(ctx, bson.M{
		"_id": bson.M{"$gte": low, "$lte": high},
	}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus overwrites status and updatedAt unconditionally; the
// lifecycle graph is enforced one layer up in the service. Concurrent
// writers are last-write-wins.
func (r *repository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status, at time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": at}},
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update order status",
			zap.String("order_id", id.Hex()),
			zap.Error(err),
		)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) FindByUser(ctx context.Context, userID int64) ([]*Order, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *repository) FindByStatus(ctx context.Context, status Status) ([]*Order, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *repository) find(ctx context.Context, filter bson.M) ([]*Order, error) {
	cur, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to query orders", zap.Error(err))
		return nil, err
	}

	var orders []*Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

const hexIDLen = 24

func parseHexID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.ToLower(strings.TrimSpace(id)))
	if err != nil {
		return primitive.NilObjectID, ErrBadID
	}
	return oid, nil
}
