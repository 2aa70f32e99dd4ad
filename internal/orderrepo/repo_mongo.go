// Package orderrepo manages repository layer of orders.
package orderrepo

import (
	"context"
	"time"

	"github.com/andrisetia/tokojus/internal/domain"
	"github.com/andrisetia/tokojus/pkg/errorspkg"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the orders collection name.
const CollectionName = "orders"

// RepoMongo facilitates order repository layer logic.
type RepoMongo struct {
	collection *mongo.Collection
}

// NewRepoMongo returns order RepoMongo.
func NewRepoMongo(db *mongo.Database) *RepoMongo {
	return &RepoMongo{
		collection: db.Collection(CollectionName),
	}
}

// CreateIndexes creates the history listing index. Called once at startup.
func (r *RepoMongo) CreateIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "account_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})

	return err
}

// Create inserts the order and then returns it.
func (r *RepoMongo) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	l := zerolog.Ctx(ctx)

	order.CreatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		l.Error().Err(err).Send()
		return order, errorspkg.ErrInternal
	}

	order.ID = res.InsertedID.(primitive.ObjectID)

	return order, nil
}

// ListByAccount returns the account's orders, most recent first. The
// iterator wraps a live cursor: it is finite, lazy and not restartable.
func (r *RepoMongo) ListByAccount(ctx context.Context, accountID primitive.ObjectID) (domain.OrderIterator, error) {
	l := zerolog.Ctx(ctx)

	cursor, err := r.collection.Find(ctx,
		bson.M{"account_id": accountID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return &cursorIterator{cursor: cursor}, nil
}

type cursorIterator struct {
	cursor  *mongo.Cursor
	current domain.Order
	err     error
}

func (it *cursorIterator) Next(ctx context.Context) bool {
	if it.err != nil || !it.cursor.Next(ctx) {
		if it.err == nil {
			it.err = it.cursor.Err()
		}

		return false
	}

	if err := it.cursor.Decode(&it.current); err != nil {
		it.err = err
		return false
	}

	return true
}

func (it *cursorIterator) Order() domain.Order {
	return it.current
}

func (it *cursorIterator) Err() error {
	return it.err
}

func (it *cursorIterator) Close(ctx context.Context) error {
	return it.cursor.Close(ctx)
}
