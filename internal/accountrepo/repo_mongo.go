// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/andrisetia/tokojus/internal/domain"
	"github.com/andrisetia/tokojus/pkg/errorspkg"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the accounts collection name.
const CollectionName = "accounts"

// RepoMongo facilitates account repository layer logic.
type RepoMongo struct {
	collection *mongo.Collection
}

// NewRepoMongo returns account RepoMongo.
func NewRepoMongo(db *mongo.Database) *RepoMongo {
	return &RepoMongo{
		collection: db.Collection(CollectionName),
	}
}

// CreateIndexes creates the unique username index. Called once at startup.
func (r *RepoMongo) CreateIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return err
}

// Create creates the account and then returns it.
func (r *RepoMongo) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	account := domain.Account{
		Username:       arg.Username,
		HashedPassword: arg.HashedPassword,
		Balance:        arg.Balance,
		CreatedAt:      time.Now(),
	}

	res, err := r.collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return account, domain.ErrUsernameAlreadyExists
		}

		l.Error().Err(err).Send()

		return account, errorspkg.ErrInternal
	}

	account.ID = res.InsertedID.(primitive.ObjectID)

	return account, nil
}

// Get returns the account with the given username.
func (r *RepoMongo) Get(ctx context.Context, username string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	var account domain.Account

	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return account, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return account, errorspkg.ErrInternal
	}

	return account, nil
}

// GetByID returns the account with the given id.
func (r *RepoMongo) GetByID(ctx context.Context, id primitive.ObjectID) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	var account domain.Account

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return account, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return account, errorspkg.ErrInternal
	}

	return account, nil
}

// TopUp atomically credits the balance and returns the updated account.
func (r *RepoMongo) TopUp(ctx context.Context, id primitive.ObjectID, amount int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	var account domain.Account

	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"balance": amount}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&account)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return account, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return account, errorspkg.ErrInternal
	}

	return account, nil
}

// Debit atomically debits the balance and returns the updated account.
// The update matches only while balance >= amount, so a committed balance
// can never go negative even with concurrent writers.
func (r *RepoMongo) Debit(ctx context.Context, id primitive.ObjectID, amount int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	var account domain.Account

	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "balance": bson.M{"$gte": amount}},
		bson.M{"$inc": bson.M{"balance": -amount}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&account)

	if err == nil {
		return account, nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		l.Error().Err(err).Send()
		return account, errorspkg.ErrInternal
	}

	// No match: either the account is gone or the guard failed.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return account, getErr
	}

	return account, domain.ErrInsufficientBalance
}
