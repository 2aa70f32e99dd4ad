package accountrepo

import (
	"context"
	"testing"

	"github.com/andrisetia/tokojus/internal/domain"
	"github.com/andrisetia/tokojus/pkg/dbpkg"
	"github.com/andrisetia/tokojus/pkg/randompkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupRepo(t *testing.T) *RepoMongo {
	t.Helper()

	db := dbpkg.SetupTest(t)
	repo := NewRepoMongo(db)

	require.NoError(t, repo.CreateIndexes(context.Background()))

	return repo
}

func createRandomAccount(t *testing.T, repo *RepoMongo) domain.Account {
	t.Helper()

	arg := domain.CreateAccountParams{
		Username:       randompkg.Username(),
		HashedPassword: randompkg.String(32),
		Balance:        domain.StartingBalance,
	}

	account, err := repo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.False(t, account.ID.IsZero())
	require.Equal(t, arg.Username, account.Username)
	require.Equal(t, domain.StartingBalance, account.Balance)
	require.False(t, account.CreatedAt.IsZero())

	return account
}

func TestCreateAndGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	account := createRandomAccount(t, repo)

	got, err := repo.Get(ctx, account.Username)
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, account.Username, got.Username)
	assert.Equal(t, account.HashedPassword, got.HashedPassword)
	assert.Equal(t, account.Balance, got.Balance)

	gotByID, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Username, gotByID.Username)

	// The unique index must reject a second account with the same username.
	_, err = repo.Create(ctx, domain.CreateAccountParams{
		Username:       account.Username,
		HashedPassword: randompkg.String(32),
		Balance:        domain.StartingBalance,
	})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)

	_, err = repo.Get(ctx, "no-such-user")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = repo.GetByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestTopUpAndDebit(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	account := createRandomAccount(t, repo)

	topped, err := repo.TopUp(ctx, account.ID, 5_000)
	require.NoError(t, err)
	assert.Equal(t, account.Balance+5_000, topped.Balance)

	debited, err := repo.Debit(ctx, account.ID, 26_000)
	require.NoError(t, err)
	assert.Equal(t, topped.Balance-26_000, debited.Balance)

	// A debit above the balance must not change anything.
	_, err = repo.Debit(ctx, account.ID, debited.Balance+1)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	unchanged, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, debited.Balance, unchanged.Balance)

	// Draining the balance exactly to zero is allowed.
	drained, err := repo.Debit(ctx, account.ID, unchanged.Balance)
	require.NoError(t, err)
	assert.Equal(t, int64(0), drained.Balance)

	_, err = repo.TopUp(ctx, primitive.NewObjectID(), 1_000)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = repo.Debit(ctx, primitive.NewObjectID(), 1_000)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
