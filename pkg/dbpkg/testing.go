package dbpkg

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupTest starts a throwaway MongoDB container and returns a database
// handle for repository tests. The container is terminated on test cleanup.
func SetupTest(t *testing.T) *mongo.Database {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping MongoDB container test in short mode")
	}

	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("mongodb.Run() failed: %v", err)
	}

	t.Cleanup(func() {
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("mongoContainer.ConnectionString() failed: %v", err)
	}

	db, err := Setup(ctx, uri, "testdb")
	if err != nil {
		t.Fatalf("dbpkg.Setup(%v) failed: %v", uri, err)
	}

	return db
}
