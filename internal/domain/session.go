package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNoActiveSession indicates an operation that requires a logged in account.
var ErrNoActiveSession = errors.New("not logged in")

// Session identifies the currently authenticated account. It lives only in
// process memory and holds a snapshot of the balance for display.
type Session struct {
	ID        uuid.UUID
	AccountID primitive.ObjectID
	Username  string
	Balance   int64
	StartedAt time.Time
}
