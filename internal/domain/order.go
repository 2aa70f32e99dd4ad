package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrEmptyOrder indicates that the order has no line items.
	ErrEmptyOrder = errors.New("nothing ordered")
	// ErrUnknownMenuItem indicates a selection code that is not on the menu.
	ErrUnknownMenuItem = errors.New("menu item not available")
	// ErrInvalidQuantity indicates a non-positive line item quantity.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrQuantityTooLarge indicates a quantity above MaxQuantity.
	ErrQuantityTooLarge = errors.New("quantity is too large")
)

// MaxQuantity bounds a single line item quantity so subtotals and totals
// stay within int64.
const MaxQuantity = 1_000_000

// Order is an immutable record of a completed purchase.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AccountID primitive.ObjectID `bson:"account_id"`
	Username  string             `bson:"username"`
	Items     []OrderItem        `bson:"items"`
	Total     int64              `bson:"total"`
	CreatedAt time.Time          `bson:"created_at"`
}

// OrderItem is a single line of an Order.
type OrderItem struct {
	Name      string `bson:"name"`
	UnitPrice int64  `bson:"unit_price"`
	Quantity  int    `bson:"quantity"`
	Subtotal  int64  `bson:"subtotal"`
}

// Selection is one (menu code, quantity) pair of an order request.
type Selection struct {
	Code     int
	Quantity int
}

// OrderIterator walks an account's order history most recent first.
// It reflects a point in time snapshot and cannot be restarted.
type OrderIterator interface {
	// Next advances the iterator and reports whether an order is available.
	Next(ctx context.Context) bool
	// Order returns the order the iterator currently points at.
	Order() Order
	// Err returns the first error encountered while iterating.
	Err() error
	// Close releases the underlying resources.
	Close(ctx context.Context) error
}
