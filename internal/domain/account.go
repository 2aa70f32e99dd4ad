// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StartingBalance is credited to every account at registration, in whole rupiah.
const StartingBalance int64 = 100_000

var (
	// ErrUsernameAlreadyExists indicates that the username is already registered.
	ErrUsernameAlreadyExists = errors.New("username already exists")
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidCredentials indicates a failed login without revealing whether
	// the username exists.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidInput indicates an empty or malformed registration field.
	ErrInvalidInput = errors.New("username and password must not be empty")
	// ErrInvalidAmount indicates a non-positive top up amount.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrInsufficientBalance indicates that the balance does not cover the order total.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Account holds a registered user's credential and balance.
type Account struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"username"`
	HashedPassword string             `bson:"hashed_password"`
	Balance        int64              `bson:"balance"`
	CreatedAt      time.Time          `bson:"created_at"`
}

// CreateAccountParams is the input data to create an Account.
type CreateAccountParams struct {
	Username       string
	HashedPassword string
	Balance        int64
}
