package session

import (
	"testing"

	"github.com/andrisetia/tokojus/internal/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()

	if _, ok := m.Current(); ok {
		t.Fatal("Current() reported an active session on a fresh manager")
	}

	if m.Clear() {
		t.Fatal("Clear() = true on a fresh manager")
	}

	account := domain.Account{
		ID:       primitive.NewObjectID(),
		Username: "alice",
		Balance:  100_000,
	}

	sess := m.Start(account)

	if sess.Username != account.Username || sess.AccountID != account.ID {
		t.Errorf("Start(%+v) = %+v, session does not match account", account, sess)
	}

	if sess.ID == uuid.Nil {
		t.Error("Start() did not assign a session id")
	}

	got, ok := m.Current()
	if !ok || got.ID != sess.ID {
		t.Errorf("Current() = %+v, %v, want the started session", got, ok)
	}

	m.SetBalance(74_000)

	if got, _ := m.Current(); got.Balance != 74_000 {
		t.Errorf("Current().Balance = %d after SetBalance, want 74000", got.Balance)
	}

	if !m.Clear() {
		t.Error("Clear() = false with an active session")
	}

	if _, ok := m.Current(); ok {
		t.Error("Current() reported an active session after Clear")
	}
}
