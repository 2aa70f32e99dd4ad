// Package session holds the single active interactive session.
package session

import (
	"time"

	"github.com/andrisetia/tokojus/internal/domain"
	"github.com/google/uuid"
)

// Manager owns the one session slot of the interactive console. The console
// runs on a single goroutine, so access needs no locking.
type Manager struct {
	current *domain.Session
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{}
}

// Start opens a session for the account, replacing any previous one.
func (m *Manager) Start(account domain.Account) domain.Session {
	m.current = &domain.Session{
		ID:        uuid.New(),
		AccountID: account.ID,
		Username:  account.Username,
		Balance:   account.Balance,
		StartedAt: time.Now(),
	}

	return *m.current
}

// Current returns the active session, if any.
func (m *Manager) Current() (domain.Session, bool) {
	if m.current == nil {
		return domain.Session{}, false
	}

	return *m.current, true
}

// SetBalance updates the active session's balance snapshot.
func (m *Manager) SetBalance(balance int64) {
	if m.current != nil {
		m.current.Balance = balance
	}
}

// Clear ends the active session. It reports false when no session is active.
func (m *Manager) Clear() bool {
	if m.current == nil {
		return false
	}

	m.current = nil

	return true
}
