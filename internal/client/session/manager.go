package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/streamtube/internal/client/kvstore"
	"github.com/dmitrijs2005/streamtube/internal/common"
	"github.com/dmitrijs2005/streamtube/internal/logging"
)

// Status summarises where the session stands.
type Status string

const (
	StatusInitializing  Status = "initializing"
	StatusAnonymous     Status = "anonymous"
	StatusAuthenticated Status = "authenticated"
	// StatusDegraded means a token is held but could not be decoded.
	StatusDegraded Status = "degraded"
)

// State is a point-in-time copy of the session.
type State struct {
	Token        string
	HasToken     bool
	User         *User
	Initializing bool
}

// Status derives the session status from the snapshot.
func (s State) Status() Status {
	switch {
	case s.Initializing:
		return StatusInitializing
	case !s.HasToken:
		return StatusAnonymous
	case s.User == nil:
		return StatusDegraded
	default:
		return StatusAuthenticated
	}
}

// Manager is the single writer of the persisted token. Reads and writes of
// the in-memory state are serialised, so a reader never sees a token paired
// with another token's user.
type Manager struct {
	store kvstore.Store
	log   logging.Logger

	mu    sync.RWMutex
	state State

	initOnce sync.Once
}

// NewManager returns a Manager in the initializing state backed by store.
func NewManager(store kvstore.Store, log logging.Logger) *Manager {
	return &Manager{
		store: store,
		log:   log.With("component", "session"),
		state: State{Initializing: true},
	}
}

// Initialize restores a previously persisted token. It runs its body once;
// later calls just report the current status. It never returns an error.
func (m *Manager) Initialize(ctx context.Context) Status {
	m.initOnce.Do(func() {
		next := State{}

		token, ok, err := m.store.Get(ctx, common.SessionTokenKey)
		switch {
		case err != nil:
			m.log.Warn(ctx, "reading persisted token failed, starting anonymous", "error", err)
		case !ok:
			m.log.Debug(ctx, "no persisted token")
		default:
			next.Token, next.HasToken = token, true
			user, err := DecodeUser(token)
			if err != nil {
				m.log.Warn(ctx, "persisted token could not be decoded", "error", err)
			} else {
				next.User = user
				m.log.Info(ctx, "session restored", "user_id", user.ID)
			}
		}

		m.mu.Lock()
		m.state = next
		m.mu.Unlock()
	})

	return m.Status()
}

// Login persists token and derives the user from it.
//
// A store failure is returned and leaves the state as it was. A decode
// failure is returned too (wrapping common.ErrInvalidToken), but only after
// the token has been persisted and is held in memory with no user.
func (m *Manager) Login(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrEmptyToken
	}

	if err := m.store.Set(ctx, common.SessionTokenKey, token); err != nil {
		m.log.Error(ctx, "persisting token failed", "error", err)
		return fmt.Errorf("persist token: %w", err)
	}

	user, decodeErr := DecodeUser(token)

	m.mu.Lock()
	m.state = State{Token: token, HasToken: true, User: user}
	m.mu.Unlock()

	if decodeErr != nil {
		m.log.Error(ctx, "token accepted but could not be decoded", "error", decodeErr)
		return decodeErr
	}

	m.log.Info(ctx, "logged in", "user_id", user.ID)
	return nil
}

// Logout removes the persisted token and clears the in-memory state. The
// state is cleared even when the store fails; that failure is returned.
// Calling Logout while logged out is harmless.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.Delete(ctx, common.SessionTokenKey)
	if err != nil {
		m.log.Warn(ctx, "deleting persisted token failed", "error", err)
	}

	m.mu.Lock()
	m.state = State{}
	m.mu.Unlock()

	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// CurrentToken returns the held token and whether there is one.
func (m *Manager) CurrentToken() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Token, m.state.HasToken
}

// CurrentUser returns a copy of the user, or nil when unauthenticated.
func (m *Manager) CurrentUser() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state.User == nil {
		return nil
	}
	u := *m.state.User
	return &u
}

// IsInitializing reports whether Initialize has not finished yet.
func (m *Manager) IsInitializing() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Initializing
}

// State returns a snapshot of the session taken under the read lock.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.state
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// Status is shorthand for State().Status().
func (m *Manager) Status() Status {
	return m.State().Status()
}
