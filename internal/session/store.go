package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"stepify-cli/internal/api"
	"stepify-cli/internal/localstate"
	"stepify-cli/internal/model"
)

// Snapshot is the externally visible session state. Err is only meaningful
// once Loading is false, and is a sub-state of unauthenticated rather than a
// terminal condition: clearing it returns to plain unauthenticated.
type Snapshot struct {
	User          *model.UserProfile
	Authenticated bool
	Loading       bool
	Err           string
}

// Store is the single source of truth for "am I logged in and as whom".
// It is the sole writer of the persisted token; the Gateway reads the token
// per request and routes 401 evictions back through InvalidateAuth.
type Store struct {
	client *api.Client
	tokens *localstate.TokenStore

	mu       sync.Mutex
	snap     Snapshot
	watchers map[int]func(Snapshot)
	nextID   int
}

// NewStore builds a store in the Loading state and wires itself in as the
// Gateway's 401 eviction hook. Nothing settles until Initialize runs; the
// bootstrap sequence owns that call.
func NewStore(client *api.Client, tokens *localstate.TokenStore) *Store {
	s := &Store{
		client:   client,
		tokens:   tokens,
		snap:     Snapshot{Loading: true},
		watchers: make(map[int]func(Snapshot)),
	}
	client.OnAuthLost(s.InvalidateAuth)
	return s
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Watch registers a subscriber notified on every settle or change, starting
// with the current state. The returned cancel unregisters it.
func (s *Store) Watch(fn func(Snapshot)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	current := s.snap
	s.mu.Unlock()

	fn(current)
	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

func (s *Store) settle(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	fns := make([]func(Snapshot), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Initialize resolves the persisted token into a settled session. With no
// token it settles unauthenticated without touching the network. With one,
// it validates against the backend; any failure there, 401 included, is the
// expected "token expired while away" case and is swallowed, not surfaced.
func (s *Store) Initialize(ctx context.Context) error {
	token, err := s.tokens.Token()
	if err != nil || strings.TrimSpace(token) == "" {
		s.settle(Snapshot{})
		return nil
	}

	profile, err := s.client.Profile(ctx)
	if err != nil || profile == nil {
		_ = s.tokens.Clear()
		s.settle(Snapshot{})
		return nil
	}
	s.settle(Snapshot{User: profile, Authenticated: true})
	return nil
}

// LoginWithToken verifies and persists a token. Unlike Initialize this
// follows an explicit user action, so failures settle unauthenticated WITH
// a visible error message.
func (s *Store) LoginWithToken(ctx context.Context, token string) error {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		err := fmt.Errorf("token is required")
		s.settle(Snapshot{Err: err.Error()})
		return err
	}

	profile, err := s.client.VerifyToken(ctx, trimmed)
	if err != nil {
		s.settle(Snapshot{Err: err.Error()})
		return err
	}
	if profile == nil {
		// verification raced a teardown; stay unauthenticated quietly
		s.settle(Snapshot{})
		return nil
	}
	if err := s.tokens.Save(trimmed); err != nil {
		s.settle(Snapshot{Err: err.Error()})
		return err
	}
	s.settle(Snapshot{User: profile, Authenticated: true})
	return nil
}

// Logout clears the persisted token and settles unauthenticated. Calling it
// while already logged out is a no-op besides re-announcing the state.
func (s *Store) Logout() error {
	if err := s.tokens.Clear(); err != nil {
		return err
	}
	s.settle(Snapshot{})
	return nil
}

// InvalidateAuth is the Gateway's 401 eviction path: token gone, session
// unauthenticated, no error message (the failing call carries its own).
func (s *Store) InvalidateAuth() {
	_ = s.tokens.Clear()
	s.settle(Snapshot{})
}

// SetError settles unauthenticated with a visible message. The error state
// is a sub-state of unauthenticated, so any standing session is dropped
// rather than carrying a message next to Authenticated=true.
func (s *Store) SetError(msg string) {
	s.settle(Snapshot{Err: msg})
}

func (s *Store) ClearError() {
	s.mu.Lock()
	snap := s.snap
	s.mu.Unlock()
	if snap.Err == "" {
		return
	}
	snap.Err = ""
	s.settle(snap)
}
