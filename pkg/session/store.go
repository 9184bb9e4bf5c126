// Package session owns the client's authenticated identity.
//
// The Store is the single writer of the session: a bearer token plus the
// user it resolved to, mirrored into durable storage so a restart resumes
// the previous login. Everything else in the client only reads — route
// guards and the UI through snapshots and subscriptions, the HTTP client
// through the narrow Token read path.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Aswin-K5/nutriview/pkg/model"
	"github.com/Aswin-K5/nutriview/pkg/storage"
)

// Storage keys, prefixed so the kv file can hold unrelated client state.
const (
	keyToken = "nutriview.token"
	keyUser  = "nutriview.user"
)

var ErrEmptyToken = errors.New("session: token must not be empty")
var ErrNilUser = errors.New("session: user must not be nil")

// Store holds the current session and mirrors every mutation into durable
// storage before updating the in-memory copy, so a crash between the two
// never leaves storage claiming a login that memory did not see.
type Store struct {
	mu      sync.RWMutex
	current model.Session

	kv storage.KeyValue

	subMu   sync.Mutex
	subs    map[int]func(model.Session)
	nextSub int
}

// New creates a Store backed by kv and restores any persisted session.
// A missing key, or a user record that fails to parse, yields a logged-out
// store; corrupt storage must never prevent the client from starting.
func New(kv storage.KeyValue) *Store {
	s := &Store{
		kv:   kv,
		subs: make(map[int]func(model.Session)),
	}
	s.restore()
	return s
}

func (s *Store) restore() {
	token, haveToken := s.kv.Get(keyToken)
	raw, haveUser := s.kv.Get(keyUser)
	if !haveToken || token == "" || !haveUser {
		// One key without the other is a logged-out state; drop the leftover
		// so storage agrees with what we report.
		s.clearStorage()
		return
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		slog.Warn("session: discarding unreadable stored user", "err", err)
		s.clearStorage()
		return
	}

	s.current = model.Session{Token: token, User: &user}
}

// SetAuth establishes a session. Storage is written first (token and user
// together), then the in-memory snapshot is swapped and observers notified.
func (s *Store) SetAuth(token string, user *model.User) error {
	if token == "" {
		return ErrEmptyToken
	}
	if user == nil {
		return ErrNilUser
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}

	if err := s.kv.Set(keyToken, token); err != nil {
		return fmt.Errorf("session: persist token: %w", err)
	}
	if err := s.kv.Set(keyUser, string(raw)); err != nil {
		// Do not leave a token without a user behind.
		_ = s.kv.Delete(keyToken)
		return fmt.Errorf("session: persist user: %w", err)
	}

	u := *user
	s.mu.Lock()
	s.current = model.Session{Token: token, User: &u}
	snap := s.current
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// Logout clears storage and memory. Calling it while logged out is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	wasLoggedIn := s.current.LoggedIn()
	s.clearStorage()
	s.current = model.Session{}
	s.mu.Unlock()

	if wasLoggedIn {
		s.notify(model.Session{})
	}
}

// UpdateUser replaces the user record without touching the token, e.g.
// after a profile-affecting change. No-op error when logged out.
func (s *Store) UpdateUser(user *model.User) error {
	if user == nil {
		return ErrNilUser
	}

	s.mu.Lock()
	if !s.current.LoggedIn() {
		s.mu.Unlock()
		return errors.New("session: not logged in")
	}

	raw, err := json.Marshal(user)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := s.kv.Set(keyUser, string(raw)); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("session: persist user: %w", err)
	}

	u := *user
	s.current.User = &u
	snap := s.current
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// Current returns a snapshot of the in-memory session.
func (s *Store) Current() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token reads the bearer token from the durable mirror. This is the read
// path the HTTP client authorizes requests from; the Store remains the
// only writer of the underlying keys.
func (s *Store) Token() (string, bool) {
	token, ok := s.kv.Get(keyToken)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// Subscribe registers fn to run after every session change and returns an
// unsubscribe func. Notifications carry the post-change snapshot.
func (s *Store) Subscribe(fn func(model.Session)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) clearStorage() {
	if err := s.kv.Delete(keyToken); err != nil {
		slog.Error("session: clear token", "err", err)
	}
	if err := s.kv.Delete(keyUser); err != nil {
		slog.Error("session: clear user", "err", err)
	}
}

func (s *Store) notify(snap model.Session) {
	s.subMu.Lock()
	fns := make([]func(model.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
