// Package session persists the signed-in user's token and profile so a
// restart does not force a new login.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tableflip.dev/advcontrol/pkg/logging"
	"tableflip.dev/advcontrol/pkg/store"
)

// Slot names in durable storage.
const (
	TokenSlot = "token"
	UserSlot  = "user"
)

// ErrNoSession is returned by callers that need a signed-in user when none is
// stored.
var ErrNoSession = errors.New("session: not signed in")

// User is the signed-in profile.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"nome"`
}

// Session is a bearer token plus the user it belongs to.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Store reads and writes the token and user slots together.
type Store struct {
	mu    sync.Mutex
	slots store.Slots
}

func NewStore(slots store.Slots) *Store {
	return &Store{slots: slots}
}

// Restore returns the persisted session, or nil when either slot is missing or
// unreadable. It never fails; problems are logged and treated as signed out.
func (s *Store) Restore(ctx context.Context) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok, err := s.slots.Get(ctx, TokenSlot)
	if err != nil {
		logging.Warnf("session: read token: %v", err)
		return nil
	}
	if !ok || strings.TrimSpace(token) == "" {
		return nil
	}

	raw, ok, err := s.slots.Get(ctx, UserSlot)
	if err != nil {
		logging.Warnf("session: read user: %v", err)
		return nil
	}
	if !ok {
		logging.Warnf("session: token stored without a user, ignoring")
		return nil
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		logging.Warnf("session: malformed user record: %v", err)
		return nil
	}
	if u.ID == "" {
		logging.Warnf("session: user record has no id, ignoring")
		return nil
	}
	return &Session{Token: token, User: u}
}

// Save persists both slots. When the second write fails the first is rolled
// back and the error is returned; the caller must treat the user as signed out.
func (s *Store) Save(ctx context.Context, sess Session) error {
	if strings.TrimSpace(sess.Token) == "" {
		return errors.New("session: token required")
	}
	user, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if batch, ok := s.slots.(store.BatchSlots); ok {
		if err := batch.PutAll(ctx, map[string]string{TokenSlot: sess.Token, UserSlot: string(user)}); err != nil {
			return fmt.Errorf("session: save: %w", err)
		}
		return nil
	}

	if err := s.slots.Put(ctx, TokenSlot, sess.Token); err != nil {
		s.rollback(ctx)
		return fmt.Errorf("session: save token: %w", err)
	}
	if err := s.slots.Put(ctx, UserSlot, string(user)); err != nil {
		s.rollback(ctx)
		return fmt.Errorf("session: save user: %w", err)
	}
	return nil
}

// Clear removes both slots. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clear(ctx)
}

func (s *Store) clear(ctx context.Context) error {
	var errs []error
	for _, slot := range []string{TokenSlot, UserSlot} {
		if err := s.slots.Erase(ctx, slot); err != nil {
			errs = append(errs, fmt.Errorf("session: clear %s: %w", slot, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Store) rollback(ctx context.Context) {
	if err := s.clear(ctx); err != nil {
		logging.Errorf("session: rollback after failed save: %v", err)
	}
}
