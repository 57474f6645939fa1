// Package auth drives sign-in, sign-up and sign-out on top of the session
// store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tableflip.dev/advcontrol/pkg/logging"
	"tableflip.dev/advcontrol/pkg/session"
)

// Authenticator exchanges credentials for a session.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (session.Session, error)
	Register(ctx context.Context, email, password, name string) (session.Session, error)
}

// SessionStore persists the current session.
type SessionStore interface {
	Restore(ctx context.Context) *session.Session
	Save(ctx context.Context, s session.Session) error
	Clear(ctx context.Context) error
}

// ErrNotPersisted wraps a failed Save after a successful login. The user must
// sign in again.
var ErrNotPersisted = errors.New("auth: signed in but the session could not be stored")

// Service owns the in-memory current session.
type Service struct {
	client Authenticator
	store  SessionStore

	mu      sync.RWMutex
	current *session.Session
}

func NewService(client Authenticator, store SessionStore) *Service {
	return &Service{client: client, store: store}
}

// Restore loads the persisted session at startup. nil means signed out.
func (s *Service) Restore(ctx context.Context) *session.Session {
	sess := s.store.Restore(ctx)
	s.set(sess)
	return sess
}

// SignIn authenticates and persists the session. Authentication errors are
// returned as-is.
func (s *Service) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	sess, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, sess)
}

// SignUp creates an account and persists the session.
func (s *Service) SignUp(ctx context.Context, email, password, name string) (*session.Session, error) {
	sess, err := s.client.Register(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, sess)
}

func (s *Service) persist(ctx context.Context, sess session.Session) (*session.Session, error) {
	if err := s.store.Save(ctx, sess); err != nil {
		s.set(nil)
		return nil, fmt.Errorf("%w: %v", ErrNotPersisted, err)
	}
	logging.Infof("auth: signed in as %s", sess.User.Email)
	s.set(&sess)
	return &sess, nil
}

// SignOut forgets the session locally. It never contacts the backend.
func (s *Service) SignOut(ctx context.Context) error {
	s.set(nil)
	return s.store.Clear(ctx)
}

// Current returns the in-memory session, or nil.
func (s *Service) Current() *session.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Require returns the current session or session.ErrNoSession.
func (s *Service) Require() (*session.Session, error) {
	if cur := s.Current(); cur != nil {
		return cur, nil
	}
	return nil, session.ErrNoSession
}

func (s *Service) set(sess *session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sess
}
