// Package session holds who the client is signed in as.
//
// A Store starts in the loading state. Resolve restores a previous session from
// the durable credential slot by fetching the profile; it runs at most once per
// process. Login and Logout are the only other transitions.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/presale/internal/client/models"
	"github.com/dmitrijs2005/presale/internal/common"
	"github.com/dmitrijs2005/presale/internal/logging"
)

// Backend is the part of the API client the session drives: the request
// channel's credential header and the profile endpoint.
type Backend interface {
	SetAccessToken(token string)
	ClearAccessToken()
	Profile(ctx context.Context) (*models.User, error)
}

// ErrCredentialNotCleared means Logout signed out the running process but the
// durable slot still holds the old credential.
var ErrCredentialNotCleared = errors.New("stored credential not cleared")

// Session is a point-in-time view of the store.
type Session struct {
	Identity  *models.User
	IsLoading bool
}

type Store struct {
	backend Backend
	creds   CredentialStore
	log     logging.Logger

	once sync.Once

	mu       sync.RWMutex
	identity *models.User
	loading  bool
}

func NewStore(backend Backend, creds CredentialStore, log logging.Logger) *Store {
	return &Store{backend: backend, creds: creds, log: log, loading: true}
}

// Resolve restores the stored session, if any, and returns the result.
// Concurrent callers wait for the first resolution; later calls return the
// current snapshot without touching the network.
func (s *Store) Resolve(ctx context.Context) Session {
	s.once.Do(func() { s.resolve(ctx) })
	return s.Snapshot()
}

func (s *Store) resolve(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token, err := s.creds.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "credential slot unreadable", "error", err)
		return
	}
	if token == "" {
		return
	}

	s.backend.SetAccessToken(token)
	user, err := s.backend.Profile(ctx)
	if err != nil {
		s.log.Info(ctx, "stored credential rejected, signing out", "error", err)
		s.backend.ClearAccessToken()
		if err := s.creds.Clear(ctx); err != nil {
			s.log.Warn(ctx, "failed to clear credential slot", "error", err)
		}
		return
	}

	s.mu.Lock()
	s.identity = user
	s.mu.Unlock()
	s.log.Info(ctx, "session restored", "email", user.Email)
}

// Login stores token durably, attaches it to outgoing requests and records
// user as the identity. A later Login overwrites both. A restore still in
// flight finishes first, so it cannot clear the new credential.
func (s *Store) Login(ctx context.Context, token string, user *models.User) error {
	s.once.Do(func() {})

	if err := s.creds.Save(ctx, token); err != nil {
		return err
	}
	s.backend.SetAccessToken(token)

	s.mu.Lock()
	s.identity = user
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Logout forgets the identity and the credential. The in-memory state is
// cleared even when the durable slot cannot be; the error then reports that
// the stored credential survives for the next run.
func (s *Store) Logout(ctx context.Context) error {
	s.once.Do(func() {})
	s.backend.ClearAccessToken()

	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()

	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrCredentialNotCleared, err)
	}
	return nil
}

func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{Identity: s.identity, IsLoading: s.loading}
}

func (s *Store) Identity() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// RequireIdentity returns the signed-in user or ErrAuthenticationRequired.
func (s *Store) RequireIdentity() (*models.User, error) {
	if u := s.Identity(); u != nil {
		return u, nil
	}
	return nil, common.ErrAuthenticationRequired
}
