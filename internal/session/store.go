// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the client-side view of who is signed in.
//
// A [Store] is constructed once at startup and handed to every consumer. It
// drives the login, register, logout and initialize flows through the
// transport client, normalizes their responses with package envelope and
// publishes every state transition to subscribers.
//
// The bearer token and the session user are always cleared together.
package session

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/internal/app"
	"github.com/MKhiriev/go-expense-keeper/internal/envelope"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/models"
)

const initializeKey = "initialize"

// Store is the session state container.
type Store struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu          sync.RWMutex
	state       State
	subscribers []subscriber
	nextSubID   uint64

	// notifyMu keeps notifications in mutation order.
	notifyMu sync.Mutex

	initGroup singleflight.Group
}

type subscriber struct {
	id uint64
	fn func(State)
}

// New returns an uninitialized, anonymous Store.
func New(adapter adapter.ServerAdapter, logger *logger.Logger) *Store {
	return &Store{adapter: adapter, logger: logger}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Subscribe registers fn to be called synchronously, in subscription order,
// after every state change. The returned function removes the subscription.
// fn may read the store but must not change it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

// update applies mutate under the lock and notifies subscribers outside it.
func (s *Store) update(mutate func(*State)) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	mutate(&s.state)
	snapshot := s.state.clone()
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snapshot.clone())
	}
}

func (s *Store) setLoading(loading bool) {
	s.update(func(st *State) { st.IsLoading = loading })
}

// Initialize restores the session from the persisted token by fetching the
// current user. It runs at most once: later calls return immediately, and
// concurrent first calls share one fetch. Any failure leaves the store
// anonymous with the token cleared. IsInitialized is true afterwards.
func (s *Store) Initialize(ctx context.Context) {
	if s.State().IsInitialized {
		return
	}

	_, _, _ = s.initGroup.Do(initializeKey, func() (any, error) {
		if s.State().IsInitialized {
			return nil, nil
		}
		s.initialize(ctx)
		return nil, nil
	})
}

func (s *Store) initialize(ctx context.Context) {
	log := s.logger.GetChildLogger()

	if s.adapter.Token() == "" {
		log.Debug().Str("func", "Store.Initialize").Msg("no persisted token, starting anonymous")
		// also clears a persisted slot that failed to load
		s.adapter.SetToken(ctx, "")
		s.update(func(st *State) {
			st.User = nil
			st.IsInitialized = true
			st.IsLoading = false
		})
		return
	}

	s.setLoading(true)

	user, err := s.fetchUser(ctx)
	if err != nil {
		log.Info().Err(err).Str("func", "Store.Initialize").Msg(app.MsgSessionExpired)
		s.adapter.SetToken(ctx, "")
		s.update(func(st *State) {
			st.User = nil
			st.IsInitialized = true
			st.IsLoading = false
		})
		return
	}

	s.update(func(st *State) {
		st.User = &user
		st.IsInitialized = true
		st.IsLoading = false
	})
}

func (s *Store) fetchUser(ctx context.Context) (models.User, error) {
	env, err := s.adapter.GetUser(ctx)
	if err != nil {
		return models.User{}, err
	}
	if env == nil {
		return models.User{}, envelope.ErrNoUser
	}
	return envelope.ExtractUser(env.Raw)
}

// Login authenticates with email and password. When the response carries a
// token and a user both are committed; otherwise the previous session is
// kept. Transport failures are returned after loading is reset. The raw
// envelope is returned in every case the server answered.
func (s *Store) Login(ctx context.Context, email, password string) (*models.Envelope, error) {
	s.setLoading(true)

	env, err := s.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.setLoading(false)
		return env, err
	}

	s.commit(ctx, env, "Store.Login")
	return env, nil
}

// Register creates an account and signs in with the same commit rules as
// [Store.Login].
func (s *Store) Register(ctx context.Context, name, email, password, passwordConfirmation string) (*models.Envelope, error) {
	s.setLoading(true)

	env, err := s.adapter.Register(ctx, models.RegisterRequest{
		Name:                 name,
		Email:                email,
		Password:             password,
		PasswordConfirmation: passwordConfirmation,
	})
	if err != nil {
		s.setLoading(false)
		return env, err
	}

	s.commit(ctx, env, "Store.Register")
	return env, nil
}

func (s *Store) commit(ctx context.Context, env *models.Envelope, fn string) {
	var body []byte
	if env != nil {
		body = env.Raw
	}

	pair, err := envelope.ExtractAuth(body)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", fn).Msg(app.MsgUnrecognizedAuthResponse)
		s.setLoading(false)
		return
	}

	s.adapter.SetToken(ctx, pair.Token)
	s.update(func(st *State) {
		st.User = &pair.User
		st.IsLoading = false
	})
	s.logger.Info().Str("func", fn).Int64("user_id", pair.User.ID).Msg("session started")
}

// Logout revokes the token on the server on a best-effort basis and always
// clears the local session.
func (s *Store) Logout(ctx context.Context) {
	s.setLoading(true)

	defer func() {
		s.adapter.SetToken(ctx, "")
		s.update(func(st *State) {
			st.User = nil
			st.IsLoading = false
		})
	}()

	if _, err := s.adapter.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "Store.Logout").Msg("remote logout failed")
	}
}

// Invalidate clears the token and the user together. Services call it when
// the server rejects the token.
func (s *Store) Invalidate(ctx context.Context, reason error) {
	s.logger.Info().Err(reason).Str("func", "Store.Invalidate").Msg(app.MsgSessionExpired)

	s.adapter.SetToken(ctx, "")
	s.update(func(st *State) { st.User = nil })
}

// Revalidate re-fetches the current user while a token is held. A 401
// invalidates the session; other failures are returned and leave it intact.
func (s *Store) Revalidate(ctx context.Context) error {
	if s.adapter.Token() == "" {
		return nil
	}

	user, err := s.fetchUser(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		s.Invalidate(ctx, err)
		return err
	}
	if err != nil {
		return err
	}

	s.update(func(st *State) { st.User = &user })
	return nil
}
