// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/blog-auth/internal/logger"
)

// TokenKey is the local storage key holding the raw token.
const TokenKey = "authToken"

// Listener receives every broadcast state.
type Listener func(State)

// Provider recomputes the session from storage on each query and
// broadcasts state transitions to subscribers.
type Provider struct {
	storage Storage
	now     func() time.Time

	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
}

// Option configures a Provider.
type Option func(*Provider)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}

// NewProvider returns a Provider reading the token from storage.
func NewProvider(storage Storage, opts ...Option) *Provider {
	p := &Provider{
		storage:   storage,
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CurrentSession reads the stored token and derives the state from it. A
// storage failure yields the anonymous state.
func (p *Provider) CurrentSession(ctx context.Context) State {
	tokenString, err := p.storage.GetItem(ctx, TokenKey)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token unavailable, treating as anonymous")
		return Anonymous()
	}

	return Derive(tokenString, p.now())
}

// Subscribe registers l for future broadcasts and returns a function that
// removes it.
func (p *Provider) Subscribe(l Listener) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = l
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

// NotifyAuthenticated derives the state of tokenString and broadcasts it.
// It does not touch storage.
func (p *Provider) NotifyAuthenticated(tokenString string) State {
	state := Derive(tokenString, p.now())
	p.broadcast(state)
	return state
}

// NotifyLoggedOut broadcasts the anonymous state.
func (p *Provider) NotifyLoggedOut() {
	p.broadcast(Anonymous())
}

// broadcast calls listeners synchronously, outside the lock, so a listener
// may subscribe or unsubscribe.
func (p *Provider) broadcast(state State) {
	p.mu.Lock()
	listeners := make([]Listener, 0, len(p.listeners))
	for id := 0; id < p.nextID; id++ {
		if l, ok := p.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	p.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}
