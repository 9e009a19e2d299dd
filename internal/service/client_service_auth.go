// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/blog-auth/internal/adapter"
	"github.com/MKhiriev/blog-auth/internal/logger"
	"github.com/MKhiriev/blog-auth/internal/session"
	"github.com/MKhiriev/blog-auth/internal/store"
	"github.com/MKhiriev/blog-auth/models"
)

type clientAuthService struct {
	localStore store.LocalStorage
	adapter    adapter.ServerAdapter
	sessions   *session.Provider
}

// NewClientAuthService wires the client auth flows. sessions must read from
// localStore.
func NewClientAuthService(localStore store.LocalStorage, serverAdapter adapter.ServerAdapter, sessions *session.Provider) ClientAuthService {
	return &clientAuthService{
		localStore: localStore,
		adapter:    serverAdapter,
		sessions:   sessions,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	registered, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return registered, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (session.State, error) {
	if err := req.Validate(); err != nil {
		return session.Anonymous(), fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	loggedIn, err := a.adapter.Login(ctx, req)
	if err != nil {
		return session.Anonymous(), fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.authenticate(ctx, loggedIn.Token)
}

func (a *clientAuthService) Refresh(ctx context.Context) (session.State, error) {
	current, err := a.Token(ctx)
	if err != nil {
		return session.Anonymous(), err
	}

	refreshed, err := a.adapter.Refresh(ctx, current)
	if err != nil {
		return session.Anonymous(), mapAdapterError(err)
	}

	return a.authenticate(ctx, refreshed.Token)
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.localStore.RemoveItem(ctx, session.TokenKey); err != nil {
		return fmt.Errorf("remove stored token: %w", err)
	}

	a.sessions.NotifyLoggedOut()
	return nil
}

func (a *clientAuthService) Session(ctx context.Context) session.State {
	return a.sessions.CurrentSession(ctx)
}

func (a *clientAuthService) Token(ctx context.Context) (string, error) {
	tokenString, err := a.localStore.GetItem(ctx, session.TokenKey)
	if err != nil {
		return "", fmt.Errorf("read stored token: %w", err)
	}
	if tokenString == "" {
		return "", ErrNotLoggedIn
	}

	return tokenString, nil
}

func (a *clientAuthService) WhoAmI(ctx context.Context) (models.MeResponse, error) {
	tokenString, err := a.Token(ctx)
	if err != nil {
		return models.MeResponse{}, err
	}

	me, err := a.adapter.Me(ctx, tokenString)
	if err != nil {
		return models.MeResponse{}, mapAdapterError(err)
	}

	return me, nil
}

func (a *clientAuthService) CheckPolicy(ctx context.Context, policyName string) (bool, error) {
	tokenString, err := a.Token(ctx)
	if err != nil {
		return false, err
	}

	allowed, err := a.adapter.CheckPolicy(ctx, tokenString, policyName)
	if err != nil {
		return false, mapAdapterError(err)
	}

	return allowed, nil
}

// authenticate persists tokenString and broadcasts the derived session.
func (a *clientAuthService) authenticate(ctx context.Context, tokenString string) (session.State, error) {
	if err := a.localStore.SetItem(ctx, session.TokenKey, tokenString); err != nil {
		return session.Anonymous(), fmt.Errorf("store token: %w", err)
	}

	state := a.sessions.NotifyAuthenticated(tokenString)
	if !state.IsAuthenticated() {
		logger.FromContext(ctx).Warn().Msg("server issued a token that does not derive an authenticated session")
	}

	return state, nil
}
