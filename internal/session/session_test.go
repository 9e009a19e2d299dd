// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/blog-auth/internal/mock"
	"github.com/MKhiriev/blog-auth/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var now = time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)

// unsignedToken builds a token the provider can read. The signature is
// irrelevant for session derivation.
func unsignedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("client-does-not-know"))
	require.NoError(t, err)
	return s
}

type memStorage struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{items: make(map[string]string)}
}

func (m *memStorage) GetItem(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[key], nil
}

func (m *memStorage) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

// ── Derive ────────────────────────────────────────────────────────────────────

func TestDerive_ValidToken(t *testing.T) {
	tok := unsignedToken(t, jwt.MapClaims{
		"sub":         "42",
		"nameid":      "42",
		"unique_name": "alice",
		"name":        "alice",
		"role":        "Author",
		"exp":         now.Add(time.Hour).Unix(),
	})

	state := Derive(tok, now)

	require.True(t, state.IsAuthenticated())
	assert.Equal(t, models.Principal{UserID: 42, UserName: "alice", Role: models.RoleAuthor, Authenticated: true}, state.Principal)
	require.NotNil(t, state.ExpiresAt)
	assert.Equal(t, now.Add(time.Hour).Unix(), state.ExpiresAt.Unix())
	assert.True(t, state.IsInRole(models.RoleAuthor))
	assert.False(t, state.IsInRole(models.RoleAdmin))
}

func TestDerive_Anonymous(t *testing.T) {
	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{name: "empty", token: func(*testing.T) string { return "" }},
		{name: "whitespace", token: func(*testing.T) string { return "   " }},
		{name: "garbage", token: func(*testing.T) string { return "definitely-not-a-jwt" }},
		{name: "bad base64", token: func(*testing.T) string { return "a.%%%.c" }},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return unsignedToken(t, jwt.MapClaims{"sub": "1", "exp": now.Add(-time.Second).Unix()})
			},
		},
		{
			name: "expires exactly now",
			token: func(t *testing.T) string {
				return unsignedToken(t, jwt.MapClaims{"sub": "1", "exp": now.Unix()})
			},
		},
		{
			name: "non numeric exp",
			token: func(t *testing.T) string {
				return unsignedToken(t, jwt.MapClaims{"sub": "1", "exp": "tomorrow"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := Derive(tt.token(t), now)
			assert.False(t, state.IsAuthenticated())
			assert.Equal(t, models.Anonymous(), state.Principal)
			assert.Empty(t, state.Claims)
		})
	}
}

func TestDerive_NoExpIsAuthenticated(t *testing.T) {
	state := Derive(unsignedToken(t, jwt.MapClaims{"sub": "5", "name": "bob"}), now)

	assert.True(t, state.IsAuthenticated())
	assert.Nil(t, state.ExpiresAt)
	assert.Equal(t, int64(5), state.Principal.UserID)
	assert.Equal(t, models.RoleUnknown, state.Principal.Role)
}

// TestDerive_NormalizesClaims covers the short names, the plural "roles",
// the long URIs and array-valued claims.
func TestDerive_NormalizesClaims(t *testing.T) {
	tok := unsignedToken(t, jwt.MapClaims{
		NameIdentifierClaimURI: "7",
		NameClaimURI:           "carol",
		RoleClaimURI:           "Reader",
		"roles":                []any{"Admin", "Author"},
		"email":                "carol@example.com",
		"exp":                  now.Add(time.Minute).Unix(),
	})

	state := Derive(tok, now)

	assert.ElementsMatch(t, []Claim{
		{Type: ClaimNameID, Value: "7"},
		{Type: ClaimName, Value: "carol"},
		{Type: ClaimRole, Value: "Reader"},
		{Type: ClaimRole, Value: "Admin"},
		{Type: ClaimRole, Value: "Author"},
		{Type: "email", Value: "carol@example.com"},
		{Type: "exp", Value: "1778400060"},
	}, state.Claims)

	assert.Equal(t, int64(7), state.Principal.UserID)
	assert.Equal(t, "carol", state.Principal.UserName)
	assert.True(t, state.IsInRole(models.RoleAdmin))
	assert.True(t, state.IsInRole(models.RoleReader))
}

func TestDerive_StableOrder(t *testing.T) {
	tok := unsignedToken(t, jwt.MapClaims{"b": "2", "a": "1", "c": "3"})

	first := Derive(tok, now)
	for range 10 {
		assert.Equal(t, first.Claims, Derive(tok, now).Claims)
	}
}

// ── Provider ──────────────────────────────────────────────────────────────────

func TestProvider_CurrentSession_ReadsStoredToken(t *testing.T) {
	storage := newMemStorage()
	p := NewProvider(storage, WithClock(func() time.Time { return now }))
	ctx := context.Background()

	assert.False(t, p.CurrentSession(ctx).IsAuthenticated())

	require.NoError(t, storage.SetItem(ctx, TokenKey, unsignedToken(t, jwt.MapClaims{
		"sub":  "3",
		"role": "Admin",
		"exp":  now.Add(time.Hour).Unix(),
	})))

	state := p.CurrentSession(ctx)
	assert.True(t, state.IsAuthenticated())
	assert.Equal(t, models.RoleAdmin, state.Principal.Role)
}

// TestProvider_CurrentSession_ReevaluatesExpiry verifies that the same stored
// token turns anonymous once the clock passes its expiry.
func TestProvider_CurrentSession_ReevaluatesExpiry(t *testing.T) {
	storage := newMemStorage()
	current := now
	p := NewProvider(storage, WithClock(func() time.Time { return current }))
	ctx := context.Background()

	require.NoError(t, storage.SetItem(ctx, TokenKey, unsignedToken(t, jwt.MapClaims{
		"sub": "3",
		"exp": now.Add(time.Minute).Unix(),
	})))

	assert.True(t, p.CurrentSession(ctx).IsAuthenticated())

	current = now.Add(2 * time.Minute)
	assert.False(t, p.CurrentSession(ctx).IsAuthenticated())
}

func TestProvider_CurrentSession_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)
	storage.EXPECT().GetItem(gomock.Any(), TokenKey).Return("", errors.New("disk unavailable"))

	state := NewProvider(storage).CurrentSession(context.Background())

	assert.False(t, state.IsAuthenticated())
}

func TestProvider_Notifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	// Notifications never touch storage.
	p := NewProvider(mock.NewMockStorage(ctrl), WithClock(func() time.Time { return now }))

	var received []State
	unsubscribe := p.Subscribe(func(s State) { received = append(received, s) })

	tok := unsignedToken(t, jwt.MapClaims{"sub": "8", "name": "dave", "role": "Reader", "exp": now.Add(time.Hour).Unix()})
	returned := p.NotifyAuthenticated(tok)
	p.NotifyLoggedOut()

	require.Len(t, received, 2)
	assert.Equal(t, returned, received[0])
	assert.True(t, received[0].IsAuthenticated())
	assert.Equal(t, "dave", received[0].Principal.UserName)
	assert.False(t, received[1].IsAuthenticated())

	unsubscribe()
	p.NotifyLoggedOut()
	assert.Len(t, received, 2)
}

func TestProvider_NotifyAuthenticated_BadToken(t *testing.T) {
	p := NewProvider(newMemStorage())

	var got State
	p.Subscribe(func(s State) { got = s })

	p.NotifyAuthenticated("broken")
	assert.False(t, got.IsAuthenticated())
}

// TestProvider_ListenerMaySubscribe verifies that broadcasting does not hold
// the listener lock while calling listeners.
func TestProvider_ListenerMaySubscribe(t *testing.T) {
	p := NewProvider(newMemStorage())

	calls := 0
	p.Subscribe(func(State) {
		calls++
		p.Subscribe(func(State) { calls++ })
	})

	p.NotifyLoggedOut()
	assert.Equal(t, 1, calls)

	p.NotifyLoggedOut()
	assert.Equal(t, 3, calls)
}

func TestProvider_ConcurrentSubscribers(t *testing.T) {
	p := NewProvider(newMemStorage())

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsubscribe := p.Subscribe(func(State) {})
			p.NotifyLoggedOut()
			unsubscribe()
		}()
	}
	wg.Wait()
}
