// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"crypto/sha256"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/blog-auth/internal/config"
	"golang.org/x/crypto/hkdf"
)

// keySize is the length of the derived HS256 key in bytes.
const keySize = 32

// hkdfInfo binds the derived key to its single use.
const hkdfInfo = "blog-auth jwt hs256 signing key"

// Key is the signing material and the token parameters shared by the
// issuer and the validators. It is immutable after [NewKey].
type Key struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewKey derives the HS256 key from cfg.Key with HKDF-SHA256 and captures
// issuer, audience and lifetime.
func NewKey(cfg config.JWT) (*Key, error) {
	if strings.TrimSpace(cfg.Key) == "" {
		return nil, ErrEmptySecret
	}

	ttl := cfg.TTL()
	if ttl <= 0 {
		ttl = time.Duration(config.DefaultExpiresMinutes) * time.Minute
	}

	secret := make([]byte, keySize)
	kdf := hkdf.New(sha256.New, []byte(cfg.Key), nil, []byte(hkdfInfo))
	if _, err := io.ReadFull(kdf, secret); err != nil {
		return nil, fmt.Errorf("error deriving signing key: %w", err)
	}

	return &Key{
		secret:   secret,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      ttl,
	}, nil
}

// Issuer returns the configured "iss" value, possibly empty.
func (k *Key) Issuer() string { return k.issuer }

// Audience returns the configured "aud" value, possibly empty.
func (k *Key) Audience() string { return k.audience }

// TTL returns the lifetime of issued tokens.
func (k *Key) TTL() time.Duration { return k.ttl }
