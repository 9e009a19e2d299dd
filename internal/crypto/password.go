// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
)

// SaltSize is the number of random bytes used as the HMAC key of one
// password (512 bits).
const SaltSize = 64

// hmacPasswordHasher is the private implementation of [PasswordHasher]:
// hash = HMAC-SHA256(key = salt, message = password).
type hmacPasswordHasher struct {
	random io.Reader
}

// NewPasswordHasher constructs a [PasswordHasher] reading salts from the OS
// CSPRNG.
func NewPasswordHasher() PasswordHasher {
	return &hmacPasswordHasher{random: rand.Reader}
}

// Hash implements [PasswordHasher].
func (h *hmacPasswordHasher) Hash(password string) (string, string, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrSaltGeneration, err)
	}

	digest := computeDigest(salt, password)

	return base64.StdEncoding.EncodeToString(digest), base64.StdEncoding.EncodeToString(salt), nil
}

// Verify implements [PasswordHasher].
func (h *hmacPasswordHasher) Verify(password, hash, salt string) bool {
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil || len(saltBytes) == 0 {
		return false
	}

	expected, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}

	return hmac.Equal(computeDigest(saltBytes, password), expected)
}

func computeDigest(salt []byte, password string) []byte {
	mac := hmac.New(sha256.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}
