// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestHash_ProducesDecodableSaltAndDigest(t *testing.T) {
	h := NewPasswordHasher()

	hash, salt, err := h.Hash("correct horse")
	require.NoError(t, err)

	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, saltBytes, SaltSize)

	digest, err := base64.StdEncoding.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, digest, sha256.Size)
}

// TestHash_MatchesKeyedDigest pins the storage format: the salt is the HMAC
// key and the password is the message.
func TestHash_MatchesKeyedDigest(t *testing.T) {
	hash, salt, err := NewPasswordHasher().Hash("p@ss")
	require.NoError(t, err)

	saltBytes, _ := base64.StdEncoding.DecodeString(salt)
	mac := hmac.New(sha256.New, saltBytes)
	mac.Write([]byte("p@ss"))

	assert.Equal(t, base64.StdEncoding.EncodeToString(mac.Sum(nil)), hash)
}

func TestHash_SamePasswordDiffers(t *testing.T) {
	h := NewPasswordHasher()

	hash1, salt1, err := h.Hash("same")
	require.NoError(t, err)
	hash2, salt2, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestHash_RandomFailure(t *testing.T) {
	h := &hmacPasswordHasher{random: failingReader{}}

	_, _, err := h.Hash("pw")
	assert.ErrorIs(t, err, ErrSaltGeneration)
}

func TestVerify(t *testing.T) {
	h := NewPasswordHasher()
	hash, salt, err := h.Hash("secret")
	require.NoError(t, err)

	_, otherSalt, err := h.Hash("secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		salt     string
		want     bool
	}{
		{name: "correct password", password: "secret", hash: hash, salt: salt, want: true},
		{name: "wrong password", password: "Secret", hash: hash, salt: salt, want: false},
		{name: "empty password", password: "", hash: hash, salt: salt, want: false},
		{name: "other salt", password: "secret", hash: hash, salt: otherSalt, want: false},
		{name: "corrupt salt", password: "secret", hash: hash, salt: "%%%", want: false},
		{name: "corrupt hash", password: "secret", hash: "%%%", salt: salt, want: false},
		{name: "empty salt", password: "secret", hash: hash, salt: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(tt.password, tt.hash, tt.salt))
		})
	}
}

func TestVerify_UnicodePassword(t *testing.T) {
	h := NewPasswordHasher()
	hash, salt, err := h.Hash("пароль-密码")
	require.NoError(t, err)

	assert.True(t, h.Verify("пароль-密码", hash, salt))
}
