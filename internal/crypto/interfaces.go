// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns a plaintext password into a salted, keyed digest and
// checks candidates against stored digests.
//
// Both the digest and the salt are base64 strings so they can be stored in
// text columns as they are.
type PasswordHasher interface {
	// Hash generates a fresh random salt and returns the digest of password
	// under it. Two calls with the same password never return the same pair.
	Hash(password string) (hash, salt string, err error)

	// Verify reports whether password produces hash under salt. The digest
	// comparison runs in constant time. Undecodable inputs yield false.
	Verify(password, hash, salt string) bool
}
