// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// ErrSaltGeneration is returned when the random source fails.
var ErrSaltGeneration = errors.New("failed to generate password salt")
