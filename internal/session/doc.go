// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session derives the client's "current user" view from the token
// kept in local storage.
//
// The token is read without checking its signature. The view is a
// convenience for display and routing on the client; the server validates
// every token it receives. Any failure while reading or decoding the token
// yields the anonymous state instead of an error.
package session
