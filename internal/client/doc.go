// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the blog-auth command line client.
//
// Each invocation runs one command (register, login, refresh, whoami,
// can, token, logout) against the client services and prints the result.
// The session survives between invocations in the local SQLite store.
package client
