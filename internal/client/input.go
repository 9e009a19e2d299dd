// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PasswordEnv lets scripts pass the password without a terminal.
const PasswordEnv = "BLOG_PASSWORD"

// terminalPassword reads a password from stdin without echo.
func terminalPassword(w io.Writer) func() ([]byte, error) {
	return func() ([]byte, error) {
		if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
			return nil, err
		}
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(w)
		return pw, err
	}
}

func (a *App) password() (string, error) {
	if pw := os.Getenv(PasswordEnv); pw != "" {
		return pw, nil
	}

	pw, err := a.readPassword()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if strings.TrimSpace(string(pw)) == "" {
		return "", errEmptyPassword
	}
	return string(pw), nil
}
