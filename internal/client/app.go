// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MKhiriev/blog-auth/internal/logger"
	"github.com/MKhiriev/blog-auth/internal/service"
	"github.com/atotto/clipboard"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	services *service.ClientServices
	commands map[string]command

	out          io.Writer
	readPassword func() ([]byte, error)
	copyText     func(string) error

	logger *logger.Logger
}

// Option customises an App, mostly for tests.
type Option func(*App)

// WithOutput redirects command output.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithPasswordReader replaces the terminal password prompt.
func WithPasswordReader(read func() ([]byte, error)) Option {
	return func(a *App) { a.readPassword = read }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(copyText func(string) error) Option {
	return func(a *App) { a.copyText = copyText }
}

func NewApp(services *service.ClientServices, logger *logger.Logger, opts ...Option) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are nil")
	}

	a := &App{
		services: services,
		out:      os.Stdout,
		copyText: clipboard.WriteAll,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.readPassword == nil {
		a.readPassword = terminalPassword(a.out)
	}

	a.commands = map[string]command{
		"register": {"register <user> [email]", a.register},
		"login":    {"login <user>", a.login},
		"refresh":  {"refresh", a.refresh},
		"whoami":   {"whoami [-remote]", a.whoami},
		"can":      {"can <policy>", a.can},
		"token":    {"token [-copy]", a.token},
		"logout":   {"logout", a.logout},
	}

	return a, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		a.printUsage()
		return nil
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	if err := cmd.run(ctx, args[1:]); err != nil {
		a.logger.Err(err).Str("command", args[0]).Msg("command failed")
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(a.out, helpStyle.Render("usage: "+cmd.usage))
		}
		fmt.Fprintln(a.out, errorStyle.Render("error: ")+err.Error())
		return err
	}
	return nil
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(titleStyle.Render("blog-auth client") + "\n\n")
	for _, name := range names {
		b.WriteString("  " + a.commands[name].usage + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("password is read from the terminal or "+PasswordEnv))
	fmt.Fprintln(a.out, b.String())
}

// parseFlags parses command flags and rejects leftover positional args
// beyond want.
func parseFlags(fs *flag.FlagSet, args []string, want int) ([]string, error) {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != want {
		return nil, ErrUsage
	}
	return fs.Args(), nil
}
