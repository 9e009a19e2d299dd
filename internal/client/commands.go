// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/blog-auth/internal/session"
	"github.com/MKhiriev/blog-auth/models"
)

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	req := models.RegisterRequest{UserName: args[0]}
	if len(args) == 2 {
		req.Email = args[1]
	}

	password, err := a.password()
	if err != nil {
		return err
	}
	req.Password = password

	resp, err := a.services.AuthService.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, okStyle.Render("registered"), resp.UserName, helpStyle.Render(fmt.Sprintf("(id %d, %s)", resp.ID, resp.Role)))
	fmt.Fprintln(a.out, helpStyle.Render("run `login "+resp.UserName+"` to sign in"))
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	password, err := a.password()
	if err != nil {
		return err
	}

	state, err := a.services.AuthService.Login(ctx, models.LoginRequest{UserName: args[0], Password: password})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, okStyle.Render("logged in"))
	fmt.Fprintln(a.out, a.renderSession(state))
	return nil
}

func (a *App) refresh(ctx context.Context, args []string) error {
	if _, err := parseFlags(flag.NewFlagSet("refresh", flag.ContinueOnError), args, 0); err != nil {
		return err
	}

	state, err := a.services.AuthService.Refresh(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, okStyle.Render("token refreshed"))
	fmt.Fprintln(a.out, a.renderSession(state))
	return nil
}

// whoami prints the locally derived session. With -remote it asks the
// server instead, which also catches revoked or banned identities.
func (a *App) whoami(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	remote := fs.Bool("remote", false, "ask the server")
	if _, err := parseFlags(fs, args, 0); err != nil {
		return err
	}

	if !*remote {
		fmt.Fprintln(a.out, a.renderSession(a.services.AuthService.Session(ctx)))
		return nil
	}

	me, err := a.services.AuthService.WhoAmI(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, boxStyle.Render(strings.Join([]string{
		row("user", me.UserName),
		row("id", fmt.Sprint(me.ID)),
		row("role", me.Role.String()),
		row("policies", policiesText(me.Policies)),
	}, "\n")))
	return nil
}

func (a *App) can(ctx context.Context, args []string) error {
	rest, err := parseFlags(flag.NewFlagSet("can", flag.ContinueOnError), args, 1)
	if err != nil {
		return err
	}

	allowed, err := a.services.AuthService.CheckPolicy(ctx, rest[0])
	if err != nil {
		return err
	}

	if allowed {
		fmt.Fprintln(a.out, okStyle.Render("allowed"), rest[0])
	} else {
		fmt.Fprintln(a.out, errorStyle.Render("denied"), rest[0])
	}
	return nil
}

func (a *App) token(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	copyToClipboard := fs.Bool("copy", false, "copy the token to the clipboard")
	if _, err := parseFlags(fs, args, 0); err != nil {
		return err
	}

	raw, err := a.services.AuthService.Token(ctx)
	if err != nil {
		return err
	}

	if *copyToClipboard {
		if err = a.copyText(raw); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(a.out, okStyle.Render("token copied to clipboard"))
		return nil
	}

	fmt.Fprintln(a.out, raw)
	return nil
}

func (a *App) logout(ctx context.Context, args []string) error {
	if _, err := parseFlags(flag.NewFlagSet("logout", flag.ContinueOnError), args, 0); err != nil {
		return err
	}

	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, okStyle.Render("logged out"))
	return nil
}

func (a *App) renderSession(state session.State) string {
	if !state.IsAuthenticated() {
		return helpStyle.Render("anonymous")
	}

	p := state.Principal
	rows := []string{
		row("user", p.UserName),
		row("id", fmt.Sprint(p.UserID)),
		row("role", p.Role.String()),
		row("policies", policiesText(a.services.Policies.Allowed(p))),
	}
	if state.ExpiresAt != nil {
		rows = append(rows, row("expires", state.ExpiresAt.Local().Format(time.RFC1123)))
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func row(label, value string) string {
	return labelStyle.Render(label) + " " + value
}

func policiesText(policies []string) string {
	if len(policies) == 0 {
		return "-"
	}
	return strings.Join(policies, ", ")
}
