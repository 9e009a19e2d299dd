// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/blog-auth/internal/config"
	"github.com/MKhiriev/blog-auth/internal/logger"
	"github.com/MKhiriev/blog-auth/internal/utils"
	"github.com/MKhiriev/blog-auth/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter]. It POSTs the request to
// /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&registered).
		Post("/api/auth/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return registered, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/login and returns the decoded token response.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var loggedIn models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&loggedIn).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if loggedIn.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("login response carries no token")
	}

	return loggedIn, nil
}

// Refresh implements [ServerAdapter].
func (h *httpServerAdapter) Refresh(ctx context.Context, tokenString string) (models.RefreshResponse, error) {
	var refreshed models.RefreshResponse

	resp, err := h.authedRequest(ctx, tokenString).
		SetResult(&refreshed).
		Post("/api/auth/refresh")
	if err != nil {
		return models.RefreshResponse{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RefreshResponse{}, err
	}
	if refreshed.Token == "" {
		return models.RefreshResponse{}, fmt.Errorf("refresh response carries no token")
	}

	return refreshed, nil
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context, tokenString string) (models.MeResponse, error) {
	var me models.MeResponse

	resp, err := h.authedRequest(ctx, tokenString).
		SetResult(&me).
		Get("/api/auth/me")
	if err != nil {
		return models.MeResponse{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MeResponse{}, err
	}

	return me, nil
}

// CheckPolicy implements [ServerAdapter]. 204 means allow and 403 deny;
// everything else is an error.
func (h *httpServerAdapter) CheckPolicy(ctx context.Context, tokenString, policy string) (bool, error) {
	resp, err := h.authedRequest(ctx, tokenString).
		SetPathParam("policy", policy).
		Get("/api/auth/policies/{policy}")
	if err != nil {
		return false, fmt.Errorf("policy request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusNoContent, http.StatusOK:
		return true, nil
	case http.StatusForbidden:
		return false, nil
	}

	return false, mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, tokenString string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if tokenString != "" {
		req.SetAuthToken(tokenString)
	}
	return req
}
