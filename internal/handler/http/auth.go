// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/blog-auth/internal/logger"
	"github.com/MKhiriev/blog-auth/internal/policy"
	"github.com/MKhiriev/blog-auth/internal/utils"
	"github.com/MKhiriev/blog-auth/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user registered")
	utils.WriteJSON(w, models.RegisterResponse{
		ID:       user.UserID,
		UserName: user.UserName,
		Role:     user.Role,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Token:    token.SignedString,
		UserName: user.UserName,
		NickName: user.DisplayName(),
		Role:     user.Role,
	}, http.StatusOK)
}

// refresh accepts a token that may have expired up to the refresh leeway
// ago, so it sits outside the auth middleware.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.RefreshToken(r.Context(), tokenString)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RefreshResponse{Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	p, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.MeResponse{
		ID:       p.UserID,
		UserName: p.UserName,
		Role:     p.Role,
		Policies: h.services.Policies.Allowed(p),
	}, http.StatusOK)
}

// checkPolicy answers 204 when the caller satisfies the named policy and
// 403 when it does not.
func (h *Handler) checkPolicy(w http.ResponseWriter, r *http.Request) {
	p, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	name, err := h.services.Policies.Lookup(chi.URLParam(r, "policy"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if h.services.Policies.Authorize(p, name) != policy.Allow {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
