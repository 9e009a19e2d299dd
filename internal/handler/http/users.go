// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/blog-auth/internal/logger"
	"github.com/MKhiriev/blog-auth/internal/utils"
	"github.com/MKhiriev/blog-auth/models"
	"github.com/go-chi/chi/v5"
)

// updateUser changes the role or active flag of an identity. Callers have
// already passed the AdminOnly policy.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, ErrInvalidUserID)
		return
	}

	var update models.UserUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}
	update.UserID = id

	user, err := h.services.UserService.UpdateUser(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	admin, _ := utils.GetPrincipalFromContext(r.Context())
	logger.FromRequest(r).Info().
		Int64("admin_id", admin.UserID).
		Int64("user_id", user.UserID).
		Stringer("role", user.Role).
		Bool("is_active", user.IsActive).
		Msg("user updated")

	utils.WriteJSON(w, models.UpdateUserResponse{
		ID:       user.UserID,
		UserName: user.UserName,
		Role:     user.Role,
		IsActive: user.IsActive,
	}, http.StatusOK)
}
