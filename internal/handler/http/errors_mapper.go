// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/blog-auth/internal/logger"
	"github.com/MKhiriev/blog-auth/internal/policy"
	"github.com/MKhiriev/blog-auth/internal/service"
	"github.com/MKhiriev/blog-auth/internal/store"
	"github.com/MKhiriev/blog-auth/internal/utils"
)

// errorStatuses is checked in order; the first match wins. Authentication
// failures come first since they may wrap store errors.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{utils.ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{utils.ErrEmptyToken, http.StatusUnauthorized},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidUserID, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{store.ErrNothingToUpdate, http.StatusBadRequest},

	{store.ErrLoginAlreadyExists, http.StatusConflict},
	{store.ErrUserNotFound, http.StatusNotFound},
	{policy.ErrUnknownPolicy, http.StatusNotFound},
}

// Bodies that must not echo the error chain.
var statusBodies = map[int]string{
	http.StatusUnauthorized:        "unauthorized",
	http.StatusForbidden:           "forbidden",
	http.StatusConflict:            "login already exists",
	http.StatusNotFound:            "not found",
	http.StatusInternalServerError: http.StatusText(http.StatusInternalServerError),
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. 400 bodies carry
// the validation message; every other status has a constant body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	body, ok := statusBodies[status]
	if !ok {
		body = err.Error()
	}
	http.Error(w, body, status)
}
