// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/blog-auth/internal/policy"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. ctx bounds background work started for the
// router, such as the rate limiter sweep; cancel it on shutdown.
func (h *Handler) Init(ctx context.Context) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.cfg.TrustedProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Route("/api/auth", func(r chi.Router) {
		// credential endpoints, throttled per client IP
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit(ctx))
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/refresh", h.refresh)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/me", h.me)
			r.Get("/policies/{policy}", h.checkPolicy)
		})
	})

	// Middleware stays inside groups so an unsupported method still falls
	// through to CheckHTTPMethod instead of failing auth first.
	router.Route("/api/admin", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Use(h.requirePolicy(policy.AdminOnly))
			r.Patch("/users/{id}", h.updateUser)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
