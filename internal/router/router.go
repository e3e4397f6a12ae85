// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// slug service.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"smartslug/internal/handlers"
	"smartslug/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/fields", api.Fields)
		r.Post("/slugs/preview", api.SlugPreview)

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", api.PostsList)
			r.Post("/", api.PostCreate)
			r.Get("/{id}", api.PostGet)
			r.Put("/{id}", api.PostUpdate)
			r.Delete("/{id}", api.PostDelete)
			r.Get("/{year}/{month}/{day}/{slug}", api.PostByPermalink)
		})

		r.Route("/pages", func(r chi.Router) {
			r.Get("/", api.PagesList)
			r.Post("/", api.PageCreate)
			r.Get("/{slug}", api.PageGet)
			r.Put("/{slug}", api.PageUpdate)
			r.Delete("/{slug}", api.PageDelete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", api.CategoriesList)
			r.Post("/", api.CategoryCreate)
			r.Get("/{slug}", api.CategoryGet)
			r.Put("/{slug}", api.CategoryUpdate)
			r.Delete("/{slug}", api.CategoryDelete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
