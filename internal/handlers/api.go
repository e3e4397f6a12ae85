// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API over the slugged models.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"smartslug/internal/models"
	"smartslug/internal/slugfield"
	"smartslug/internal/store"
)

// maxRequestBody caps JSON request bodies.
const maxRequestBody = 1 << 20

// PostRepository is the post persistence used by the API.
type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	FindByPermalink(ctx context.Context, day time.Time, slug string) (*models.Post, error)
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	Preview(ctx context.Context, p models.Post) (string, error)
}

// PageRepository is the page persistence used by the API.
type PageRepository interface {
	List(ctx context.Context) ([]models.Page, error)
	FindBySlug(ctx context.Context, slug string) (*models.Page, error)
	Create(ctx context.Context, p *models.Page) (*models.Page, error)
	Update(ctx context.Context, p *models.Page) error
	Delete(ctx context.Context, id uuid.UUID) error
	Preview(ctx context.Context, p models.Page) (string, error)
}

// CategoryRepository is the category persistence used by the API.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	Tree(ctx context.Context) ([]models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	Preview(ctx context.Context, c models.Category) (string, error)
}

// SlugInvalidator drops cached existence answers for a slug that was freed.
type SlugInvalidator interface {
	Invalidate(ctx context.Context, namespace, slug string)
}

type nopInvalidator struct{}

func (nopInvalidator) Invalidate(context.Context, string, string) {}

// API groups the JSON handlers.
type API struct {
	posts      PostRepository
	pages      PageRepository
	categories CategoryRepository
	fields     []slugfield.Descriptor
	cache      SlugInvalidator
}

// NewAPI creates the API handler group. cache may be nil.
func NewAPI(posts PostRepository, pages PageRepository, categories CategoryRepository, fields []slugfield.Descriptor, cache SlugInvalidator) *API {
	if cache == nil {
		cache = nopInvalidator{}
	}
	return &API{
		posts:      posts,
		pages:      pages,
		categories: categories,
		fields:     fields,
		cache:      cache,
	}
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeStoreError maps a repository or slug error onto a response.
// Unexpected errors are logged and hidden behind a 500.
func writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, store.ErrSlugTaken):
		writeError(w, http.StatusConflict, "Slug was taken by a concurrent save, retry.")
	case errors.Is(err, slugfield.ErrSuffixOverflow),
		errors.Is(err, slugfield.ErrTooManyAttempts),
		errors.Is(err, slugfield.ErrMissingDate),
		errors.Is(err, slugfield.ErrAttrType):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error(op+" failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// decode reads a JSON request body into v, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// parseID reads the {id} URL parameter, writing a 400 on failure.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID.")
		return uuid.Nil, false
	}
	return id, true
}

// freed invalidates old when a save replaced it with a different slug.
func (a *API) freed(ctx context.Context, namespace, old, current string) {
	if old != "" && old != current {
		a.cache.Invalidate(ctx, namespace, old)
	}
}
