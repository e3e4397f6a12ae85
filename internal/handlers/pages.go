// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"smartslug/internal/models"
	"smartslug/internal/store"
)

type pageRequest struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Body  string `json:"body"`
}

// PagesList returns every page.
func (a *API) PagesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.pages.List(r.Context())
	if err != nil {
		writeStoreError(w, "list pages", err)
		return
	}
	if items == nil {
		items = []models.Page{}
	}
	writeJSON(w, http.StatusOK, items)
}

// PageCreate creates a page. A requested slug that is taken or reserved
// comes back with a suffix.
func (a *API) PageCreate(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := validatePage(req.Title, req.Slug, req.Body); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	created, err := a.pages.Create(r.Context(), &models.Page{Title: req.Title, Slug: req.Slug, Body: req.Body})
	if err != nil {
		writeStoreError(w, "create page", err)
		return
	}
	w.Header().Set("Location", "/api/pages/"+created.Slug)
	writeJSON(w, http.StatusCreated, created)
}

// PageGet returns a page by slug.
func (a *API) PageGet(w http.ResponseWriter, r *http.Request) {
	p, ok := a.findPage(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PageUpdate replaces the page addressed by slug. A new slug in the body
// renames the page.
func (a *API) PageUpdate(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := validatePage(req.Title, req.Slug, req.Body); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	p, ok := a.findPage(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	old := p.Slug
	p.Title, p.Slug, p.Body = req.Title, req.Slug, req.Body
	if err := a.pages.Update(ctx, p); err != nil {
		writeStoreError(w, "update page", err)
		return
	}
	a.freed(ctx, store.PagesTable, old, p.Slug)
	writeJSON(w, http.StatusOK, p)
}

// PageDelete removes the page addressed by slug.
func (a *API) PageDelete(w http.ResponseWriter, r *http.Request) {
	p, ok := a.findPage(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	if err := a.pages.Delete(ctx, p.ID); err != nil {
		writeStoreError(w, "delete page", err)
		return
	}
	a.cache.Invalidate(ctx, store.PagesTable, p.Slug)
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) findPage(w http.ResponseWriter, r *http.Request) (*models.Page, bool) {
	p, err := a.pages.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeStoreError(w, "find page", err)
		return nil, false
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Page not found.")
		return nil, false
	}
	return p, true
}
