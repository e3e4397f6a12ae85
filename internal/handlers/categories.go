// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"smartslug/internal/models"
	"smartslug/internal/store"
)

type categoryRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id"`
	SortOrder   int        `json:"sort_order"`
}

func (req categoryRequest) apply(c *models.Category) {
	c.Name = req.Name
	c.Description = req.Description
	c.ParentID = req.ParentID
	c.SortOrder = req.SortOrder
}

// CategoriesList returns all categories, or the nested tree with ?tree=1.
func (a *API) CategoriesList(w http.ResponseWriter, r *http.Request) {
	list := a.categories.List
	if r.URL.Query().Get("tree") != "" {
		list = a.categories.Tree
	}
	items, err := list(r.Context())
	if err != nil {
		writeStoreError(w, "list categories", err)
		return
	}
	if items == nil {
		items = []models.Category{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CategoryCreate creates a category. Its slug is derived from the name.
func (a *API) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := validateCategory(req.Name, req.Description); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	var c models.Category
	req.apply(&c)
	created, err := a.categories.Create(r.Context(), &c)
	if err != nil {
		writeStoreError(w, "create category", err)
		return
	}
	w.Header().Set("Location", "/api/categories/"+created.Slug)
	writeJSON(w, http.StatusCreated, created)
}

// CategoryGet returns a category by slug.
func (a *API) CategoryGet(w http.ResponseWriter, r *http.Request) {
	c, ok := a.findCategory(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CategoryUpdate replaces the category addressed by slug. Renaming it
// recomputes the slug.
func (a *API) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := validateCategory(req.Name, req.Description); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	c, ok := a.findCategory(w, r)
	if !ok {
		return
	}
	if req.ParentID != nil && *req.ParentID == c.ID {
		writeError(w, http.StatusUnprocessableEntity, "A category cannot be its own parent.")
		return
	}

	ctx := r.Context()
	old := c.Slug
	req.apply(c)
	if err := a.categories.Update(ctx, c); err != nil {
		writeStoreError(w, "update category", err)
		return
	}
	a.freed(ctx, store.CategoriesTable, old, c.Slug)
	writeJSON(w, http.StatusOK, c)
}

// CategoryDelete removes the category addressed by slug.
func (a *API) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	c, ok := a.findCategory(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	if err := a.categories.Delete(ctx, c.ID); err != nil {
		writeStoreError(w, "delete category", err)
		return
	}
	a.cache.Invalidate(ctx, store.CategoriesTable, c.Slug)
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) findCategory(w http.ResponseWriter, r *http.Request) (*models.Category, bool) {
	c, err := a.categories.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeStoreError(w, "find category", err)
		return nil, false
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "Category not found.")
		return nil, false
	}
	return c, true
}
