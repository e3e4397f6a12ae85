// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"smartslug/internal/models"
	"smartslug/internal/store"
)

// postRequest is the body of post create and update requests.
type postRequest struct {
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Excerpt     *string           `json:"excerpt"`
	Status      models.PostStatus `json:"status"`
	PublishedAt *time.Time        `json:"published_at"`
}

func (req postRequest) apply(p *models.Post) {
	p.Title = req.Title
	p.Body = req.Body
	p.Excerpt = req.Excerpt
	if req.Status != "" {
		p.Status = req.Status
	}
	if req.PublishedAt != nil {
		p.PublishedAt = req.PublishedAt.UTC()
	}
}

// PostsList returns every post.
func (a *API) PostsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.posts.List(r.Context())
	if err != nil {
		writeStoreError(w, "list posts", err)
		return
	}
	if items == nil {
		items = []models.Post{}
	}
	writeJSON(w, http.StatusOK, items)
}

// PostCreate creates a post. Its slug is derived from the title.
func (a *API) PostCreate(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := validatePost(req.Title, req.Body, req.Excerpt, req.Status); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	var p models.Post
	req.apply(&p)
	created, err := a.posts.Create(r.Context(), &p)
	if err != nil {
		writeStoreError(w, "create post", err)
		return
	}
	w.Header().Set("Location", "/api/posts/"+created.ID.String())
	writeJSON(w, http.StatusCreated, created)
}

// PostGet returns a post by ID.
func (a *API) PostGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	p, err := a.posts.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, "find post", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Post not found.")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PostByPermalink returns a published post by its day and slug.
func (a *API) PostByPermalink(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDay(chi.URLParam(r, "year"), chi.URLParam(r, "month"), chi.URLParam(r, "day"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid date.")
		return
	}
	p, err := a.posts.FindByPermalink(r.Context(), day, chi.URLParam(r, "slug"))
	if err != nil {
		writeStoreError(w, "find post by permalink", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Post not found.")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PostUpdate replaces a post's fields. The slug is recomputed.
func (a *API) PostUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req postRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := validatePost(req.Title, req.Body, req.Excerpt, req.Status); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	ctx := r.Context()
	p, err := a.posts.FindByID(ctx, id)
	if err != nil {
		writeStoreError(w, "find post", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Post not found.")
		return
	}

	old := p.Slug
	req.apply(p)
	if err := a.posts.Update(ctx, p); err != nil {
		writeStoreError(w, "update post", err)
		return
	}
	// Post slugs are scoped by day, so moving a post frees its old slug on
	// the old day even when the slug itself is unchanged.
	a.cache.Invalidate(ctx, store.PostsTable, old)
	writeJSON(w, http.StatusOK, p)
}

// PostDelete removes a post.
func (a *API) PostDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	p, err := a.posts.FindByID(ctx, id)
	if err != nil {
		writeStoreError(w, "find post", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Post not found.")
		return
	}
	if err := a.posts.Delete(ctx, id); err != nil {
		writeStoreError(w, "delete post", err)
		return
	}
	a.cache.Invalidate(ctx, store.PostsTable, p.Slug)
	w.WriteHeader(http.StatusNoContent)
}

// parseDay builds a UTC date from path segments, rejecting impossible
// dates such as February 30.
func parseDay(year, month, day string) (time.Time, bool) {
	y, err1 := strconv.Atoi(year)
	m, err2 := strconv.Atoi(month)
	d, err3 := strconv.Atoi(day)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}
