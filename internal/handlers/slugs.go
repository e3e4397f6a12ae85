// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"smartslug/internal/models"
	"smartslug/internal/slugfield"
)

// previewRequest asks which slug a record would get if saved now. Text is
// the post title, the page's requested slug or the category name. ID names
// an existing record whose own slug does not count as a collision.
type previewRequest struct {
	Model string     `json:"model"`
	Text  string     `json:"text"`
	Date  *time.Time `json:"date"`
	ID    *uuid.UUID `json:"id"`
}

type previewResponse struct {
	Model string `json:"model"`
	Slug  string `json:"slug"`
}

// SlugPreview computes a slug without saving anything.
func (a *API) SlugPreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusUnprocessableEntity, "Text is required.")
		return
	}
	if utf8.RuneCountInString(req.Text) > maxPreviewTextLen {
		writeError(w, http.StatusUnprocessableEntity, "Text is too long (max 1,000 characters).")
		return
	}

	var id uuid.UUID
	if req.ID != nil {
		id = *req.ID
	}

	ctx := r.Context()
	var (
		s   string
		err error
	)
	switch req.Model {
	case models.ModelPost:
		p := models.Post{ID: id, Title: req.Text}
		if req.Date != nil {
			p.PublishedAt = req.Date.UTC()
		}
		s, err = a.posts.Preview(ctx, p)
	case models.ModelPage:
		s, err = a.pages.Preview(ctx, models.Page{ID: id, Slug: req.Text})
	case models.ModelCategory:
		s, err = a.categories.Preview(ctx, models.Category{ID: id, Name: req.Text})
	default:
		writeError(w, http.StatusUnprocessableEntity, "Unknown model "+req.Model+".")
		return
	}
	if err != nil {
		writeStoreError(w, "preview slug", err)
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{Model: req.Model, Slug: s})
}

// fieldsResponse lists the slug field declarations and the options they accept.
type fieldsResponse struct {
	Fields   []slugfield.Descriptor    `json:"fields"`
	Defaults []slugfield.OptionDefault `json:"defaults"`
}

// Fields returns the slug field descriptors as JSON, or as YAML with
// ?format=yaml.
func (a *API) Fields(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "yaml" {
		out, err := slugfield.MarshalDescriptors(a.fields)
		if err != nil {
			slog.Error("marshal descriptors failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(out)
		return
	}
	writeJSON(w, http.StatusOK, fieldsResponse{Fields: a.fields, Defaults: slugfield.Defaults()})
}
