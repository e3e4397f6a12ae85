// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"smartslug/internal/models"
	"smartslug/internal/slug"
)

// Validation limits for request fields.
const (
	maxTitleLen       = 300
	maxBodyLen        = 100_000
	maxExcerptLen     = 1_000
	maxCategoryName   = 200
	maxDescriptionLen = 2_000
	maxPreviewTextLen = 1_000
)

// validatePost checks post inputs and returns the first error found.
func validatePost(title, body string, excerpt *string, status models.PostStatus) string {
	if msg := validateTitle(title); msg != "" {
		return msg
	}
	if slug.Generate(title) == "" {
		return "Title must contain at least one letter or digit usable in a URL."
	}
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Body is too long (max 100,000 characters)."
	}
	if excerpt != nil && utf8.RuneCountInString(*excerpt) > maxExcerptLen {
		return "Excerpt is too long (max 1,000 characters)."
	}
	switch status {
	case "", models.PostStatusDraft, models.PostStatusPublished:
	default:
		return fmt.Sprintf("Unknown status %q.", status)
	}
	return ""
}

// validatePage checks page inputs. Page slugs are typed by editors and
// stored as given, so they must already be in slug form.
func validatePage(title, pageSlug, body string) string {
	if msg := validateTitle(title); msg != "" {
		return msg
	}
	if pageSlug == "" {
		return "Slug is required."
	}
	if utf8.RuneCountInString(pageSlug) > models.MaxPageSlugLen {
		return "Slug is too long (max 200 characters)."
	}
	if !slug.Valid(pageSlug) {
		return "Slug may only contain lowercase letters, digits, hyphens and underscores."
	}
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Body is too long (max 100,000 characters)."
	}
	return ""
}

// validateCategory checks category inputs.
func validateCategory(name, description string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxCategoryName {
		return "Name is too long (max 200 characters)."
	}
	if slug.Generate(name) == "" {
		return "Name must contain at least one letter or digit usable in a URL."
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "Description is too long (max 2,000 characters)."
	}
	return ""
}

func validateTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	return ""
}
