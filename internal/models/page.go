// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"

	"smartslug/internal/slugfield"
)

// MaxPageSlugLen matches the pages.slug column.
const MaxPageSlugLen = 200

// Page is a standalone page served at /{slug}. Editors choose the slug.
type Page struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageSlugField declares the page slug: user-supplied, globally unique and
// kept clear of the site's own routes.
func PageSlugField(opts ...slugfield.Option) *slugfield.Field {
	base := []slugfield.Option{
		slugfield.MaxLength(MaxPageSlugLen),
		slugfield.Reserved(RouteSlugs...),
	}
	return slugfield.New(AttrSlug, append(base, opts...)...)
}

// Attr implements slugfield.Record.
func (p *Page) Attr(name string) (any, bool) {
	switch name {
	case AttrSlug:
		return p.Slug, true
	case AttrTitle:
		return p.Title, true
	}
	return nil, false
}

// SetAttr implements slugfield.Record.
func (p *Page) SetAttr(name string, value any) error {
	return setSlug(&p.Slug, name, value)
}

// PrimaryKey implements slugfield.Record.
func (p *Page) PrimaryKey() (any, bool) {
	if p.ID == uuid.Nil {
		return nil, false
	}
	return p.ID, true
}
