// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"

	"smartslug/internal/slugfield"
)

// MaxCategorySlugLen matches the categories.slug column.
const MaxCategorySlugLen = 100

// Category represents a hierarchical post category.
type Category struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Virtual fields populated by store methods.
	Children []Category `json:"children,omitempty"`
	Depth    int        `json:"depth"`
}

// CategorySlugField declares the category slug, derived from the name with
// numbered suffixes ("news-1").
func CategorySlugField(opts ...slugfield.Option) *slugfield.Field {
	base := []slugfield.Option{
		slugfield.SourceField(AttrName),
		slugfield.Underscores(false),
		slugfield.SplitOnWords(true),
		slugfield.MaxLength(MaxCategorySlugLen),
		slugfield.Reserved(RouteSlugs...),
	}
	return slugfield.New(AttrSlug, append(base, opts...)...)
}

// Attr implements slugfield.Record.
func (c *Category) Attr(name string) (any, bool) {
	switch name {
	case AttrSlug:
		return c.Slug, true
	case AttrName:
		return c.Name, true
	}
	return nil, false
}

// SetAttr implements slugfield.Record.
func (c *Category) SetAttr(name string, value any) error {
	return setSlug(&c.Slug, name, value)
}

// PrimaryKey implements slugfield.Record.
func (c *Category) PrimaryKey() (any, bool) {
	if c.ID == uuid.Nil {
		return nil, false
	}
	return c.ID, true
}
