// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"smartslug/internal/slugfield"
)

// PostStatus represents the publishing state of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// MaxPostSlugLen matches the posts.slug column.
const MaxPostSlugLen = 200

// Post is a dated article. Its slug comes from the title and only has to be
// unique among posts published on the same day, since the day is part of
// the permalink.
type Post struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Status      PostStatus `json:"status"`
	PublishedAt time.Time  `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PostSlugField declares the post slug. Extra options are applied last.
func PostSlugField(opts ...slugfield.Option) *slugfield.Field {
	base := []slugfield.Option{
		slugfield.SourceField(AttrTitle),
		slugfield.DateField(AttrPublishedAt),
		slugfield.SplitOnWords(true),
		slugfield.MaxLength(MaxPostSlugLen),
	}
	return slugfield.New(AttrSlug, append(base, opts...)...)
}

// IsPublished returns true if the post is in published status.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// Permalink returns the public path of the post, e.g. /posts/2026/03/02/hello-world.
func (p *Post) Permalink() string {
	d := p.PublishedAt.UTC()
	return fmt.Sprintf("/posts/%04d/%02d/%02d/%s", d.Year(), int(d.Month()), d.Day(), p.Slug)
}

// Attr implements slugfield.Record.
func (p *Post) Attr(name string) (any, bool) {
	switch name {
	case AttrSlug:
		return p.Slug, true
	case AttrTitle:
		return p.Title, true
	case AttrPublishedAt:
		return p.PublishedAt, true
	}
	return nil, false
}

// SetAttr implements slugfield.Record.
func (p *Post) SetAttr(name string, value any) error {
	return setSlug(&p.Slug, name, value)
}

// PrimaryKey implements slugfield.Record.
func (p *Post) PrimaryKey() (any, bool) {
	if p.ID == uuid.Nil {
		return nil, false
	}
	return p.ID, true
}
