// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "smartslug/internal/slugfield"

// Model names used in descriptors and API requests.
const (
	ModelPost     = "post"
	ModelPage     = "page"
	ModelCategory = "category"
)

// FieldSet holds the slug field of every model.
type FieldSet struct {
	Post     *slugfield.Field
	Page     *slugfield.Field
	Category *slugfield.Field
}

// NewFieldSet builds the model fields. reserved words are added to the page
// and category fields; maxAttempts applies to all three.
func NewFieldSet(reserved []string, maxAttempts int) FieldSet {
	limit := slugfield.MaxAttempts(maxAttempts)
	return FieldSet{
		Post:     PostSlugField(limit),
		Page:     PageSlugField(limit, slugfield.Reserved(reserved...)),
		Category: CategorySlugField(limit, slugfield.Reserved(reserved...)),
	}
}

// Describe returns one descriptor per model, in a stable order.
func (fs FieldSet) Describe() []slugfield.Descriptor {
	return []slugfield.Descriptor{
		fs.Post.Describe(ModelPost),
		fs.Page.Describe(ModelPage),
		fs.Category.Describe(ModelCategory),
	}
}
