// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the slugged entities stored by the service and the
// slug field declared on each of them.
package models

import (
	"fmt"

	"smartslug/internal/slugfield"
)

// Attribute names shared by the models' slugfield.Record implementations.
const (
	AttrSlug        = "slug"
	AttrTitle       = "title"
	AttrName        = "name"
	AttrPublishedAt = "published_at"
)

// RouteSlugs are path segments the public site routes itself. A page or
// category must never take one of them.
var RouteSlugs = []string{"admin", "api", "health", "posts", "pages", "categories"}

// setSlug implements SetAttr for models whose only writable attribute is the slug.
func setSlug(dst *string, name string, value any) error {
	if name != AttrSlug {
		return fmt.Errorf("%w: %s is read-only", slugfield.ErrAttrType, name)
	}
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: slug is %T, want string", slugfield.ErrAttrType, value)
	}
	*dst = s
	return nil
}
