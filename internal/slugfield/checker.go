// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slugfield

import (
	"context"
	"fmt"
	"time"
)

// Scope restricts the set of records a slug must be unique among.
// The zero Scope means all records of the model.
type Scope struct {
	DateField string
	Year      int
	Month     time.Month
	Day       int
}

// DayScope returns a scope matching records whose dateField falls on the
// same calendar day as t, in t's location.
func DayScope(dateField string, t time.Time) Scope {
	y, m, d := t.Date()
	return Scope{DateField: dateField, Year: y, Month: m, Day: d}
}

// IsZero reports whether the scope is global.
func (s Scope) IsZero() bool {
	return s.DateField == ""
}

// String renders the scope as "published_at=2026-02-25", or "*" when global.
func (s Scope) String() string {
	if s.IsZero() {
		return "*"
	}
	return fmt.Sprintf("%s=%04d-%02d-%02d", s.DateField, s.Year, int(s.Month), s.Day)
}

// Query asks whether Slug is already taken within Scope.
// ExcludePK is nil for records that have not been persisted yet.
type Query struct {
	Slug      string
	Scope     Scope
	ExcludePK any
}

// Checker answers whether another record already holds a slug.
type Checker interface {
	Exists(ctx context.Context, q Query) (bool, error)
}

// CheckerFunc adapts an ordinary function to the Checker interface.
type CheckerFunc func(ctx context.Context, q Query) (bool, error)

// Exists calls f(ctx, q).
func (f CheckerFunc) Exists(ctx context.Context, q Query) (bool, error) {
	return f(ctx, q)
}
