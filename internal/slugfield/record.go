// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slugfield

import (
	"fmt"
	"time"
)

// Record is the entity being saved. Attributes are addressed by name, the
// same names a Field is declared with.
type Record interface {
	Attr(name string) (any, bool)
	SetAttr(name string, value any) error
	// PrimaryKey reports the record's key, or false if it was never persisted.
	PrimaryKey() (any, bool)
}

// Values is a map-backed Record, handy for previews and ad-hoc models.
type Values struct {
	PK    any
	Attrs map[string]any
}

// Attr returns the named attribute.
func (v *Values) Attr(name string) (any, bool) {
	val, ok := v.Attrs[name]
	return val, ok
}

// SetAttr stores the named attribute.
func (v *Values) SetAttr(name string, value any) error {
	if v.Attrs == nil {
		v.Attrs = make(map[string]any)
	}
	v.Attrs[name] = value
	return nil
}

// PrimaryKey returns PK, or false when it is nil.
func (v *Values) PrimaryKey() (any, bool) {
	return v.PK, v.PK != nil
}

// stringAttr reads a text attribute. A missing or nil attribute is "".
func stringAttr(rec Record, name string) (string, error) {
	val, ok := rec.Attr(name)
	if !ok || val == nil {
		return "", nil
	}
	switch s := val.(type) {
	case string:
		return s, nil
	case *string:
		if s == nil {
			return "", nil
		}
		return *s, nil
	case []byte:
		return string(s), nil
	case fmt.Stringer:
		return s.String(), nil
	}
	return "", fmt.Errorf("%w: %s is %T, want string", ErrAttrType, name, val)
}

// timeAttr reads a date attribute.
func timeAttr(rec Record, name string) (time.Time, error) {
	val, ok := rec.Attr(name)
	if !ok || val == nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrMissingDate, name)
	}
	var t time.Time
	switch d := val.(type) {
	case time.Time:
		t = d
	case *time.Time:
		if d == nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrMissingDate, name)
		}
		t = *d
	default:
		return time.Time{}, fmt.Errorf("%w: %s is %T, want time.Time", ErrAttrType, name, val)
	}
	if t.IsZero() {
		return time.Time{}, fmt.Errorf("%w: %s", ErrMissingDate, name)
	}
	return t, nil
}
