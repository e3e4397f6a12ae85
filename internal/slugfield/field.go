// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slugfield implements a "smart" slug attribute: a slug derived from
// another attribute, kept unique globally or per calendar day, steered away
// from reserved words, and truncated to a maximum length.
//
// A Field is a declaration. The persistence layer calls PreSave right before
// it writes a record and stores whatever slug PreSave assigned.
package slugfield

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"smartslug/internal/slug"
)

// DefaultMaxLength matches the usual varchar(50) slug column.
const DefaultMaxLength = 50

// Field declares how a slug attribute is computed.
type Field struct {
	name            string
	sourceField     string
	dateField       string
	splitOnWords    bool
	underscores     bool
	allowDuplicates bool
	reserved        []string
	reservedSet     map[string]struct{}
	maxLength       int
	maxAttempts     int
	slugify         func(string) string
}

// Option configures a Field.
type Option func(*Field)

// SourceField makes the slug derive from the named attribute. Without it the
// slug attribute is taken as supplied by the user.
func SourceField(name string) Option {
	return func(f *Field) { f.sourceField = name }
}

// DateField scopes uniqueness to the calendar day of the named attribute.
func DateField(name string) Option {
	return func(f *Field) { f.dateField = name }
}

// SplitOnWords truncates long slugs at the last hyphen that fits.
func SplitOnWords(enabled bool) Option {
	return func(f *Field) { f.splitOnWords = enabled }
}

// Underscores selects "_", "__", ... suffixes (the default) over "-1", "-2", ...
func Underscores(enabled bool) Option {
	return func(f *Field) { f.underscores = enabled }
}

// AllowDuplicates turns off existence checks. Reserved slugs are still avoided.
func AllowDuplicates(enabled bool) Option {
	return func(f *Field) { f.allowDuplicates = enabled }
}

// Reserved adds slugs that are never produced verbatim.
func Reserved(words ...string) Option {
	return func(f *Field) { f.reserved = append(f.reserved, words...) }
}

// MaxLength caps the slug length, counted in characters.
func MaxLength(n int) Option {
	return func(f *Field) { f.maxLength = n }
}

// MaxAttempts bounds the number of candidates tried. Zero means unbounded.
func MaxAttempts(n int) Option {
	return func(f *Field) { f.maxAttempts = n }
}

// Slugifier replaces the text normalization applied to the source attribute.
func Slugifier(fn func(string) string) Option {
	return func(f *Field) { f.slugify = fn }
}

// New declares a slug field stored in the attribute called name.
func New(name string, opts ...Option) *Field {
	f := &Field{
		name:        name,
		underscores: true,
		maxLength:   DefaultMaxLength,
		slugify:     slug.Generate,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.reservedSet = make(map[string]struct{}, len(f.reserved))
	for _, w := range f.reserved {
		f.reservedSet[w] = struct{}{}
	}
	return f
}

// Name returns the slug attribute name.
func (f *Field) Name() string { return f.name }

// MaxLen returns the configured max length.
func (f *Field) MaxLen() int { return f.maxLength }

// Unique reports whether the column can carry a plain unique constraint.
// Day-scoped or duplicate-tolerant slugs cannot.
func (f *Field) Unique() bool {
	return f.dateField == "" && !f.allowDuplicates
}

// Editable reports whether users supply the slug themselves.
func (f *Field) Editable() bool {
	return f.sourceField == ""
}

// IsReserved reports whether s is one of the field's reserved slugs.
func (f *Field) IsReserved(s string) bool {
	_, ok := f.reservedSet[s]
	return ok
}

// Input carries what Generate needs from the record being saved.
type Input struct {
	// Source is the value of the source attribute. Ignored when the field has none.
	Source string
	// Current is the slug attribute's present value.
	Current string
	Scope   Scope
	// ExcludePK is the record's own key, nil for new records.
	ExcludePK any
}

// PreSave computes the slug for rec and assigns it to the slug attribute.
// It performs only read queries through c; writing the row is up to the caller.
func (f *Field) PreSave(ctx context.Context, c Checker, rec Record) (string, error) {
	in, err := f.input(rec)
	if err != nil {
		return "", err
	}

	s, err := f.Generate(ctx, c, in)
	if err != nil {
		return "", err
	}

	if err := rec.SetAttr(f.name, s); err != nil {
		return "", fmt.Errorf("set %s: %w", f.name, err)
	}
	return s, nil
}

func (f *Field) input(rec Record) (Input, error) {
	var in Input
	var err error

	if in.Current, err = stringAttr(rec, f.name); err != nil {
		return Input{}, err
	}
	if f.sourceField != "" {
		if in.Source, err = stringAttr(rec, f.sourceField); err != nil {
			return Input{}, err
		}
	}
	if f.dateField != "" && !f.allowDuplicates {
		t, err := timeAttr(rec, f.dateField)
		if err != nil {
			return Input{}, err
		}
		in.Scope = DayScope(f.dateField, t.UTC())
	}
	if pk, ok := rec.PrimaryKey(); ok {
		in.ExcludePK = pk
	}
	return in, nil
}

// Generate returns the final slug for in.
//
// The base slug is the slugified source (or the current value for editable
// fields) cut to the max length. While the candidate is reserved or, unless
// duplicates are allowed, already exists in scope, the next candidate is the
// base shortened to make room for the i-th suffix. i only grows, so no
// candidate is tried twice. c may be nil when duplicates are allowed.
func (f *Field) Generate(ctx context.Context, c Checker, in Input) (string, error) {
	if c == nil && !f.allowDuplicates {
		return "", ErrNoChecker
	}

	base := f.base(in)
	candidate := base

	for i := 0; ; i++ {
		if f.maxAttempts > 0 && i >= f.maxAttempts {
			return "", fmt.Errorf("%w: %d candidates for %q", ErrTooManyAttempts, i, base)
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if i > 0 {
			suffix := f.suffix(i)
			room := f.maxLength - len(suffix)
			if room < 0 {
				return "", fmt.Errorf("%w: %q after %d attempts", ErrSuffixOverflow, base, i)
			}
			candidate = truncate(base, room) + suffix
		}

		if f.IsReserved(candidate) {
			slog.Debug("slug reserved, retrying", "field", f.name, "candidate", candidate)
			continue
		}
		if f.allowDuplicates {
			return candidate, nil
		}

		taken, err := c.Exists(ctx, Query{Slug: candidate, Scope: in.Scope, ExcludePK: in.ExcludePK})
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		slog.Debug("slug taken, retrying", "field", f.name, "candidate", candidate, "scope", in.Scope.String())
	}
}

// base normalizes and truncates the starting slug.
func (f *Field) base(in Input) string {
	s := in.Current
	if f.sourceField != "" {
		s = f.slugify(in.Source)
	}

	r := []rune(s)
	if f.splitOnWords && len(r) > f.maxLength {
		// A hyphen right after the cut still counts as a word boundary.
		window := r[:f.maxLength+1]
		for pos := len(window) - 1; pos > 0; pos-- {
			if window[pos] == '-' {
				r = r[:pos]
				break
			}
		}
	}
	return truncate(string(r), f.maxLength)
}

func (f *Field) suffix(i int) string {
	if f.underscores {
		return strings.Repeat("_", i)
	}
	return "-" + strconv.Itoa(i)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
