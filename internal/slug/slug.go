// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// disallowed matches anything that isn't a word character, whitespace, or hyphen.
	disallowed = regexp.MustCompile(`[^\w\s-]`)
	// separators collapses runs of hyphens and whitespace into one hyphen.
	separators = regexp.MustCompile(`[-\s]+`)
	// valid describes a hand-written slug accepted as-is.
	valid = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// Generate creates a URL-friendly slug from the given string.
// Accented letters are folded to their ASCII base; other non-ASCII runes are dropped.
// Example: "Café Résumé, 2026!" → "cafe-resume-2026"
func Generate(s string) string {
	result := toASCII(strings.TrimSpace(s))
	result = strings.ToLower(result)
	result = disallowed.ReplaceAllString(result, "")
	result = separators.ReplaceAllString(result, "-")
	return strings.Trim(result, "-_")
}

// Valid reports whether s can be stored as a slug without further normalization.
func Valid(s string) bool {
	return valid.MatchString(s)
}

// toASCII decomposes s (NFKD), removes combining marks and drops whatever
// is still outside the ASCII range.
func toASCII(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, folded)
}
