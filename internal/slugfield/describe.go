// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slugfield

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Descriptor is the serializable form of a Field declaration, consumed by
// schema-migration tooling to rebuild fields across versions. Unique and
// Editable are derived and ignored when a Field is rebuilt.
type Descriptor struct {
	Model           string   `yaml:"model,omitempty" json:"model,omitempty"`
	Attr            string   `yaml:"attr" json:"attr"`
	MaxLength       int      `yaml:"max_length" json:"max_length"`
	Unique          bool     `yaml:"unique" json:"unique"`
	Editable        bool     `yaml:"editable" json:"editable"`
	SourceField     string   `yaml:"source_field,omitempty" json:"source_field,omitempty"`
	DateField       string   `yaml:"date_field,omitempty" json:"date_field,omitempty"`
	SplitOnWords    bool     `yaml:"split_on_words" json:"split_on_words"`
	Underscores     bool     `yaml:"underscores" json:"underscores"`
	AllowDuplicates bool     `yaml:"allow_duplicates" json:"allow_duplicates"`
	ReservedSlugs   []string `yaml:"reserved_slugs,omitempty" json:"reserved_slugs,omitempty"`
}

// OptionDefault names a custom option and its declared default.
type OptionDefault struct {
	Name    string `yaml:"name" json:"name"`
	Default any    `yaml:"default" json:"default"`
}

// Defaults lists the custom options a Field accepts, with their defaults.
// A nil default means "not set".
func Defaults() []OptionDefault {
	return []OptionDefault{
		{Name: "source_field", Default: nil},
		{Name: "date_field", Default: nil},
		{Name: "split_on_words", Default: false},
		{Name: "underscores", Default: true},
		{Name: "allow_duplicates", Default: false},
		{Name: "reserved_slugs", Default: []string{}},
	}
}

// Describe returns the descriptor of f, tagged with the owning model name.
func (f *Field) Describe(model string) Descriptor {
	return Descriptor{
		Model:           model,
		Attr:            f.name,
		MaxLength:       f.maxLength,
		Unique:          f.Unique(),
		Editable:        f.Editable(),
		SourceField:     f.sourceField,
		DateField:       f.dateField,
		SplitOnWords:    f.splitOnWords,
		Underscores:     f.underscores,
		AllowDuplicates: f.allowDuplicates,
		ReservedSlugs:   slices.Clone(f.reserved),
	}
}

// Overrides returns the custom options whose value differs from the default.
func (d Descriptor) Overrides() map[string]any {
	out := make(map[string]any)
	if d.SourceField != "" {
		out["source_field"] = d.SourceField
	}
	if d.DateField != "" {
		out["date_field"] = d.DateField
	}
	if d.SplitOnWords {
		out["split_on_words"] = true
	}
	if !d.Underscores {
		out["underscores"] = false
	}
	if d.AllowDuplicates {
		out["allow_duplicates"] = true
	}
	if len(d.ReservedSlugs) > 0 {
		out["reserved_slugs"] = slices.Clone(d.ReservedSlugs)
	}
	return out
}

// Field rebuilds the declaration described by d.
func (d Descriptor) Field(opts ...Option) (*Field, error) {
	if d.Attr == "" {
		return nil, fmt.Errorf("descriptor %q: attr is required", d.Model)
	}
	if d.MaxLength <= 0 {
		return nil, fmt.Errorf("descriptor %q: max_length must be positive, got %d", d.Model, d.MaxLength)
	}
	base := []Option{
		SourceField(d.SourceField),
		DateField(d.DateField),
		SplitOnWords(d.SplitOnWords),
		Underscores(d.Underscores),
		AllowDuplicates(d.AllowDuplicates),
		Reserved(d.ReservedSlugs...),
		MaxLength(d.MaxLength),
	}
	return New(d.Attr, append(base, opts...)...), nil
}

// UnmarshalYAML applies the option defaults before decoding, so keys left
// out of a document keep their declared defaults.
func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	type plain Descriptor
	out := plain{MaxLength: DefaultMaxLength, Underscores: true}
	if err := node.Decode(&out); err != nil {
		return err
	}
	*d = Descriptor(out)
	return nil
}

// MarshalDescriptors renders descriptors as a YAML document.
func MarshalDescriptors(ds []Descriptor) ([]byte, error) {
	out, err := yaml.Marshal(map[string][]Descriptor{"fields": ds})
	if err != nil {
		return nil, fmt.Errorf("marshal descriptors: %w", err)
	}
	return out, nil
}

// ParseDescriptors reads a document produced by MarshalDescriptors.
func ParseDescriptors(data []byte) ([]Descriptor, error) {
	var doc struct {
		Fields []Descriptor `yaml:"fields"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse descriptors: %w", err)
	}
	return doc.Fields, nil
}
