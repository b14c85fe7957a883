/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mapping

import (
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/suparena/keymap/errors"
)

// Definition describes how one attribute maps to a document field.
// Definitions are immutable; build them with NewDefinition.
type Definition struct {
	attribute string
	key       string
	typ       string
	kind      Kind
	target    string
	format    string
}

// DefinitionOption configures a Definition
type DefinitionOption func(*Definition)

// WithType sets the free-form type label of the attribute
func WithType(typ string) DefinitionOption {
	return func(d *Definition) {
		d.typ = typ
	}
}

// WithFormat sets the string format of the attribute (e.g. "date-time")
func WithFormat(format string) DefinitionOption {
	return func(d *Definition) {
		d.format = format
	}
}

// AsDocument marks the attribute as a single embedded document of the target type
func AsDocument(target string) DefinitionOption {
	return func(d *Definition) {
		d.kind = KindDocument
		d.target = target
	}
}

// AsCollection marks the attribute as a list of embedded documents of the target type
func AsCollection(target string) DefinitionOption {
	return func(d *Definition) {
		d.kind = KindCollection
		d.target = target
	}
}

// NewDefinition creates a Definition for attribute stored under key.
// An empty key means the document field has the attribute's name.
func NewDefinition(attribute, key string, opts ...DefinitionOption) (*Definition, error) {
	if attribute == "" {
		return nil, errors.NewValidationError("attribute", "must not be empty")
	}
	if key == "" {
		key = attribute
	}

	d := &Definition{
		attribute: attribute,
		key:       key,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.kind != KindScalar && d.target == "" {
		return nil, errors.NewValidationError("target",
			fmt.Sprintf("%s attribute %q requires a target type", d.kind, attribute))
	}
	if d.kind == KindScalar && d.target != "" {
		return nil, errors.NewValidationError("target",
			fmt.Sprintf("scalar attribute %q cannot have a target type", attribute))
	}
	if d.format != "" && !strfmt.Default.ContainsName(d.format) {
		return nil, errors.NewValidationError("format",
			fmt.Sprintf("unknown format %q for attribute %q", d.format, attribute))
	}
	return d, nil
}

// MustDefinition is like NewDefinition but panics on error.
func MustDefinition(attribute, key string, opts ...DefinitionOption) *Definition {
	d, err := NewDefinition(attribute, key, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Attribute returns the in-language attribute name.
func (d *Definition) Attribute() string { return d.attribute }

// Key returns the document field name.
func (d *Definition) Key() string { return d.key }

// Type returns the type label, if any.
func (d *Definition) Type() string { return d.typ }

// Kind returns how the value is embedded.
func (d *Definition) Kind() Kind { return d.kind }

// Target returns the owner type of the embedded map for composite attributes.
func (d *Definition) Target() string { return d.target }

// Format returns the strfmt format name, if any.
func (d *Definition) Format() string { return d.format }

// IsComposite reports whether the attribute holds embedded documents.
func (d *Definition) IsComposite() bool {
	return d.kind == KindDocument || d.kind == KindCollection
}

func (d *Definition) String() string {
	if d.IsComposite() {
		return fmt.Sprintf("%s -> %s (%s of %s)", d.attribute, d.key, d.kind, d.target)
	}
	return fmt.Sprintf("%s -> %s", d.attribute, d.key)
}
