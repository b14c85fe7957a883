/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package reflector

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/keymap/errors"
	"github.com/suparena/keymap/mapping"
	"github.com/suparena/keymap/registry"
)

// TagName is the struct tag holding the document key, shared with attributevalue.
const TagName = "dynamodbav"

var (
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	avMarshalerType   = reflect.TypeOf((*attributevalue.Marshaler)(nil)).Elem()
)

// formats maps strfmt types to their registered format names.
var formats = map[reflect.Type]string{
	reflect.TypeOf(strfmt.DateTime{}):   "date-time",
	reflect.TypeOf(strfmt.Date{}):       "date",
	reflect.TypeOf(strfmt.UUID("")):     "uuid",
	reflect.TypeOf(strfmt.Email("")):    "email",
	reflect.TypeOf(strfmt.URI("")):      "uri",
	reflect.TypeOf(strfmt.Hostname("")): "hostname",
	reflect.TypeOf(strfmt.Duration(0)):  "duration",
}

// Definitions derives the definitions of struct type t from its exported fields.
//
// Fields promoted from embedded structs follow Go's selector rules: the
// shallowest field of a name wins, and two fields of a name at the same depth
// hide each other unless exactly one of them is tagged.
func Definitions(t reflect.Type) ([]*mapping.Definition, error) {
	fields, err := promoted(t)
	if err != nil {
		return nil, err
	}
	defs := make([]*mapping.Definition, 0, len(fields))
	for _, c := range fields {
		defs = append(defs, c.def)
	}
	return defs, nil
}

// candidate is a field found while flattening, before shadowing is applied.
type candidate struct {
	def    *mapping.Definition
	field  reflect.StructField
	depth  int
	tagged bool
}

// promoted returns the mapped fields of t after shadowing, in declaration order.
func promoted(t reflect.Type) ([]candidate, error) {
	t = deref(t)
	if t.Kind() != reflect.Struct {
		return nil, errors.NewValidationError("type", fmt.Sprintf("%s is not a struct", t))
	}

	var found []candidate
	if err := collect(t, 0, &found, map[reflect.Type]bool{}); err != nil {
		return nil, err
	}
	return dominant(found), nil
}

func collect(t reflect.Type, depth int, found *[]candidate, flattening map[reflect.Type]bool) error {
	flattening[t] = true
	defer delete(flattening, t)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get(TagName)
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		// untagged embedded structs are inlined like attributevalue does
		if field.Anonymous && name == "" {
			ft := deref(field.Type)
			if ft.Kind() == reflect.Struct && !isScalar(ft) {
				if flattening[ft] {
					return errors.NewValidationError(field.Name, fmt.Sprintf("%s embeds itself", t))
				}
				if err := collect(ft, depth+1, found, flattening); err != nil {
					return err
				}
				continue
			}
		}
		if !field.IsExported() {
			continue
		}

		def, err := definition(field, name)
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", t.Name(), field.Name, err)
		}
		*found = append(*found, candidate{def: def, field: field, depth: depth, tagged: name != ""})
	}
	return nil
}

// dominant keeps, per attribute name, the field Go would select, in
// declaration order.
func dominant(found []candidate) []candidate {
	byName := make(map[string][]candidate)
	for _, c := range found {
		byName[c.def.Attribute()] = append(byName[c.def.Attribute()], c)
	}

	var winners []candidate
	for _, c := range found {
		if winner, ok := pick(byName[c.def.Attribute()]); ok && winner.def == c.def {
			winners = append(winners, c)
		}
	}
	return winners
}

func pick(same []candidate) (candidate, bool) {
	shallowest := same[0].depth
	for _, c := range same[1:] {
		if c.depth < shallowest {
			shallowest = c.depth
		}
	}

	var top, tagged []candidate
	for _, c := range same {
		if c.depth != shallowest {
			continue
		}
		top = append(top, c)
		if c.tagged {
			tagged = append(tagged, c)
		}
	}
	switch {
	case len(top) == 1:
		return top[0], true
	case len(tagged) == 1:
		return tagged[0], true
	}
	return candidate{}, false
}

func definition(field reflect.StructField, key string) (*mapping.Definition, error) {
	opts := []mapping.DefinitionOption{mapping.WithType(field.Type.String())}

	kind, target := classify(field.Type)
	switch kind {
	case mapping.KindDocument:
		opts = append(opts, mapping.AsDocument(registry.NameOf(target)))
	case mapping.KindCollection:
		opts = append(opts, mapping.AsCollection(registry.NameOf(target)))
	}
	if format, ok := formats[deref(field.Type)]; ok {
		opts = append(opts, mapping.WithFormat(format))
	}

	return mapping.NewDefinition(field.Name, key, opts...)
}

// classify returns the kind of a field type and, for composite kinds, the
// embedded struct type.
func classify(t reflect.Type) (mapping.Kind, reflect.Type) {
	base := deref(t)
	if isScalar(base) {
		return mapping.KindScalar, nil
	}
	switch base.Kind() {
	case reflect.Struct:
		return mapping.KindDocument, base
	case reflect.Slice, reflect.Array:
		elem := deref(base.Elem())
		if elem.Kind() == reflect.Struct && !isScalar(elem) {
			return mapping.KindCollection, elem
		}
	}
	return mapping.KindScalar, nil
}

// isScalar reports whether values of t are stored as a single attribute value.
func isScalar(t reflect.Type) bool {
	if _, ok := formats[t]; ok {
		return true
	}
	ptr := reflect.PointerTo(t)
	for _, iface := range []reflect.Type{textMarshalerType, avMarshalerType} {
		if t.Implements(iface) || ptr.Implements(iface) {
			return true
		}
	}
	return false
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
