/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/suparena/keymap/errors"
	"github.com/suparena/keymap/mapping"
	"github.com/suparena/keymap/registry"
)

// Attribute is the YAML form of a mapping.Definition.
type Attribute struct {
	Key    string `yaml:"key,omitempty"`
	Type   string `yaml:"type,omitempty"`
	Kind   string `yaml:"kind,omitempty"`
	Target string `yaml:"target,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Type lists the attributes of one mapped type, by attribute name.
type Type struct {
	Attributes map[string]Attribute `yaml:"attributes"`
}

// Schema is a set of mapped types, by owner type.
type Schema struct {
	Types map[string]Type `yaml:"types"`
}

// Parse decodes and validates a YAML schema.
func Parse(data []byte) (*Schema, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes and validates a YAML schema read from r. Unknown fields are rejected.
func Load(r io.Reader) (*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Schema
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return nil, errors.NewValidationError("", "empty schema")
		}
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads a YAML schema from path.
func LoadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks that every attribute of every type forms a valid definition.
func (s *Schema) Validate() error {
	if len(s.Types) == 0 {
		return errors.NewValidationError("types", "no types defined")
	}
	for _, name := range s.TypeNames() {
		if name == "" {
			return errors.NewValidationError("types", "empty type name")
		}
		if _, err := s.Definitions(name); err != nil {
			return err
		}
	}
	return nil
}

// TypeNames returns the owner types of the schema in sorted order.
func (s *Schema) TypeNames() []string {
	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions builds the definitions of ownerType, sorted by attribute.
func (s *Schema) Definitions(ownerType string) ([]*mapping.Definition, error) {
	typ, ok := s.Types[ownerType]
	if !ok {
		return nil, errors.NewNotFoundError("type", ownerType)
	}

	attributes := make([]string, 0, len(typ.Attributes))
	for name := range typ.Attributes {
		attributes = append(attributes, name)
	}
	sort.Strings(attributes)

	defs := make([]*mapping.Definition, 0, len(attributes))
	for _, name := range attributes {
		def, err := typ.Attributes[name].definition(name)
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", ownerType, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (a Attribute) definition(name string) (*mapping.Definition, error) {
	kind, err := mapping.ParseKind(a.Kind)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", name, err)
	}

	opts := []mapping.DefinitionOption{
		mapping.WithType(a.Type),
		mapping.WithFormat(a.Format),
	}
	switch kind {
	case mapping.KindDocument:
		opts = append(opts, mapping.AsDocument(a.Target))
	case mapping.KindCollection:
		opts = append(opts, mapping.AsCollection(a.Target))
	default:
		if a.Target != "" {
			return nil, errors.NewValidationError(name, "target requires kind document or collection")
		}
	}
	return mapping.NewDefinition(name, a.Key, opts...)
}

// Register defines every type of the schema in r. Targets are resolved when the
// maps are resolved, so they may be defined by another source.
func (s *Schema) Register(r *registry.Registry) error {
	for _, name := range s.TypeNames() {
		defs, err := s.Definitions(name)
		if err != nil {
			return err
		}
		if err := r.Define(name, build(defs)); err != nil {
			return err
		}
	}
	return nil
}

func build(defs []*mapping.Definition) registry.BuildFunc {
	return func(m *mapping.Map, resolve registry.ResolveFunc) error {
		for _, def := range defs {
			if err := m.Add(def); err != nil {
				return err
			}
		}
		return registry.LinkDependencies(m, resolve)
	}
}
