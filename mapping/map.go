/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mapping

import (
	"fmt"
	"maps"
	"slices"

	"github.com/suparena/keymap/errors"
)

// Map is the attribute/key index of one mapped type.
//
// The attribute index and the key index are exact inverses of each other and are
// only mutated together by Add. A Map is meant to be built once and then shared
// read-only; it does no locking of its own.
type Map struct {
	ownerType string

	// attribute -> key
	attributes map[string]string
	// key -> attribute
	keys map[string]string

	definitions  map[string]*Definition
	dependencies map[string]*Map
}

// New creates an empty Map for ownerType. It panics if ownerType is empty.
func New(ownerType string) *Map {
	if ownerType == "" {
		panic("mapping: empty owner type")
	}
	return &Map{
		ownerType:    ownerType,
		attributes:   make(map[string]string),
		keys:         make(map[string]string),
		definitions:  make(map[string]*Definition),
		dependencies: make(map[string]*Map),
	}
}

// OwnerType returns the identifier of the mapped type.
func (m *Map) OwnerType() string {
	return m.ownerType
}

// AttributeIndex returns a copy of the attribute -> key index.
func (m *Map) AttributeIndex() map[string]string {
	return maps.Clone(m.attributes)
}

// KeyIndex returns a copy of the key -> attribute index.
func (m *Map) KeyIndex() map[string]string {
	return maps.Clone(m.keys)
}

// Definitions returns a copy of the attribute -> definition registry.
func (m *Map) Definitions() map[string]*Definition {
	return maps.Clone(m.definitions)
}

// Dependencies returns a copy of the attribute -> embedded map registry.
func (m *Map) Dependencies() map[string]*Map {
	return maps.Clone(m.dependencies)
}

// Add registers a definition.
//
// Adding an attribute again replaces its definition and drops the reverse entry of
// its previous key. A key that already belongs to another attribute is rejected
// with a DuplicateKeyError and the map is left untouched.
func (m *Map) Add(def *Definition) error {
	if def == nil {
		return errors.NewValidationError("definition", "must not be nil")
	}
	attribute, key := def.Attribute(), def.Key()

	if owner, ok := m.keys[key]; ok && owner != attribute {
		return errors.NewDuplicateKeyError(m.ownerType, key, attribute, owner)
	}
	if previous, ok := m.attributes[attribute]; ok && previous != key {
		delete(m.keys, previous)
	}

	m.attributes[attribute] = key
	m.keys[key] = attribute
	m.definitions[attribute] = def
	return nil
}

// Has reports whether identifier is a mapped attribute or a mapped key.
func (m *Map) Has(identifier string) bool {
	if _, ok := m.attributes[identifier]; ok {
		return true
	}
	_, ok := m.keys[identifier]
	return ok
}

// Get returns the definition for identifier, resolved as an attribute first and
// as a document key second.
func (m *Map) Get(identifier string) (*Definition, bool) {
	if _, ok := m.attributes[identifier]; ok {
		return m.definitions[identifier], true
	}
	if attribute, ok := m.keys[identifier]; ok {
		return m.definitions[attribute], true
	}
	return nil, false
}

// KeyOf returns the document key of attribute.
func (m *Map) KeyOf(attribute string) (string, bool) {
	key, ok := m.attributes[attribute]
	return key, ok
}

// AttributeOf returns the attribute stored under key.
func (m *Map) AttributeOf(key string) (string, bool) {
	attribute, ok := m.keys[key]
	return attribute, ok
}

// AddDependency attaches the embedded map of attribute. The attribute must have
// been added first.
func (m *Map) AddDependency(attribute string, child *Map) error {
	if child == nil {
		return errors.NewValidationError("dependency", "must not be nil")
	}
	if _, ok := m.attributes[attribute]; !ok {
		return errors.NewUnmappedAttributeError(m.ownerType, attribute)
	}
	m.dependencies[attribute] = child
	return nil
}

// HasDependency reports whether an embedded map is attached to attribute.
func (m *Map) HasDependency(attribute string) bool {
	_, ok := m.dependencies[attribute]
	return ok
}

// GetDependency returns the embedded map attached to attribute.
func (m *Map) GetDependency(attribute string) (*Map, bool) {
	child, ok := m.dependencies[attribute]
	return child, ok
}

// Len returns the number of mapped attributes.
func (m *Map) Len() int {
	return len(m.attributes)
}

// Attributes returns the mapped attribute names in sorted order.
func (m *Map) Attributes() []string {
	names := make([]string, 0, len(m.attributes))
	for attribute := range m.attributes {
		names = append(names, attribute)
	}
	slices.Sort(names)
	return names
}

func (m *Map) String() string {
	return fmt.Sprintf("Map(%s, %d attributes, %d dependencies)", m.ownerType, len(m.attributes), len(m.dependencies))
}
