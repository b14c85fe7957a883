/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package reflector

import (
	"reflect"

	"github.com/suparena/keymap/mapping"
	"github.com/suparena/keymap/registry"
)

// Builder returns a registry.BuildFunc that maps the fields of struct type t and
// links the maps of its embedded documents.
func Builder(t reflect.Type) registry.BuildFunc {
	return func(m *mapping.Map, resolve registry.ResolveFunc) error {
		defs, err := Definitions(t)
		if err != nil {
			return err
		}
		for _, def := range defs {
			if err := m.Add(def); err != nil {
				return err
			}
		}
		return registry.LinkDependencies(m, resolve)
	}
}

// Register defines T, and every struct type reachable through its embedded
// documents, in r. Types that are already defined are left alone.
func Register[T any](r *registry.Registry) error {
	return RegisterType(r, reflect.TypeOf((*T)(nil)).Elem())
}

// RegisterType is the non-generic form of Register.
func RegisterType(r *registry.Registry, t reflect.Type) error {
	pending := []reflect.Type{deref(t)}
	seen := map[reflect.Type]bool{}

	for len(pending) > 0 {
		current := pending[0]
		pending = pending[1:]
		if seen[current] {
			continue
		}
		seen[current] = true

		fields, err := promoted(current)
		if err != nil {
			return err
		}
		for _, c := range fields {
			if !c.def.IsComposite() {
				continue
			}
			if _, target := classify(c.field.Type); target != nil {
				pending = append(pending, target)
			}
		}

		name := registry.NameOf(current)
		if r.IsDefined(name) {
			continue
		}
		if err := r.Define(name, Builder(current)); err != nil {
			return err
		}
	}
	return nil
}
