/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"

	"github.com/suparena/keymap/mapping"
)

// Default is the process-wide registry used by the package-level functions.
var Default = New()

// Define registers a builder in the Default registry.
func Define(ownerType string, build BuildFunc) error {
	return Default.Define(ownerType, build)
}

// Resolve resolves a map from the Default registry.
func Resolve(ownerType string) (*mapping.Map, error) {
	return Default.Resolve(ownerType)
}

// TypeName returns the owner type name used for Go type T.
func TypeName[T any]() string {
	return NameOf(reflect.TypeOf((*T)(nil)).Elem())
}

// NameOf returns the owner type name of t, dereferencing pointers.
func NameOf(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// DefineType registers the builder of Go type T in r.
func DefineType[T any](r *Registry, build BuildFunc) error {
	return r.Define(TypeName[T](), build)
}

// ResolveType resolves the map of Go type T from r.
func ResolveType[T any](r *Registry) (*mapping.Map, error) {
	return r.Resolve(TypeName[T]())
}
