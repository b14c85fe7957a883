/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/suparena/keymap/errors"
	"github.com/suparena/keymap/mapping"
)

// ResolveFunc returns the map registered for an owner type.
type ResolveFunc func(ownerType string) (*mapping.Map, error)

// BuildFunc populates an empty map. Dependency maps must be looked up through
// resolve, which is only valid while the BuildFunc runs.
type BuildFunc func(m *mapping.Map, resolve ResolveFunc) error

// Registry holds map builders by owner type and memoizes the maps they build.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]BuildFunc
	maps     map[string]*mapping.Map
	logger   *zap.Logger
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used to report builds
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty Registry
func New(opts ...Option) *Registry {
	r := &Registry{
		builders: make(map[string]BuildFunc),
		maps:     make(map[string]*mapping.Map),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Define registers the builder of ownerType. Each owner type can be defined once.
func (r *Registry) Define(ownerType string, build BuildFunc) error {
	if ownerType == "" {
		return errors.NewValidationError("ownerType", "must not be empty")
	}
	if build == nil {
		return errors.NewValidationError("build", "must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[ownerType]; exists {
		return errors.NewAlreadyExistsError("map", ownerType)
	}
	r.builders[ownerType] = build
	r.logger.Debug("map defined", zap.String("ownerType", ownerType))
	return nil
}

// IsDefined reports whether a builder is registered for ownerType
func (r *Registry) IsDefined(ownerType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.builders[ownerType]
	return ok
}

// Types returns the defined owner types in sorted order
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.builders))
	for t := range r.builders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Resolve returns the map of ownerType, building it on first use.
//
// The map being built is cached before its builder runs, so types that embed
// themselves, directly or through other types, resolve to the same *mapping.Map.
// When a builder fails, its map and every map created while it ran are
// discarded, even if the builder that asked for it ignores the error.
func (r *Registry) Resolve(ownerType string) (*mapping.Map, error) {
	r.mu.RLock()
	m, ok := r.maps[ownerType]
	r.mu.RUnlock()
	if ok {
		return m, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var created []string
	m, err := r.resolveLocked(ownerType, &created)
	if err != nil {
		r.logger.Warn("map resolution failed",
			zap.String("ownerType", ownerType),
			zap.Error(err))
		return nil, err
	}
	return m, nil
}

func (r *Registry) resolveLocked(ownerType string, created *[]string) (*mapping.Map, error) {
	if m, ok := r.maps[ownerType]; ok {
		return m, nil
	}
	build, ok := r.builders[ownerType]
	if !ok {
		return nil, errors.NewNotFoundError("map", ownerType)
	}

	m := mapping.New(ownerType)
	r.maps[ownerType] = m
	mark := len(*created)
	*created = append(*created, ownerType)

	resolve := func(target string) (*mapping.Map, error) {
		return r.resolveLocked(target, created)
	}
	if err := build(m, resolve); err != nil {
		// drop this map and everything built under it, even if a caller
		// swallows the error
		discarded := (*created)[mark:]
		for _, t := range discarded {
			delete(r.maps, t)
		}
		r.logger.Debug("maps discarded",
			zap.String("ownerType", ownerType),
			zap.Strings("discarded", discarded))
		*created = (*created)[:mark]
		return nil, fmt.Errorf("failed to build map for %s: %w", ownerType, err)
	}

	r.logger.Debug("map built",
		zap.String("ownerType", ownerType),
		zap.Int("attributes", m.Len()),
		zap.Int("dependencies", len(m.Dependencies())))
	return m, nil
}

// ResolveAll resolves every defined type and returns the maps by owner type
func (r *Registry) ResolveAll() (map[string]*mapping.Map, error) {
	result := make(map[string]*mapping.Map)
	for _, t := range r.Types() {
		m, err := r.Resolve(t)
		if err != nil {
			return nil, err
		}
		result[t] = m
	}
	return result, nil
}

// LinkDependencies attaches the map of every composite definition's target to m.
// Builders call it after adding their definitions.
func LinkDependencies(m *mapping.Map, resolve ResolveFunc) error {
	definitions := m.Definitions()
	for _, attribute := range m.Attributes() {
		def := definitions[attribute]
		if !def.IsComposite() {
			continue
		}
		child, err := resolve(def.Target())
		if err != nil {
			return fmt.Errorf("failed to resolve %s of attribute %q: %w", def.Target(), attribute, err)
		}
		if err := m.AddDependency(attribute, child); err != nil {
			return err
		}
	}
	return nil
}
