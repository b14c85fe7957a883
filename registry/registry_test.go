/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/suparena/keymap/errors"
	"github.com/suparena/keymap/mapping"
)

// defineCyclic registers Document <-> EmbedDocument, mirroring a document that
// embeds a document which embeds the first type again.
func defineCyclic(t *testing.T, r *Registry) {
	t.Helper()

	require.NoError(t, r.Define("Document", func(m *mapping.Map, resolve ResolveFunc) error {
		for _, def := range []*mapping.Definition{
			mapping.MustDefinition("id", "_id"),
			mapping.MustDefinition("mongoString", ""),
			mapping.MustDefinition("mongoDocument", "", mapping.AsDocument("EmbedDocument")),
			mapping.MustDefinition("mongoCollection", "", mapping.AsCollection("EmbedDocument")),
		} {
			if err := m.Add(def); err != nil {
				return err
			}
		}
		return LinkDependencies(m, resolve)
	}))

	require.NoError(t, r.Define("EmbedDocument", func(m *mapping.Map, resolve ResolveFunc) error {
		if err := m.Add(mapping.MustDefinition("name", "")); err != nil {
			return err
		}
		if err := m.Add(mapping.MustDefinition("document", "", mapping.AsDocument("Document"))); err != nil {
			return err
		}
		return LinkDependencies(m, resolve)
	}))
}

func TestRegistryResolvesCycles(t *testing.T) {
	r := New(WithLogger(zaptest.NewLogger(t)))
	defineCyclic(t, r)

	doc, err := r.Resolve("Document")
	require.NoError(t, err)

	embed, ok := doc.GetDependency("mongoDocument")
	require.True(t, ok)
	assert.Equal(t, "EmbedDocument", embed.OwnerType())

	collection, ok := doc.GetDependency("mongoCollection")
	require.True(t, ok)
	assert.Same(t, embed, collection)

	back, ok := embed.GetDependency("document")
	require.True(t, ok)
	assert.Same(t, doc, back)

	assert.False(t, doc.HasDependency("id"))
}

func TestRegistryMemoizes(t *testing.T) {
	r := New()
	calls := 0
	require.NoError(t, r.Define("Document", func(m *mapping.Map, _ ResolveFunc) error {
		calls++
		return m.Add(mapping.MustDefinition("id", "_id"))
	}))

	first, err := r.Resolve("Document")
	require.NoError(t, err)
	second, err := r.Resolve("Document")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestRegistryUnknownType(t *testing.T) {
	r := New()
	_, err := r.Resolve("Missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRegistryDefineErrors(t *testing.T) {
	r := New()
	noop := func(*mapping.Map, ResolveFunc) error { return nil }

	require.NoError(t, r.Define("Document", noop))
	assert.True(t, errors.IsAlreadyExists(r.Define("Document", noop)))
	assert.True(t, errors.IsValidationError(r.Define("", noop)))
	assert.True(t, errors.IsValidationError(r.Define("Other", nil)))

	assert.True(t, r.IsDefined("Document"))
	assert.False(t, r.IsDefined("Other"))
}

func TestRegistryRollsBackFailedBuild(t *testing.T) {
	r := New(WithLogger(zaptest.NewLogger(t)))
	fail := true

	require.NoError(t, r.Define("Parent", func(m *mapping.Map, resolve ResolveFunc) error {
		if err := m.Add(mapping.MustDefinition("child", "", mapping.AsDocument("Child"))); err != nil {
			return err
		}
		return LinkDependencies(m, resolve)
	}))
	require.NoError(t, r.Define("Child", func(m *mapping.Map, resolve ResolveFunc) error {
		if err := m.Add(mapping.MustDefinition("parent", "", mapping.AsDocument("Parent"))); err != nil {
			return err
		}
		if err := LinkDependencies(m, resolve); err != nil {
			return err
		}
		if fail {
			return fmt.Errorf("boom")
		}
		return nil
	}))

	_, err := r.Resolve("Parent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	// neither half of the cycle survives the failure
	fail = false
	parent, err := r.Resolve("Parent")
	require.NoError(t, err)
	child, ok := parent.GetDependency("child")
	require.True(t, ok)
	back, ok := child.GetDependency("parent")
	require.True(t, ok)
	assert.Same(t, parent, back)
	assert.Equal(t, 1, parent.Len())
}

func TestRegistryDiscardsSwallowedChildFailure(t *testing.T) {
	r := New(WithLogger(zaptest.NewLogger(t)))
	childBuilds, grandchildBuilds := 0, 0

	require.NoError(t, r.Define("Parent", func(m *mapping.Map, resolve ResolveFunc) error {
		// optional dependency: a broken child is ignored
		_, _ = resolve("Child")
		return m.Add(mapping.MustDefinition("name", ""))
	}))
	require.NoError(t, r.Define("Child", func(m *mapping.Map, resolve ResolveFunc) error {
		childBuilds++
		if err := m.Add(mapping.MustDefinition("grandchild", "", mapping.AsDocument("Grandchild"))); err != nil {
			return err
		}
		if err := LinkDependencies(m, resolve); err != nil {
			return err
		}
		if childBuilds == 1 {
			return fmt.Errorf("boom")
		}
		return nil
	}))
	require.NoError(t, r.Define("Grandchild", func(m *mapping.Map, resolve ResolveFunc) error {
		grandchildBuilds++
		if err := m.Add(mapping.MustDefinition("child", "", mapping.AsDocument("Child"))); err != nil {
			return err
		}
		return LinkDependencies(m, resolve)
	}))

	parent, err := r.Resolve("Parent")
	require.NoError(t, err)
	assert.Equal(t, 1, parent.Len())
	assert.Equal(t, 1, childBuilds)

	// the half-built child and the grandchild pointing at it are rebuilt
	child, err := r.Resolve("Child")
	require.NoError(t, err)
	assert.Equal(t, 2, childBuilds)
	assert.Equal(t, 2, grandchildBuilds)

	grandchild, ok := child.GetDependency("grandchild")
	require.True(t, ok)
	back, ok := grandchild.GetDependency("child")
	require.True(t, ok)
	assert.Same(t, child, back)
}

func TestRegistryMissingTarget(t *testing.T) {
	r := New()
	require.NoError(t, r.Define("Document", func(m *mapping.Map, resolve ResolveFunc) error {
		if err := m.Add(mapping.MustDefinition("embed", "", mapping.AsDocument("Nowhere"))); err != nil {
			return err
		}
		return LinkDependencies(m, resolve)
	}))

	_, err := r.Resolve("Document")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRegistryResolveAll(t *testing.T) {
	r := New()
	defineCyclic(t, r)

	assert.Equal(t, []string{"Document", "EmbedDocument"}, r.Types())

	all, err := r.ResolveAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	embed, _ := all["Document"].GetDependency("mongoDocument")
	assert.Same(t, all["EmbedDocument"], embed)
}

func TestRegistryConcurrentResolve(t *testing.T) {
	r := New()
	defineCyclic(t, r)

	var wg sync.WaitGroup
	results := make([]*mapping.Map, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := r.Resolve("Document")
			assert.NoError(t, err)
			results[i] = m
		}(i)
	}
	wg.Wait()

	for _, m := range results {
		assert.Same(t, results[0], m)
	}
}

type sample struct{}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "github.com/suparena/keymap/registry.sample", TypeName[sample]())
	assert.Equal(t, "github.com/suparena/keymap/registry.sample", TypeName[*sample]())
	assert.Equal(t, "string", TypeName[string]())

	r := New()
	require.NoError(t, DefineType[sample](r, func(m *mapping.Map, _ ResolveFunc) error {
		return m.Add(mapping.MustDefinition("id", "_id"))
	}))
	m, err := ResolveType[sample](r)
	require.NoError(t, err)
	assert.Equal(t, TypeName[sample](), m.OwnerType())
}

func TestDefaultRegistry(t *testing.T) {
	require.NoError(t, Define("DefaultRegistryDocument", func(m *mapping.Map, _ ResolveFunc) error {
		return m.Add(mapping.MustDefinition("id", "_id"))
	}))

	m, err := Resolve("DefaultRegistryDocument")
	require.NoError(t, err)
	assert.True(t, m.Has("_id"))

	again, err := Default.Resolve("DefaultRegistryDocument")
	require.NoError(t, err)
	assert.Same(t, m, again)
}
