/*
Package registry resolves attribute/key maps by owner type.

Builders are registered once per owner type and run lazily the first time the map
is needed:

	reg := registry.New(registry.WithLogger(logger))

	reg.Define("Document", func(m *mapping.Map, resolve registry.ResolveFunc) error {
	    if err := m.Add(mapping.MustDefinition("id", "_id")); err != nil {
	        return err
	    }
	    if err := m.Add(mapping.MustDefinition("embed", "embed", mapping.AsDocument("EmbedDocument"))); err != nil {
	        return err
	    }
	    return registry.LinkDependencies(m, resolve)
	})

	m, err := reg.Resolve("Document")

Resolved maps are memoized. A map is published before its builder runs, so a type
embedding itself (Document -> EmbedDocument -> Document) resolves to a cycle of
shared maps instead of recursing forever.

Go types can be registered under a stable name with the generic helpers:

	registry.DefineType[User](reg, build)
	m, err := registry.ResolveType[User](reg)

The registry is thread-safe; builds run under its write lock.
*/
package registry
