/*
Package mapping holds the attribute/key index at the heart of keymap.

A Map associates the attribute names of one mapped type with the field names used
by the document store, in both directions, and keeps the Definition of every
attribute:

	m := mapping.New("Document")
	_ = m.Add(mapping.MustDefinition("id", "_id"))
	_ = m.Add(mapping.MustDefinition("address", "addr", mapping.AsDocument("Address")))

	def, ok := m.Get("_id") // same definition as m.Get("id")

Attributes holding embedded documents carry a dependency: the Map of the embedded
type. Dependencies are held by reference, so a type may embed itself:

	_ = m.AddDependency("address", addressMap)
	child, ok := m.GetDependency("address")

Definitions are produced outside this package (see the reflector and schema
packages). A Map is built once and then read; it does no locking.
*/
package mapping
