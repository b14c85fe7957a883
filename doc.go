/*
Package keymap provides the attribute/key index of an object-document mapper.

A mapped type has a Map associating the attribute names used in Go code with the
field names used in stored documents, in both directions, plus the maps of the
documents it embeds. The library is organized as:
  - mapping: Map and Definition, the index itself
  - registry: maps by owner type, built lazily, safe for self-embedding types
  - reflector: definitions derived from struct fields and dynamodbav tags
  - schema: definitions loaded from a YAML file
  - document: translation of DynamoDB items between keys and attributes
  - errors: semantic error types

Basic Usage:

	reg := registry.New()
	if err := reflector.Register[User](reg); err != nil {
	    return err
	}

	m, err := registry.ResolveType[User](reg)
	if err != nil {
	    return err
	}

	def, ok := m.Get("_id")         // by document key
	def, ok = m.Get("ID")           // by attribute
	addr, ok := m.GetDependency("Address")

	attrs, err := document.NewTranslator().Decode(m, out.Item)

For more information, see the documentation at https://github.com/suparena/keymap
*/
package keymap
