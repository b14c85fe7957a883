/*
Package schema loads attribute/key map definitions from YAML.

	types:
	  Document:
	    attributes:
	      id:              { key: _id }
	      mongoString:     {}
	      mongoDocument:   { kind: document, target: EmbedDocument }
	      mongoCollection: { key: items, kind: collection, target: EmbedDocument }
	      createdAt:       { type: string, format: date-time }
	  EmbedDocument:
	    attributes:
	      name:     {}
	      document: { kind: document, target: Document }

An attribute without a key is stored under its own name. Formats must be known to
the strfmt default registry. Loading a schema only validates it; Register hands
the types to a registry where they are built on first use.

	s, err := schema.LoadFile("keymap.yaml")
	if err != nil {
	    return err
	}
	if err := s.Register(reg); err != nil {
	    return err
	}
*/
package schema
