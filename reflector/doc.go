/*
Package reflector derives attribute/key maps from Go struct types.

Each exported field is an attribute named after the field. Its document key comes
from the dynamodbav struct tag, the same tag attributevalue uses when marshaling,
so items produced by attributevalue.MarshalMap are already in key space:

	type User struct {
	    ID      string    `dynamodbav:"_id"`
	    Email   string    `dynamodbav:"email"`
	    Address *Address  `dynamodbav:"addr"`  // embedded document
	    Orders  []Order   `dynamodbav:"orders"` // embedded collection
	    Secret  string    `dynamodbav:"-"`      // not mapped
	}

	reg := registry.New()
	if err := reflector.Register[User](reg); err != nil {
	    return err
	}
	m, err := registry.ResolveType[User](reg)

Types implementing encoding.TextMarshaler or attributevalue.Marshaler (time.Time,
strfmt.DateTime, ...) are scalars. strfmt types also record their format name.
Untagged embedded structs are flattened into the embedding type.
*/
package reflector
