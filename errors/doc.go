/*
Package errors provides semantic error types for the keymap library.

The package defines the failure scenarios of building and using attribute/key maps
with specific types that can be checked using the standard errors.Is() function or
the provided helper functions.

Common Errors:

	var (
	    ErrNotFound          = errors.New("not found")
	    ErrAlreadyExists     = errors.New("already exists")
	    ErrInvalidInput      = errors.New("invalid input")
	    ErrUnmappedAttribute = errors.New("unmapped attribute")
	    ErrUnmappedKey       = errors.New("unmapped key")
	    ErrDuplicateKey      = errors.New("duplicate key")
	)

Usage:

	// Attaching a dependency to an attribute that was never added
	err := m.AddDependency("address", addressMap)
	if errors.IsUnmappedAttribute(err) {
	    // configuration error: abort mapping setup for this type
	}

	// Create typed errors
	err := errors.NewUnmappedAttributeError("Document", "address")
	err := errors.NewDuplicateKeyError("Document", "_id", "uid", "id")

A missing definition or dependency is not an error: Map.Get and Map.GetDependency
report absence through their boolean result.
*/
package errors
