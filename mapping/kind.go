/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mapping

import (
	"strings"

	"github.com/suparena/keymap/errors"
)

// Kind tells how an attribute value is stored in a document.
type Kind int

const (
	// KindScalar is a plain value (string, number, bool, list or map of plain values).
	KindScalar Kind = iota
	// KindDocument is a single embedded document described by another map.
	KindDocument
	// KindCollection is a list of embedded documents described by another map.
	KindCollection
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindDocument:
		return "document"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name into a Kind. The empty string is a scalar.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scalar":
		return KindScalar, nil
	case "document":
		return KindDocument, nil
	case "collection":
		return KindCollection, nil
	}
	return KindScalar, errors.NewValidationError("kind", "unknown kind "+s)
}
