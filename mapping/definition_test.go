/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/keymap/errors"
)

func TestNewDefinition(t *testing.T) {
	tests := []struct {
		name      string
		attribute string
		key       string
		opts      []DefinitionOption
		wantKey   string
		wantKind  Kind
		wantErr   bool
	}{
		{name: "explicit key", attribute: "id", key: "_id", wantKey: "_id"},
		{name: "default key", attribute: "name", wantKey: "name"},
		{name: "document", attribute: "doc", key: "d", opts: []DefinitionOption{AsDocument("Embed")}, wantKey: "d", wantKind: KindDocument},
		{name: "collection", attribute: "docs", opts: []DefinitionOption{AsCollection("Embed")}, wantKey: "docs", wantKind: KindCollection},
		{name: "known format", attribute: "createdAt", opts: []DefinitionOption{WithFormat("date-time")}, wantKey: "createdAt"},
		{name: "empty attribute", attribute: "", key: "k", wantErr: true},
		{name: "document without target", attribute: "doc", opts: []DefinitionOption{AsDocument("")}, wantErr: true},
		{name: "unknown format", attribute: "x", opts: []DefinitionOption{WithFormat("not-a-format")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := NewDefinition(tt.attribute, tt.key, tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.attribute, def.Attribute())
			assert.Equal(t, tt.wantKey, def.Key())
			assert.Equal(t, tt.wantKind, def.Kind())
			assert.Equal(t, tt.wantKind != KindScalar, def.IsComposite())
		})
	}
}

func TestDefinitionString(t *testing.T) {
	assert.Equal(t, "id -> _id", MustDefinition("id", "_id").String())
	assert.Equal(t, "docs -> d (collection of Embed)", MustDefinition("docs", "d", AsCollection("Embed")).String())
}

func TestMustDefinitionPanics(t *testing.T) {
	assert.Panics(t, func() { MustDefinition("", "") })
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"":           KindScalar,
		"scalar":     KindScalar,
		"Document":   KindDocument,
		"collection": KindCollection,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		if in != "" {
			assert.Equal(t, want.String(), got.String())
		}
	}

	_, err := ParseKind("tree")
	assert.True(t, errors.IsValidationError(err))
}
