/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/suparena/keymap/errors"
	"github.com/suparena/keymap/mapping"
)

type direction int

const (
	toAttributes direction = iota
	toKeys
)

// Translator renames the fields of DynamoDB items between document keys and
// attribute names, following the dependencies of a map into embedded documents.
type Translator struct {
	logger *zap.Logger
	strict bool
}

// Option configures a Translator
type Option func(*Translator)

// WithLogger sets the logger used to report dropped fields
func WithLogger(logger *zap.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithStrict makes unmapped fields an error instead of dropping them
func WithStrict(strict bool) Option {
	return func(t *Translator) {
		t.strict = strict
	}
}

// NewTranslator creates a Translator
func NewTranslator(opts ...Option) *Translator {
	t := &Translator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ToAttributes renames the keys of a stored item to attribute names.
func (t *Translator) ToAttributes(m *mapping.Map, item map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	return t.translate(m, item, toAttributes)
}

// ToKeys renames the attribute names of an item to document keys.
func (t *Translator) ToKeys(m *mapping.Map, attrs map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	return t.translate(m, attrs, toKeys)
}

// Decode translates a stored item to attribute names and unmarshals it into
// plain Go values.
func (t *Translator) Decode(m *mapping.Map, item map[string]types.AttributeValue) (map[string]any, error) {
	attrs, err := t.ToAttributes(m, item)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := attributevalue.UnmarshalMap(attrs, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", m.OwnerType(), err)
	}
	return out, nil
}

// Encode marshals plain Go values keyed by attribute name into a stored item.
func (t *Translator) Encode(m *mapping.Map, attrs map[string]any) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", m.OwnerType(), err)
	}
	return t.ToKeys(m, av)
}

func (t *Translator) translate(m *mapping.Map, in map[string]types.AttributeValue, dir direction) (map[string]types.AttributeValue, error) {
	out := make(map[string]types.AttributeValue, len(in))
	for name, value := range in {
		def, renamed, ok := lookup(m, name, dir)
		if !ok {
			if t.strict {
				return nil, errors.NewUnmappedKeyError(m.OwnerType(), name)
			}
			t.logger.Debug("dropping unmapped field",
				zap.String("ownerType", m.OwnerType()),
				zap.String("field", name))
			continue
		}

		if child, ok := m.GetDependency(def.Attribute()); ok {
			translated, err := t.translateValue(child, def.Kind(), value, dir)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", m.OwnerType(), name, err)
			}
			value = translated
		}
		out[renamed] = value
	}
	return out, nil
}

func (t *Translator) translateValue(child *mapping.Map, kind mapping.Kind, value types.AttributeValue, dir direction) (types.AttributeValue, error) {
	switch kind {
	case mapping.KindDocument:
		doc, ok := value.(*types.AttributeValueMemberM)
		if !ok {
			return value, nil
		}
		nested, err := t.translate(child, doc.Value, dir)
		if err != nil {
			return nil, err
		}
		return &types.AttributeValueMemberM{Value: nested}, nil

	case mapping.KindCollection:
		list, ok := value.(*types.AttributeValueMemberL)
		if !ok {
			return value, nil
		}
		elems := make([]types.AttributeValue, len(list.Value))
		for i, elem := range list.Value {
			doc, ok := elem.(*types.AttributeValueMemberM)
			if !ok {
				elems[i] = elem
				continue
			}
			nested, err := t.translate(child, doc.Value, dir)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			elems[i] = &types.AttributeValueMemberM{Value: nested}
		}
		return &types.AttributeValueMemberL{Value: elems}, nil
	}
	return value, nil
}

// lookup resolves name in the direction's source space and returns its
// definition with the name it takes in the other space.
func lookup(m *mapping.Map, name string, dir direction) (*mapping.Definition, string, bool) {
	if dir == toAttributes {
		attribute, ok := m.AttributeOf(name)
		if !ok {
			return nil, "", false
		}
		def, _ := m.Get(attribute)
		return def, attribute, true
	}

	key, ok := m.KeyOf(name)
	if !ok {
		return nil, "", false
	}
	def, _ := m.Get(name)
	return def, key, true
}
