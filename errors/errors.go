/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a map or type is not registered
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a type is registered twice
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnmappedAttribute is returned when an operation targets an attribute that was never added
	ErrUnmappedAttribute = errors.New("unmapped attribute")

	// ErrUnmappedKey is returned when a document key has no mapped attribute
	ErrUnmappedKey = errors.New("unmapped key")

	// ErrDuplicateKey is returned when an external key is already owned by another attribute
	ErrDuplicateKey = errors.New("duplicate key")
)

// NotFoundError represents a lookup miss in a registry
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents a duplicate registration
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// UnmappedAttributeError is returned when a dependency is attached to an attribute
// that the map does not know about.
type UnmappedAttributeError struct {
	OwnerType string
	Attribute string
}

func (e *UnmappedAttributeError) Error() string {
	return fmt.Sprintf("unable to add dependency for un-mapped attribute %q of %s", e.Attribute, e.OwnerType)
}

func (e *UnmappedAttributeError) Is(target error) bool {
	return target == ErrUnmappedAttribute
}

// UnmappedKeyError is returned by strict translation when a document key
// (or attribute) has no counterpart in the map.
type UnmappedKeyError struct {
	OwnerType string
	Key       string
}

func (e *UnmappedKeyError) Error() string {
	return fmt.Sprintf("%q is not mapped by %s", e.Key, e.OwnerType)
}

func (e *UnmappedKeyError) Is(target error) bool {
	return target == ErrUnmappedKey
}

// DuplicateKeyError is returned when a definition reuses an external key
// already owned by a different attribute.
type DuplicateKeyError struct {
	OwnerType string
	Key       string
	Attribute string
	Existing  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("key %q of %s is already mapped to attribute %q, cannot map it to %q",
		e.Key, e.OwnerType, e.Existing, e.Attribute)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Type: kind, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(kind, key string) error {
	return &AlreadyExistsError{Type: kind, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUnmappedAttributeError creates a new UnmappedAttributeError
func NewUnmappedAttributeError(ownerType, attribute string) error {
	return &UnmappedAttributeError{OwnerType: ownerType, Attribute: attribute}
}

// NewUnmappedKeyError creates a new UnmappedKeyError
func NewUnmappedKeyError(ownerType, key string) error {
	return &UnmappedKeyError{OwnerType: ownerType, Key: key}
}

// NewDuplicateKeyError creates a new DuplicateKeyError
func NewDuplicateKeyError(ownerType, key, attribute, existing string) error {
	return &DuplicateKeyError{OwnerType: ownerType, Key: key, Attribute: attribute, Existing: existing}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnmappedAttribute checks if an error is an unmapped attribute error
func IsUnmappedAttribute(err error) bool {
	return errors.Is(err, ErrUnmappedAttribute)
}

// IsUnmappedKey checks if an error is an unmapped key error
func IsUnmappedKey(err error) bool {
	return errors.Is(err, ErrUnmappedKey)
}

// IsDuplicateKey checks if an error is a duplicate key error
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}
