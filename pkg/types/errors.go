package types

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error raised by this package.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrDuplicateKey is returned by the AddXEntry helpers when the key is
	// already present in the map being built.
	ErrDuplicateKey = fmt.Errorf("%w: duplicated key", ErrInvalidArgument)

	// ErrUnknownEnumValue is returned by the ParseX functions for empty or
	// unrecognised input.
	ErrUnknownEnumValue = fmt.Errorf("%w: unknown enum value", ErrInvalidArgument)
)

func duplicateKeyError(key string) error {
	return fmt.Errorf("%w (%s)", ErrDuplicateKey, key)
}

// addEntry inserts key into *m, creating the map on first use. An existing
// key is rejected and the map is left untouched.
func addEntry[V any](m *map[string]V, key string, value V) error {
	if *m == nil {
		*m = make(map[string]V)
	}
	if _, ok := (*m)[key]; ok {
		return duplicateKeyError(key)
	}
	(*m)[key] = value
	return nil
}

// copyList returns a copy of v, or nil when v is nil.
func copyList[T any](v []T) []T {
	if v == nil {
		return nil
	}
	out := make([]T, len(v))
	copy(out, v)
	return out
}
