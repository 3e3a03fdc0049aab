package types

import "fmt"

// enumTable is the lookup table behind the ParseX functions. Tables are built
// once at package initialisation and never modified.
type enumTable[T ~string] struct {
	name    string
	ordered []T
	byValue map[string]T
}

func newEnumTable[T ~string](name string, values ...T) *enumTable[T] {
	t := &enumTable[T]{
		name:    name,
		ordered: values,
		byValue: make(map[string]T, len(values)),
	}
	for _, v := range values {
		t.byValue[string(v)] = v
	}
	return t
}

func (t *enumTable[T]) parse(value string) (T, error) {
	if value == "" {
		return "", fmt.Errorf("%w: %s value cannot be empty", ErrUnknownEnumValue, t.name)
	}
	v, ok := t.byValue[value]
	if !ok {
		return "", fmt.Errorf("%w: %q is not a valid %s", ErrUnknownEnumValue, value, t.name)
	}
	return v, nil
}

func (t *enumTable[T]) values() []T {
	return copyList(t.ordered)
}
