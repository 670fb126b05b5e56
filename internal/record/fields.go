// Package record provides named field access for concrete record types.
// Names are resolved to accessor functions once, at construction time, so a
// misspelled field name fails before any record is processed.
package record

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownField is returned when a field name has no accessor.
var ErrUnknownField = errors.New("unknown field")

// TextFields maps field names to string getters on records of type R.
type TextFields[R any] map[string]func(*R) string

// IntFields maps field names to optional-integer setters on records of type R.
type IntFields[R any] map[string]func(*R, *int)

// Getter resolves the named text field.
func (f TextFields[R]) Getter(name string) (func(*R) string, error) {
	get, ok := f[name]
	if !ok {
		return nil, fmt.Errorf("%w %q on %T (known: %v)", ErrUnknownField, name, *new(R), names(f))
	}
	return get, nil
}

// Setter resolves the named optional-integer field.
func (f IntFields[R]) Setter(name string) (func(*R, *int), error) {
	set, ok := f[name]
	if !ok {
		return nil, fmt.Errorf("%w %q on %T (known: %v)", ErrUnknownField, name, *new(R), names(f))
	}
	return set, nil
}

// Names returns the field names in sorted order.
func (f TextFields[R]) Names() []string { return names(f) }

// Names returns the field names in sorted order.
func (f IntFields[R]) Names() []string { return names(f) }

func names[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
