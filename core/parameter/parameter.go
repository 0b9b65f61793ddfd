// Package parameter records type-tagged arguments for reflective calls.
//
// Every argument carries the exact type it is declared with, independent of
// the dynamic type of its value. The tag is what selects a member during
// resolution, so a caller who wants a method taking *int must add the
// argument with the *int tag even when the value is nil.
package parameter

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Error types.
var (
	ErrInvalidArgumentType = errors.New("invalid argument type")
	ErrNoParametersSet     = errors.New("no parameter is set, parameter is required")
)

// Parameter is an immutable pair of a declared type and a value.
type Parameter struct {
	typ   reflect.Type
	value any
}

// New returns a Parameter tagged with t. The value may be nil.
func New(t reflect.Type, v any) (Parameter, error) {
	if t == nil {
		return Parameter{}, ErrInvalidArgumentType
	}

	return Parameter{typ: t, value: v}, nil
}

// Of returns a Parameter tagged with the static type T.
func Of[T any](v T) Parameter {
	return Parameter{typ: reflect.TypeOf((*T)(nil)).Elem(), value: v}
}

// Type returns the declared type.
func (p Parameter) Type() reflect.Type {
	return p.typ
}

// Value returns the value.
func (p Parameter) Value() any {
	return p.value
}

func (p Parameter) String() string {
	if p.typ == nil {
		return "<invalid>"
	}
	if p.value == nil {
		return p.typ.String() + "=<nil>"
	}
	return fmt.Sprintf("%s=%#v", p.typ, p.value)
}

// List is an ordered sequence of parameters. The order is the positional
// argument order of the call. A List is not safe for concurrent use.
type List struct {
	parameters []Parameter
}

// NewList returns an empty List.
func NewList() *List {
	return &List{parameters: make([]Parameter, 0)}
}

// Add appends an argument with the declared type t and value v.
func (l *List) Add(t reflect.Type, v any) error {
	p, err := New(t, v)
	if err != nil {
		return fmt.Errorf("%w: value %#v", err, v)
	}

	l.parameters = append(l.parameters, p)

	return nil
}

// Append appends already built parameters.
func (l *List) Append(ps ...Parameter) error {
	for i, p := range ps {
		if p.typ == nil {
			return fmt.Errorf("%w: parameter %d", ErrInvalidArgumentType, i)
		}
	}

	l.parameters = append(l.parameters, ps...)

	return nil
}

// Types returns the declared types in insertion order.
// It fails with ErrNoParametersSet when the list is empty.
func (l *List) Types() ([]reflect.Type, error) {
	if l.IsEmpty() {
		return nil, ErrNoParametersSet
	}

	types := make([]reflect.Type, len(l.parameters))
	for i, p := range l.parameters {
		types[i] = p.typ
	}

	return types, nil
}

// Values returns the values in insertion order.
// It fails with ErrNoParametersSet when the list is empty.
func (l *List) Values() ([]any, error) {
	if l.IsEmpty() {
		return nil, ErrNoParametersSet
	}

	values := make([]any, len(l.parameters))
	for i, p := range l.parameters {
		values[i] = p.value
	}

	return values, nil
}

// IsEmpty reports whether no parameter has been added.
func (l *List) IsEmpty() bool {
	return len(l.parameters) == 0
}

// Len returns the number of parameters.
func (l *List) Len() int {
	return len(l.parameters)
}

// Reset removes all parameters.
func (l *List) Reset() {
	l.parameters = l.parameters[:0]
}

func (l *List) String() string {
	parts := make([]string, len(l.parameters))
	for i, p := range l.parameters {
		parts[i] = p.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
