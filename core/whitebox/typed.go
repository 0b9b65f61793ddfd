package whitebox

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/whitebox/core/parameter"
	"github.com/anoideaopen/whitebox/core/reflectx"
)

// Arg appends v declared with its static type T.
func Arg[T any](s *Session, v T) *Session {
	return s.AddParameter(parameter.Of(v))
}

// InvokeAs is Invoke with the result converted to R. A nil result is the
// zero R.
func InvokeAs[R any](s *Session, name string) (R, error) {
	v, err := s.Invoke(name)
	if err != nil {
		var zero R
		return zero, err
	}

	r, err := resultAs[R](v)
	if err != nil {
		return r, reflectx.NewInvocationError(s.class.Name(), name, s.params.String(), err)
	}

	return r, nil
}

// InvokeStaticAs is InvokeStatic with the result converted to R.
func InvokeStaticAs[R any](s *Session, name string) (R, error) {
	v, err := s.InvokeStatic(name)
	if err != nil {
		var zero R
		return zero, err
	}

	r, err := resultAs[R](v)
	if err != nil {
		return r, reflectx.NewInvocationError(s.class.Name(), name, s.params.String(), err)
	}

	return r, nil
}

// FieldAs is GetFieldValue with the value converted to R.
func FieldAs[R any](s *Session, name string) (R, error) {
	v, err := s.GetFieldValue(name)
	if err != nil {
		var zero R
		return zero, err
	}

	r, err := resultAs[R](v)
	if err != nil {
		return r, reflectx.NewAccessError(s.class.Name(), name, err)
	}

	return r, nil
}

func resultAs[R any](v any) (R, error) {
	var zero R
	if v == nil {
		return zero, nil
	}

	r, ok := v.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %T is not %s", reflectx.ErrResultType, v, reflect.TypeOf((*R)(nil)).Elem())
	}

	return r, nil
}
