package reflectx

import (
	"fmt"
	"reflect"
	"unsafe"
)

// SetFieldValue assigns value to the field called name declared directly on
// the struct instance points to. Unexported fields are written through a
// view of the field memory built for this call only.
//
// A nil value stores the zero value of a pointer, interface, map, slice,
// func or chan field and fails for any other kind.
func SetFieldValue(instance any, name string, value any) error {
	field, err := fieldOf(instance, name)
	if err != nil {
		return NewAccessError(typeName(instance), name, err)
	}

	if value == nil {
		if !nillable(field.Kind()) {
			return NewAccessError(
				typeName(instance),
				name,
				fmt.Errorf("%w: nil for field of type '%s'", ErrInvalidArgumentValue, field.Type()),
			)
		}
		field.Set(reflect.Zero(field.Type()))
		return nil
	}

	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(field.Type()) {
		return NewAccessError(
			typeName(instance),
			name,
			fmt.Errorf("%w: %s is not assignable to field of type '%s'", ErrInvalidArgumentValue, v.Type(), field.Type()),
		)
	}

	field.Set(v)

	return nil
}

// GetFieldValue returns the value of the field called name declared directly
// on the struct instance points to. A nil pointer, map, slice, func or chan
// field keeps its type.
func GetFieldValue(instance any, name string) (any, error) {
	field, err := fieldOf(instance, name)
	if err != nil {
		return nil, NewAccessError(typeName(instance), name, err)
	}

	return field.Interface(), nil
}

// Fields returns the names of the fields declared directly on the struct
// type t, in declaration order.
func Fields(t reflect.Type) []string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	names := make([]string, t.NumField())
	for i := range names {
		names[i] = t.Field(i).Name
	}

	return names
}

func fieldOf(instance any, name string) (reflect.Value, error) {
	v := reflect.ValueOf(instance)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, ErrNotAddressable
	}

	s := v.Elem()
	for i := 0; i < s.NumField(); i++ {
		if s.Type().Field(i).Name != name {
			continue
		}

		f := s.Field(i)
		return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem(), nil //nolint:gosec
	}

	return reflect.Value{}, fmt.Errorf(
		"%w: %s has no field %s, declared: %v",
		ErrFieldNotFound,
		s.Type(),
		name,
		Fields(s.Type()),
	)
}

func typeName(instance any) string {
	t := reflect.TypeOf(instance)
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.String()
}
