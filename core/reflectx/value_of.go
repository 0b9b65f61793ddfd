package reflectx

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// ParseValue converts the encoded form s of an argument into a value of
// type t. Tests use it to state arguments of composite types as literals.
//
// The function follows these steps:
//  1. A string or *string target takes s as is.
//  2. A BytesDecoder target decodes itself.
//  3. Valid JSON is unmarshaled, with protojson for proto.Message targets.
//     Numbers, booleans and null are valid JSON too.
//  4. An encoding.TextUnmarshaler target decodes valid UTF-8 text.
//  5. A proto.Message target decodes the binary wire format.
//  6. An encoding.BinaryUnmarshaler target decodes s.
//
// When nothing applies or the applicable decoder fails, a ValueError
// matching ErrInvalidArgumentValue is returned.
func ParseValue(s string, t reflect.Type) (any, error) {
	if t == nil {
		return nil, NewValueError(s, nil, nil)
	}

	argRaw := []byte(s)
	argPointer := t.Kind() == reflect.Pointer

	var (
		argValue reflect.Value
		outValue reflect.Value
	)
	if argPointer {
		argValue = reflect.New(t.Elem())
		outValue = argValue
	} else {
		argValue = reflect.New(t)
		outValue = argValue.Elem()
	}

	switch {
	case t.Kind() == reflect.String:
		outValue.SetString(s)
		return outValue.Interface(), nil
	case argPointer && t.Elem().Kind() == reflect.String:
		argValue.Elem().SetString(s)
		return outValue.Interface(), nil
	}

	argInterface := argValue.Interface()

	if decoder, ok := argInterface.(BytesDecoder); ok {
		if err := decoder.DecodeFromBytes(argRaw); err != nil {
			return nil, NewValueError(s, t, err)
		}
		return outValue.Interface(), nil
	}

	if json.Valid(argRaw) {
		var err error
		if message, ok := argInterface.(proto.Message); ok {
			err = protojson.Unmarshal(argRaw, message)
		} else {
			err = json.Unmarshal(argRaw, argInterface)
		}
		if err == nil {
			return outValue.Interface(), nil
		}
	}

	if unmarshaler, ok := argInterface.(encoding.TextUnmarshaler); ok && utf8.Valid(argRaw) {
		if err := unmarshaler.UnmarshalText(argRaw); err == nil {
			return outValue.Interface(), nil
		}
	}

	if message, ok := argInterface.(proto.Message); ok {
		if err := proto.Unmarshal(argRaw, message); err == nil {
			return outValue.Interface(), nil
		}
	}

	if unmarshaler, ok := argInterface.(encoding.BinaryUnmarshaler); ok {
		if err := unmarshaler.UnmarshalBinary(argRaw); err != nil {
			return nil, NewValueError(s, t, err)
		}
		return outValue.Interface(), nil
	}

	return nil, NewValueError(s, t, nil)
}

// ValueError wraps the decoder failure with the argument and the target type.
type ValueError struct {
	external error
	internal error
	arg, t   string
}

// NewValueError constructs an error for an argument that cannot be decoded
// into t.
func NewValueError(arg string, t reflect.Type, errOrNil error) error {
	typeName := "<nil>"
	if t != nil {
		typeName = t.String()
	}

	return ValueError{
		external: errOrNil,
		internal: ErrInvalidArgumentValue,
		arg:      arg,
		t:        typeName,
	}
}

func (e ValueError) Error() string {
	if e.external == nil {
		return fmt.Sprintf("%v: '%s': for type '%s'", e.internal, e.arg, e.t)
	}

	return fmt.Sprintf("%v: '%s': for type '%s': '%v'", e.internal, e.arg, e.t, e.external)
}

// Is checks if the target error matches the internal error.
func (e ValueError) Is(target error) bool {
	return e.internal == target
}

// Unwrap returns the external error, if any.
func (e ValueError) Unwrap() error {
	return e.external
}
