package reflectx

import (
	"fmt"
	"reflect"
	"runtime/debug"

	"github.com/anoideaopen/whitebox/core/stringsx"
)

// Class describes the members of a type under test that the harness may
// reach. Exported methods are discovered by reflection. Unexported methods
// and package-level functions cannot be discovered, so the package under
// test declares them, usually from an export_test.go file:
//
//	var DataSetClass = reflectx.MustClass[dataSet](
//	    reflectx.WithMethod("returnStringWithArgument", (*dataSet).returnStringWithArgument),
//	    reflectx.WithStatic("returnIntegerWithArgument", returnIntegerWithArgument),
//	)
//
// Members are keyed by name. One name may hold several members as long as
// their parameter type sequences differ.
type Class struct {
	name    string
	typ     reflect.Type
	ctor    reflect.Value
	members map[string][]Method
}

// ClassOption configures a Class.
type ClassOption func(c *Class) error

// NewClass builds the Class of T. T must be a named non-pointer,
// non-interface type.
func NewClass[T any](opts ...ClassOption) (*Class, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return nil, fmt.Errorf("%w: %s: pointer and interface types have no declared members", ErrInvalidClass, t)
	}

	c := &Class{
		name:    t.String(),
		typ:     t,
		members: make(map[string][]Method),
	}

	for _, m := range exportedMethods(reflect.PointerTo(t)) {
		if err := c.declare(newMethod(m.Name, m.Func, reflect.PointerTo(t))); err != nil {
			return nil, err
		}
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("class %s: %w", c.name, err)
		}
	}

	return c, nil
}

// MustClass is like NewClass but panics on error.
func MustClass[T any](opts ...ClassOption) *Class {
	c, err := NewClass[T](opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// WithName overrides the name used in logs and errors.
func WithName(name string) ClassOption {
	return func(c *Class) error {
		if stringsx.IsBlank(name) {
			return fmt.Errorf("%w: empty class name", ErrInvalidClass)
		}
		c.name = name
		return nil
	}
}

// WithConstructor sets the function producing default instances. Accepted
// shapes are func() *T, func() T, func() (*T, error) and func() (T, error).
// Without a constructor the default instance is the zero value of T.
func WithConstructor(fn any) ClassOption {
	return func(c *Class) error {
		fv := reflect.ValueOf(fn)
		if fv.Kind() != reflect.Func || fv.IsNil() {
			return fmt.Errorf("%w: constructor is %T, not a function", ErrInvalidMember, fn)
		}

		ft := fv.Type()
		ok := ft.NumIn() == 0 && (ft.NumOut() == 1 || ft.NumOut() == 2 && ft.Out(1) == errorType)
		if ok {
			out := ft.Out(0)
			ok = out == c.typ || out == reflect.PointerTo(c.typ)
		}
		if !ok {
			return fmt.Errorf("%w: constructor %s does not produce %s", ErrInvalidMember, ft, c.typ)
		}

		c.ctor = fv
		return nil
	}
}

// WithMethod declares an instance member from a method expression such as
// (*T).name or T.name. The first parameter of fn is the receiver.
func WithMethod(name string, fn any) ClassOption {
	return func(c *Class) error {
		fv, err := funcOf(name, fn)
		if err != nil {
			return err
		}

		ft := fv.Type()
		if ft.NumIn() == 0 || (ft.In(0) != c.typ && ft.In(0) != reflect.PointerTo(c.typ)) {
			return fmt.Errorf("%w: %s: %s has no %s receiver", ErrInvalidMember, name, ft, c.typ)
		}

		return c.declare(newMethod(name, fv, ft.In(0)))
	}
}

// WithStatic declares a package-level function as a static member.
func WithStatic(name string, fn any) ClassOption {
	return func(c *Class) error {
		fv, err := funcOf(name, fn)
		if err != nil {
			return err
		}

		return c.declare(newMethod(name, fv, nil))
	}
}

func funcOf(name string, fn any) (reflect.Value, error) {
	if stringsx.IsBlank(name) {
		return reflect.Value{}, ErrEmptyMethodName
	}

	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %s is %T, not a function", ErrInvalidMember, name, fn)
	}

	return fv, nil
}

func (c *Class) declare(m Method) error {
	for _, declared := range c.members[m.Name] {
		if sameTypes(declared.In, m.In) {
			return fmt.Errorf("%w: %s", ErrMethodAlreadyDefined, m)
		}
	}

	c.members[m.Name] = append(c.members[m.Name], m)

	return nil
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Type returns the type the class describes.
func (c *Class) Type() reflect.Type {
	return c.typ
}

// Overloads returns the members declared under name.
func (c *Class) Overloads(name string) []Method {
	return append([]Method(nil), c.members[name]...)
}

// Lookup returns the member called name whose parameter types are exactly
// types, in order. Assignability is not considered: a member taking any is
// not selected by a string tag. An empty types selects the zero-argument
// member.
func (c *Class) Lookup(name string, types []reflect.Type) (Method, error) {
	if stringsx.IsBlank(name) {
		return Method{}, ErrEmptyMethodName
	}

	overloads := c.Overloads(name)
	if len(overloads) == 0 {
		return Method{}, fmt.Errorf("%w: %s has no member %s", ErrMethodNotFound, c.name, name)
	}

	for _, m := range overloads {
		if sameTypes(m.In, types) {
			return m, nil
		}
	}

	return Method{}, fmt.Errorf(
		"%w: %s has no member %s%s, declared: %v",
		ErrMethodNotFound,
		c.name,
		name,
		signature(types),
		overloads,
	)
}

// New returns a pointer to a default instance of the class.
func (c *Class) New() (instance reflect.Value, err error) {
	if !c.ctor.IsValid() {
		return reflect.New(c.typ), nil
	}

	panicked := true
	defer func() {
		if r := recover(); r != nil || panicked {
			instance = reflect.Value{}
			err = fmt.Errorf("%w: %s: %w", ErrConstructor, c.name, &PanicError{Value: r, Stack: debug.Stack()})
		}
	}()

	out := c.ctor.Call(nil)
	panicked = false
	if len(out) == 2 && !out[1].IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %s: %w", ErrConstructor, c.name, out[1].Interface().(error)) //nolint:forcetypeassert
	}

	v := out[0]
	if v.Kind() == reflect.Pointer && v.Type().Elem() == c.typ {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %s: constructor returned nil", ErrConstructor, c.name)
		}
		return v, nil
	}

	instance = reflect.New(c.typ)
	instance.Elem().Set(v)

	return instance, nil
}

// Bind checks that instance is a non-nil *T of the class and returns it.
func (c *Class) Bind(instance any) (reflect.Value, error) {
	v := reflect.ValueOf(instance)
	if v.Kind() != reflect.Pointer || v.Type().Elem() != c.typ || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %T is not a non-nil *%s", ErrInvalidClass, instance, c.typ)
	}

	return v, nil
}
