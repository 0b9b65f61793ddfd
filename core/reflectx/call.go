package reflectx

import (
	"fmt"
	"reflect"
	"runtime/debug"

	"github.com/anoideaopen/whitebox/core/parameter"
	"github.com/anoideaopen/whitebox/core/stringsx"
)

// Call invokes the member with the given receiver and argument values.
// receiver must be a *T of the member's class for instance members and is
// ignored for static ones.
//
// Each value must be assignable to the corresponding formal parameter. A nil
// value is accepted for pointer, interface, map, slice, func and chan
// parameters and passed as their zero value. Variadic members receive their
// last argument as a slice.
//
// The member's results are reduced the same way for every call:
//  1. A trailing error result, when non-nil, is returned as the error.
//  2. No other result gives nil, one gives that value, more give []any.
//
// A panic inside the member is recovered and returned as *PanicError.
func (m Method) Call(receiver reflect.Value, values []any) (result any, err error) {
	if len(values) != len(m.In) {
		return nil, fmt.Errorf(
			"%w: found %d arguments but expected %d: call %s",
			ErrInvalidArgumentValue,
			len(values),
			len(m.In),
			m,
		)
	}

	in := make([]reflect.Value, 0, len(values)+1)
	if !m.Static {
		r, err := m.receiverOf(receiver)
		if err != nil {
			return nil, err
		}
		in = append(in, r)
	}

	for i, v := range values {
		arg, err := argumentOf(v, m.In[i])
		if err != nil {
			return nil, fmt.Errorf("%w: call %s, argument %d", err, m, i)
		}
		in = append(in, arg)
	}

	// recover returns nil for panic(nil) under go 1.20 semantics.
	panicked := true
	defer func() {
		if r := recover(); r != nil || panicked {
			result, err = nil, &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()

	var out []reflect.Value
	if m.Variadic {
		out = m.fn.CallSlice(in)
	} else {
		out = m.fn.Call(in)
	}
	panicked = false

	if m.ReturnsError() {
		last := out[len(out)-1]
		if !last.IsNil() {
			return nil, last.Interface().(error) //nolint:forcetypeassert
		}
		out = out[:len(out)-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		results := make([]any, len(out))
		for i, res := range out {
			results[i] = res.Interface()
		}
		return results, nil
	}
}

func (m Method) receiverOf(instance reflect.Value) (reflect.Value, error) {
	if !instance.IsValid() || instance.Kind() != reflect.Pointer || instance.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %s needs a receiver", ErrNotAddressable, m)
	}

	if instance.Type() == m.receiver {
		return instance, nil
	}
	if instance.Type().Elem() == m.receiver {
		return instance.Elem(), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: receiver %s for %s", ErrInvalidArgumentValue, instance.Type(), m)
}

func argumentOf(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		if nillable(t.Kind()) {
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil for type '%s'", ErrInvalidArgumentValue, t)
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to type '%s'", ErrInvalidArgumentValue, rv.Type(), t)
	}

	return rv, nil
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// Invoker resolves and calls members of a Class using the types recorded in
// a parameter list.
type Invoker struct {
	class    *Class
	instance reflect.Value
	params   *parameter.List
	err      error
}

// NewInvoker returns an Invoker for class. instance is the receiver of
// instance members; when it is the zero Value a fresh default instance is
// built for every call. params is shared with the caller; nil means a new
// empty list.
func NewInvoker(class *Class, instance reflect.Value, params *parameter.List) *Invoker {
	if params == nil {
		params = parameter.NewList()
	}

	return &Invoker{
		class:    class,
		instance: instance,
		params:   params,
	}
}

// AddArgument appends an argument to the parameter list. The first failure,
// parameter.ErrInvalidArgumentType, is kept and returned as is by the next
// Invoke.
func (i *Invoker) AddArgument(t reflect.Type, v any) *Invoker {
	if err := i.params.Add(t, v); err != nil && i.err == nil {
		i.err = err
	}

	return i
}

// Bind sets the receiver used for instance members.
func (i *Invoker) Bind(instance reflect.Value) {
	i.instance = instance
}

// Reset empties the parameter list and forgets the recorded argument
// failure.
func (i *Invoker) Reset() {
	i.params.Reset()
	i.err = nil
}

// Parameters returns the parameter list the invoker reads.
func (i *Invoker) Parameters() *parameter.List {
	return i.params
}

// Resolve returns the member called name whose parameter types match the
// current parameter list exactly.
func (i *Invoker) Resolve(name string) (Method, error) {
	if stringsx.IsBlank(name) {
		return Method{}, ErrEmptyMethodName
	}

	var types []reflect.Type
	if !i.params.IsEmpty() {
		var err error
		if types, err = i.params.Types(); err != nil {
			return Method{}, i.fail(name, err)
		}
	}

	m, err := i.class.Lookup(name, types)
	if err != nil {
		return Method{}, i.fail(name, err)
	}

	return m, nil
}

// Invoke calls the member called name with the current parameter list.
// With static set, only a static member may be selected. The list is left
// untouched.
func (i *Invoker) Invoke(name string, static bool) (any, error) {
	if stringsx.IsBlank(name) {
		return nil, ErrEmptyMethodName
	}
	if i.err != nil {
		return nil, i.err
	}

	m, err := i.Resolve(name)
	if err != nil {
		return nil, err
	}

	return i.InvokeMethod(m, static)
}

// InvokeMethod calls m, as returned by Resolve, with the current parameter
// list.
func (i *Invoker) InvokeMethod(m Method, static bool) (any, error) {
	if static && !m.Static {
		return nil, i.fail(m.Name, fmt.Errorf("%w: %s", ErrNotStatic, m))
	}

	var (
		values []any
		err    error
	)
	if !i.params.IsEmpty() {
		if values, err = i.params.Values(); err != nil {
			return nil, i.fail(m.Name, err)
		}
	}

	var receiver reflect.Value
	if !m.Static {
		if receiver = i.instance; !receiver.IsValid() {
			if receiver, err = i.class.New(); err != nil {
				return nil, i.fail(m.Name, err)
			}
		}
	}

	result, err := m.Call(receiver, values)
	if err != nil {
		return nil, i.fail(m.Name, err)
	}

	return result, nil
}

func (i *Invoker) fail(name string, cause error) error {
	return NewInvocationError(i.class.name, name, i.params.String(), cause)
}
