package reflectx

import (
	"errors"
	"fmt"
)

// Error kinds. Together with parameter.ErrInvalidArgumentType and
// parameter.ErrNoParametersSet they form the whole set of failures a caller
// has to tell apart.
var (
	ErrEmptyMethodName      = errors.New("method name must not be empty")
	ErrReflectiveAccess     = errors.New("reflective access failed")
	ErrReflectiveInvocation = errors.New("reflective invocation failed")
)

// Causes wrapped by AccessError and InvocationError.
var (
	ErrMethodNotFound       = errors.New("method not found")
	ErrMethodAlreadyDefined = errors.New("method has already been defined")
	ErrFieldNotFound        = errors.New("field not found")
	ErrNotAddressable       = errors.New("instance is not a non-nil pointer to a struct")
	ErrNotStatic            = errors.New("method is not static")
	ErrInvalidArgumentValue = errors.New("invalid argument value")
	ErrInvalidClass         = errors.New("invalid class")
	ErrInvalidMember        = errors.New("invalid member")
	ErrConstructor          = errors.New("constructor failed")
	ErrResultType           = errors.New("unexpected result type")
)

// AccessError reports a failed field lookup or assignment.
type AccessError struct {
	external error
	class    string
	field    string
}

// NewAccessError wraps cause as a reflective access failure on class.field.
func NewAccessError(class, field string, cause error) error {
	return AccessError{external: cause, class: class, field: field}
}

func (e AccessError) Error() string {
	if e.external == nil {
		return fmt.Sprintf("%v: %s.%s", ErrReflectiveAccess, e.class, e.field)
	}

	return fmt.Sprintf("%v: %s.%s: %v", ErrReflectiveAccess, e.class, e.field, e.external)
}

// Is reports whether target is ErrReflectiveAccess.
func (e AccessError) Is(target error) bool {
	return target == ErrReflectiveAccess
}

// Unwrap returns the cause.
func (e AccessError) Unwrap() error {
	return e.external
}

// InvocationError reports a failed method lookup, receiver construction,
// argument binding or a failure of the invoked member itself.
type InvocationError struct {
	external error
	class    string
	method   string
	args     string
}

// NewInvocationError wraps cause as a reflective invocation failure of
// class.method called with args.
func NewInvocationError(class, method, args string, cause error) error {
	return InvocationError{external: cause, class: class, method: method, args: args}
}

func (e InvocationError) Error() string {
	if e.external == nil {
		return fmt.Sprintf("%v: %s.%s%s", ErrReflectiveInvocation, e.class, e.method, e.args)
	}

	return fmt.Sprintf("%v: %s.%s%s: %v", ErrReflectiveInvocation, e.class, e.method, e.args, e.external)
}

// Is reports whether target is ErrReflectiveInvocation.
func (e InvocationError) Is(target error) bool {
	return target == ErrReflectiveInvocation
}

// Unwrap returns the cause.
func (e InvocationError) Unwrap() error {
	return e.external
}

// PanicError carries a value recovered from a panicking member.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}
