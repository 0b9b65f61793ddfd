package whitebox

import (
	"context"
	"errors"
	"reflect"

	"github.com/anoideaopen/whitebox/core/logger"
	"github.com/anoideaopen/whitebox/core/parameter"
	"github.com/anoideaopen/whitebox/core/reflectx"
	"github.com/anoideaopen/whitebox/core/stringsx"
	"github.com/anoideaopen/whitebox/core/telemetry"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Session binds one class, and optionally one instance of it, to a
// parameter list. It is a scratch object for a single test: not safe for
// concurrent use and never reset implicitly.
type Session struct {
	id       string
	class    *reflectx.Class
	instance reflect.Value
	params   *parameter.List
	invoker  *reflectx.Invoker

	log     logrus.FieldLogger
	tracing *telemetry.TracingHandler
	ctx     context.Context

	argErr error // first argument failure, cleared by Reset
	err    error // first field failure, cleared by Reset
}

// From returns a Session on class. The instance the session works on is
// built with the class constructor the first time a field or an instance
// member needs it, then reused for the rest of the session.
func From(class *reflectx.Class, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		class:  class,
		params: parameter.NewList(),
	}
	s.invoker = reflectx.NewInvoker(class, reflect.Value{}, s.params)

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Logger()
	}
	s.log = s.log.WithFields(logrus.Fields{
		"session": s.id,
		"class":   class.Name(),
	})

	if s.tracing == nil {
		s.tracing = telemetry.NewTracingHandler()
	}
	if s.ctx == nil {
		s.ctx = s.tracing.ContextFromEnv(context.Background())
	}

	return s
}

// FromInstance returns a Session on class working on instance, which must
// be a non-nil *T of the class.
func FromInstance(class *reflectx.Class, instance any, opts ...Option) (*Session, error) {
	v, err := class.Bind(instance)
	if err != nil {
		return nil, err
	}

	s := From(class, opts...)
	s.bind(v)

	return s, nil
}

// ID returns the session id used in logs and spans.
func (s *Session) ID() string {
	return s.id
}

// Class returns the bound class.
func (s *Session) Class() *reflectx.Class {
	return s.class
}

// Parameters returns the parameter list.
func (s *Session) Parameters() *parameter.List {
	return s.params
}

// Instance returns the instance the session works on, building it if
// needed.
func (s *Session) Instance() (any, error) {
	v, err := s.receiver()
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

// Err returns the first failure recorded by a chained call.
func (s *Session) Err() error {
	if s.argErr != nil {
		return s.argErr
	}

	return s.err
}

// AddArgument appends an argument declared with type t. A nil t is recorded
// and returned as ErrInvalidArgumentType by the next Invoke.
func (s *Session) AddArgument(t reflect.Type, v any) *Session {
	if err := s.params.Add(t, v); err != nil {
		s.recordArgument(err)
	}

	return s
}

// AddParameter appends already built parameters.
func (s *Session) AddParameter(ps ...parameter.Parameter) *Session {
	if err := s.params.Append(ps...); err != nil {
		s.recordArgument(err)
	}

	return s
}

// AddEncodedArgument decodes encoded into type t, as described by
// reflectx.ParseValue, and appends the result declared with type t.
func (s *Session) AddEncodedArgument(t reflect.Type, encoded string) *Session {
	if t == nil {
		s.recordArgument(ErrInvalidArgumentType)
		return s
	}

	v, err := reflectx.ParseValue(encoded, t)
	if err != nil {
		s.recordArgument(err)
		return s
	}

	return s.AddArgument(t, v)
}

// Reset empties the parameter list and forgets recorded failures.
func (s *Session) Reset() *Session {
	s.invoker.Reset()
	s.argErr = nil
	s.err = nil

	return s
}

// SetFieldValue assigns value to the field called name. A failure only
// affects this call; the first one is recorded, see Err.
func (s *Session) SetFieldValue(name string, value any) *Session {
	_, span := s.startSpan(telemetry.OperationSetField, name)

	err := s.setFieldValue(name, value)
	s.log.WithField("field", name).WithError(err).Debug("set field")
	telemetry.EndSpan(span, err)

	if err != nil && s.err == nil {
		s.err = err
	}

	return s
}

func (s *Session) setFieldValue(name string, value any) error {
	v, err := s.receiver()
	if err != nil {
		return reflectx.NewAccessError(s.class.Name(), name, err)
	}

	return reflectx.SetFieldValue(v.Interface(), name, value)
}

// GetFieldValue returns the value of the field called name.
func (s *Session) GetFieldValue(name string) (value any, err error) {
	_, span := s.startSpan(telemetry.OperationGetField, name)
	defer func() {
		s.log.WithField("field", name).WithError(err).Debug("get field")
		telemetry.EndSpan(span, err)
	}()

	v, err := s.receiver()
	if err != nil {
		return nil, reflectx.NewAccessError(s.class.Name(), name, err)
	}

	return reflectx.GetFieldValue(v.Interface(), name)
}

// Invoke calls the member called name whose parameter types are exactly the
// types added so far. A static member is called without a receiver.
func (s *Session) Invoke(name string) (any, error) {
	return s.invoke(telemetry.OperationInvoke, name, false)
}

// InvokeStatic is like Invoke but only selects a static member.
func (s *Session) InvokeStatic(name string) (any, error) {
	return s.invoke(telemetry.OperationInvokeStatic, name, true)
}

func (s *Session) invoke(op telemetry.Operation, name string, static bool) (result any, err error) {
	if stringsx.IsBlank(name) {
		return nil, ErrEmptyMethodName
	}

	_, span := s.startSpan(op, name,
		telemetry.ArgumentsAttr(s.params.String()),
		telemetry.StaticAttr(static),
	)
	defer func() {
		entry := s.log.WithFields(logrus.Fields{
			"method":    name,
			"static":    static,
			"arguments": s.params.String(),
		})
		entry.WithError(err).Debug(op.String())
		telemetry.EndSpan(span, err)
	}()

	if err = s.argumentError(name); err != nil {
		return nil, err
	}

	m, err := s.invoker.Resolve(name)
	if err != nil {
		return nil, err
	}
	if !m.Static && !static {
		if _, err = s.receiver(); err != nil {
			return nil, reflectx.NewInvocationError(s.class.Name(), name, s.params.String(), err)
		}
	}

	return s.invoker.InvokeMethod(m, static)
}

func (s *Session) receiver() (reflect.Value, error) {
	if s.instance.IsValid() {
		return s.instance, nil
	}

	v, err := s.class.New()
	if err != nil {
		return reflect.Value{}, err
	}
	s.bind(v)

	return v, nil
}

func (s *Session) bind(v reflect.Value) {
	s.instance = v
	s.invoker.Bind(v)
}

func (s *Session) recordArgument(err error) {
	if s.argErr == nil {
		s.argErr = err
	}
}

// argumentError returns the recorded argument failure. A missing type tag
// keeps its own kind, a value that failed to decode is an invocation
// failure of name.
func (s *Session) argumentError(name string) error {
	if s.argErr == nil || errors.Is(s.argErr, ErrInvalidArgumentType) {
		return s.argErr
	}

	return reflectx.NewInvocationError(s.class.Name(), name, s.params.String(), s.argErr)
}

func (s *Session) startSpan(op telemetry.Operation, member string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracing.StartNewSpan(s.ctx, "whitebox."+op.String(), trace.WithAttributes(append([]attribute.KeyValue{
		telemetry.SessionAttr(s.id),
		telemetry.ClassAttr(s.class.Name()),
		telemetry.MemberAttr(member),
		telemetry.OperationAttr(op),
	}, attrs...)...))
}
