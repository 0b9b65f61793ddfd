package telemetry

import "go.opentelemetry.io/otel/attribute"

// Operation is the kind of reflective operation a span covers.
type Operation int

func (o Operation) String() string {
	switch o {
	case OperationInvoke:
		return "invoke"
	case OperationInvokeStatic:
		return "invoke_static"
	case OperationGetField:
		return "get_field"
	case OperationSetField:
		return "set_field"
	case OperationUnknown:
		fallthrough
	default:
		return "unknown"
	}
}

// Operations covered by spans.
const (
	OperationUnknown Operation = iota
	OperationInvoke
	OperationInvokeStatic
	OperationGetField
	OperationSetField
)

// OperationAttr tags a span with the operation kind.
func OperationAttr(o Operation) attribute.KeyValue {
	return attribute.String("whitebox.operation", o.String())
}

// ClassAttr tags a span with the class name.
func ClassAttr(name string) attribute.KeyValue {
	return attribute.String("whitebox.class", name)
}

// MemberAttr tags a span with the field or method name.
func MemberAttr(name string) attribute.KeyValue {
	return attribute.String("whitebox.member", name)
}

// ArgumentsAttr tags a span with the rendered parameter list.
func ArgumentsAttr(args string) attribute.KeyValue {
	return attribute.String("whitebox.arguments", args)
}

// SessionAttr tags a span with the session id.
func SessionAttr(id string) attribute.KeyValue {
	return attribute.String("whitebox.session", id)
}

// StaticAttr tags a span with whether a static call was requested.
func StaticAttr(static bool) attribute.KeyValue {
	return attribute.Bool("whitebox.static", static)
}
