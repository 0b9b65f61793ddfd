package reflectx

import (
	"reflect"
	"sort"
	"strings"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Method is one declared member of a Class.
type Method struct {
	Name     string
	Static   bool
	Variadic bool
	In       []reflect.Type // formal parameters, receiver excluded
	Out      []reflect.Type

	fn       reflect.Value
	receiver reflect.Type
}

func newMethod(name string, fn reflect.Value, receiver reflect.Type) Method {
	ft := fn.Type()

	first := 0
	if receiver != nil {
		first = 1
	}

	in := make([]reflect.Type, 0, ft.NumIn()-first)
	for i := first; i < ft.NumIn(); i++ {
		in = append(in, ft.In(i))
	}

	out := make([]reflect.Type, ft.NumOut())
	for i := range out {
		out[i] = ft.Out(i)
	}

	return Method{
		Name:     name,
		Static:   receiver == nil,
		Variadic: ft.IsVariadic(),
		In:       in,
		Out:      out,
		fn:       fn,
		receiver: receiver,
	}
}

// ReturnsError reports whether the last result of the member is an error.
func (m Method) ReturnsError() bool {
	return len(m.Out) > 0 && m.Out[len(m.Out)-1] == errorType
}

func (m Method) String() string {
	var sb strings.Builder
	if m.Static {
		sb.WriteString("static ")
	}
	sb.WriteString(m.Name)
	sb.WriteString(signature(m.In))

	switch len(m.Out) {
	case 0:
	case 1:
		sb.WriteString(" " + m.Out[0].String())
	default:
		sb.WriteString(" " + signature(m.Out))
	}

	return sb.String()
}

// Methods returns the sorted names of all members of the class.
func (c *Class) Methods() []string {
	names := make([]string, 0, len(c.members))
	for name := range c.members {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// exportedMethods returns the exported methods of t. Unexported methods are
// never part of a method set seen through reflection.
func exportedMethods(t reflect.Type) []reflect.Method {
	methods := make([]reflect.Method, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		methods = append(methods, t.Method(i))
	}

	return methods
}

func sameTypes(a, b []reflect.Type) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func signature(types []reflect.Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		if t == nil {
			parts[i] = "<nil>"
			continue
		}
		parts[i] = t.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
