/*
Package whitebox calls unexported methods and reads or writes unexported
fields of a type from its tests.

A class is declared once, usually in an export_test.go file of the package
under test so that its method expressions are in scope:

	var DataSetClass = reflectx.MustClass[dataSet](
		reflectx.WithMethod("returnStringWithArgument", (*dataSet).returnStringWithArgument),
		reflectx.WithStatic("staticReturnString", staticReturnString),
	)

A test then opens a session on it, adds typed arguments and invokes members
by name:

	s := whitebox.From(DataSetClass)
	out, err := whitebox.Arg(s, "failure").Invoke("returnStringWithArgument")

Members are selected by name and by the exact sequence of argument types,
so an int argument never selects an int64 overload. The parameter list is
kept between calls; use Reset to start over.

Failures are matched with errors.Is against ErrEmptyMethodName,
ErrInvalidArgumentType, ErrNoParametersSet, ErrReflectiveAccess and
ErrReflectiveInvocation.
*/
package whitebox
