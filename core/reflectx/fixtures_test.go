package reflectx

import (
	"errors"
	"reflect"
	"strings"
)

const (
	success = "success"
	failure = "failure"
)

var errRejected = errors.New("rejected")

type dataSet struct {
	calls int
}

func (d *dataSet) returnStringWithNoArgument() string {
	d.calls++
	return success
}

func (d *dataSet) returnStringWithArgument(arg string) string {
	if arg == "" {
		return failure
	}
	return success
}

func (d *dataSet) returnStringWithPointer(arg *string) string {
	if arg == nil || *arg == "" {
		return failure
	}
	return success
}

func (d *dataSet) returnStringWithArguments(arg1 string, arg2 int, arg3 bool) string {
	return success
}

func (d dataSet) returnIntegerWithNoArgument() int {
	return 1
}

func (d *dataSet) returnIntegerWithArgument(arg bool) int {
	if arg {
		return 1
	}
	return 0
}

func (d *dataSet) returnIntegerWithInt64(arg int64) int {
	return int(arg)
}

func (d *dataSet) returnBooleanWithArgument(arg int) bool {
	return arg == 1
}

func (d *dataSet) returnListWithArguments(arg1, arg2, arg3 string) []string {
	return []string{arg1, arg2, arg3}
}

func (d *dataSet) returnMapWithArguments(arg1, arg2, arg3 int) map[string]int {
	return map[string]int{"result1": arg1, "result2": arg2, "result3": arg3}
}

func (d *dataSet) returnJoined(sep string, parts ...string) string {
	return strings.Join(parts, sep)
}

func (d *dataSet) returnError(reject bool) (string, error) {
	if reject {
		return "", errRejected
	}
	return success, nil
}

func (d *dataSet) returnPair() (string, int) {
	return success, 1
}

func (d *dataSet) doNothing() {}

func (d *dataSet) panicWith(v any) {
	panic(v)
}

func (d *dataSet) returnCalls() int {
	return d.calls
}

// ReturnExported is discovered without a declaration.
func (d *dataSet) ReturnExported() string {
	return success
}

func staticReturnStringWithNoArgument() string {
	return success
}

func staticReturnStringWithArgument(arg string) string {
	if arg == "" {
		return failure
	}
	return success
}

func staticReturnIntegerWithArgument(arg bool) int {
	if arg {
		return 1
	}
	return 0
}

func staticReturnBooleanWithArguments(arg1 int, arg2 string, arg3 bool) bool {
	return true
}

func newDataSetClass() *Class {
	return MustClass[dataSet](
		WithMethod("returnStringWithNoArgument", (*dataSet).returnStringWithNoArgument),
		WithMethod("returnStringWithArgument", (*dataSet).returnStringWithArgument),
		WithMethod("returnStringWithArgument", (*dataSet).returnStringWithPointer),
		WithMethod("returnStringWithArguments", (*dataSet).returnStringWithArguments),
		WithMethod("returnIntegerWithNoArgument", dataSet.returnIntegerWithNoArgument),
		WithMethod("returnIntegerWithArgument", (*dataSet).returnIntegerWithArgument),
		WithMethod("returnIntegerWithArgument", (*dataSet).returnIntegerWithInt64),
		WithMethod("returnBooleanWithArgument", (*dataSet).returnBooleanWithArgument),
		WithMethod("returnListWithArguments", (*dataSet).returnListWithArguments),
		WithMethod("returnMapWithArguments", (*dataSet).returnMapWithArguments),
		WithMethod("returnJoined", (*dataSet).returnJoined),
		WithMethod("returnError", (*dataSet).returnError),
		WithMethod("returnPair", (*dataSet).returnPair),
		WithMethod("doNothing", (*dataSet).doNothing),
		WithMethod("panicWith", (*dataSet).panicWith),
		WithMethod("returnCalls", (*dataSet).returnCalls),
		WithStatic("staticReturnStringWithNoArgument", staticReturnStringWithNoArgument),
		WithStatic("staticReturnStringWithArgument", staticReturnStringWithArgument),
		WithStatic("returnIntegerWithArgumentStatic", staticReturnIntegerWithArgument),
		WithStatic("returnBooleanWithArguments", staticReturnBooleanWithArguments),
	)
}

type entity struct {
	testField string
	count     int
	ptr       *int
	tags      []string
	iface     any
	Exported  string
	embedded
}

type embedded struct {
	promoted string
}

type withConstructor struct {
	seed int
}

func newWithConstructor() *withConstructor {
	return &withConstructor{seed: 42}
}

func (w *withConstructor) returnSeed() int {
	return w.seed
}

func entityType() reflect.Type {
	return reflect.TypeOf(&entity{})
}

func counterType() reflect.Type {
	return reflect.TypeOf(counter(0))
}
