// Package dataset holds types whose whole surface is unexported. Their
// tests reach it through whitebox classes declared in export_test.go.
package dataset

const (
	success = "success"
	failure = "failure"
)

type dataSet struct{}

func (dataSet) returnStringWithNoArgument() string {
	return success
}

func (dataSet) returnStringWithArgument(arg string) string {
	if arg == "" {
		return failure
	}
	return success
}

func (dataSet) returnStringWithArguments(_ string, _ int, _ bool) string {
	return success
}

func (dataSet) returnIntegerWithNoArgument() int {
	return 1
}

func (dataSet) returnIntegerWithArgument(arg bool) int {
	if arg {
		return 1
	}
	return 0
}

func (dataSet) returnIntegerWithArguments(arg int, _ string, _ bool) int {
	return arg
}

func (dataSet) returnBooleanWithNoArgument() bool {
	return true
}

func (dataSet) returnBooleanWithArgument(arg int) bool {
	return arg == 1
}

func (dataSet) returnBooleanWithArguments(_ int, _ string, _ bool) bool {
	return true
}

func (dataSet) returnListWithArguments(arg1, arg2, arg3 string) []string {
	return []string{arg1, arg2, arg3}
}

func (dataSet) returnMapWithArguments(arg1, arg2, arg3 int) map[string]int {
	return map[string]int{
		"result1": arg1,
		"result2": arg2,
		"result3": arg3,
	}
}

// staticDataSet only groups package level functions.
type staticDataSet struct{}

func staticReturnStringWithNoArgument() string {
	return success
}

func staticReturnStringWithArgument(arg string) string {
	if arg == "" {
		return failure
	}
	return success
}

func staticReturnStringWithArguments(_ string, _ int, _ bool) string {
	return success
}

func staticReturnIntegerWithNoArgument() int {
	return 1
}

func staticReturnIntegerWithArgument(arg bool) int {
	if arg {
		return 1
	}
	return 0
}

func staticReturnBooleanWithArgument(arg int) bool {
	return arg == 1
}

type entity struct {
	testField string
	count     int
	labels    map[string]string
}

// guarded can only be built by newGuarded.
type guarded struct {
	token string
}

func newGuarded() *guarded {
	return &guarded{token: "issued"}
}

func (g *guarded) returnToken() string {
	return g.token
}
