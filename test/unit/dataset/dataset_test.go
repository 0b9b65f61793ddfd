package dataset_test

import (
	"reflect"
	"testing"

	"github.com/anoideaopen/whitebox/core/reflectx"
	"github.com/anoideaopen/whitebox/core/whitebox"
	"github.com/anoideaopen/whitebox/test/unit/dataset"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

var (
	stringType = reflect.TypeOf("")
	intType    = reflect.TypeOf(0)
	boolType   = reflect.TypeOf(false)
)

type argument struct {
	t reflect.Type
	v any
}

func from(class *reflectx.Class) *whitebox.Session {
	log, _ := logtest.NewNullLogger()
	return whitebox.From(class, whitebox.WithLogger(log))
}

func TestInvokeMethod(t *testing.T) {
	for _, tc := range []struct {
		name     string
		method   string
		args     []argument
		expected any
	}{
		{"string no argument", "returnStringWithNoArgument", nil, "success"},
		{"string success", "returnStringWithArgument", []argument{{stringType, "test"}}, "success"},
		{"string failure", "returnStringWithArgument", []argument{{stringType, ""}}, "failure"},
		{"string arguments", "returnStringWithArguments", []argument{{stringType, ""}, {intType, 0}, {boolType, true}}, "success"},
		{"integer no argument", "returnIntegerWithNoArgument", nil, 1},
		{"integer true", "returnIntegerWithArgument", []argument{{boolType, true}}, 1},
		{"integer false", "returnIntegerWithArgument", []argument{{boolType, false}}, 0},
		{"integer arguments", "returnIntegerWithArguments", []argument{{intType, 1}, {stringType, "test"}, {boolType, false}}, 1},
		{"boolean no argument", "returnBooleanWithNoArgument", nil, true},
		{"boolean true", "returnBooleanWithArgument", []argument{{intType, 1}}, true},
		{"boolean false", "returnBooleanWithArgument", []argument{{intType, 0}}, false},
		{"boolean arguments", "returnBooleanWithArguments", []argument{{intType, 0}, {stringType, "test"}, {boolType, true}}, true},
		{
			"list arguments",
			"returnListWithArguments",
			[]argument{{stringType, "test6"}, {stringType, "test1"}, {stringType, "test100"}},
			[]string{"test6", "test1", "test100"},
		},
		{
			"map arguments",
			"returnMapWithArguments",
			[]argument{{intType, 100}, {intType, 1000}, {intType, 1}},
			map[string]int{"result1": 100, "result2": 1000, "result3": 1},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := from(dataset.DataSet)
			for _, arg := range tc.args {
				s.AddArgument(arg.t, arg.v)
			}

			actual, err := s.Invoke(tc.method)
			require.NoError(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestInvokeStaticMethod(t *testing.T) {
	for _, tc := range []struct {
		name     string
		method   string
		args     []argument
		expected any
	}{
		{"string no argument", "returnStringWithNoArgument", nil, "success"},
		{"string success", "returnStringWithArgument", []argument{{stringType, "test"}}, "success"},
		{"string failure", "returnStringWithArgument", []argument{{stringType, ""}}, "failure"},
		{"string arguments", "returnStringWithArguments", []argument{{stringType, ""}, {intType, 0}, {boolType, true}}, "success"},
		{"integer no argument", "returnIntegerWithNoArgument", nil, 1},
		{"integer true", "returnIntegerWithArgument", []argument{{boolType, true}}, 1},
		{"integer false", "returnIntegerWithArgument", []argument{{boolType, false}}, 0},
		{"boolean true", "returnBooleanWithArgument", []argument{{intType, 1}}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := from(dataset.StaticDataSet)
			for _, arg := range tc.args {
				s.AddArgument(arg.t, arg.v)
			}

			actual, err := s.InvokeStatic(tc.method)
			require.NoError(t, err)
			require.Equal(t, tc.expected, actual)

			actual, err = s.Invoke(tc.method)
			require.NoError(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestInvokeMethodErrors(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := from(dataset.DataSet).Invoke("")
		require.ErrorIs(t, err, whitebox.ErrEmptyMethodName)
		require.EqualError(t, err, "method name must not be empty")
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := from(dataset.DataSet).Invoke("returnNothing")
		require.ErrorIs(t, err, whitebox.ErrReflectiveInvocation)
	})

	t.Run("argument types differ", func(t *testing.T) {
		_, err := from(dataset.DataSet).
			AddArgument(reflect.TypeOf(int64(0)), int64(1)).
			Invoke("returnBooleanWithArgument")
		require.ErrorIs(t, err, whitebox.ErrReflectiveInvocation)
	})

	t.Run("instance member through static call", func(t *testing.T) {
		_, err := from(dataset.DataSet).InvokeStatic("returnStringWithNoArgument")
		require.ErrorIs(t, err, whitebox.ErrReflectiveInvocation)
	})
}

func TestField(t *testing.T) {
	s := from(dataset.Entity)

	require.NoError(t, s.
		SetFieldValue("testField", "test").
		SetFieldValue("count", 3).
		SetFieldValue("labels", map[string]string{"k": "v"}).
		Err())

	require.Equal(t, "test", whitebox.MustGetField[string](t, s, "testField"))
	require.Equal(t, 3, whitebox.MustGetField[int](t, s, "count"))
	require.Equal(t, map[string]string{"k": "v"}, whitebox.MustGetField[map[string]string](t, s, "labels"))

	require.NoError(t, s.SetFieldValue("labels", nil).Err())
	labels, err := s.GetFieldValue("labels")
	require.NoError(t, err)
	require.Nil(t, labels)

	err = from(dataset.Entity).SetFieldValue("count", nil).Err()
	require.ErrorIs(t, err, whitebox.ErrReflectiveAccess)

	_, err = from(dataset.Entity).GetFieldValue("unknown")
	require.ErrorIs(t, err, whitebox.ErrReflectiveAccess)
}

func TestConstructor(t *testing.T) {
	s := from(dataset.Guarded)

	require.Equal(t, "issued", whitebox.MustInvoke[string](t, s, "returnToken"))
	require.Equal(t, "issued", whitebox.MustGetField[string](t, s, "token"))

	whitebox.MustSetField(t, s, "token", "revoked")
	require.Equal(t, "revoked", whitebox.MustInvoke[string](t, s, "returnToken"))
}
