package whitebox

import "github.com/stretchr/testify/require"

type tHelper interface {
	Helper()
}

// MustInvoke invokes name on s and fails t unless it succeeds with a result
// of type R.
func MustInvoke[R any](t require.TestingT, s *Session, name string) R {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	r, err := InvokeAs[R](s, name)
	require.NoError(t, err)

	return r
}

// MustInvokeStatic is MustInvoke for static members.
func MustInvokeStatic[R any](t require.TestingT, s *Session, name string) R {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	r, err := InvokeStaticAs[R](s, name)
	require.NoError(t, err)

	return r
}

// MustGetField reads the field called name and fails t unless it holds an R.
func MustGetField[R any](t require.TestingT, s *Session, name string) R {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	r, err := FieldAs[R](s, name)
	require.NoError(t, err)

	return r
}

// MustSetField assigns the field called name and fails t on error.
func MustSetField(t require.TestingT, s *Session, name string, value any) *Session {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	require.NoError(t, s.SetFieldValue(name, value).Err())

	return s
}
