// Package reflectx resolves and calls members of a type under test by name,
// and reads and writes its fields, regardless of whether they are exported.
//
// # Classes
//
// A Class is the member table of one type. Exported methods are found by
// reflection. Unexported methods and package-level functions are declared
// by the package under test, in a file compiled only into its tests:
//
//	// export_test.go
//	package store
//
//	var CacheClass = reflectx.MustClass[cache](
//	    reflectx.WithConstructor(newCache),
//	    reflectx.WithMethod("evict", (*cache).evict),
//	    reflectx.WithMethod("evict", (*cache).evictN),
//	    reflectx.WithStatic("hashKey", hashKey),
//	)
//
// # Resolution
//
// Arguments are recorded with the exact type they are declared with (see
// package parameter). A member is selected when its parameter types are
// identical, in order, to the recorded types. There is no widening and no
// interface satisfaction: a member taking int64 is not selected by an int
// tag, and a member taking any is selected only by an any tag. Callers state
// the exact signature they mean.
//
// # Fields
//
// SetFieldValue and GetFieldValue work on fields declared directly on a
// struct, through a pointer to it. Promoted fields of embedded structs are
// reached through the embedded field itself.
//
// # Errors
//
// Field failures match ErrReflectiveAccess, invocation failures match
// ErrReflectiveInvocation, and both unwrap to the underlying cause, which
// for a failing member is the error it returned or the *PanicError it
// raised.
package reflectx
