package whitebox

import (
	"github.com/anoideaopen/whitebox/core/parameter"
	"github.com/anoideaopen/whitebox/core/reflectx"
)

// Error kinds returned by a Session. Match them with errors.Is; the
// reflective failures unwrap to their cause.
var (
	ErrInvalidArgumentType  = parameter.ErrInvalidArgumentType
	ErrNoParametersSet      = parameter.ErrNoParametersSet
	ErrEmptyMethodName      = reflectx.ErrEmptyMethodName
	ErrReflectiveAccess     = reflectx.ErrReflectiveAccess
	ErrReflectiveInvocation = reflectx.ErrReflectiveInvocation
)
