package errs

import (
	"errors"
	"fmt"
)

// Store error sentinels. ValidationError is only raised when the caller
// explicitly asked for validation; the plain write path surfaces constraint
// failures from the engine as IntegrityError instead.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("record not found")
	ErrInvalidState = errors.New("operation requires a persisted record")
	ErrIntegrity    = errors.New("integrity constraint violated")
	ErrDatabase     = errors.New("database operation failed")
)

// NewValidationError reports a field rule or uniqueness precheck failure on
// the opt-in validation path.
func NewValidationError(entity, field, details string) *ApiErr {
	return &ApiErr{
		StatusCode: 400,
		err:        ErrValidation,
		Field:      field,
		Details:    fmt.Sprintf("%s: %s", entity, details),
	}
}

// NewValidationErrorWithCause wraps the validator's own error.
func NewValidationErrorWithCause(entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: 400,
		err:        ErrValidation,
		Details:    entity,
		Cause:      cause,
	}
}

// NewNotFound reports a lookup by identifier with no matching record.
func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: 404,
		err:        ErrNotFound,
		Details:    entity,
	}
}

// NewInvalidState reports an operation that needs a persisted record but got
// an unpersisted one.
func NewInvalidState(details string) *ApiErr {
	return &ApiErr{
		StatusCode: 409,
		err:        ErrInvalidState,
		Details:    details,
	}
}

// NewIntegrityError reports a uniqueness or foreign-key violation surfaced by
// the engine on the non-validated write path.
func NewIntegrityError(entity, constraint string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: 409,
		err:        ErrIntegrity,
		Details:    fmt.Sprintf("%s (constraint %s)", entity, constraint),
		Cause:      cause,
	}
}

// NewDatabaseError wraps any other engine failure with operation context.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: 500,
		err:        ErrDatabase,
		Details:    fmt.Sprintf("%s %s", operation, entity),
		Cause:      cause,
	}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

func IsIntegrity(err error) bool {
	return errors.Is(err, ErrIntegrity)
}

func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}
