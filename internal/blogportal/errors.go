package blogportal

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrDuplicateSlug is returned when a post or category slug already exists.
// There is no auto-suffixing: the caller decides how to disambiguate.
var ErrDuplicateSlug = errors.New("slug already exists")

// ValidationError describes a single field violation. Inputs are validated
// before any storage access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(fe validator.FieldError) *ValidationError {
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "min":
		msg = fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gt":
		msg = fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		msg = fmt.Sprintf("failed %q validation", fe.Tag())
	}

	return &ValidationError{
		Field:   fe.Field(),
		Message: msg,
	}
}
