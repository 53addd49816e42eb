package availability

import (
	"errors"
	"fmt"
)

// ValidationError signals malformed engine input: a bad date string, an
// unknown timezone, or a non-positive duration/step. It is surfaced
// immediately with no partial result and is never worth retrying.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
