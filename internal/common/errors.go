package common

import "errors"

// BadRequestError marks a resolvable-but-missing business entity: a planet
// not found by name, a distance not found for a pair, no fuel price for a
// sector/day. The transport boundary maps it to a 400 with the message as-is.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// NewBadRequestError creates a BadRequestError with the given message.
func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

// IsBadRequest reports whether err (or anything it wraps) is a BadRequestError.
func IsBadRequest(err error) bool {
	var target *BadRequestError
	return errors.As(err, &target)
}

// ErrInvalidArgument marks a required input that is absent or empty. Callers
// wrap it with context; it always surfaces, never recovered.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDataIntegrity marks an inconsistency between two trusted partner
// sources, e.g. a planet present in the sindicate directory but absent from
// the empire spy report. Treated as a server error, not a 400.
var ErrDataIntegrity = errors.New("data integrity failure")
