package app

import (
	"errors"
	"strings"
)

var (
	// ErrForbidden indicates the caller lacks privilege for the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrUserNotFound indicates that the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError reports the offending input fields of a rejected
// request. It is returned before any persistence access.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
