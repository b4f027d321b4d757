package service

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned for any login failure so the
// response never reveals which part of the credentials was wrong.
var ErrInvalidCredentials = errors.New("incorrect credentials")

// ErrAccountDisabled is returned when a deactivated user tries to log in
var ErrAccountDisabled = errors.New("this account is disabled")

// ValidationError reports request data the user can correct; handlers
// map it to a 400 response.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
