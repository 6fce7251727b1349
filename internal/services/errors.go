package services

import "errors"

// ErrNotFound covers both "row does not exist" and "row not owned by the
// caller". Handlers map it to 404 without distinguishing the two, so one
// tenant can never probe for another tenant's data.
var ErrNotFound = errors.New("record not found")

// ValidationError carries a caller-facing message; handlers map it to 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
