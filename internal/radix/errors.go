package radix

import (
	"errors"
	"fmt"
)

// UnsupportedBaseError reports a requested base whose magnitude is outside
// [2, 36]. Never retried: the set of supported bases is fixed.
type UnsupportedBaseError struct {
	Base int
}

// Error implements the error interface.
func (e *UnsupportedBaseError) Error() string {
	switch e.Base {
	case 0:
		return "base 0 is not supported: division by zero is undefined"
	case 1, -1:
		return fmt.Sprintf("base %d is not supported: no unique representation", e.Base)
	default:
		return fmt.Sprintf("base %d is outside the supported range (magnitude 2-36)", e.Base)
	}
}

// InvalidInputError reports a malformed numeral: a digit outside the claimed
// base, an empty digit string, or a sign on a negative-base input (negative
// bases take principal values only).
type InvalidInputError struct {
	Input  string
	Base   int
	Reason string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q for base %d: %s", e.Input, e.Base, e.Reason)
}

// PrecisionExceededError reports a fractional expansion that neither
// terminated nor cycled within the precision budget.
//
// Advisory, not fatal: the truncated expansion returned alongside it is
// still valid, it just carries no exactness guarantee. Callers may surface
// it as a warning or ignore it.
type PrecisionExceededError struct {
	Precision int
}

// Error implements the error interface.
func (e *PrecisionExceededError) Error() string {
	return fmt.Sprintf("fractional expansion did not terminate or cycle within %d digits", e.Precision)
}

// IsUnsupportedBase returns true if the error is an UnsupportedBaseError.
// Uses errors.As to handle wrapped errors.
func IsUnsupportedBase(err error) bool {
	var ube *UnsupportedBaseError
	return errors.As(err, &ube)
}

// IsInvalidInput returns true if the error is an InvalidInputError.
// Uses errors.As to handle wrapped errors.
func IsInvalidInput(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie)
}

// IsPrecisionExceeded returns true if the error is the advisory
// PrecisionExceededError. Uses errors.As to handle wrapped errors.
func IsPrecisionExceeded(err error) bool {
	var pee *PrecisionExceededError
	return errors.As(err, &pee)
}
