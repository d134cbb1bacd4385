package arith

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrDivisionByZero is returned by Divide when the divisor is exactly
	// zero and both operands are within range.
	ErrDivisionByZero = errors.New("cannot divide by zero")

	// ErrUnknownOperation is returned when an operation name or symbol
	// cannot be resolved.
	ErrUnknownOperation = errors.New("unknown operation")
)

// RangeError reports an operand outside [Min, Max].
type RangeError struct {
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("input value %s is outside the valid range [%s, %s]",
		FormatNumber(e.Value), FormatNumber(e.Min), FormatNumber(e.Max))
}

// FormatNumber renders v in its shortest exact decimal form without an
// exponent, so 1000001 prints as "1000001" rather than "1.000001e+06".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
