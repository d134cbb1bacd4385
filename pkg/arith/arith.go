package arith

import "math"

// Operand bounds, inclusive.
const (
	MinValue = -1_000_000
	MaxValue = 1_000_000
)

// Validate checks values in order and returns a *RangeError for the first one
// outside [MinValue, MaxValue]. NaN is never within range.
func Validate(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || v < MinValue || v > MaxValue {
			return &RangeError{Value: v, Min: MinValue, Max: MaxValue}
		}
	}
	return nil
}

// Add returns a + b.
func Add(a, b float64) (float64, error) {
	if err := Validate(a, b); err != nil {
		return 0, err
	}
	return add(a, b)
}

// Subtract returns a - b.
func Subtract(a, b float64) (float64, error) {
	if err := Validate(a, b); err != nil {
		return 0, err
	}
	return subtract(a, b)
}

// Multiply returns a * b.
func Multiply(a, b float64) (float64, error) {
	if err := Validate(a, b); err != nil {
		return 0, err
	}
	return multiply(a, b)
}

// Divide returns a / b. The range check runs before the zero-divisor check.
func Divide(a, b float64) (float64, error) {
	if err := Validate(a, b); err != nil {
		return 0, err
	}
	return divide(a, b)
}

// The unexported forms assume a and b have already been validated.

func add(a, b float64) (float64, error)      { return a + b, nil }
func subtract(a, b float64) (float64, error) { return a - b, nil }
func multiply(a, b float64) (float64, error) { return a * b, nil }

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
