package calculator

import (
	"errors"
	"net/http"

	"go-chi-calculator/pkg/arith"
)

// Error kinds reported in the "kind" field of error responses.
const (
	KindInvalidRequest   = "invalid_request"
	KindOutOfRange       = "out_of_range"
	KindDivisionByZero   = "division_by_zero"
	KindOverflow         = "overflow"
	KindUnknownOperation = "unknown_operation"
	KindInternal         = "internal"
)

// ErrResultOverflow reports a result that has no finite float64 value, such
// as an in-range numerator divided by a subnormal divisor.
var ErrResultOverflow = errors.New("result is too large to represent")

// Classify maps an evaluator error to an HTTP status and error kind.
func Classify(err error) (int, string) {
	var rangeErr *arith.RangeError
	switch {
	case errors.As(err, &rangeErr):
		return http.StatusUnprocessableEntity, KindOutOfRange
	case errors.Is(err, arith.ErrDivisionByZero):
		return http.StatusUnprocessableEntity, KindDivisionByZero
	case errors.Is(err, ErrResultOverflow):
		return http.StatusUnprocessableEntity, KindOverflow
	case errors.Is(err, arith.ErrUnknownOperation):
		return http.StatusNotFound, KindUnknownOperation
	default:
		return http.StatusInternalServerError, KindInternal
	}
}
