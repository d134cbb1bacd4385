// Package arith evaluates the four basic arithmetic operations over a pair of
// operands bounded to [MinValue, MaxValue].
//
// Every operation validates both operands before computing anything, so a
// call such as Divide(1000001, 0) reports a *RangeError rather than
// ErrDivisionByZero. Division is true division: Divide(5, 2) returns 2.5.
//
// Example usage:
//
//	sum, err := arith.Add(2, 3)
//	if err != nil {
//	    var rangeErr *arith.RangeError
//	    if errors.As(err, &rangeErr) {
//	        // rangeErr.Value holds the offending operand
//	    }
//	}
//
// The package holds no state and is safe for concurrent use.
package arith
