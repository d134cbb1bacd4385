package arith

import (
	"fmt"
	"strings"
)

// Operation names one of the four supported operations.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

var operations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

var operationAliases = map[string]Operation{
	"add":      OpAdd,
	"+":        OpAdd,
	"subtract": OpSubtract,
	"-":        OpSubtract,
	"multiply": OpMultiply,
	"*":        OpMultiply,
	"x":        OpMultiply,
	"×":        OpMultiply,
	"divide":   OpDivide,
	"/":        OpDivide,
	"÷":        OpDivide,
}

// Operations returns the supported operations in a stable order.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	return out
}

// ParseOperation resolves a name or symbol, ignoring case and surrounding
// whitespace.
func ParseOperation(s string) (Operation, error) {
	op, ok := operationAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
	return op, nil
}

// Symbol returns the infix symbol for op, or "?" for an unknown operation.
func (op Operation) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

func (op Operation) String() string { return string(op) }

// Evaluate validates a and b once, then applies op. Operands are checked
// before op is resolved, so out-of-range input wins over an unknown
// operation.
func Evaluate(op Operation, a, b float64) (float64, error) {
	if err := Validate(a, b); err != nil {
		return 0, err
	}

	switch op {
	case OpAdd:
		return add(a, b)
	case OpSubtract:
		return subtract(a, b)
	case OpMultiply:
		return multiply(a, b)
	case OpDivide:
		return divide(a, b)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}
}
