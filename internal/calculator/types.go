package calculator

// CalcRequest is the JSON body for binary operations (add, subtract, multiply, divide).
// Both operands are required; pointers distinguish a missing operand from zero.
type CalcRequest struct {
	A *float64 `json:"a"`
	B *float64 `json:"b"`
}

// CalcResponse is the JSON response for a successful operation.
type CalcResponse struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Result    float64 `json:"result"`
}

// LimitsResponse is the JSON response for GET /calculator/limits.
type LimitsResponse struct {
	MinValue float64 `json:"min_value"`
	MaxValue float64 `json:"max_value"`
}
