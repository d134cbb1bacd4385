package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/pkg/arith"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// maxBodyBytes bounds request bodies; two numbers never need more.
const maxBodyBytes = 4 << 10

var errMissingOperand = errors.New(`both "a" and "b" are required`)

// ---------------------------------------------------------------------------
// Handlers: binary operations
// ---------------------------------------------------------------------------

// Add handles POST /calculator/add
func Add(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, arith.OpAdd)
}

// Subtract handles POST /calculator/subtract
func Subtract(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, arith.OpSubtract)
}

// Multiply handles POST /calculator/multiply
func Multiply(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, arith.OpMultiply)
}

// Divide handles POST /calculator/divide. Out-of-range operands are reported
// before a zero divisor.
func Divide(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, arith.OpDivide)
}

// Limits handles GET /calculator/limits so clients can pre-check operands.
func Limits(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, LimitsResponse{
		MinValue: arith.MinValue,
		MaxValue: arith.MaxValue,
	})
}

// handleBinaryOp is the shared implementation for all binary calculator
// operations: child span, request decoding, evaluation, metrics, a
// trace-correlated log line and the JSON response.
func handleBinaryOp(w http.ResponseWriter, r *http.Request, op arith.Operation) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	opName := op.String()

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req CalcRequest
	if err := decodeRequest(w, r, &req); err != nil {
		requestsTotal.WithLabelValues(opName, KindInvalidRequest).Inc()
		observability.RecordError(ctx, span, logger, errorCounter, opName, KindInvalidRequest, "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	a, b := *req.A, *req.B

	span.SetAttributes(
		attribute.Float64("calculator.operand.a", a),
		attribute.Float64("calculator.operand.b", b),
	)

	start := time.Now()
	result, err := arith.Evaluate(op, a, b)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms
	if err == nil && math.IsInf(result, 0) {
		err = fmt.Errorf("%s %g by %g: %w", opName, a, b, ErrResultOverflow)
	}

	if err != nil {
		status, kind := Classify(err)
		requestsTotal.WithLabelValues(opName, kind).Inc()
		observability.RecordError(ctx, span, logger, errorCounter, opName, kind, err.Error(), err, status, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)
	requestsTotal.WithLabelValues(opName, "ok").Inc()

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalcResponse{
		Operation: opName,
		A:         a,
		B:         b,
		Result:    result,
	})
}

func decodeRequest(w http.ResponseWriter, r *http.Request, req *CalcRequest) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(req); err != nil {
		return err
	}
	if req.A == nil || req.B == nil {
		return errMissingOperand
	}
	return nil
}
