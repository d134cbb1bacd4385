package mcp

import (
	"context"
	"fmt"

	"go-chi-calculator/internal/observability"
	"go-chi-calculator/pkg/arith"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// CalculatorServer exposes the arithmetic operations as MCP tools.
type CalculatorServer struct {
	server  *server.MCPServer
	version string
}

// NewCalculatorServer creates a server with every tool registered.
func NewCalculatorServer(version string) *CalculatorServer {
	s := &CalculatorServer{
		server:  server.NewMCPServer("Bounded Calculator", version),
		version: version,
	}

	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *CalculatorServer) Server() *server.MCPServer {
	return s.server
}

func (s *CalculatorServer) registerTools() {
	descriptions := map[arith.Operation]string{
		arith.OpAdd:      "Add two numbers (a + b)",
		arith.OpSubtract: "Subtract b from a (a - b)",
		arith.OpMultiply: "Multiply two numbers (a * b)",
		arith.OpDivide:   "Divide a by b (a / b); fails when b is zero",
	}

	for _, op := range arith.Operations() {
		s.addOperationTool(op, descriptions[op])
	}
	s.addLimitsTool()
}

func (s *CalculatorServer) addOperationTool(op arith.Operation, description string) {
	bounds := fmt.Sprintf(" Must be within [%d, %d].", arith.MinValue, arith.MaxValue)

	tool := mcp.NewTool(op.String(),
		mcp.WithDescription(description),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First operand."+bounds),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second operand."+bounds),
		),
	)

	s.server.AddTool(tool, s.OperationHandler(op))
}

func (s *CalculatorServer) addLimitsTool() {
	tool := mcp.NewTool("limits",
		mcp.WithDescription("Report the inclusive operand bounds"),
	)

	s.server.AddTool(tool, s.Limits)
}

// OperationHandler returns the tool handler for op.
func (s *CalculatorServer) OperationHandler(op arith.Operation) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := observability.Logger.With(zap.String("tool", op.String()))
		logger.Debug("received tool call")

		a, err := numberArgument(request, "a")
		if err != nil {
			return newErrorResult("%v", err), nil
		}
		b, err := numberArgument(request, "b")
		if err != nil {
			return newErrorResult("%v", err), nil
		}

		result, err := arith.Evaluate(op, a, b)
		if err != nil {
			logger.Info("tool call failed",
				zap.Float64("a", a),
				zap.Float64("b", b),
				zap.Error(err),
			)
			return newErrorResult("%v", err), nil
		}

		logger.Debug("tool call completed", zap.Float64("result", result))
		return mcp.NewToolResultText(arith.FormatNumber(result)), nil
	}
}

// Limits handles the limits tool.
func (s *CalculatorServer) Limits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := fmt.Sprintf("min_value=%d max_value=%d", arith.MinValue, arith.MaxValue)
	return mcp.NewToolResultText(text), nil
}

func numberArgument(request mcp.CallToolRequest, name string) (float64, error) {
	raw, ok := request.Params.Arguments[name]
	if !ok || raw == nil {
		return 0, fmt.Errorf("missing required argument %q", name)
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("argument %q must be a number, got %T", name, raw)
	}
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}
