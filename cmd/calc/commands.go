package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-chi-calculator/internal/calculator"
	calcmcp "go-chi-calculator/internal/mcp"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/pkg/arith"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var operationShort = map[arith.Operation]string{
	arith.OpAdd:      "Print A + B",
	arith.OpSubtract: "Print A - B",
	arith.OpMultiply: "Print A * B",
	arith.OpDivide:   "Print A / B",
}

func newOperationCmd(op arith.Operation, output *string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s A B", op),
		Short: operationShort[op],
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args[0], args[1])
			if err != nil {
				return err
			}
			return evaluate(cmd.OutOrStdout(), *output, op, a, b)
		},
	}
}

func newEvalCmd(output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "eval A OP B",
		Short: "Evaluate A OP B where OP is a name or one of + - * / x",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := arith.ParseOperation(args[1])
			if err != nil {
				return err
			}
			a, b, err := parseOperands(args[0], args[2])
			if err != nil {
				return err
			}
			return evaluate(cmd.OutOrStdout(), *output, op, a, b)
		},
	}
}

func newLimitsCmd(output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "limits",
		Short: "Print the inclusive operand bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if *output == outputJSON {
				return json.NewEncoder(w).Encode(calculator.LimitsResponse{
					MinValue: arith.MinValue,
					MaxValue: arith.MaxValue,
				})
			}
			_, err := fmt.Fprintf(w, "min_value: %d\nmax_value: %d\n", arith.MinValue, arith.MaxValue)
			return err
		},
	}
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the operations as MCP tools on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			observability.Logger.Info("starting MCP server", zap.String("version", getVersion()))

			s := calcmcp.NewCalculatorServer(getVersion())
			if err := server.ServeStdio(s.Server()); err != nil {
				return fmt.Errorf("serve mcp: %w", err)
			}
			return nil
		},
	}
}

func parseOperands(rawA, rawB string) (float64, float64, error) {
	a, err := parseOperand(rawA)
	if err != nil {
		return 0, 0, err
	}
	b, err := parseOperand(rawB)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid operand %q: %w", s,
			&arith.RangeError{Value: v, Min: arith.MinValue, Max: arith.MaxValue})
	}
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: not a number", s)
	}
	return v, nil
}

func evaluate(w io.Writer, output string, op arith.Operation, a, b float64) error {
	result, err := arith.Evaluate(op, a, b)
	if err != nil {
		_, kind := calculator.Classify(err)
		observability.Logger.Debug("evaluation failed",
			zap.String("operation", op.String()),
			zap.String("kind", kind),
			zap.Error(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	if output == outputJSON {
		return json.NewEncoder(w).Encode(calculator.CalcResponse{
			Operation: op.String(),
			A:         a,
			B:         b,
			Result:    result,
		})
	}

	_, err = fmt.Fprintf(w, "%s %s %s = %s\n",
		arith.FormatNumber(a), op.Symbol(), arith.FormatNumber(b), arith.FormatNumber(result))
	return err
}
