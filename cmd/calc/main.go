package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"go-chi-calculator/internal/observability"
	"go-chi-calculator/pkg/arith"
)

// Version is set during build
var Version = ""

var longHelp = strings.TrimSpace(fmt.Sprintf(`
Evaluate one arithmetic operation on two operands.

Operands must lie within [%d, %d]. Division is true division and fails on
a zero divisor only after both operands pass the range check.
`, arith.MinValue, arith.MaxValue))

var exampleUsage = strings.TrimSpace(`
  calc add 2 3
  calc divide 5 2 --output json
  calc subtract -- -5 3
  calc eval -- 4 '*' -3
  calc mcp
`)

func getVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel string
		output   string
	)

	root := &cobra.Command{
		Use:           "calc",
		Short:         "Bounded four-function calculator",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if output != outputText && output != outputJSON {
				return fmt.Errorf("unknown output format %q (want %s or %s)", output, outputText, outputJSON)
			}
			return observability.InitLogger(logLevel)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level for stderr (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&output, "output", "o", outputText, "output format (text, json)")

	for _, op := range arith.Operations() {
		root.AddCommand(newOperationCmd(op, &output))
	}
	root.AddCommand(
		newEvalCmd(&output),
		newLimitsCmd(&output),
		newMCPCmd(),
	)

	return root
}
