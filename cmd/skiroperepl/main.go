// Command skiroperepl is a harness for exercising the rope package
// outside of `go test`: it runs the property/stress suite, a synthetic
// insert/delete benchmark, and an AFL-style line-oriented fuzz reader.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "skiroperepl",
		Short: "Exercise the rope package: property tests, benchmarks, and fuzzing",
	}
	root.AddCommand(newTestCmd(), newBenchCmd(), newFuzzCmd())
	return root
}

func newLogger() *zap.Logger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		// zap.NewDevelopment only fails on a broken encoder config; it
		// never does here, but fall back rather than panic in a CLI.
		logger = zap.NewNop()
	}
	return logger
}
