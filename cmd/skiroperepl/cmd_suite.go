package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorope/skiprope"
	"github.com/gorope/skiprope/internal/edits"
	"github.com/gorope/skiprope/internal/oracle"
)

// newTestCmd runs the oracle-equivalence property loop: a rope and a
// flat-string oracle are driven through the same generated edit script,
// diverging (and failing loudly) on the first materialized mismatch or
// invariant violation, matching original_source/test/tests.c's
// check-after-every-mutation discipline.
func newTestCmd() *cobra.Command {
	var seed uint64
	var steps int

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the oracle-equivalence property suite",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()
			return runPropertySuite(logger, seed, steps)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 1, "PRNG seed for the edit generator")
	cmd.Flags().IntVar(&steps, "steps", 100000, "number of edits to apply")
	return cmd
}

func runPropertySuite(logger *zap.Logger, seed uint64, steps int) error {
	r := rope.New()
	o := oracle.New("")
	gen := edits.New(seed)

	logger.Info("starting property suite", zap.Uint64("seed", seed), zap.Int("steps", steps))

	for i := 0; i < steps; i++ {
		e := gen.Next(o.CharCount())
		switch e.Kind {
		case edits.Insert:
			if err := r.Insert(e.Pos, []byte(e.Text)); err != nil {
				return fmt.Errorf("step %d: insert at %d: %w", i, e.Pos, err)
			}
			o.Insert(e.Pos, e.Text)
		case edits.Delete:
			r.Delete(e.Pos, e.Count)
			o.Delete(e.Pos, e.Count)
		}

		if got, want := r.CharCount(), o.CharCount(); got != want {
			return fmt.Errorf("step %d: char count diverged: rope=%d oracle=%d", i, got, want)
		}
		if got, want := string(r.CreateCString()[:r.ByteCount()]), o.String(); got != want {
			logger.Error("materialization diverged", zap.Int("step", i))
			return fmt.Errorf("step %d: materialization diverged from oracle", i)
		}
		if err := rope.Check(r); err != nil {
			return fmt.Errorf("step %d: invariant violation: %w", i, err)
		}

		if i%10000 == 0 && i > 0 {
			logger.Info("progress", zap.Int("step", i), zap.Int("chars", r.CharCount()))
		}
	}

	logger.Info("property suite passed", zap.Int("steps", steps))
	return nil
}
