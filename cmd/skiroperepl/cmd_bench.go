package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorope/skiprope"
	"github.com/gorope/skiprope/internal/edits"
)

// newBenchCmd reimplements the reference implementation's benchmark
// loop shape: random inserts build the document up to --size characters,
// then random deletes drive it back down to empty, reporting ns/op for
// each phase.
func newBenchCmd() *cobra.Command {
	var ops int
	var size int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark insert/delete throughput with a synthetic workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()
			runBenchmark(logger, seed, ops, size)
			return nil
		},
	}
	cmd.Flags().IntVar(&ops, "ops", 100000, "number of insert operations in the growth phase")
	cmd.Flags().IntVar(&size, "size", 1_000_000, "target character count before the deletion phase begins")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "PRNG seed")
	return cmd
}

func runBenchmark(logger *zap.Logger, seed uint64, ops, size int) {
	r := rope.New()
	gen := edits.New(seed)

	start := time.Now()
	for r.CharCount() < size {
		e := gen.Next(r.CharCount())
		text := e.Text
		if text == "" {
			text = "x"
		}
		r.Insert(e.Pos, []byte(text))
	}
	growthElapsed := time.Since(start)
	logger.Info("growth phase complete",
		zap.Int("chars", r.CharCount()),
		zap.Duration("elapsed", growthElapsed),
		zap.Float64("ns_per_op", float64(growthElapsed.Nanoseconds())/float64(ops)),
	)

	start = time.Now()
	removed := 0
	for r.CharCount() > 0 {
		pos := gen.Next(r.CharCount()).Pos
		count := 1 + pos%64
		r.Delete(pos, count)
		removed++
	}
	deletionElapsed := time.Since(start)
	logger.Info("deletion phase complete",
		zap.Int("deletes", removed),
		zap.Duration("elapsed", deletionElapsed),
		zap.Float64("ns_per_op", float64(deletionElapsed.Nanoseconds())/float64(removed)),
	)
}
