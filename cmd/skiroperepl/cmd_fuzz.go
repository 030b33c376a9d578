package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorope/skiprope"
)

// newFuzzCmd reads an AFL-style line-oriented edit script from stdin:
// pairs of lines, a position followed by a payload. A payload starting
// with '-' means delete N characters at that position (N is the digits
// after the dash); any other payload is inserted verbatim. Ported from
// original_source/afl/afl_harness.c's input format, so the same corpus
// that drove the C fuzz target can drive this one.
//
// A malformed invariant after any edit panics, so an external fuzzer
// (AFL++, go-fuzz, or `go test -fuzz` wrapping this same decoder) can
// detect the crash via the process's exit status.
func newFuzzCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fuzz",
		Short: "Apply an AFL-style position/payload edit script from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFuzz(cmd.InOrStdin())
		},
	}
}

func runFuzz(stdin io.Reader) error {
	scanner := bufio.NewScanner(stdin)
	r := rope.New()

	for scanner.Scan() {
		posLine := scanner.Text()
		pos, err := strconv.Atoi(strings.TrimSpace(posLine))
		if err != nil {
			continue // malformed position line: skip, matching the C harness's tolerance of garbage input
		}
		if !scanner.Scan() {
			break
		}
		payload := scanner.Text()

		if strings.HasPrefix(payload, "-") {
			count, err := strconv.Atoi(strings.TrimSpace(payload[1:]))
			if err != nil {
				continue
			}
			r.Delete(pos, count)
		} else {
			if err := r.Insert(pos, []byte(payload)); err != nil {
				continue // INVALID_UTF8 is a normal outcome for fuzzed input, not a crash
			}
		}

		if err := rope.Check(r); err != nil {
			panic(fmt.Sprintf("invariant violation after edit at %d: %v", pos, err))
		}
	}
	return scanner.Err()
}
