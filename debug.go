package rope

import "fmt"

// Check walks r and verifies its structural invariants (level bounds,
// per-level link spans against the totals, node sizes, and well-formed
// UTF-8 in every chunk), returning the first violation found as an error, or nil if r is
// internally consistent. It is O(N) over the whole rope and is meant for
// tests and the fuzz harness, not for production hot paths.
//
// Ported from the reference implementation's _rope_check, called from
// its test driver after every mutation.
func Check(r *Rope) error {
	if r.maxActiveLevel < 1 {
		return fmt.Errorf("rope: max active level %d < 1", r.maxActiveLevel)
	}
	if len(r.head.links) != r.maxActiveLevel {
		return fmt.Errorf("rope: head has %d links, want max active level %d", len(r.head.links), r.maxActiveLevel)
	}

	top := r.maxActiveLevel - 1
	if r.head.links[top].next != nil {
		return fmt.Errorf("rope: head's top-level link is not terminal")
	}
	if r.head.links[top].chars != r.totalChars {
		return fmt.Errorf("rope: head's top-level chars %d != total chars %d", r.head.links[top].chars, r.totalChars)
	}
	if r.head.links[top].bytes != r.totalBytes {
		return fmt.Errorf("rope: head's top-level bytes %d != total bytes %d", r.head.links[top].bytes, r.totalBytes)
	}
	if r.opts.wchars {
		if want := r.WCharCount(); r.head.links[top].wchars != want {
			return fmt.Errorf("rope: head's top-level wchars %d != wchar count %d", r.head.links[top].wchars, want)
		}
	}

	for n := r.head.links[0].next; n != nil; n = n.links[0].next {
		if n.level() >= r.maxActiveLevel {
			return fmt.Errorf("rope: node level %d exceeds max active level %d", n.level(), r.maxActiveLevel)
		}
		if n.charLen() < 1 || n.charLen() > r.opts.chunkCapacity {
			return fmt.Errorf("rope: node char length %d outside [1, %d]", n.charLen(), r.opts.chunkCapacity)
		}
		if nBytes, ok := validateAndCountBytes(n.bytes); !ok || nBytes != len(n.bytes) {
			return fmt.Errorf("rope: node bytes are not well-formed UTF-8")
		}
		if charsInFirstNBytes(n.bytes, len(n.bytes)) != n.charLen() {
			return fmt.Errorf("rope: node char count disagrees with its own bytes")
		}
	}

	// Recompute level sums including the head's own contribution at each
	// level, and compare against total_chars/total_bytes/total_wchars
	// (invariant 4, rolled up across the chain; spec.md §8's per-level sum
	// property).
	for i := 0; i < r.maxActiveLevel; i++ {
		sumChars := r.head.links[i].chars
		sumBytes := r.head.links[i].bytes
		sumWChars := r.head.links[i].wchars
		for n := r.head.links[i].next; n != nil && i < n.level(); n = n.links[i].next {
			sumChars += n.links[i].chars
			sumBytes += n.links[i].bytes
			sumWChars += n.links[i].wchars
		}
		if sumChars != r.totalChars {
			return fmt.Errorf("rope: level %d chars sum %d != total chars %d", i, sumChars, r.totalChars)
		}
		if sumBytes != r.totalBytes {
			return fmt.Errorf("rope: level %d bytes sum %d != total bytes %d", i, sumBytes, r.totalBytes)
		}
		if r.opts.wchars && sumWChars != r.WCharCount() {
			return fmt.Errorf("rope: level %d wchars sum %d != wchar count %d", i, sumWChars, r.WCharCount())
		}
	}

	if r.totalBytes < r.totalChars {
		return fmt.Errorf("rope: total bytes %d < total chars %d", r.totalBytes, r.totalChars)
	}

	return nil
}
