// Package rope provides an indexed rope for text editor buffers: a
// mutable UTF-8 string container supporting logarithmic-time insert and
// delete at an arbitrary character position.
//
// # Overview
//
// A Rope stores text as a probabilistic skip list of fixed-capacity
// chunks. Every chunk boundary falls on a UTF-8 scalar-value boundary, so
// no operation ever splits a codepoint. Each forward link in the skip
// list carries cumulative character and byte counts (and, optionally,
// UTF-16 code-unit counts) to its target, which lets Insert and Delete
// locate the destination chunk in O(log N) instead of a full linear scan.
//
// # When to Use Rope
//
// Rope is suited to:
//   - Text editor and IDE buffers with frequent small edits scattered
//     throughout a large document
//   - Collaborative editing backends applying a stream of positional
//     inserts and deletes
//   - Any single-owner, single-threaded text buffer where edits dominate
//     and full-string copies would be too slow
//
// # When NOT to Use Rope
//
// Rope is not suitable for:
//   - Read-mostly workloads with rare mutation (a plain string is faster
//     and simpler)
//   - Concurrent readers or writers — a Rope has no internal locking
//   - Workloads needing substring search, undo history, or persistence;
//     none of that is in scope
//
// # Basic Usage
//
//	r, err := rope.NewWithUTF8([]byte("hello world"))
//	if err != nil {
//	    // malformed UTF-8
//	}
//	r.Insert(5, []byte(", there"))
//	r.Delete(0, 6)
//	out := r.String() // " there world"
//
// # Tradeoffs vs Alternatives
//
// Compared to a plain Go string or []byte buffer:
//   - Much faster positional insert/delete on large texts (O(log N + K)
//     instead of O(N))
//   - Slower full-string construction and higher constant overhead on
//     small texts
//   - No direct indexing (s[i]); access is via ForEach or CreateCString
//
// Compared to a balanced-tree rope (B-tree/splay):
//   - No rebalancing or rotations — insert/delete touch only the nodes
//     the search cursor already visited
//   - Expected, not worst-case, O(log N); the randomized level
//     distribution is self-balancing given a well-seeded PRNG
package rope
