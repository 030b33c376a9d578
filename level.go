package rope

import "math/rand/v2"

// randomLevel draws a node height in [1, maxLevel-1] from a geometric
// distribution with per-step promotion probability bias/100. The -1
// reserves one level purely for the head sentinel, so the head is always
// strictly taller than any real node.
//
// Ported from the reference implementation's random_height: start at 1,
// keep incrementing while a fresh draw in [0,100) lands under bias and
// the ceiling hasn't been reached.
func randomLevel(r *rand.Rand, bias, maxLevel int) int {
	height := 1
	for height < maxLevel-1 && draw100(r) < bias {
		height++
	}
	return height
}

func draw100(r *rand.Rand) int {
	if r != nil {
		return r.IntN(100)
	}
	return rand.IntN(100)
}
