package rope

import "math/rand/v2"

const (
	// defaultChunkCapacity mirrors the reference implementation's
	// ROPE_NODE_STR_SIZE: an empirically chosen balance between node
	// overhead and per-edit memmove cost for typical editor workloads.
	defaultChunkCapacity = 128

	// defaultBias mirrors ROPE_BIAS: the percent chance a node's level
	// gets promoted one step further, giving a geometric height
	// distribution with average height ~1/(1-bias/100).
	defaultBias = 25

	// defaultMaxLevel bounds the skip list height. One level is always
	// reserved so the head can be strictly taller than any real node.
	defaultMaxLevel = 60
)

// Allocator receives accounting notifications as the rope allocates and
// frees node storage. It is not a real memory allocator — Go has no
// manual free — but implementing it lets tests and benchmarks count
// allocations the way the reference implementation's pluggable
// alloc/realloc/free triple does.
type Allocator interface {
	NodeAllocated(bytes int)
	NodeFreed(bytes int)
}

// options holds construction-time configuration assembled by Option
// functions. It plays the role the reference implementation fills with
// compile-time macros (CHUNK_CAP, BIAS, MAX_LEVEL, WCHAR_SUPPORT); Go has
// no preprocessor, so these are runtime fields fixed at construction.
type options struct {
	chunkCapacity int
	bias          int
	maxLevel      int
	wchars        bool
	alloc         Allocator
	rand          *rand.Rand
}

func defaultOptions() *options {
	return &options{
		chunkCapacity: defaultChunkCapacity,
		bias:          defaultBias,
		maxLevel:      defaultMaxLevel,
		wchars:        false,
		alloc:         nil,
		rand:          nil,
	}
}

// Option configures a Rope at construction time.
type Option func(*options)

// WithChunkCapacity sets the maximum number of bytes a non-head node's
// chunk may hold. Must be at most 65535. Values below 6, the longest
// scalar encoding the validator accepts, are raised to 6 so that every
// scalar value fits in a single chunk.
func WithChunkCapacity(n int) Option {
	return func(o *options) { o.chunkCapacity = max(n, 6) }
}

// WithBias sets the percent chance (0-100) that a node's randomly chosen
// level is promoted one step further than the previous step.
func WithBias(percent int) Option {
	return func(o *options) { o.bias = percent }
}

// WithMaxLevel sets the tallest level a node may reach. The head is
// always at least one level taller than the tallest real node, so the
// effective node-height ceiling is maxLevel-1.
func WithMaxLevel(n int) Option {
	return func(o *options) { o.maxLevel = n }
}

// WithWChars enables maintaining the UTF-16 code-unit metric on every
// link, and the WCharCount/InsertAtWChar/DeleteAtWChar API surface. It
// costs roughly 30% more work per edit (per the reference
// implementation's own benchmarking), so it defaults to off.
func WithWChars(enabled bool) Option {
	return func(o *options) { o.wchars = enabled }
}

// WithAllocator installs an Allocator to receive node allocation/free
// accounting notifications.
func WithAllocator(a Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// WithRand injects the PRNG used for random level selection, for
// deterministic tests. Without this option the rope draws from a
// process-global source.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rand = r }
}
