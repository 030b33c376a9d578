// Package oracle provides a flat, deliberately naive UTF-8 string
// container used as a reference implementation in tests: any property
// the rope claims to hold must also hold against a same-shaped edit
// script applied to this oracle.
//
// Ported from original_source's test/slowstring.c/.h: every operation is
// O(N) and does the obvious thing with Go's native string/rune
// conversions, trading performance for being trivially correct by
// inspection.
package oracle

import "unicode/utf8"

// String is a flat, append/splice-based text container indexed by
// scalar (rune) position, not byte position.
type String struct {
	runes []rune
}

// New returns an oracle containing s. s must be well-formed UTF-8.
func New(s string) *String {
	return &String{runes: []rune(s)}
}

// CharCount returns the number of scalar values currently stored.
func (s *String) CharCount() int {
	return len(s.runes)
}

// ByteCount returns the UTF-8 byte length of the current contents.
func (s *String) ByteCount() int {
	n := 0
	for _, r := range s.runes {
		n += utf8.RuneLen(r)
	}
	return n
}

// String materializes the oracle's current contents.
func (s *String) String() string {
	return string(s.runes)
}

// Insert splices str into the oracle at scalar position pos, clamped to
// [0, CharCount()].
func (s *String) Insert(pos int, str string) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.runes) {
		pos = len(s.runes)
	}
	ins := []rune(str)
	if len(ins) == 0 {
		return
	}
	out := make([]rune, 0, len(s.runes)+len(ins))
	out = append(out, s.runes[:pos]...)
	out = append(out, ins...)
	out = append(out, s.runes[pos:]...)
	s.runes = out
}

// Delete removes count scalar values starting at scalar position pos,
// both clamped so the range lies within [0, CharCount()].
func (s *String) Delete(pos, count int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.runes) {
		pos = len(s.runes)
	}
	if count < 0 {
		count = 0
	}
	if pos+count > len(s.runes) {
		count = len(s.runes) - pos
	}
	if count == 0 {
		return
	}
	s.runes = append(s.runes[:pos], s.runes[pos+count:]...)
}
