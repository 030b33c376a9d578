package rope

import "testing"

func TestCodepointSize(t *testing.T) {
	cases := []struct {
		b    byte
		want int
	}{
		{0x00, 0},
		{'A', 1},
		{0x7f, 1},
		{0x80, 0},
		{0xbf, 0},
		{0xc0, 2},
		{0xdf, 2},
		{0xe0, 3},
		{0xef, 3},
		{0xf0, 4},
		{0xf7, 4},
		{0xf8, 5},
		{0xfb, 5},
		{0xfc, 6},
		{0xfd, 6},
		{0xfe, 0},
		{0xff, 0},
	}
	for _, c := range cases {
		if got := codepointSize(c.b); got != c.want {
			t.Errorf("codepointSize(%#x) = %d, want %d", c.b, got, c.want)
		}
	}
}

func TestValidateAndCountBytes(t *testing.T) {
	if n, ok := validateAndCountBytes([]byte("κόσμε")); !ok || n != 10 {
		t.Fatalf("got (%d, %v), want (10, true)", n, ok)
	}
	if _, ok := validateAndCountBytes([]byte{0xc0, 0x20}); ok {
		t.Fatalf("expected invalid UTF-8 to be rejected")
	}
	if _, ok := validateAndCountBytes([]byte{0xe0, 0x80}); ok {
		t.Fatalf("expected truncated sequence to be rejected")
	}
	if n, ok := validateAndCountBytes(nil); !ok || n != 0 {
		t.Fatalf("empty input should validate as (0, true), got (%d, %v)", n, ok)
	}
}

func TestBytesCharsRoundtrip(t *testing.T) {
	s := []byte("κ𝕐a")
	total := charsInFirstNBytes(s, len(s))
	if total != 3 {
		t.Fatalf("charsInFirstNBytes = %d, want 3", total)
	}
	if got := bytesInFirstNChars(s, total); got != len(s) {
		t.Fatalf("bytesInFirstNChars(..., %d) = %d, want %d", total, got, len(s))
	}
	if got := bytesInFirstNChars(s, 1); got != 2 {
		t.Fatalf("bytesInFirstNChars(..., 1) = %d, want 2 (kappa is 2 bytes)", got)
	}
}

func TestWCharsInFirstNChars(t *testing.T) {
	s := []byte("κόσμε") // all BMP, 1 wchar each
	if got := wcharsInFirstNChars(s, 5); got != 5 {
		t.Fatalf("wcharsInFirstNChars(BMP) = %d, want 5", got)
	}

	s2 := []byte("𝕐𝕆𝌀") // non-BMP, 2 wchars each
	if got := wcharsInFirstNChars(s2, 3); got != 6 {
		t.Fatalf("wcharsInFirstNChars(non-BMP) = %d, want 6", got)
	}
}

func TestCharsInFirstNWChars(t *testing.T) {
	s := []byte("𝕐𝕆𝌀")
	if got := charsInFirstNWChars(s, 6); got != 3 {
		t.Fatalf("charsInFirstNWChars = %d, want 3", got)
	}
	if got := charsInFirstNWChars(s, 2); got != 1 {
		t.Fatalf("charsInFirstNWChars(2) = %d, want 1", got)
	}
}
