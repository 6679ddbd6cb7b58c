package goregex

import (
	"slices"
	"testing"
)

// TestMatchVariants checks the byte-wise and rune-wise entry points against
// each other on ASCII and non-ASCII input.
func TestMatchVariants(t *testing.T) {
	// ASCII input: every variant agrees.
	for _, c := range []struct {
		s       string
		pattern string
		result  bool
	}{
		{"abc", "abc", true},
		{"abd", "abc", false},
		{"aaab", "a*b", true},
		{"c", "a*b", false},
		{"anything", ".*", true},
		{"", "x*", true},
	} {
		if got := Match(c.pattern, c.s); got != c.result {
			t.Errorf("Match(%q, %q) = %v, expected %v", c.pattern, c.s, got, c.result)
		}
		if got := MatchFromByte([]byte(c.pattern), []byte(c.s)); got != c.result {
			t.Errorf("MatchFromByte(%q, %q) = %v, expected %v", c.pattern, c.s, got, c.result)
		}
		if got := MatchByRune(c.pattern, c.s); got != c.result {
			t.Errorf("MatchByRune(%q, %q) = %v, expected %v", c.pattern, c.s, got, c.result)
		}
	}

	// Multi-byte input: only the rune variant sees whole code points. The
	// byte-wise repetition in "é*" repeats the final UTF-8 byte of 'é', so
	// it cannot accept "éé"; the rune variant repeats the character.
	if MatchByRune("é*", "éé") != true {
		t.Error(`MatchByRune("é*", "éé") should match`)
	}
	if Match("é*", "éé") != false {
		t.Error(`Match("é*", "éé") should not match byte-wise`)
	}
	if !MatchByRune("caf.", "café") {
		t.Error(`MatchByRune("caf.", "café") should match`)
	}
}

// TestFindAllVariants checks span contents and the byte- vs rune-offset
// behavior of the scanning entry points.
func TestFindAllVariants(t *testing.T) {
	got := FindAll("a.c", "abc xyz abc")
	want := []Span{{0, 3, "abc"}, {8, 11, "abc"}}
	if !slices.Equal(got, want) {
		t.Errorf("FindAll returned %v, expected %v", got, want)
	}

	got = FindAll("a*b", "aab b ab")
	want = []Span{
		{0, 3, "aab"}, {1, 3, "ab"}, {2, 3, "b"},
		{4, 5, "b"}, {6, 8, "ab"}, {7, 8, "b"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("FindAll returned %v, expected %v", got, want)
	}

	if byteGot := FindAllFromByte([]byte("a*b"), []byte("aab b ab")); !slices.Equal(byteGot, want) {
		t.Errorf("FindAllFromByte returned %v, expected %v", byteGot, want)
	}

	// "héllo" is six bytes but five runes: FindAll reports byte offsets and
	// cannot match '.' against the two-byte 'é'; FindAllByRune reports rune
	// offsets and matches.
	if got := FindAll("h.llo", "héllo"); len(got) != 0 {
		t.Errorf("FindAll over multi-byte text returned %v, expected none", got)
	}
	got = FindAllByRune("h.llo", "héllo")
	want = []Span{{0, 5, "héllo"}}
	if !slices.Equal(got, want) {
		t.Errorf("FindAllByRune returned %v, expected %v", got, want)
	}

	// Empty pattern: one empty window per position.
	got = FindAll("", "ab")
	want = []Span{{0, 0, ""}, {1, 1, ""}, {2, 2, ""}}
	if !slices.Equal(got, want) {
		t.Errorf("FindAll with empty pattern returned %v, expected %v", got, want)
	}
}
