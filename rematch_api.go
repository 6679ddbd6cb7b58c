// Package goregex provides a minimal regular-expression engine for deciding
// whether a string fully matches a pattern made of literal characters, the
// `.` wildcard, and the postfix `*` repetition operator, and for enumerating
// every substring of a text that fully matches such a pattern.
//
// For Unicode-aware matching, see the 'ByRune' variants of the functions.
//
// # Supported pattern syntax:
//
//   - a literal character matches exactly that character.
//   - `.`: matches exactly one arbitrary character (including whitespace).
//   - `*`: applied to the immediately preceding unit, matches zero or more
//     consecutive occurrences of that unit (e.g. `a*`, `.*`).
//
// There is no invalid-pattern condition: every string is a usable pattern,
// and a `*` with no preceding unit is matched as a literal `*` character.
// Matching is always anchored at both ends: the whole input must be consumed
// by the whole pattern. All functions are pure and safe for concurrent use.
package goregex

import (
	"github.com/twinfer/goregex/internal/rematch"
)

// Match returns true if the pattern fully matches the string s. It is the
// fastest matching function in this package, optimized for performance by
// operating on bytes.
//
// This function is ideal for ASCII strings or when byte-wise comparison is
// sufficient. It does NOT correctly handle multi-byte Unicode characters:
// a `.` or a repeated unit consumes single bytes, not code points. For
// Unicode-aware matching, use MatchByRune.
func Match(pattern, s string) bool {
	return rematch.Match(pattern, s)
}

// MatchByRune returns true if the pattern fully matches the string s, with
// full support for Unicode characters. It operates on runes instead of
// bytes, so a `.` consumes a whole code point and `x*` repeats a whole code
// point even when x is multi-byte (e.g. `é*`).
//
// This function should be used when the input strings may contain non-ASCII
// characters. The correctness comes with a performance cost compared to the
// byte-wise Match function, as it involves converting strings to rune slices.
func MatchByRune(pattern, s string) bool {
	return rematch.Match([]rune(pattern), []rune(s))
}

// MatchFromByte returns true if the pattern fully matches the byte slice s.
// It is functionally equivalent to Match but operates directly on byte
// slices, which can prevent string-to-slice conversion allocations in
// performance-sensitive code.
func MatchFromByte(pattern, s []byte) bool {
	return rematch.Match(pattern, s)
}

// Span is one scanner result: the half-open window [Start, End) of the
// scanned text whose contents fully match the pattern, together with the
// matched substring itself.
type Span struct {
	Start int
	End   int
	Text  string
}

// FindAll enumerates every window of s whose contents fully match the
// pattern, ordered ascending by Start and, for equal Start, ascending by
// End. Overlapping and nested windows are all reported independently; this
// is exhaustive enumeration, not the leftmost-longest search of typical
// regex engines. Offsets are byte offsets into s.
//
// The empty pattern matches only the empty window, so it yields exactly
// len(s)+1 spans, one per byte position.
func FindAll(pattern, s string) []Span {
	windows := rematch.FindAll(pattern, s)
	spans := make([]Span, len(windows))
	for i, w := range windows {
		spans[i] = Span{Start: w.Start, End: w.End, Text: s[w.Start:w.End]}
	}
	return spans
}

// FindAllByRune is the Unicode-aware variant of FindAll. It scans per code
// point, so Start and End are rune offsets into s rather than byte offsets,
// and wildcards inside the pattern consume whole code points.
func FindAllByRune(pattern, s string) []Span {
	p, r := []rune(pattern), []rune(s)
	windows := rematch.FindAll(p, r)
	spans := make([]Span, len(windows))
	for i, w := range windows {
		spans[i] = Span{Start: w.Start, End: w.End, Text: string(r[w.Start:w.End])}
	}
	return spans
}

// FindAllFromByte is the byte-slice variant of FindAll. Offsets are byte
// offsets into s; the matched windows are returned as strings.
func FindAllFromByte(pattern, s []byte) []Span {
	windows := rematch.FindAll(pattern, s)
	spans := make([]Span, len(windows))
	for i, w := range windows {
		spans[i] = Span{Start: w.Start, End: w.End, Text: string(s[w.Start:w.End])}
	}
	return spans
}
