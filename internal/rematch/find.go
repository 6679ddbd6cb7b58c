package rematch

// Span is a half-open window [Start, End) of the scanned input whose
// contents fully match a pattern. Offsets are in the input's own units:
// bytes for string and []byte input, code points for []rune input.
type Span struct {
	Start int
	End   int
}

// FindAll enumerates every window of s whose contents fully match pattern,
// ordered ascending by Start and, for equal Start, ascending by End.
// Overlapping and nested windows are all reported independently; each
// candidate window is re-matched from scratch, so a scan over an input of
// length n costs O((n+1)(n+2)/2) match calls.
//
// The empty pattern matches only the empty window, so it yields exactly
// len(s)+1 spans, one per position.
func FindAll[T ~string | ~[]byte | ~[]rune](pattern, s T) []Span {
	switch p := any(pattern).(type) {
	case string:
		return findAllString(p, any(s).(string))
	case []byte:
		return findAllBytes(p, any(s).([]byte))
	case []rune:
		return findAllRunes(p, any(s).([]rune))
	}
	// Should never be reached due to generic type constraints.
	return nil
}

// findAllString implements the window scan for strings.
func findAllString(pattern, s string) []Span {
	var spans []Span
	for start := 0; start <= len(s); start++ {
		for end := start; end <= len(s); end++ {
			if Match(pattern, s[start:end]) {
				spans = append(spans, Span{Start: start, End: end})
			}
		}
	}
	return spans
}

// findAllBytes implements the window scan for byte slices.
func findAllBytes(pattern, s []byte) []Span {
	var spans []Span
	for start := 0; start <= len(s); start++ {
		for end := start; end <= len(s); end++ {
			if Match(pattern, s[start:end]) {
				spans = append(spans, Span{Start: start, End: end})
			}
		}
	}
	return spans
}

// findAllRunes implements the window scan for rune slices.
func findAllRunes(pattern, s []rune) []Span {
	var spans []Span
	for start := 0; start <= len(s); start++ {
		for end := start; end <= len(s); end++ {
			if Match(pattern, s[start:end]) {
				spans = append(spans, Span{Start: start, End: end})
			}
		}
	}
	return spans
}
