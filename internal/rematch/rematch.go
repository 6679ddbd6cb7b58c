// Package rematch contains the core implementation of the matching and
// scanning logic. It is intended for internal use by the parent goregex package.
package rematch

import (
	"bytes"
	"slices"
	"strings"
)

const (
	// Metacharacters understood by the engine. Any other character in a
	// pattern is a literal unit.
	wildcardDot = '.' // matches exactly one arbitrary character
	markerStar  = '*' // zero or more of the immediately preceding unit

	metaChars = ".*"
)

// Match is the internal, generic core matching function. It decides whether
// the whole of s is consumed by the whole of pattern. It acts as a
// dispatcher, attempting several fast-path optimizations before falling back
// to the full recursive match for complex patterns.
//
// Every input is valid: there is no malformed-pattern condition. A '*' with
// no preceding unit is an ordinary literal character.
func Match[T ~string | ~[]byte | ~[]rune](pattern, s T) bool {
	if len(pattern) == 0 {
		return len(s) == 0
	}

	// Fast path for the most common case: the universal pattern.
	switch p := any(pattern).(type) {
	case string:
		if p == ".*" {
			return true
		}
	case []byte:
		if len(p) == 2 && p[0] == wildcardDot && p[1] == markerStar {
			return true
		}
	case []rune:
		if len(p) == 2 && p[0] == wildcardDot && p[1] == markerStar {
			return true
		}
	}

	// Fast path for patterns without any metacharacters.
	if isExactMatch(pattern, s) {
		return true
	}

	// Fast path for simple patterns like "prefix.*", ".*suffix", or "prefix.*suffix".
	if matched, ok := fastPatternMatch(pattern, s); ok {
		return matched
	}

	// Fallback to the full, recursive implementation for complex patterns.
	return matchGenericRecursive(pattern, s)
}

// fastPatternMatch handles common simple patterns (e.g., "prefix.*") to avoid
// the overhead of the recursive matcher. It returns (matched, handled) where
// handled indicates whether the pattern could be handled by the fast path.
func fastPatternMatch[T ~string | ~[]byte | ~[]rune](pattern, s T) (bool, bool) {
	// This optimization is only implemented for byte-oriented types.
	switch p := any(pattern).(type) {
	case string:
		str := any(s).(string)
		matched, handled := fastPatternMatchString(p, str)
		return matched, handled
	case []byte:
		bytes := any(s).([]byte)
		matched, handled := fastPatternMatchBytes(p, bytes)
		return matched, handled
	}
	return false, false
}

// fastPatternMatchString implements the fast path logic for strings.
// A trailing or leading ".*" is a repeated wildcard unit, so it stands for
// any run of characters; when the rest of the pattern is metacharacter-free
// the whole match reduces to a prefix/suffix check.
func fastPatternMatchString(pattern, s string) (bool, bool) {
	// Handles "prefix.*" if the prefix contains no other metacharacters.
	if prefix, found := strings.CutSuffix(pattern, ".*"); found {
		if !strings.ContainsAny(prefix, metaChars) {
			return strings.HasPrefix(s, prefix), true
		}
	}

	// Handles ".*suffix" if the suffix contains no other metacharacters.
	if suffix, found := strings.CutPrefix(pattern, ".*"); found {
		if !strings.ContainsAny(suffix, metaChars) {
			return strings.HasSuffix(s, suffix), true
		}
	}

	// Handles "prefix.*suffix" if the prefix and suffix contain no other metacharacters.
	if prefix, suffix, found := strings.Cut(pattern, ".*"); found && prefix != "" && suffix != "" {
		if !strings.ContainsAny(prefix, metaChars) && !strings.ContainsAny(suffix, metaChars) {
			matched := len(s) >= len(prefix)+len(suffix) &&
				strings.HasPrefix(s, prefix) &&
				strings.HasSuffix(s, suffix)
			return matched, true
		}
	}

	return false, false
}

// fastPatternMatchBytes implements the fast path logic for byte slices.
func fastPatternMatchBytes(pattern, s []byte) (bool, bool) {
	// Handles "prefix.*" if the prefix contains no other metacharacters.
	if prefix, found := bytes.CutSuffix(pattern, []byte(".*")); found {
		if !bytes.ContainsAny(prefix, metaChars) {
			return bytes.HasPrefix(s, prefix), true
		}
	}

	// Handles ".*suffix" if the suffix contains no other metacharacters.
	if suffix, found := bytes.CutPrefix(pattern, []byte(".*")); found {
		if !bytes.ContainsAny(suffix, metaChars) {
			return bytes.HasSuffix(s, suffix), true
		}
	}

	// Handles "prefix.*suffix" if the prefix and suffix contain no other metacharacters.
	if prefix, suffix, found := bytes.Cut(pattern, []byte(".*")); found && len(prefix) > 0 && len(suffix) > 0 {
		if !bytes.ContainsAny(prefix, metaChars) && !bytes.ContainsAny(suffix, metaChars) {
			matched := len(s) >= len(prefix)+len(suffix) &&
				bytes.HasPrefix(s, prefix) &&
				bytes.HasSuffix(s, suffix)
			return matched, true
		}
	}

	return false, false
}

// isExactMatch is an optimization that checks if the pattern contains no
// metacharacters and, if so, performs a simple equality check. A pattern
// without '.' or '*' can only match a string of exactly its own length.
func isExactMatch[T ~string | ~[]byte | ~[]rune](pattern, s T) bool {
	if len(pattern) != len(s) {
		return false
	}

	// Check if pattern has no metacharacters using optimized methods for each type.
	switch p := any(pattern).(type) {
	case string:
		if strings.ContainsAny(p, metaChars) {
			return false
		}
	case []byte:
		if bytes.ContainsAny(p, metaChars) {
			return false
		}
	case []rune:
		if slices.ContainsFunc(p, func(r rune) bool {
			return r == wildcardDot || r == markerStar
		}) {
			return false
		}
	}

	// If no metacharacters are found, perform a direct equality comparison.
	return equal(pattern, s)
}

// equal provides a generic way to compare two values of the same supported type.
func equal[T ~string | ~[]byte | ~[]rune](a, b T) bool {
	switch va := any(a).(type) {
	case string:
		return va == any(b).(string)
	case []byte:
		return bytes.Equal(va, any(b).([]byte))
	case []rune:
		return slices.Equal(va, any(b).([]rune))
	}
	return false
}

// matchGenericRecursive dispatches to the appropriate recursive implementation
// based on the type of the pattern and string.
func matchGenericRecursive[T ~string | ~[]byte | ~[]rune](pattern, s T) bool {
	switch p := any(pattern).(type) {
	case string:
		return matchRecursive(p, any(s).(string), 0, 0)
	case []byte:
		return matchRecursive(p, any(s).([]byte), 0, 0)
	case []rune:
		return matchRecursiveRunes(p, any(s).([]rune), 0, 0)
	}
	// Should never be reached due to generic type constraints.
	return false
}
