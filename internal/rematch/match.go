/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// This file provides the recursive backtracking engines behind Match.
// The byte-wise engine treats pattern and input as byte sequences and is
// the fastest option for ASCII input; the rune engine operates per code
// point and is the one that handles multi-byte characters correctly.

package rematch

// matchRecursive is the core backtracking algorithm for byte-based types
// (string, []byte). It walks the pattern and input under the following rules:
//   - a literal unit must equal the current input character exactly;
//   - `.` matches exactly one character, any character;
//   - a unit immediately followed by `*` matches zero or more consecutive
//     occurrences of that unit;
//   - a `*` with no preceding unit is an ordinary literal character.
//
// For a repeated unit, the greedy branch (consume one character, stay on the
// unit) is tried first via recursion; the zero-occurrence branch (skip the
// unit and its marker) continues in the loop. Branch order affects only the
// search path, never the accept/reject outcome. Every step advances one of
// the two cursors, so the search always terminates; the worst case is
// exponential because no (pi, si) state is memoized.
func matchRecursive[T ~string | ~[]byte](pattern, s T, pi, si int) bool {
	plen, slen := len(pattern), len(s)

	for pi < plen {
		// Lookahead: a marker right after the current unit makes it repeatable.
		if pi+1 < plen && pattern[pi+1] == markerStar {
			// Greedy branch: consume one occurrence and stay on the same unit.
			if si < slen && (pattern[pi] == wildcardDot || pattern[pi] == s[si]) {
				if matchRecursive(pattern, s, pi, si+1) {
					return true
				}
			}
			// Zero-occurrence branch: skip the unit and its marker.
			pi += 2
			continue
		}

		// Mandatory unit: one input character must be available and satisfy it.
		if si >= slen || (pattern[pi] != wildcardDot && pattern[pi] != s[si]) {
			return false
		}
		pi++
		si++
	}

	// The pattern is exhausted; the match holds only if the input is too.
	return si == slen
}

// matchRecursiveRunes is the core backtracking algorithm for rune-based
// matching. It is structurally identical to matchRecursive but operates on
// slices of runes, so wildcards and repeated units consume whole code points
// instead of single bytes.
func matchRecursiveRunes(pattern, s []rune, pi, si int) bool {
	plen, slen := len(pattern), len(s)

	for pi < plen {
		if pi+1 < plen && pattern[pi+1] == markerStar {
			if si < slen && (pattern[pi] == wildcardDot || pattern[pi] == s[si]) {
				if matchRecursiveRunes(pattern, s, pi, si+1) {
					return true
				}
			}
			pi += 2
			continue
		}

		if si >= slen || (pattern[pi] != wildcardDot && pattern[pi] != s[si]) {
			return false
		}
		pi++
		si++
	}

	return si == slen
}
