// Package pathenc maps between filesystem paths and the flattened
// directory names Claude Code uses under ~/.claude/projects.
package pathenc

import (
	"os"
	"strings"
)

// Marker is the character substituted for path separators when a project
// path is flattened into a directory name.
const Marker = '-'

// Encode flattens a filesystem path into a directory-name token,
// e.g. "/home/u/Projects/jwst-cosmos" -> "-home-u-Projects-jwst-cosmos".
func Encode(path string) string {
	return strings.ReplaceAll(path, "/", string(Marker))
}

// Decode reverses Encode, e.g. "-home-u-Projects-jwst-cosmos" ->
// "/home/u/Projects/jwst-cosmos".
//
// The encoding is lossy: a hyphen in the token may have been a path
// separator or a literal hyphen inside a component name, so Decode probes
// candidates against the live filesystem. Candidates are tried from the
// most separators down to the fewest and the first existing path wins.
// The candidate space is 2^n in the number of hyphens, but enumeration is
// lazy and stops at the first hit, so the common case (few or zero
// ambiguous hyphens) stays cheap. When nothing on disk matches, every
// hyphen becomes a separator.
func Decode(token string) string {
	if token == "" {
		return ""
	}

	// Hyphen positions after the leading one, which always stands for the
	// root separator.
	var positions []int
	for i := 1; i < len(token); i++ {
		if token[i] == Marker {
			positions = append(positions, i)
		}
	}

	for k := len(positions); k >= 0; k-- {
		var found string
		eachCombination(positions, k, func(chosen []int) bool {
			candidate := buildCandidate(token, chosen)
			if _, err := os.Stat(candidate); err == nil {
				found = candidate
				return false
			}
			return true
		})
		if found != "" {
			return found
		}
	}

	return strings.ReplaceAll(token, string(Marker), "/")
}

// buildCandidate decodes token, converting the leading hyphen and the
// chosen positions to separators while the rest stay literal.
func buildCandidate(token string, chosen []int) string {
	convert := make(map[int]bool, len(chosen))
	for _, p := range chosen {
		convert[p] = true
	}

	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); i++ {
		if token[i] == Marker && (i == 0 || convert[i]) {
			b.WriteByte('/')
		} else {
			b.WriteByte(token[i])
		}
	}
	return b.String()
}

// eachCombination calls fn for every k-element subset of items in
// lexicographic order, stopping as soon as fn returns false. The slice
// passed to fn is reused between calls.
func eachCombination(items []int, k int, fn func([]int) bool) {
	if k == 0 {
		fn(nil)
		return
	}
	if len(items) < k {
		return
	}

	combo := make([]int, 0, k)
	var walk func(start int) bool
	walk = func(start int) bool {
		if len(combo) == k {
			return fn(combo)
		}
		for i := start; i <= len(items)-(k-len(combo)); i++ {
			combo = append(combo, items[i])
			if !walk(i + 1) {
				return false
			}
			combo = combo[:len(combo)-1]
		}
		return true
	}
	walk(0)
}
