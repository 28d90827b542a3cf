// Package search drives a partial.Hasher over a buffer, reporting every
// split index whose partial-variant CRC-32 equals a target value. It also
// provides the brute-force oracle used by tests and by the CLI's -verify
// flag.
package search

import (
	"github.com/hcs64/crc-init-trunc/internal/crc32table"
	"github.com/hcs64/crc-init-trunc/partial"
)

// Match identifies a split index and the (target-equal) CRC-32 value its
// partial variant produced.
type Match struct {
	K   int
	CRC uint32
}

// Iterate calls fn once for every split index k whose partial-variant
// CRC-32 equals target, in the order partial.Hasher emits them: decreasing
// k, from len(buf) down to 0.
func Iterate(buf []byte, mode partial.Mode, target uint32, fn func(Match)) {
	h := partial.New(buf, mode)
	for k := len(buf); ; k-- {
		crc, ok := h.Next()
		if !ok {
			return
		}
		if crc == target {
			fn(Match{K: k, CRC: crc})
		}
	}
}

// Find returns every matching split index as a slice, in the same
// decreasing-k order as Iterate.
func Find(buf []byte, mode partial.Mode, target uint32) []Match {
	var matches []Match
	Iterate(buf, mode, target, func(m Match) {
		matches = append(matches, m)
	})
	return matches
}

// Oracle independently computes the CRC-32 of the partial variant at split
// index k by materializing the zeroed buffer and hashing it whole. It does
// O(len(buf)) work per call and exists for cross-checking the Hasher, not
// for production search.
func Oracle(buf []byte, mode partial.Mode, k int) uint32 {
	variant := make([]byte, len(buf))
	switch mode {
	case partial.TruncateEnd:
		copy(variant, buf[:k])
	default: // TruncateStart
		copy(variant[k:], buf[k:])
	}
	return crc32table.Whole(variant)
}
