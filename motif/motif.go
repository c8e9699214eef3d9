// Package motif locates exact occurrences of short sequence motifs.
package motif

import "strings"

// Occurrence is a match of a motif in a sequence, as a 0-based half-open
// interval [Start, End).
type Occurrence struct {
	Start, End int
}

// Find returns the start offset of every occurrence of motif in seq, in
// increasing order.  Overlapping occurrences are all reported: after a match
// at i the search resumes at i+1.  Comparison is byte-exact, so it is case
// sensitive.
//
// An empty motif, or one longer than seq, has no occurrences.
func Find(seq, motif string) []int {
	if len(motif) == 0 || len(motif) > len(seq) {
		return nil
	}
	var pos []int
	for off := 0; off+len(motif) <= len(seq); {
		i := strings.Index(seq[off:], motif)
		if i < 0 {
			break
		}
		pos = append(pos, off+i)
		off += i + 1
	}
	return pos
}

// FindFold is like Find, but ASCII letters match regardless of case.
func FindFold(seq, motif string) []int {
	return Find(lowerASCII(seq), lowerASCII(motif))
}

// Occurrences returns the occurrences of motif in seq as intervals.
func Occurrences(seq, motif string) []Occurrence {
	pos := Find(seq, motif)
	if len(pos) == 0 {
		return nil
	}
	occ := make([]Occurrence, len(pos))
	for i, p := range pos {
		occ[i] = Occurrence{Start: p, End: p + len(motif)}
	}
	return occ
}

// lowerASCII lowercases 'A'-'Z' only, so byte offsets are unchanged.
func lowerASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
