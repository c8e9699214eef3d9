package cefinder

import (
	"github.com/grailbio/cefinder/biosimd"
	"github.com/grailbio/cefinder/encoding/fasta"
	"github.com/grailbio/cefinder/motif"
)

// Orientation is the strand a motif occurrence was found on.
type Orientation uint8

const (
	// Forward is the sequence as read from the FASTA file.
	Forward Orientation = iota
	// Reverse is the reverse complement of the sequence.
	Reverse
)

// String returns "forward" or "reverse".
func (o Orientation) String() string {
	if o == Reverse {
		return "reverse"
	}
	return "forward"
}

// Pair is one output row: a core occurrence and a CE occurrence on the same
// strand of one record.
type Pair struct {
	ContigName      string
	CoreOrientation Orientation
	CoreStart       int
	CoreEnd         int
	CEOrientation   Orientation
	CEStart         int
	CEEnd           int
	// Distance is |CoreStart-CEStart|.
	Distance int
}

// CrossProduct calls fn for every (a, b) with a from as and b from bs, in
// a-major order.
func CrossProduct(as, bs []int, fn func(a, b int)) {
	for _, a := range as {
		for _, b := range bs {
			fn(a, b)
		}
	}
}

func newPair(contig string, o Orientation, corePos, coreLen, cePos, ceLen int) Pair {
	dist := corePos - cePos
	if dist < 0 {
		dist = -dist
	}
	return Pair{
		ContigName:      contig,
		CoreOrientation: o,
		CoreStart:       corePos,
		CoreEnd:         corePos + coreLen,
		CEOrientation:   o,
		CEStart:         cePos,
		CEEnd:           cePos + ceLen,
		Distance:        dist,
	}
}

// Pairs returns every core/CE pair in rec.  Forward pairs come first, then
// reverse pairs; each group is ordered by core position, then CE position.
// A strand lacking either motif contributes nothing.
func Pairs(rec fasta.Record, core, ce string, ignoreCase bool) []Pair {
	find := motif.Find
	if ignoreCase {
		find = motif.FindFold
	}
	strands := [...]struct {
		orientation Orientation
		seq         string
	}{
		{Forward, rec.Seq},
		{Reverse, biosimd.ReverseCompString(rec.Seq)},
	}
	var pairs []Pair
	for _, s := range strands {
		corePos := find(s.seq, core)
		cePos := find(s.seq, ce)
		CrossProduct(corePos, cePos, func(c, e int) {
			pairs = append(pairs, newPair(rec.ID, s.orientation, c, len(core), e, len(ce)))
		})
	}
	return pairs
}
