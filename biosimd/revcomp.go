// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

import (
	"github.com/grailbio/base/simd"
	"github.com/grailbio/base/unsafe"
)

// complementPairs lists the IUPAC nucleotide codes and their complements.
// S, W and N are their own complements.  Lowercase codes complement to
// lowercase.
var complementPairs = [...][2]byte{
	{'A', 'T'}, {'C', 'G'},
	{'R', 'Y'}, {'K', 'M'},
	{'B', 'V'}, {'D', 'H'},
	{'S', 'S'}, {'W', 'W'}, {'N', 'N'},
}

// revCompTable maps every byte to its complement.  Bytes which are not IUPAC
// nucleotide codes (e.g. 'X', 'U', '-', '*') map to themselves.
var revCompTable [256]byte

func init() {
	for i := range revCompTable {
		revCompTable[i] = byte(i)
	}
	for _, p := range complementPairs {
		upper0, upper1 := p[0], p[1]
		lower0, lower1 := upper0+'a'-'A', upper1+'a'-'A'
		revCompTable[upper0], revCompTable[upper1] = upper1, upper0
		revCompTable[lower0], revCompTable[lower1] = lower1, lower0
	}
}

// Complement returns the complement of a single base, per the table above.
func Complement(b byte) byte {
	return revCompTable[b]
}

// ReverseCompInplace reverse-complements ascii8[], assuming that it's using
// ASCII encoding.  Case is preserved: 'a' maps to 't' and 'A' maps to 'T'.
// Bytes other than IUPAC nucleotide codes are moved but left unchanged, so
// positions on the reverse strand stay aligned with the forward strand.
//
// Applying it twice restores the original contents.
func ReverseCompInplace(ascii8 []byte) {
	simd.Reverse8Inplace(ascii8)
	for i, c := range ascii8 {
		ascii8[i] = revCompTable[c]
	}
}

// ReverseComp writes the reverse-complement of src[] to dst[].
// It panics if len(dst) != len(src).
func ReverseComp(dst, src []byte) {
	if len(dst) != len(src) {
		panic("ReverseComp() requires len(dst) == len(src).")
	}
	simd.Reverse8(dst, src)
	for i, c := range dst {
		dst[i] = revCompTable[c]
	}
}

// ReverseCompString returns the reverse-complement of seq.
func ReverseCompString(seq string) string {
	if len(seq) == 0 {
		return ""
	}
	dst := make([]byte, len(seq))
	ReverseComp(dst, unsafe.StringToBytes(seq))
	return unsafe.BytesToString(dst)
}
