// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides byte-array operations on nucleotide sequences.
//
// Sequences are ASCII with one byte per base.  Reversal is delegated to
// base/simd; complementing uses a 256-entry lookup table.
package biosimd
