/*
Package cefinder locates a "core" motif and a "37CE" motif in FASTA sequences
and reports the distance between every co-stranded pair of occurrences.

Each record is searched on the forward strand and on its reverse complement.
On each strand every core occurrence is paired with every CE occurrence, and
one row is written per pair:

  contig_name,core_sequence_orientation,core_sequence_start_position,...

Positions are 0-based half-open offsets into the strand the motif was found
on, so reverse-strand positions count from the end of the forward sequence.
Rows are written in record order; within a record forward rows precede
reverse rows, ordered by core position then CE position.

The output file is opened once for the whole run and is always closed, even
on error.  A run that fails leaves an incomplete output file.
*/
package cefinder
