/*
bio-cefinder reports the distance between every "core" motif occurrence and
every "37CE" motif occurrence on the same strand of each sequence in a FASTA
file.  Both the forward strand and its reverse complement are searched, and
overlapping occurrences are all reported.

Output is a CSV file with the columns

  contig_name, core_sequence_orientation, core_sequence_start_position,
  core_sequence_end_position, 37CE_sequence_orientation, 37CE_start_position,
  37CE_end_position, distance

Positions are 0-based, half-open offsets into the strand the motif was found
on.

Sample usage:
bio-cefinder \
    --core ttaccgtaaaaaagtga \
    --ce ttgaaac \
    --out results.csv \
    contigs.fasta
*/
package main
