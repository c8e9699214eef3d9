package fasta_test

import (
	"flag"
	"strings"
	"testing"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/cefinder/encoding/fasta"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
)

func readAll(t *testing.T, data string) ([]fasta.Record, error) {
	var (
		sc   = fasta.NewScanner(strings.NewReader(data))
		recs []fasta.Record
		rec  fasta.Record
	)
	for sc.Scan(&rec) {
		recs = append(recs, rec)
	}
	return recs, sc.Err()
}

func TestScan(t *testing.T) {
	fastaData := ">seq1\n" + "ACGTA\nCGTAC\nGT\n" + ">seq2 A viral sequence\n" + "acgt\n" + "ACGT\n"
	recs, err := readAll(t, fastaData)
	assert.NoError(t, err)
	expect.EQ(t, recs, []fasta.Record{
		{ID: "seq1", Seq: "ACGTACGTACGT"},
		{ID: "seq2", Seq: "acgtACGT"},
	})
}

func TestScanWhitespace(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []fasta.Record
	}{
		{"crlf", ">E0\r\nGGGG\r\n>E1\r\nAAAAA\r\n", []fasta.Record{{"E0", "GGGG"}, {"E1", "AAAAA"}}},
		{"no_final_newline", ">E0\nGGGG\n>E1\nCCCCC\nAAAAA", []fasta.Record{{"E0", "GGGG"}, {"E1", "CCCCCAAAAA"}}},
		{"blank_lines", "\n\n>E0\nGG\n\nGG\n  \n>E1\n", []fasta.Record{{"E0", "GGGG"}, {"E1", ""}}},
		{"tab_in_header", ">E0\tdesc\nAC GT\tN\n", []fasta.Record{{"E0", "ACGTN"}}},
		{"empty_records", ">a\n>b\n>c\n", []fasta.Record{{"a", ""}, {"b", ""}, {"c", ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := readAll(t, tt.data)
			assert.NoError(t, err)
			expect.EQ(t, recs, tt.want)
		})
	}
}

func TestScanEmpty(t *testing.T) {
	for _, data := range []string{"", "\n", "\n  \n"} {
		recs, err := readAll(t, data)
		assert.NoError(t, err)
		expect.EQ(t, len(recs), 0)
	}
}

func TestScanMalformed(t *testing.T) {
	recs, err := readAll(t, "ACGT\n>seq1\nACGT\n")
	expect.EQ(t, len(recs), 0)
	expect.EQ(t, errors.Cause(err), fasta.ErrMalformed)
	assert.Regexp(t, err, "line 1")

	recs, err = readAll(t, ">seq1\nACGT\n> \nACGT\n")
	expect.EQ(t, len(recs), 0)
	expect.EQ(t, errors.Cause(err), fasta.ErrNoName)
	assert.Regexp(t, err, "line 3")
}

func TestScanStopsAfterEOF(t *testing.T) {
	sc := fasta.NewScanner(strings.NewReader(">a\nAC\n"))
	var rec fasta.Record
	assert.True(t, sc.Scan(&rec))
	expect.EQ(t, rec, fasta.Record{ID: "a", Seq: "AC"})
	assert.False(t, sc.Scan(&rec))
	assert.False(t, sc.Scan(&rec))
	assert.NoError(t, sc.Err())
}

func TestScanLongLine(t *testing.T) {
	seq := strings.Repeat("ACGT", 1<<18)
	recs, err := readAll(t, ">long\n"+seq+"\n")
	assert.NoError(t, err)
	expect.EQ(t, len(recs), 1)
	expect.EQ(t, len(recs[0].Seq), len(seq))
}

var pathFlag = flag.String("path", "", "FASTA file used by benchmarks")

func BenchmarkScan(b *testing.B) {
	if *pathFlag == "" {
		b.Skip("--path not set")
	}
	ctx := vcontext.Background()
	for i := 0; i < b.N; i++ {
		in, err := file.Open(ctx, *pathFlag)
		assert.NoError(b, err)
		sc := fasta.NewScanner(in.Reader(ctx))
		var rec fasta.Record
		for sc.Scan(&rec) {
		}
		assert.NoError(b, sc.Err())
		assert.NoError(b, in.Close(ctx))
	}
}
