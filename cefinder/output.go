package cefinder

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/grailbio/base/tsv"
)

// Output formats.
const (
	FormatCSV = "csv"
	FormatTSV = "tsv"
)

// Columns is the output header.
var Columns = []string{
	"contig_name",
	"core_sequence_orientation",
	"core_sequence_start_position",
	"core_sequence_end_position",
	"37CE_sequence_orientation",
	"37CE_start_position",
	"37CE_end_position",
	"distance",
}

type rowWriter interface {
	WriteHeader() error
	Write(p Pair) error
	Flush() error
}

func newRowWriter(w io.Writer, format string) rowWriter {
	if format == FormatTSV {
		return &tsvRowWriter{w: tsv.NewWriter(w)}
	}
	return &csvRowWriter{w: csv.NewWriter(w)}
}

type csvRowWriter struct {
	w   *csv.Writer
	buf [8]string
}

func (c *csvRowWriter) WriteHeader() error {
	return c.w.Write(Columns)
}

func (c *csvRowWriter) Write(p Pair) error {
	c.buf = [8]string{
		p.ContigName,
		p.CoreOrientation.String(),
		strconv.Itoa(p.CoreStart),
		strconv.Itoa(p.CoreEnd),
		p.CEOrientation.String(),
		strconv.Itoa(p.CEStart),
		strconv.Itoa(p.CEEnd),
		strconv.Itoa(p.Distance),
	}
	return c.w.Write(c.buf[:])
}

func (c *csvRowWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

type tsvRowWriter struct {
	w *tsv.Writer
}

func (t *tsvRowWriter) WriteHeader() error {
	for _, col := range Columns {
		t.w.WriteString(col)
	}
	return t.w.EndLine()
}

func (t *tsvRowWriter) Write(p Pair) error {
	t.w.WriteString(p.ContigName)
	t.w.WriteString(p.CoreOrientation.String())
	t.w.WriteInt64(int64(p.CoreStart))
	t.w.WriteInt64(int64(p.CoreEnd))
	t.w.WriteString(p.CEOrientation.String())
	t.w.WriteInt64(int64(p.CEStart))
	t.w.WriteInt64(int64(p.CEEnd))
	t.w.WriteInt64(int64(p.Distance))
	return t.w.EndLine()
}

func (t *tsvRowWriter) Flush() error {
	return t.w.Flush()
}
