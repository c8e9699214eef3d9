package cefinder

import (
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/cefinder/encoding/fasta"
	"github.com/klauspost/compress/gzip"
)

// Stats summarizes a run.
type Stats struct {
	// Records is the number of FASTA records scanned.
	Records int
	// Rows is the number of pairs written.
	Rows int
}

// Run scans opts.InputPath and writes one row per core/CE pair to
// opts.OutputPath.
func Run(ctx context.Context, opts Opts) error {
	_, err := RunWithStats(ctx, opts)
	return err
}

// RunWithStats is Run, also returning counts of what was processed.
//
// Errors are fatal to the run: opening the input yields a NotExist error,
// malformed FASTA an Invalid error, and output failures keep the kind of the
// underlying error.
func RunWithStats(ctx context.Context, opts Opts) (stats Stats, err error) {
	if err = opts.validate(); err != nil {
		return
	}
	var in file.File
	if in, err = file.Open(ctx, opts.InputPath); err != nil {
		err = errors.E(errors.NotExist, "cefinder: open input", opts.InputPath, err)
		return
	}
	defer file.CloseAndReport(ctx, in, &err)
	reader, _ := compress.NewReader(in.Reader(ctx))
	defer func() {
		if e := reader.Close(); e != nil && err == nil {
			err = errors.E(e, "cefinder: read input", opts.InputPath)
		}
	}()

	var out file.File
	if out, err = file.Create(ctx, opts.OutputPath); err != nil {
		err = errors.E(err, "cefinder: create output", opts.OutputPath)
		return
	}
	defer file.CloseAndReport(ctx, out, &err)
	var w io.Writer = out.Writer(ctx)
	if strings.HasSuffix(opts.OutputPath, ".gz") {
		gz := gzip.NewWriter(w)
		defer func() {
			if e := gz.Close(); e != nil && err == nil {
				err = errors.E(e, "cefinder: write output", opts.OutputPath)
			}
		}()
		w = gz
	}

	rows := newRowWriter(w, opts.Format)
	if err = rows.WriteHeader(); err != nil {
		err = errors.E(err, "cefinder: write output", opts.OutputPath)
		return
	}
	sc := fasta.NewScanner(reader)
	var rec fasta.Record
	for sc.Scan(&rec) {
		stats.Records++
		pairs := Pairs(rec, opts.CoreSeq, opts.CESeq, opts.IgnoreCase)
		log.Debug.Printf("%s: %d bases, %d pairs", rec.ID, len(rec.Seq), len(pairs))
		for _, p := range pairs {
			if err = rows.Write(p); err != nil {
				err = errors.E(err, "cefinder: write output", opts.OutputPath)
				return
			}
		}
		stats.Rows += len(pairs)
	}
	if err = sc.Err(); err != nil {
		err = errors.E(errors.Invalid, "cefinder: parse", opts.InputPath, err)
		return
	}
	if err = rows.Flush(); err != nil {
		err = errors.E(err, "cefinder: write output", opts.OutputPath)
		return
	}
	log.Printf("cefinder: %s: %d records, %d pairs written to %s",
		opts.InputPath, stats.Records, stats.Rows, opts.OutputPath)
	return
}
