package cefinder

import (
	"github.com/grailbio/base/errors"
)

// Opts configures a run.
type Opts struct {
	// InputPath is the FASTA file to scan.  Gzip, bzip2 and zstd compressed
	// input is detected from its contents.
	InputPath string
	// CoreSeq is the core motif.
	CoreSeq string
	// CESeq is the 37CE motif.
	CESeq string
	// OutputPath is the destination.  A ".gz" suffix gzip-compresses the
	// output.
	OutputPath string
	// Format is FormatCSV or FormatTSV.
	Format string
	// IgnoreCase matches motifs regardless of letter case.  By default
	// matching is case-sensitive.
	IgnoreCase bool
}

// DefaultOpts holds the default motifs and output settings.
var DefaultOpts = Opts{
	CoreSeq:    "ttaccgtaaaaaagtga",
	CESeq:      "ttgaaac",
	OutputPath: "output_results.csv",
	Format:     FormatCSV,
}

func (o *Opts) validate() error {
	switch {
	case o.InputPath == "":
		return errors.E(errors.Invalid, "cefinder: input path not set")
	case o.OutputPath == "":
		return errors.E(errors.Invalid, "cefinder: output path not set")
	case o.CoreSeq == "":
		return errors.E(errors.Invalid, "cefinder: core motif is empty")
	case o.CESeq == "":
		return errors.E(errors.Invalid, "cefinder: CE motif is empty")
	}
	switch o.Format {
	case "":
		o.Format = FormatCSV
	case FormatCSV, FormatTSV:
	default:
		return errors.E(errors.Invalid, "cefinder: unknown output format", o.Format)
	}
	return nil
}
