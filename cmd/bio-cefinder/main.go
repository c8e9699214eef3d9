package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/cefinder/cefinder"
)

var (
	inPath     = flag.String("in", "", "Input FASTA path; may instead be given as the positional argument")
	coreSeq    = flag.String("core", cefinder.DefaultOpts.CoreSeq, "Core motif")
	ceSeq      = flag.String("ce", cefinder.DefaultOpts.CESeq, "37CE motif")
	outPath    = flag.String("out", cefinder.DefaultOpts.OutputPath, "Output path; a .gz suffix compresses the output")
	format     = flag.String("format", cefinder.DefaultOpts.Format, "Output format; 'csv' and 'tsv' supported")
	ignoreCase = flag.Bool("ignore-case", cefinder.DefaultOpts.IgnoreCase, "Match motifs regardless of letter case")
)

func bioCEFinderUsage() {
	fmt.Printf("Usage: %s [OPTIONS] fapath\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = bioCEFinderUsage
	shutdown := grail.Init()
	defer shutdown()

	opts := cefinder.DefaultOpts
	opts.InputPath = *inPath
	switch args := flag.Args(); {
	case len(args) == 1 && *inPath == "":
		opts.InputPath = args[0]
	case len(args) > 0:
		log.Fatalf("Expected one FASTA path (either -in or positional); please check flag syntax: '%s'", strings.Join(args, " "))
	case *inPath == "":
		log.Fatalf("Missing positional argument (fapath required)")
	}
	opts.CoreSeq = *coreSeq
	opts.CESeq = *ceSeq
	opts.OutputPath = *outPath
	opts.Format = *format
	opts.IgnoreCase = *ignoreCase

	ctx := vcontext.Background()
	if err := cefinder.Run(ctx, opts); err != nil {
		log.Fatalf("bio-cefinder: %v", err)
	}
	log.Debug.Printf("exiting")
}
