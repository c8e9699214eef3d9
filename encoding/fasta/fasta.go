// Package fasta contains code for reading FASTA files one record at a time.
// FASTA files consist of a number of named sequences that may be interrupted
// by newlines.  For example:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// Note: Sequence names are defined to be the stretch of characters excluding
// whitespace immediately after '>'.  Any text appearing after a space or tab
// is ignored.  For example, '>chr1 A viral sequence' becomes 'chr1'.
package fasta

import (
	"bufio"
	"bytes"
	"io"

	gerrors "github.com/grailbio/base/errors"
	"github.com/pkg/errors"
)

const (
	bufferInitSize = 1024 * 1024 * 300 // 300 MB
)

var (
	// ErrMalformed is returned when sequence data appears before the first
	// header line.
	ErrMalformed = gerrors.E(gerrors.Invalid, "malformed FASTA file: sequence data before first header")
	// ErrNoName is returned for a header line that carries no sequence name.
	ErrNoName = gerrors.E(gerrors.Invalid, "malformed FASTA file: header without a sequence name")
)

// A Record is one named FASTA sequence.  Seq has all whitespace removed and
// keeps the case of the input.
type Record struct {
	ID, Seq string
}

var errEOF = errors.New("eof")

// Scanner provides a convenient interface for reading FASTA records in file
// order. The Scan method fills in the next record, returning a boolean
// indicating whether the read succeeded. Scanners are not threadsafe, and a
// Scanner makes a single pass over its reader.
//
// Scanner does not validate the sequence alphabet.
type Scanner struct {
	b      *bufio.Scanner
	err    error
	line   int
	nextID string // name of a header that has been read but not returned
	header bool   // whether nextID is valid
	seq    []byte
}

// NewScanner constructs a new Scanner that reads raw FASTA data from the
// provided reader.
func NewScanner(r io.Reader) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(nil, bufferInitSize)
	return &Scanner{b: b}
}

// Scan the next record into the provided record. Scan returns a boolean
// indicating whether the scan succeeded. Once Scan returns false, it
// never returns true again. Upon completion, the user should check
// the Err method to determine whether scanning stopped because of an
// error or because the end of the stream was reached.
func (s *Scanner) Scan(rec *Record) bool {
	if s.err != nil {
		return false
	}
	if !s.header && !s.scanHeader() {
		return false
	}
	rec.ID = s.nextID
	s.header = false
	s.seq = s.seq[:0]
	for s.scanLine() {
		line := s.b.Bytes()
		if len(line) > 0 && line[0] == '>' {
			if s.nextID, s.err = s.parseHeader(line); s.err != nil {
				return false
			}
			s.header = true
			break
		}
		s.seq = appendBases(s.seq, line)
	}
	if s.err != nil && s.err != errEOF {
		return false
	}
	rec.Seq = string(s.seq)
	return true
}

// scanHeader skips blank lines and reads the first header of the file.
func (s *Scanner) scanHeader() bool {
	for s.scanLine() {
		line := bytes.TrimSpace(s.b.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] != '>' {
			s.err = errors.Wrapf(ErrMalformed, "line %d", s.line)
			return false
		}
		if s.nextID, s.err = s.parseHeader(line); s.err != nil {
			return false
		}
		s.header = true
		return true
	}
	return false
}

func (s *Scanner) scanLine() bool {
	if !s.b.Scan() {
		if err := s.b.Err(); err != nil {
			s.err = errors.Wrap(err, "couldn't read FASTA data")
		} else {
			s.err = errEOF
		}
		return false
	}
	s.line++
	return true
}

func (s *Scanner) parseHeader(line []byte) (string, error) {
	fields := bytes.Fields(line[1:])
	if len(fields) == 0 {
		return "", errors.Wrapf(ErrNoName, "line %d", s.line)
	}
	return string(fields[0]), nil
}

// appendBases appends line to dst with all ASCII whitespace removed.
func appendBases(dst, line []byte) []byte {
	for _, c := range line {
		switch c {
		case ' ', '\t', '\r', '\n', '\v', '\f':
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

// Err returns the scanning error, if any.
func (s *Scanner) Err() error {
	if s.err == errEOF {
		return nil
	}
	return s.err
}
