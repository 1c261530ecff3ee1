package util

import "regexp"

// const
const (
	// course input: first line "k [t]" before the sequences
	HeaderFields = 2
	// default sequence name prefix, seq1 seq2 ...
	SeqNamePrefix = "seq"
	// longest input line, one whole sequence per line
	MaxLineSize = 64 * 1024 * 1024
)

// regexp
var (
	// ACGT valid sequence
	ACGT = regexp.MustCompile(`^[ACGT]*$`)
	// header line of integers
	Header = regexp.MustCompile(`^\d+(\s+\d+)*$`)
	// blank or comment line
	Skip = regexp.MustCompile(`^\s*(#.*)?$`)
)
