package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"

	"github.com/liserjrqlxue/motif/pkg/motif"
)

// Input is a motif search task: k, the optional t of the header and the sequences
type Input struct {
	K   int
	T   int
	Dna []string
}

// LoadLines reads all lines of path, "-" for stdin
func LoadLines(path string) []string {
	if path == "-" {
		return simpleUtil.HandleError(ReadLines(os.Stdin))
	}
	return textUtil.File2Array(path)
}

func ReadLines(in io.Reader) (lines []string, err error) {
	var scan = bufio.NewScanner(in)
	scan.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scan.Scan() {
		lines = append(lines, scan.Text())
	}
	err = scan.Err()
	return
}

// LoadInput reads path with ReadInput, "-" for stdin
func LoadInput(path string) (*Input, error) {
	if path == "-" {
		return ReadInput(os.Stdin)
	}
	var in = osUtil.Open(path)
	defer simpleUtil.DeferClose(in)
	return ReadInput(in)
}

// ReadInput parses the course format:
//
//	k [t]
//	SEQ1
//	SEQ2
//
// The header is optional, blank and # lines are skipped, sequences are upper-cased.
func ReadInput(in io.Reader) (*Input, error) {
	lines, err := ReadLines(in)
	if err != nil {
		return nil, err
	}
	return ParseInput(lines)
}

func ParseInput(lines []string) (*Input, error) {
	var input = &Input{}
	for i, line := range lines {
		if Skip.MatchString(line) {
			continue
		}
		line = strings.TrimSpace(line)
		if input.Dna == nil && input.K == 0 && Header.MatchString(line) {
			fields := strings.Fields(line)
			if len(fields) > HeaderFields {
				return nil, fmt.Errorf("%w: line %d: header has %d fields", motif.ErrInvalidInput, i+1, len(fields))
			}
			var err error
			input.K, err = strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: header k: %v", motif.ErrInvalidInput, i+1, err)
			}
			if len(fields) > 1 {
				input.T, err = strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: header t: %v", motif.ErrInvalidInput, i+1, err)
				}
			}
			continue
		}
		seq := strings.ToUpper(line)
		if !ACGT.MatchString(seq) {
			return nil, fmt.Errorf("%w: line %d: not a DNA sequence: %q", motif.ErrInvalidInput, i+1, line)
		}
		input.Dna = append(input.Dna, seq)
	}
	if input.T > 0 && input.T != len(input.Dna) {
		return nil, fmt.Errorf("%w: header announces %d sequences, got %d", motif.ErrInvalidInput, input.T, len(input.Dna))
	}
	return input, nil
}

// SeqNames names sequences seq1..seqN in input order
func SeqNames(n int) []string {
	var names = make([]string, n)
	for i := range names {
		names[i] = SeqNamePrefix + strconv.Itoa(i+1)
	}
	return names
}

// from https://forum.golangbridge.org/t/easy-way-for-letter-substitution-reverse-complementary-dna-sequence/20101
// from https://go.dev/play/p/IXI6PY7XUXN
var dnaComplement = strings.NewReplacer(
	"A", "T",
	"T", "A",
	"G", "C",
	"C", "G",
	"a", "t",
	"t", "a",
	"g", "c",
	"c", "g",
)

func Complement(s string) string {
	return dnaComplement.Replace(s)
}

// Reverse returns its argument string reversed rune-wise left to right.
// from https://github.com/golang/example/blob/master/stringutil/reverse.go
func Reverse(r []byte) []byte {
	for i, j := 0, len(r)-1; i < len(r)/2; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r
}

// ReverseComplement computes the reverse complement of a DNA sequence.
func ReverseComplement(s string) string {
	return Complement(string(Reverse([]byte(s))))
}
