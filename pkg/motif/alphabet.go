// Package motif finds conserved k-mer motifs in a set of DNA strings:
// profile matrices with Laplace smoothing, most probable k-mer scans,
// consensus/entropy scoring and greedy or randomized motif search.
package motif

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every error the package returns.
var ErrInvalidInput = errors.New("invalid input")

// Symbol is a nucleotide, also the row index of a Profile.
type Symbol uint8

const (
	A Symbol = iota
	C
	G
	T
)

// Alphabet in enumeration order
const Alphabet = "ACGT"

const AlphabetSize = len(Alphabet)

// byte -> Symbol, -1 for anything outside the alphabet
var symbolIndex = func() (index [256]int8) {
	for i := range index {
		index[i] = -1
	}
	for i := 0; i < AlphabetSize; i++ {
		index[Alphabet[i]] = int8(i)
	}
	return
}()

// SymbolOf returns the Symbol of an upper-case nucleotide byte.
func SymbolOf(b byte) (Symbol, bool) {
	i := symbolIndex[b]
	if i < 0 {
		return 0, false
	}
	return Symbol(i), true
}

func (s Symbol) Byte() byte {
	return Alphabet[s]
}

func (s Symbol) String() string {
	return Alphabet[s : s+1]
}

// CheckSequence returns an error if seq is empty or holds a byte outside ACGT.
func CheckSequence(seq string) error {
	if len(seq) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	}
	for i := 0; i < len(seq); i++ {
		if symbolIndex[seq[i]] < 0 {
			return fmt.Errorf("%w: invalid nucleotide %q at %d", ErrInvalidInput, seq[i], i)
		}
	}
	return nil
}

// checkDna validates the input of the search drivers
func checkDna(dna []string, k int) error {
	if len(dna) == 0 {
		return fmt.Errorf("%w: no sequences", ErrInvalidInput)
	}
	if k <= 0 {
		return fmt.Errorf("%w: k must be positive, got %d", ErrInvalidInput, k)
	}
	for i, seq := range dna {
		if err := CheckSequence(seq); err != nil {
			return fmt.Errorf("sequence %d: %w", i, err)
		}
		if len(seq) < k {
			return fmt.Errorf("%w: sequence %d is shorter than k (%d < %d)", ErrInvalidInput, i, len(seq), k)
		}
	}
	return nil
}

// checkMotifs validates a motif set and returns its k
func checkMotifs(motifs []string) (int, error) {
	if len(motifs) == 0 {
		return 0, fmt.Errorf("%w: empty motif set", ErrInvalidInput)
	}
	k := len(motifs[0])
	for i, m := range motifs {
		if len(m) != k {
			return 0, fmt.Errorf("%w: motif %d has length %d, want %d", ErrInvalidInput, i, len(m), k)
		}
		if err := CheckSequence(m); err != nil {
			return 0, fmt.Errorf("motif %d: %w", i, err)
		}
	}
	return k, nil
}
