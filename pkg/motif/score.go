package motif

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Consensus picks the most probable symbol of each column,
// the first in Alphabet order on ties.
func (p *Profile) Consensus() string {
	k := p.K()
	var consensus = make([]byte, k)
	for j := 0; j < k; j++ {
		consensus[j] = Alphabet[floats.MaxIdx(p.Column(j))]
	}
	return string(consensus)
}

// Consensus returns the consensus string of the profile of motifs.
func Consensus(motifs []string) (string, error) {
	profile, err := NewProfile(motifs)
	if err != nil {
		return "", err
	}
	return profile.Consensus(), nil
}

func HammingDistance(p, q string) (int, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("%w: hamming distance of unequal lengths %d and %d", ErrInvalidInput, len(p), len(q))
	}
	return hamming(p, q), nil
}

func hamming(p, q string) (d int) {
	for i := 0; i < len(p); i++ {
		if p[i] != q[i] {
			d++
		}
	}
	return
}

// HammingScore sums the Hamming distance of every motif to the consensus.
func HammingScore(motifs []string) (int, error) {
	consensus, err := Consensus(motifs)
	if err != nil {
		return 0, err
	}
	var score int
	for _, motif := range motifs {
		score += hamming(consensus, motif)
	}
	return score, nil
}

// EntropyScore sums the Shannon entropy, in bits, of the unsmoothed
// nucleotide frequencies of every column.
func EntropyScore(motifs []string) (float64, error) {
	entropy, err := ColumnEntropy(motifs)
	if err != nil {
		return 0, err
	}
	return floats.Sum(entropy), nil
}

// ColumnEntropy returns the entropy in bits of each column of the motif set.
// Frequencies are count/len(motifs), without pseudocounts; 0*log(0) is 0.
func ColumnEntropy(motifs []string) ([]float64, error) {
	k, err := checkMotifs(motifs)
	if err != nil {
		return nil, err
	}
	var (
		entropy = make([]float64, k)
		freq    = make([]float64, AlphabetSize)
		t       = float64(len(motifs))
	)
	for j := range entropy {
		for i := range freq {
			freq[i] = 0
		}
		for _, motif := range motifs {
			freq[symbolIndex[motif[j]]]++
		}
		floats.Scale(1/t, freq)
		// stat.Entropy returns -0 for a conserved column
		entropy[j] = math.Abs(stat.Entropy(freq)) / math.Ln2
	}
	return entropy, nil
}

// Scorer names the score a search minimizes.
// The zero value lets each driver use its own default.
type Scorer int

const (
	Hamming Scorer = iota + 1
	Entropy
)

func (s Scorer) String() string {
	switch s {
	case Hamming:
		return "hamming"
	case Entropy:
		return "entropy"
	}
	return fmt.Sprintf("Scorer(%d)", int(s))
}

// ParseScorer accepts "hamming" or "entropy", case-insensitive.
func ParseScorer(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hamming":
		return Hamming, nil
	case "entropy":
		return Entropy, nil
	}
	return 0, fmt.Errorf("%w: unknown scorer %q", ErrInvalidInput, name)
}

// Score scores a motif set, lower is better.
func (s Scorer) Score(motifs []string) (float64, error) {
	switch s {
	case Hamming:
		score, err := HammingScore(motifs)
		return float64(score), err
	case Entropy:
		return EntropyScore(motifs)
	}
	return 0, fmt.Errorf("%w: unknown scorer %d", ErrInvalidInput, int(s))
}
