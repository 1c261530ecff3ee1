package motif

import (
	"fmt"
	"math"
)

// Probability is the product of profile[kmer[i]][i] over the k-mer.
// For long k-mers the product underflows toward zero; it is not clamped,
// use LogProbability when that matters.
func (p *Profile) Probability(kmer string) (float64, error) {
	if err := p.checkKmer(kmer); err != nil {
		return 0, err
	}
	return p.probability(kmer), nil
}

// LogProbability is the natural log of Probability, -Inf for a zero entry.
func (p *Profile) LogProbability(kmer string) (float64, error) {
	if err := p.checkKmer(kmer); err != nil {
		return 0, err
	}
	var lp float64
	for i := 0; i < len(kmer); i++ {
		lp += math.Log(p.m.At(int(symbolIndex[kmer[i]]), i))
	}
	return lp, nil
}

func (p *Profile) checkKmer(kmer string) error {
	if len(kmer) != p.K() {
		return fmt.Errorf("%w: k-mer length %d does not match profile length %d", ErrInvalidInput, len(kmer), p.K())
	}
	return CheckSequence(kmer)
}

// kmer must be valid
func (p *Profile) probability(kmer string) float64 {
	var prob = 1.0
	for i := 0; i < len(kmer); i++ {
		prob *= p.m.At(int(symbolIndex[kmer[i]]), i)
	}
	return prob
}

// Hit is a window of a sequence scored against a profile.
type Hit struct {
	Kmer        string
	Pos         int
	Probability float64
}

// MostProbable scans every window of seq left to right and returns the
// first one with the highest probability.
func (p *Profile) MostProbable(seq string) (Hit, error) {
	k := p.K()
	if len(seq) < k {
		return Hit{}, fmt.Errorf("%w: sequence length %d is shorter than k=%d", ErrInvalidInput, len(seq), k)
	}
	if err := CheckSequence(seq); err != nil {
		return Hit{}, err
	}
	var best = Hit{Pos: -1, Probability: -1}
	for i := 0; i+k <= len(seq); i++ {
		prob := p.probability(seq[i : i+k])
		if prob > best.Probability {
			best.Pos = i
			best.Probability = prob
		}
	}
	best.Kmer = seq[best.Pos : best.Pos+k]
	return best, nil
}

// MostProbableKmer returns the profile-most probable k-mer of seq,
// ties broken by the earliest position.
func MostProbableKmer(seq string, k int, profile *Profile) (string, error) {
	if k <= 0 || k != profile.K() {
		return "", fmt.Errorf("%w: k=%d does not match profile length %d", ErrInvalidInput, k, profile.K())
	}
	hit, err := profile.MostProbable(seq)
	if err != nil {
		return "", err
	}
	return hit.Kmer, nil
}
