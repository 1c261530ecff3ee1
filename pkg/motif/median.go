package motif

import (
	"fmt"
	"math"
	"sort"
)

// MaxMedianK bounds the 4^k enumeration of MedianString.
const MaxMedianK = 12

// PatternDistance sums, over dna, the smallest Hamming distance between
// pattern and any window of the sequence.
func PatternDistance(pattern string, dna []string) (int, error) {
	if err := CheckSequence(pattern); err != nil {
		return 0, err
	}
	if err := checkDna(dna, len(pattern)); err != nil {
		return 0, err
	}
	return patternDistance(pattern, dna), nil
}

func patternDistance(pattern string, dna []string) (distance int) {
	k := len(pattern)
	for _, seq := range dna {
		var best = k
		for i := 0; i+k <= len(seq) && best > 0; i++ {
			if d := hamming(pattern, seq[i:i+k]); d < best {
				best = d
			}
		}
		distance += best
	}
	return
}

// MedianString returns the k-mer with the smallest PatternDistance to dna.
// Candidates are visited in lexicographic order and the first minimum wins.
func MedianString(dna []string, k int) (string, int, error) {
	if err := checkDna(dna, k); err != nil {
		return "", 0, err
	}
	if k > MaxMedianK {
		return "", 0, fmt.Errorf("%w: k=%d exceeds %d for median string", ErrInvalidInput, k, MaxMedianK)
	}
	var (
		kmer     = make([]byte, k)
		index    = make([]int, k)
		median   string
		distance = math.MaxInt
	)
	for i := range kmer {
		kmer[i] = Alphabet[0]
	}
	for {
		if d := patternDistance(string(kmer), dna); d < distance {
			distance = d
			median = string(kmer)
		}
		// next k-mer, last position varies fastest
		j := k - 1
		for ; j >= 0; j-- {
			index[j]++
			if index[j] < AlphabetSize {
				kmer[j] = Alphabet[index[j]]
				break
			}
			index[j] = 0
			kmer[j] = Alphabet[0]
		}
		if j < 0 {
			break
		}
	}
	return median, distance, nil
}

// Neighbors returns the d-neighborhood of pattern: every k-mer within
// Hamming distance d, pattern included.
func Neighbors(pattern string, d int) ([]string, error) {
	if err := CheckSequence(pattern); err != nil {
		return nil, err
	}
	if d < 0 {
		return nil, fmt.Errorf("%w: negative distance %d", ErrInvalidInput, d)
	}
	return neighbors(pattern, d), nil
}

func neighbors(pattern string, d int) []string {
	if d == 0 {
		return []string{pattern}
	}
	if len(pattern) == 1 {
		return []string{"A", "C", "G", "T"}
	}
	var (
		neighborhood []string
		suffix       = pattern[1:]
	)
	for _, neighbor := range neighbors(suffix, d) {
		if hamming(suffix, neighbor) < d {
			for i := 0; i < AlphabetSize; i++ {
				neighborhood = append(neighborhood, Alphabet[i:i+1]+neighbor)
			}
		} else {
			neighborhood = append(neighborhood, pattern[:1]+neighbor)
		}
	}
	return neighborhood
}

// MotifEnumeration returns, sorted, every (k,d)-motif of dna: the k-mers
// found in each sequence with at most d mismatches.
func MotifEnumeration(dna []string, k, d int) ([]string, error) {
	if err := checkDna(dna, k); err != nil {
		return nil, err
	}
	if d < 0 {
		return nil, fmt.Errorf("%w: negative distance %d", ErrInvalidInput, d)
	}
	var (
		seen   = make(map[string]bool)
		motifs []string
		first  = dna[0]
	)
	for i := 0; i+k <= len(first); i++ {
		for _, candidate := range neighbors(first[i:i+k], d) {
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = appearsInAll(candidate, dna, d)
			if seen[candidate] {
				motifs = append(motifs, candidate)
			}
		}
	}
	sort.Strings(motifs)
	return motifs, nil
}

func appearsInAll(pattern string, dna []string, d int) bool {
	k := len(pattern)
	for _, seq := range dna {
		var found bool
		for i := 0; i+k <= len(seq); i++ {
			if hamming(pattern, seq[i:i+k]) <= d {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
