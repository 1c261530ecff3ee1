package motif

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestSymbolOf(t *testing.T) {
	for i := 0; i < AlphabetSize; i++ {
		s, ok := SymbolOf(Alphabet[i])
		if !ok || int(s) != i || s.Byte() != Alphabet[i] {
			t.Errorf("SymbolOf(%q) = %v, %v", Alphabet[i], s, ok)
		}
	}
	for _, b := range []byte("acgtNU-\x00") {
		if _, ok := SymbolOf(b); ok {
			t.Errorf("SymbolOf(%q) accepted", b)
		}
	}
}

func TestNewProfile(t *testing.T) {
	profile, err := NewProfile([]string{"ACGT", "ACGA", "TCGT"})
	if err != nil {
		t.Fatal(err)
	}
	if profile.K() != 4 {
		t.Fatalf("K() = %d, want 4", profile.K())
	}
	tests := []struct {
		symbol Symbol
		col    int
		want   float64
	}{
		{A, 0, 3.0 / 7},
		{T, 0, 2.0 / 7},
		{C, 0, 1.0 / 7},
		{C, 1, 4.0 / 7},
		{G, 2, 4.0 / 7},
		{A, 3, 2.0 / 7},
		{T, 3, 3.0 / 7},
		{G, 3, 1.0 / 7},
	}
	for _, tt := range tests {
		if got := profile.At(tt.symbol, tt.col); !almostEqual(got, tt.want) {
			t.Errorf("profile[%s][%d] = %v, want %v", tt.symbol, tt.col, got, tt.want)
		}
	}
}

func TestNewProfile_columnsSumToOne(t *testing.T) {
	sets := [][]string{
		{"A"},
		{"ACGT", "ACGA", "TCGT"},
		{"GGCGTTCAGGCA", "AAGAATCAGTCA", "CAAGGAGTTCGC", "CACGTCAATCAC", "CAATAATATTCG"},
		{"TTTTTTTT", "TTTTTTTT", "TTTTTTTT"},
	}
	for _, motifs := range sets {
		profile, err := NewProfile(motifs)
		if err != nil {
			t.Fatal(err)
		}
		for j := 0; j < profile.K(); j++ {
			var sum float64
			for _, v := range profile.Column(j) {
				if v <= 0 {
					t.Errorf("%v: zero entry in column %d", motifs, j)
				}
				sum += v
			}
			if !almostEqual(sum, 1) {
				t.Errorf("%v: column %d sums to %v", motifs, j, sum)
			}
		}
	}
}

func TestNewProfile_invalid(t *testing.T) {
	tests := []struct {
		name   string
		motifs []string
	}{
		{"empty set", nil},
		{"empty motif", []string{""}},
		{"unequal lengths", []string{"ACG", "AC"}},
		{"bad symbol", []string{"ACG", "ANG"}},
		{"lower case", []string{"acg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewProfile(tt.motifs); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("NewProfile(%q) error = %v, want ErrInvalidInput", tt.motifs, err)
			}
		})
	}
}

func TestParseProfile(t *testing.T) {
	lines := []string{
		"0.2 0.2 0.3 0.2 0.3",
		"0.4 0.3 0.1 0.5 0.1",
		"",
		"0.3 0.3 0.5 0.2 0.4",
		"0.1 0.2 0.1 0.1 0.2",
	}
	profile, err := ParseProfile(lines)
	if err != nil {
		t.Fatal(err)
	}
	if profile.K() != 5 {
		t.Fatalf("K() = %d, want 5", profile.K())
	}
	if got := profile.At(C, 3); got != 0.5 {
		t.Errorf("profile[C][3] = %v, want 0.5", got)
	}
	// course sample: the most probable 5-mer of this text is CCGAG
	hit, err := profile.MostProbable("ACCTGTTTATTGCCTAAGTTCCGAACAAACCCAATATAGCCCGAGGGCCT")
	if err != nil {
		t.Fatal(err)
	}
	if hit.Kmer != "CCGAG" {
		t.Errorf("MostProbable = %q, want CCGAG", hit.Kmer)
	}

	bad := [][]string{
		lines[:3],
		{"0.5 0.5", "0.5 0.5", "0.5", "0.5 0.5"},
		{"0.5 x", "0.5 0.5", "0.5 0.5", "0.5 0.5"},
		{"1.5", "0", "0", "0"},
		{"1", "0", "0", "0", "0"},
	}
	for _, lines := range bad {
		if _, err := ParseProfile(lines); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseProfile(%q) error = %v, want ErrInvalidInput", lines, err)
		}
	}
}
