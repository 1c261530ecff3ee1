package motif

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

var greedyDna = []string{
	"GGCGTTCAGGCA",
	"AAGAATCAGTCA",
	"CAAGGAGTTCGC",
	"CACGTCAATCAC",
	"CAATAATATTCG",
}

// every sequence hides a copy of CCGATTA
var plantedDna = []string{
	"TTACCGATTAGG",
	"CCGATTAGTACA",
	"GTGTTCCGATTA",
	"ATCCGATTATGC",
	"GCTACCGATTAC",
}

func checkWindows(t *testing.T, dna []string, k int, result *Result) {
	t.Helper()
	if len(result.Motifs) != len(dna) || len(result.Positions) != len(dna) {
		t.Fatalf("got %d motifs and %d positions for %d sequences", len(result.Motifs), len(result.Positions), len(dna))
	}
	for i, motif := range result.Motifs {
		pos := result.Positions[i]
		if len(motif) != k || pos < 0 || pos+k > len(dna[i]) || dna[i][pos:pos+k] != motif {
			t.Errorf("motif %d %q at %d is not a window of %q", i, motif, pos, dna[i])
		}
	}
	score, err := result.Scorer.Score(result.Motifs)
	if err != nil {
		t.Fatal(err)
	}
	if score != result.Score {
		t.Errorf("Score = %v, rescored %v", result.Score, score)
	}
}

func TestGreedyMotifSearch(t *testing.T) {
	result, err := GreedyMotifSearch(greedyDna, 3)
	if err != nil {
		t.Fatal(err)
	}
	checkWindows(t, greedyDna, 3, result)
	want := []string{"TTC", "ATC", "TTC", "ATC", "TTC"}
	if !reflect.DeepEqual(result.Motifs, want) {
		t.Errorf("Motifs = %q, want %q", result.Motifs, want)
	}
	if result.Scorer != Entropy || !almostEqual(result.Score, 0.9709505944546686) {
		t.Errorf("Score = %s %v", result.Scorer, result.Score)
	}
	if result.Iterations != 10 {
		t.Errorf("Iterations = %d, want 10 seeds", result.Iterations)
	}

	var baseline []string
	for _, seq := range greedyDna {
		baseline = append(baseline, seq[:3])
	}
	baselineScore, err := EntropyScore(baseline)
	if err != nil {
		t.Fatal(err)
	}
	if result.Score > baselineScore {
		t.Errorf("greedy score %v is worse than baseline %v", result.Score, baselineScore)
	}
}

func TestGreedyMotifSearch_deterministic(t *testing.T) {
	first, err := GreedyMotifSearch(plantedDna, 7)
	if err != nil {
		t.Fatal(err)
	}
	second, err := GreedyMotifSearch(plantedDna, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("greedy search is not deterministic: %+v != %+v", first, second)
	}
	checkWindows(t, plantedDna, 7, first)
	if first.Score != 0 {
		t.Errorf("planted motif not found: %q score %v", first.Motifs, first.Score)
	}
}

// the kept set is always grown from a seed of the first sequence,
// even when the first k-mers of every sequence score as well or better
func TestGreedyMotifSearch_seedOnly(t *testing.T) {
	tests := []struct {
		dna   []string
		want  []string
		score float64
	}{
		{
			[]string{"ATAC", "GTGCTA", "GTAT", "GTGA"},
			[]string{"ATA", "CTA", "GTA", "GTG"},
			2.311278124459133,
		},
		{
			[]string{"TAGT", "CGCGT", "CACC", "TACATC"},
			[]string{"AGT", "CGT", "CAC", "CAT"},
			2.622556248918266,
		},
	}
	for _, tt := range tests {
		result, err := GreedyMotifSearch(tt.dna, 3)
		if err != nil {
			t.Fatal(err)
		}
		checkWindows(t, tt.dna, 3, result)
		if !reflect.DeepEqual(result.Motifs, tt.want) || !almostEqual(result.Score, tt.score) {
			t.Errorf("GreedyMotifSearch(%q) = %q %v, want %q %v", tt.dna, result.Motifs, result.Score, tt.want, tt.score)
		}
	}
}

func TestSearcher_Greedy_hamming(t *testing.T) {
	s := &Searcher{Scorer: Hamming}
	result, err := s.Greedy(greedyDna, 3)
	if err != nil {
		t.Fatal(err)
	}
	checkWindows(t, greedyDna, 3, result)
	if result.Scorer != Hamming || result.Score != 2 {
		t.Errorf("Score = %s %v, want hamming 2", result.Scorer, result.Score)
	}
}

func TestGreedyMotifSearch_boundaries(t *testing.T) {
	dna := []string{"ACGTAC", "ACGT", "TTGCA"}
	result, err := GreedyMotifSearch(dna, 4)
	if err != nil {
		t.Fatalf("k equal to the shortest sequence: %v", err)
	}
	checkWindows(t, dna, 4, result)
	if result.Motifs[1] != "ACGT" {
		t.Errorf("only window of a k-length sequence not chosen: %q", result.Motifs[1])
	}
	if _, err := GreedyMotifSearch(dna, 5); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("k longer than a sequence: error = %v", err)
	}
}

func TestSearchDrivers_invalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name string
		dna  []string
		k    int
	}{
		{"no sequences", nil, 3},
		{"zero k", greedyDna, 0},
		{"negative k", greedyDna, -2},
		{"k too long", greedyDna, 13},
		{"bad nucleotide", []string{"ACGT", "ACNT"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GreedyMotifSearch(tt.dna, tt.k); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("greedy: error = %v", err)
			}
			if _, err := RandomizedMotifSearch(tt.dna, tt.k, rng); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("randomized: error = %v", err)
			}
			if _, err := RandomizedMotifSearchN(tt.dna, tt.k, 3, rng); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("randomized N: error = %v", err)
			}
			if _, err := ParallelRandomizedMotifSearch(tt.dna, tt.k, 3, 2, 1); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("parallel: error = %v", err)
			}
		})
	}
	for _, trials := range []int{0, -1} {
		if _, err := RandomizedMotifSearchN(greedyDna, 3, trials, rng); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("trials=%d: error = %v", trials, err)
		}
		if _, err := ParallelRandomizedMotifSearch(greedyDna, 3, trials, 2, 1); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("parallel trials=%d: error = %v", trials, err)
		}
	}
	if _, err := RandomizedMotifSearch(greedyDna, 3, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil rng: error = %v", err)
	}
}

func TestRandomizedMotifSearch(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		result, err := RandomizedMotifSearch(greedyDna, 4, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		checkWindows(t, greedyDna, 4, result)
		if result.Scorer != Hamming {
			t.Errorf("Scorer = %s, want hamming", result.Scorer)
		}
	}
}

func TestRandomizedMotifSearch_identicalSequences(t *testing.T) {
	dna := []string{"ACGTTGCA", "ACGTTGCA", "ACGTTGCA", "ACGTTGCA"}
	for seed := int64(0); seed < 10; seed++ {
		result, err := RandomizedMotifSearch(dna, 3, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		checkWindows(t, dna, 3, result)
		if result.Score != 0 {
			t.Errorf("seed %d: score %v for identical sequences", seed, result.Score)
		}
	}
}

func TestRandomizedMotifSearch_seeded(t *testing.T) {
	first, err := RandomizedMotifSearch(plantedDna, 7, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	second, err := RandomizedMotifSearch(plantedDna, 7, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed, different results: %+v != %+v", first, second)
	}
}

func TestRandomizedMotifSearchN(t *testing.T) {
	const trials = 25
	result, err := RandomizedMotifSearchN(greedyDna, 4, trials, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	checkWindows(t, greedyDna, 4, result)
	if len(result.TrialScores) != trials {
		t.Fatalf("TrialScores has %d entries, want %d", len(result.TrialScores), trials)
	}
	for i, score := range result.TrialScores {
		if score < result.Score {
			t.Errorf("trial %d scored %v below kept %v", i, score, result.Score)
		}
		// last-equal-wins
		if i > result.Trial && score == result.Score {
			t.Errorf("trial %d ties the kept trial %d but was not kept", i, result.Trial)
		}
	}
	if result.TrialScores[result.Trial] != result.Score {
		t.Errorf("kept trial %d scored %v, result %v", result.Trial, result.TrialScores[result.Trial], result.Score)
	}
}

func TestRandomizedMotifSearchN_moreTrials(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		few, err := RandomizedMotifSearchN(greedyDna, 4, 5, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		many, err := RandomizedMotifSearchN(greedyDna, 4, 50, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		// the 50 trials start with the same 5 trials
		if !reflect.DeepEqual(few.TrialScores, many.TrialScores[:5]) {
			t.Fatalf("seed %d: trial prefix differs", seed)
		}
		if many.Score > few.Score {
			t.Errorf("seed %d: 50 trials scored %v, 5 trials %v", seed, many.Score, few.Score)
		}
	}
}

func TestParallelRandomizedMotifSearch(t *testing.T) {
	const seed = 2024
	one, err := ParallelRandomizedMotifSearch(greedyDna, 4, 30, 1, seed)
	if err != nil {
		t.Fatal(err)
	}
	four, err := ParallelRandomizedMotifSearch(greedyDna, 4, 30, 4, seed)
	if err != nil {
		t.Fatal(err)
	}
	all, err := ParallelRandomizedMotifSearch(greedyDna, 4, 30, 0, seed)
	if err != nil {
		t.Fatal(err)
	}
	checkWindows(t, greedyDna, 4, one)
	if !reflect.DeepEqual(one, four) || !reflect.DeepEqual(one, all) {
		t.Errorf("result depends on worker count: %+v / %+v / %+v", one, four, all)
	}

	// trial i is a single run seeded with seed+i
	for _, trial := range []int{0, 13, 29} {
		single, err := RandomizedMotifSearch(greedyDna, 4, rand.New(rand.NewSource(seed+int64(trial))))
		if err != nil {
			t.Fatal(err)
		}
		if single.Score != one.TrialScores[trial] {
			t.Errorf("trial %d scored %v, single run %v", trial, one.TrialScores[trial], single.Score)
		}
	}
}

func BenchmarkGreedyMotifSearch(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GreedyMotifSearch(greedyDna, 3)
	}
}

func BenchmarkRandomizedMotifSearchN(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < b.N; i++ {
		_, _ = RandomizedMotifSearchN(greedyDna, 4, 100, rng)
	}
}
