package motif

import (
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"
	"sync"
)

// Rand draws uniform integers in [0, n). *rand.Rand satisfies it.
// A Rand is used by one search at a time.
type Rand interface {
	Intn(n int) int
}

// Result is the best motif set a search found.
type Result struct {
	Motifs []string
	// Positions[i] is the offset of Motifs[i] in the i-th sequence
	Positions []int
	Score     float64
	Scorer    Scorer

	// seeds tried by Greedy, improving refinement steps by Randomized
	Iterations int
	// multi-run only
	Trial       int
	TrialScores []float64
}

// Searcher runs the search drivers. The zero value uses the default
// scorer of each driver and slog.Default().
type Searcher struct {
	// Scorer overrides the driver default for the whole run
	Scorer Scorer
	Logger *slog.Logger
}

func (s *Searcher) scorer(fallback Scorer) Scorer {
	if s.Scorer != 0 {
		return s.Scorer
	}
	return fallback
}

func (s *Searcher) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// GreedyMotifSearch runs Searcher.Greedy with the entropy score.
func GreedyMotifSearch(dna []string, k int) (*Result, error) {
	return new(Searcher).Greedy(dna, k)
}

// RandomizedMotifSearch runs Searcher.Randomized with the Hamming score.
func RandomizedMotifSearch(dna []string, k int, rng Rand) (*Result, error) {
	return new(Searcher).Randomized(dna, k, rng)
}

// RandomizedMotifSearchN runs Searcher.RandomizedN with the Hamming score.
func RandomizedMotifSearchN(dna []string, k, trials int, rng Rand) (*Result, error) {
	return new(Searcher).RandomizedN(dna, k, trials, rng)
}

// ParallelRandomizedMotifSearch runs Searcher.ParallelRandomizedN with the Hamming score.
func ParallelRandomizedMotifSearch(dna []string, k, trials, workers int, seed int64) (*Result, error) {
	return new(Searcher).ParallelRandomizedN(dna, k, trials, workers, seed)
}

// Greedy seeds the motif set with every k-mer of dna[0] in turn and extends
// it with the most probable k-mer of each following sequence under the
// profile of the motifs chosen so far. The lowest scoring complete set is
// kept; on equal scores the first one found wins. Default score: Entropy.
func (s *Searcher) Greedy(dna []string, k int) (*Result, error) {
	if err := checkDna(dna, k); err != nil {
		return nil, err
	}
	var (
		scorer = s.scorer(Entropy)
		first  = dna[0]
		best   *Result
	)
	for i := 0; i+k <= len(first); i++ {
		var (
			motifs    = make([]string, 1, len(dna))
			positions = make([]int, 1, len(dna))
		)
		motifs[0] = first[i : i+k]
		positions[0] = i
		for _, seq := range dna[1:] {
			profile, err := NewProfile(motifs)
			if err != nil {
				return nil, err
			}
			hit, err := profile.MostProbable(seq)
			if err != nil {
				return nil, err
			}
			motifs = append(motifs, hit.Kmer)
			positions = append(positions, hit.Pos)
		}
		score, err := scorer.Score(motifs)
		if err != nil {
			return nil, err
		}
		if best == nil || score < best.Score {
			best = &Result{
				Motifs:    motifs,
				Positions: positions,
				Score:     score,
				Scorer:    scorer,
			}
		}
	}
	best.Iterations = len(first) - k + 1
	s.logger().Debug("greedy motif search", "k", k, "seeds", best.Iterations, "seed", best.Positions[0], "score", best.Score)
	return best, nil
}

// Randomized starts from one random k-mer per sequence and alternates
// profile building and most probable k-mer selection while the score
// strictly improves. The first step that does not improve ends the run.
// Default score: Hamming.
func (s *Searcher) Randomized(dna []string, k int, rng Rand) (*Result, error) {
	if err := checkDna(dna, k); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidInput)
	}
	return s.randomized(dna, k, rng, s.scorer(Hamming))
}

func (s *Searcher) randomized(dna []string, k int, rng Rand, scorer Scorer) (*Result, error) {
	var (
		motifs    = make([]string, len(dna))
		positions = make([]int, len(dna))
	)
	for i, seq := range dna {
		// offset in [0, len(seq)-k]
		pos := rng.Intn(len(seq) - k + 1)
		motifs[i] = seq[pos : pos+k]
		positions[i] = pos
	}
	score, err := scorer.Score(motifs)
	if err != nil {
		return nil, err
	}
	var best = &Result{
		Motifs:    motifs,
		Positions: positions,
		Score:     score,
		Scorer:    scorer,
	}

	for {
		profile, err := NewProfile(best.Motifs)
		if err != nil {
			return nil, err
		}
		motifs = make([]string, len(dna))
		positions = make([]int, len(dna))
		for i, seq := range dna {
			hit, err := profile.MostProbable(seq)
			if err != nil {
				return nil, err
			}
			motifs[i] = hit.Kmer
			positions[i] = hit.Pos
		}
		score, err = scorer.Score(motifs)
		if err != nil {
			return nil, err
		}
		if score >= best.Score {
			return best, nil
		}
		best.Motifs = motifs
		best.Positions = positions
		best.Score = score
		best.Iterations++
	}
}

// RandomizedN runs Randomized trials times with the same random source.
// A trial replaces the kept result when its score is lower or equal,
// so the last of equally scoring trials wins.
func (s *Searcher) RandomizedN(dna []string, k, trials int, rng Rand) (*Result, error) {
	if err := checkDna(dna, k); err != nil {
		return nil, err
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidInput, trials)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidInput)
	}
	var (
		scorer  = s.scorer(Hamming)
		results = make([]*Result, trials)
	)
	for trial := range results {
		result, err := s.randomized(dna, k, rng, scorer)
		if err != nil {
			return nil, err
		}
		results[trial] = result
	}
	return s.reduce(results), nil
}

// ParallelRandomizedN spreads the trials of RandomizedN over workers
// goroutines. Trial i draws from rand.NewSource(seed+i) and the results are
// reduced in trial order, so the outcome only depends on seed.
// workers <= 0 uses runtime.NumCPU().
func (s *Searcher) ParallelRandomizedN(dna []string, k, trials, workers int, seed int64) (*Result, error) {
	if err := checkDna(dna, k); err != nil {
		return nil, err
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidInput, trials)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > trials {
		workers = trials
	}

	var (
		scorer  = s.scorer(Hamming)
		results = make([]*Result, trials)
		errs    = make([]error, trials)
		jobs    = make(chan int)
		wg      sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for trial := range jobs {
				rng := rand.New(rand.NewSource(seed + int64(trial)))
				results[trial], errs[trial] = s.randomized(dna, k, rng, scorer)
			}
		}()
	}
	for trial := 0; trial < trials; trial++ {
		jobs <- trial
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return s.reduce(results), nil
}

// reduce keeps the last result with the lowest score
func (s *Searcher) reduce(results []*Result) *Result {
	var (
		best   *Result
		scores = make([]float64, len(results))
	)
	for trial, result := range results {
		scores[trial] = result.Score
		if best == nil || result.Score <= best.Score {
			best = result
			best.Trial = trial
		}
	}
	best.TrialScores = scores
	s.logger().Debug("randomized motif search", "trials", len(results), "trial", best.Trial, "score", best.Score)
	return best
}
