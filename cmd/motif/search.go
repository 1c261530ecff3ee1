package main

import (
	"io"
	"math/rand"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/motif/pkg/motif"
	"github.com/liserjrqlxue/motif/pkg/report"
	"github.com/liserjrqlxue/motif/pkg/util"
)

func newGreedyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greedy",
		Short: "Greedy motif search seeded by every k-mer of the first sequence",
		Long: `Seed the motif set with each k-mer of the first sequence and extend it with
the profile-most probable k-mer of every following sequence. The lowest
scoring set is reported, the first one found on ties.

Default score: entropy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, k, err := a.input()
			if err != nil {
				return err
			}
			result, err := a.searcher().Greedy(input.Dna, k)
			if err != nil {
				return err
			}
			return a.writeResult(cmd, input, result)
		},
	}
	cmd.Flags().String("scorer", "", "hamming or entropy (default entropy)")
	return cmd
}

func newRandomCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "random",
		Aliases: []string{"randomized"},
		Short:   "Randomized motif search, best of many trials",
		Long: `Start every trial from random k-mers and alternate profile building and
most probable k-mer selection until the score stops improving. The best
trial is reported; a later trial with an equal score replaces an earlier one.

With --workers other than 1 the trials run in parallel, trial i seeded with
seed+i, and the result only depends on --seed.

Default score: hamming.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, k, err := a.input()
			if err != nil {
				return err
			}
			seed := a.seed()
			a.logger.Info("randomized motif search", "trials", a.conf.Trials, "workers", a.conf.Workers, "seed", seed)

			var result *motif.Result
			if a.conf.Workers == 1 {
				result, err = a.searcher().RandomizedN(input.Dna, k, a.conf.Trials, rand.New(rand.NewSource(seed)))
			} else {
				result, err = a.searcher().ParallelRandomizedN(input.Dna, k, a.conf.Trials, a.conf.Workers, seed)
			}
			if err != nil {
				return err
			}

			title := "randomized motif search, " + result.Scorer.String() + " score"
			if path := a.conf.Plot.Trace; path != "" {
				simpleUtil.CheckErr(report.PlotTrace(result.TrialScores, title, path, a.plotSize()))
			}
			if path := a.conf.Plot.Hist; path != "" {
				simpleUtil.CheckErr(report.PlotHistogram(result.TrialScores, 0, title, path, a.plotSize()))
			}
			return a.writeResult(cmd, input, result)
		},
	}
	flags := cmd.Flags()
	flags.IntP("trials", "n", 1000, "number of independent trials")
	flags.IntP("workers", "w", 1, "parallel workers, 0 for one per CPU")
	flags.Int64("seed", 0, "random seed, seeds from the clock when not set (the seed used is logged)")
	flags.String("scorer", "", "hamming or entropy (default hamming)")
	flags.String("trace", "", "plot trial scores and best score so far")
	flags.String("hist", "", "plot the histogram of trial scores")
	return cmd
}

// writeResult writes motifs, the optional BED table and entropy plot
func (a *app) writeResult(cmd *cobra.Command, input *util.Input, result *motif.Result) error {
	a.logger.Info("best motifs", "scorer", result.Scorer, "score", result.Score, "iterations", result.Iterations)
	err := output(cmd, a.conf.Output, func(w io.Writer) error {
		report.WriteMotifs(w, result, a.conf.PrintScore)
		return nil
	})
	if err != nil {
		return err
	}
	if path := a.conf.Bed; path != "" {
		var bed = osUtil.Create(path)
		defer simpleUtil.DeferClose(bed)
		report.WriteFeatures(bed, util.MotifFeatures(util.SeqNames(len(input.Dna)), result.Motifs, result.Positions, result.Score))
	}
	if path := a.conf.Plot.Entropy; path != "" {
		entropy, err := motif.ColumnEntropy(result.Motifs)
		if err != nil {
			return err
		}
		simpleUtil.CheckErr(report.PlotColumnEntropy(entropy, "column entropy", path, a.plotSize()))
	}
	return nil
}

// seed is the configured seed, or the clock when no flag, env or settings file sets it
func (a *app) seed() int64 {
	if a.v.IsSet("seed") {
		return a.conf.Seed
	}
	return time.Now().UnixNano()
}

func (a *app) plotSize() report.Size {
	return report.Size{Width: a.conf.Plot.Width, Height: a.conf.Plot.Height}
}
