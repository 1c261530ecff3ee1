package main

import (
	"io"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/motif/pkg/motif"
	"github.com/liserjrqlxue/motif/pkg/report"
	"github.com/liserjrqlxue/motif/pkg/util"
)

func newScoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Profile, consensus and scores of a motif set",
		Long: `Read a motif set, one motif per line, and print its Laplace-smoothed
profile, consensus, column entropy, Hamming score and entropy score.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			motifs, err := loadMotifs(a)
			if err != nil {
				return err
			}
			profile, err := motif.NewProfile(motifs)
			if err != nil {
				return err
			}
			entropy, err := motif.ColumnEntropy(motifs)
			if err != nil {
				return err
			}
			hamming, err := motif.HammingScore(motifs)
			if err != nil {
				return err
			}
			score, err := motif.EntropyScore(motifs)
			if err != nil {
				return err
			}
			if path := a.conf.Plot.Entropy; path != "" {
				simpleUtil.CheckErr(report.PlotColumnEntropy(entropy, "column entropy", path, a.plotSize()))
			}
			return output(cmd, a.conf.Output, func(w io.Writer) error {
				report.WriteProfile(w, profile, entropy)
				fmtUtil.Fprintf(w, "Hamming\t%d\n", hamming)
				fmtUtil.Fprintf(w, "EntropyScore\t%.4f\n", score)
				return nil
			})
		},
	}
}

// loadMotifs reads a motif set, a k header is accepted and ignored
func loadMotifs(a *app) ([]string, error) {
	input, err := util.LoadInput(a.conf.Input)
	if err != nil {
		return nil, err
	}
	return input.Dna, nil
}
