package main

import (
	"io"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/motif/pkg/motif"
)

func newMedianCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "median",
		Short: "Median string: the k-mer closest to all sequences",
		Long: `Report the k-mer with the smallest total distance to the sequences, the
distance to a sequence being the fewest mismatches against any of its
windows. All 4^k k-mers are tried, k is limited to 12.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, k, err := a.input()
			if err != nil {
				return err
			}
			median, distance, err := motif.MedianString(input.Dna, k)
			if err != nil {
				return err
			}
			a.logger.Info("median string", "median", median, "distance", distance)
			return output(cmd, a.conf.Output, func(w io.Writer) error {
				fmtUtil.Fprintf(w, "%s\n", median)
				if a.conf.PrintScore {
					fmtUtil.Fprintf(w, "%d\n", distance)
				}
				return nil
			})
		},
	}
}

func newEnumerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "enumerate",
		Aliases: []string{"enum"},
		Short:   "List every (k,d)-motif shared by all sequences",
		Long: `List, sorted, the k-mers that occur in every sequence with at most d
mismatches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, k, err := a.input()
			if err != nil {
				return err
			}
			motifs, err := motif.MotifEnumeration(input.Dna, k, a.conf.D)
			if err != nil {
				return err
			}
			a.logger.Info("motif enumeration", "d", a.conf.D, "motifs", len(motifs))
			return output(cmd, a.conf.Output, func(w io.Writer) error {
				for _, m := range motifs {
					fmtUtil.Fprintf(w, "%s\n", m)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntP("d", "d", 1, "maximum mismatches")
	return cmd
}
