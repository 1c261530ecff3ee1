package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/liserjrqlxue/motif/pkg/config"
	"github.com/liserjrqlxue/motif/pkg/motif"
	"github.com/liserjrqlxue/motif/pkg/util"
)

// app holds the settings resolved before a subcommand runs
type app struct {
	v      *viper.Viper
	conf   config.Config
	logger *slog.Logger
}

// newRootCmd represents the base command when called without any subcommands.
func newRootCmd() *cobra.Command {
	var a = &app{}
	rootCmd := &cobra.Command{
		Use:   "motif",
		Short: "Find conserved k-mer motifs in a set of DNA sequences",
		Long: `Find conserved k-mer motifs with profile matrices: greedy search,
randomized search over many trials, median string and (k,d)-motif enumeration.

Input is one sequence per line, optionally preceded by a "k [t]" header line.`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("settings", "s", "", "settings file (yaml, json or toml)")
	flags.StringP("input", "i", "-", "input sequences, one per line, - for stdin")
	flags.StringP("output", "o", "-", "output file, - for stdout")
	flags.IntP("k", "k", 0, "motif length, 0 takes k from the input header")
	flags.String("bed", "", "write motif positions as seq\\tstart\\tend\\tmotif\\tscore")
	flags.Bool("print-score", false, "print the score after the motifs")
	flags.String("entropy-plot", "", "plot the column entropy of the result (png, svg, pdf)")
	flags.Float64("plot-width", 6, "plot width in inches")
	flags.Float64("plot-height", 4, "plot height in inches")
	flags.BoolP("verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		newGreedyCmd(a),
		newRandomCmd(a),
		newMedianCmd(a),
		newEnumerateCmd(a),
		newScoreCmd(a),
	)
	return rootCmd
}

// setup reads settings, environment and flags into a.conf
func (a *app) setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	var level = slog.LevelInfo
	if verbose, _ := flags.GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	settings, _ := flags.GetString("settings")
	v, err := config.New(settings)
	if err != nil {
		return err
	}
	for key, name := range map[string]string{
		"input":        "input",
		"output":       "output",
		"k":            "k",
		"bed":          "bed",
		"print-score":  "print-score",
		"trials":       "trials",
		"workers":      "workers",
		"seed":         "seed",
		"scorer":       "scorer",
		"d":            "d",
		"plot.trace":   "trace",
		"plot.hist":    "hist",
		"plot.entropy": "entropy-plot",
		"plot.width":   "plot-width",
		"plot.height":  "plot-height",
	} {
		if flag := flags.Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return err
			}
		}
	}
	a.v = v
	a.conf, err = config.NewConfig(v)
	return err
}

// input loads the sequences and resolves k
func (a *app) input() (*util.Input, int, error) {
	input, err := util.LoadInput(a.conf.Input)
	if err != nil {
		return nil, 0, err
	}
	k := a.conf.K
	if k == 0 {
		k = input.K
	}
	if k <= 0 {
		return nil, 0, fmt.Errorf("%w: k is neither set nor given by the input header", motif.ErrInvalidInput)
	}
	a.logger.Info("load input", "sequences", len(input.Dna), "k", k)
	return input, k, nil
}

// output opens path for writing, "-" is the command output
func output(cmd *cobra.Command, path string, fn func(w io.Writer) error) error {
	var out io.Writer
	if path == "-" {
		out = cmd.OutOrStdout()
	} else {
		var f = osUtil.Create(path)
		defer simpleUtil.DeferClose(f)
		out = f
	}
	var w = bufio.NewWriter(out)
	if err := fn(w); err != nil {
		return err
	}
	return w.Flush()
}

func (a *app) searcher() *motif.Searcher {
	return &motif.Searcher{
		Scorer: a.conf.ScorerOrDefault(),
		Logger: a.logger,
	}
}
