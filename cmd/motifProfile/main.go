package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/pprof"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"gonum.org/v1/gonum/floats"

	"github.com/liserjrqlxue/motif/pkg/motif"
	"github.com/liserjrqlxue/motif/pkg/report"
	"github.com/liserjrqlxue/motif/pkg/util"
)

// profile, consensus and scores of a motif set

// flag
var (
	input = flag.String(
		"i",
		"",
		"input, one motif per line, optional 'k [t]' header, - for stdin",
	)
	output = flag.String(
		"o",
		"",
		"output profile table, format:\n\tPOS\t1..k\n\tA..T probabilities\n\tConsensus\n\tEntropy\nfollowed by Hamming and Entropy score lines",
	)
	outputEntropy = flag.String(
		"e",
		"",
		"output column entropy hist, format:\n\tEntropy\tCount",
	)
	plotEntropy = flag.String(
		"plot",
		"",
		"column entropy bar chart, png/svg/pdf by extension",
	)
	cpuProfile = flag.String(
		"cpu",
		"",
		"write cpu profile to file",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *input == "" || *output == "" {
		flag.PrintDefaults()
		return
	}
	if *cpuProfile != "" {
		var LogCPUProfile = osUtil.Create(*cpuProfile)
		defer simpleUtil.DeferClose(LogCPUProfile)
		pprof.StartCPUProfile(LogCPUProfile)
		defer pprof.StopCPUProfile()
	}

	var (
		inF  *os.File
		outF *os.File
		outE *os.File
		w    *bufio.Writer
		wE   *bufio.Writer
	)

	// open input
	if *input == "-" {
		inF = os.Stdin
	} else {
		inF = osUtil.Open(*input)
		defer simpleUtil.DeferClose(inF)
	}

	// open output
	outF = osUtil.Create(*output)
	defer simpleUtil.DeferClose(outF)
	w = bufio.NewWriter(outF)
	if *outputEntropy != "" {
		outE = osUtil.Create(*outputEntropy)
		defer simpleUtil.DeferClose(outE)
		wE = bufio.NewWriter(outE)
	}

	var entropy = simpleUtil.HandleError(WriteMotifProfile(inF, w))
	if wE != nil {
		simpleUtil.CheckErr(report.WriteHist(report.Hist(entropy), wE))
	}
	if *plotEntropy != "" {
		simpleUtil.CheckErr(report.PlotColumnEntropy(entropy, "column entropy", *plotEntropy, report.DefaultSize))
	}

	slog.Info("Done", "k", len(entropy), "elapsed", time.Since(t0))
}

// WriteMotifProfile read motifs from io.Reader, write profile and scores to *bufio.Writer, and return column entropy
func WriteMotifProfile(in io.Reader, w *bufio.Writer) (entropy []float64, err error) {
	input, err := util.ReadInput(in)
	if err != nil {
		return
	}
	profile, err := motif.NewProfile(input.Dna)
	if err != nil {
		return
	}
	entropy, err = motif.ColumnEntropy(input.Dna)
	if err != nil {
		return
	}
	hamming, err := motif.HammingScore(input.Dna)
	if err != nil {
		return
	}
	report.WriteProfile(w, profile, entropy)
	fmt.Fprintf(w, "Hamming\t%d\nEntropyScore\t%.4f\n", hamming, floats.Sum(entropy))
	err = w.Flush()
	return
}
