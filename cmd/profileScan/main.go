package main

/*
序列逐条扫描 profile 最可能的 k-mer
*/

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"github.com/liserjrqlxue/motif/pkg/motif"
	"github.com/liserjrqlxue/motif/pkg/report"
	"github.com/liserjrqlxue/motif/pkg/util"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input, one seq per line, - for stdin",
	)
	output = flag.String(
		"o",
		"",
		"output, one line per seq, format:\nSeq\tKmer\tPos\tStrand\tProbability\nprobability hist goes to output.hist",
	)
	motifs = flag.String(
		"m",
		"",
		"motifs, one per line, profile built with pseudocounts",
	)
	profileFile = flag.String(
		"p",
		"",
		"profile, four lines of k probabilities in A C G T order, used if -m is empty",
	)
	bothStrands = flag.Bool(
		"rc",
		false,
		"also scan the reverse complement",
	)
	bed = flag.String(
		"bed",
		"",
		"write merged windows with probability >= -min, format:\nseqN\tstart\tend\tname\tprobability",
	)
	minProb = flag.Float64(
		"min",
		0.01,
		"probability threshold of -bed",
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
	if *input == "" || *output == "" || (*motifs == "" && *profileFile == "") {
		flag.PrintDefaults()
		return
	}
	if *cpuProfile != "" {
		var LogCPUProfile = osUtil.Create(*cpuProfile)
		defer simpleUtil.DeferClose(LogCPUProfile)
		pprof.StartCPUProfile(LogCPUProfile)
		defer pprof.StopCPUProfile()
	}

	var profile = simpleUtil.HandleError(LoadProfile(*motifs, *profileFile))
	slog.Info("load profile", "k", profile.K(), "consensus", profile.Consensus())

	var (
		inF   *os.File
		outF  *os.File
		outH  *os.File
		bedF  *os.File
		w     *bufio.Writer
		wH    *bufio.Writer
		wBed  *bufio.Writer
		hits  []*util.Feature
		count int
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
	w = bufio.NewWriterSize(outF, 10*1024*1024)

	outH = osUtil.Create(*output + ".hist")
	defer simpleUtil.DeferClose(outH)
	wH = bufio.NewWriter(outH)

	if *bed != "" {
		bedF = osUtil.Create(*bed)
		defer simpleUtil.DeferClose(bedF)
		wBed = bufio.NewWriter(bedF)
	}

	// 扫描
	var hist = simpleUtil.HandleError(ScanSeqs(inF, profile, w, *bothStrands, func(name, seq string) {
		count++
		if wBed != nil {
			hits = append(hits, Hits(name, seq, profile, *minProb)...)
		}
	}))
	simpleUtil.CheckErr(report.WriteHist(hist, wH))
	if wBed != nil {
		report.WriteFeatures(wBed, hits)
		simpleUtil.CheckErr(wBed.Flush())
	}

	slog.Info("Done", "seqs", count, "hits", len(hits), "elapsed", time.Since(t0))
}

// LoadProfile builds the profile from a motif file, or reads a profile matrix
func LoadProfile(motifPath, profilePath string) (*motif.Profile, error) {
	if motifPath != "" {
		input, err := util.LoadInput(motifPath)
		if err != nil {
			return nil, err
		}
		return motif.NewProfile(input.Dna)
	}
	return motif.ParseProfile(util.LoadLines(profilePath))
}

// ScanSeqs read io.Reader and write *bufio.Writer, add most probable k-mer, and return hist of log10 probability
func ScanSeqs(in io.Reader, profile *motif.Profile, w *bufio.Writer, rc bool, visit func(name, seq string)) (hist map[float64]int, err error) {
	hist = make(map[float64]int)
	var (
		scan = bufio.NewScanner(in)
		n    int
	)
	scan.Buffer(make([]byte, 0, 64*1024), util.MaxLineSize)
	for scan.Scan() {
		seq := strings.ToUpper(strings.TrimSpace(scan.Text()))
		if seq == "" {
			continue
		}
		n++
		name := fmt.Sprintf("%s%d", util.SeqNamePrefix, n)

		hit, strand, e := BestHit(seq, profile, rc)
		if e != nil {
			err = fmt.Errorf("%s: %w", name, e)
			return
		}
		hist[report.Round2(math.Log10(hit.Probability))]++
		fmt.Fprintf(w, "%s\t%s\t%d\t%c\t%g\n", seq, hit.Kmer, hit.Pos, strand, hit.Probability)
		if visit != nil {
			visit(name, seq)
		}
	}
	err = scan.Err()
	if err != nil {
		return
	}
	err = w.Flush()
	return
}

// BestHit scans seq, and its reverse complement if rc, positions are on the forward strand
func BestHit(seq string, profile *motif.Profile, rc bool) (motif.Hit, byte, error) {
	hit, err := profile.MostProbable(seq)
	if err != nil || !rc {
		return hit, '+', err
	}
	rcHit, err := profile.MostProbable(util.ReverseComplement(seq))
	if err != nil {
		return hit, '+', err
	}
	if rcHit.Probability > hit.Probability {
		rcHit.Pos = len(seq) - rcHit.Pos - profile.K()
		return rcHit, '-', nil
	}
	return hit, '+', nil
}

// Hits returns the merged windows of seq with probability >= threshold
func Hits(name, seq string, profile *motif.Profile, threshold float64) []*util.Feature {
	var (
		k        = profile.K()
		features []*util.Feature
	)
	for i := 0; i+k <= len(seq); i++ {
		prob, err := profile.Probability(seq[i : i+k])
		if err != nil {
			continue
		}
		if prob >= threshold {
			features = append(features, util.NewFeature(name, i, i+k, seq[i:i+k], prob))
		}
	}
	return util.MergeIntervals(features)
}
