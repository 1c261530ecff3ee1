package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/liserjrqlxue/goUtil/fmtUtil"

	"github.com/liserjrqlxue/motif/pkg/motif"
	"github.com/liserjrqlxue/motif/pkg/util"
)

// WriteMotifs writes one motif per line and, if withScore, a trailing score line.
func WriteMotifs(w io.Writer, result *motif.Result, withScore bool) {
	for _, m := range result.Motifs {
		fmtUtil.Fprintf(w, "%s\n", m)
	}
	if withScore {
		fmtUtil.Fprintf(w, "%s\n", FormatScore(result.Score))
	}
}

// FormatScore prints integer scores without decimals
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// WriteFeatures writes one BED-like line per motif: name start end motif score
func WriteFeatures(w io.Writer, features []*util.Feature) {
	for _, feature := range features {
		fmtUtil.Fprintf(w, "%s\n", feature.String())
	}
}

// WriteProfile writes the profile, its consensus and the column entropy of motifs
func WriteProfile(w io.Writer, profile *motif.Profile, entropy []float64) {
	fmtUtil.Fprintf(w, "POS")
	for j := 0; j < profile.K(); j++ {
		fmtUtil.Fprintf(w, "\t%d", j+1)
	}
	fmtUtil.Fprintf(w, "\n%s", profile.String())
	fmtUtil.Fprintf(w, "Consensus")
	for _, c := range []byte(profile.Consensus()) {
		fmtUtil.Fprintf(w, "\t%c", c)
	}
	fmtUtil.Fprintf(w, "\n")
	if entropy != nil {
		fmtUtil.Fprintf(w, "Entropy")
		for _, e := range entropy {
			fmtUtil.Fprintf(w, "\t%.4f", e)
		}
		fmtUtil.Fprintf(w, "\n")
	}
}

// Hist counts values rounded to 2 decimals
func Hist(values []float64) map[float64]int {
	var hist = make(map[float64]int)
	for _, v := range values {
		hist[Round2(v)]++
	}
	return hist
}

func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// WriteHist writes key\tcount sorted by key
func WriteHist(hist map[float64]int, w *bufio.Writer) (err error) {
	var sortKey = make([]float64, 0, len(hist))
	for k := range hist {
		sortKey = append(sortKey, k)
	}
	sort.Float64s(sortKey)
	for _, k := range sortKey {
		_, err = fmt.Fprintf(w, "%.2f\t%d\n", k, hist[k])
		if err != nil {
			return
		}
	}
	err = w.Flush()
	return
}
