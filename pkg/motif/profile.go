package motif

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Profile is a 4 x k matrix of nucleotide probabilities,
// one row per Symbol and one column per motif position.
type Profile struct {
	m *mat.Dense
}

// NewProfile builds the profile of a motif set with Laplace smoothing:
// every count starts at 1 and each column is divided by len(motifs)+4,
// so columns sum to 1 and no entry is zero.
func NewProfile(motifs []string) (*Profile, error) {
	k, err := checkMotifs(motifs)
	if err != nil {
		return nil, err
	}

	var counts = make([]float64, AlphabetSize*k)
	for i := range counts {
		counts[i] = 1
	}
	for _, motif := range motifs {
		for j := 0; j < k; j++ {
			counts[int(symbolIndex[motif[j]])*k+j]++
		}
	}

	var m = mat.NewDense(AlphabetSize, k, counts)
	m.Scale(1/float64(len(motifs)+AlphabetSize), m)
	return &Profile{m: m}, nil
}

// NewProfileFromRows wraps an explicit matrix given as one row per Symbol.
// Columns are not renormalized.
func NewProfileFromRows(rows [AlphabetSize][]float64) (*Profile, error) {
	k := len(rows[0])
	if k == 0 {
		return nil, fmt.Errorf("%w: empty profile", ErrInvalidInput)
	}
	var data = make([]float64, 0, AlphabetSize*k)
	for i, row := range rows {
		if len(row) != k {
			return nil, fmt.Errorf("%w: profile row %s has %d columns, want %d", ErrInvalidInput, Symbol(i), len(row), k)
		}
		for j, v := range row {
			if !(v >= 0 && v <= 1) {
				return nil, fmt.Errorf("%w: profile[%s][%d]=%v out of [0,1]", ErrInvalidInput, Symbol(i), j, v)
			}
		}
		data = append(data, row...)
	}
	return &Profile{m: mat.NewDense(AlphabetSize, k, data)}, nil
}

// ParseProfile reads the text form of a profile: four lines of
// whitespace separated probabilities in A, C, G, T order.
// Blank lines are skipped.
func ParseProfile(lines []string) (*Profile, error) {
	var (
		rows [AlphabetSize][]float64
		n    int
	)
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if n == AlphabetSize {
			return nil, fmt.Errorf("%w: more than %d profile rows", ErrInvalidInput, AlphabetSize)
		}
		row := make([]float64, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: profile row %d: %v", ErrInvalidInput, n+1, err)
			}
			row[j] = v
		}
		rows[n] = row
		n++
	}
	if n != AlphabetSize {
		return nil, fmt.Errorf("%w: got %d profile rows, want %d", ErrInvalidInput, n, AlphabetSize)
	}
	return NewProfileFromRows(rows)
}

// K is the number of columns.
func (p *Profile) K() int {
	_, k := p.m.Dims()
	return k
}

func (p *Profile) At(s Symbol, col int) float64 {
	return p.m.At(int(s), col)
}

// Column returns the probabilities of column col in Alphabet order.
func (p *Profile) Column(col int) []float64 {
	return mat.Col(nil, col, p.m)
}

func (p *Profile) Row(s Symbol) []float64 {
	return mat.Row(nil, int(s), p.m)
}

// String formats the profile as four rows of tab separated values.
func (p *Profile) String() string {
	var sb strings.Builder
	for s := A; s <= T; s++ {
		sb.WriteString(s.String())
		for _, v := range p.Row(s) {
			sb.WriteByte('\t')
			sb.WriteString(strconv.FormatFloat(v, 'f', 4, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
