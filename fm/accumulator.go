package fm

import (
	"math"

	"github.com/katalvlaran/kitnet/kernel"
)

// ZeroGuard is the near-zero sentinel substituted for zero entries of the
// S=outer(s,s) matrix in CorrDist, preventing division by zero on
// constant features.
const ZeroGuard = 1e-100

// Accumulator holds the running correlation summary over n feature
// dimensions: N observations absorbed, the raw-value sum C, the
// centered-residual sums Cr and Crs, and the outer-product sum Cov.
type Accumulator struct {
	n int

	N   int
	C   []float64
	Cr  []float64
	Crs []float64
	Cov [][]float64
}

// New constructs an Accumulator for n-dimensional observations.
func New(n int) (*Accumulator, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}
	cov := make([][]float64, n)
	for i := range cov {
		cov[i] = make([]float64, n)
	}
	return &Accumulator{
		n:   n,
		C:   make([]float64, n),
		Cr:  make([]float64, n),
		Crs: make([]float64, n),
		Cov: cov,
	}, nil
}

// Dim returns the configured observation dimension.
func (a *Accumulator) Dim() int { return a.n }

// Update absorbs one observation: N←N+1; C←C+x; r←x−C/N (current-step
// mean); Cr←Cr+r; Crs←Crs+r²; Cov←Cov+outer(r,r).
func (a *Accumulator) Update(x []float64) error {
	if len(x) != a.n {
		return ErrInputShapeMismatch
	}

	a.N++
	n := float64(a.N)

	r := make([]float64, a.n)
	for i, v := range x {
		a.C[i] += v
		r[i] = v - a.C[i]/n
		a.Cr[i] += r[i]
		a.Crs[i] += r[i] * r[i]
	}

	outer := kernel.Outer(r, r)
	for i := range a.Cov {
		row, oRow := a.Cov[i], outer[i]
		for j := range row {
			row[j] += oRow[j]
		}
	}
	return nil
}

// CorrDist returns the n×n correlation-distance matrix D = 1 − Cov/S,
// where S = outer(sqrt(Crs), sqrt(Crs)) with zero entries replaced by
// ZeroGuard. Negative values (an artifact of the current-step-mean
// approximation) are clamped to zero.
func (a *Accumulator) CorrDist() [][]float64 {
	s := make([]float64, a.n)
	for i, v := range a.Crs {
		if v > 0 {
			s[i] = math.Sqrt(v)
		}
	}

	d := make([][]float64, a.n)
	for i := range d {
		d[i] = make([]float64, a.n)
	}
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			sij := s[i] * s[j]
			if sij == 0 {
				sij = ZeroGuard
			}
			v := 1 - a.Cov[i][j]/sij
			if v < 0 {
				v = 0
			}
			d[i][j] = v
		}
	}
	return d
}
