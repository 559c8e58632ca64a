package model

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/atmoforge/atmoctl/pkg/atmo"
)

// DefaultSamples is the synthetic training set size.
const DefaultSamples = 500

// SyntheticDataset generates n feature rows of independent uniform
// [0,1) values, one column per essential feature, and n label rows
// drawn from a symmetric Dirichlet over the gases, scaled so each row
// sums to 100.
func SyntheticDataset(n int, seed uint64) (*mat.Dense, *mat.Dense) {
	src := rand.NewSource(seed)

	uni := distuv.Uniform{Min: 0, Max: 1, Src: src}
	x := mat.NewDense(n, len(atmo.Features), nil)
	for i := 0; i < n; i++ {
		for j := 0; j < len(atmo.Features); j++ {
			x.Set(i, j, uni.Rand())
		}
	}

	alpha := make([]float64, len(atmo.Gases))
	for i := range alpha {
		alpha[i] = 1
	}
	dir := distmv.NewDirichlet(alpha, src)

	y := mat.NewDense(n, len(atmo.Gases), nil)
	row := make([]float64, len(alpha))
	for i := 0; i < n; i++ {
		dir.Rand(row)
		for j := range row {
			row[j] *= 100
		}
		y.SetRow(i, row)
	}
	return x, y
}
