package model

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Defaults matching the published model configuration.
const (
	DefaultTrees = 100
	DefaultSeed  = 42
)

// Forest is a random-forest regressor predicting a fixed-length output
// vector (the mean of the per-tree leaf vectors). Fields are exported
// so a fitted forest survives gob encoding.
type Forest struct {
	NumTrees    int
	Seed        uint64
	MaxDepth    int
	Bootstrap   bool
	NumFeatures int
	NumOutputs  int
	Trees       []*Tree
}

// ForestOption is functional config for NewForest.
type ForestOption func(*Forest)

func WithTrees(n int) ForestOption      { return func(f *Forest) { f.NumTrees = n } }
func WithSeed(seed uint64) ForestOption { return func(f *Forest) { f.Seed = seed } }
func WithMaxDepth(d int) ForestOption   { return func(f *Forest) { f.MaxDepth = d } }
func WithBootstrap(b bool) ForestOption { return func(f *Forest) { f.Bootstrap = b } }

// NewForest initializes an unfitted forest with the default
// configuration (100 trees, seed 42, bootstrap sampling).
func NewForest(opts ...ForestOption) *Forest {
	f := &Forest{
		NumTrees:  DefaultTrees,
		Seed:      DefaultSeed,
		Bootstrap: true,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Fit trains the forest on X (n x p features) and Y (n x k labels).
// Trees are fitted concurrently, each with its own derived seed so the
// result is deterministic for a given Seed.
func (f *Forest) Fit(ctx context.Context, x, y *mat.Dense) error {
	n, p := x.Dims()
	yn, k := y.Dims()
	if n == 0 {
		return errors.New("forest: empty training set")
	}
	if yn != n {
		return errors.Errorf("forest: feature rows (%d) and label rows (%d) mismatch", n, yn)
	}
	if f.NumTrees < 1 {
		return errors.New("forest: at least one tree required")
	}

	f.NumFeatures = p
	f.NumOutputs = k
	f.Trees = make([]*Tree, f.NumTrees)

	xr := make([][]float64, n)
	yr := make([][]float64, n)
	for i := 0; i < n; i++ {
		xr[i] = x.RawRowView(i)
		yr[i] = y.RawRowView(i)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < f.NumTrees; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// Derived seed per tree keeps bootstrap draws independent
			// across trees but reproducible across runs.
			rnd := rand.New(rand.NewSource(f.Seed + uint64(i)))
			idx := make([]int, n)
			for j := 0; j < n; j++ {
				if f.Bootstrap {
					idx[j] = rnd.Intn(n)
				} else {
					idx[j] = j
				}
			}

			tree := NewTree()
			tree.MaxDepth = f.MaxDepth
			if err := tree.Fit(xr, yr, idx); err != nil {
				return errors.Wrapf(err, "failed to fit tree %d", i)
			}
			f.Trees[i] = tree
			return nil
		})
	}
	return g.Wait()
}

// Predict returns the output vector for a single feature row as the
// mean of all tree predictions. The output is the raw model estimate,
// no bounds are enforced.
func (f *Forest) Predict(row []float64) ([]float64, error) {
	if len(f.Trees) == 0 {
		return nil, errors.New("forest: model not fitted")
	}
	if len(row) != f.NumFeatures {
		return nil, errors.Errorf("forest: row has %d features, want %d", len(row), f.NumFeatures)
	}

	out := make([]float64, f.NumOutputs)
	for _, t := range f.Trees {
		leaf := t.Predict(row)
		for j, v := range leaf {
			out[j] += v
		}
	}
	for j := range out {
		out[j] /= float64(len(f.Trees))
	}
	return out, nil
}
