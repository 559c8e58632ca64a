package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atmoforge/atmoctl/pkg/atmo"
)

func fitTestForest(t *testing.T, opts ...ForestOption) *Forest {
	t.Helper()
	x, y := SyntheticDataset(60, 7)
	f := NewForest(append([]ForestOption{WithTrees(10)}, opts...)...)
	require.NoError(t, f.Fit(context.Background(), x, y))
	return f
}

func TestForest_FitPredict(t *testing.T) {
	f := fitTestForest(t)
	require.Len(t, f.Trees, 10)
	assert.Equal(t, len(atmo.Features), f.NumFeatures)
	assert.Equal(t, len(atmo.Gases), f.NumOutputs)

	out, err := f.Predict([]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8})
	require.NoError(t, err)
	require.Len(t, out, len(atmo.Gases))

	// Leaves are means of Dirichlet draws scaled to 100, so every
	// averaged output stays within the label range.
	for i, v := range out {
		assert.GreaterOrEqual(t, v, 0.0, "output %d", i)
		assert.LessOrEqual(t, v, 100.0, "output %d", i)
	}
}

func TestForest_Deterministic(t *testing.T) {
	a := fitTestForest(t, WithSeed(42))
	b := fitTestForest(t, WithSeed(42))

	row := []float64{0.9, 0.1, 0.5, 0.3, 0.7, 0.2, 0.8, 0.4}
	pa, err := a.Predict(row)
	require.NoError(t, err)
	pb, err := b.Predict(row)
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
}

func TestForest_SeedChangesModel(t *testing.T) {
	a := fitTestForest(t, WithSeed(1))
	b := fitTestForest(t, WithSeed(2))

	row := []float64{0.9, 0.1, 0.5, 0.3, 0.7, 0.2, 0.8, 0.4}
	pa, err := a.Predict(row)
	require.NoError(t, err)
	pb, err := b.Predict(row)
	require.NoError(t, err)
	assert.NotEqual(t, pa, pb)
}

func TestForest_NoBootstrap_SeedIndependent(t *testing.T) {
	// Without bootstrap sampling every tree sees the full training
	// set, so the seed no longer influences the fitted model.
	a := fitTestForest(t, WithBootstrap(false), WithSeed(1))
	b := fitTestForest(t, WithBootstrap(false), WithSeed(2))

	row := []float64{0.9, 0.1, 0.5, 0.3, 0.7, 0.2, 0.8, 0.4}
	pa, err := a.Predict(row)
	require.NoError(t, err)
	pb, err := b.Predict(row)
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
}

func TestForest_MaxDepth(t *testing.T) {
	f := fitTestForest(t, WithMaxDepth(1))

	// A depth-1 tree is a single split: both children are leaves.
	for i, tree := range f.Trees {
		root := tree.Root
		require.NotNil(t, root, "tree %d", i)
		if root.Leaf != nil {
			continue
		}
		assert.NotNil(t, root.Left.Leaf, "tree %d left child", i)
		assert.NotNil(t, root.Right.Leaf, "tree %d right child", i)
	}
}

func TestForest_PredictUnfitted(t *testing.T) {
	f := NewForest()
	_, err := f.Predict(make([]float64, len(atmo.Features)))
	assert.Error(t, err)
}

func TestForest_PredictWrongWidth(t *testing.T) {
	f := fitTestForest(t)
	_, err := f.Predict([]float64{1, 2, 3})
	assert.Error(t, err)
}

func TestForest_FitMismatchedRows(t *testing.T) {
	x, _ := SyntheticDataset(20, 1)
	_, y := SyntheticDataset(30, 1)
	f := NewForest(WithTrees(2))
	assert.Error(t, f.Fit(context.Background(), x, y))
}

func TestForest_FitCanceled(t *testing.T) {
	x, y := SyntheticDataset(20, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := NewForest(WithTrees(4))
	assert.Error(t, f.Fit(ctx, x, y))
}

func TestTree_FitPredict(t *testing.T) {
	x := [][]float64{{0}, {1}, {2}, {3}}
	y := [][]float64{{10, 0}, {10, 0}, {0, 10}, {0, 10}}

	tree := NewTree()
	require.NoError(t, tree.Fit(x, y, []int{0, 1, 2, 3}))

	assert.Equal(t, []float64{10, 0}, tree.Predict([]float64{0.5}))
	assert.Equal(t, []float64{0, 10}, tree.Predict([]float64{2.5}))
}

func TestTree_FitEmptyIdx(t *testing.T) {
	tree := NewTree()
	assert.Error(t, tree.Fit([][]float64{{1}}, [][]float64{{1}}, nil))
}
