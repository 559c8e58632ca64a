package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atmoforge/atmoctl/pkg/atmo"
)

func TestSyntheticDataset_Shapes(t *testing.T) {
	x, y := SyntheticDataset(50, 42)

	xr, xc := x.Dims()
	assert.Equal(t, 50, xr)
	assert.Equal(t, len(atmo.Features), xc)

	yr, yc := y.Dims()
	assert.Equal(t, 50, yr)
	assert.Equal(t, len(atmo.Gases), yc)
}

func TestSyntheticDataset_FeatureRange(t *testing.T) {
	x, _ := SyntheticDataset(100, 42)
	r, c := x.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := x.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}
}

func TestSyntheticDataset_LabelRowsSumToHundred(t *testing.T) {
	_, y := SyntheticDataset(100, 42)
	r, c := y.Dims()
	for i := 0; i < r; i++ {
		var sum float64
		for j := 0; j < c; j++ {
			v := y.At(i, j)
			require.GreaterOrEqual(t, v, 0.0)
			sum += v
		}
		assert.InDelta(t, 100.0, sum, 1e-9, "row %d", i)
	}
}

func TestSyntheticDataset_Deterministic(t *testing.T) {
	x1, y1 := SyntheticDataset(10, 42)
	x2, y2 := SyntheticDataset(10, 42)
	assert.Equal(t, x1.RawMatrix().Data, x2.RawMatrix().Data)
	assert.Equal(t, y1.RawMatrix().Data, y2.RawMatrix().Data)
}
