package atmo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	in := strings.NewReader("5.5\n12.3\n540\n1.1\n0.8\n1.2\n0.09\n0.1\n")
	var out bytes.Buffer

	p, err := Collect(in, &out)
	require.NoError(t, err)
	assert.Equal(t, []float64{5.5, 12.3, 540, 1.1, 0.8, 1.2, 0.09, 0.1}, p.Vector())

	prompts := out.String()
	assert.Contains(t, prompts, "Enter Essential Exoplanet Parameters:")
	assert.Contains(t, prompts, "Planet Density (g/cm³): ")
	assert.Contains(t, prompts, "Stellar Metallicity ([Fe/H]): ")
}

func TestCollect_BadValue(t *testing.T) {
	// The first non-numeric entry aborts the collection, no retry.
	in := strings.NewReader("5.5\nnot-a-number\n")
	var out bytes.Buffer

	_, err := Collect(in, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pl_orbper")
}

func TestCollect_TruncatedInput(t *testing.T) {
	in := strings.NewReader("5.5\n12.3\n")
	var out bytes.Buffer

	_, err := Collect(in, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input")
}
