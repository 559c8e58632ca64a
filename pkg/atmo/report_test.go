package atmo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	c := Normalize([]float64{70, 5, 5, 5, 5, 2, 2, 2, 1, 1})

	var buf bytes.Buffer
	err := WriteReport(&buf, c)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Atmospheric Composition Report")
	assert.Contains(t, out, "CO2: 71.43% — Dominant gas")
	assert.Contains(t, out, "N2: 5.10% — Minor component")
	assert.Contains(t, out, "NH3: 1.02% — Trace presence")
	assert.Contains(t, out, "Referenced Research Papers:")

	for _, cite := range Citations {
		assert.Contains(t, out, cite)
	}

	// One line per gas plus two border lines.
	assert.Equal(t, 2, strings.Count(out, "===================================="))
}

func TestWriteReport_WrongLength(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, Composition{1, 2, 3})
	assert.Error(t, err)
}
