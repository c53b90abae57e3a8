package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestDelayBinsCountEveryPoint(t *testing.T) {
	f := testField(t)
	edges, counts := DelayBins(f, 10)
	require.Len(t, edges, 10)
	require.Len(t, counts, 10)
	assert.Equal(t, -f.Cycle(), edges[0])
	assert.InDelta(t, float64(f.Len()), floats.Sum(counts), 1e-9)
}

func TestWriteHTMLIncludesBothCharts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(testField(t), &buf))
	out := buf.String()
	assert.Contains(t, out, "Delay distribution")
	assert.Contains(t, out, "Mean intensity over a cycle")
}
