package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleComparisonPrintsDelta(t *testing.T) {
	seq, par := sampleResults()

	var buf bytes.Buffer
	c := &Console{Out: &buf}

	c.TrialHeader(seq.Samples)
	c.Result(seq)
	c.Result(par)
	c.Comparison(seq, par)

	out := buf.String()
	assert.Contains(t, out, "TRIAL WITH 300000 SAMPLES")
	assert.Contains(t, out, "Monte Carlo sequential")
	assert.Contains(t, out, "Monte Carlo parallel (4 workers)")
	assert.Contains(t, out, "difference:")
}
