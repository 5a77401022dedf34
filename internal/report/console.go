package report

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/fatih/color"

	"github.com/darlopvil/trabajo-L4-G7/internal/estimator"
)

// Console prints human-readable trial summaries. Output is for eyes, not
// parsers; the results file is the machine-facing record.
type Console struct {
	Out io.Writer
}

// NewConsole returns a Console writing to stdout.
func NewConsole() *Console {
	return &Console{Out: os.Stdout}
}

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	labelColor  = color.New(color.FgYellow)
	deltaColor  = color.New(color.FgGreen)
)

// TrialHeader announces a trial for one sample size.
func (c *Console) TrialHeader(samples int64) {
	headerColor.Fprintf(c.Out, "\n======= TRIAL WITH %d SAMPLES =======\n\n", samples)
}

// Result prints the summary block for one estimator run.
func (c *Console) Result(r estimator.Result) {
	method := "sequential"
	if r.Parallel {
		method = fmt.Sprintf("parallel (%d workers)", r.Threads)
	}
	labelColor.Fprintf(c.Out, "---- Monte Carlo %s ----\n", method)
	fmt.Fprintf(c.Out, "samples = %d\n", r.Samples)
	fmt.Fprintf(c.Out, "pi      = %.12f\n", r.Pi)
	fmt.Fprintf(c.Out, "elapsed = %.12f s / %.8f ms / %.8f us\n\n",
		r.ElapsedSeconds, r.ElapsedMillis, r.ElapsedMicros)
}

// Comparison prints both estimates and their absolute difference. The
// difference is informational only; the two runs use independent seeds and
// are expected to disagree.
func (c *Console) Comparison(seq, par estimator.Result) {
	fmt.Fprintln(c.Out, "comparison:")
	fmt.Fprintf(c.Out, "  pi sequential: %.12f\n", seq.Pi)
	fmt.Fprintf(c.Out, "  pi parallel:   %.12f\n", par.Pi)
	deltaColor.Fprintf(c.Out, "  difference:    %.12f\n", math.Abs(seq.Pi-par.Pi))
}
