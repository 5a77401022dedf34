package trial

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/darlopvil/trabajo-L4-G7/internal/estimator"
	"github.com/darlopvil/trabajo-L4-G7/internal/observability"
	"github.com/darlopvil/trabajo-L4-G7/internal/report"
	"github.com/darlopvil/trabajo-L4-G7/internal/store"
)

// Runner executes sequential/parallel trial pairs and fans the results out
// to the console, the results file, the trial store and the metrics
// instruments. Writer, Console, Metrics and Store are all optional.
type Runner struct {
	Workers  int
	BaseSeed int64

	Writer  *report.Writer
	Console *report.Console
	Metrics *observability.Metrics
	Store   *store.Store
}

// Outcome is the in-memory result of one trial pair.
type Outcome struct {
	Sequential estimator.Result
	Parallel   estimator.Result
	Delta      float64
}

// RunOne executes the sequential and then the parallel estimator with the
// same sample count. The two runs use independent seeds, so their estimates
// are expected to differ; Delta is informational and never asserted.
func (r *Runner) RunOne(ctx context.Context, samples int64) (Outcome, error) {
	seed := r.BaseSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	seq, err := estimator.Sequential(rng, samples)
	if err != nil {
		return Outcome{}, fmt.Errorf("sequential estimator: %w", err)
	}
	r.recordEstimate(ctx, "sequential", seq)

	par, err := estimator.Parallel(seed+1, samples, r.Workers)
	if err != nil {
		return Outcome{}, fmt.Errorf("parallel estimator: %w", err)
	}
	r.recordEstimate(ctx, "parallel", par)

	return Outcome{
		Sequential: seq,
		Parallel:   par,
		Delta:      math.Abs(seq.Pi - par.Pi),
	}, nil
}

// RunAll drives one trial per sample size, printing and persisting as it
// goes. A failure to write the results file is logged and skipped for that
// trial; the remaining trials still run and still attempt to append.
func (r *Runner) RunAll(ctx context.Context, sizes []int64) error {
	for _, samples := range sizes {
		if r.Console != nil {
			r.Console.TrialHeader(samples)
		}

		out, err := r.RunOne(ctx, samples)
		if err != nil {
			return err
		}

		if r.Console != nil {
			r.Console.Result(out.Sequential)
			r.Console.Result(out.Parallel)
			r.Console.Comparison(out.Sequential, out.Parallel)
		}

		if r.Writer != nil {
			if err := r.Writer.Append(out.Sequential, out.Parallel); err != nil {
				log.Printf("results file not written for %d samples: %v", samples, err)
			}
		}

		if r.Store != nil {
			rec := store.Record{
				RunAt:      time.Now(),
				Samples:    samples,
				Sequential: out.Sequential,
				Parallel:   out.Parallel,
				Delta:      out.Delta,
			}
			if err := r.Store.Put(rec); err != nil {
				log.Printf("trial store put failed for %d samples: %v", samples, err)
			}
		}
	}
	return nil
}

func (r *Runner) recordEstimate(ctx context.Context, method string, res estimator.Result) {
	if r.Metrics == nil {
		return
	}
	r.Metrics.RecordEstimate(ctx, method, res.Samples, res.ElapsedMillis)
}
