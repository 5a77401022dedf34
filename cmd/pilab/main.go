package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/darlopvil/trabajo-L4-G7/internal/config"
	"github.com/darlopvil/trabajo-L4-G7/internal/observability"
	"github.com/darlopvil/trabajo-L4-G7/internal/report"
	"github.com/darlopvil/trabajo-L4-G7/internal/store"
	"github.com/darlopvil/trabajo-L4-G7/internal/trial"
)

// pilab runs the batch trial driver: for each configured sample size it
// executes the sequential and parallel estimators, prints a summary and
// appends a row pair to the results file. A single integer argument
// replaces the configured sample-size list with that one value.
func main() {
	cfg := config.Load()

	sizes := cfg.SampleSizes
	if len(os.Args) > 1 {
		n, err := strconv.ParseInt(os.Args[1], 10, 64)
		if err != nil || n < 1 {
			log.Fatalf("sample size argument must be a positive integer, got %q", os.Args[1])
		}
		sizes = []int64{n}
	}

	ctx := context.Background()
	shutdown, err := observability.SetupOTel(ctx, cfg.OtelEndpoint, cfg.ServiceName, cfg.DisableTraces)
	if err != nil {
		log.Fatalf("otel init failed: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	m, err := observability.NewMetrics()
	if err != nil {
		log.Fatalf("metrics init failed: %v", err)
	}

	var st *store.Store
	if cfg.StoreEnabled {
		st, err = store.Open(cfg.StorePath)
		if err != nil {
			log.Fatalf("trial store open failed: %v", err)
		}
		defer st.Close()
	}

	runner := &trial.Runner{
		Workers:  cfg.WorkerCount,
		BaseSeed: cfg.BaseSeed,
		Writer:   report.NewWriter(cfg.OutputFile, report.DefaultSchema()),
		Console:  report.NewConsole(),
		Metrics:  m,
		Store:    st,
	}

	log.Printf("running %d trial(s) with %d workers", len(sizes), cfg.WorkerCount)

	if err := runner.RunAll(ctx, sizes); err != nil {
		log.Fatalf("trial run failed: %v", err)
	}

	log.Printf("all results saved to %s", cfg.OutputFile)
}
