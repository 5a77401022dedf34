package main

import (
	"context"
	"log"

	"github.com/darlopvil/trabajo-L4-G7/internal/config"
	"github.com/darlopvil/trabajo-L4-G7/internal/handlers"
	"github.com/darlopvil/trabajo-L4-G7/internal/observability"
	"github.com/darlopvil/trabajo-L4-G7/internal/routers"
	"github.com/darlopvil/trabajo-L4-G7/internal/store"
	"github.com/darlopvil/trabajo-L4-G7/internal/trial"
)

func main() {
	cfg := config.Load()

	// Initialize OpenTelemetry (metrics + optional traces).
	shutdown, err := observability.SetupOTel(context.Background(), cfg.OtelEndpoint, cfg.ServiceName, cfg.DisableTraces)
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

	// The HTTP surface runs trials on demand; no results file is written.
	runner := &trial.Runner{
		Workers:  cfg.WorkerCount,
		BaseSeed: cfg.BaseSeed,
		Metrics:  m,
	}

	defaultSamples := int64(3000000)
	if len(cfg.SampleSizes) > 0 {
		defaultSamples = cfg.SampleSizes[len(cfg.SampleSizes)-1]
	}

	h := handlers.New(runner, st, defaultSamples)

	r := routers.NewRouter(m, h)

	log.Printf("listening on :%s", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
