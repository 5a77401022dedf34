package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/darlopvil/trabajo-L4-G7/internal/models"
	"github.com/darlopvil/trabajo-L4-G7/internal/store"
	"github.com/darlopvil/trabajo-L4-G7/internal/trial"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	Runner *trial.Runner
	Store  *store.Store // nil when history is disabled

	// DefaultSamples is used when /trial is called without a samples
	// parameter.
	DefaultSamples int64
}

// New creates a new Handlers instance with dependencies injected.
func New(runner *trial.Runner, st *store.Store, defaultSamples int64) *Handlers {
	return &Handlers{Runner: runner, Store: st, DefaultSamples: defaultSamples}
}

// Health is a simple liveness endpoint.
func (h *Handlers) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// RunTrial runs the sequential/parallel estimator pair for one sample size.
// Query parameters: samples (int, optional), workers (int, optional —
// overrides the configured worker count for this call only).
func (h *Handlers) RunTrial(c *gin.Context) {
	start := time.Now()
	ctx := c.Request.Context()

	samples := h.DefaultSamples
	if s := c.Query("samples"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			respondErr(c, "trial", http.StatusBadRequest, "samples must be an integer")
			return
		}
		samples = n
	}
	if samples < 1 {
		respondErr(c, "trial", http.StatusBadRequest, "samples must be >= 1")
		return
	}

	runner := *h.Runner
	if w := c.Query("workers"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil || n < 1 {
			respondErr(c, "trial", http.StatusBadRequest, "workers must be an integer >= 1")
			return
		}
		runner.Workers = n
	}

	out, err := runner.RunOne(ctx, samples)
	if err != nil {
		respondErr(c, "trial", http.StatusInternalServerError, err.Error())
		return
	}

	if h.Store != nil {
		rec := store.Record{
			RunAt:      time.Now(),
			Samples:    samples,
			Sequential: out.Sequential,
			Parallel:   out.Parallel,
			Delta:      out.Delta,
		}
		// History is best-effort; the trial result is still returned.
		_ = h.Store.Put(rec)
	}

	c.JSON(http.StatusOK, models.TrialResponse{
		Sequential: out.Sequential,
		Parallel:   out.Parallel,
		Delta:      out.Delta,
		TotalMs:    time.Since(start).Milliseconds(),
	})
}

// ListTrials returns stored trial records, newest first.
// Query parameters: limit (int, default 20).
func (h *Handlers) ListTrials(c *gin.Context) {
	if h.Store == nil {
		respondErr(c, "trials", http.StatusNotFound, "trial history is disabled")
		return
	}

	limit := 20
	if l := c.Query("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			respondErr(c, "trials", http.StatusBadRequest, "limit must be an integer >= 1")
			return
		}
		limit = n
	}

	records, err := h.Store.List(limit)
	if err != nil {
		respondErr(c, "trials", http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.TrialListResponse{
		Trials: records,
		Count:  len(records),
	})
}

func respondErr(c *gin.Context, endpoint string, status int, msg string) {
	c.JSON(status, models.ErrorResponse{
		Endpoint: endpoint,
		Error:    msg,
	})
}
