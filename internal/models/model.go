package models

import (
	"github.com/darlopvil/trabajo-L4-G7/internal/estimator"
	"github.com/darlopvil/trabajo-L4-G7/internal/store"
)

// TrialResponse is returned by /trial on success.
type TrialResponse struct {
	Sequential estimator.Result `json:"sequential"`
	Parallel   estimator.Result `json:"parallel"`
	Delta      float64          `json:"delta"`
	TotalMs    int64            `json:"totalMs"`
}

// TrialListResponse is returned by /trials.
type TrialListResponse struct {
	Trials []store.Record `json:"trials"`
	Count  int            `json:"count"`
}

// ErrorResponse is returned by all endpoints on failure.
type ErrorResponse struct {
	Endpoint string `json:"endpoint"`
	Error    string `json:"error"`
}
