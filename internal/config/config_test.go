package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, []int64{3000, 300000, 3000000}, cfg.SampleSizes)
	assert.Equal(t, "resultados_montecarlo_todos.csv", cfg.OutputFile)
	assert.False(t, cfg.StoreEnabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("SAMPLE_SIZES", "1000, 2000,3000")
	t.Setenv("BASE_SEED", "42")
	t.Setenv("STORE_ENABLED", "true")
	t.Setenv("OTEL_TRACES_EXPORTER", "none")

	cfg := Load()

	assert.Equal(t, 8, cfg.WorkerCount)
	assert.Equal(t, []int64{1000, 2000, 3000}, cfg.SampleSizes)
	assert.Equal(t, int64(42), cfg.BaseSeed)
	assert.True(t, cfg.StoreEnabled)
	assert.True(t, cfg.DisableTraces)
}

func TestMalformedSizesFallBackToDefault(t *testing.T) {
	t.Setenv("SAMPLE_SIZES", "1000,abc")

	cfg := Load()
	assert.Equal(t, []int64{3000, 300000, 3000000}, cfg.SampleSizes)
}

func TestMalformedIntsFallBackToDefault(t *testing.T) {
	t.Setenv("WORKER_COUNT", "many")
	t.Setenv("BASE_SEED", "x")

	cfg := Load()
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, int64(0), cfg.BaseSeed)
}
