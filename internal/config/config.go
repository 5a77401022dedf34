package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the application.
type Config struct {
	Port          string
	OtelEndpoint  string
	ServiceName   string
	DisableTraces bool

	// WorkerCount is the fixed parallel-estimator thread count. It is
	// configuration, never derived from the machine's CPU count.
	WorkerCount int

	// SampleSizes is the default trial list; a command-line argument
	// replaces it with a single size.
	SampleSizes []int64

	// BaseSeed seeds the sequential generator and the per-worker seed
	// derivation. Zero means "seed from the clock".
	BaseSeed int64

	OutputFile   string
	StorePath    string
	StoreEnabled bool
}

// Load reads a .env file if present, then environment variables, and
// returns a populated Config with defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		OtelEndpoint:  getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:   getEnv("OTEL_SERVICE_NAME", "montecarlo-lab"),
		DisableTraces: getEnv("OTEL_TRACES_EXPORTER", "") == "none",
		WorkerCount:   getEnvInt("WORKER_COUNT", 4),
		SampleSizes:   getEnvSizes("SAMPLE_SIZES", []int64{3000, 300000, 3000000}),
		BaseSeed:      getEnvInt64("BASE_SEED", 0),
		OutputFile:    getEnv("OUTPUT_FILE", "resultados_montecarlo_todos.csv"),
		StorePath:     getEnv("STORE_PATH", "./data/trials"),
		StoreEnabled:  getEnvBool("STORE_ENABLED", false),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v == "true" || v == "1"
}

// getEnvSizes parses a comma-separated list of sample sizes. A malformed
// entry invalidates the whole list and the default is used instead.
func getEnvSizes(key string, def []int64) []int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	sizes := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return def
		}
		sizes = append(sizes, n)
	}
	return sizes
}
