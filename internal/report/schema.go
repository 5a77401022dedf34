package report

import (
	"strconv"
	"strings"

	"github.com/darlopvil/trabajo-L4-G7/internal/estimator"
)

// Column identifies one field of the results table. The set of columns and
// their order is configuration, so variants that shuffle the table layout
// differ only in their Schema, not in writer code.
type Column string

const (
	ColSamples Column = "Samples"
	ColMethod  Column = "Método"
	ColThreads Column = "Hilos"
	ColPi      Column = "Valor Pi"
	ColSeconds Column = "Tiempo (s)"
	ColMillis  Column = "Tiempo (ms)"
	ColMicros  Column = "Tiempo (us)"
)

// Method labels written to the table. Spanish, matching the header.
const (
	methodSequential = "Secuencial"
	methodParallel   = "Paralelo"
)

// Schema is an ordered list of columns plus the field delimiter.
type Schema struct {
	Columns   []Column
	Delimiter string
}

// DefaultSchema returns the canonical column order:
// Samples;Método;Hilos;Valor Pi;Tiempo (s);Tiempo (ms);Tiempo (us).
func DefaultSchema() Schema {
	return Schema{
		Columns: []Column{
			ColSamples, ColMethod, ColThreads, ColPi,
			ColSeconds, ColMillis, ColMicros,
		},
		Delimiter: ";",
	}
}

// Header renders the header row without a trailing newline.
func (s Schema) Header() string {
	parts := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		parts[i] = string(c)
	}
	return strings.Join(parts, s.Delimiter)
}

// Row renders one result as a data row without a trailing newline.
func (s Schema) Row(r estimator.Result) string {
	parts := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		parts[i] = fieldFor(c, r)
	}
	return strings.Join(parts, s.Delimiter)
}

func fieldFor(c Column, r estimator.Result) string {
	switch c {
	case ColSamples:
		return strconv.FormatInt(r.Samples, 10)
	case ColMethod:
		if r.Parallel {
			return methodParallel
		}
		return methodSequential
	case ColThreads:
		return strconv.FormatInt(int64(r.Threads), 10)
	case ColPi:
		return formatDecimal(r.Pi, 12)
	case ColSeconds:
		return formatDecimal(r.ElapsedSeconds, 12)
	case ColMillis:
		return formatDecimal(r.ElapsedMillis, 8)
	case ColMicros:
		return formatDecimal(r.ElapsedMicros, 8)
	}
	return ""
}

// formatDecimal renders a float with fixed precision and a comma as the
// decimal separator, the convention the results table uses.
func formatDecimal(v float64, precision int) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', precision, 64), ".", ",")
}
