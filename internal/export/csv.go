// Package export writes scenario results as CSV and JSON files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rshade/nhp-simulation/internal/record"
)

// ListSeparator joins list values inside a single CSV cell.
const ListSeparator = "; "

// WriteCSV writes rows under a header made of the sorted union of their
// keys. Cells for keys a row does not have are left empty.
func WriteCSV(w io.Writer, rows []record.Row) error {
	header := record.UnionKeys(rows)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	pos := make(map[string]int, len(header))
	for i, k := range header {
		pos[k] = i
	}

	line := make([]string, len(header))
	for n, row := range rows {
		for i := range line {
			line[i] = ""
		}
		for _, f := range row {
			line[pos[f.Key]] = FormatValue(f.Value)
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("writing csv row %d: %w", n+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// FormatValue renders a row value as a CSV cell. Floats use the shortest
// decimal that round-trips, without exponent; non-finite floats render as
// "inf", "-inf" or "nan".
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return formatFloat(x)
	case []string:
		return strings.Join(x, ListSeparator)
	case []int64:
		parts := make([]string, len(x))
		for i, n := range x {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return strings.Join(parts, ListSeparator)
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	return decimal.NewFromFloat(f).String()
}
