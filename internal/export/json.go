package export

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/goccy/go-json"

	"github.com/rshade/nhp-simulation/internal/record"
	"github.com/rshade/nhp-simulation/internal/scenario"
)

// WriteJSON writes a run as one JSON document:
//
//	{"run_id": ..., "generated_at": ..., "total": N, "categories": {"A": [...], ...}}
//
// Categories and the keys of each record keep their run order. Non-finite
// floats are written as null.
func WriteJSON(w io.Writer, res *scenario.Results, generatedAt time.Time) error {
	var buf bytes.Buffer

	buf.WriteString(`{"run_id":`)
	if err := writeValue(&buf, res.RunID); err != nil {
		return err
	}
	buf.WriteString(`,"generated_at":`)
	if err := writeValue(&buf, generatedAt.UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	fmt.Fprintf(&buf, `,"total":%d,"categories":{`, res.Total())

	for i, c := range res.Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(&buf, c.Key); err != nil {
			return err
		}
		buf.WriteString(":[")
		for j, rec := range c.Records {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeRow(&buf, rec.Row()); err != nil {
				return fmt.Errorf("category %s record %d: %w", c.Key, j, err)
			}
		}
		buf.WriteByte(']')
	}
	buf.WriteString("}}")

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("indenting json: %w", err)
	}
	out.WriteByte('\n')

	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}

func writeRow(buf *bytes.Buffer, row record.Row) error {
	buf.WriteByte('{')
	for i, f := range row {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(buf, f.Key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeValue(buf, f.Value); err != nil {
			return fmt.Errorf("field %s: %w", f.Key, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	if f, ok := v.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		buf.WriteString("null")
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}
	buf.Write(b)
	return nil
}
