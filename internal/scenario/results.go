package scenario

import (
	"github.com/rshade/nhp-simulation/internal/record"
	"github.com/rshade/nhp-simulation/internal/refdata"
)

// Record is one scenario outcome: a typed engine result tagged with the
// category and variant that produced it.
type Record struct {
	Category string
	Variant  refdata.Variant
	Result   any
}

// VariantName returns the English variant name, or "" for records that do
// not depend on a variant.
func (r Record) VariantName() string {
	if !r.Variant.Valid() {
		return ""
	}
	return r.Variant.String()
}

// Row flattens the record into an ordered key/value row.
func (r Record) Row() record.Row {
	return record.Flatten(r.Result, r.VariantName(), r.Category)
}

// CategoryResults holds the records of one category in generation order.
type CategoryResults struct {
	Key     string
	Title   string
	TitleAr string
	Records []Record
}

// ByVariant returns the records produced under variant v.
func (c CategoryResults) ByVariant(v refdata.Variant) []Record {
	var out []Record
	for _, rec := range c.Records {
		if rec.Variant == v {
			out = append(out, rec)
		}
	}
	return out
}

// Results is the ordered output of a run. Title and TitleAr are set by
// phase runs and left empty by full runs.
type Results struct {
	RunID      string
	Title      string
	TitleAr    string
	Categories []CategoryResults

	index map[string]int
}

func (r *Results) add(c CategoryResults) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	r.index[c.Key] = len(r.Categories)
	r.Categories = append(r.Categories, c)
}

// Category returns the results for a category key.
func (r *Results) Category(key string) (CategoryResults, bool) {
	i, ok := r.index[key]
	if !ok {
		return CategoryResults{}, false
	}
	return r.Categories[i], true
}

// Total returns the number of records across all categories.
func (r *Results) Total() int {
	n := 0
	for _, c := range r.Categories {
		n += len(c.Records)
	}
	return n
}

// Rows flattens every record in category order.
func (r *Results) Rows() []record.Row {
	rows := make([]record.Row, 0, r.Total())
	for _, c := range r.Categories {
		for _, rec := range c.Records {
			rows = append(rows, rec.Row())
		}
	}
	return rows
}
