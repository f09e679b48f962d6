package scenario

import (
	"github.com/rshade/nhp-simulation/internal/engine"
	"github.com/rshade/nhp-simulation/internal/refdata"
)

// Highlight is one headline figure of a run.
type Highlight struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Scale string  `json:"scale,omitempty"`
}

// CategoryCount is the number of records a category produced.
type CategoryCount struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

// Summary holds the headline figures of a run under one variant. A
// highlight is nil when its category is missing or empty.
type Summary struct {
	RunID          string          `json:"run_id"`
	Variant        string          `json:"variant"`
	TotalScenarios int             `json:"total_scenarios"`
	Categories     []CategoryCount `json:"categories"`

	TopFleet           *Highlight `json:"top_fleet,omitempty"`
	TopAlliance        *Highlight `json:"top_alliance,omitempty"`
	TopSaver           *Highlight `json:"top_saver,omitempty"`
	MaxPlatformRevenue *Highlight `json:"max_platform_revenue,omitempty"`
}

// Summarize picks the best moderate result of categories A, F, D and J.
func Summarize(res *Results) Summary {
	return SummarizeVariant(res, refdata.Moderate)
}

// SummarizeVariant picks the best result of categories A, F, D and J under
// variant v. Ties keep the earlier record.
func SummarizeVariant(res *Results, v refdata.Variant) Summary {
	s := Summary{
		RunID:          res.RunID,
		Variant:        v.String(),
		TotalScenarios: res.Total(),
	}
	for _, c := range res.Categories {
		s.Categories = append(s.Categories, CategoryCount{Key: c.Key, Title: c.Title, Count: len(c.Records)})
	}

	s.TopFleet = best(res, "A", v, func(rec Record) (*Highlight, bool) {
		r, ok := rec.Result.(engine.FleetPowerResult)
		if !ok {
			return nil, false
		}
		return &Highlight{Label: r.Manufacturer, Value: r.H100Equivalent, Unit: "H100 equiv"}, true
	})

	s.TopAlliance = best(res, "F", v, func(rec Record) (*Highlight, bool) {
		r, ok := rec.Result.(engine.CombinedNetworkResult)
		if !ok {
			return nil, false
		}
		return &Highlight{Label: r.Alliance, Value: r.H100Equivalent, Unit: "H100 equiv"}, true
	})

	s.TopSaver = best(res, "D", v, func(rec Record) (*Highlight, bool) {
		r, ok := rec.Result.(engine.CostComparisonResult)
		if !ok {
			return nil, false
		}
		return &Highlight{Label: r.Manufacturer, Value: r.AnnualSavings, Unit: "USD/year"}, true
	})

	s.MaxPlatformRevenue = best(res, "J", v, func(rec Record) (*Highlight, bool) {
		r, ok := rec.Result.(TokenScenario)
		if !ok {
			return nil, false
		}
		return &Highlight{
			Label: "platform revenue",
			Value: r.PlatformRevenueMonthly,
			Unit:  "USD/month",
			Scale: r.ScaleLabel,
		}, true
	})

	return s
}

// best returns the highlight with the largest value among the records of a
// category produced under v.
func best(res *Results, key string, v refdata.Variant, pick func(Record) (*Highlight, bool)) *Highlight {
	c, ok := res.Category(key)
	if !ok {
		return nil
	}

	var top *Highlight
	for _, rec := range c.ByVariant(v) {
		h, ok := pick(rec)
		if !ok {
			continue
		}
		if top == nil || h.Value > top.Value {
			top = h
		}
	}
	return top
}
