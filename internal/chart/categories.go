package chart

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/rshade/nhp-simulation/internal/engine"
	"github.com/rshade/nhp-simulation/internal/refdata"
	"github.com/rshade/nhp-simulation/internal/report"
	"github.com/rshade/nhp-simulation/internal/scenario"
)

// Single-series bar colors.
const (
	colorBlue  = "#3498DB"
	colorGreen = "#2ECC71"
)

// maxPowerRatio caps competitor power ratios so one outlier does not flatten
// the chart.
const maxPowerRatio = 100

// variantSeries groups records by variant over the given labels. value
// extracts a record's label and metric.
func variantSeries(c scenario.CategoryResults, labels []string, value func(scenario.Record) (string, float64)) []Series {
	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		pos[l] = i
	}

	series := make([]Series, refdata.NumVariants)
	for _, v := range refdata.AllVariants() {
		series[v] = Series{Name: v.String(), Color: HexColor(v.Color()), Values: make([]float64, len(labels))}
	}
	for _, rec := range c.Records {
		if !rec.Variant.Valid() {
			continue
		}
		label, val := value(rec)
		if i, ok := pos[label]; ok {
			series[rec.Variant].Values[i] = val
		}
	}
	return series
}

// moderateSeries returns the moderate records of c as one labelled series.
func moderateSeries(c scenario.CategoryResults, color string, value func(scenario.Record) (string, float64)) ([]string, []Series) {
	var labels []string
	s := Series{Name: refdata.Moderate.String(), Color: HexColor(color)}
	for _, rec := range c.ByVariant(refdata.Moderate) {
		label, val := value(rec)
		labels = append(labels, label)
		s.Values = append(s.Values, val)
	}
	return labels, []Series{s}
}

// uniqueLabels returns the distinct labels of c in first-seen order.
func uniqueLabels(c scenario.CategoryResults, value func(scenario.Record) (string, float64)) []string {
	seen := map[string]bool{}
	var out []string
	for _, rec := range c.Records {
		label, _ := value(rec)
		if !seen[label] {
			seen[label] = true
			out = append(out, label)
		}
	}
	return out
}

func fleetH100(rec scenario.Record) (string, float64) {
	r := rec.Result.(engine.FleetPowerResult)
	return r.Manufacturer, r.H100Equivalent
}

func savings(rec scenario.Record) (string, float64) {
	r := rec.Result.(engine.CostComparisonResult)
	return r.Manufacturer, r.AnnualSavings
}

// Build describes the charts for every category of res that has one, phase
// categories included.
func Build(res *scenario.Results) []BarChart {
	var charts []BarChart

	if c, ok := res.Category("A"); ok && len(c.Records) > 0 {
		labels := uniqueLabels(c, fleetH100)
		series := variantSeries(c, labels, fleetH100)
		sortByPeak(labels, series)
		charts = append(charts, BarChart{
			File: "A_computing_power.png", Title: "Computing Power: H100 Equivalents per Manufacturer",
			ValueLabel: "H100 Equivalents", Labels: labels, Series: series, Ticks: report.Num,
		})
	}

	if c, ok := res.Category("B"); ok && len(c.Records) > 0 {
		charts = append(charts, cloudComparison(c))
	}

	if c, ok := res.Category("C"); ok && len(c.Records) > 0 {
		value := func(rec scenario.Record) (string, float64) {
			r := rec.Result.(engine.UserIncomeResult)
			return r.Region, r.MonthlyNet
		}
		labels := uniqueLabels(c, value)
		charts = append(charts, BarChart{
			File: "C_user_income_regions.png", Title: "Monthly User Income by Region",
			ValueLabel: "Monthly Net Income (USD)", Labels: labels, Series: variantSeries(c, labels, value),
		})
	}

	if c, ok := res.Category("D"); ok && len(c.Records) > 0 {
		labels := uniqueLabels(c, savings)
		charts = append(charts, BarChart{
			File: "D_manufacturer_savings.png", Title: "Annual Savings: Manufacturer AI via NHP vs AWS",
			ValueLabel: "Annual Savings (USD)", Labels: labels, Series: variantSeries(c, labels, savings), Ticks: report.Money,
		})
	}

	if c, ok := res.Category("E"); ok && len(c.Records) > 0 {
		value := func(rec scenario.Record) (string, float64) {
			r := rec.Result.(engine.EnvironmentalResult)
			return r.Manufacturer, r.CO2SavedNet
		}
		labels := uniqueLabels(c, value)
		charts = append(charts, BarChart{
			File: "E_environmental.png", Title: "Net CO₂ Saved per Year by Manufacturer Fleet",
			ValueLabel: "Tons CO₂ / Year", Labels: labels, Series: variantSeries(c, labels, value), Ticks: report.Num,
		})
	}

	if c, ok := res.Category("F"); ok && len(c.Records) > 0 {
		labels, series := moderateSeries(c, colorBlue, func(rec scenario.Record) (string, float64) {
			r := rec.Result.(engine.CombinedNetworkResult)
			return r.Alliance, r.H100Equivalent
		})
		charts = append(charts, BarChart{
			File: "F_network_alliances.png", Title: "Network Alliance Power (Moderate)",
			ValueLabel: "H100 Equivalents", Labels: labels, Series: series, Horizontal: true, Ticks: report.Num,
		})
	}

	if c, ok := res.Category("G"); ok && len(c.Records) > 0 {
		labels, series := moderateSeries(c, colorGreen, func(rec scenario.Record) (string, float64) {
			r := rec.Result.(engine.TaskFeasibilityResult)
			return r.TaskName, r.FeasibilityScore
		})
		charts = append(charts, BarChart{
			File: "G_task_feasibility.png", Title: "AI Task Feasibility for NHP (Moderate Overhead)",
			ValueLabel: "Feasibility Score", Labels: labels, Series: series, Horizontal: true,
		})
	}

	if c, ok := res.Category("I"); ok && len(c.Records) > 0 {
		labels, series := moderateSeries(c, colorGreen, func(rec scenario.Record) (string, float64) {
			r := rec.Result.(engine.MarketSizeResult)
			return r.Region, float64(r.NHPDevices)
		})
		charts = append(charts, BarChart{
			File: "I_market_size.png", Title: "Potential NHP Devices by Region (Moderate Penetration)",
			ValueLabel: "Devices", Labels: labels, Series: series,
			Ticks: func(v float64) string { return fmt.Sprintf("%.1fM", v/1e6) },
		})
	}

	if c, ok := res.Category("J"); ok && len(c.Records) > 0 {
		labels, series := moderateSeries(c, colorBlue, func(rec scenario.Record) (string, float64) {
			r := rec.Result.(scenario.TokenScenario)
			return r.ScaleLabel, r.PlatformRevenueMonthly
		})
		charts = append(charts, BarChart{
			File: "J_token_economics.png", Title: "Monthly Platform Revenue by Network Scale (Moderate)",
			ValueLabel: "Monthly Revenue (USD)", Labels: labels, Series: series, Ticks: report.Money,
		})
	}

	if c, ok := res.Category("K"); ok && len(c.Records) > 0 {
		labels, series := moderateSeries(c, colorGreen, func(rec scenario.Record) (string, float64) {
			r := rec.Result.(engine.CompetitiveResult)
			return r.Competitor, math.Min(r.PowerRatio, maxPowerRatio)
		})
		charts = append(charts, BarChart{
			File: "K_competitive.png", Title: "NHP Power Advantage vs Competitors (Moderate)",
			ValueLabel: "Power Ratio (NHP / Competitor)", Labels: labels, Series: series, Horizontal: true,
		})
	}

	if c, ok := res.Category("L"); ok && len(c.Records) > 0 {
		value := func(rec scenario.Record) (string, float64) {
			r := rec.Result.(engine.BreakevenResult)
			return r.Manufacturer, r.FiveYearNet
		}
		labels := uniqueLabels(c, value)
		charts = append(charts, BarChart{
			File: "L_breakeven.png", Title: "Five-Year Net Benefit vs AWS A100",
			ValueLabel: "Five-Year Net (USD)", Labels: labels, Series: variantSeries(c, labels, value), Ticks: signedMoney,
		})
	}

	return append(charts, phaseCharts(res)...)
}

// cloudComparison groups moderate annual savings by manufacturer with one
// series per cloud, both in alphabetical order.
func cloudComparison(c scenario.CategoryResults) BarChart {
	values := map[string]map[string]float64{}
	mfgSet, cloudSet := map[string]bool{}, map[string]bool{}
	for _, rec := range c.ByVariant(refdata.Moderate) {
		r := rec.Result.(engine.CostComparisonResult)
		if values[r.CloudShort] == nil {
			values[r.CloudShort] = map[string]float64{}
		}
		values[r.CloudShort][r.Manufacturer] = r.AnnualSavings
		mfgSet[r.Manufacturer] = true
		cloudSet[r.CloudShort] = true
	}

	mfgs, clouds := sortedKeys(mfgSet), sortedKeys(cloudSet)
	series := make([]Series, len(clouds))
	for j, cloud := range clouds {
		s := Series{Name: cloud, Color: PaletteColor(j), Values: make([]float64, len(mfgs))}
		for i, m := range mfgs {
			s.Values[i] = values[cloud][m]
		}
		series[j] = s
	}

	return BarChart{
		File: "B_cloud_comparison.png", Title: "Annual Savings: NHP vs Cloud (Moderate)",
		ValueLabel: "Annual Savings (USD)", Labels: mfgs, Series: series, Ticks: report.Money,
	}
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// sortByPeak reorders labels, and the values of every series with them, by
// the largest value across series, descending. Ties keep their order.
func sortByPeak(labels []string, series []Series) {
	idx := make([]int, len(labels))
	peak := make([]float64, len(labels))
	for i := range labels {
		idx[i] = i
		peak[i] = math.Inf(-1)
		for _, s := range series {
			peak[i] = math.Max(peak[i], s.Values[i])
		}
	}
	sort.SliceStable(idx, func(a, b int) bool { return peak[idx[a]] > peak[idx[b]] })

	sortedLabels := make([]string, len(labels))
	for to, from := range idx {
		sortedLabels[to] = labels[from]
	}
	copy(labels, sortedLabels)

	for _, s := range series {
		vals := make([]float64, len(s.Values))
		for to, from := range idx {
			vals[to] = s.Values[from]
		}
		copy(s.Values, vals)
	}
}

func signedMoney(v float64) string {
	if v < 0 {
		return "-" + report.Money(-v)
	}
	return report.Money(v)
}

// Renderer writes charts into a directory.
type Renderer struct {
	dir    string
	logger zerolog.Logger
}

// NewRenderer creates a Renderer for dir.
func NewRenderer(dir string, logger zerolog.Logger) *Renderer {
	return &Renderer{dir: dir, logger: logger}
}

// RenderAll saves every chart Build produces for res and returns the file
// paths in order.
func (r *Renderer) RenderAll(res *scenario.Results) ([]string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating charts directory: %w", err)
	}

	var paths []string
	for _, c := range Build(res) {
		path := filepath.Join(r.dir, c.File)
		if err := c.Save(path); err != nil {
			return paths, err
		}
		r.logger.Debug().Str("path", path).Msg("chart written")
		paths = append(paths, path)
	}

	r.logger.Info().Int("charts", len(paths)).Str("dir", r.dir).Msg("charts rendered")
	return paths, nil
}
