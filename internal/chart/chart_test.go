package chart

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/nhp-simulation/internal/engine"
	"github.com/rshade/nhp-simulation/internal/refdata"
	"github.com/rshade/nhp-simulation/internal/scenario"
)

func runAll(t *testing.T) *scenario.Results {
	t.Helper()
	r, err := scenario.NewDefaultRunner(zerolog.Nop())
	require.NoError(t, err)
	res, err := r.RunAll(context.Background())
	require.NoError(t, err)
	return res
}

func chartByFile(t *testing.T, charts []BarChart, file string) BarChart {
	t.Helper()
	for _, c := range charts {
		if c.File == file {
			return c
		}
	}
	require.Failf(t, "chart not found", "%s", file)
	return BarChart{}
}

func TestBuild_Files(t *testing.T) {
	charts := Build(runAll(t))

	var files []string
	for _, c := range charts {
		files = append(files, c.File)
	}
	assert.Equal(t, []string{
		"A_computing_power.png",
		"B_cloud_comparison.png",
		"C_user_income_regions.png",
		"D_manufacturer_savings.png",
		"E_environmental.png",
		"F_network_alliances.png",
		"G_task_feasibility.png",
		"I_market_size.png",
		"J_token_economics.png",
		"K_competitive.png",
		"L_breakeven.png",
	}, files)

	for _, c := range charts {
		for _, s := range c.Series {
			assert.Len(t, s.Values, len(c.Labels), "%s/%s", c.File, s.Name)
		}
	}
}

func TestBuild_ComputingPowerSortedByPeak(t *testing.T) {
	a := chartByFile(t, Build(runAll(t)), "A_computing_power.png")

	require.Len(t, a.Series, refdata.NumVariants)
	assert.Equal(t, "Optimistic", a.Series[0].Name)
	assert.Len(t, a.Labels, 7)

	optimistic := a.Series[refdata.Optimistic].Values
	for i := 1; i < len(optimistic); i++ {
		assert.GreaterOrEqual(t, optimistic[i-1], optimistic[i])
	}

	samsung := -1
	for i, l := range a.Labels {
		if l == "Samsung" {
			samsung = i
		}
	}
	require.NotEqual(t, -1, samsung)
	assert.InDelta(t, 656_250, a.Series[refdata.Moderate].Values[samsung], 1e-6)
}

func TestBuild_CloudComparison(t *testing.T) {
	b := chartByFile(t, Build(runAll(t)), "B_cloud_comparison.png")

	assert.Len(t, b.Labels, 7)
	assert.Len(t, b.Series, 7)
	assert.IsIncreasing(t, b.Labels)
	for i := 1; i < len(b.Series); i++ {
		assert.Less(t, b.Series[i-1].Name, b.Series[i].Name)
	}
}

func TestBuild_SingleSeries(t *testing.T) {
	charts := Build(runAll(t))

	j := chartByFile(t, charts, "J_token_economics.png")
	require.Len(t, j.Series, 1)
	assert.Equal(t, "1,000,000,000 devices", j.Labels[len(j.Labels)-1])
	assert.InDelta(t, 1.575e9, j.Series[0].Values[len(j.Labels)-1], 1)

	k := chartByFile(t, charts, "K_competitive.png")
	assert.True(t, k.Horizontal)
	for _, v := range k.Series[0].Values {
		assert.LessOrEqual(t, v, float64(maxPowerRatio))
	}
}

func TestBuild_SkipsMissingCategories(t *testing.T) {
	assert.Empty(t, Build(&scenario.Results{RunID: "empty"}))
}

func TestBuild_PhaseCharts(t *testing.T) {
	r, err := scenario.NewDefaultRunner(zerolog.Nop())
	require.NoError(t, err)

	tests := []struct {
		phase string
		files []string
	}{
		{scenario.PhaseSettlement, []string{
			"settlement_01_scores.png", "settlement_03_fees.png", "settlement_04_acceptance.png",
			"settlement_05_regional.png", "settlement_02_income.png",
		}},
		{scenario.PhaseRegional, []string{
			"reg_01_opportunity.png", "reg_02_market_size.png", "reg_03_income_pct.png", "reg_04_strategy_matrix.png",
		}},
		{scenario.PhaseDeveloper, []string{
			"dev_01_cost_comparison.png", "dev_02_annual_savings.png", "dev_06_fitness.png",
			"dev_03_pricing.png", "dev_04_token_lifecycle.png", "dev_05_demand_segments.png",
		}},
		{scenario.PhaseCritique, []string{
			"crit_01_realistic_pricing.png", "crit_02_thermal.png", "crit_03_india.png",
			"crit_04_payment_flow.png", "crit_05_npu_vs_gpu.png",
		}},
		{scenario.PhaseVisionary, []string{
			"vis_01_follow_the_moon.png", "vis_02_ewaste.png", "vis_03_sovereignty.png",
			"vis_04_education.png", "vis_05_tipping_points.png", "vis_06_2030_projection.png",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			res, err := r.RunPhase(context.Background(), tt.phase)
			require.NoError(t, err)

			charts := Build(res)
			files := make([]string, len(charts))
			for i, c := range charts {
				files[i] = c.File
				_, err := c.Plot()
				assert.NoError(t, err, c.File)
			}
			assert.Equal(t, tt.files, files)
		})
	}
}

func TestBuild_SettlementIncomeFocusRegion(t *testing.T) {
	r, err := scenario.NewDefaultRunner(zerolog.Nop())
	require.NoError(t, err)
	res, err := r.RunPhase(context.Background(), scenario.PhaseSettlement)
	require.NoError(t, err)

	income := chartByFile(t, Build(res), "settlement_02_income.png")
	assert.Len(t, income.Labels, 8)
	require.Len(t, income.Series, 1)
	assert.True(t, income.Horizontal)

	regions := chartByFile(t, Build(res), "settlement_05_regional.png")
	require.Len(t, regions.Series, 2)
	for _, v := range regions.Series[1].Values {
		assert.LessOrEqual(t, v, 0.0, "blocked regions drawn below the axis")
	}
}

func TestPivot(t *testing.T) {
	c := scenario.CategoryResults{Records: []scenario.Record{
		{Result: engine.ProjectionResult{Path: "Slow", Year: 2026, DevicesM: 1}},
		{Result: engine.ProjectionResult{Path: "Slow", Year: 2027, DevicesM: 2}},
		{Result: engine.ProjectionResult{Path: "Fast", Year: 2027, DevicesM: 20}},
	}}

	labels, series := pivot(c,
		func(r engine.ProjectionResult) string { return r.Path },
		func(r engine.ProjectionResult) string { return fmt.Sprintf("%d", r.Year) },
		func(r engine.ProjectionResult) float64 { return r.DevicesM })

	assert.Equal(t, []string{"2026", "2027"}, labels)
	require.Len(t, series, 2)
	assert.Equal(t, "Slow", series[0].Name)
	assert.Equal(t, []float64{1, 2}, series[0].Values)
	assert.Equal(t, []float64{0, 20}, series[1].Values)
}

func TestPlot_Errors(t *testing.T) {
	_, err := BarChart{Title: "empty"}.Plot()
	require.Error(t, err)

	_, err = BarChart{
		Title:  "mismatch",
		Labels: []string{"a", "b"},
		Series: []Series{{Name: "s", Color: color.Black, Values: []float64{1}}},
	}.Plot()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 values for 2 labels")
}

func TestPlot_NonFinite(t *testing.T) {
	_, err := BarChart{
		Title:  "inf",
		Labels: []string{"a", "b", "c"},
		Series: []Series{{Name: "s", Color: color.Black, Values: []float64{math.Inf(1), math.NaN(), 3}}},
	}.Plot()
	require.NoError(t, err)
}

func TestSortByPeak(t *testing.T) {
	labels := []string{"low", "high", "mid"}
	series := []Series{
		{Values: []float64{1, 5, 2}},
		{Values: []float64{0, 1, 4}},
	}
	sortByPeak(labels, series)

	assert.Equal(t, []string{"high", "mid", "low"}, labels)
	assert.Equal(t, []float64{5, 2, 1}, series[0].Values)
	assert.Equal(t, []float64{1, 4, 0}, series[1].Values)
}

func TestHexColor(t *testing.T) {
	r, g, b, _ := HexColor("#3498DB").RGBA()
	assert.Equal(t, uint32(0x34), r>>8)
	assert.Equal(t, uint32(0x98), g>>8)
	assert.Equal(t, uint32(0xDB), b>>8)

	assert.Equal(t, color.Gray{Y: 0x80}, HexColor("blue"))
}

func TestSignedMoney(t *testing.T) {
	assert.Equal(t, "-$1.5M", signedMoney(-1_500_000))
	assert.Equal(t, "$2.5B", signedMoney(2_520_000_000))
}

func TestRenderAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")

	paths, err := NewRenderer(dir, zerolog.Nop()).RenderAll(runAll(t))
	require.NoError(t, err)
	require.Len(t, paths, 11)

	info, err := os.Stat(filepath.Join(dir, "A_computing_power.png"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
