package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

func TestCostComparison_SamsungAWS(t *testing.T) {
	got := CostComparison(mustManufacturer(t, "samsung"), mustCloud(t, "aws_a100"), 0.40)

	assert.Equal(t, "Samsung", got.Manufacturer)
	assert.Equal(t, "AWS (A100 80GB)", got.CloudProvider)
	assert.Equal(t, "AWS-A100", got.CloudShort)
	assert.InDelta(t, 40.0, got.CoveragePct, 1e-9)
	assert.InDelta(t, 56_892.361111, got.DailyCloudTotal, 1e-5)
	assert.InDelta(t, 22_756.944444, got.DailyNHPSavings, 1e-5)
	assert.InDelta(t, 682_708.333333, got.MonthlySavings, 1e-5)
	assert.InDelta(t, 8_192_500.0, got.AnnualSavings, 1e-4)
	assert.InDelta(t, 20_765_711.805556, got.AnnualCloudTotal, 1e-4)
	// 360-day savings over a 365-day cloud year
	assert.InDelta(t, 40.0*360/365, got.SavingsPct, 1e-9)
}

func TestCostComparison_Coverage(t *testing.T) {
	mfg := mustManufacturer(t, "apple")
	cloud := mustCloud(t, "lambda_h100")

	zero := CostComparison(mfg, cloud, 0)
	assert.Zero(t, zero.DailyNHPSavings)
	assert.Zero(t, zero.MonthlySavings)
	assert.Zero(t, zero.AnnualSavings)
	assert.Zero(t, zero.SavingsPct)
	assert.Positive(t, zero.DailyCloudTotal)

	prev := zero.AnnualSavings
	for _, cov := range []float64{0.05, 0.15, 0.40, 0.70, 1.0} {
		got := CostComparison(mfg, cloud, cov)
		assert.Greater(t, got.AnnualSavings, prev, "coverage %v", cov)
		prev = got.AnnualSavings
	}
}

func TestCostComparison_NoRequests(t *testing.T) {
	mfg := refdata.Manufacturer{Name: "Quiet"}
	got := CostComparison(mfg, mustCloud(t, "aws_h100"), 0.5)

	assert.Zero(t, got.DailyCloudTotal)
	assert.Zero(t, got.SavingsPct, "guarded division")
}

func TestBreakeven_NeverPaysBack(t *testing.T) {
	got := Breakeven(mustManufacturer(t, "samsung"), mustCloud(t, "aws_a100"), 50_000_000, 2_000_000, 0.40)

	assert.Equal(t, "AWS-A100", got.CloudProvider)
	assert.InDelta(t, 682_708.333333, got.MonthlySavings, 1e-5)
	assert.InDelta(t, -1_317_291.666667, got.NetMonthlyBenefit, 1e-5)
	assert.True(t, math.IsInf(got.BreakevenMonths, 1))
	assert.InDelta(t, -129_037_500.0, got.FiveYearNet, 1e-4)
	assert.InDelta(t, -258.075, got.ROI5yrPct, 1e-9)
}

func TestBreakeven_PaysBack(t *testing.T) {
	pricey := refdata.CloudProvider{
		Key: "pricey", Name: "Pricey", Short: "PRC", GPUModel: "H100",
		GPUsPerInstance: 1, TOPSPerGPU: refdata.H100TOPS, HourlyCost: 100,
	}
	mfg := mustManufacturer(t, "samsung")

	got := Breakeven(mfg, pricey, 50_000_000, 2_000_000, 0.40)

	monthly := CostComparison(mfg, pricey, 0.40).MonthlySavings
	assert.Equal(t, monthly, got.MonthlySavings)
	assert.InDelta(t, 50_000_000/(monthly-2_000_000), got.BreakevenMonths, 1e-9)
	assert.False(t, math.IsInf(got.BreakevenMonths, 0))
	assert.Positive(t, got.ROI5yrPct)
}

func TestBreakeven_ZeroDevCost(t *testing.T) {
	got := Breakeven(mustManufacturer(t, "google"), mustCloud(t, "aws_a100"), 0, 0, 0.40)

	assert.Zero(t, got.ROI5yrPct, "guarded division")
	assert.Zero(t, got.BreakevenMonths, "0 / positive benefit")
}
