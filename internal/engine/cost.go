package engine

import (
	"fmt"
	"math"

	"github.com/rshade/nhp-simulation/internal/pricing"
	"github.com/rshade/nhp-simulation/internal/refdata"
)

// CostComparisonResult compares cloud spend with the share NHP absorbs.
type CostComparisonResult struct {
	Manufacturer     string  `json:"manufacturer"`
	CloudProvider    string  `json:"cloud_provider"`
	CloudShort       string  `json:"cloud_short"`
	CoveragePct      float64 `json:"coverage_pct"`
	DailyCloudTotal  float64 `json:"daily_cloud_total"`
	DailyNHPSavings  float64 `json:"daily_nhp_savings"`
	MonthlySavings   float64 `json:"monthly_savings"`
	AnnualSavings    float64 `json:"annual_savings"`
	AnnualCloudTotal float64 `json:"annual_cloud_total"`
	SavingsPct       float64 `json:"savings_pct"`
}

// CostComparison prices a manufacturer's daily AI load on a cloud provider
// and the savings when NHP serves the coverage fraction of it.
//
// Savings roll up as 30-day months and 12-month years while the cloud total
// annualizes over 365 days, so SavingsPct is about 98.6% of coverage.
func CostComparison(mfg refdata.Manufacturer, cloud refdata.CloudProvider, coverage float64) CostComparisonResult {
	dailyCloud := pricing.DailyCloudCost(mfg.DailyAIRequests, cloud)
	dailySavings := dailyCloud * coverage

	monthly := dailySavings * refdata.DaysPerMonth
	annual := monthly * refdata.MonthsPerYear
	annualCloud := dailyCloud * refdata.DaysPerYear

	var savingsPct float64
	if annualCloud > 0 {
		savingsPct = annual / annualCloud * 100
	}

	return CostComparisonResult{
		Manufacturer:     mfg.Name,
		CloudProvider:    fmt.Sprintf("%s (%s)", cloud.Name, cloud.GPUModel),
		CloudShort:       cloud.Short,
		CoveragePct:      coverage * 100,
		DailyCloudTotal:  dailyCloud,
		DailyNHPSavings:  dailySavings,
		MonthlySavings:   monthly,
		AnnualSavings:    annual,
		AnnualCloudTotal: annualCloud,
		SavingsPct:       savingsPct,
	}
}

// BreakevenResult is the payback profile of an NHP integration.
type BreakevenResult struct {
	Manufacturer      string  `json:"manufacturer"`
	CloudProvider     string  `json:"cloud_provider"`
	DevelopmentCost   float64 `json:"development_cost"`
	MonthlyOpsCost    float64 `json:"monthly_ops_cost"`
	MonthlySavings    float64 `json:"monthly_savings"`
	NetMonthlyBenefit float64 `json:"net_monthly_benefit"`
	BreakevenMonths   float64 `json:"breakeven_months"`
	FiveYearNet       float64 `json:"five_year_net"`
	ROI5yrPct         float64 `json:"roi_5yr_pct"`
}

// fiveYearMonths is the horizon of the breakeven projection.
const fiveYearMonths = 60

// Breakeven computes months to recover devCost from the monthly savings of
// CostComparison net of monthlyOps. BreakevenMonths is +Inf when the net
// monthly benefit is not positive.
func Breakeven(mfg refdata.Manufacturer, cloud refdata.CloudProvider, devCost, monthlyOps, coverage float64) BreakevenResult {
	savings := CostComparison(mfg, cloud, coverage).MonthlySavings
	net := savings - monthlyOps

	months := math.Inf(1)
	if net > 0 {
		months = devCost / net
	}

	fiveYear := savings*fiveYearMonths - devCost - monthlyOps*fiveYearMonths

	var roi float64
	if devCost > 0 {
		roi = fiveYear / devCost * 100
	}

	return BreakevenResult{
		Manufacturer:      mfg.Name,
		CloudProvider:     cloud.Short,
		DevelopmentCost:   devCost,
		MonthlyOpsCost:    monthlyOps,
		MonthlySavings:    savings,
		NetMonthlyBenefit: net,
		BreakevenMonths:   months,
		FiveYearNet:       fiveYear,
		ROI5yrPct:         roi,
	}
}
