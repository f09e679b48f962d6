package chart

import (
	"fmt"

	"github.com/rshade/nhp-simulation/internal/engine"
	"github.com/rshade/nhp-simulation/internal/refdata"
	"github.com/rshade/nhp-simulation/internal/report"
	"github.com/rshade/nhp-simulation/internal/scenario"
)

// Second series color and the loss color.
const (
	colorOrange = "#E67E22"
	colorRed    = "#E74C3C"
)

// column is one series drawn from every record of a category.
type column[T any] struct {
	name  string
	color string
	value func(T) float64
}

// columns draws one series per column over the records of c that keep
// accepts, labelled in record order. A nil keep accepts every record.
func columns[T any](c scenario.CategoryResults, keep func(scenario.Record) bool, label func(T) string, cols ...column[T]) ([]string, []Series) {
	series := make([]Series, len(cols))
	for j, col := range cols {
		series[j] = Series{Name: col.name, Color: HexColor(col.color)}
	}

	var labels []string
	for _, rec := range c.Records {
		if keep != nil && !keep(rec) {
			continue
		}
		r, ok := rec.Result.(T)
		if !ok {
			continue
		}
		labels = append(labels, label(r))
		for j, col := range cols {
			series[j].Values = append(series[j].Values, col.value(r))
		}
	}
	return labels, series
}

// pivot spreads records into one series per group, with labels and groups
// both in first-seen order. Missing cells stay zero.
func pivot[T any](c scenario.CategoryResults, group, label func(T) string, value func(T) float64) ([]string, []Series) {
	var labels, groups []string
	labelPos, groupPos := map[string]int{}, map[string]int{}
	cells := map[[2]int]float64{}

	for _, rec := range c.Records {
		r, ok := rec.Result.(T)
		if !ok {
			continue
		}
		l, g := label(r), group(r)
		if _, seen := labelPos[l]; !seen {
			labelPos[l] = len(labels)
			labels = append(labels, l)
		}
		if _, seen := groupPos[g]; !seen {
			groupPos[g] = len(groups)
			groups = append(groups, g)
		}
		cells[[2]int{groupPos[g], labelPos[l]}] = value(r)
	}

	series := make([]Series, len(groups))
	for j, g := range groups {
		series[j] = Series{Name: g, Color: PaletteColor(j), Values: make([]float64, len(labels))}
		for i := range labels {
			series[j].Values[i] = cells[[2]int{j, i}]
		}
	}
	return labels, series
}

func focusRegionModerate(rec scenario.Record) bool {
	r, ok := rec.Result.(scenario.SettlementRegionIncome)
	return ok && rec.Variant == refdata.Moderate && r.RegionKey == refdata.FocusRegionKey
}

func devicesM(v float64) string {
	return fmt.Sprintf("%.0fM", v)
}

// phaseCharts describes the charts of the phase categories present in res.
func phaseCharts(res *scenario.Results) []BarChart {
	var charts []BarChart
	add := func(key string, build func(c scenario.CategoryResults) BarChart) {
		if c, ok := res.Category(key); ok && len(c.Records) > 0 {
			charts = append(charts, build(c))
		}
	}
	addAll := func(key string, build func(c scenario.CategoryResults) []BarChart) {
		if c, ok := res.Category(key); ok && len(c.Records) > 0 {
			charts = append(charts, build(c)...)
		}
	}

	system := func(r engine.SettlementScoreResult) string { return r.System }
	addAll(scenario.CategorySettlementScore, func(c scenario.CategoryResults) []BarChart {
		scoreLabels, score := columns(c, nil, system,
			column[engine.SettlementScoreResult]{"Overall Score", colorBlue, func(r engine.SettlementScoreResult) float64 { return r.OverallScore }})
		feeLabels, fees := columns(c, nil, system,
			column[engine.SettlementScoreResult]{"Fee (%)", colorOrange, func(r engine.SettlementScoreResult) float64 { return r.TxFeePct }},
			column[engine.SettlementScoreResult]{"Settlement (hours)", colorBlue, func(r engine.SettlementScoreResult) float64 { return r.SettlementHours }})
		accLabels, acceptance := columns(c, nil, system,
			column[engine.SettlementScoreResult]{"User Ease", colorGreen, func(r engine.SettlementScoreResult) float64 { return r.UXScore }},
			column[engine.SettlementScoreResult]{"Manufacturer Acceptance", colorBlue, func(r engine.SettlementScoreResult) float64 { return r.MfgScore }})
		regLabels, regions := columns(c, nil, system,
			column[engine.SettlementScoreResult]{"Available Regions", colorGreen, func(r engine.SettlementScoreResult) float64 { return float64(r.AvailableCount) }},
			column[engine.SettlementScoreResult]{"Blocked Regions", colorRed, func(r engine.SettlementScoreResult) float64 { return -float64(r.BlockedCount) }})
		return []BarChart{
			{File: "settlement_01_scores.png", Title: "Settlement System Overall Score", ValueLabel: "Score (0-100)", Labels: scoreLabels, Series: score, Horizontal: true},
			{File: "settlement_03_fees.png", Title: "Transaction Fee and Settlement Time", ValueLabel: "Fee % / Hours", Labels: feeLabels, Series: fees},
			{File: "settlement_04_acceptance.png", Title: "Settlement Systems: User Ease vs Manufacturer Acceptance", ValueLabel: "Score (0-100)", Labels: accLabels, Series: acceptance},
			{File: "settlement_05_regional.png", Title: "Regional Availability by Settlement System", ValueLabel: "Number of Regions", Labels: regLabels, Series: regions},
		}
	})
	add(scenario.CategorySettlementIncome, func(c scenario.CategoryResults) BarChart {
		labels, series := columns(c, focusRegionModerate,
			func(r scenario.SettlementRegionIncome) string { return r.System },
			column[scenario.SettlementRegionIncome]{"Net Monthly", colorGreen, func(r scenario.SettlementRegionIncome) float64 { return r.NetMonthly }})
		return BarChart{
			File: "settlement_02_income.png", Title: "Monthly User Income by Settlement System (USA, Moderate)",
			ValueLabel: "Net Monthly Income (USD)", Labels: labels, Series: series, Horizontal: true,
		}
	})

	region := func(r engine.RegionalMarketResult) string { return r.Region }
	addAll(scenario.CategoryRegional, func(c scenario.CategoryResults) []BarChart {
		scoreLabels, score := columns(c, nil, region,
			column[engine.RegionalMarketResult]{"Opportunity", colorGreen, func(r engine.RegionalMarketResult) float64 { return float64(r.OpportunityScore) }})
		sizeLabels, size := columns(c, nil, region,
			column[engine.RegionalMarketResult]{"NHP Devices", colorBlue, func(r engine.RegionalMarketResult) float64 { return float64(r.NHPDevices) / 1e6 }})
		pctLabels, pct := columns(c, nil, region,
			column[engine.RegionalMarketResult]{"% of Salary", colorOrange, func(r engine.RegionalMarketResult) float64 { return r.PctOfIncome }})
		matrixLabels, matrix := columns(c, nil, region,
			column[engine.RegionalMarketResult]{"Opportunity Score", colorGreen, func(r engine.RegionalMarketResult) float64 { return float64(r.OpportunityScore) }},
			column[engine.RegionalMarketResult]{"WiFi Penetration (%)", colorBlue, func(r engine.RegionalMarketResult) float64 { return r.WiFiPenetration * 100 }})
		return []BarChart{
			{File: "reg_01_opportunity.png", Title: "NHP Regional Opportunity Score", ValueLabel: "Score (0-100)", Labels: scoreLabels, Series: score, Horizontal: true},
			{File: "reg_02_market_size.png", Title: "NHP Devices at Estimated Adoption", ValueLabel: "Devices (millions)", Labels: sizeLabels, Series: size, Ticks: devicesM},
			{File: "reg_03_income_pct.png", Title: "NHP Income as % of Average Monthly Salary", ValueLabel: "% of Salary", Labels: pctLabels, Series: pct},
			{File: "reg_04_strategy_matrix.png", Title: "Regional Strategy: Opportunity vs Connectivity", ValueLabel: "Score / %", Labels: matrixLabels, Series: matrix},
		}
	})

	useCase := func(r engine.DeveloperCostResult) string { return r.UseCase }
	addAll(scenario.CategoryDeveloperCosts, func(c scenario.CategoryResults) []BarChart {
		costLabels, costs := columns(c, nil, useCase,
			column[engine.DeveloperCostResult]{"Cloud", colorRed, func(r engine.DeveloperCostResult) float64 { return r.CloudMonthly }},
			column[engine.DeveloperCostResult]{"NHP", colorGreen, func(r engine.DeveloperCostResult) float64 { return r.NHPMonthly }})
		savingLabels, saving := columns(c, nil, useCase,
			column[engine.DeveloperCostResult]{"Annual Savings", colorGreen, func(r engine.DeveloperCostResult) float64 { return r.AnnualSavings }})
		fitLabels, fit := columns(c, nil, useCase,
			column[engine.DeveloperCostResult]{"Fitness", colorBlue, func(r engine.DeveloperCostResult) float64 { return r.FitScore }})
		return []BarChart{
			{File: "dev_01_cost_comparison.png", Title: "Developer Monthly Cost: Cloud vs NHP", ValueLabel: "Monthly Cost (USD)", Labels: costLabels, Series: costs, Ticks: report.Money},
			{File: "dev_02_annual_savings.png", Title: "Annual Developer Savings with NHP", ValueLabel: "Annual Savings (USD)", Labels: savingLabels, Series: saving, Horizontal: true, Ticks: report.Money},
			{File: "dev_06_fitness.png", Title: "NHP Fitness Score by Use Case", ValueLabel: "Fitness Score", Labels: fitLabels, Series: fit, Horizontal: true},
		}
	})
	add(scenario.CategoryDeveloperPricing, func(c scenario.CategoryResults) BarChart {
		labels, series := columns(c, nil, func(r engine.DeveloperPricingResult) string { return r.Task },
			column[engine.DeveloperPricingResult]{"NHP", colorGreen, func(r engine.DeveloperPricingResult) float64 { return r.NHPPrice }},
			column[engine.DeveloperPricingResult]{"Cloud Average", colorRed, func(r engine.DeveloperPricingResult) float64 { return r.CloudAvgPrice }})
		return BarChart{
			File: "dev_03_pricing.png", Title: "NHP Token Pricing vs Cloud API Pricing (per unit)",
			ValueLabel: "Price per Unit (USD)", Labels: labels, Series: series,
		}
	})
	add(scenario.CategoryTokenLifecycle, func(c scenario.CategoryResults) BarChart {
		labels, series := pivot(c,
			func(r engine.TokenYearResult) string { return r.Model },
			func(r engine.TokenYearResult) string { return fmt.Sprintf("Year %d", r.Year) },
			func(r engine.TokenYearResult) float64 { return r.TokenPrice })
		return BarChart{
			File: "dev_04_token_lifecycle.png", Title: "Token Price by Supply Model",
			ValueLabel: "Token Price (USD)", Labels: labels, Series: series,
		}
	})
	add(scenario.CategoryDeveloperDemand, func(c scenario.CategoryResults) BarChart {
		labels, series := columns(c, nil, func(r engine.DeveloperDemandResult) string { return r.Segment },
			column[engine.DeveloperDemandResult]{"Annual Demand", colorBlue, func(r engine.DeveloperDemandResult) float64 { return r.TotalAnnual }})
		return BarChart{
			File: "dev_05_demand_segments.png", Title: "Annual Platform Demand by Developer Segment",
			ValueLabel: "Annual Demand (USD)", Labels: labels, Series: series, Horizontal: true, Ticks: report.Money,
		}
	})

	add(scenario.CategoryCritiquePricing, func(c scenario.CategoryResults) BarChart {
		labels, series := columns(c, nil, func(r engine.PriceCheckResult) string { return r.Label },
			column[engine.PriceCheckResult]{"Monthly Income", colorGreen, func(r engine.PriceCheckResult) float64 { return r.MonthlyUSD }})
		return BarChart{
			File: "crit_01_realistic_pricing.png", Title: "Monthly User Income by GPU-Hour Price",
			ValueLabel: "Monthly Income (USD)", Labels: labels, Series: series,
		}
	})
	add(scenario.CategoryCritiqueThermal, func(c scenario.CategoryResults) BarChart {
		labels, series := columns(c, nil, func(r engine.ThermalResult) string { return r.Phone },
			column[engine.ThermalResult]{"Peak TOPS", colorRed, func(r engine.ThermalResult) float64 { return r.PeakTOPS }},
			column[engine.ThermalResult]{"Sustained TOPS", colorBlue, func(r engine.ThermalResult) float64 { return r.SustainedTOPS }})
		return BarChart{
			File: "crit_02_thermal.png", Title: "Thermal Throttling: Peak vs Sustained Performance",
			ValueLabel: "TOPS", Labels: labels, Series: series,
		}
	})
	add(scenario.CategoryCritiqueIndia, func(c scenario.CategoryResults) BarChart {
		labels, series := columns(c, nil, func(r engine.IndiaAdoptionResult) string { return r.Label },
			column[engine.IndiaAdoptionResult]{"User Payouts", colorGreen, func(r engine.IndiaAdoptionResult) float64 { return r.MonthlyPayouts }},
			column[engine.IndiaAdoptionResult]{"Platform Revenue", colorBlue, func(r engine.IndiaAdoptionResult) float64 { return r.PlatformMonthly }})
		return BarChart{
			File: "crit_03_india.png", Title: "India Market: Monthly Revenue by Adoption",
			ValueLabel: "Monthly (USD)", Labels: labels, Series: series, Ticks: report.Money,
		}
	})
	add(scenario.CategoryCritiquePayments, func(c scenario.CategoryResults) BarChart {
		labels, series := columns(c, nil, func(r engine.PaymentFlowResult) string { return report.Money(r.DeveloperSpend) },
			column[engine.PaymentFlowResult]{"Platform Net", colorBlue, func(r engine.PaymentFlowResult) float64 { return r.NetPlatformProfit }},
			column[engine.PaymentFlowResult]{"Infrastructure", colorOrange, func(r engine.PaymentFlowResult) float64 { return r.InfraCost }},
			column[engine.PaymentFlowResult]{"Payment Fees", colorRed, func(r engine.PaymentFlowResult) float64 { return r.PaymentFees }},
			column[engine.PaymentFlowResult]{"Net to Users", colorGreen, func(r engine.PaymentFlowResult) float64 { return r.NetToUsers }})
		return BarChart{
			File: "crit_04_payment_flow.png", Title: "Payment Flow: Developer Spend to Platform and Users",
			ValueLabel: "Monthly (USD)", Labels: labels, Series: series, Ticks: report.Money,
		}
	})
	add(scenario.CategoryCritiqueNPU, func(c scenario.CategoryResults) BarChart {
		labels, series := columns(c, nil, func(r engine.NPUEfficiencyResult) string { return r.Chip },
			column[engine.NPUEfficiencyResult]{"GPU", colorRed, func(r engine.NPUEfficiencyResult) float64 { return r.GPUTOPSPerWatt }},
			column[engine.NPUEfficiencyResult]{"NPU", colorGreen, func(r engine.NPUEfficiencyResult) float64 { return r.NPUTOPSPerWatt }})
		return BarChart{
			File: "crit_05_npu_vs_gpu.png", Title: "NPU vs GPU Energy Efficiency",
			ValueLabel: "TOPS per Watt", Labels: labels, Series: series,
		}
	})

	add(scenario.CategoryMoonHourly, func(c scenario.CategoryResults) BarChart {
		labels, series := columns(c, nil, func(r engine.HourlyCoverageResult) string { return fmt.Sprintf("%02d", r.UTCHour) },
			column[engine.HourlyCoverageResult]{"Active Devices", colorBlue, func(r engine.HourlyCoverageResult) float64 { return r.ActiveDevicesM }})
		return BarChart{
			File: "vis_01_follow_the_moon.png", Title: "Follow the Moon: Active NHP Devices by UTC Hour",
			ValueLabel: "Active Devices (millions)", Labels: labels, Series: series, Ticks: devicesM,
		}
	})
	add(scenario.CategorySecondLife, func(c scenario.CategoryResults) BarChart {
		labels, series := columns(c, nil, func(r engine.RetiredPhoneResult) string { return r.Model },
			column[engine.RetiredPhoneResult]{"Monthly Income", colorGreen, func(r engine.RetiredPhoneResult) float64 { return r.MonthlyIncome }})
		return BarChart{
			File: "vis_02_ewaste.png", Title: "E-Waste Revolution: Monthly Income from Retired Phones",
			ValueLabel: "Monthly Income (USD)", Labels: labels, Series: series,
		}
	})
	add(scenario.CategorySovereignty, func(c scenario.CategoryResults) BarChart {
		labels, series := columns(c, nil, func(r engine.SovereigntyResult) string { return r.Region },
			column[engine.SovereigntyResult]{"H100 Equivalents", colorBlue, func(r engine.SovereigntyResult) float64 { return r.H100Equiv }})
		return BarChart{
			File: "vis_03_sovereignty.png", Title: "Compute Sovereignty: Local H100 Equivalents",
			ValueLabel: "H100 Equivalents", Labels: labels, Series: series, Horizontal: true, Ticks: report.Num,
		}
	})
	add(scenario.CategoryEducation, func(c scenario.CategoryResults) BarChart {
		labels, series := columns(c, nil, func(r engine.EducationResult) string { return r.Country },
			column[engine.EducationResult]{"Cloud", colorRed, func(r engine.EducationResult) float64 { return r.CloudTotal }},
			column[engine.EducationResult]{"NHP", colorGreen, func(r engine.EducationResult) float64 { return r.NHPTotal }})
		return BarChart{
			File: "vis_04_education.png", Title: "Education Equalizer: Annual AI Compute Cost for All Students",
			ValueLabel: "Annual Cost (USD)", Labels: labels, Series: series, Ticks: report.Money,
		}
	})
	add(scenario.CategoryTipping, func(c scenario.CategoryResults) BarChart {
		labels, series := columns(c, nil, func(r engine.MilestoneResult) string { return r.Label },
			column[engine.MilestoneResult]{"H100 Equivalents", colorBlue, func(r engine.MilestoneResult) float64 { return float64(r.H100Equiv) }})
		return BarChart{
			File: "vis_05_tipping_points.png", Title: "NHP Growth Tipping Points",
			ValueLabel: "H100 Equivalents", Labels: labels, Series: series, Horizontal: true, Ticks: report.Num,
		}
	})
	add(scenario.CategoryProjection, func(c scenario.CategoryResults) BarChart {
		labels, series := pivot(c,
			func(r engine.ProjectionResult) string { return r.Path },
			func(r engine.ProjectionResult) string { return fmt.Sprintf("%d", r.Year) },
			func(r engine.ProjectionResult) float64 { return r.DevicesM })
		return BarChart{
			File: "vis_06_2030_projection.png", Title: "NHP 2030: Device Adoption Projection",
			ValueLabel: "Devices (millions)", Labels: labels, Series: series, Ticks: devicesM,
		}
	})

	return charts
}
