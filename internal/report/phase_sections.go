package report

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/rshade/nhp-simulation/internal/engine"
	"github.com/rshade/nhp-simulation/internal/refdata"
	"github.com/rshade/nhp-simulation/internal/scenario"
)

// focusRegionModerate keeps the moderate settlement income rows for the
// focus region.
func focusRegionModerate(rec scenario.Record) bool {
	r, ok := rec.Result.(scenario.SettlementRegionIncome)
	return ok && rec.Variant == refdata.Moderate && r.RegionKey == refdata.FocusRegionKey
}

func yesNo(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

// scoreMarker grades a 0-100 opportunity score.
func scoreMarker(score int) string {
	switch {
	case score >= 80:
		return "🟢"
	case score >= 60:
		return "🟡"
	default:
		return "🔴"
	}
}

func millions(v float64) string {
	return Fixed(v, 1) + "M"
}

func regionalFooter(records []scenario.Record) []string {
	var (
		devices           int64
		platform, payouts float64
		out               []string
	)
	for _, rec := range records {
		r := rec.Result.(engine.RegionalMarketResult)
		devices += r.NHPDevices
		platform += r.PlatformMonthly
		payouts += r.MonthlyPayouts
		out = append(out, fmt.Sprintf("**%s %s:** %s  \n%s  \n*Risks:* %s",
			r.Flag, r.Region, r.StrategicNotes, r.StrategicNotesAr, r.Risks))
	}
	return append(out,
		"**Total NHP devices / إجمالي الأجهزة:** "+millions(float64(devices)/1e6),
		"**Total platform revenue / إيرادات المنصة:** "+Money(platform)+"/month",
		"**Total user payouts / مدفوعات المستخدمين:** "+Money(payouts)+"/month",
	)
}

var phaseTableSpecs = map[string]tableSpec{
	scenario.CategorySettlementIncome: {
		note:    "*(Moderate variant, USA)*",
		headers: []string{"System / النظام", "Gross", "Fees", "Net / mo", "Net / yr", "Fee %"},
		filter:  focusRegionModerate,
		row: func(rec scenario.Record) []string {
			r := rec.Result.(scenario.SettlementRegionIncome)
			return []string{
				r.System, "$" + Fixed(r.GrossMonthly, 2), "$" + Fixed(r.TxFee, 2),
				Bold("$" + Fixed(r.NetMonthly, 2)), "$" + Fixed(r.NetAnnual, 2), Fixed(r.FeePct, 1) + "%",
			}
		},
	},
	scenario.CategorySettlementScore: {
		headers: []string{"System / النظام", "Score", "Fee", "Settlement", "Difficulty", "Mfg Acceptance", "Regions"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.SettlementScoreResult)
			return []string{
				bilingual(r.System, r.SystemAr), Bold(Fixed(r.OverallScore, 0) + "/100"),
				fmt.Sprintf("%s%% + $%s", Fixed(r.TxFeePct, 1), Fixed(r.TxFeeFixed, 2)),
				Fixed(r.SettlementHours, 1) + "h", r.Difficulty, r.MfgAcceptance,
				fmt.Sprintf("%d / %d blocked", r.AvailableCount, r.BlockedCount),
			}
		},
	},
	scenario.CategoryRegional: {
		note: "*(Highest opportunity first)*",
		headers: []string{
			"Region / المنطقة", "Score", "NHP Devices", "Platform / mo", "Net User Income", "% of Income",
			"Top Brands", "Payment", "Regulation",
		},
		order: func(a, b scenario.Record) int {
			return cmp.Compare(
				b.Result.(engine.RegionalMarketResult).OpportunityScore,
				a.Result.(engine.RegionalMarketResult).OpportunityScore,
			)
		},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.RegionalMarketResult)
			return []string{
				r.Flag + " " + bilingual(r.Region, r.RegionAr),
				scoreMarker(r.OpportunityScore) + " " + Bold(fmt.Sprintf("%d/100", r.OpportunityScore)),
				Int(r.NHPDevices), Money(r.PlatformMonthly), "$" + Fixed(r.NetIncome, 2), Fixed(r.PctOfIncome, 1) + "%",
				r.TopBrands, r.Payment, r.Regulation,
			}
		},
		footer: regionalFooter,
	},

	scenario.CategoryDeveloperPricing: {
		headers: []string{"Task", "Unit", "NHP Price", "Cloud Avg", "Savings", "Quality", "Latency ×"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.DeveloperPricingResult)
			return []string{
				r.Task, r.Unit, "$" + Fixed(r.NHPPrice, 4), "$" + Fixed(r.CloudAvgPrice, 4),
				Bold(Pct(r.SavingsPct)), Pct(r.QualityPct), Fixed(r.LatencyFactor, 1) + "×",
			}
		},
	},
	scenario.CategoryDeveloperCosts: {
		headers: []string{"Use Case / الحالة", "Developer", "Cloud / mo", "NHP / mo", "Annual Savings", "Savings %", "Fit"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.DeveloperCostResult)
			return []string{
				bilingual(r.UseCase, r.UseCaseAr), r.DeveloperType, Money(r.CloudMonthly), Money(r.NHPMonthly),
				Bold(Money(r.AnnualSavings)), Pct(r.SavingsPct), r.Fit,
			}
		},
	},
	scenario.CategoryTokenLifecycle: {
		headers: []string{"Model", "Year", "Supply", "Token Price", "Market Cap", "Platform Rev", "User Payouts"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.TokenYearResult)
			return []string{
				bilingual(r.Model, r.ModelAr), fmt.Sprintf("%d", r.Year), Num(r.Supply),
				"$" + Fixed(r.TokenPrice, 4), Bold(Money(r.MarketCap)), Money(r.PlatformRevenue), Money(r.UserPayouts),
			}
		},
	},
	scenario.CategoryDeveloperDemand: {
		headers: []string{"Segment", "Developers", "Avg Spend / mo", "Total / mo", "Total / yr"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.DeveloperDemandResult)
			return []string{r.Segment, Int(r.Developers), Money(r.AvgSpend), Money(r.TotalMonthly), Bold(Money(r.TotalAnnual))}
		},
		footer: func(records []scenario.Record) []string {
			var monthly float64
			for _, rec := range records {
				monthly += rec.Result.(engine.DeveloperDemandResult).TotalMonthly
			}
			return []string{fmt.Sprintf("**Total developer demand:** %s/month (%s/year)", Money(monthly), Money(monthly*refdata.MonthsPerYear))}
		},
	},

	scenario.CategoryCritiquePricing: {
		note:    "*(Platform and payout columns at 100M devices)*",
		headers: []string{"Scenario / السيناريو", "GPU-hr", "User / mo", "INR / mo", "% India Income", "Platform / mo", "Payouts / mo", "Viable"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.PriceCheckResult)
			return []string{
				bilingual(r.Label, r.LabelAr), "$" + Fixed(r.GPUHourPrice, 2), Bold("$" + Fixed(r.MonthlyUSD, 2)),
				"₹" + Num(r.MonthlyINR), Fixed(r.PctIndiaIncome, 1) + "%",
				Money(r.PlatformMonthly), Money(r.UserPayoutsFleet), yesNo(r.ViableForUsers),
			}
		},
	},
	scenario.CategoryCritiqueThermal: {
		headers: []string{"Phone", "Sustained TOPS", "Ambient", "Final Temp", "Throttle", "Load", "Safe", "Cooling"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.ThermalResult)
			return []string{
				r.Phone, Fixed(r.SustainedTOPS, 1), Fixed(r.AmbientC, 0) + "°C", Bold(Fixed(r.FinalTempC, 1) + "°C"),
				Fixed(r.ThrottleTempC, 0) + "°C", Fixed(r.LoadPct, 1) + "%", yesNo(r.Safe), r.Cooling,
			}
		},
	},
	scenario.CategoryCritiqueIndia: {
		headers: []string{"Adoption", "Devices", "User / mo", "INR / mo", "Payouts / mo", "Platform / mo", "GDP Impact / yr"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.IndiaAdoptionResult)
			return []string{
				r.Label, Int(r.Devices), "$" + Fixed(r.MonthlyPerUser, 2), "₹" + Num(r.MonthlyINR),
				Money(r.MonthlyPayouts), Money(r.PlatformMonthly), Bold(Money(r.AnnualGDPImpact)),
			}
		},
	},
	scenario.CategoryCritiquePayments: {
		headers: []string{"Developer Spend", "Platform Gross", "Infra", "Net Profit", "Fees", "Net to Users", "Users", "Margin"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.PaymentFlowResult)
			return []string{
				Money(r.DeveloperSpend), Money(r.PlatformGross), Money(r.InfraCost), Bold(Money(r.NetPlatformProfit)),
				Money(r.PaymentFees), Money(r.NetToUsers), Int(r.UsersServed), Fixed(r.PlatformMarginPct, 1) + "%",
			}
		},
	},
	scenario.CategoryCritiqueNPU: {
		headers: []string{"Chip", "GPU TOPS/W", "NPU TOPS/W", "Efficiency Gain", "Heat Reduction", "NPU Tasks"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.NPUEfficiencyResult)
			return []string{
				r.Chip, Fixed(r.GPUTOPSPerWatt, 2), Fixed(r.NPUTOPSPerWatt, 2),
				Bold("+" + Pct(r.EfficiencyGain)), Pct(r.HeatReductionPct), r.NPUTasks,
			}
		},
	},
	scenario.CategoryCritiqueRivals: {
		headers: []string{"Rival", "Founded", "Devices", "Device Type", "User Income", "Revenue", "NHP Advantage"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.RivalResult)
			return []string{r.Name, fmt.Sprintf("%d", r.Founded), r.Devices, r.DeviceType, r.UserIncome, r.RevenueEst, r.NHPAdvantage}
		},
	},
	scenario.CategoryCritiqueStress: {
		headers: []string{"Factor", "Normal", "Worst Case"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.StressResult)
			return []string{r.Factor, r.Normal, Bold(r.Worst)}
		},
	},

	scenario.CategoryMoonHourly: {
		headers: []string{"UTC Hour", "Active Devices", "Load"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.HourlyCoverageResult)
			return []string{
				fmt.Sprintf("%02d:00", r.UTCHour), millions(r.ActiveDevicesM),
				strings.Repeat("█", int(r.ActiveDevicesM/100)),
			}
		},
	},
	scenario.CategoryMoonCoverage: {
		headers: []string{"Min", "Max", "Average", "Always On", "Fleet", "Peak (UTC)", "Trough (UTC)"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.CoverageSummary)
			return []string{
				millions(r.MinDevicesM), millions(r.MaxDevicesM), millions(r.AvgDevicesM),
				Bold(Fixed(r.CoveragePct, 1) + "%"), millions(r.TotalFleetM),
				fmt.Sprintf("%02d:00", r.PeakUTCHour), fmt.Sprintf("%02d:00", r.TroughUTCHour),
			}
		},
	},
	scenario.CategorySecondLife: {
		headers: []string{"Model", "TOPS", "Resale", "Income / mo", "Payback", "Fleet", "H100 Equiv"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.RetiredPhoneResult)
			payback := "∞"
			if r.PaybackMonths < 1e6 {
				payback = Fixed(r.PaybackMonths, 1) + " mo"
			}
			return []string{
				r.Model, Fixed(r.TOPS, 0), "$" + Fixed(r.ResaleUSD, 0), "$" + Fixed(r.MonthlyIncome, 2),
				payback, millions(r.UnitsM), Bold(Num(r.H100Equiv)),
			}
		},
	},
	scenario.CategorySovereignty: {
		headers: []string{"Region / المنطقة", "Cloud Dependency", "Phones", "H100 Equiv", "Cloud Spend", "Savings", "Independence", "Risk"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.SovereigntyResult)
			return []string{
				bilingual(r.Region, r.RegionAr), r.CloudDependency, millions(r.PhonesM), Num(r.H100Equiv),
				Money(r.CloudSpendB * 1e9), Money(r.PotentialSavingsB * 1e9), Bold(Fixed(r.IndependencePct, 1) + "%"), r.SovereigntyRisk,
			}
		},
	},
	scenario.CategoryDisasters: {
		headers: []string{"Event / الحدث", "Affected", "Downtime", "Loss", "NHP Response"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.DisasterResult)
			return []string{
				bilingual(r.Event, r.EventAr), r.AffectedServices, fmt.Sprintf("%dh", r.DowntimeHours),
				Money(r.EconomicLossM * 1e6), r.NHPResponse,
			}
		},
	},
	scenario.CategoryEducation: {
		headers: []string{"Country / الدولة", "Universities", "Students", "Cloud / yr", "NHP / yr", "Savings / yr", "Phones"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.EducationResult)
			return []string{
				bilingual(r.Country, r.CountryAr), Int(int64(r.Universities)), millions(r.StudentsM),
				Money(r.CloudTotal), Money(r.NHPTotal), Bold(Money(r.AnnualSavings)), millions(r.PhonesAvailableM),
			}
		},
	},
	scenario.CategoryTipping: {
		headers: []string{"Milestone / المرحلة", "Devices", "H100 Equiv", "Platform / mo", "Payouts / mo", "Event"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.MilestoneResult)
			return []string{
				bilingual(r.Label, r.LabelAr), Int(r.Devices), Bold(Int(r.H100Equiv)),
				Money(r.MonthlyRevenue), Money(r.UserPayouts), r.Event,
			}
		},
	},
	scenario.CategoryUpgrade: {
		headers: []string{"Model", "TOPS", "Income / mo", "Income / yr", "Uplift"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.UpgradeResult)
			return []string{r.Model, Fixed(r.TOPS, 0), "$" + Fixed(r.MonthlyIncome, 2), "$" + Fixed(r.AnnualIncome, 2), Bold("+" + Pct(r.UpliftPct))}
		},
	},
	scenario.CategoryProjection: {
		headers: []string{"Path", "Year", "Devices", "H100 Equiv", "Platform / yr", "Payouts / yr"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.ProjectionResult)
			return []string{
				r.Path, fmt.Sprintf("%d", r.Year), millions(r.DevicesM), Int(r.H100Equiv),
				Bold(Money(r.AnnualPlatformRevenue)), Money(r.AnnualUserPayouts),
			}
		},
	},
}
