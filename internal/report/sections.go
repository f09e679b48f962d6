package report

import (
	"slices"
	"strings"

	"github.com/rshade/nhp-simulation/internal/engine"
	"github.com/rshade/nhp-simulation/internal/refdata"
	"github.com/rshade/nhp-simulation/internal/scenario"
)

// Section is one markdown table of the report.
type Section struct {
	Key     string
	Title   string
	TitleAr string
	Note    string
	Headers []string
	Rows    [][]string
	Footer  []string
}

// tableSpec renders one category. filter, when set, drops records before
// rendering; order then sorts the rest stably. footer sees the same records
// the rows were built from and returns paragraphs printed under the table.
type tableSpec struct {
	note    string
	headers []string
	filter  func(scenario.Record) bool
	order   func(a, b scenario.Record) int
	row     func(scenario.Record) []string
	footer  func([]scenario.Record) []string
}

func variantCell(rec scenario.Record) string {
	return rec.Variant.Emoji() + " " + bilingual(rec.Variant.String(), rec.Variant.Arabic())
}

func bilingual(en, ar string) string {
	if ar == "" {
		return en
	}
	return en + " (" + ar + ")"
}

func moderateOnly(rec scenario.Record) bool {
	return rec.Variant == refdata.Moderate
}

var tableSpecs = map[string]tableSpec{
	"A": {
		headers: []string{"Manufacturer / المصنّع", "Variant", "Active Devices", "H100 Equiv", "Total TOPS"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.FleetPowerResult)
			return []string{r.Manufacturer, variantCell(rec), Int(r.ActiveDevices), Bold(Num(r.H100Equivalent)), Num(r.TotalTOPS)}
		},
	},
	"B": {
		note:    "*(Moderate variant, 40% coverage)*",
		headers: []string{"Manufacturer", "Cloud Provider", "Annual Savings", "Savings %"},
		filter:  moderateOnly,
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.CostComparisonResult)
			return []string{r.Manufacturer, r.CloudShort, Bold(Money(r.AnnualSavings)), Pct(r.SavingsPct)}
		},
	},
	"C": {
		headers: []string{"Region / المنطقة", "Variant", "Monthly Net", "Annual Net", "% of Avg Income"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.UserIncomeResult)
			return []string{
				bilingual(r.Region, r.RegionAr), variantCell(rec),
				"$" + Fixed(r.MonthlyNet, 2), "$" + Fixed(r.AnnualNet, 2), Fixed(r.IncomePctOfAvg, 2) + "%",
			}
		},
	},
	"D": {
		headers: []string{"Manufacturer / المصنّع", "Variant", "Annual Savings", "Coverage"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.CostComparisonResult)
			return []string{r.Manufacturer, variantCell(rec), Bold(Money(r.AnnualSavings)), Pct(r.CoveragePct)}
		},
	},
	"E": {
		headers: []string{"Manufacturer", "Variant", "CO₂ Saved (net)", "Cars Removed", "Phone CO₂ Added"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.EnvironmentalResult)
			return []string{
				r.Manufacturer, variantCell(rec),
				Bold(Num(r.CO2SavedNet) + " tons"), Int(r.CarsEquivalent), Num(r.CO2AddedPhones) + " tons",
			}
		},
	},
	"F": {
		headers: []string{"Alliance / التحالف", "Variant", "Active Devices", "H100 Equiv"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.CombinedNetworkResult)
			return []string{r.Alliance, variantCell(rec), Int(r.TotalActiveDevices), Bold(Num(r.H100Equivalent))}
		},
	},
	"G": {
		headers: []string{"Task / المهمة", "Variant", "Score", "Capable?", "Latency-Sensitive?", "Tasks/Day"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.TaskFeasibilityResult)
			capable, latency := "❌", "No"
			if r.DeviceCapable {
				capable = "✅"
			}
			if r.LatencySensitive {
				latency = "⚡ Yes"
			}
			return []string{
				bilingual(r.TaskName, r.TaskNameAr), variantCell(rec),
				Bold(Fixed(r.FeasibilityScore, 0) + "/100"), capable, latency, Num(r.TasksPerDay),
			}
		},
	},
	"H": {
		headers: []string{"Device Tier", "Variant", "Life w/ NHP (yrs)", "Life w/o NHP (yrs)", "Reduction (months)"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.BatteryImpactResult)
			return []string{
				r.Tier, variantCell(rec),
				Fixed(r.BatteryLifeWithNHPYears, 1), Fixed(r.BatteryLifeWithoutNHPYears, 1), Fixed(r.LifeReductionMonths, 1),
			}
		},
	},
	"I": {
		headers: []string{"Region / المنطقة", "Variant", "Total Smartphones", "NHP Devices", "Annual Revenue"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.MarketSizeResult)
			return []string{
				bilingual(r.Region, r.RegionAr), variantCell(rec),
				Int(r.TotalSmartphones), Int(r.NHPDevices), Money(r.AnnualPlatformRevenue),
			}
		},
	},
	"J": {
		headers: []string{"Scale", "Variant", "Monthly GPU Hours", "Monthly Flow", "Platform Rev/mo", "Market Cap (est)"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(scenario.TokenScenario)
			return []string{
				r.ScaleLabel, variantCell(rec),
				Num(r.MonthlyGPUHours), Money(r.TotalMonthlyFlow), Money(r.PlatformRevenueMonthly),
				Money(r.MarketCapConservative) + "–" + Money(r.MarketCapAggressive),
			}
		},
	},
	"K": {
		headers: []string{"Competitor", "Variant", "NHP TOPS", "Comp TOPS", "Power Ratio", "NHP Advantages"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.CompetitiveResult)
			ratio := "1000×+"
			if r.PowerRatio < 1000 {
				ratio = Fixed(r.PowerRatio, 1) + "×"
			}
			advantages := "—"
			if len(r.NHPAdvantages) > 0 {
				advantages = strings.Join(r.NHPAdvantages, ", ")
			}
			return []string{
				r.Competitor, variantCell(rec),
				Num(r.NHPTotalTOPS), Num(r.CompTotalTOPS), Bold(ratio), advantages,
			}
		},
	},
	"L": {
		headers: []string{"Manufacturer", "Variant", "Dev Cost", "Monthly Savings", "Breakeven (mo)", "5yr ROI"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.BreakevenResult)
			months := "∞"
			if r.BreakevenMonths < 999 {
				months = Fixed(r.BreakevenMonths, 0)
			}
			return []string{
				r.Manufacturer, variantCell(rec),
				Money(r.DevelopmentCost), Money(r.MonthlySavings), Bold(months), Pct(r.ROI5yrPct),
			}
		},
	},
	"M": {
		headers: []string{"Risk / المخاطرة", "Variant", "Impact", "Probability", "Expected Loss", "Severity"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.RiskResult)
			return []string{
				bilingual(r.RiskName, r.RiskNameAr), variantCell(rec),
				Pct(r.ImpactPct), Pct(r.ProbabilityPct), Money(r.ExpectedLoss), r.Severity,
			}
		},
	},
	"N": {
		headers: []string{"Variant", "Growth / yr", "Devices by Year", "Final Devices", "Target Reached"},
		row: func(rec scenario.Record) []string {
			r := rec.Result.(engine.NetworkGrowthResult)
			years := make([]string, len(r.YearlyDevices))
			for i, n := range r.YearlyDevices {
				years[i] = Int(n)
			}
			reached := "No"
			if r.ReachedTarget {
				reached = "✅"
			}
			return []string{
				variantCell(rec), Pct(r.GrowthPct), strings.Join(years, " → "), Bold(Int(r.FinalDevices)), reached,
			}
		},
	},
}

// buildSection renders a category. Categories without a table layout are
// skipped.
func buildSection(c scenario.CategoryResults) (Section, bool) {
	spec, ok := tableSpecs[c.Key]
	if !ok {
		if spec, ok = phaseTableSpecs[c.Key]; !ok {
			return Section{}, false
		}
	}

	s := Section{
		Key:     c.Key,
		Title:   c.Title,
		TitleAr: c.TitleAr,
		Note:    spec.note,
		Headers: spec.headers,
	}
	records := make([]scenario.Record, 0, len(c.Records))
	for _, rec := range c.Records {
		if spec.filter != nil && !spec.filter(rec) {
			continue
		}
		records = append(records, rec)
	}
	if spec.order != nil {
		slices.SortStableFunc(records, spec.order)
	}
	for _, rec := range records {
		s.Rows = append(s.Rows, spec.row(rec))
	}
	if spec.footer != nil {
		s.Footer = spec.footer(records)
	}
	return s, true
}
