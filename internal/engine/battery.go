package engine

import "github.com/rshade/nhp-simulation/internal/refdata"

// BatteryImpactResult estimates battery wear from nightly compute.
type BatteryImpactResult struct {
	Tier                       string  `json:"tier"`
	CyclesPerNight             float64 `json:"cycles_per_night"`
	ExtraCyclesPerYear         float64 `json:"extra_cycles_per_year"`
	BatteryLifeWithNHPYears    float64 `json:"battery_life_with_nhp_years"`
	BatteryLifeWithoutNHPYears float64 `json:"battery_life_without_nhp_years"`
	LifeReductionMonths        float64 `json:"life_reduction_months"`
}

// BatteryImpact compares battery life with and without NHP for a device
// tier. The model charges a fixed fraction of a cycle per night, so
// nightlyHours does not change the result.
func BatteryImpact(tier string, nightlyHours float64) BatteryImpactResult {
	cyclesPerNight := refdata.BatteryCyclePerNightPct / 100.0
	extraPerYear := cyclesPerNight * refdata.DaysPerYear
	normalPerYear := refdata.DaysPerYear * refdata.NormalDailyCycles

	with := refdata.BatteryTotalCycles / (extraPerYear + normalPerYear)
	without := refdata.BatteryTotalCycles / normalPerYear

	return BatteryImpactResult{
		Tier:                       tier,
		CyclesPerNight:             cyclesPerNight,
		ExtraCyclesPerYear:         extraPerYear,
		BatteryLifeWithNHPYears:    with,
		BatteryLifeWithoutNHPYears: without,
		LifeReductionMonths:        (without - with) * refdata.MonthsPerYear,
	}
}
