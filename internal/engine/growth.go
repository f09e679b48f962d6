package engine

import "math"

// NetworkGrowthResult is a year-by-year device projection.
type NetworkGrowthResult struct {
	GrowthPct     float64 `json:"growth_pct"`
	BaseDevices   int64   `json:"base_devices"`
	YearlyDevices []int64 `json:"yearly_devices"`
	FinalDevices  int64   `json:"final_devices"`
	ReachedTarget bool    `json:"reached_target"`
}

// NetworkGrowth compounds base by (1 + growth) for the given number of years,
// capping at target. The running value stays fractional; each reported year
// truncates it.
func NetworkGrowth(base int64, growth float64, years int, target int64) NetworkGrowthResult {
	if years < 0 {
		years = 0
	}
	current := float64(base)
	capAt := float64(target)

	yearly := make([]int64, 0, years)
	for range years {
		current = math.Min(current*(1+growth), capAt)
		yearly = append(yearly, int64(current))
	}

	final := base
	if len(yearly) > 0 {
		final = yearly[len(yearly)-1]
	}

	return NetworkGrowthResult{
		GrowthPct:     growth * 100,
		BaseDevices:   base,
		YearlyDevices: yearly,
		FinalDevices:  final,
		ReachedTarget: final >= target,
	}
}
