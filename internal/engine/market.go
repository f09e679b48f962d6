package engine

import "github.com/rshade/nhp-simulation/internal/refdata"

// MarketSizeResult is the addressable NHP market in a region.
type MarketSizeResult struct {
	Region                 string  `json:"region"`
	RegionAr               string  `json:"region_ar"`
	TotalSmartphones       int64   `json:"total_smartphones"`
	NHPDevices             int64   `json:"nhp_devices"`
	PenetrationPct         float64 `json:"penetration_pct"`
	MonthlyPlatformRevenue float64 `json:"monthly_platform_revenue"`
	AnnualPlatformRevenue  float64 `json:"annual_platform_revenue"`
}

// DeviceMonthlyPlatformRevenue is the platform's monthly cut from one device
// at the moderate token price. Evaluated in float64 step by step, so the
// result is 6.300000000000001 rather than the exact 6.3.
func DeviceMonthlyPlatformRevenue() float64 {
	hours, price := refdata.NightlyHours, refdata.ModerateTokenPrice
	days, cut := refdata.DaysPerMonth, refdata.PlatformCut
	return hours * price * days * cut
}

// MarketSize estimates NHP devices and platform revenue in a region when
// the given fraction of its smartphone owners join.
func MarketSize(region refdata.Region, penetration float64) MarketSizeResult {
	smartphones := int64(float64(region.PopulationMillions) * 1_000_000 * region.SmartphonePenetration)
	devices := int64(float64(smartphones) * penetration)
	monthly := float64(devices) * DeviceMonthlyPlatformRevenue()

	return MarketSizeResult{
		Region:                 region.Name,
		RegionAr:               region.NameAr,
		TotalSmartphones:       smartphones,
		NHPDevices:             devices,
		PenetrationPct:         penetration * 100,
		MonthlyPlatformRevenue: monthly,
		AnnualPlatformRevenue:  monthly * refdata.MonthsPerYear,
	}
}

// TokenEconomicsResult is the monthly token flow through the network.
type TokenEconomicsResult struct {
	TotalDevices           int64   `json:"total_devices"`
	ActiveDevices          int64   `json:"active_devices"`
	TokenPrice             float64 `json:"token_price"`
	MonthlyGPUHours        float64 `json:"monthly_gpu_hours"`
	TotalMonthlyFlow       float64 `json:"total_monthly_flow"`
	PlatformRevenueMonthly float64 `json:"platform_revenue_monthly"`
	UserPayoutsMonthly     float64 `json:"user_payouts_monthly"`
	ImpliedAnnualFlow      float64 `json:"implied_annual_flow"`
	MarketCapConservative  float64 `json:"market_cap_conservative"`
	MarketCapAggressive    float64 `json:"market_cap_aggressive"`
}

// Market cap multiples applied to annual token flow.
const (
	conservativeMultiple = 5
	aggressiveMultiple   = 20
)

// TokenEconomics models token flow for a network of totalDevices where one
// token pays for one device GPU-hour. platformCut is the fee fraction kept
// by the platform; refdata.PlatformCut is the usual value.
func TokenEconomics(totalDevices int64, uptime, tokenPrice, platformCut float64) TokenEconomicsResult {
	active := int64(float64(totalDevices) * uptime)
	dailyHours := float64(active) * refdata.NightlyHours
	monthlyHours := dailyHours * refdata.DaysPerMonth

	flow := monthlyHours * tokenPrice
	annual := flow * refdata.MonthsPerYear

	return TokenEconomicsResult{
		TotalDevices:           totalDevices,
		ActiveDevices:          active,
		TokenPrice:             tokenPrice,
		MonthlyGPUHours:        monthlyHours,
		TotalMonthlyFlow:       flow,
		PlatformRevenueMonthly: flow * platformCut,
		UserPayoutsMonthly:     flow * (1 - platformCut),
		ImpliedAnnualFlow:      annual,
		MarketCapConservative:  annual * conservativeMultiple,
		MarketCapAggressive:    annual * aggressiveMultiple,
	}
}
