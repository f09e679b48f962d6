package engine

import "github.com/rshade/nhp-simulation/internal/refdata"

// UserIncomeResult is what one participating user earns in a region.
type UserIncomeResult struct {
	Region             string  `json:"region"`
	RegionAr           string  `json:"region_ar"`
	TokenPrice         float64 `json:"token_price"`
	ElectricityCostKWh float64 `json:"electricity_cost_kwh"`
	MonthlyGross       float64 `json:"monthly_gross"`
	MonthlyElectricity float64 `json:"monthly_electricity"`
	MonthlyNet         float64 `json:"monthly_net"`
	AnnualNet          float64 `json:"annual_net"`
	IncomePctOfAvg     float64 `json:"income_pct_of_avg"`
	AvgMonthlyIncome   float64 `json:"avg_monthly_income"`
}

// DeviceDailyKWh is the extra energy one phone draws per night. The inputs
// are copied into variables so the product is rounded at each step in
// float64, as in the published figures, rather than folded exactly at
// compile time.
func DeviceDailyKWh() float64 {
	watt, hours := refdata.DeviceExtraWatt, refdata.NightlyHours
	return watt * hours / 1000.0
}

// UserIncome computes a user's earnings at the given token price (USD per
// device GPU-hour) net of the extra electricity. Net income is negative when
// the token price does not cover electricity.
func UserIncome(region refdata.Region, tokenPrice float64) UserIncomeResult {
	dailyElectricity := DeviceDailyKWh() * region.ElectricityCostKWh
	dailyGross := refdata.NightlyHours * tokenPrice
	dailyNet := dailyGross - dailyElectricity

	monthlyNet := dailyNet * refdata.DaysPerMonth

	var pct float64
	if region.AvgMonthlyIncome > 0 {
		pct = monthlyNet / region.AvgMonthlyIncome * 100
	}

	return UserIncomeResult{
		Region:             region.Name,
		RegionAr:           region.NameAr,
		TokenPrice:         tokenPrice,
		ElectricityCostKWh: region.ElectricityCostKWh,
		MonthlyGross:       dailyGross * refdata.DaysPerMonth,
		MonthlyElectricity: dailyElectricity * refdata.DaysPerMonth,
		MonthlyNet:         monthlyNet,
		AnnualNet:          monthlyNet * refdata.MonthsPerYear,
		IncomePctOfAvg:     pct,
		AvgMonthlyIncome:   region.AvgMonthlyIncome,
	}
}
