package engine

import (
	"math"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

// HourlyCoverageResult is the number of phones inside their night window at
// one UTC hour.
type HourlyCoverageResult struct {
	UTCHour        int     `json:"utc_hour"`
	ActiveDevicesM float64 `json:"active_devices_m"`
}

// CoverageSummary condenses a day of hourly coverage.
type CoverageSummary struct {
	MinDevicesM   float64 `json:"min_devices_m"`
	MaxDevicesM   float64 `json:"max_devices_m"`
	AvgDevicesM   float64 `json:"avg_devices_m"`
	CoveragePct   float64 `json:"coverage_pct"`
	TotalFleetM   float64 `json:"total_fleet_m"`
	AlwaysOnM     float64 `json:"always_on_m"`
	PeakUTCHour   int     `json:"peak_utc_hour"`
	TroughUTCHour int     `json:"trough_utc_hour"`
}

// inNightWindow reports whether local hour h falls in a window that may
// wrap past midnight.
func inNightWindow(h float64, b refdata.TimezoneBloc) bool {
	if b.NightStart <= b.NightEnd {
		return h >= b.NightStart && h < b.NightEnd
	}
	return h >= b.NightStart || h < b.NightEnd
}

// FollowTheMoon counts, for each UTC hour, the phones whose local time is
// inside their night window.
func FollowTheMoon(blocs []refdata.TimezoneBloc) []HourlyCoverageResult {
	out := make([]HourlyCoverageResult, 24)
	for h := range out {
		out[h].UTCHour = h
		for _, b := range blocs {
			local := math.Mod(float64(h)+b.UTCOffset, 24)
			if local < 0 {
				local += 24
			}
			if inNightWindow(local, b) {
				out[h].ActiveDevicesM += b.DevicesM
			}
		}
	}
	return out
}

// SummarizeCoverage reduces hourly coverage to its floor, peak and mean.
// The floor is the fleet that is available at every hour.
func SummarizeCoverage(hours []HourlyCoverageResult, blocs []refdata.TimezoneBloc) CoverageSummary {
	var s CoverageSummary
	for _, b := range blocs {
		s.TotalFleetM += b.DevicesM
	}
	if len(hours) == 0 {
		return s
	}

	s.MinDevicesM = hours[0].ActiveDevicesM
	s.MaxDevicesM = hours[0].ActiveDevicesM
	s.PeakUTCHour = hours[0].UTCHour
	s.TroughUTCHour = hours[0].UTCHour
	var sum float64
	for _, h := range hours {
		sum += h.ActiveDevicesM
		if h.ActiveDevicesM < s.MinDevicesM {
			s.MinDevicesM = h.ActiveDevicesM
			s.TroughUTCHour = h.UTCHour
		}
		if h.ActiveDevicesM > s.MaxDevicesM {
			s.MaxDevicesM = h.ActiveDevicesM
			s.PeakUTCHour = h.UTCHour
		}
	}
	s.AvgDevicesM = sum / float64(len(hours))
	if s.MaxDevicesM > 0 {
		s.CoveragePct = s.MinDevicesM / s.MaxDevicesM * 100
	}
	s.AlwaysOnM = s.MinDevicesM
	return s
}

// RetiredPhoneResult is what an old phone earns and adds as an NHP node.
type RetiredPhoneResult struct {
	Model         string  `json:"model"`
	TOPS          float64 `json:"tops"`
	ResaleUSD     float64 `json:"resale_usd"`
	UnitsM        float64 `json:"units_m"`
	MonthlyIncome float64 `json:"monthly_income"`
	AnnualIncome  float64 `json:"annual_income"`
	PaybackMonths float64 `json:"payback_months"`
	FleetTOPS     float64 `json:"fleet_tops"`
	H100Equiv     float64 `json:"h100_equiv"`
}

// SecondLife scales the legacy baseline income by the phone's TOPS and
// compares it with the phone's resale value. A phone that earns nothing
// never pays back and reports +Inf months.
func SecondLife(p refdata.RetiredPhone) RetiredPhoneResult {
	monthly := refdata.NightlyHours * p.TOPS / refdata.LegacyBaselineTOPS * refdata.ModerateTokenPrice * refdata.DaysPerMonth
	payback := math.Inf(1)
	if monthly > 0 {
		payback = p.ResaleUSD / monthly
	}
	fleet := p.UnitsM * 1e6 * p.TOPS * refdata.LegacyPhoneUptime

	return RetiredPhoneResult{
		Model:         p.Model,
		TOPS:          p.TOPS,
		ResaleUSD:     p.ResaleUSD,
		UnitsM:        p.UnitsM,
		MonthlyIncome: monthly,
		AnnualIncome:  monthly * refdata.MonthsPerYear,
		PaybackMonths: payback,
		FleetTOPS:     fleet,
		H100Equiv:     fleet / refdata.H100TOPS,
	}
}

// SovereigntyResult is the local compute a region could field from phones.
type SovereigntyResult struct {
	Region            string  `json:"region"`
	RegionAr          string  `json:"region_ar"`
	CloudDependency   string  `json:"cloud_dependency"`
	PhonesM           float64 `json:"phones_m"`
	CloudSpendB       float64 `json:"cloud_spend_b"`
	LocalTOPS         float64 `json:"local_tops"`
	H100Equiv         float64 `json:"h100_equiv"`
	PotentialSavingsB float64 `json:"potential_savings_b"`
	IndependencePct   float64 `json:"independence_pct"`
	SovereigntyRisk   string  `json:"sovereignty_risk"`
}

// Sovereignty sizes a region's phone fleet as local compute and the share
// of its cloud spend that could move onto it.
func Sovereignty(r refdata.SovereigntyRegion) SovereigntyResult {
	local := r.PhonesM * 1e6 * refdata.SovereignAvgTOPS * refdata.LegacyPhoneUptime
	return SovereigntyResult{
		Region:            r.Name,
		RegionAr:          r.NameAr,
		CloudDependency:   r.CloudDependency,
		PhonesM:           r.PhonesM,
		CloudSpendB:       r.CloudSpendB,
		LocalTOPS:         local,
		H100Equiv:         local / refdata.H100TOPS,
		PotentialSavingsB: r.CloudSpendB * refdata.MovableCloudShare,
		IndependencePct:   refdata.MovableCloudShare * 100,
		SovereigntyRisk:   r.SovereigntyRisk,
	}
}

// DisasterResult is a cloud outage and the network's answer to it.
type DisasterResult struct {
	Event            string  `json:"event"`
	EventAr          string  `json:"event_ar"`
	AffectedServices string  `json:"affected_services"`
	DowntimeHours    int     `json:"downtime_hours"`
	EconomicLossM    float64 `json:"economic_loss_m"`
	NHPResponse      string  `json:"nhp_response"`
}

// DisasterRecovery passes an outage scenario through as a result row.
func DisasterRecovery(d refdata.Disaster) DisasterResult {
	return DisasterResult(d)
}

// EducationResult compares a country's student compute bill on the cloud
// and on NHP.
type EducationResult struct {
	Country            string  `json:"country"`
	CountryAr          string  `json:"country_ar"`
	Universities       int     `json:"universities"`
	StudentsM          float64 `json:"students_m"`
	CloudTotal         float64 `json:"cloud_total"`
	NHPTotal           float64 `json:"nhp_total"`
	AnnualSavings      float64 `json:"annual_savings"`
	GPUHoursPerStudent float64 `json:"gpu_hours_per_student"`
	PhonesAvailableM   float64 `json:"phones_available_m"`
}

// Education prices a year of student compute and the nightly phone hours
// available per student.
func Education(e refdata.EducationMarket) EducationResult {
	students := e.StudentsM * 1e6
	cloud := students * e.CloudCostPerStudentYr
	nhp := students * e.NHPCostPerStudentYr

	var perStudent float64
	if students > 0 {
		perStudent = e.PhonesAvailableM * 1e6 * refdata.NightlyHours * refdata.DaysPerYear / students
	}

	return EducationResult{
		Country:            e.Country,
		CountryAr:          e.CountryAr,
		Universities:       e.Universities,
		StudentsM:          e.StudentsM,
		CloudTotal:         cloud,
		NHPTotal:           nhp,
		AnnualSavings:      cloud - nhp,
		GPUHoursPerStudent: perStudent,
		PhonesAvailableM:   e.PhonesAvailableM,
	}
}

// MilestoneResult is the compute and money flow at one network size.
type MilestoneResult struct {
	Label          string  `json:"label"`
	LabelAr        string  `json:"label_ar"`
	Devices        int64   `json:"devices"`
	H100Equiv      int64   `json:"h100_equiv"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	UserPayouts    float64 `json:"user_payouts"`
	Event          string  `json:"event"`
}

// networkAt sizes a fleet of devices at the milestone averages. Income is
// quoted at the moderate token price.
func networkAt(devices float64) (h100 int64, revenue, payouts float64) {
	h100 = int64(devices * refdata.MilestoneAvgTOPS * refdata.MilestoneUptime / refdata.H100TOPS)
	gross := devices * refdata.NightlyHours * refdata.ModerateTokenPrice * refdata.DaysPerMonth
	return h100, gross * refdata.PlatformCut, gross * (1 - refdata.PlatformCut)
}

// TippingPoint evaluates a network-size milestone.
func TippingPoint(m refdata.Milestone) MilestoneResult {
	h100, revenue, payouts := networkAt(float64(m.Devices))
	return MilestoneResult{
		Label:          m.Label,
		LabelAr:        m.LabelAr,
		Devices:        m.Devices,
		H100Equiv:      h100,
		MonthlyRevenue: revenue,
		UserPayouts:    payouts,
		Event:          m.Event,
	}
}

// UpgradeResult is a flagship's monthly NHP income relative to the baseline.
type UpgradeResult struct {
	Model         string  `json:"model"`
	TOPS          float64 `json:"tops"`
	MonthlyIncome float64 `json:"monthly_income"`
	AnnualIncome  float64 `json:"annual_income"`
	UpliftPct     float64 `json:"uplift_pct"`
}

// UpgradeIncentive scales the baseline flagship income by TOPS.
func UpgradeIncentive(g refdata.DeviceGeneration) UpgradeResult {
	base := refdata.NightlyHours * refdata.ModerateTokenPrice * refdata.DaysPerMonth
	monthly := base * g.TOPS / refdata.BaselineFlagshipTOPS
	return UpgradeResult{
		Model:         g.Model,
		TOPS:          g.TOPS,
		MonthlyIncome: monthly,
		AnnualIncome:  monthly * refdata.MonthsPerYear,
		UpliftPct:     (g.TOPS/refdata.BaselineFlagshipTOPS - 1) * 100,
	}
}

// ProjectionResult is one year of an adoption path.
type ProjectionResult struct {
	Path                  string  `json:"path"`
	Year                  int     `json:"year"`
	DevicesM              float64 `json:"devices_m"`
	H100Equiv             int64   `json:"h100_equiv"`
	AnnualPlatformRevenue float64 `json:"annual_platform_revenue"`
	AnnualUserPayouts     float64 `json:"annual_user_payouts"`
}

// Projection evaluates every year of an adoption path with the milestone
// formulas, starting at refdata.ProjectionStartYear.
func Projection(p refdata.AdoptionPath) []ProjectionResult {
	out := make([]ProjectionResult, 0, len(p.DevicesM))
	for i, m := range p.DevicesM {
		h100, revenue, payouts := networkAt(m * 1e6)
		out = append(out, ProjectionResult{
			Path:                  p.Name,
			Year:                  refdata.ProjectionStartYear + i,
			DevicesM:              m,
			H100Equiv:             h100,
			AnnualPlatformRevenue: revenue * refdata.MonthsPerYear,
			AnnualUserPayouts:     payouts * refdata.MonthsPerYear,
		})
	}
	return out
}
