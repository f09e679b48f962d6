package scenario

import "github.com/rshade/nhp-simulation/internal/engine"

// Visionary phase category keys.
const (
	CategoryMoonHourly   = "moon_hourly"
	CategoryMoonCoverage = "moon_coverage"
	CategorySecondLife   = "second_life"
	CategorySovereignty  = "sovereignty"
	CategoryDisasters    = "disasters"
	CategoryEducation    = "education"
	CategoryTipping      = "tipping_points"
	CategoryUpgrade      = "upgrade_incentive"
	CategoryProjection   = "projection_2030"
)

// visionaryPhase runs the long-range scenarios: round-the-clock coverage
// from night-only phones, retired phones as nodes, compute sovereignty,
// outages, education, network milestones, upgrade incentives and the
// adoption paths to 2030.
func visionaryPhase(r *Runner) ([]CategoryResults, error) {
	c := r.catalog

	hours := engine.FollowTheMoon(c.TimezoneBlocs)
	coverage := engine.SummarizeCoverage(hours, c.TimezoneBlocs)

	retired := make([]engine.RetiredPhoneResult, 0, len(c.RetiredPhones))
	for _, p := range c.RetiredPhones {
		retired = append(retired, engine.SecondLife(p))
	}

	sovereignty := make([]engine.SovereigntyResult, 0, len(c.SovereigntyRegions))
	for _, reg := range c.SovereigntyRegions {
		sovereignty = append(sovereignty, engine.Sovereignty(reg))
	}

	disasters := make([]engine.DisasterResult, 0, len(c.Disasters))
	for _, d := range c.Disasters {
		disasters = append(disasters, engine.DisasterRecovery(d))
	}

	education := make([]engine.EducationResult, 0, len(c.EducationMarkets))
	for _, e := range c.EducationMarkets {
		education = append(education, engine.Education(e))
	}

	tipping := make([]engine.MilestoneResult, 0, len(c.Milestones))
	for _, m := range c.Milestones {
		tipping = append(tipping, engine.TippingPoint(m))
	}

	upgrades := make([]engine.UpgradeResult, 0, len(c.DeviceGenerations))
	for _, g := range c.DeviceGenerations {
		upgrades = append(upgrades, engine.UpgradeIncentive(g))
	}

	var projection []engine.ProjectionResult
	for _, p := range c.AdoptionPaths {
		projection = append(projection, engine.Projection(p)...)
	}

	return []CategoryResults{
		{
			Key: CategoryMoonHourly, Title: "Follow the Moon: Hourly Coverage", TitleAr: "اتبع القمر: التغطية بالساعة",
			Records: fixed(CategoryMoonHourly, hours),
		},
		{
			Key: CategoryMoonCoverage, Title: "Follow the Moon: Summary", TitleAr: "اتبع القمر: الملخص",
			Records: fixed(CategoryMoonCoverage, []engine.CoverageSummary{coverage}),
		},
		{
			Key: CategorySecondLife, Title: "E-Waste Revolution", TitleAr: "ثورة النفايات الإلكترونية",
			Records: fixed(CategorySecondLife, retired),
		},
		{
			Key: CategorySovereignty, Title: "Compute Sovereignty", TitleAr: "استقلال الحوسبة",
			Records: fixed(CategorySovereignty, sovereignty),
		},
		{
			Key: CategoryDisasters, Title: "Anti-Fragile Infrastructure", TitleAr: "بنية مقاومة للكوارث",
			Records: fixed(CategoryDisasters, disasters),
		},
		{
			Key: CategoryEducation, Title: "Education Equalizer", TitleAr: "مُعادِل التعليم",
			Records: fixed(CategoryEducation, education),
		},
		{
			Key: CategoryTipping, Title: "Tipping Points", TitleAr: "نقاط التحول",
			Records: fixed(CategoryTipping, tipping),
		},
		{
			Key: CategoryUpgrade, Title: "Device Upgrade Incentive", TitleAr: "حافز ترقية الأجهزة",
			Records: fixed(CategoryUpgrade, upgrades),
		},
		{
			Key: CategoryProjection, Title: "NHP in 2030", TitleAr: "رؤية 2030",
			Records: fixed(CategoryProjection, projection),
		},
	}, nil
}
