package refdata

// TimezoneBloc is a group of phones that share a night window.
type TimezoneBloc struct {
	Name       string
	NameAr     string
	UTCOffset  float64 // hours
	DevicesM   float64 // millions of phones
	NightStart float64 // local hour the window opens
	NightEnd   float64 // local hour the window closes
}

// RetiredPhone is an older model that could keep earning as an NHP node.
type RetiredPhone struct {
	Model     string
	TOPS      float64
	ResaleUSD float64
	UnitsM    float64
}

// SovereigntyRegion is a region whose AI compute depends on foreign clouds.
type SovereigntyRegion struct {
	Name            string
	NameAr          string
	CloudDependency string
	PhonesM         float64
	CloudSpendB     float64 // current annual cloud spend, USD billions
	SovereigntyRisk string
}

// Disaster is a cloud outage event and how a phone network absorbs it.
type Disaster struct {
	Event            string
	EventAr          string
	AffectedServices string
	DowntimeHours    int
	EconomicLossM    float64 // USD millions
	NHPResponse      string
}

// EducationMarket is a country's university AI compute demand.
type EducationMarket struct {
	Country               string
	CountryAr             string
	Universities          int
	StudentsM             float64
	GPUBudgetPerUni       float64
	CloudCostPerStudentYr float64
	NHPCostPerStudentYr   float64
	PhonesAvailableM      float64
}

// Milestone is a network size with what it unlocks.
type Milestone struct {
	Devices int64
	Label   string
	LabelAr string
	Event   string
}

// DeviceGeneration is a flagship model whose TOPS sets its NHP earnings.
type DeviceGeneration struct {
	Model string
	TOPS  float64
}

// AdoptionPath is a yearly projection of active devices, in millions.
type AdoptionPath struct {
	Name     string
	DevicesM []float64
}

// Visionary phase inputs.
const (
	// LegacyPhoneUptime is the share of the time an old phone is available.
	LegacyPhoneUptime = 0.3

	// BaselineFlagshipTOPS is the flagship rating the baseline income is
	// quoted for.
	BaselineFlagshipTOPS = 34.0

	// LegacyBaselineTOPS is the rating old-phone income is scaled from.
	LegacyBaselineTOPS = 15.0

	// SovereignAvgTOPS is the average phone rating in sovereignty regions.
	SovereignAvgTOPS = 15.0

	// MovableCloudShare is the share of cloud spend that could move to NHP.
	MovableCloudShare = 0.4

	// MilestoneAvgTOPS and MilestoneUptime size the fleet at each milestone.
	MilestoneAvgTOPS = 17.0
	MilestoneUptime  = 0.25

	// ProjectionStartYear is the first year of the adoption paths.
	ProjectionStartYear = 2026
)

var timezoneBlocs = []TimezoneBloc{
	{Name: "East Asia", NameAr: "شرق آسيا", UTCOffset: 8, DevicesM: 800, NightStart: 22, NightEnd: 6},
	{Name: "South Asia", NameAr: "جنوب آسيا", UTCOffset: 5.5, DevicesM: 500, NightStart: 23, NightEnd: 6},
	{Name: "Middle East", NameAr: "الشرق الأوسط", UTCOffset: 3, DevicesM: 100, NightStart: 23, NightEnd: 6},
	{Name: "Europe", NameAr: "أوروبا", UTCOffset: 1, DevicesM: 200, NightStart: 23, NightEnd: 7},
	{Name: "Africa", NameAr: "أفريقيا", UTCOffset: 2, DevicesM: 150, NightStart: 22, NightEnd: 6},
	{Name: "East Americas", NameAr: "شرق الأمريكتين", UTCOffset: -5, DevicesM: 300, NightStart: 23, NightEnd: 7},
	{Name: "West Americas", NameAr: "غرب الأمريكتين", UTCOffset: -8, DevicesM: 200, NightStart: 23, NightEnd: 7},
	{Name: "Oceania", NameAr: "أوقيانوسيا", UTCOffset: 10, DevicesM: 30, NightStart: 22, NightEnd: 6},
}

var retiredPhones = []RetiredPhone{
	{Model: "Galaxy S21 (2021)", TOPS: 15, ResaleUSD: 80, UnitsM: 25},
	{Model: "Galaxy S20 (2020)", TOPS: 10, ResaleUSD: 50, UnitsM: 20},
	{Model: "iPhone 12 (2020)", TOPS: 11, ResaleUSD: 120, UnitsM: 30},
	{Model: "iPhone 11 (2019)", TOPS: 8, ResaleUSD: 80, UnitsM: 35},
	{Model: "Pixel 5 (2020)", TOPS: 8, ResaleUSD: 40, UnitsM: 3},
	{Model: "Xiaomi Mi 11 (2021)", TOPS: 12, ResaleUSD: 60, UnitsM: 15},
	{Model: "OnePlus 9 (2021)", TOPS: 12, ResaleUSD: 50, UnitsM: 5},
}

var sovereigntyRegions = []SovereigntyRegion{
	{Name: "Middle East", NameAr: "الشرق الأوسط", CloudDependency: "AWS/Azure (US)", PhonesM: 100, CloudSpendB: 5.0, SovereigntyRisk: "US sanctions can cut access overnight"},
	{Name: "Africa", NameAr: "أفريقيا", CloudDependency: "AWS (US)", PhonesM: 150, CloudSpendB: 2.0, SovereigntyRisk: "No local data centers. All data flows to US/EU"},
	{Name: "Latin America", NameAr: "أمريكا اللاتينية", CloudDependency: "AWS/GCP (US)", PhonesM: 200, CloudSpendB: 8.0, SovereigntyRisk: "Digital dependency on US tech companies"},
	{Name: "Southeast Asia", NameAr: "جنوب شرق آسيا", CloudDependency: "AWS/Alibaba", PhonesM: 300, CloudSpendB: 12.0, SovereigntyRisk: "Caught between US-China tech war"},
	{Name: "Central Asia", NameAr: "آسيا الوسطى", CloudDependency: "Yandex/Alibaba", PhonesM: 50, CloudSpendB: 1.0, SovereigntyRisk: "No local cloud. Russia/China dependency"},
}

var disasters = []Disaster{
	{Event: "AWS us-east-1 Outage", EventAr: "انقطاع AWS us-east-1", AffectedServices: "50% of US internet", DowntimeHours: 6, EconomicLossM: 500, NHPResponse: "NHP auto-routes to available phones globally. Zero single point of failure."},
	{Event: "Submarine Cable Cut (Red Sea)", EventAr: "قطع كابل بحري (البحر الأحمر)", AffectedServices: "25% of EU-Asia traffic", DowntimeHours: 72, EconomicLossM: 2000, NHPResponse: "NHP processes locally on in-region phones. No cross-ocean dependency."},
	{Event: "Earthquake hits Tokyo DC", EventAr: "زلزال يضرب مركز بيانات طوكيو", AffectedServices: "Japan cloud services", DowntimeHours: 48, EconomicLossM: 1500, NHPResponse: "NHP fleet: 100M+ phones in Japan alone. Distributed = earthquake-proof."},
	{Event: "Sanctions cut cloud access", EventAr: "عقوبات تقطع الوصول للسحابة", AffectedServices: "Entire country loses cloud", DowntimeHours: 8760, EconomicLossM: 10000, NHPResponse: "NHP is sovereign compute. Phones work without any external dependency."},
	{Event: "Ransomware hits major cloud", EventAr: "برنامج فدية يصيب سحابة كبرى", AffectedServices: "Cloud provider encrypted", DowntimeHours: 120, EconomicLossM: 3000, NHPResponse: "NHP TEE is isolated. Ransomware cannot spread to TEE-protected phones."},
}

var educationMarkets = []EducationMarket{
	{Country: "Nigeria", CountryAr: "نيجيريا", Universities: 200, StudentsM: 2.1, GPUBudgetPerUni: 0, CloudCostPerStudentYr: 500, NHPCostPerStudentYr: 50, PhonesAvailableM: 40},
	{Country: "India", CountryAr: "الهند", Universities: 1000, StudentsM: 40, GPUBudgetPerUni: 10000, CloudCostPerStudentYr: 300, NHPCostPerStudentYr: 30, PhonesAvailableM: 200},
	{Country: "Egypt", CountryAr: "مصر", Universities: 70, StudentsM: 3.5, GPUBudgetPerUni: 5000, CloudCostPerStudentYr: 400, NHPCostPerStudentYr: 40, PhonesAvailableM: 30},
	{Country: "Indonesia", CountryAr: "إندونيسيا", Universities: 400, StudentsM: 8, GPUBudgetPerUni: 8000, CloudCostPerStudentYr: 350, NHPCostPerStudentYr: 35, PhonesAvailableM: 80},
	{Country: "Brazil", CountryAr: "البرازيل", Universities: 300, StudentsM: 9, GPUBudgetPerUni: 15000, CloudCostPerStudentYr: 400, NHPCostPerStudentYr: 45, PhonesAvailableM: 60},
}

var milestones = []Milestone{
	{Devices: 100_000, Label: "Proof of Concept", LabelAr: "إثبات المفهوم", Event: "First manufacturer pilot. NHP processes basic inference tasks."},
	{Devices: 1_000_000, Label: "Early Traction", LabelAr: "جذب مبكر", Event: "Equivalent to 4,250 H100s. Developers start noticing. First revenue."},
	{Devices: 10_000_000, Label: "Market Validation", LabelAr: "تحقق السوق", Event: "42,500 H100 equiv. Cheaper than every cloud. VCs interested."},
	{Devices: 100_000_000, Label: "Critical Mass", LabelAr: "الكتلة الحرجة", Event: "425,000 H100 equiv. Network effects kick in. Second manufacturer joins."},
	{Devices: 500_000_000, Label: "Market Leader", LabelAr: "رائد السوق", Event: "2.1M H100 equiv. Larger than any single cloud provider's GPU fleet."},
	{Devices: 1_000_000_000, Label: "Dominance", LabelAr: "هيمنة", Event: "4.25M H100 equiv. NHP is the default AI compute layer. Token is top-50 crypto."},
	{Devices: 2_000_000_000, Label: "Global Infrastructure", LabelAr: "بنية تحتية عالمية", Event: "Half the world's phones participate. NHP is to compute what TCP/IP is to networking."},
}

var deviceGenerations = []DeviceGeneration{
	{Model: "Galaxy S24", TOPS: 34},
	{Model: "Galaxy S25", TOPS: 50},
	{Model: "Galaxy S26", TOPS: 70},
}

var adoptionPaths = []AdoptionPath{
	{Name: "Conservative", DevicesM: []float64{1, 10, 50, 150, 300}},
	{Name: "Moderate", DevicesM: []float64{5, 50, 200, 500, 1000}},
	{Name: "Optimistic", DevicesM: []float64{10, 100, 500, 1500, 3000}},
}
