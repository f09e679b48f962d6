package refdata

// PriceScenario is a GPU-hour price point users could realistically be paid.
type PriceScenario struct {
	Label        string
	LabelAr      string
	GPUHourPrice float64 // USD per device GPU-hour
	Rationale    string
}

// ThermalProfile is a phone class with its sustained-load thermal limits.
type ThermalProfile struct {
	Phone            string
	PeakTOPS         float64
	TDPWatt          float64
	ThrottleTempC    float64
	AmbientC         float64
	MaxSustainedTOPS float64
	ThrottlePct      float64
	Cooling          string
}

// IndiaMarket holds the Indian market parameters used by the India-first
// adoption scenarios.
type IndiaMarket struct {
	Population      int64
	Smartphones     int64
	AvgIncome       float64 // USD per month
	ElectricityKWh  float64
	UPIUsers        int64
	JioSubscribers  int64
	MonthlyPerUser  float64 // conservative NHP payout, USD per month
	NearPovertyRate float64 // share of participants near the poverty line
}

// AdoptionLevel is an adoption rate, in percent, with its label.
type AdoptionLevel struct {
	Pct   float64
	Label string
}

// NPUChip compares a mobile chip's GPU and NPU for AI work.
type NPUChip struct {
	Chip     string
	GPUTOPS  float64
	NPUTOPS  float64
	GPUWatt  float64
	NPUWatt  float64
	NPUTasks string
}

// DistributedRival is a live distributed-compute project with its published
// figures.
type DistributedRival struct {
	Name         string
	Devices      string
	UserIncome   string
	DeviceType   string
	Founded      int
	RevenueEst   string
	NHPAdvantage string
}

// StressFactor is one assumption of the worst-case stress test.
type StressFactor struct {
	Factor string
	Normal string
	Worst  string
}

// Critique phase inputs.
const (
	// CritiqueExtraWatt is the per-phone draw assumed by the critique
	// scenarios, which target the NPU rather than the GPU.
	CritiqueExtraWatt = 2.5

	// USDToINR converts USD to Indian rupees.
	USDToINR = 83.0

	// CritiqueFleetDevices is the network size used for platform economics
	// in the pricing scenarios.
	CritiqueFleetDevices = 100_000_000

	// ViableMonthlyIncome is the monthly net income, in USD, above which a
	// price point is worth a user's while.
	ViableMonthlyIncome = 1.0

	// DegreesPerWatt is the rough temperature rise of a phone per watt of
	// sustained load.
	DegreesPerWatt = 3.0

	// ThermalMarginC is the tolerated overshoot above the throttle point.
	ThermalMarginC = 5.0

	// PaymentProcessingFee is the processor's share of the user pool.
	PaymentProcessingFee = 0.02

	// InfraCostShare is the share of developer spend consumed by task
	// routing and verification.
	InfraCostShare = 0.05

	// PerUserMonthlyPayout is the payout used to count users served.
	PerUserMonthlyPayout = 10.0
)

var priceScenarios = []PriceScenario{
	{Label: "Ultra-Conservative", LabelAr: "متحفظ جداً", GPUHourPrice: 0.03, Rationale: "Below any competitor. Grass.io pricing level."},
	{Label: "Conservative", LabelAr: "متحفظ", GPUHourPrice: 0.08, Rationale: "Salad.com-level pricing for distributed compute."},
	{Label: "Competitive", LabelAr: "تنافسي", GPUHourPrice: 0.15, Rationale: "50% cheaper than cheapest cloud (Lambda)."},
	{Label: "Moderate", LabelAr: "معتدل", GPUHourPrice: 0.20, Rationale: "Our baseline assumption. 70% cheaper than AWS."},
	{Label: "Premium", LabelAr: "مميز", GPUHourPrice: 0.35, Rationale: "If demand exceeds supply. Similar to Render Network."},
}

var thermalProfiles = []ThermalProfile{
	{Phone: "Flagship (S24 Ultra)", PeakTOPS: 34, TDPWatt: 5.0, ThrottleTempC: 42, AmbientC: 25, MaxSustainedTOPS: 24, ThrottlePct: 30, Cooling: "Vapor Chamber"},
	{Phone: "Mid-Range (Redmi Note 13)", PeakTOPS: 12, TDPWatt: 3.0, ThrottleTempC: 40, AmbientC: 30, MaxSustainedTOPS: 10, ThrottlePct: 17, Cooling: "Graphite Sheet"},
	{Phone: "Budget (Redmi 12)", PeakTOPS: 6, TDPWatt: 2.0, ThrottleTempC: 38, AmbientC: 30, MaxSustainedTOPS: 5, ThrottlePct: 17, Cooling: "None"},
	{Phone: "Flagship (Hot Climate)", PeakTOPS: 34, TDPWatt: 5.0, ThrottleTempC: 42, AmbientC: 35, MaxSustainedTOPS: 20, ThrottlePct: 41, Cooling: "Vapor Chamber"},
	{Phone: "Old Phone (S21, 2021)", PeakTOPS: 15, TDPWatt: 4.0, ThrottleTempC: 40, AmbientC: 28, MaxSustainedTOPS: 10, ThrottlePct: 33, Cooling: "Heat Pipe"},
}

var indiaMarket = IndiaMarket{
	Population:      1_400_000_000,
	Smartphones:     800_000_000,
	AvgIncome:       200,
	ElectricityKWh:  0.08,
	UPIUsers:        350_000_000,
	JioSubscribers:  460_000_000,
	MonthlyPerUser:  10.0,
	NearPovertyRate: 0.3,
}

var indiaAdoption = []AdoptionLevel{
	{Pct: 0.1, Label: "0.1% Early Adopters"},
	{Pct: 1.0, Label: "1% Traction"},
	{Pct: 5.0, Label: "5% Growth"},
	{Pct: 10.0, Label: "10% Mainstream"},
	{Pct: 25.0, Label: "25% Mass Adoption"},
}

// developerSpends are the monthly developer budgets traced through the
// payment flow, in USD.
var developerSpends = []float64{100, 500, 2000, 10000, 50000}

var npuChips = []NPUChip{
	{Chip: "Snapdragon 8 Gen 3", GPUTOPS: 34, NPUTOPS: 73, GPUWatt: 5.0, NPUWatt: 3.0, NPUTasks: "LLM, Image Classification, NLP"},
	{Chip: "Snapdragon 7+ Gen 3", GPUTOPS: 12, NPUTOPS: 40, GPUWatt: 3.0, NPUWatt: 2.0, NPUTasks: "Image Classification, NLP"},
	{Chip: "Apple A17 Pro", GPUTOPS: 35, NPUTOPS: 35, GPUWatt: 5.0, NPUWatt: 2.0, NPUTasks: "Core ML tasks"},
	{Chip: "Google Tensor G3", GPUTOPS: 22, NPUTOPS: 28, GPUWatt: 4.0, NPUWatt: 2.5, NPUTasks: "On-device AI, speech, photo"},
	{Chip: "Exynos 2400", GPUTOPS: 30, NPUTOPS: 37, GPUWatt: 5.0, NPUWatt: 2.5, NPUTasks: "Galaxy AI features"},
	{Chip: "Dimensity 9300", GPUTOPS: 28, NPUTOPS: 46, GPUWatt: 4.5, NPUWatt: 2.0, NPUTasks: "Generative AI, LLM"},
}

var distributedRivals = []DistributedRival{
	{Name: "Salad.com", Devices: "500K PCs", UserIncome: "$5-15/mo", DeviceType: "Gaming PCs", Founded: 2018, RevenueEst: "$10M/yr", NHPAdvantage: "4B phones vs 500K PCs = 8000× device base"},
	{Name: "Grass.io", Devices: "2M browsers", UserIncome: "$1-3/mo", DeviceType: "Browser extension", Founded: 2023, RevenueEst: "$5M/yr", NHPAdvantage: "Compute (not just bandwidth), OS-level (not browser)"},
	{Name: "Render Network", Devices: "300K GPUs", UserIncome: "$20-100/mo", DeviceType: "Dedicated GPUs", Founded: 2017, RevenueEst: "$30M/yr", NHPAdvantage: "No setup needed, auto-runs while charging"},
	{Name: "Akash Network", Devices: "100K servers", UserIncome: "Variable", DeviceType: "Servers/VMs", Founded: 2018, RevenueEst: "$8M/yr", NHPAdvantage: "Zero technical knowledge required from users"},
	{Name: "io.net", Devices: "500K GPUs", UserIncome: "$10-50/mo", DeviceType: "GPUs (mixed)", Founded: 2023, RevenueEst: "$15M/yr", NHPAdvantage: "Manufacturer partnership = trust + TEE security"},
}

var stressFactors = []StressFactor{
	{Factor: "Adoption", Normal: "1%", Worst: "0.1%"},
	{Factor: "Token price", Normal: "$0.15/hr", Worst: "$0.03/hr"},
	{Factor: "Thermal loss", Normal: "25%", Worst: "40%"},
	{Factor: "Device dropout", Normal: "8%", Worst: "20%"},
	{Factor: "Redundancy needed", Normal: "3×", Worst: "5×"},
	{Factor: "Payment fees", Normal: "2%", Worst: "5%"},
	{Factor: "User income", Normal: "~$10/mo", Worst: "~$1.50/mo"},
}
