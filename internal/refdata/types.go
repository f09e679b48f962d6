package refdata

// Manufacturer is a smartphone manufacturer's fleet profile.
type Manufacturer struct {
	// Key is the stable lookup key (e.g., "samsung").
	Key string

	// Name is the display name (e.g., "Samsung").
	Name string

	// Short is the short code used in alliance labels (e.g., "SAM").
	Short string

	// ActiveDevices is the number of active devices worldwide.
	ActiveDevices int64

	// FlagshipTOPS and MidrangeTOPS are the per-device compute ratings.
	FlagshipTOPS float64
	MidrangeTOPS float64

	// FlagshipPct is the fraction of the fleet that is flagship (0.0 to 1.0).
	FlagshipPct float64

	// AIServiceName is the manufacturer's on-device AI brand.
	AIServiceName string

	// DailyAIRequests is the estimated number of AI requests per day.
	DailyAIRequests int64

	// HQCountry is the headquarters country.
	HQCountry string

	// PrimaryMarkets lists the main sales regions.
	PrimaryMarkets []string
}

// CloudProvider is a cloud GPU instance pricing profile.
type CloudProvider struct {
	// Key is the stable lookup key (e.g., "aws_a100").
	Key string

	// Name is the provider name (e.g., "AWS").
	Name string

	// Short is the short label used in tables (e.g., "AWS-A100").
	Short string

	// GPUModel is the accelerator model (e.g., "A100 80GB").
	GPUModel string

	// GPUsPerInstance is the number of GPUs per billed instance (>= 1).
	GPUsPerInstance int

	// TOPSPerGPU is the per-GPU compute rating.
	TOPSPerGPU float64

	// HourlyCost is the USD price per instance-hour (> 0).
	HourlyCost float64

	// OnDemand is true for on-demand pricing, false for spot/reserved.
	OnDemand bool
}

// Region holds regional economic parameters.
type Region struct {
	Key                   string
	Name                  string
	NameAr                string
	ElectricityCostKWh    float64 // USD per kWh
	AvgMonthlyIncome      float64 // USD
	SmartphonePenetration float64 // 0.0 to 1.0
	PopulationMillions    int64
	Timezone              string
}

// TaskType describes an AI workload class.
type TaskType struct {
	Key                string
	Name               string
	NameAr             string
	GPUSecondsPerTask  float64
	Parallelizable     float64 // 0.0 to 1.0
	LatencySensitive   bool
	MinTOPSRequired    float64
	MarketSizeBillions float64
}

// Competitor is a competing distributed-compute platform.
type Competitor struct {
	Key                string
	Name               string
	DeviceType         string
	TargetNetwork      string
	DeviceBaseEstimate int64
	MfgPartnership     bool
	TEEProtection      bool
	NetworkLocked      bool
	AvgTOPSPerNode     float64
	TokenPriceUSD      float64
}

// RiskFactor is a named business risk with its unscaled impact and probability.
type RiskFactor struct {
	Name        string
	NameAr      string
	Impact      float64 // fraction of base value lost
	Probability float64 // 0.0 to 1.0
	Category    string  // Business, Regulatory, Technical, Market, Financial, Legal
}

// BatteryTier is a device tier used by battery impact scenarios.
type BatteryTier struct {
	Name         string
	NightlyHours float64
}
