package refdata

// manufacturers is ordered; scenario output follows this order.
var manufacturers = []Manufacturer{
	{
		Key: "samsung", Name: "Samsung", Short: "SAM",
		ActiveDevices: 300_000_000,
		FlagshipTOPS:  34.0, // Exynos 2400 / Snapdragon 8 Gen 3
		MidrangeTOPS:  12.0, // Exynos 1480
		FlagshipPct:   0.25,
		AIServiceName: "Galaxy AI", DailyAIRequests: 500_000_000,
		HQCountry:      "South Korea",
		PrimaryMarkets: []string{"South Korea", "USA", "EU", "India", "Brazil"},
	},
	{
		Key: "apple", Name: "Apple", Short: "APL",
		ActiveDevices: 1_500_000_000,
		FlagshipTOPS:  35.0, // A17 Pro
		MidrangeTOPS:  15.0, // A15
		FlagshipPct:   0.30,
		AIServiceName: "Apple Intelligence", DailyAIRequests: 800_000_000,
		HQCountry:      "USA",
		PrimaryMarkets: []string{"USA", "EU", "Japan", "China"},
	},
	{
		Key: "xiaomi", Name: "Xiaomi", Short: "XMI",
		ActiveDevices: 600_000_000,
		FlagshipTOPS:  34.0, // Snapdragon 8 Gen 3
		MidrangeTOPS:  10.0, // Dimensity 7200
		FlagshipPct:   0.15,
		AIServiceName: "HyperOS AI", DailyAIRequests: 300_000_000,
		HQCountry:      "China",
		PrimaryMarkets: []string{"China", "India", "Southeast Asia", "EU"},
	},
	{
		Key: "google", Name: "Google Pixel", Short: "GGL",
		ActiveDevices: 40_000_000,
		FlagshipTOPS:  29.0, // Tensor G3
		MidrangeTOPS:  15.0, // Tensor G2
		FlagshipPct:   0.40,
		AIServiceName: "Gemini Nano", DailyAIRequests: 100_000_000,
		HQCountry:      "USA",
		PrimaryMarkets: []string{"USA", "EU", "Japan"},
	},
	{
		Key: "huawei", Name: "Huawei", Short: "HUA",
		ActiveDevices: 250_000_000,
		FlagshipTOPS:  30.0, // Kirin 9000s
		MidrangeTOPS:  10.0, // Kirin 820
		FlagshipPct:   0.20,
		AIServiceName: "Celia AI", DailyAIRequests: 200_000_000,
		HQCountry:      "China",
		PrimaryMarkets: []string{"China", "Middle East", "Africa"},
	},
	{
		Key: "oppo", Name: "OPPO / OnePlus", Short: "OPP",
		ActiveDevices: 300_000_000,
		FlagshipTOPS:  34.0, // Snapdragon 8 Gen 3
		MidrangeTOPS:  11.0, // Dimensity 8200
		FlagshipPct:   0.15,
		AIServiceName: "ColorOS AI", DailyAIRequests: 150_000_000,
		HQCountry:      "China",
		PrimaryMarkets: []string{"China", "India", "Southeast Asia"},
	},
	{
		Key: "vivo", Name: "Vivo / iQOO", Short: "VVO",
		ActiveDevices: 250_000_000,
		FlagshipTOPS:  34.0,
		MidrangeTOPS:  11.0,
		FlagshipPct:   0.15,
		AIServiceName: "OriginOS AI", DailyAIRequests: 120_000_000,
		HQCountry:      "China",
		PrimaryMarkets: []string{"China", "India", "Southeast Asia"},
	},
}

var cloudProviders = []CloudProvider{
	{Key: "aws_a100", Name: "AWS", Short: "AWS-A100", GPUModel: "A100 80GB", GPUsPerInstance: 8, TOPSPerGPU: A100TOPS, HourlyCost: 32.77, OnDemand: true},
	{Key: "aws_h100", Name: "AWS", Short: "AWS-H100", GPUModel: "H100 80GB", GPUsPerInstance: 8, TOPSPerGPU: H100TOPS, HourlyCost: 98.32, OnDemand: true},
	{Key: "gcloud_h100", Name: "Google Cloud", Short: "GCP-H100", GPUModel: "H100 80GB", GPUsPerInstance: 8, TOPSPerGPU: H100TOPS, HourlyCost: 98.32, OnDemand: true},
	{Key: "azure_a100", Name: "Microsoft Azure", Short: "AZR-A100", GPUModel: "A100 80GB", GPUsPerInstance: 8, TOPSPerGPU: A100TOPS, HourlyCost: 27.20, OnDemand: true},
	{Key: "azure_h100", Name: "Microsoft Azure", Short: "AZR-H100", GPUModel: "H100 80GB", GPUsPerInstance: 8, TOPSPerGPU: H100TOPS, HourlyCost: 85.56, OnDemand: true},
	{Key: "lambda_h100", Name: "Lambda Labs", Short: "LMB-H100", GPUModel: "H100 80GB", GPUsPerInstance: 1, TOPSPerGPU: H100TOPS, HourlyCost: 2.49, OnDemand: true},
	{Key: "coreweave_h100", Name: "CoreWeave", Short: "CW-H100", GPUModel: "H100 80GB", GPUsPerInstance: 1, TOPSPerGPU: H100TOPS, HourlyCost: 2.23, OnDemand: true},
}

var regions = []Region{
	{Key: "usa", Name: "USA", NameAr: "الولايات المتحدة", ElectricityCostKWh: 0.16, AvgMonthlyIncome: 5500, SmartphonePenetration: 0.85, PopulationMillions: 335, Timezone: "UTC-5"},
	{Key: "eu", Name: "EU (Average)", NameAr: "الاتحاد الأوروبي", ElectricityCostKWh: 0.25, AvgMonthlyIncome: 3500, SmartphonePenetration: 0.80, PopulationMillions: 450, Timezone: "UTC+1"},
	{Key: "china", Name: "China", NameAr: "الصين", ElectricityCostKWh: 0.08, AvgMonthlyIncome: 1200, SmartphonePenetration: 0.75, PopulationMillions: 1400, Timezone: "UTC+8"},
	{Key: "india", Name: "India", NameAr: "الهند", ElectricityCostKWh: 0.08, AvgMonthlyIncome: 450, SmartphonePenetration: 0.55, PopulationMillions: 1420, Timezone: "UTC+5:30"},
	{Key: "brazil", Name: "Brazil", NameAr: "البرازيل", ElectricityCostKWh: 0.15, AvgMonthlyIncome: 700, SmartphonePenetration: 0.65, PopulationMillions: 215, Timezone: "UTC-3"},
	{Key: "middle_east", Name: "Middle East", NameAr: "الشرق الأوسط", ElectricityCostKWh: 0.05, AvgMonthlyIncome: 2000, SmartphonePenetration: 0.70, PopulationMillions: 400, Timezone: "UTC+3"},
	{Key: "africa", Name: "Sub-Saharan Africa", NameAr: "أفريقيا جنوب الصحراء", ElectricityCostKWh: 0.10, AvgMonthlyIncome: 250, SmartphonePenetration: 0.45, PopulationMillions: 1200, Timezone: "UTC+2"},
	{Key: "japan", Name: "Japan", NameAr: "اليابان", ElectricityCostKWh: 0.22, AvgMonthlyIncome: 3200, SmartphonePenetration: 0.80, PopulationMillions: 125, Timezone: "UTC+9"},
	{Key: "south_korea", Name: "South Korea", NameAr: "كوريا الجنوبية", ElectricityCostKWh: 0.10, AvgMonthlyIncome: 2800, SmartphonePenetration: 0.95, PopulationMillions: 52, Timezone: "UTC+9"},
	{Key: "southeast_asia", Name: "Southeast Asia", NameAr: "جنوب شرق آسيا", ElectricityCostKWh: 0.09, AvgMonthlyIncome: 500, SmartphonePenetration: 0.60, PopulationMillions: 680, Timezone: "UTC+7"},
}

var taskTypes = []TaskType{
	{Key: "inference_text", Name: "Text Inference (LLM)", NameAr: "استدلال نصي (LLM)", GPUSecondsPerTask: 0.5, Parallelizable: 0.7, LatencySensitive: true, MinTOPSRequired: 10.0, MarketSizeBillions: 15.0},
	{Key: "inference_image", Name: "Image Generation", NameAr: "توليد الصور", GPUSecondsPerTask: 5.0, Parallelizable: 0.9, LatencySensitive: false, MinTOPSRequired: 15.0, MarketSizeBillions: 8.0},
	{Key: "inference_voice", Name: "Voice / Speech-to-Text", NameAr: "صوت / تحويل كلام لنص", GPUSecondsPerTask: 0.3, Parallelizable: 0.8, LatencySensitive: true, MinTOPSRequired: 8.0, MarketSizeBillions: 5.0},
	{Key: "fine_tuning", Name: "Model Fine-Tuning", NameAr: "ضبط دقيق للنموذج", GPUSecondsPerTask: 60.0, Parallelizable: 0.6, LatencySensitive: false, MinTOPSRequired: 20.0, MarketSizeBillions: 4.0},
	{Key: "training_small", Name: "Small Model Training", NameAr: "تدريب نماذج صغيرة", GPUSecondsPerTask: 3600.0, Parallelizable: 0.5, LatencySensitive: false, MinTOPSRequired: 25.0, MarketSizeBillions: 3.0},
	{Key: "data_processing", Name: "AI Data Processing / ETL", NameAr: "معالجة بيانات AI", GPUSecondsPerTask: 2.0, Parallelizable: 0.95, LatencySensitive: false, MinTOPSRequired: 5.0, MarketSizeBillions: 6.0},
}

var competitors = []Competitor{
	{Key: "grass", Name: "Grass", DeviceType: "Desktop/Laptop", TargetNetwork: "Bandwidth", DeviceBaseEstimate: 2_000_000, NetworkLocked: true, AvgTOPSPerNode: 50.0, TokenPriceUSD: 1.50},
	{Key: "ionet", Name: "io.net", DeviceType: "Standalone GPU", TargetNetwork: "AI/ML", DeviceBaseEstimate: 500_000, NetworkLocked: true, AvgTOPSPerNode: 500.0, TokenPriceUSD: 2.00},
	{Key: "render", Name: "Render Network", DeviceType: "Standalone GPU", TargetNetwork: "Rendering", DeviceBaseEstimate: 300_000, NetworkLocked: true, AvgTOPSPerNode: 400.0, TokenPriceUSD: 6.00},
	{Key: "akash", Name: "Akash Network", DeviceType: "Server/Desktop", TargetNetwork: "General Compute", DeviceBaseEstimate: 100_000, NetworkLocked: true, AvgTOPSPerNode: 300.0, TokenPriceUSD: 3.50},
}

var riskFactors = []RiskFactor{
	{Name: "Manufacturer rejects partnership", NameAr: "رفض المصنّع الشراكة", Impact: 0.80, Probability: 0.30, Category: "Business"},
	{Name: "Low user adoption", NameAr: "تبني ضعيف من المستخدمين", Impact: 0.50, Probability: 0.35, Category: "Business"},
	{Name: "Regulatory ban on device compute", NameAr: "حظر تنظيمي للحوسبة على الأجهزة", Impact: 0.90, Probability: 0.10, Category: "Regulatory"},
	{Name: "TEE vulnerability discovered", NameAr: "اكتشاف ثغرة في TEE", Impact: 0.70, Probability: 0.05, Category: "Technical"},
	{Name: "Network latency too high", NameAr: "تأخر الشبكة عالٍ جداً", Impact: 0.40, Probability: 0.40, Category: "Technical"},
	{Name: "Cloud prices drop 80%", NameAr: "انخفاض أسعار السحابة 80%", Impact: 0.60, Probability: 0.20, Category: "Market"},
	{Name: "Competitor launches first", NameAr: "منافس يطلق أولاً", Impact: 0.30, Probability: 0.45, Category: "Market"},
	{Name: "Battery degradation backlash", NameAr: "ردة فعل سلبية بسبب البطارية", Impact: 0.35, Probability: 0.25, Category: "Technical"},
	{Name: "Token price collapse", NameAr: "انهيار سعر التوكن", Impact: 0.55, Probability: 0.30, Category: "Financial"},
	{Name: "Data privacy lawsuit", NameAr: "دعوى قضائية بخصوص الخصوصية", Impact: 0.75, Probability: 0.15, Category: "Legal"},
}

var batteryTiers = []BatteryTier{
	{Name: "Flagship (heavy use)", NightlyHours: 7.0},
	{Name: "Mid-range (moderate use)", NightlyHours: 7.0},
	{Name: "Budget (light use)", NightlyHours: 5.0},
}
