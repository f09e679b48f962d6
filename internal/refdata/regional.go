package refdata

// RegionalProfile is the market profile used by the regional deep-dive phase.
// It is coarser than Region: it groups countries into go-to-market blocs and
// carries an analyst-assigned opportunity score.
type RegionalProfile struct {
	Key              string
	Name             string
	NameAr           string
	Flag             string
	Population       int64
	Smartphones      int64
	AvgIncome        float64 // USD per month
	ElectricityKWh   float64
	TopBrands        string
	Payment          string
	WiFiPenetration  float64
	Regulation       string
	NHPIncome        float64 // expected USD per user per month
	AdoptionEst      float64
	StrategicNotes   string
	StrategicNotesAr string
	Risks            string
	OpportunityScore int
}

var regionalProfiles = []RegionalProfile{
	{
		Key: "india", Name: "India", NameAr: "الهند", Flag: "IN",
		Population: 1_400_000_000, Smartphones: 800_000_000,
		AvgIncome: 200, ElectricityKWh: 0.08,
		TopBrands:       "Xiaomi 18%, Samsung 19%, Realme 12%, Vivo 14%",
		Payment:         "UPI (350M users), Paytm, PhonePe",
		WiFiPenetration: 0.45, Regulation: "Moderate",
		NHPIncome: 10, AdoptionEst: 0.05,
		StrategicNotes:   "Largest addressable market. UPI is instant + free. Jio brought 500M online.",
		StrategicNotesAr: "أكبر سوق مستهدف. UPI فوري ومجاني. Jio أدخل 500M للإنترنت.",
		Risks:            "Data localization rules, political sensitivity to foreign tech",
		OpportunityScore: 95,
	},
	{
		Key: "sea", Name: "Southeast Asia", NameAr: "جنوب شرق آسيا", Flag: "SEA",
		Population: 700_000_000, Smartphones: 450_000_000,
		AvgIncome: 300, ElectricityKWh: 0.10,
		TopBrands:       "Samsung 20%, OPPO 18%, Vivo 16%, Xiaomi 15%",
		Payment:         "GCash (PH), GrabPay, ShopeePay, OVO (ID)",
		WiFiPenetration: 0.40, Regulation: "Light",
		NHPIncome: 12, AdoptionEst: 0.04,
		StrategicNotes:   "Mobile-first region. Super-apps (Grab, Shopee) enable payments. Young population.",
		StrategicNotesAr: "منطقة الهاتف أولاً. تطبيقات شاملة (Grab, Shopee) تمكّن الدفع. سكان شباب.",
		Risks:            "Fragmented markets (10+ countries), varying regulations",
		OpportunityScore: 88,
	},
	{
		Key: "mena", Name: "Middle East & North Africa", NameAr: "الشرق الأوسط وشمال أفريقيا", Flag: "MENA",
		Population: 400_000_000, Smartphones: 250_000_000,
		AvgIncome: 500, ElectricityKWh: 0.05,
		TopBrands:       "Samsung 30%, Apple 25%, Huawei 15%, Xiaomi 12%",
		Payment:         "STC Pay, Mada (SA), Fawry (EG), Apple Pay",
		WiFiPenetration: 0.65, Regulation: "Varies (UAE light, Egypt strict)",
		NHPIncome: 15, AdoptionEst: 0.03,
		StrategicNotes:   "High flagship adoption (UAE, Saudi). Gulf states = high income but smaller population. Egypt/Morocco = volume.",
		StrategicNotesAr: "اعتماد عالي للأجهزة الرائدة (الإمارات, السعودية). دول الخليج = دخل عالي. مصر/المغرب = حجم.",
		Risks:            "Crypto regulations unclear in most countries, political instability in some",
		OpportunityScore: 80,
	},
	{
		Key: "africa", Name: "Sub-Saharan Africa", NameAr: "أفريقيا جنوب الصحراء", Flag: "AFR",
		Population: 1_200_000_000, Smartphones: 300_000_000,
		AvgIncome: 100, ElectricityKWh: 0.12,
		TopBrands:       "Transsion (Tecno/Infinix/itel) 45%, Samsung 20%, Xiaomi 8%",
		Payment:         "M-Pesa (150M users), MTN MoMo, Airtel Money",
		WiFiPenetration: 0.20, Regulation: "Light",
		NHPIncome: 5, AdoptionEst: 0.02,
		StrategicNotes:   "Massive untapped potential. M-Pesa is dominant payment. Low WiFi = challenge. Transsion partnership is key.",
		StrategicNotesAr: "إمكانات ضخمة غير مستغلة. M-Pesa مهيمن. WiFi منخفض = تحدي. شراكة Transsion مفتاح.",
		Risks:            "Unreliable electricity/WiFi, very budget phones (low TOPS), M-Pesa fees 1-3%",
		OpportunityScore: 65,
	},
	{
		Key: "latam", Name: "Latin America", NameAr: "أمريكا اللاتينية", Flag: "LATAM",
		Population: 650_000_000, Smartphones: 400_000_000,
		AvgIncome: 350, ElectricityKWh: 0.09,
		TopBrands:       "Samsung 35%, Motorola 20%, Xiaomi 15%, Apple 10%",
		Payment:         "Pix (Brazil, 150M), MercadoPago, Nequi (Colombia)",
		WiFiPenetration: 0.55, Regulation: "Moderate",
		NHPIncome: 12, AdoptionEst: 0.03,
		StrategicNotes:   "Brazil's Pix = instant free payments (like UPI). Samsung dominant. High smartphone penetration.",
		StrategicNotesAr: "Pix البرازيلي = دفع فوري مجاني (مثل UPI). Samsung مهيمن. اختراق هواتف ذكية عالي.",
		Risks:            "Economic instability, currency volatility, high crime (phone theft)",
		OpportunityScore: 78,
	},
	{
		Key: "europe", Name: "Europe", NameAr: "أوروبا", Flag: "EU",
		Population: 450_000_000, Smartphones: 350_000_000,
		AvgIncome: 2500, ElectricityKWh: 0.30,
		TopBrands:       "Apple 35%, Samsung 30%, Xiaomi 15%",
		Payment:         "SEPA, Apple Pay, Google Pay, bank transfers",
		WiFiPenetration: 0.85, Regulation: "Strict (GDPR)",
		NHPIncome: 15, AdoptionEst: 0.01,
		StrategicNotes:   "NHP income ($15) is NOT attractive here (0.6% of income). Angle: Green Tech + sustainability.",
		StrategicNotesAr: "دخل NHP ($15) غير جذاب هنا (0.6% من الدخل). الزاوية: تقنية خضراء + استدامة.",
		Risks:            "GDPR compliance critical, high electricity cost, users don't need $15/month",
		OpportunityScore: 45,
	},
}
