package refdata

// SettlementSystem is a payout mechanism for delivering NHP rewards to users.
type SettlementSystem struct {
	Key      string
	Name     string
	NameAr   string
	Category string // Blockchain, Traditional, Hybrid, In-App

	// TxFeePct is the fee as a percent of the payout (2.5 means 2.5%).
	TxFeePct float64

	// TxFeeFixed is the fixed fee per payout in USD.
	TxFeeFixed float64

	MinPayout       float64
	SettlementHours float64
	OnboardingSteps int

	RequiresBankAccount  bool
	RequiresCryptoWallet bool
	RequiresKYC          bool

	UserDifficulty string // Easy, Medium, Hard
	MfgAcceptance  string // High, Medium, Low
	RegulatoryRisk string // Low, Medium, High

	TPSCapacity int
	UptimePct   float64

	AvailableRegions []string
	BlockedRegions   []string
}

var settlementSystems = []SettlementSystem{
	{
		Key: "blockchain_l1", Name: "Blockchain L1 (Ethereum/Solana)",
		NameAr: "بلوكشين طبقة أولى (إيثريوم/سولانا)", Category: "Blockchain",
		TxFeePct: 0.0, TxFeeFixed: 0.01, MinPayout: 1.0, SettlementHours: 0.01,
		OnboardingSteps: 5, RequiresCryptoWallet: true,
		UserDifficulty: "Hard", MfgAcceptance: "Low", RegulatoryRisk: "High",
		TPSCapacity: 65000, UptimePct: 99.9,
		AvailableRegions: []string{"USA", "EU", "Japan", "South Korea", "Southeast Asia", "Middle East"},
		BlockedRegions:   []string{"China (banned)", "India (restricted)"},
	},
	{
		Key: "blockchain_l2", Name: "Blockchain L2 (Base/Polygon/Arbitrum)",
		NameAr: "بلوكشين طبقة ثانية (Base/Polygon/Arbitrum)", Category: "Blockchain",
		TxFeePct: 0.0, TxFeeFixed: 0.001, MinPayout: 0.50, SettlementHours: 0.01,
		OnboardingSteps: 4, RequiresCryptoWallet: true,
		UserDifficulty: "Medium", MfgAcceptance: "Low", RegulatoryRisk: "High",
		TPSCapacity: 100000, UptimePct: 99.9,
		AvailableRegions: []string{"USA", "EU", "Japan", "South Korea", "Southeast Asia"},
		BlockedRegions:   []string{"China (banned)", "India (restricted)"},
	},
	{
		Key: "stablecoin", Name: "Stablecoin (USDC/USDT)",
		NameAr: "عملة مستقرة (USDC/USDT)", Category: "Blockchain",
		TxFeePct: 0.0, TxFeeFixed: 0.005, MinPayout: 1.0, SettlementHours: 0.01,
		OnboardingSteps: 4, RequiresCryptoWallet: true,
		UserDifficulty: "Medium", MfgAcceptance: "Medium", RegulatoryRisk: "Medium",
		TPSCapacity: 100000, UptimePct: 99.9,
		AvailableRegions: []string{"USA", "EU", "Japan", "South Korea", "Southeast Asia", "Middle East"},
		BlockedRegions:   []string{"China (restricted)"},
	},
	{
		Key: "mfg_wallet", Name: "Manufacturer Wallet (Samsung Pay / Apple Pay Credits)",
		NameAr: "محفظة المصنّع (رصيد Samsung Pay / Apple Pay)", Category: "In-App",
		TxFeePct: 2.5, TxFeeFixed: 0.0, MinPayout: 0.10, SettlementHours: 0.0,
		OnboardingSteps: 0,
		UserDifficulty:  "Easy", MfgAcceptance: "High", RegulatoryRisk: "Low",
		TPSCapacity: 50000, UptimePct: 99.95,
		AvailableRegions: []string{"USA", "EU", "China", "India", "Japan", "South Korea", "Southeast Asia", "Middle East", "Africa", "Brazil"},
	},
	{
		Key: "bank_transfer", Name: "Direct Bank Transfer (ACH/SEPA/UPI)",
		NameAr: "تحويل بنكي مباشر (ACH/SEPA/UPI)", Category: "Traditional",
		TxFeePct: 1.0, TxFeeFixed: 0.25, MinPayout: 5.0, SettlementHours: 48.0,
		OnboardingSteps: 3, RequiresBankAccount: true, RequiresKYC: true,
		UserDifficulty: "Easy", MfgAcceptance: "High", RegulatoryRisk: "Low",
		TPSCapacity: 10000, UptimePct: 99.5,
		AvailableRegions: []string{"USA", "EU", "India", "Japan", "South Korea", "Brazil"},
		BlockedRegions:   []string{"Africa (limited banking)", "Southeast Asia (partial)"},
	},
	{
		Key: "mobile_money", Name: "Mobile Money (M-Pesa / GCash / Paytm)",
		NameAr: "أموال الهاتف المحمول (M-Pesa / GCash / Paytm)", Category: "Traditional",
		TxFeePct: 1.5, TxFeeFixed: 0.05, MinPayout: 0.50, SettlementHours: 0.1,
		OnboardingSteps: 1,
		UserDifficulty:  "Easy", MfgAcceptance: "High", RegulatoryRisk: "Low",
		TPSCapacity: 20000, UptimePct: 99.0,
		AvailableRegions: []string{"Africa", "India", "Southeast Asia", "Middle East", "Brazil"},
		BlockedRegions:   []string{"USA (not common)", "EU (not common)", "Japan (not common)"},
	},
	{
		Key: "telco_billing", Name: "Carrier Billing (Airtel/Jio/T-Mobile Credit)",
		NameAr: "فاتورة شركة الاتصالات (رصيد Airtel/Jio/T-Mobile)", Category: "Traditional",
		TxFeePct: 3.0, TxFeeFixed: 0.0, MinPayout: 0.10, SettlementHours: 0.0,
		OnboardingSteps: 0,
		UserDifficulty:  "Easy", MfgAcceptance: "Medium", RegulatoryRisk: "Low",
		TPSCapacity: 30000, UptimePct: 99.5,
		AvailableRegions: []string{"India", "Africa", "Southeast Asia", "EU", "USA", "Middle East", "Brazil"},
	},
	{
		Key: "hybrid", Name: "Hybrid — User Chooses (Recommended)",
		NameAr: "هجين — المستخدم يختار (الموصى به)", Category: "Hybrid",
		TxFeePct: 1.5, TxFeeFixed: 0.10, MinPayout: 1.0, SettlementHours: 1.0,
		OnboardingSteps: 1,
		UserDifficulty:  "Easy", MfgAcceptance: "High", RegulatoryRisk: "Low",
		TPSCapacity: 100000, UptimePct: 99.9,
		AvailableRegions: []string{"USA", "EU", "China", "India", "Japan", "South Korea", "Southeast Asia", "Middle East", "Africa", "Brazil"},
	},
}
