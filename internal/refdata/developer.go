package refdata

// DeveloperTask is an AI workload developers buy from NHP, priced per unit
// against the average of the comparable cloud APIs.
type DeveloperTask struct {
	Key           string
	Task          string
	Unit          string
	NHPPrice      float64 // USD per unit
	CloudAvgPrice float64 // USD per unit
	SavingsPct    float64 // quoted discount vs cloud, percent
	QualityPct    float64 // output quality vs cloud, percent
	LatencyFactor float64 // 2.0 means twice the cloud latency
}

// TaskVolume is a monthly volume of one developer task.
type TaskVolume struct {
	TaskKey string
	Units   float64
}

// DeveloperUseCase is a representative NHP customer and its monthly load.
type DeveloperUseCase struct {
	Name             string
	NameAr           string
	DeveloperType    string
	Volumes          []TaskVolume
	LatencyTolerance string // Low, Medium, High
	Fit              string // Excellent, Good, Fair, Poor
	FitReason        string
	FitReasonAr      string
}

// TokenModel is a token supply policy for the lifecycle projection.
type TokenModel struct {
	Name              string
	NameAr            string
	InitialSupply     float64
	AnnualMintRate    float64
	BurnRate          float64 // fraction of consumed tokens burned
	PlatformCut       float64
	UserPayout        float64
	StakingYield      float64
	DevDiscountStaked float64
}

// DeveloperSegment is a developer population and its average monthly spend.
type DeveloperSegment struct {
	Type            string
	Count           int64
	AvgMonthlySpend float64 // USD
}

// Developer phase inputs.
const (
	// DeveloperMonthlyDemand is the platform-wide developer spend assumed by
	// the token lifecycle projection, in USD per month.
	DeveloperMonthlyDemand = 50_000_000.0

	// TokenVelocity is the fraction of supply that turns over per year when
	// pricing tokens from annual demand.
	TokenVelocity = 0.1

	// DefaultSegmentSpend is the monthly spend assumed for a segment with no
	// quoted figure.
	DefaultSegmentSpend = 100.0
)

// FitScores maps a use case fit rating onto a 0-100 score.
var FitScores = map[string]float64{
	"Excellent": 95,
	"Good":      70,
	"Fair":      45,
	"Poor":      15,
}

var developerTasks = []DeveloperTask{
	{Key: "text_gen", Task: "Text Generation (LLM)", Unit: "1K tokens", NHPPrice: 0.0008, CloudAvgPrice: 0.003, SavingsPct: 73, QualityPct: 85, LatencyFactor: 1.5},
	{Key: "image_gen", Task: "Image Generation", Unit: "1 image", NHPPrice: 0.005, CloudAvgPrice: 0.03, SavingsPct: 83, QualityPct: 90, LatencyFactor: 2.0},
	{Key: "speech", Task: "Speech-to-Text", Unit: "1 minute", NHPPrice: 0.002, CloudAvgPrice: 0.015, SavingsPct: 87, QualityPct: 80, LatencyFactor: 1.3},
	{Key: "fine_tuning", Task: "Model Fine-Tuning", Unit: "1 GPU-hour", NHPPrice: 0.50, CloudAvgPrice: 3.95, SavingsPct: 87, QualityPct: 75, LatencyFactor: 3.0},
	{Key: "image_analysis", Task: "Image Analysis / CV", Unit: "1 image", NHPPrice: 0.0002, CloudAvgPrice: 0.001, SavingsPct: 80, QualityPct: 90, LatencyFactor: 1.2},
	{Key: "data_processing", Task: "Batch Data Processing", Unit: "1 GB", NHPPrice: 0.01, CloudAvgPrice: 0.05, SavingsPct: 80, QualityPct: 95, LatencyFactor: 2.5},
	{Key: "embedding", Task: "Text Embeddings", Unit: "1K tokens", NHPPrice: 0.00005, CloudAvgPrice: 0.0001, SavingsPct: 50, QualityPct: 95, LatencyFactor: 1.1},
	{Key: "training", Task: "Distributed Training", Unit: "1 GPU-hour", NHPPrice: 0.80, CloudAvgPrice: 5.00, SavingsPct: 84, QualityPct: 70, LatencyFactor: 4.0},
}

var developerUseCases = []DeveloperUseCase{
	{
		Name: "AI Chatbot Startup", NameAr: "شركة ناشئة لروبوت محادثة",
		DeveloperType: "Startup", Volumes: []TaskVolume{{"text_gen", 15_000_000}},
		LatencyTolerance: "Low", Fit: "Fair",
		FitReason:   "Latency-sensitive. NHP adds ~50% latency. OK for async but not real-time chat.",
		FitReasonAr: "حساس للتأخير. NHP يضيف ~50% تأخير. مناسب للمعالجة غير المتزامنة لكن ليس المحادثة الفورية.",
	},
	{
		Name: "Image Generation Platform", NameAr: "منصة توليد صور",
		DeveloperType: "SaaS", Volumes: []TaskVolume{{"image_gen", 3_000_000}},
		LatencyTolerance: "High", Fit: "Excellent",
		FitReason:   "Image generation is NOT latency-sensitive. Users expect 10-30s wait. Perfect for NHP distributed compute.",
		FitReasonAr: "توليد الصور غير حساس للتأخير. المستخدمون يتوقعون انتظار 10-30 ثانية. مثالي لحوسبة NHP الموزعة.",
	},
	{
		Name: "Podcast Transcription Service", NameAr: "خدمة تفريغ البودكاست",
		DeveloperType: "SaaS", Volumes: []TaskVolume{{"speech", 600_000}},
		LatencyTolerance: "High", Fit: "Excellent",
		FitReason:   "Batch processing, not real-time. Users upload and wait. NHP is perfect for this workload.",
		FitReasonAr: "معالجة دفعية وليست فورية. المستخدمون يرفعون ملفات وينتظرون. NHP مثالي لهذا العمل.",
	},
	{
		Name: "AI Research Lab", NameAr: "مختبر أبحاث ذكاء اصطناعي",
		DeveloperType: "Research", Volumes: []TaskVolume{{"fine_tuning", 500}, {"training", 200}},
		LatencyTolerance: "High", Fit: "Excellent",
		FitReason:   "Research is latency-tolerant. Budget is critical. NHP saves 84-87% vs cloud. Game-changer for academia.",
		FitReasonAr: "البحث يتحمل التأخير. الميزانية حرجة. NHP يوفر 84-87% مقارنة بالسحابة. ثورة للجامعات.",
	},
	{
		Name: "E-Commerce Image Analysis", NameAr: "تحليل صور التجارة الإلكترونية",
		DeveloperType: "Enterprise", Volumes: []TaskVolume{{"image_analysis", 5_000_000}},
		LatencyTolerance: "Medium", Fit: "Good",
		FitReason:   "Batch processing with reasonable latency. High volume makes NHP savings significant ($4K/month saved).",
		FitReasonAr: "معالجة دفعية بتأخير معقول. الحجم الكبير يجعل توفير NHP مهماً ($4K/شهر يوفر).",
	},
	{
		Name: "Data Analytics Company", NameAr: "شركة تحليل بيانات",
		DeveloperType: "Enterprise", Volumes: []TaskVolume{{"data_processing", 500_000}},
		LatencyTolerance: "High", Fit: "Excellent",
		FitReason:   "Massive batch workload. NHP distributes across millions of devices. 80% cheaper than cloud.",
		FitReasonAr: "عمل دفعي ضخم. NHP يوزع عبر ملايين الأجهزة. أرخص 80% من السحابة.",
	},
	{
		Name: "Indie Game Developer", NameAr: "مطور ألعاب مستقل",
		DeveloperType: "Indie", Volumes: []TaskVolume{{"training", 50}, {"text_gen", 500_000}},
		LatencyTolerance: "High", Fit: "Excellent",
		FitReason:   "Small scale, budget-critical. Cloud costs $250/month. NHP costs $40/month. Makes AI accessible to indie devs.",
		FitReasonAr: "حجم صغير، الميزانية حرجة. السحابة $250/شهر. NHP بـ $40/شهر. يجعل AI متاحاً للمطورين المستقلين.",
	},
	{
		Name: "Healthcare AI (Regulated)", NameAr: "ذكاء اصطناعي صحي (منظم)",
		DeveloperType: "Healthcare", Volumes: []TaskVolume{{"image_analysis", 100_000}},
		LatencyTolerance: "Low", Fit: "Poor",
		FitReason:   "Regulatory requirements prevent distributed processing of medical data. NHP TEE may not meet HIPAA. Cloud with BAA required.",
		FitReasonAr: "المتطلبات التنظيمية تمنع المعالجة الموزعة للبيانات الطبية. TEE قد لا يلبي HIPAA. السحابة مع BAA مطلوبة.",
	},
}

var tokenModels = []TokenModel{
	{Name: "Inflationary", NameAr: "تضخمي", InitialSupply: 1_000_000_000, AnnualMintRate: 0.05, BurnRate: 0.0, PlatformCut: 0.15, UserPayout: 0.85, StakingYield: 0.08, DevDiscountStaked: 0.10},
	{Name: "Deflationary (Burn)", NameAr: "انكماشي (حرق)", InitialSupply: 1_000_000_000, AnnualMintRate: 0.02, BurnRate: 0.30, PlatformCut: 0.15, UserPayout: 0.85, StakingYield: 0.12, DevDiscountStaked: 0.15},
	{Name: "Fixed Supply", NameAr: "عرض ثابت", InitialSupply: 10_000_000_000, AnnualMintRate: 0.0, BurnRate: 0.0, PlatformCut: 0.15, UserPayout: 0.85, StakingYield: 0.05, DevDiscountStaked: 0.05},
	{Name: "Dual Token", NameAr: "توكن مزدوج", InitialSupply: 1_000_000_000, AnnualMintRate: 0.03, BurnRate: 0.10, PlatformCut: 0.10, UserPayout: 0.90, StakingYield: 0.10, DevDiscountStaked: 0.20},
}

var developerSegments = []DeveloperSegment{
	{Type: "Startup", Count: 5000, AvgMonthlySpend: 500},
	{Type: "SaaS", Count: 2000, AvgMonthlySpend: 2000},
	{Type: "Enterprise", Count: 500, AvgMonthlySpend: 10000},
	{Type: "Research", Count: 1000, AvgMonthlySpend: 300},
	{Type: "Indie", Count: 20000, AvgMonthlySpend: 50},
	{Type: "Healthcare", Count: 200, AvgMonthlySpend: 5000},
}
