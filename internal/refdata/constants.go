// Package refdata holds the static reference data used by the NHP scenario
// model: manufacturer fleets, cloud GPU pricing, regional parameters, AI task
// types, competitors and the four severity variants.
//
// Everything in this package is defined once at startup and only read
// afterwards. Collections are ordered slices so that iteration order (and
// therefore scenario output order) is stable.
package refdata

const (
	// H100TOPS is the reference accelerator rating used to express fleet
	// compute as "H100 equivalents".
	H100TOPS = 2000.0

	// A100TOPS is the TOPS rating of an A100 80GB.
	A100TOPS = 624.0

	// DeviceExtraWatt is the average extra power draw of a phone while it
	// serves NHP work, in watts.
	DeviceExtraWatt = 3.5

	// NightlyHours is the number of hours a phone computes per night.
	NightlyHours = 7.0

	// GPURequestTimeSec is the GPU time consumed by one AI request, in seconds.
	GPURequestTimeSec = 0.1

	// CO2PerKWhKg is the grid carbon intensity in kg CO2 per kWh (global average).
	CO2PerKWhKg = 0.4

	// DCCO2TonsYear is the annual CO2 output of one large datacenter, in metric tons.
	DCCO2TonsYear = 200_000.0

	// CO2PerCarTons is the annual CO2 output of an average car, in metric tons.
	CO2PerCarTons = 4.6

	// SimulationYears is the projection horizon for multi-year scenarios.
	SimulationYears = 5

	// BatteryCyclePerNightPct is the share of a full battery cycle used per night, in percent.
	BatteryCyclePerNightPct = 0.5

	// BatteryTotalCycles is the rated cycle count of a typical Li-ion battery.
	BatteryTotalCycles = 800

	// NormalDailyCycles is the battery cycle fraction consumed by normal daily use.
	NormalDailyCycles = 0.3

	// PlatformCut is the NHP platform fee taken from token flow.
	PlatformCut = 0.15

	// ModerateTokenPrice is the token price assumed by market sizing.
	ModerateTokenPrice = 0.20

	// BaseDevices is the starting network size for growth projections.
	BaseDevices = 100_000

	// TargetDevices caps the network size in growth projections.
	TargetDevices = 1_000_000_000

	// DaysPerMonth and MonthsPerYear are the rollup factors used by monthly
	// and annual figures. Some formulas annualize with DaysPerYear instead;
	// the two conventions differ by about 1.4% and are intentionally not
	// reconciled.
	DaysPerMonth  = 30.0
	MonthsPerYear = 12.0
	DaysPerYear   = 365.0

	// SecondsPerHour and SecondsPerDay are unit conversion factors.
	SecondsPerHour = 3600.0
	SecondsPerDay  = 86400.0
)
