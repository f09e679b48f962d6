package carbon

// FleetImpactEstimator estimates the CO2 cost of running NHP on phones.
type FleetImpactEstimator interface {
	// AnnualCO2Tons returns the metric tons of CO2 added per year by the
	// given number of active devices.
	AnnualCO2Tons(activeDevices int64) float64
}

// Estimator implements FleetImpactEstimator with a fixed per-phone power
// profile and a single grid intensity.
type Estimator struct {
	// ExtraWatts is the additional power draw per phone while computing.
	ExtraWatts float64

	// NightlyHours is the compute window per night.
	NightlyHours float64

	// GridKgPerKWh is the grid carbon intensity in kg CO2 per kWh.
	GridKgPerKWh float64
}

// NewEstimator creates an Estimator with the default phone and grid profile.
func NewEstimator() *Estimator {
	return &Estimator{
		ExtraWatts:   PhoneExtraWatts,
		NightlyHours: PhoneNightlyHours,
		GridKgPerKWh: GridIntensityKgPerKWh,
	}
}

// DailyKWhPerDevice returns the energy one phone uses per night in kWh.
func (e *Estimator) DailyKWhPerDevice() float64 {
	return e.ExtraWatts * e.NightlyHours / WhPerKWh
}

// AnnualKWh returns the energy used by the active fleet over a year.
//
// The calculation:
//  1. Daily fleet energy (kWh) = devices × watts × hours / 1000
//  2. Annual energy (kWh) = daily × 365
func (e *Estimator) AnnualKWh(activeDevices int64) float64 {
	daily := float64(activeDevices) * (e.ExtraWatts * e.NightlyHours) / WhPerKWh
	return daily * DaysPerYear
}

// AnnualCO2Tons returns the CO2 added by the active fleet per year in
// metric tons: annual kWh × grid intensity / 1000.
func (e *Estimator) AnnualCO2Tons(activeDevices int64) float64 {
	return e.AnnualKWh(activeDevices) * e.GridKgPerKWh / KgPerTon
}

// DatacenterCO2Tons returns the CO2 avoided per year by replacing the given
// number of datacenters. Fractional datacenters are allowed.
func DatacenterCO2Tons(dcReplaced float64) float64 {
	return DatacenterTonsPerYear * dcReplaced
}

// CarsEquivalent converts tons of CO2 into the number of cars with the same
// annual output. The result truncates toward zero, so a net increase in
// emissions yields a negative count.
func CarsEquivalent(tons float64) int64 {
	return int64(tons / CarTonsPerYear)
}
