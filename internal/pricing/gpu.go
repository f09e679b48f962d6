package pricing

import "github.com/rshade/nhp-simulation/internal/refdata"

// GPUHoursPerDay converts a daily AI request volume into GPU-hours, assuming
// each request costs refdata.GPURequestTimeSec of GPU time.
func GPUHoursPerDay(dailyRequests int64) float64 {
	gpuSeconds := float64(dailyRequests) * refdata.GPURequestTimeSec
	return gpuSeconds / refdata.SecondsPerHour
}

// PerGPUHourRate normalizes an instance-hour price to one GPU-hour.
// Callers guarantee GPUsPerInstance >= 1; NewClient enforces it.
func PerGPUHourRate(p refdata.CloudProvider) float64 {
	return p.HourlyCost / float64(p.GPUsPerInstance)
}

// DailyCloudCost returns the cloud spend for serving a daily request volume
// on the given provider.
func DailyCloudCost(dailyRequests int64, p refdata.CloudProvider) float64 {
	return GPUHoursPerDay(dailyRequests) * PerGPUHourRate(p)
}
