package engine

import (
	"math"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

// TaskFeasibilityResult scores whether the fleet can serve a task class.
type TaskFeasibilityResult struct {
	TaskName              string  `json:"task_name"`
	TaskNameAr            string  `json:"task_name_ar"`
	DeviceCapable         bool    `json:"device_capable"`
	EffectiveTOPS         float64 `json:"effective_tops"`
	TasksPerSecond        float64 `json:"tasks_per_second"`
	TasksPerDay           float64 `json:"tasks_per_day"`
	FeasibilityScore      float64 `json:"feasibility_score"`
	AnnualRevenueEstimate float64 `json:"annual_revenue_estimate"`
	LatencySensitive      bool    `json:"latency_sensitive"`
	ParallelizablePct     float64 `json:"parallelizable_pct"`
	OverheadPct           float64 `json:"overhead_pct"`
}

const (
	// minRevenuePerTask floors the per-task price.
	minRevenuePerTask = 0.0001

	// revenuePerGPUSecond prices tasks by their GPU time.
	revenuePerGPUSecond = 0.01
)

// TaskFeasibility evaluates a task class against a fleet with fleetTOPS of
// raw capacity and avgTOPS per device, after coordination overhead.
//
// The score is the sum of 30 when devices meet the task's minimum TOPS,
// 30 × parallelizable fraction, 20 for latency-tolerant tasks (5 otherwise)
// and 20 × (1 − overhead), capped at 100.
//
// activeDevices is accepted for symmetry with FleetPower but does not enter
// the formula.
func TaskFeasibility(task refdata.TaskType, fleetTOPS float64, activeDevices int64, avgTOPS, overhead float64) TaskFeasibilityResult {
	effective := fleetTOPS * (1 - overhead) * task.Parallelizable
	capable := avgTOPS >= task.MinTOPSRequired

	var perSecond float64
	if task.GPUSecondsPerTask > 0 {
		perSecond = effective / (task.MinTOPSRequired * task.GPUSecondsPerTask)
	}
	perDay := perSecond * refdata.SecondsPerDay
	perMonth := perDay * refdata.DaysPerMonth

	revenuePerTask := math.Max(minRevenuePerTask, task.GPUSecondsPerTask*revenuePerGPUSecond)
	annualRevenue := perMonth * revenuePerTask * refdata.MonthsPerYear

	var score float64
	if capable {
		score += 30
	}
	score += 30 * task.Parallelizable
	if task.LatencySensitive {
		score += 5
	} else {
		score += 20
	}
	score += 20 * (1 - overhead)
	score = math.Min(100, score)

	return TaskFeasibilityResult{
		TaskName:              task.Name,
		TaskNameAr:            task.NameAr,
		DeviceCapable:         capable,
		EffectiveTOPS:         effective,
		TasksPerSecond:        perSecond,
		TasksPerDay:           perDay,
		FeasibilityScore:      score,
		AnnualRevenueEstimate: annualRevenue,
		LatencySensitive:      task.LatencySensitive,
		ParallelizablePct:     task.Parallelizable * 100,
		OverheadPct:           overhead * 100,
	}
}
