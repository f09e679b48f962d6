// Package benchmark measures the simulation formulas and the full scenario
// run, and checks that a complete run stays within its latency budget.
//
// Run with: go test ./test/benchmark/... -bench=. -benchmem
package benchmark

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/nhp-simulation/internal/carbon"
	"github.com/rshade/nhp-simulation/internal/engine"
	"github.com/rshade/nhp-simulation/internal/export"
	"github.com/rshade/nhp-simulation/internal/refdata"
	"github.com/rshade/nhp-simulation/internal/report"
	"github.com/rshade/nhp-simulation/internal/scenario"
)

const (
	// maxRunLatencyMs is the budget for one full run of every category.
	maxRunLatencyMs = 500
)

func newRunner(tb testing.TB) *scenario.Runner {
	tb.Helper()
	r, err := scenario.NewDefaultRunner(zerolog.Nop())
	if err != nil {
		tb.Fatalf("building runner: %v", err)
	}
	return r
}

func manufacturer(tb testing.TB, key string) refdata.Manufacturer {
	tb.Helper()
	m, ok := refdata.Default().Manufacturer(key)
	if !ok {
		tb.Fatalf("manufacturer %q not found", key)
	}
	return m
}

// BenchmarkFleetPower measures the fleet compute formula.
func BenchmarkFleetPower(b *testing.B) {
	m := manufacturer(b, "samsung")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.FleetPower(m, 0.25)
	}
}

// BenchmarkCostComparison measures the NHP vs cloud savings formula.
func BenchmarkCostComparison(b *testing.B) {
	m := manufacturer(b, "apple")
	cloud, ok := refdata.Default().CloudProvider(refdata.ReferenceCloudKey)
	if !ok {
		b.Fatal("reference cloud not found")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.CostComparison(m, cloud, 0.40)
	}
}

// BenchmarkCombinedNetwork measures alliance aggregation over every
// manufacturer.
func BenchmarkCombinedNetwork(b *testing.B) {
	mfgs := refdata.Default().Manufacturers

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.CombinedNetwork(mfgs, 0.25)
	}
}

// BenchmarkNetworkGrowth measures the compound growth projection.
func BenchmarkNetworkGrowth(b *testing.B) {
	for i := 0; i < b.N; i++ {
		engine.NetworkGrowth(refdata.BaseDevices, 1.5, refdata.SimulationYears, refdata.TargetDevices)
	}
}

// BenchmarkCarbonEstimator measures the fleet energy and CO2 estimate.
func BenchmarkCarbonEstimator(b *testing.B) {
	e := carbon.NewEstimator()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.AnnualCO2Tons(75_000_000)
	}
}

// BenchmarkRunAll measures one full run of every category.
func BenchmarkRunAll(b *testing.B) {
	r := newRunner(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.RunAll(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRunPhase_Settlement measures the settlement phase.
func BenchmarkRunPhase_Settlement(b *testing.B) {
	r := newRunner(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.RunPhase(ctx, scenario.PhaseSettlement); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWriteCSV measures flattening and writing every record as CSV.
func BenchmarkWriteCSV(b *testing.B) {
	res, err := newRunner(b).RunAll(context.Background())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := export.WriteCSV(io.Discard, res.Rows()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkReportRender measures building and rendering the markdown report.
func BenchmarkReportRender(b *testing.B) {
	res, err := newRunner(b).RunAll(context.Background())
	if err != nil {
		b.Fatal(err)
	}
	now := time.Now()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := report.Build(res, now, nil).Render(io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}

// TestLatencyRequirement_RunAll verifies a full run stays within budget.
func TestLatencyRequirement_RunAll(t *testing.T) {
	r := newRunner(t)

	start := time.Now()
	res, err := r.RunAll(context.Background())
	elapsed := time.Since(start)
	if err != nil {
		t.Fatal(err)
	}

	if elapsed.Milliseconds() > maxRunLatencyMs {
		t.Errorf("full run took %v, exceeds %dms limit", elapsed, maxRunLatencyMs)
	} else {
		t.Logf("full run of %d scenarios completed in %v", res.Total(), elapsed)
	}
}

// TestLatencyRequirement_Phases verifies each standalone phase stays within
// budget.
func TestLatencyRequirement_Phases(t *testing.T) {
	r := newRunner(t)

	for _, phase := range scenario.Phases() {
		t.Run(phase, func(t *testing.T) {
			start := time.Now()
			if _, err := r.RunPhase(context.Background(), phase); err != nil {
				t.Fatal(err)
			}
			elapsed := time.Since(start)

			if elapsed.Milliseconds() > maxRunLatencyMs {
				t.Errorf("%s phase took %v, exceeds %dms limit", phase, elapsed, maxRunLatencyMs)
			}
		})
	}
}

// TestConcurrentRuns verifies one runner serves concurrent runs with
// identical totals.
func TestConcurrentRuns(t *testing.T) {
	const goroutines = 16
	r := newRunner(t)

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := r.RunAll(context.Background())
			if err != nil {
				errs <- err
				return
			}
			if res.Total() != 524 {
				errs <- fmt.Errorf("got %d scenarios, want 524", res.Total())
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
