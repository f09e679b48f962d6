package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/nhp-simulation/internal/config"
	"github.com/rshade/nhp-simulation/internal/scenario"
)

// clearEnv isolates a test from NHP_* variables set in the caller's shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvOutputDir, config.EnvLogLevel, config.EnvLogFormat, config.EnvCharts} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRun_WritesOutputs(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	out, _, err := execute(t, "run", "--output", dir, "--no-charts", "--log-level", "error")
	require.NoError(t, err)

	for _, name := range []string{"mega_scenarios_all.csv", "mega_scenarios_all.json", "mega_report.md"} {
		path := filepath.Join(dir, name)
		assert.FileExists(t, path)
		assert.Contains(t, out, path)
	}
	assert.NoDirExists(t, filepath.Join(dir, "charts"))

	md, err := os.ReadFile(filepath.Join(dir, "mega_report.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "524")
}

func TestRun_Charts(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, _, err := execute(t, "run", "--output", dir, "--log-level", "error")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "charts", "A_computing_power.png"))
	md, err := os.ReadFile(filepath.Join(dir, "mega_report.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "A_computing_power.png")
}

func TestRun_ConfigFormats(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "nhp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("formats: [csv]\nlog_level: error\n"), 0o600))

	_, _, err := execute(t, "run", "--config", cfgPath, "--output", dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "mega_scenarios_all.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "mega_scenarios_all.json"))
	assert.NoFileExists(t, filepath.Join(dir, "mega_report.md"))
}

func TestRun_EnvOutputDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv(config.EnvOutputDir, dir)
	t.Setenv(config.EnvCharts, "false")
	t.Setenv(config.EnvLogLevel, "error")

	_, _, err := execute(t, "run")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "mega_scenarios_all.csv"))
}

func TestExport(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	out, _, err := execute(t, "export", "--output", dir, "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		filepath.Join(dir, "mega_scenarios_all.csv"),
		filepath.Join(dir, "mega_scenarios_all.json"),
	}, lines)
	assert.NoFileExists(t, filepath.Join(dir, "mega_report.md"))
}

func TestPhase(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		phase string
		rows  int
	}{
		{scenario.PhaseSettlement, 328},
		{scenario.PhaseRegional, 6},
		{scenario.PhaseDeveloper, 42},
		{scenario.PhaseCritique, 38},
		{scenario.PhaseVisionary, 72},
	}

	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			dir := t.TempDir()
			_, _, err := execute(t, "phase", tt.phase, "--output", dir, "--no-charts", "--log-level", "error")
			require.NoError(t, err)

			data, err := os.ReadFile(filepath.Join(dir, "phase_"+tt.phase+".csv"))
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(string(data)), "\n")
			assert.Len(t, lines, tt.rows+1, "header plus one line per record")
			assert.FileExists(t, filepath.Join(dir, "phase_"+tt.phase+".md"))
			assert.NoDirExists(t, filepath.Join(dir, "charts"))
		})
	}
}

func TestPhase_Charts(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	out, _, err := execute(t, "phase", scenario.PhaseRegional, "--output", dir, "--log-level", "error")
	require.NoError(t, err)

	chartPath := filepath.Join(dir, "charts", "reg_01_opportunity.png")
	assert.FileExists(t, chartPath)
	assert.Contains(t, out, chartPath)

	md, err := os.ReadFile(filepath.Join(dir, "phase_regional.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(md), "# NHP Regional Market Deep Dives — "))
	assert.Contains(t, string(md), "reg_04_strategy_matrix.png")
	assert.Contains(t, string(md), "**Total platform revenue / إيرادات المنصة:**")
}

func TestExport_Category(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, _, err := execute(t, "export", "--category", "K,A", "--output", dir, "--log-level", "error")
	require.NoError(t, err)

	var doc struct {
		Categories map[string][]map[string]any `json:"categories"`
	}
	data, err := os.ReadFile(filepath.Join(dir, "mega_scenarios_all.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Categories, 2)
	assert.Len(t, doc.Categories["A"], 28)
	assert.Len(t, doc.Categories["K"], 16)
}

func TestExport_UnknownCategory(t *testing.T) {
	clearEnv(t)

	_, _, err := execute(t, "export", "--category", "Z", "--output", t.TempDir(), "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "Z"`)
}

func TestPhase_InvalidArgs(t *testing.T) {
	clearEnv(t)

	_, _, err := execute(t, "phase", "bogus", "--output", t.TempDir())
	require.Error(t, err)

	_, _, err = execute(t, "phase", "--output", t.TempDir())
	require.Error(t, err)
}

func TestSummary(t *testing.T) {
	clearEnv(t)

	out, _, err := execute(t, "summary", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Total scenarios")
	assert.Contains(t, out, "524")
	assert.Contains(t, out, "Apple")
	assert.Contains(t, out, "1,000,000,000 devices")
}

func TestSummary_JSON(t *testing.T) {
	clearEnv(t)

	out, _, err := execute(t, "summary", "--json", "--log-level", "error")
	require.NoError(t, err)

	var s scenario.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 524, s.TotalScenarios)
	require.NotNil(t, s.TopFleet)
	assert.Equal(t, "Apple", s.TopFleet.Label)
	assert.NotEmpty(t, s.RunID)
}

func TestSummary_Variant(t *testing.T) {
	clearEnv(t)

	out, _, err := execute(t, "summary", "--json", "--variant", "Optimistic", "--log-level", "error")
	require.NoError(t, err)

	var s scenario.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "Optimistic", s.Variant)
	require.NotNil(t, s.TopFleet)
	assert.InDelta(t, 6_300_000, s.TopFleet.Value, 1e-6)

	out, _, err = execute(t, "summary", "--variant", "Pessimistic", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Pessimistic highlights")

	_, _, err = execute(t, "summary", "--variant", "moderate", "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Optimistic, Moderate, Pessimistic, Catastrophic")
}

func TestSetup_InvalidConfig(t *testing.T) {
	clearEnv(t)
	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("formats: [pdf]\n"), 0o600))

	_, _, err := execute(t, "run", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestSetup_InvalidLogFormatFlag(t *testing.T) {
	clearEnv(t)

	_, _, err := execute(t, "export", "--log-format", "xml", "--output", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_format")
}

func TestRunner_PriceSheet(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	sheet := filepath.Join(dir, "prices.json")
	require.NoError(t, os.WriteFile(sheet, []byte(`{
  "currency": "USD",
  "providers": [
    {"key": "aws_a100", "name": "AWS p4d.24xlarge", "short": "AWS-A100", "gpu_model": "A100",
     "gpus_per_instance": 8, "tops_per_gpu": 624, "hourly_cost": 30.00}
  ]
}`), 0o600))
	cfgPath := filepath.Join(dir, "nhp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("pricing_file: "+sheet+"\nlog_level: error\n"), 0o600))

	_, _, err := execute(t, "export", "--config", cfgPath, "--output", dir)
	require.NoError(t, err)

	var doc struct {
		Categories map[string][]map[string]any `json:"categories"`
	}
	data, err := os.ReadFile(filepath.Join(dir, "mega_scenarios_all.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Categories["B"], 7*4, "one cloud per manufacturer and variant")
}

func TestRunner_PriceSheetWithoutReferenceCloud(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	sheet := filepath.Join(dir, "prices.json")
	require.NoError(t, os.WriteFile(sheet, []byte(`{
  "currency": "USD",
  "providers": [
    {"key": "spot_h100", "name": "Spot", "short": "SPT", "gpu_model": "H100",
     "gpus_per_instance": 1, "tops_per_gpu": 1979, "hourly_cost": 1.10}
  ]
}`), 0o600))
	cfgPath := filepath.Join(dir, "nhp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("pricing_file: "+sheet+"\nlog_level: error\n"), 0o600))

	_, _, err := execute(t, "export", "--config", cfgPath, "--output", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reference catalog")
	assert.Contains(t, err.Error(), `"aws_a100"`)
}

func TestRunner_MissingPriceSheet(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "nhp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("pricing_file: "+filepath.Join(dir, "none.json")+"\n"), 0o600))

	_, _, err := execute(t, "export", "--config", cfgPath, "--output", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading price sheet")
}

func TestPricing_RoundTrip(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	sheet := filepath.Join(dir, "sheets", "prices.json")

	_, _, err := execute(t, "pricing", "--out", sheet, "--log-level", "error")
	require.NoError(t, err)
	require.FileExists(t, sheet)

	cfgPath := filepath.Join(dir, "nhp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("pricing_file: "+sheet+"\nlog_level: error\n"), 0o600))

	out, _, err := execute(t, "summary", "--json", "--config", cfgPath)
	require.NoError(t, err)

	var s scenario.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 524, s.TotalScenarios, "exported sheet reproduces the built-in run")
}

func TestPricing_Stdout(t *testing.T) {
	clearEnv(t)

	out, _, err := execute(t, "pricing")
	require.NoError(t, err)
	assert.Contains(t, out, `"aws_a100"`)
}

func TestPricing_Table(t *testing.T) {
	clearEnv(t)

	out, _, err := execute(t, "pricing", "--table", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "USD/GPU-hr")
	assert.Contains(t, out, "AWS-A100")
	assert.Equal(t, 1, strings.Count(out, "cheapest"))
}
