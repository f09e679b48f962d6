package main

import (
	"github.com/spf13/cobra"

	"github.com/rshade/nhp-simulation/internal/chart"
	"github.com/rshade/nhp-simulation/internal/config"
	"github.com/rshade/nhp-simulation/internal/export"
	"github.com/rshade/nhp-simulation/internal/report"
	"github.com/rshade/nhp-simulation/internal/scenario"
)

func newRunCmd(a *app) *cobra.Command {
	var noCharts bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every scenario category and write all outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noCharts {
				a.cfg.SetFormat(config.FormatCharts, false)
			}
			return a.run(cmd)
		},
	}
	cmd.Flags().BoolVar(&noCharts, "no-charts", false, "Skip chart rendering")
	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	r, err := a.runner()
	if err != nil {
		return err
	}

	res, err := r.RunAll(cmd.Context())
	if err != nil {
		return err
	}

	paths, err := a.writeOutputs(res, export.AllScenariosCSV, export.AllScenariosJSON, report.FileName, true)
	if err != nil {
		return err
	}

	s := scenario.Summarize(res)
	a.logger.Info().
		Str("run_id", s.RunID).
		Int("scenarios", s.TotalScenarios).
		Int("files", len(paths)).
		Msg("simulation complete")

	return a.printPaths(paths)
}

// writeOutputs writes res in every enabled format and returns the written
// paths in order: CSV, JSON, charts, then markdown. The report comes last so
// it can list the charts.
func (a *app) writeOutputs(res *scenario.Results, csvName, jsonName, mdName string, charts bool) ([]string, error) {
	var paths []string
	exporter := export.NewExporter(a.cfg.OutputDir, a.logger).WithClock(a.now)

	if a.cfg.Enabled(config.FormatCSV) {
		p, err := exporter.CSV(csvName, res)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}

	if a.cfg.Enabled(config.FormatJSON) {
		p, err := exporter.JSON(jsonName, res)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}

	var chartPaths []string
	if charts && a.cfg.Enabled(config.FormatCharts) {
		var err error
		chartPaths, err = chart.NewRenderer(a.cfg.ChartsDir, a.logger).RenderAll(res)
		if err != nil {
			return paths, err
		}
		paths = append(paths, chartPaths...)
	}

	if a.cfg.Enabled(config.FormatMarkdown) {
		p, err := report.Build(res, a.now(), chartPaths).Save(a.cfg.OutputDir, mdName)
		if err != nil {
			return paths, err
		}
		a.logger.Info().Str("path", p).Msg("report written")
		paths = append(paths, p)
	}

	return paths, nil
}
