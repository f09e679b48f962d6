package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/nhp-simulation/internal/config"
	"github.com/rshade/nhp-simulation/internal/export"
	"github.com/rshade/nhp-simulation/internal/scenario"
)

func newExportCmd(a *app) *cobra.Command {
	var categories []string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run scenario categories and write CSV and JSON only",
		Long: `Run every scenario category, or only those named with --category, and
write the records as CSV and JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.cfg.Formats = []string{config.FormatCSV, config.FormatJSON}

			r, err := a.runner()
			if err != nil {
				return err
			}

			var res *scenario.Results
			if len(categories) > 0 {
				res, err = r.RunCategories(cmd.Context(), categories)
			} else {
				res, err = r.RunAll(cmd.Context())
			}
			if err != nil {
				return err
			}

			paths, err := a.writeOutputs(res, export.AllScenariosCSV, export.AllScenariosJSON, "", false)
			if err != nil {
				return err
			}
			return a.printPaths(paths)
		},
	}
	cmd.Flags().StringSliceVar(&categories, "category", nil,
		"Category keys to run, comma separated (one of "+strings.Join(scenario.CategoryKeys(), ",")+")")
	return cmd
}

func newPhaseCmd(a *app) *cobra.Command {
	var noCharts bool

	cmd := &cobra.Command{
		Use:       "phase " + strings.Join(scenario.Phases(), "|"),
		Short:     "Run one standalone analysis phase",
		Long:      "Run a standalone analysis phase and write its CSV, JSON, charts and markdown report.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: scenario.Phases(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			r, err := a.runner()
			if err != nil {
				return err
			}
			res, err := r.RunPhase(cmd.Context(), name)
			if err != nil {
				return err
			}

			base := "phase_" + name
			paths, err := a.writeOutputs(res, base+".csv", base+".json", base+".md", !noCharts)
			if err != nil {
				return err
			}
			a.logger.Info().Str("phase", name).Int("records", res.Total()).Msg("phase outputs written")
			return a.printPaths(paths)
		},
	}
	cmd.Flags().BoolVar(&noCharts, "no-charts", false, "Skip chart rendering")
	return cmd
}

func (a *app) printPaths(paths []string) error {
	for _, p := range paths {
		if _, err := fmt.Fprintln(a.out, p); err != nil {
			return fmt.Errorf("writing output list: %w", err)
		}
	}
	return nil
}
