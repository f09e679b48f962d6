package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rshade/nhp-simulation/internal/pricing"
	"github.com/rshade/nhp-simulation/internal/refdata"
	"github.com/rshade/nhp-simulation/internal/report"
)

func newPricingCmd(a *app) *cobra.Command {
	var (
		outFile string
		asTable bool
	)

	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Write the built-in cloud price sheet",
		Long: `Write the built-in cloud GPU prices as a JSON price sheet. Edit the file
and point pricing_file in the config at it to run with custom prices.

With --table, print the prices in effect (the configured sheet, if any) as a
table with the cheapest GPU-hour marked.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if asTable {
				return a.writePriceTable()
			}

			data, err := pricing.MarshalPriceSheet(refdata.Default().CloudProviders)
			if err != nil {
				return err
			}

			if outFile == "" {
				if _, err := a.out.Write(data); err != nil {
					return fmt.Errorf("writing price sheet: %w", err)
				}
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(outFile), 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			if err := os.WriteFile(outFile, data, 0o644); err != nil {
				return fmt.Errorf("writing price sheet: %w", err)
			}
			a.logger.Info().Str("path", outFile).Msg("price sheet written")
			return nil
		},
	}
	cmd.Flags().StringVar(&outFile, "out", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&asTable, "table", false, "Print the prices in effect as a table")
	return cmd
}

// writePriceTable prints every priced provider with its instance and
// GPU-hour rates.
func (a *app) writePriceTable() error {
	catalog, err := a.catalog()
	if err != nil {
		return err
	}
	client, err := pricing.NewClient(a.logger, catalog.CloudProviders)
	if err != nil {
		return fmt.Errorf("building pricing index: %w", err)
	}
	return writePriceTable(a.out, client)
}

func writePriceTable(w io.Writer, client pricing.PricingClient) error {
	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#3498DB")).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	best := cell.Foreground(lipgloss.Color("#2ECC71")).Bold(true)

	cheapest, _ := client.Cheapest()
	currency := client.Currency()

	rows := make([][]string, 0)
	bestRow := -1
	for _, p := range client.Providers() {
		hourly, _ := client.HourlyRate(p.Key)
		perGPU, _ := client.PerGPUHour(p.Key)
		mark := ""
		if p.Key == cheapest.Key {
			mark = "cheapest"
			bestRow = len(rows)
		}
		rows = append(rows, []string{
			p.Short, p.GPUModel, strconv.Itoa(p.GPUsPerInstance),
			report.Fixed(hourly, 2), report.Fixed(perGPU, 4), mark,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("#6B7280"))).
		Headers("Provider", "GPU", "GPUs", currency+"/hr", currency+"/GPU-hr", "").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row == bestRow:
				return best
			default:
				return cell
			}
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("writing price table: %w", err)
	}
	return nil
}
