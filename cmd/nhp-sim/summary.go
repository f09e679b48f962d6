package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/rshade/nhp-simulation/internal/refdata"
	"github.com/rshade/nhp-simulation/internal/report"
	"github.com/rshade/nhp-simulation/internal/scenario"
)

// summaryStyles are bound to the output writer so piped output carries no
// escape codes.
type summaryStyles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	muted lipgloss.Style
}

func newSummaryStyles(w io.Writer) summaryStyles {
	r := lipgloss.NewRenderer(w)
	return summaryStyles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#3498DB")),
		label: r.NewStyle().Width(26),
		value: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2ECC71")),
		muted: r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

func newSummaryCmd(a *app) *cobra.Command {
	var (
		asJSON  bool
		variant string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Run the simulation and print the headline figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, ok := refdata.ParseVariant(variant)
			if !ok {
				return fmt.Errorf("unknown variant %q (want one of %s)", variant, strings.Join(variantNames(), ", "))
			}

			r, err := a.runner()
			if err != nil {
				return err
			}
			res, err := r.RunAll(cmd.Context())
			if err != nil {
				return err
			}

			s := scenario.SummarizeVariant(res, v)
			if asJSON {
				return writeSummaryJSON(a.out, s)
			}
			return writeSummary(a.out, s)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON instead of human-readable text")
	cmd.Flags().StringVar(&variant, "variant", refdata.Moderate.String(),
		"Variant the highlights are drawn from ("+strings.Join(variantNames(), ", ")+")")
	return cmd
}

func variantNames() []string {
	all := refdata.AllVariants()
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = v.String()
	}
	return names
}

func writeSummaryJSON(w io.Writer, s scenario.Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

func writeSummary(w io.Writer, s scenario.Summary) error {
	st := newSummaryStyles(w)
	var b strings.Builder

	b.WriteString(st.title.Render(report.DefaultTitle+" / "+report.DefaultTitleAr) + "\n")
	b.WriteString(st.muted.Render("run "+s.RunID) + "\n\n")

	b.WriteString(st.label.Render("Total scenarios") + st.value.Render(report.Int(int64(s.TotalScenarios))) + "\n")
	for _, c := range s.Categories {
		b.WriteString(st.label.Render("  "+c.Key+" "+c.Title) + report.Int(int64(c.Count)) + "\n")
	}
	b.WriteString("\n" + st.title.Render(s.Variant+" highlights") + "\n")

	highlights := []struct {
		name string
		h    *scenario.Highlight
		fmt  func(float64) string
	}{
		{"Most powerful fleet", s.TopFleet, report.Num},
		{"Strongest alliance", s.TopAlliance, report.Num},
		{"Largest savings", s.TopSaver, report.Money},
		{"Max platform revenue", s.MaxPlatformRevenue, report.Money},
	}
	for _, hl := range highlights {
		if hl.h == nil {
			continue
		}
		line := hl.h.Label + ": " + st.value.Render(hl.fmt(hl.h.Value)) + " " + hl.h.Unit
		if hl.h.Scale != "" {
			line += " " + st.muted.Render("("+hl.h.Scale+")")
		}
		b.WriteString(st.label.Render(hl.name) + line + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
