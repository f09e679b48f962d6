// Package report renders scenario results as a bilingual (English/Arabic)
// markdown document.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/rshade/nhp-simulation/internal/scenario"
)

//go:embed templates/report.md.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "templates/report.md.tmpl"))

// Default report metadata.
const (
	DefaultTitle   = "NHP Mega Simulation Report"
	DefaultTitleAr = "تقرير المحاكاة الشاملة"
	Version        = "2.0 (Mega)"

	// FileName is the report file written by Save.
	FileName = "mega_report.md"
)

// Report is the data passed to the markdown template.
type Report struct {
	Title       string
	TitleAr     string
	Version     string
	RunID       string
	GeneratedAt time.Time
	Total       int
	Sections    []Section
	Charts      []string
}

// Build assembles a report from results. Categories without a table layout
// are left out of the sections but still count toward Total. Phase results
// carry their own title; anything else is headed with DefaultTitle.
func Build(res *scenario.Results, generatedAt time.Time, charts []string) Report {
	title, titleAr := DefaultTitle, DefaultTitleAr
	if res.Title != "" {
		title, titleAr = res.Title, res.TitleAr
	}

	r := Report{
		Title:       title,
		TitleAr:     titleAr,
		Version:     Version,
		RunID:       res.RunID,
		GeneratedAt: generatedAt,
		Total:       res.Total(),
		Charts:      charts,
	}
	for _, c := range res.Categories {
		if s, ok := buildSection(c); ok {
			r.Sections = append(r.Sections, s)
		}
	}
	return r
}

// Render writes the report as markdown.
func (r Report) Render(w io.Writer) error {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, r); err != nil {
		return fmt.Errorf("executing report template: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// String renders the report, returning an empty string on template errors.
func (r Report) String() string {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Save writes the report to dir/name, creating dir if needed, and returns
// the file path.
func (r Report) Save(dir, name string) (path string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	path = filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	if err = r.Render(file); err != nil {
		return "", err
	}
	return path, nil
}
