package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/nhp-simulation/internal/scenario"
)

// Default file names.
const (
	AllScenariosCSV  = "mega_scenarios_all.csv"
	AllScenariosJSON = "mega_scenarios_all.json"
)

// Exporter writes result files into one directory.
type Exporter struct {
	dir    string
	logger zerolog.Logger
	now    func() time.Time
}

// NewExporter creates an Exporter for dir. The directory is created on the
// first write.
func NewExporter(dir string, logger zerolog.Logger) *Exporter {
	return &Exporter{dir: dir, logger: logger, now: time.Now}
}

// WithClock returns a copy of e that stamps JSON documents using now.
func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	c := *e
	c.now = now
	return &c
}

// CSV writes res as CSV to name inside the export directory and returns the
// file path.
func (e *Exporter) CSV(name string, res *scenario.Results) (string, error) {
	return e.write(name, func(w io.Writer) error {
		return WriteCSV(w, res.Rows())
	})
}

// JSON writes res as a JSON document to name inside the export directory
// and returns the file path.
func (e *Exporter) JSON(name string, res *scenario.Results) (string, error) {
	return e.write(name, func(w io.Writer) error {
		return WriteJSON(w, res, e.now())
	})
}

func (e *Exporter) write(name string, fill func(io.Writer) error) (path string, err error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path = filepath.Join(e.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	if err = fill(file); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	e.logger.Info().Str("path", path).Msg("export written")
	return path, nil
}
