package report

import (
	"fmt"
	"io"

	"github.com/IvanShishkin/finder/internal/config"
	"github.com/IvanShishkin/finder/pkg/models"
	"go.uber.org/zap"
)

// Generator writes found records in the configured output format
type Generator struct {
	config *config.Config
	logger *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) (*Generator, error) {
	if !cfg.Format.IsValid() {
		return nil, fmt.Errorf("unknown report format: %s", cfg.Format)
	}
	return &Generator{
		config: cfg,
		logger: logger,
	}, nil
}

// Generate writes records to w
func (g *Generator) Generate(w io.Writer, records []models.FileRecord) error {
	opts := g.config.DisplayOptions()

	g.logger.Debug("Generating report",
		zap.String("format", string(g.config.Format)),
		zap.Int("records", len(records)))

	switch g.config.Format {
	case models.FormatJSON:
		return g.generateJSON(w, records, opts)
	case models.FormatYAML:
		return g.generateYAML(w, records, opts)
	default:
		return g.generateText(w, records, opts)
	}
}

// recordView is the structured form of one record; optional fields are only
// set when the matching display option is on
type recordView struct {
	Path           string  `json:"path" yaml:"path"`
	Modified       string  `json:"modified,omitempty" yaml:"modified,omitempty"`
	Size           *uint64 `json:"size,omitempty" yaml:"size,omitempty"`
	SizeHuman      string  `json:"size_human,omitempty" yaml:"size_human,omitempty"`
	MatchesContent bool    `json:"matches_content,omitempty" yaml:"matches_content,omitempty"`
}

func newRecordViews(records []models.FileRecord, opts models.DisplayOptions) []recordView {
	views := make([]recordView, 0, len(records))
	for _, rec := range records {
		view := recordView{Path: rec.Path}

		if opts.Date {
			if ts, ok := FormatTimestamp(rec.Modified); ok {
				view.Modified = ts
			}
		}

		if opts.Size && isRegularFile(rec.Path) {
			if opts.HumanReadable {
				view.SizeHuman = HumanReadableSize(rec.Size)
			} else {
				size := rec.Size
				view.Size = &size
			}
		}

		view.MatchesContent = opts.ContentSearch && rec.MatchesContent
		views = append(views, view)
	}
	return views
}
