package core

import (
	"fmt"
	"io"
	"time"

	"github.com/IvanShishkin/finder/internal/config"
	"github.com/IvanShishkin/finder/internal/filesystem"
	"github.com/IvanShishkin/finder/internal/pattern"
	"github.com/IvanShishkin/finder/internal/report"
	"github.com/IvanShishkin/finder/pkg/models"
	"go.uber.org/zap"
)

// Finder runs one search: compile, walk, sort
type Finder struct {
	config *config.Config
	logger *zap.Logger
	walker *filesystem.Walker
}

// NewFinder creates a new finder instance
func NewFinder(cfg *config.Config, logger *zap.Logger) *Finder {
	return &Finder{
		config: cfg,
		logger: logger,
		walker: filesystem.NewWalker(cfg, logger),
	}
}

// Find compiles the pattern, walks the configured directory and returns the
// sorted records. An invalid pattern is returned before anything is walked;
// filesystem errors during the walk are never returned.
func (f *Finder) Find() ([]models.FileRecord, error) {
	if err := f.config.Validate(); err != nil {
		return nil, err
	}

	p, err := pattern.Compile(f.config.Pattern)
	if err != nil {
		return nil, err
	}

	f.logger.Info("Starting search",
		zap.String("dir", f.config.Dir),
		zap.String("pattern", p.Source()),
		zap.String("expression", p.String()),
		zap.Bool("content_search", f.config.ContentSearch))

	start := time.Now()
	records := f.walker.Walk(f.config.Dir, p)
	report.Sort(records, f.config.Sort)

	stats := f.walker.Stats()
	f.logger.Info("Search completed",
		zap.Duration("duration", time.Since(start)),
		zap.Int("found", len(records)),
		zap.Int("visited", stats.Visited),
		zap.Int("directories", stats.Directories),
		zap.Int("skipped_dirs", stats.SkippedDirs),
		zap.Int("skipped_entries", stats.SkippedEntries),
		zap.Int("excluded", stats.ExcludedEntries),
		zap.Int("content_scanned", stats.ContentScanned))

	return records, nil
}

// Run finds records and writes the report to w
func (f *Finder) Run(w io.Writer) error {
	records, err := f.Find()
	if err != nil {
		return err
	}

	generator, err := report.NewGenerator(f.config, f.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize report generator: %w", err)
	}

	return generator.Generate(w, records)
}
