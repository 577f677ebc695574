package filesystem

import (
	"os"
	"path/filepath"

	"github.com/IvanShishkin/finder/internal/config"
	"github.com/IvanShishkin/finder/internal/pattern"
	"github.com/IvanShishkin/finder/pkg/models"
	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// WalkStats counts what a walk touched
type WalkStats struct {
	Visited         int // entries considered
	Directories     int // directories descended into
	SkippedDirs     int // directories that could not be listed
	SkippedEntries  int // entries dropped because stat failed
	ExcludedEntries int // entries dropped by exclude patterns
	ContentScanned  int // files opened for content search
}

// Walker walks the filesystem and collects matching entries
type Walker struct {
	config  *config.Config
	logger  *zap.Logger
	exclude []string
	stats   WalkStats
}

// frame is a directory whose entries are being consumed
type frame struct {
	dir     string
	entries []os.DirEntry
	next    int
}

// NewWalker creates a new filesystem walker
func NewWalker(cfg *config.Config, logger *zap.Logger) *Walker {
	return &Walker{
		config:  cfg,
		logger:  logger,
		exclude: cfg.Exclude,
	}
}

// Stats returns counters for the last walk
func (w *Walker) Stats() WalkStats {
	return w.stats
}

// Walk performs a depth-first walk of root and returns every entry whose name
// matches p or, with content search enabled, every regular file whose content
// matches p. Directories are always descended into. Entries that cannot be
// read are skipped.
//
// Pending directories are kept on an explicit stack so deep trees do not grow
// the call stack. Each entry is reported before its subtree, and a subtree is
// finished before the next sibling.
func (w *Walker) Walk(root string, p *pattern.Pattern) []models.FileRecord {
	w.stats = WalkStats{}

	var results []models.FileRecord
	var stack []*frame

	if f := w.open(root); f != nil {
		stack = append(stack, f)
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}

		entry := top.entries[top.next]
		top.next++
		w.stats.Visited++

		name := entry.Name()
		path := filepath.Join(top.dir, name)

		if w.shouldExclude(root, name, path) {
			w.stats.ExcludedEntries++
			w.logger.Debug("Skipping excluded entry", zap.String("path", path))
			continue
		}

		// Follows symlinks
		info, err := os.Stat(path)
		if err != nil {
			w.stats.SkippedEntries++
			w.logSkip(&EntryReadError{Op: "stat", Path: path, Err: err})
			continue
		}

		nameMatches := p.MatchString(name)
		matchesContent := false
		if w.config.ContentSearch && info.Mode().IsRegular() {
			w.stats.ContentScanned++
			matchesContent = MatchesContent(path, p)
		}

		if nameMatches || matchesContent {
			results = append(results, models.NewFileRecord(path, info.Size(), info.ModTime(), matchesContent))
		}

		if info.IsDir() {
			if f := w.open(path); f != nil {
				w.stats.Directories++
				stack = append(stack, f)
			}
		}
	}

	return results
}

// open lists a directory, returning nil when nothing can be read from it
func (w *Walker) open(dir string) *frame {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logSkip(&EntryReadError{Op: "readdir", Path: dir, Err: err})
		if len(entries) == 0 {
			w.stats.SkippedDirs++
			return nil
		}
	}
	return &frame{dir: dir, entries: entries}
}

// shouldExclude checks the entry name and its root-relative path against the
// exclude patterns
func (w *Walker) shouldExclude(root, name, path string) bool {
	if len(w.exclude) == 0 {
		return false
	}

	relPath, err := filepath.Rel(root, path)
	if err != nil {
		relPath = path
	}
	relPath = filepath.ToSlash(relPath)

	for _, glob := range w.exclude {
		if ok, _ := doublestar.Match(glob, name); ok {
			return true
		}
		if ok, _ := doublestar.Match(glob, relPath); ok {
			return true
		}
	}
	return false
}

func (w *Walker) logSkip(err *EntryReadError) {
	w.logger.Debug("Skipping unreadable entry",
		zap.String("op", err.Op),
		zap.String("path", err.Path),
		zap.Error(err.Err))
}
