package models

import (
	"time"
)

// Epoch is the modification time used when the filesystem reports none
var Epoch = time.Unix(0, 0).UTC()

// FileRecord represents one entry discovered by a traversal
type FileRecord struct {
	Path           string    `json:"path" yaml:"path"`         // Path as discovered (root joined with entry names)
	Size           uint64    `json:"size" yaml:"size"`         // Size in bytes (meaningful for regular files)
	Modified       time.Time `json:"modified" yaml:"modified"` // Modification time
	MatchesContent bool      `json:"matches_content" yaml:"matches_content"`
}

// NewFileRecord builds a record, falling back to Epoch for a missing timestamp
func NewFileRecord(path string, size int64, modified time.Time, matchesContent bool) FileRecord {
	if modified.IsZero() {
		modified = Epoch
	}
	if size < 0 {
		size = 0
	}
	return FileRecord{
		Path:           path,
		Size:           uint64(size),
		Modified:       modified,
		MatchesContent: matchesContent,
	}
}
