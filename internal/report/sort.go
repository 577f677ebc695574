package report

import (
	"path/filepath"
	"sort"

	"github.com/IvanShishkin/finder/pkg/models"
)

// Sort orders records in place by key. All orderings are stable, so ties keep
// discovery order; an empty key leaves the slice untouched.
func Sort(records []models.FileRecord, key models.SortKey) {
	switch key {
	case models.SortName:
		sort.SliceStable(records, func(i, j int) bool {
			return filepath.Base(records[i].Path) < filepath.Base(records[j].Path)
		})
	case models.SortSize:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Size > records[j].Size
		})
	case models.SortDate:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Modified.After(records[j].Modified)
		})
	}
}
