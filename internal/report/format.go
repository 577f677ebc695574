package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/IvanShishkin/finder/pkg/models"
)

// TimestampLayout is the layout used for modification dates (always UTC)
const TimestampLayout = "2006-01-02 15:04:05"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// statPath is replaced in tests
var statPath = os.Stat

// HumanReadableSize formats a byte count with base-1024 units and two decimals
func HumanReadableSize(size uint64) string {
	if size == 0 {
		return "0 B"
	}

	i := 0
	for i < len(sizeUnits)-1 && size >= uint64(1)<<(10*(i+1)) {
		i++
	}
	value := float64(size) / float64(uint64(1)<<(10*i))

	return fmt.Sprintf("%.2f %s", value, sizeUnits[i])
}

// FormatTimestamp formats t in UTC. Times before the Unix epoch are not
// rendered and yield false.
func FormatTimestamp(t time.Time) (string, bool) {
	if t.Before(models.Epoch) {
		return "", false
	}
	return t.UTC().Format(TimestampLayout), true
}

// FormatSize renders a size either as a raw byte count or human readable
func FormatSize(size uint64, humanReadable bool) string {
	if humanReadable {
		return HumanReadableSize(size)
	}
	return fmt.Sprintf("%d bytes", size)
}

// isRegularFile checks the path again at format time; the type captured
// during traversal is not reused
func isRegularFile(path string) bool {
	info, err := statPath(path)
	return err == nil && info.Mode().IsRegular()
}

// FormatLine renders one record as a text line (without newline)
func FormatLine(rec models.FileRecord, opts models.DisplayOptions) string {
	var sb strings.Builder

	sb.WriteString("Found: ")
	sb.WriteString(rec.Path)

	if opts.Date {
		if ts, ok := FormatTimestamp(rec.Modified); ok {
			sb.WriteString(", Modified: ")
			sb.WriteString(ts)
		}
	}

	if opts.Size && isRegularFile(rec.Path) {
		sb.WriteString(", Size: ")
		sb.WriteString(FormatSize(rec.Size, opts.HumanReadable))
	}

	if opts.ContentSearch && rec.MatchesContent {
		sb.WriteString(", Matches content")
	}

	return sb.String()
}
