package report

import (
	"bufio"
	"io"

	"github.com/IvanShishkin/finder/pkg/models"
)

// generateText writes one "Found: ..." line per record
func (g *Generator) generateText(w io.Writer, records []models.FileRecord, opts models.DisplayOptions) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := bw.WriteString(FormatLine(rec, opts) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
