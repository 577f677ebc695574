package report

import (
	"encoding/json"
	"io"

	"github.com/IvanShishkin/finder/pkg/models"
)

// generateJSON writes records as an indented JSON array
func (g *Generator) generateJSON(w io.Writer, records []models.FileRecord, opts models.DisplayOptions) error {
	data, err := json.MarshalIndent(newRecordViews(records, opts), "", "  ")
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
