package report

import (
	"io"

	"github.com/IvanShishkin/finder/pkg/models"
	"gopkg.in/yaml.v3"
)

// generateYAML writes records as a YAML sequence
func (g *Generator) generateYAML(w io.Writer, records []models.FileRecord, opts models.DisplayOptions) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newRecordViews(records, opts)); err != nil {
		return err
	}
	return enc.Close()
}
