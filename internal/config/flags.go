package config

import (
	"github.com/IvanShishkin/finder/pkg/models"
	"github.com/spf13/pflag"
)

// sortKeyValue is a pflag.Value restricted to the accepted sort keys
type sortKeyValue models.SortKey

// NewSortKeyValue binds a --sort flag to p. Set rejects anything outside
// name, size, date, so bad values fail while flags are parsed.
func NewSortKeyValue(p *models.SortKey) pflag.Value {
	return (*sortKeyValue)(p)
}

func (v *sortKeyValue) String() string {
	return string(*v)
}

func (v *sortKeyValue) Set(s string) error {
	key := models.SortKey(s)
	if key == models.SortNone || !key.IsValid() {
		return &InvalidSortKeyError{Value: s}
	}
	*v = sortKeyValue(key)
	return nil
}

func (v *sortKeyValue) Type() string {
	return "name|size|date"
}

// formatValue is a pflag.Value restricted to the supported output formats
type formatValue models.OutputFormat

// NewFormatValue binds a --format flag to p
func NewFormatValue(p *models.OutputFormat) pflag.Value {
	return (*formatValue)(p)
}

func (v *formatValue) String() string {
	return string(*v)
}

func (v *formatValue) Set(s string) error {
	format := models.OutputFormat(s)
	if !format.IsValid() {
		return &ValidationError{Field: "format", Reason: "must be one of: " + joinFormats() + " (got: " + s + ")"}
	}
	*v = formatValue(format)
	return nil
}

func (v *formatValue) Type() string {
	return "text|json|yaml"
}
