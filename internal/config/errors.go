package config

import "fmt"

// InvalidSortKeyError reports a sort value outside name, size, date
type InvalidSortKeyError struct {
	Value string
}

func (e *InvalidSortKeyError) Error() string {
	return fmt.Sprintf("--sort must be one of: %s (got: %s)", joinSortKeys(), e.Value)
}

// ValidationError reports an invalid configuration value
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("--%s %s", e.Field, e.Reason)
}
