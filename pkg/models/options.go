package models

// SortKey selects the ordering applied to collected records
type SortKey string

const (
	SortNone SortKey = ""     // discovery order
	SortName SortKey = "name" // ascending by file name component
	SortSize SortKey = "size" // descending by size
	SortDate SortKey = "date" // descending by modification time
)

// SortKeys lists the accepted non-empty sort keys
var SortKeys = []SortKey{SortName, SortSize, SortDate}

// IsValid reports whether the key belongs to the closed set (empty included)
func (k SortKey) IsValid() bool {
	if k == SortNone {
		return true
	}
	for _, valid := range SortKeys {
		if k == valid {
			return true
		}
	}
	return false
}

// OutputFormat selects how results are rendered
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// OutputFormats lists the accepted output formats
var OutputFormats = []OutputFormat{FormatText, FormatJSON, FormatYAML}

// IsValid reports whether the format is supported
func (f OutputFormat) IsValid() bool {
	for _, valid := range OutputFormats {
		if f == valid {
			return true
		}
	}
	return false
}

// DisplayOptions controls which optional fields are rendered per record
type DisplayOptions struct {
	Date          bool // include modification date
	Size          bool // include size
	HumanReadable bool // render size with binary unit suffixes
	ContentSearch bool // content search was requested
}
