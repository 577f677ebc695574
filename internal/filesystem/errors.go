package filesystem

import "fmt"

// EntryReadError describes a filesystem failure that caused an entry or a
// subtree to be skipped. It is only ever logged.
type EntryReadError struct {
	Op   string // readdir, stat, open
	Path string
	Err  error
}

func (e *EntryReadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *EntryReadError) Unwrap() error {
	return e.Err
}
