// Package model defines the data structures shared by the header workflow.
package model

// Path represents a file system path.
type Path string

// Action describes what happened to a single source file.
type Action string

const (
	// ActionAdded means the file had no leading block comment and the header
	// was prepended.
	ActionAdded Action = "added"

	// ActionReplaced means the leading block comment differed from the header
	// and was replaced.
	ActionReplaced Action = "replaced"

	// ActionSkipped means the file already starts with the header.
	ActionSkipped Action = "skipped"
)

// FileResult is the outcome of processing one source file.
type FileResult struct {
	Path   Path
	Action Action
}

// Summary aggregates file results for a single run.
type Summary struct {
	Added    int
	Replaced int
	Skipped  int
}

// Record counts a file result.
func (s *Summary) Record(result FileResult) {
	switch result.Action {
	case ActionAdded:
		s.Added++
	case ActionReplaced:
		s.Replaced++
	case ActionSkipped:
		s.Skipped++
	}
}

// Total returns the number of processed files.
func (s Summary) Total() int {
	return s.Added + s.Replaced + s.Skipped
}
