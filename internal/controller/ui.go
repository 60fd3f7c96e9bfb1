// Package controller provides output adapters for displaying header rewrite results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "commentheader.dev/pkg/commentheader/internal/model"
)

// UI defines the interface for reporting progress of a run.
// Implementations can use different output methods (plain text, styled text).
type UI interface {
	DisplayFileResult(ctx context.Context, result m.FileResult)
	DisplaySummary(ctx context.Context, summary m.Summary)
}

// NewUI returns the UI for cmd. Styled output is used when the command writes
// to a terminal.
func NewUI(cmd *cobra.Command, styled bool) UI {
	if styled {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
