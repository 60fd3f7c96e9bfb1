package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "commentheader.dev/pkg/commentheader/internal/model"
)

// CompletionMessage is printed once all files have been processed.
const CompletionMessage = "Comment Header done."

var actionStyles = map[m.Action]lipgloss.Style{
	m.ActionAdded:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	m.ActionReplaced: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	m.ActionSkipped:  lipgloss.NewStyle().Faint(true),
}

// SimpleUI implements UI by writing lines to the cobra command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a SimpleUI that prints plain text.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// NewStyledUI creates a SimpleUI that colors action verbs.
func NewStyledUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: true}
}

// DisplayFileResult prints one line describing what happened to a file.
func (s *SimpleUI) DisplayFileResult(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch result.Action {
	case m.ActionReplaced:
		s.printf("%s header in file %q\n", s.verb(result.Action, "Replacing"), result.Path)
	case m.ActionAdded:
		s.printf("%s header to file %q\n", s.verb(result.Action, "Adding"), result.Path)
	case m.ActionSkipped:
		s.printf("%s file %q as the header is already up-to-date.\n", s.verb(result.Action, "Skipping"), result.Path)
	}
}

// DisplaySummary prints per-action counts followed by the completion line.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	if summary.Total() > 0 {
		s.printf("\n%s", renderSummaryTable(summary))
	}

	s.printf("%s\n", CompletionMessage)
}

func renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Action", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{string(m.ActionAdded), fmt.Sprintf("%d", summary.Added)})
	table.Append([]string{string(m.ActionReplaced), fmt.Sprintf("%d", summary.Replaced)})
	table.Append([]string{string(m.ActionSkipped), fmt.Sprintf("%d", summary.Skipped)})

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", summary.Total())})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) verb(action m.Action, text string) string {
	if !s.styled {
		return text
	}

	style, ok := actionStyles[action]
	if !ok {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
