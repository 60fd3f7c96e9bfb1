package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"commentheader.dev/pkg/commentheader/internal/adapter"
	"commentheader.dev/pkg/commentheader/internal/controller"
	m "commentheader.dev/pkg/commentheader/internal/model"
)

// ApplyArgs contains the arguments for enforcing a header on a source tree.
type ApplyArgs struct {
	Root    m.Path
	License m.Path
}

// Workflow defines the header enforcement pipeline.
type Workflow interface {
	Apply(ctx context.Context, args ApplyArgs) (m.Summary, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.OriginAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	originAdapter adapter.OriginAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		OriginAdapter:   originAdapter,
		UI:              ui,
	}
}

// Apply loads the header template, resolves the origin and rewrites every
// candidate file under args.Root. Entries that cannot be walked are skipped;
// any read or write failure stops the run.
func (w *workflow) Apply(ctx context.Context, args ApplyArgs) (m.Summary, error) {
	var summary m.Summary

	template, err := LoadHeader(w.SourceFSAdapter, args.License)
	if err != nil {
		slog.Error("Failed to load header", "license", args.License, "error", err)
		return summary, fmt.Errorf("load header: %w", err)
	}

	origin, err := w.ResolveOrigin(ctx, args.Root)
	if err != nil {
		return summary, fmt.Errorf("resolve origin: %w", err)
	}

	header := RenderHeader(template, origin)
	slog.Debug("Rendered header", "origin", origin, "bytes", len(header))

	err = w.Walk(args.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Debug("Skipping unreadable entry", "path", path, "error", err)
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if !w.isRegularFile(m.Path(path), info) || !IsCandidate(m.Path(path)) {
			return nil
		}

		result, err := w.rewriteFile(m.Path(path), header)
		if err != nil {
			slog.Error("Failed to rewrite header", "path", path, "error", err)
			return fmt.Errorf("rewrite %s: %w", path, err)
		}

		summary.Record(result)
		w.DisplayFileResult(ctx, result)

		return nil
	})
	if err != nil {
		return summary, err
	}

	slog.Debug("Header run finished", "added", summary.Added, "replaced", summary.Replaced, "skipped", summary.Skipped)
	w.DisplaySummary(ctx, summary)

	return summary, nil
}

// isRegularFile reports whether the entry is a regular file, resolving
// symbolic links to their target.
func (w *workflow) isRegularFile(path m.Path, info os.FileInfo) bool {
	if info == nil {
		return false
	}

	if info.Mode()&os.ModeSymlink != 0 {
		target, err := w.FileInfo(path)
		if err != nil {
			slog.Debug("Skipping broken symlink", "path", path, "error", err)
			return false
		}

		info = target
	}

	return info.Mode().IsRegular()
}

func (w *workflow) rewriteFile(path m.Path, header string) (m.FileResult, error) {
	content, err := readText(w.SourceFSAdapter, path)
	if err != nil {
		return m.FileResult{}, err
	}

	updated, action := RewriteHeader(content, header)
	result := m.FileResult{Path: path, Action: action}

	if action == m.ActionSkipped {
		return result, nil
	}

	if action == m.ActionReplaced {
		existing, _ := ExistingHeader(content)
		logHeaderDiff(path, existing, header)
	}

	if err := w.WriteFile(path, []byte(updated)); err != nil {
		return m.FileResult{}, err
	}

	return result, nil
}

func logHeaderDiff(path m.Path, before, after string) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(path) + " (current)",
		ToFile:   string(path) + " (header)",
		Context:  1,
	})
	if err != nil {
		slog.Debug("Failed to diff header", "path", path, "error", err)
		return
	}

	slog.Debug("Replacing header", "path", path, "diff", diff)
}
