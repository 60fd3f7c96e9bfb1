package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	m "commentheader.dev/pkg/commentheader/internal/model"
)

// DefaultVCSBinary is the version-control client used when none is configured.
const DefaultVCSBinary = "git"

// OriginAdapter resolves the URL of the "origin" remote for a working tree.
type OriginAdapter interface {
	// ResolveOrigin returns the origin URL of the repository rooted at root,
	// without a trailing ".git".
	ResolveOrigin(ctx context.Context, root m.Path) (string, error)
}

// GitOriginAdapter resolves the origin by running `<binary> remote get-url origin`.
type GitOriginAdapter struct {
	binary string
}

// NewGitOriginAdapter constructs a GitOriginAdapter. An empty binary falls
// back to DefaultVCSBinary.
func NewGitOriginAdapter(binary string) *GitOriginAdapter {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultVCSBinary
	}

	return &GitOriginAdapter{binary: binary}
}

// ResolveOrigin runs the VCS client in root and returns the trimmed URL.
func (a *GitOriginAdapter) ResolveOrigin(ctx context.Context, root m.Path) (string, error) {
	cmd := exec.CommandContext(ctx, a.binary, "remote", "get-url", "origin")
	cmd.Dir = string(root)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		slog.Error("Failed to get remote URL", "binary", a.binary, "root", root, "stderr", stderr.String(), "error", err)

		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s remote get-url origin: %w: %s", a.binary, err, msg)
		}

		return "", fmt.Errorf("%s remote get-url origin: %w", a.binary, err)
	}

	origin := trimOrigin(stdout.String())
	slog.Debug("Resolved origin", "root", root, "origin", origin)

	return origin, nil
}

// trimOrigin strips surrounding whitespace and exactly one ".git" suffix.
func trimOrigin(raw string) string {
	return strings.TrimSuffix(strings.TrimSpace(raw), ".git")
}
