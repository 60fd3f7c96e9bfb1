package adapter

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "commentheader.dev/pkg/commentheader/internal/model"
)

func TestTrimOrigin(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"https with suffix", "https://example.com/repo.git\n", "https://example.com/repo"},
		{"https without suffix", "https://example.com/repo\n", "https://example.com/repo"},
		{"ssh with suffix", "  git@example.com:org/repo.git  ", "git@example.com:org/repo"},
		{"only one suffix removed", "https://example.com/repo.git.git", "https://example.com/repo.git"},
		{"suffix inside path kept", "https://example.com/repo.github", "https://example.com/repo.github"},
		{"empty", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trimOrigin(tt.raw))
		})
	}
}

func TestNewGitOriginAdapter_DefaultBinary(t *testing.T) {
	assert.Equal(t, DefaultVCSBinary, NewGitOriginAdapter("").binary)
	assert.Equal(t, DefaultVCSBinary, NewGitOriginAdapter("  ").binary)
	assert.Equal(t, "hg", NewGitOriginAdapter("hg").binary)
}

func TestGitOriginAdapter_ResolveOrigin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake vcs client is a shell script")
	}

	t.Run("returns trimmed url from the working directory", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "origin.txt"), "https://example.com/repo.git\n")

		// The fake client only answers from its working directory.
		bin := writeFakeVCS(t, `#!/bin/sh
if [ "$1 $2 $3" != "remote get-url origin" ]; then
  echo "unexpected args: $*" >&2
  exit 2
fi
cat origin.txt
`)

		adapter := NewGitOriginAdapter(bin)
		got, err := adapter.ResolveOrigin(context.Background(), m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/repo", got)
	})

	t.Run("non-zero exit is an error", func(t *testing.T) {
		bin := writeFakeVCS(t, `#!/bin/sh
echo "fatal: not a git repository" >&2
exit 128
`)

		adapter := NewGitOriginAdapter(bin)
		_, err := adapter.ResolveOrigin(context.Background(), m.Path(t.TempDir()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a git repository")
	})

	t.Run("missing binary is an error", func(t *testing.T) {
		adapter := NewGitOriginAdapter(filepath.Join(t.TempDir(), "no-such-vcs"))
		_, err := adapter.ResolveOrigin(context.Background(), m.Path(t.TempDir()))
		require.Error(t, err)
	})
}

func writeFakeVCS(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fake-vcs")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	return path
}
