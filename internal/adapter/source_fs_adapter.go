// Package adapter contains infrastructure adapters for the comment-header CLI.
package adapter

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	m "commentheader.dev/pkg/commentheader/internal/model"
)

// defaultFilePerm is only applied when a written file does not exist yet;
// existing files keep their mode.
const defaultFilePerm os.FileMode = 0o644

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning a source tree. It hides direct `os` access so the
// workflow logic can be tested against an in-memory filesystem.
type SourceFSAdapter interface {
	// Walk traverses every entry below root, descending into directories.
	// Symbolic links below root are reported but not followed; a root that is
	// a link to a directory is followed.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile truncates and rewrites the file at path.
	WriteFile(path m.Path, content []byte) error

	// FileInfo returns metadata for a path, following symbolic links.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on top of an afero.Fs.
type LocalSourceFSAdapter struct {
	fs afero.Fs
}

// NewLocalSourceFSAdapter constructs an adapter backed by the OS filesystem.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return NewSourceFSAdapter(afero.NewOsFs())
}

// NewSourceFSAdapter constructs an adapter backed by the given filesystem.
func NewSourceFSAdapter(fs afero.Fs) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: fs}
}

// Walk iterates over every entry under root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return afero.Walk(a.fs, a.walkRoot(string(root)), filepath.WalkFunc(fn))
}

// walkRoot appends a separator to a root that links to a directory. afero.Walk
// lstats the root, and the trailing separator makes that lstat resolve the
// link while joined child paths still start with the link's name.
func (a *LocalSourceFSAdapter) walkRoot(root string) string {
	lstater, ok := a.fs.(afero.Lstater)
	if !ok {
		return root
	}

	info, lstatCalled, err := lstater.LstatIfPossible(root)
	if err != nil || !lstatCalled || info.Mode()&os.ModeSymlink == 0 {
		return root
	}

	target, err := a.fs.Stat(root)
	if err != nil || !target.IsDir() {
		return root
	}

	return root + string(filepath.Separator)
}

// ReadFile loads file contents.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return afero.ReadFile(a.fs, string(path))
}

// WriteFile overwrites the file at path with content.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	return afero.WriteFile(a.fs, string(path), content, defaultFilePerm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return a.fs.Stat(string(path))
}
