// Package domain implements the header enforcement workflow.
package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"commentheader.dev/pkg/commentheader/internal/adapter"
	m "commentheader.dev/pkg/commentheader/internal/model"
)

// OriginPlaceholder is replaced by the remote URL in header templates.
const OriginPlaceholder = "$origin"

// ErrInvalidText is returned when a header template or source file is not valid UTF-8.
var ErrInvalidText = errors.New("stream did not contain valid UTF-8")

var (
	// headerPattern matches optional leading Unicode whitespace followed by the
	// first block comment of the content.
	headerPattern = regexp.MustCompile(`(?s)^[\s\v\x{85}\p{Z}]*/\*.*?\*/`)

	// candidatePattern selects the source files whose headers are enforced.
	candidatePattern = regexp.MustCompile(`\.(rs|cs)$`)
)

// LoadHeader reads the header template at path. Trailing line terminators are
// dropped so that a written header is recognized again on the next run.
func LoadHeader(fsAdapter adapter.SourceFSAdapter, path m.Path) (string, error) {
	content, err := readText(fsAdapter, path)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(content, "\r\n"), nil
}

// RenderHeader substitutes every occurrence of OriginPlaceholder with origin.
func RenderHeader(template, origin string) string {
	return strings.ReplaceAll(template, OriginPlaceholder, origin)
}

// IsCandidate reports whether the file at path should carry the header.
func IsCandidate(path m.Path) bool {
	return candidatePattern.MatchString(string(path))
}

// ExistingHeader returns the leading block comment of content, including the
// whitespace before it. ok is false when content has none.
func ExistingHeader(content string) (header string, ok bool) {
	loc := headerPattern.FindStringIndex(content)
	if loc == nil {
		return "", false
	}

	return content[loc[0]:loc[1]], true
}

// RewriteHeader returns content carrying header and the action it took.
//
// The existing header is compared verbatim. When it differs, only the first
// match is replaced and the rest of content is kept as is; without a match the
// header and a newline are prepended.
func RewriteHeader(content, header string) (string, m.Action) {
	existing, found := ExistingHeader(content)
	if existing == header {
		return content, m.ActionSkipped
	}

	if found {
		return header + content[len(existing):], m.ActionReplaced
	}

	return header + "\n" + content, m.ActionAdded
}

func readText(fsAdapter adapter.SourceFSAdapter, path m.Path) (string, error) {
	content, err := fsAdapter.ReadFile(path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(content) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidText)
	}

	return string(content), nil
}
