// Package content loads what the main panel displays: a syntax-highlighted
// file or a filtered directory listing.
package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/x/ansi"
	"github.com/gobwas/glob"
)

const (
	// DefaultStyle is the chroma style used when Options.Style is empty
	DefaultStyle = "monokai"

	formatter = "terminal256"
)

// Options controls how a path is rendered
type Options struct {
	// Match filters directory listings by entry name. Empty shows everything.
	Match []string
	// Style is a chroma style name
	Style string
}

// Document is a loaded path ready for display
type Document struct {
	Path  string
	IsDir bool
	// Lines holds the styled output, one entry per display row
	Lines []string
	// Plain holds the same rows without escape sequences
	Plain []string
}

// Line returns the plain text of row, or false when row is out of range.
func (d *Document) Line(row int) (string, bool) {
	if row < 0 || row >= len(d.Plain) {
		return "", false
	}
	return d.Plain[row], true
}

// String joins the styled lines for a viewport.
func (d *Document) String() string {
	return strings.Join(d.Lines, "\n")
}

// Load reads path and renders it according to opts.
func Load(path string, opts Options) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", abs, err)
	}

	if info.IsDir() {
		return loadDir(abs, opts)
	}
	return loadFile(abs, opts)
}

func loadDir(path string, opts Options) (*Document, error) {
	matcher, err := newMatcher(opts.Match)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			names = append(names, name+"/")
			continue
		}
		if matcher.match(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return &Document{
		Path:  path,
		IsDir: true,
		Lines: names,
		Plain: names,
	}, nil
}

func loadFile(path string, opts Options) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	source := strings.ReplaceAll(string(raw), "\r\n", "\n")
	source = strings.TrimSuffix(source, "\n")
	plain := strings.Split(source, "\n")

	return &Document{
		Path:  path,
		Lines: highlight(filepath.Base(path), source, opts.Style, plain),
		Plain: plain,
	}, nil
}

// highlight returns styled lines, or plain when chroma fails or changes the
// number of rows.
func highlight(name, source, style string, plain []string) []string {
	if style == "" {
		style = DefaultStyle
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, source, name, formatter, style); err != nil {
		return plain
	}

	styled := strings.Split(buf.String(), "\n")
	// Lexers that force a trailing newline leave a row holding only escapes.
	for len(styled) > len(plain) && ansi.Strip(styled[len(styled)-1]) == "" {
		last := styled[len(styled)-1]
		styled = styled[:len(styled)-1]
		styled[len(styled)-1] += last
	}
	if len(styled) != len(plain) {
		return plain
	}
	return styled
}

type matcher struct {
	patterns []glob.Glob
}

func newMatcher(patterns []string) (*matcher, error) {
	m := &matcher{}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid match pattern '%s': %w", pattern, err)
		}
		m.patterns = append(m.patterns, g)
	}
	return m, nil
}

func (m *matcher) match(name string) bool {
	if len(m.patterns) == 0 {
		return true
	}
	for _, g := range m.patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}
