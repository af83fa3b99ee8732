package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.go", "a.go", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	tests := []struct {
		name  string
		match []string
		want  []string
	}{
		{name: "no filter", want: []string{"a.go", "b.go", "notes.md", "sub/"}},
		{name: "go only", match: []string{"*.go"}, want: []string{"a.go", "b.go", "sub/"}},
		{name: "several patterns", match: []string{"a*", "*.md"}, want: []string{"a.go", "notes.md", "sub/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(dir, Options{Match: tt.match})
			require.NoError(t, err)
			assert.True(t, doc.IsDir)
			assert.Equal(t, tt.want, doc.Plain)
		})
	}
}

func TestLoadDirectoryBadPattern(t *testing.T) {
	_, err := Load(t.TempDir(), Options{Match: []string{"[unclosed"}})
	assert.Error(t, err)
}

func TestLoadFileHighlights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	source := "package main\n\nfunc main() {}\n"
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	doc, err := Load(path, Options{})
	require.NoError(t, err)
	assert.False(t, doc.IsDir)
	assert.Equal(t, []string{"package main", "", "func main() {}"}, doc.Plain)
	require.Len(t, doc.Lines, len(doc.Plain))

	for i, line := range doc.Lines {
		assert.Equal(t, doc.Plain[i], ansi.Strip(line))
	}

	line, ok := doc.Line(2)
	require.True(t, ok)
	assert.Equal(t, "func main() {}", line)
	_, ok = doc.Line(3)
	assert.False(t, ok)
}

func TestLoadMissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"), Options{})
	assert.Error(t, err)
}
