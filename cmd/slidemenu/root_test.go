package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (options, string, error) {
	t.Helper()

	var got options
	root := newRootCommand(func(ctx context.Context, opts options) error {
		got = opts
		return nil
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return got, out.String(), err
}

func TestRootCommand_Flags(t *testing.T) {
	opts, _, err := execute(t,
		"--config", "/tmp/c.json",
		"--menu", "menu.toml",
		"--match", "*.go",
		"--match", "*.md",
		"--no-watch",
		"-v",
		"docs",
	)
	require.NoError(t, err)

	assert.Equal(t, "docs", opts.path)
	assert.Equal(t, "/tmp/c.json", opts.configPath)
	assert.Equal(t, "menu.toml", opts.menuPath)
	assert.Equal(t, []string{"*.go", "*.md"}, opts.match)
	assert.True(t, opts.noWatch)
	assert.True(t, opts.verbose)
}

func TestRootCommand_DefaultsToCurrentDirectory(t *testing.T) {
	opts, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, ".", opts.path)
	assert.False(t, opts.noWatch)
}

func TestRootCommand_RejectsExtraArgs(t *testing.T) {
	_, _, err := execute(t, "a", "b")
	assert.Error(t, err)
}

func TestRootCommand_Version(t *testing.T) {
	_, out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, version))
}

func TestRootCommand_PropagatesRunError(t *testing.T) {
	root := newRootCommand(func(ctx context.Context, opts options) error {
		return errors.New("boom")
	})
	root.SetArgs([]string{"x"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	assert.EqualError(t, root.ExecuteContext(context.Background()), "boom")
}

func TestAnnounceLogPath(t *testing.T) {
	var out bytes.Buffer
	announceLogPath(&out)

	line := strings.TrimSpace(out.String())
	if strings.HasPrefix(line, "debug logging unavailable") {
		t.Skip("no writable home directory")
	}
	assert.True(t, strings.HasPrefix(line, "debug log: "), line)
	assert.True(t, strings.HasSuffix(line, "-slidemenu.log"), line)
}
