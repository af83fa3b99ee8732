package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	appconfig "github.com/entrhq/slidemenu/pkg/config"
	"github.com/entrhq/slidemenu/pkg/executor/tui"
	"github.com/entrhq/slidemenu/pkg/logging"
	"github.com/entrhq/slidemenu/pkg/menu"
)

// options holds the parsed command line
type options struct {
	path       string
	configPath string
	menuPath   string
	match      []string
	noWatch    bool
	verbose    bool
}

// runFunc starts the viewer; tests substitute it to inspect parsed options
type runFunc func(ctx context.Context, opts options) error

func newRootCommand(run runFunc) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "slidemenu [path]",
		Short: "View a file or directory with a slide-out menu",
		Long: `slidemenu shows a file (syntax highlighted) or a directory listing.
Drag the page left with the mouse to reveal the menu behind it, or press m.`,
		Example: `  slidemenu README.md
  slidemenu --match '*.go' ./pkg
  slidemenu --menu ~/.slidemenu/menu.yaml notes.txt`,
		Args:         cobra.MaximumNArgs(1),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.path = "."
			if len(args) == 1 {
				opts.path = args[0]
			}
			return run(cmd.Context(), opts)
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.slidemenu/config.json)")
	flags.StringVar(&opts.menuPath, "menu", "", "menu definition file (.yaml, .yml or .toml)")
	flags.StringArrayVar(&opts.match, "match", nil, "glob filter for directory listings (repeatable)")
	flags.BoolVar(&opts.noWatch, "no-watch", false, "do not reload when the path changes on disk")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return root
}

// runViewer loads configuration and menu, then runs the TUI until exit
func runViewer(ctx context.Context, opts options) error {
	if opts.verbose {
		logging.SetDefaultLevel(logging.LevelDebug)
		announceLogPath(os.Stderr)
	}

	if err := appconfig.Initialize(opts.configPath); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	m := menu.Default()
	if opts.menuPath != "" {
		loaded, err := menu.Load(opts.menuPath)
		if err != nil {
			return err
		}
		m = loaded
	}

	executor := tui.NewExecutor(tui.Config{
		Path:  opts.path,
		Match: opts.match,
		Menu:  m,
		Slide: appconfig.GetSlide(),
		UI:    appconfig.GetUI(),
		Watch: !opts.noWatch,
	})
	return executor.Run(ctx)
}

// announceLogPath prints where debug output is written
func announceLogPath(w io.Writer) {
	path, err := logging.SessionLogPath()
	if err != nil {
		fmt.Fprintf(w, "debug logging unavailable: %v\n", err)
		return
	}
	fmt.Fprintf(w, "debug log: %s\n", path)
}
