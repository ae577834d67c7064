// Package cli wires the dragsort commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/rileylov/dragsort/internal/dataset"
	"github.com/rileylov/dragsort/internal/ui"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Items   string
	Format  string // "text" | "json" | "yaml"
	LogFile string
	Verbose bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the dragsort command. Run without a subcommand it
// opens the interactive list and prints the final order on exit.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	var (
		title   string
		noMouse bool
	)

	cmd := &cobra.Command{
		Use:   "dragsort",
		Short: "Reorder a list by dragging rows with the mouse",
		Long: `Open an interactive list whose rows can be picked up with the mouse and
dropped above or below another row. The resulting order is printed when
the program exits.

Example:
  dragsort --items trips.yaml --format json
  dragsort order --items trips.yaml --move 0:3:below`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts, title, !noMouse)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Items, "items", "", "YAML file with the items to order (default: built-in list)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "write a debug log to this file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")
	cmd.Flags().StringVar(&title, "title", "Drag to reorder", "header title")
	cmd.Flags().BoolVar(&noMouse, "no-mouse", false, "start with mouse zones disabled")

	cmd.AddCommand(NewOrderCommand(opts))

	return cmd
}

func runInteractive(cmd *cobra.Command, opts *RootOptions, title string, mouse bool) error {
	items, err := loadItems(opts.Items)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	zone.NewGlobal()
	zone.SetEnabled(mouse)

	app := ui.NewApp(ui.Config{Title: title, Items: items, Logger: logger})
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	logger.Info("starting", "items", len(items), "mouse", mouse)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return writeOrder(cmd.OutOrStdout(), opts.Format, app.Order())
}

func loadItems(path string) ([]dataset.Item, error) {
	if path == "" {
		return dataset.Default(), nil
	}
	return dataset.Load(path)
}

// newLogger builds the structured logger. Bubble Tea owns the terminal, so
// logs only go to --log-file.
func newLogger(opts *RootOptions) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	if opts.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(opts.LogFile, "dragsort")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}
