package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bikeshare/internal/bootstrap"
	"bikeshare/internal/platform/config"
	"bikeshare/internal/platform/logging"
	"bikeshare/internal/ui/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir    string
	configPath string
	logLevel   string
}

type selectionFlags struct {
	city  string
	month string
	day   string
}

func (s *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.city, "city", "", "city: chicago|new_york_city|washington")
	cmd.Flags().StringVar(&s.month, "month", "all", "month filter: all|january..june")
	cmd.Flags().StringVar(&s.day, "day", "all", "day filter: all|monday..sunday")
	_ = cmd.MarkFlagRequired("city")
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Explore US bikeshare trip data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", ".", "directory holding the city CSV files")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <data-dir>/"+config.FileName+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace|debug|info|warn|error")

	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newRowsCmd(opts))
	root.AddCommand(newCitiesCmd(opts))
	root.AddCommand(newImportCmd(opts))
	root.AddCommand(newTUICmd(opts))
	return root
}

// loadApp reads the config and wires the application. Command logs go to
// stderr unless a log file is configured; the TUI never logs to the terminal.
func loadApp(opts *rootOptions, stderr io.Writer, tui bool) (*bootstrap.App, func(), error) {
	cfg, err := config.Load(opts.dataDir, opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logOpts := logging.Options{Level: level, File: cfg.LogFile}
	if !tui {
		logOpts.Output = stderr
	}
	logger, closeLog, err := logging.New(logOpts)
	if err != nil {
		return nil, nil, err
	}
	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return app, func() {
		_ = app.Close()
		closeLog()
	}, nil
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var sel selectionFlags
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print trip statistics for a city",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(opts, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer done()
			out, err := app.StatsCLI.Report(context.Background(), sel.city, sel.month, sel.day)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), render.Report(out))
			return nil
		},
	}
	sel.register(cmd)
	return cmd
}

func newRowsCmd(opts *rootOptions) *cobra.Command {
	var sel selectionFlags
	var pages int
	cmd := &cobra.Command{
		Use:   "rows",
		Short: "Print raw trips five at a time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(opts, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer done()
			out, err := app.DatasetCLI.Rows(context.Background(), sel.city, sel.month, sel.day, pages)
			if err != nil {
				return err
			}
			if len(out) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no rows")
				return nil
			}
			for _, page := range out {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), render.Rows(page))
			}
			return nil
		},
	}
	sel.register(cmd)
	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to print; 0 prints every row")
	return cmd
}

func newCitiesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List configured cities and their sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(opts, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer done()
			sources, err := app.DatasetCLI.ListSources(context.Background())
			if err != nil {
				return err
			}
			if len(sources) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no cities configured")
				return nil
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), render.Sources(sources))
			return nil
		},
	}
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	var city string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy a city's CSV trips into the SQLite store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(opts, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer done()
			out, err := app.DatasetCLI.Import(context.Background(), city)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), render.Import(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&city, "city", "", "city to import")
	_ = cmd.MarkFlagRequired("city")
	return cmd
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Explore trips interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(opts, cmd.ErrOrStderr(), true)
			if err != nil {
				return err
			}
			defer done()
			return bootstrap.RunTUI(app)
		},
	}
}
