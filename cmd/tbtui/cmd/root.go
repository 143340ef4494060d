// Package cmd provides the CLI commands for tbtui.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Fjolfrin/tbtui/internal/config"
	tberrors "github.com/Fjolfrin/tbtui/internal/errors"
	"github.com/Fjolfrin/tbtui/internal/history"
	"github.com/Fjolfrin/tbtui/internal/logging"
	"github.com/Fjolfrin/tbtui/internal/session"
	"github.com/Fjolfrin/tbtui/internal/tui"
)

// Version information - set via ldflags at build time in main.go.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// appFs is the filesystem history files are read from.
var appFs afero.Fs = afero.NewOsFs()

// runTUI starts the interactive viewer. Replaced in tests.
var runTUI = tui.Run

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"path":         "path",
	"suffix":       "suffix",
	"epoch_column": "epoch-column",
	"theme":        "theme",
}

// newRootCmd builds the full command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tbtui",
		Short: "Plot training history CSV files in the terminal",
		Long: `tbtui finds <run>_history.csv files under a directory and plots every
metric column against the epoch column in a tabbed terminal UI.

Pick a run on the left, switch metrics with the tab bar and mark the
minimum or maximum of every plot with m and M.

Examples:
  tbtui                         # Plot runs under the current directory
  tbtui --path ./experiments    # Plot runs under ./experiments
  tbtui summary --output json   # Print per-metric extrema as JSON
  tbtui export --out runs.html  # Write the plots as an HTML page`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	root.SetVersionTemplate("tbtui {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.String("path", config.DefaultPath, "Root directory searched for history files")
	pf.String("suffix", config.DefaultSuffix, "File name suffix of history files")
	pf.String("epoch-column", config.DefaultEpochColumn, "Name of the epoch column")
	pf.String("config", "", "Config file (default ./"+config.DefaultConfigFile+" if present)")
	pf.BoolP("verbose", "v", false, "Write debug logs")
	root.Flags().String("theme", string(config.DefaultTheme), "UI theme: dark or light")

	root.AddCommand(newSummaryCmd(), newExportCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprint(os.Stderr, tberrors.FormatError(err))
		os.Exit(1)
	}
}

// runRoot loads the runs and starts the TUI.
func runRoot(cmd *cobra.Command, _ []string) error {
	ctx, cleanup, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := runTUI(ctx); err != nil {
		logging.Error("tui exited with error", "error", err)
		return err
	}
	return nil
}

// prepare loads configuration, starts logging and loads every run. The
// returned cleanup closes the log file.
func prepare(cmd *cobra.Command) (session.Context, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return session.Context{}, func() {}, err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	cleanup := initLogging(cmd, cfg, verbose)

	runs, err := history.Load(history.Options{
		Root:        cfg.Path,
		Suffix:      cfg.Suffix,
		EpochColumn: cfg.EpochColumn,
		Fs:          appFs,
	})
	if err != nil {
		logging.Error("loading history failed", "root", cfg.Path, "error", err)
		cleanup()
		return session.Context{}, func() {}, err
	}

	return session.Context{Runs: runs, Config: cfg}, cleanup, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags(), flagKeys); err != nil {
		return nil, tberrors.Wrap(err, tberrors.ErrConfig, "failed to bind flags")
	}
	return loader.LoadConfig(configPath)
}

// initLogging installs the global file logger. Failure is not fatal: the
// viewer runs without logs.
func initLogging(cmd *cobra.Command, cfg *config.Config, verbose bool) func() {
	level, err := logging.ParseLevel(string(cfg.Log.Level))
	if err != nil {
		level = logging.LevelInfo
	}
	if verbose {
		level = logging.LevelDebug
	}

	logConfig := logging.DefaultConfig()
	logConfig.Level = level
	if cfg.Log.Dir != "" {
		logConfig.LogDir = cfg.Log.Dir
	}
	logConfig.MaxLogFiles = cfg.Log.MaxFiles
	logConfig.MaxLogAge = cfg.Log.MaxAge
	logConfig.JSONFormat = cfg.Log.JSON

	if err := logging.InitGlobal(logConfig); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
		return func() {}
	}
	logging.Info("tbtui starting", "version", Version, "command", cmd.Name(), "path", cfg.Path)
	return func() { _ = logging.CloseGlobal() }
}
