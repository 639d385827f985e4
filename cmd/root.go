// Package cmd implements the tasklist CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/tasklist/internal/activity"
	"github.com/twiced-technology-gmbh/tasklist/internal/clierr"
	"github.com/twiced-technology-gmbh/tasklist/internal/config"
	"github.com/twiced-technology-gmbh/tasklist/internal/logging"
	"github.com/twiced-technology-gmbh/tasklist/internal/output"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagJSON    bool
	flagCompact bool
	flagFile    string
	flagConfig  string
	flagNoColor bool
	flagVerbose bool
)

// Set up once per invocation by PersistentPreRunE.
var (
	cfg    = config.Default()
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "tasklist",
	Short: "Interactive command-line task list",
	Long: `tasklist keeps an ordered list of tasks with a priority, a date and time,
and a multi-line description. Run tasklist without a command to manage tasks
through the interactive menu; the list is saved to tasklist.json on "end".`,
	Version:           version,
	SilenceErrors:     true,
	SilenceUsage:      true,
	Args:              cobra.NoArgs,
	RunE:              runConsole,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "compact one-line-per-record output")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "oneline", false, "alias for --compact")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "task file (default "+config.DefaultDataFile+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color in command output (the menu is unaffected)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug diagnostics on stderr")
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if flagFile != "" {
		// Flag paths are relative to the working directory, not the config file.
		abs, err := filepath.Abs(flagFile)
		if err != nil {
			return fmt.Errorf("resolving --file: %w", err)
		}
		cfg.DataFile = abs
	}

	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		opts.Level = log.DebugLevel
	}
	logger = logging.New(os.Stderr, opts)
	logger.Debug("config", "source", configSource(), "data_file", cfg.DataPath())

	if flagNoColor || !cfg.ColorEnabled() || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
		output.DisableColor()
	}
	return nil
}

func configSource() string {
	if flagConfig == "" {
		return "defaults"
	}
	return flagConfig
}

// colorEnabled reports whether setup left styling on.
func colorEnabled() bool {
	return !flagNoColor && cfg.ColorEnabled() && !termenv.EnvNoColor()
}

// Execute runs the root command.
func Execute() {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	if jsonErrors(cmd) {
		var cliErr *clierr.Error
		if errors.As(err, &cliErr) {
			output.JSONError(os.Stdout, cliErr.Code, cliErr.Message, cliErr.Details)
			os.Exit(cliErr.ExitCode())
		}
		// Unknown errors are reported as INTERNAL_ERROR.
		output.JSONError(os.Stdout, clierr.InternalError, err.Error(), nil)
		os.Exit(2) //nolint:mnd // exit code 2 for internal errors
	}

	fmt.Fprintln(os.Stderr, err)
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(2) //nolint:mnd // exit code 2 for internal errors
}

// jsonErrors reports whether a failure of cmd is reported as a JSON
// envelope. The interactive menu only does so under --json; TASKLIST_OUTPUT
// applies to the companion commands.
func jsonErrors(cmd *cobra.Command) bool {
	if flagJSON {
		return true
	}
	if cmd == nil || cmd == rootCmd {
		return false
	}
	return output.FromEnv() == output.FormatJSON
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON, flagCompact)
}

// recorder returns the activity log configured for this run.
func recorder() activity.Recorder {
	path := cfg.ActivityPath()
	if path == "" {
		return activity.Nop{}
	}
	return activity.NewLog(path, func(err error) {
		logger.Warn("activity log", "path", path, "err", err)
	})
}
