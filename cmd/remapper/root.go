package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"range-remapper/internal/almanac"
	"range-remapper/internal/document"
	"range-remapper/internal/logger"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	logFile  string
	logLevel string

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "remapper",
	Short: "Walk almanac seed ranges through stage maps",
	Long: `remapper reads an almanac document and maps its seeds through every
"<from>-to-<to>" stage map, splitting ranges wherever a rule covers only part
of them, and reports the lowest value that reaches the target stage.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: func(*cobra.Command, []string) error { return finishLog() },
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append JSON logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func execute() {
	if err := runRoot(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRoot executes the command tree. A failed command is logged before the
// log file is released, since cobra skips the post-run hook on error.
func runRoot() error {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("command failed", "err", err)
	}

	if cerr := finishLog(); cerr != nil && err == nil {
		err = cerr
	}

	return err
}

// finishLog releases the log file once; later calls are no-ops.
func finishLog() error {
	fn := closeLog
	closeLog = func() error { return nil }

	return fn()
}

// setupLogging enables logging when --verbose or --log-file is given.
func setupLogging(cmd *cobra.Command, _ []string) error {
	opts := logger.DefaultOptions()

	lvl, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	opts.Level = lvl
	opts.File = logFile
	opts.Enabled = logFile != "" || verbose

	if verbose && !cmd.Flags().Changed("log-level") {
		opts.Level = slog.LevelDebug
	}

	closeFn, err := logger.Init(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	closeLog = closeFn

	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(w io.Writer, format string, args ...any) {
	if !quiet {
		fmt.Fprintf(w, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(w io.Writer, format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(w, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// walkFlags are shared by the commands that walk an almanac.
type walkFlags struct {
	mode   almanac.Mode
	start  string
	target string
}

func (f *walkFlags) register(cmd *cobra.Command) {
	f.mode = almanac.ModeScalar
	cmd.Flags().Var(&f.mode, "mode", "Seed interpretation: scalar or interval")
	cmd.Flags().StringVar(&f.start, "start", "", "Start stage (default: document start, else seed)")
	cmd.Flags().StringVar(&f.target, "target", "", "Target stage (default: document target, else location)")
}

// load reads the document at path and builds its almanac. Flags override the
// document's start and target stages.
func (f *walkFlags) load(path string) (*document.File, *almanac.Almanac, error) {
	logger.Info("loading almanac", "path", path, "mode", f.mode.String())

	doc, err := document.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	if f.start != "" {
		doc.Start = f.start
	}

	if f.target != "" {
		doc.Target = f.target
	}

	a, err := doc.Almanac(document.BuildOptions{Mode: f.mode, Logger: logger.L})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("almanac built", "seeds", len(doc.Seeds), "maps", len(doc.Maps),
		"start", doc.Start, "target", doc.Target)

	if doc.Start != doc.Target && !a.HasStage(doc.Target) {
		logger.Warn("target stage appears in no map; the walk will stop early", "target", doc.Target)
	}

	return doc, a, nil
}
