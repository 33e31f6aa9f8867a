package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kamusis/painmatch/internal/catalog"
	"github.com/kamusis/painmatch/internal/config"
	"github.com/kamusis/painmatch/internal/match"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Exit statuses.
const (
	exitError  = 1
	exitConfig = 2 // catalog missing or unusable
	exitInput  = 3 // request missing or not valid JSON
)

var (
	flagConfigPath string
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:           "painmatch",
	Short:         "Match customer pain points to product features",
	SilenceUsage:  true, // don't print usage on operational errors
	SilenceErrors: true,
	Long: `painmatch scores a free-text pain point against a feature catalog and
prints the best matching features as JSON.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Config file (default ~/.painmatch/painmatch.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Print debug logs to stderr")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printErr(rootCmd.ErrOrStderr(), "", err.Error())
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error returned by a command to the process exit status.
func exitCode(err error) int {
	var cerr *catalog.ConfigError
	var ierr *match.InputError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &cerr):
		return exitConfig
	case errors.As(err, &ierr):
		return exitInput
	default:
		return exitError
	}
}

// loadConfig loads the effective config and applies the catalog/scoring flags shared by
// several commands.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	flags := cmd.Flags()
	if f := flags.Lookup("catalog"); f != nil && f.Changed {
		cfg.CatalogPath, err = config.ExpandPath(f.Value.String())
		if err != nil {
			return nil, err
		}
	}
	if f := flags.Lookup("threshold"); f != nil && f.Changed {
		if cfg.Threshold, err = flags.GetFloat64("threshold"); err != nil {
			return nil, err
		}
	}
	if f := flags.Lookup("boost"); f != nil && f.Changed {
		if cfg.ContextBoost, err = flags.GetFloat64("boost"); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns a console logger on w. --debug forces debug level.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	if flagDebug {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
