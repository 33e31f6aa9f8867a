package cmd

import (
	"fmt"
	"os"

	"github.com/kamusis/painmatch/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config and .env template",
	Long: `Create ~/.painmatch/painmatch.yaml (or the file given with --config) with the
default settings, and ~/.painmatch/.env listing the environment overrides.

Existing files are left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var flagInitForce bool

func init() {
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	cfgPath := flagConfigPath
	if cfgPath == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return err
		}
		cfgPath = p
	}

	// ── 1. Write painmatch.yaml if missing ───────────────────────────────────
	_, statErr := os.Stat(cfgPath)
	switch {
	case statErr == nil && !flagInitForce:
		printInfo(out, "", fmt.Sprintf("config already exists: %s (use --force to overwrite)", cfgPath))
	case statErr == nil || os.IsNotExist(statErr):
		if err := config.Save(cfgPath, config.DefaultConfig()); err != nil {
			return err
		}
		printOK(out, "", fmt.Sprintf("config written: %s", cfgPath))
	default:
		return fmt.Errorf("cannot stat %s: %w", cfgPath, statErr)
	}

	// ── 2. Write .env template if missing ────────────────────────────────────
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	p, err := config.DotEnvPath()
	if err != nil {
		return err
	}
	printOK(out, "", fmt.Sprintf("env template ready: %s", p))
	return nil
}
