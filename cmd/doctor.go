package cmd

import (
	"fmt"
	"strings"

	"github.com/kamusis/painmatch/internal/catalog"
	"github.com/kamusis/painmatch/internal/config"
	"github.com/kamusis/painmatch/internal/match"
	"github.com/spf13/cobra"
)

var flagDoctorCatalog string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and catalog quality",
	Long: `Check that painmatch's configuration and catalog are usable.
Run this command after editing the catalog, or when suggestions look wrong.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().StringVar(&flagDoctorCatalog, "catalog", "", "Catalog file or glob (overrides config)")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	printSection(out, "painmatch doctor")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Source == "" {
		printMiss(out, "config", "no config file, using defaults (run 'painmatch init' to create one)")
	} else {
		printOK(out, "config", cfg.Source)
	}
	printInfo(out, "config", fmt.Sprintf("threshold=%.2f context_boost=%.2f", cfg.Threshold, cfg.ContextBoost))

	if p, err := config.DotEnvPath(); err == nil {
		if m, err := config.LoadDotEnv(); err != nil {
			printWarn(out, ".env", err.Error())
		} else if len(m) == 0 {
			printMiss(out, ".env", fmt.Sprintf("%s not found or empty", p))
		} else {
			printOK(out, ".env", p)
		}
	}

	features, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	printOK(out, "catalog", fmt.Sprintf("%d features loaded from %s", len(features), cfg.CatalogPath))

	for _, issue := range catalogIssues(features) {
		printWarn(out, issue.feature, issue.msg)
	}
	return nil
}

type catalogIssue struct {
	feature string
	msg     string
}

// catalogIssues reports entries that load fine but are unlikely to ever be suggested
// or that shadow each other.
func catalogIssues(features []catalog.Feature) []catalogIssue {
	var out []catalogIssue
	seen := make(map[string]int, len(features))
	for i, f := range features {
		key := strings.ToLower(strings.TrimSpace(f.Name))
		if j, ok := seen[key]; ok {
			out = append(out, catalogIssue{f.Name, fmt.Sprintf("duplicate feature name (also record %d)", j)})
		} else {
			seen[key] = i
		}
		if len(f.Keywords) == 0 && len(f.PainPointsAddressed) == 0 {
			out = append(out, catalogIssue{f.Name, "no keywords or pain points; only name and description are matched"})
		}
		if len(match.Tokenize(match.FeatureText(f))) == 0 {
			out = append(out, catalogIssue{f.Name, "no matchable words; the feature can only surface through the context boost"})
		}
		if len(f.Categories) == 0 {
			out = append(out, catalogIssue{f.Name, "no categories; industry context can never boost it"})
		}
	}
	return out
}
