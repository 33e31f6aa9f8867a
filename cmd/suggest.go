package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kamusis/painmatch/internal/catalog"
	"github.com/kamusis/painmatch/internal/match"
	"github.com/spf13/cobra"
)

var (
	flagSuggestInput     string
	flagSuggestPainPoint string
	flagSuggestIndustry  string
	flagSuggestCatalog   string
	flagSuggestThreshold float64
	flagSuggestBoost     float64
	flagSuggestLimit     int
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest catalog features for a pain point (JSON in, JSON out)",
	Long: `Read a JSON request from stdin (or --input) and print ranked feature suggestions.

Request:
  {"pain_point": "refunds take weeks", "context": {"industry": "retail"}}

A request without "pain_point" prints {"error": "..."} and exits 0.`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&flagSuggestInput, "input", "i", "", "Read the request from a file instead of stdin ('-' for stdin)")
	suggestCmd.Flags().StringVar(&flagSuggestPainPoint, "pain-point", "", "Build the request from this text instead of reading JSON")
	suggestCmd.Flags().StringVar(&flagSuggestIndustry, "industry", "", "Industry context, used with --pain-point")
	suggestCmd.Flags().StringVar(&flagSuggestCatalog, "catalog", "", "Catalog file or glob (overrides config)")
	suggestCmd.Flags().Float64Var(&flagSuggestThreshold, "threshold", 0, "Minimum relevance score (overrides config)")
	suggestCmd.Flags().Float64Var(&flagSuggestBoost, "boost", 0, "Industry context boost (overrides config)")
	suggestCmd.Flags().IntVar(&flagSuggestLimit, "limit", 0, "Maximum number of suggestions (0 = all)")
	suggestCmd.MarkFlagsMutuallyExclusive("pain-point", "input")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if cfg.Source != "" {
		log.Debug().Str("path", cfg.Source).Msg("config loaded")
	}

	req, err := readRequest(cmd)
	if err != nil {
		return err
	}

	features, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	log.Debug().Str("catalog", cfg.CatalogPath).Int("features", len(features)).Msg("catalog loaded")

	scorer := match.NewScorer(match.Options{
		Threshold:     cfg.Threshold,
		ContextBoost:  cfg.ContextBoost,
		NoMatchReason: cfg.NoMatchReason(),
		Logger:        &log,
	})
	resp, err := scorer.Suggest(req, features)
	if errors.Is(err, match.ErrMissingPainPoint) {
		return writeJSON(cmd.OutOrStdout(), match.ErrorResult{Error: err.Error()})
	}
	if err != nil {
		return err
	}

	if flagSuggestLimit > 0 && len(resp.SuggestedSolutions) > flagSuggestLimit {
		resp.SuggestedSolutions = resp.SuggestedSolutions[:flagSuggestLimit]
	}
	return writeJSON(cmd.OutOrStdout(), resp)
}

// readRequest builds the request from --pain-point, --input or stdin.
func readRequest(cmd *cobra.Command) (match.Request, error) {
	if flagSuggestPainPoint != "" {
		req := match.Request{PainPoint: flagSuggestPainPoint}
		if flagSuggestIndustry != "" {
			req.Context = map[string]string{match.ContextIndustry: flagSuggestIndustry}
		}
		return req, nil
	}

	var r io.Reader = cmd.InOrStdin()
	if flagSuggestInput != "" && flagSuggestInput != "-" {
		f, err := os.Open(flagSuggestInput)
		if err != nil {
			return match.Request{}, &match.InputError{Err: fmt.Errorf("cannot open %s: %w", flagSuggestInput, err)}
		}
		defer f.Close()
		r = f
	}
	return match.DecodeRequest(r)
}
