package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/kamusis/painmatch/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	flagCatalogPath string
	flagCatalogJSON bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate the feature catalog and list its entries",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&flagCatalogPath, "catalog", "", "Catalog file or glob (overrides config)")
	catalogCmd.Flags().BoolVar(&flagCatalogJSON, "json", false, "Print the validated catalog as JSON")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	features, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagCatalogJSON {
		return writeJSON(out, features)
	}

	printSection(out, "Catalog")
	if len(features) == 0 {
		printMiss(out, "", fmt.Sprintf("no features in %s", cfg.CatalogPath))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tFEATURE\tCATEGORIES\tKEYWORDS\n")
	for i, f := range features {
		fmt.Fprintf(w, "  %d.\t%s\t%s\t%d\n", i+1, f.Name, strings.Join(f.Categories, ", "), len(f.Keywords))
	}
	_ = w.Flush()

	fmt.Fprintln(out)
	printOK(out, "", fmt.Sprintf("%d features loaded from %s", len(features), cfg.CatalogPath))
	return nil
}
