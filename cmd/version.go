package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/kamusis/painmatch/cmd.version=...".
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

var flagVersionJSON bool

type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show painmatch version and build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&flagVersionJSON, "json", false, "Print build information as JSON")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := currentBuild()
	w := cmd.OutOrStdout()
	if flagVersionJSON {
		return writeJSON(w, info)
	}
	fmt.Fprintf(w, "Version:    %s\n", info.Version)
	fmt.Fprintf(w, "Commit:     %s\n", info.Commit)
	fmt.Fprintf(w, "Build Date: %s\n", info.BuildDate)
	fmt.Fprintf(w, "Go Version: %s\n", info.GoVersion)
	fmt.Fprintf(w, "OS/Arch:    %s\n", info.Platform)
	return nil
}

// currentBuild fills commit and date from the embedded VCS stamp when ldflags left
// them empty, as happens with plain `go install`.
func currentBuild() buildInfo {
	rev, date := commit, buildDate
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && rev == "":
				rev = s.Value
			case s.Key == "vcs.time" && date == "":
				date = s.Value
			}
		}
	}
	return buildInfo{
		Version:   version,
		Commit:    emptyAsNA(rev),
		BuildDate: emptyAsNA(date),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func emptyAsNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
