package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/abhisek/sixteen/internal/content"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "sixteen", buildVersion())

		c, err := content.Default()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "content %s (schema v%s)\n", c.Version, content.SupportedMajor[1:])
		return nil
	},
}

// buildVersion prefers the ldflags version, then the module version
// recorded by go install.
func buildVersion() string {
	if semver.IsValid(version) {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && semver.IsValid(info.Main.Version) {
		return info.Main.Version
	}
	return version
}
