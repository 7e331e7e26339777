package cmd

import (
	"fmt"

	"github.com/matheuskafuri/readlater/internal/update"
	"github.com/spf13/cobra"
)

var flagVersionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "readlater %s (commit: %s, built: %s)\n", version, commit, date)
		if !flagVersionCheck {
			return
		}
		if r := update.Check(cmd.Context(), version); r != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "A newer version is available: %s\n", r.LatestVersion)
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&flagVersionCheck, "check", false, "check for a newer release")
}
