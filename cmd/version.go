package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/steelform/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of steelform",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "steelform v%s\n", version.Version)
		fmt.Fprintf(out, "Build: %s (%s)\n", version.GitCommit, version.BuildTime)
		fmt.Fprintln(out, "Standard data: GB/T 706, GB/T 11263, GB/T 9945")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
