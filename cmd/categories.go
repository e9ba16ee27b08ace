package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List profile categories and their classifiers",
	Run:   runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "PROFILE CATEGORIES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCategory\tShape\tClassifiers\n")
	fmt.Fprintf(w, "  ─\t────────\t─────\t───────────\n")
	for i, c := range eng.registry.All() {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", i, c.Label, c.Shape, strings.Join(c.Classifiers, ", "))
	}
	w.Flush()
	fmt.Fprintln(out)
}
