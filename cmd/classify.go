package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify TEXT...",
	Short: "Resolve designations to their category and classifier",
	Long: `Classify designations into the category/classifier taxonomy used by
filters. Text that does not fully parse may still classify by its prefix.

Examples:
  steelform classify L75x50x6 "2[10" HW200x200x8x12`,
	Args: cobra.MinimumNArgs(1),
	Run:  runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Input\tCategory\tClassifier\tIndex\n")
	fmt.Fprintf(w, "  ─────\t────────\t──────────\t─────\n")
	for _, text := range args {
		shape, label, ok := eng.registry.Classify(text)
		if !ok {
			fmt.Fprintf(w, "  %s\t-\t-\t-\n", text)
			continue
		}
		ci, ki, _ := eng.registry.Index(shape, label)
		info, _ := eng.registry.Category(shape)
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d/%d\n", text, info.Label, label, ci, ki)
	}
	w.Flush()
}
