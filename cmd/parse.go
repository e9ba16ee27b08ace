package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/steelform/internal/gb"
)

var parseCmd = &cobra.Command{
	Use:   "parse TEXT...",
	Short: "Parse profile designations into shape and dimensions",
	Long: `Parse one or more profile designations and show the recognized
shape, classifier and dimensions (mm).

Examples:
  steelform parse L50x5 "[20a" HN200x100x5.5x8
  steelform parse "Φ89×4" PL10x200`,
	Args: cobra.MinimumNArgs(1),
	Run:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Input\tShape\tClassifier\tDimensions\tDesignation\n")
	fmt.Fprintf(w, "  ─────\t─────\t──────────\t──────────\t───────────\n")
	for _, text := range args {
		p, err := eng.parser.Parse(text)
		if err != nil {
			fmt.Fprintf(w, "  %s\t✗\t\t%v\t\n", text, err)
			continue
		}
		names := p.Shape().DimensionNames()
		dims := make([]string, len(names))
		for i, name := range names {
			dims[i] = name + "=" + gb.FormatNumber(p.Dim(i))
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", text, p.Shape(), p.Variant(), strings.Join(dims, " "), p.Designation())
	}
	w.Flush()
}
