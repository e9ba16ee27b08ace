package cmd

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/steelform/internal/formula"
	"github.com/alexiusacademia/steelform/internal/gb"
	"github.com/alexiusacademia/steelform/internal/profile"
)

var (
	formulaFlags generationFlags
	formulaValue bool
)

var formulaCmd = &cobra.Command{
	Use:   "formula TEXT...",
	Short: "Generate area, weight or stiffener text for designations",
	Long: `Generate the text a spreadsheet cell would receive for each designation.

Unset flags fall back to the "generation" section of the options file.

Examples:
  steelform formula L50x5
  steelform formula -t weight -a gb "[20a" I25b
  steelform formula -t area --exclude-top --pi num HN200x100x5.5x8
  steelform formula -t stiffener --truncate L50.37x50.37x5.12`,
	Args: cobra.MinimumNArgs(1),
	Run:  runFormula,
}

func init() {
	rootCmd.AddCommand(formulaCmd)
	formulaFlags.register(formulaCmd)
	formulaCmd.Flags().BoolVar(&formulaValue, "value", false, "Also print the evaluated value")
}

func runFormula(cmd *cobra.Command, args []string) {
	opt := formulaFlags.option(cmd)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "═══ %s / %s / %s ═══\n", opt.Type, opt.Accuracy, opt.Pi)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, text := range args {
		p, err := eng.parser.Parse(text)
		if err != nil {
			fmt.Fprintf(w, "  %s\t✗ %v\n", text, err)
			continue
		}
		result := eng.synth.Synthesize(p, opt)
		if result == "" {
			fmt.Fprintf(w, "  %s\t(no %s formula for %s)\n", text, opt.Accuracy, p.Shape())
			continue
		}
		if formulaValue && opt.Type != formula.Stiffener {
			fmt.Fprintf(w, "  %s\t%s\t= %s\n", text, result, evaluate(p, opt))
			continue
		}
		fmt.Fprintf(w, "  %s\t%s\n", text, result)
	}
	w.Flush()
	fmt.Fprintln(out)
}

func evaluate(p profile.Profile, opt formula.GenerationOption) string {
	var (
		f  formula.Formula
		ok bool
	)
	switch opt.Type {
	case formula.UnitArea:
		f, ok = eng.synth.Area(p, opt.Accuracy, opt.ExcludeTopSurface)
	case formula.UnitWeight:
		f, ok = eng.synth.Weight(p, opt.Accuracy)
	}
	if !ok {
		return "-"
	}
	return gb.FormatNumber(math.Round(f.Value()*1e6) / 1e6)
}
