package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/steelform/internal/diagram"
	"github.com/alexiusacademia/steelform/internal/gb"
	"github.com/alexiusacademia/steelform/internal/geometry"
)

var (
	sketchOutput string
	sketchWidth  int
)

var sketchCmd = &cobra.Command{
	Use:   "sketch TEXT",
	Short: "Draw the cross-section of a designation",
	Long: `Draw the cross-section of a profile with its geometric properties.

Examples:
  steelform sketch I25b
  steelform sketch "2[10" --width 60
  steelform sketch HN200x100x5.5x8 -o hn200.png`,
	Args: cobra.ExactArgs(1),
	RunE: runSketch,
}

func init() {
	rootCmd.AddCommand(sketchCmd)
	sketchCmd.Flags().StringVarP(&sketchOutput, "output", "o", "", "Export to image (png, svg, pdf)")
	sketchCmd.Flags().IntVar(&sketchWidth, "width", 40, "Sketch width in characters")
}

func runSketch(cmd *cobra.Command, args []string) error {
	p, err := eng.parser.Parse(args[0])
	if err != nil {
		return err
	}

	outline := geometry.OutlineOf(p)
	area := outline.Area()
	data := diagram.ProfileDiagramData{
		Title:     p.String(),
		Outline:   outline,
		Area:      area,
		Perimeter: outline.Perimeter(),
		Weight:    gb.WeightPerMetre(area),
	}

	out := cmd.OutOrStdout()
	if sketchOutput != "" {
		if err := diagram.ExportProfileDiagram(data, sketchOutput); err != nil {
			return fmt.Errorf("failed to export sketch: %w", err)
		}
		fmt.Fprintf(out, "✓ Sketch exported to: %s\n", sketchOutput)
		return nil
	}

	fmt.Fprint(out, diagram.DrawASCIIProfile(data, sketchWidth))
	fmt.Fprintln(out)
	fmt.Fprint(out, diagram.DrawSummaryBox("SECTION PROPERTIES", []string{
		fmt.Sprintf("Area:      %10.2f mm²", data.Area),
		fmt.Sprintf("Perimeter: %10.2f mm", data.Perimeter),
		fmt.Sprintf("Weight:    %10.3f kg/m", data.Weight),
	}))
	return nil
}
