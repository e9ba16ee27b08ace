package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/steelform/internal/batch"
	"github.com/alexiusacademia/steelform/internal/category"
)

var (
	batchFlags   generationFlags
	batchInput   string
	batchOutput  string
	batchFilter  string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate formulas for a list of cells",
	Long: `Process a list of cells, one per line, the way a spreadsheet selection
is walked. A tab separates the designation from the current content of the
target cell; occupied targets are kept unless --overwrite is given.

Output is tab separated: text, output, status.

Examples:
  steelform batch -f cells.tsv -o formulas.tsv
  steelform batch -t weight -a gb --filter "Channel,I-beam/Series a" < cells.tsv`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchFlags.register(batchCmd)
	batchCmd.Flags().StringVarP(&batchInput, "file", "f", "", "Input file (default stdin)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Output file (default stdout)")
	batchCmd.Flags().StringVar(&batchFilter, "filter", "", `Category filter, e.g. "Angle/Equal,Channel"`)
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent workers (default from options file)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	opt := batchFlags.option(cmd)

	selection := cfg.Filter
	if cmd.Flags().Changed("filter") {
		selection = batchFilter
	}
	var filter *category.Filter
	if selection != "" {
		f, err := eng.registry.ParseFilter(selection)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
		filter = f
	}

	workers := cfg.Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}

	var in io.Reader = cmd.InOrStdin()
	if batchInput != "" {
		f, err := os.Open(batchInput)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	cells, err := batch.ReadCells(in)
	if err != nil {
		return err
	}
	logger.Debug("Cells loaded",
		zap.Int("count", len(cells)),
		zap.Stringer("type", opt.Type),
		zap.Stringer("accuracy", opt.Accuracy),
		zap.Int("workers", workers))

	proc := batch.NewProcessor(eng.parser, eng.registry, eng.synth, logger, workers)
	results, err := proc.Run(cmd.Context(), cells, opt, filter)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if batchOutput != "" {
		f, err := os.Create(batchOutput)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := batch.WriteResults(out, results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if batchOutput != "" {
		printSummary(cmd.OutOrStdout(), batch.Summarize(results))
	}
	return nil
}

func printSummary(out io.Writer, s batch.Summary) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══ BATCH SUMMARY ═══")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cells\t%d\n", s.Total)
	for _, st := range []batch.Status{
		batch.StatusWritten,
		batch.StatusKeptExisting,
		batch.StatusFiltered,
		batch.StatusUnsupported,
		batch.StatusMismatch,
		batch.StatusBlank,
	} {
		if n := s.Counts[st]; n > 0 {
			fmt.Fprintf(w, "  %s\t%d\n", st, n)
		}
	}
	w.Flush()
	fmt.Fprintln(out)
}
