package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexiusacademia/steelform/internal/category"
	"github.com/alexiusacademia/steelform/internal/config"
	"github.com/alexiusacademia/steelform/internal/formula"
	"github.com/alexiusacademia/steelform/internal/gb"
	"github.com/alexiusacademia/steelform/internal/profile"
	"github.com/alexiusacademia/steelform/internal/version"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
	eng    *engine
)

// engine holds the immutable components, built once per process.
type engine struct {
	tables   *gb.Tables
	parser   *profile.Parser
	registry *category.Registry
	synth    *formula.Synthesizer
}

func newEngine() *engine {
	tables := gb.NewTables()
	parser := profile.NewParser(tables)
	return &engine{
		tables:   tables,
		parser:   parser,
		registry: category.NewRegistry(parser),
		synth:    formula.NewSynthesizer(tables),
	}
}

var rootCmd = &cobra.Command{
	Use:   "steelform",
	Short: "Steel profile formula generator",
	Long: `steelform - Steel profile classification and formula synthesis

Reads structural-steel designations such as L50x5, [20a, I25b,
HN200x100x5.5x8, Φ89x4, □100x50x4, PL10x200 or HP200x10 and writes
spreadsheet formulas for:
  - Unit surface area (m²/m), optionally without the top face
  - Unit weight (kg/m)
  - Normalized stiffener designations

Formulas come in three accuracy tiers: a rough approximation, the exact
geometric formula, or the value tabulated in the GB standards
(GB/T 706, GB/T 11263, GB/T 9945).`,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   steelform v%-45s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Steel Profile Formula Generator                         ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintf(out, "    • %d profile families with classifier filters\n", eng.registry.Len())
		fmt.Fprintln(out, "    • Unit area and unit weight formulas in three accuracy tiers")
		fmt.Fprintln(out, "    • Canonical stiffener designations")
		fmt.Fprintln(out, "    • Batch processing of cell lists")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'steelform --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "Options file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// setup loads the options file, builds the logger and the engine.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	logger, err = newLogger(cfg.LogLevel, verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	eng = newEngine()
	logger.Debug("Engine ready",
		zap.String("config", cfgFile),
		zap.Int("categories", eng.registry.Len()),
		zap.Strings("grammars", eng.parser.Grammars()))
	return nil
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
