package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/steelform/internal/formula"
)

// generationFlags are shared by formula and batch. Values left unset on the
// command line fall back to the options file.
type generationFlags struct {
	genType    formula.GenerationType
	accuracy   formula.Accuracy
	pi         formula.PiStyle
	excludeTop bool
	truncate   bool
	overwrite  bool
}

func (f *generationFlags) register(cmd *cobra.Command) {
	cmd.Flags().VarP(&f.genType, "type", "t", "What to generate: area, weight, stiffener")
	cmd.Flags().VarP(&f.accuracy, "accuracy", "a", "Accuracy tier: roughly, precisely, gb")
	cmd.Flags().Var(&f.pi, "pi", "π rendering: func (PI()) or num (3.14)")
	cmd.Flags().BoolVar(&f.excludeTop, "exclude-top", false, "Leave the top face out of unit area")
	cmd.Flags().BoolVar(&f.truncate, "truncate", false, "Round stiffener dimensions to 0.5 mm")
	cmd.Flags().BoolVar(&f.overwrite, "overwrite", false, "Overwrite occupied target cells (batch)")
}

// option merges the command line over the configured defaults.
func (f *generationFlags) option(cmd *cobra.Command) formula.GenerationOption {
	opt := cfg.Generation
	flags := cmd.Flags()
	if flags.Changed("type") {
		opt.Type = f.genType
	}
	if flags.Changed("accuracy") {
		opt.Accuracy = f.accuracy
	}
	if flags.Changed("pi") {
		opt.Pi = f.pi
	}
	if flags.Changed("exclude-top") {
		opt.ExcludeTopSurface = f.excludeTop
	}
	if flags.Changed("truncate") {
		opt.TruncatedRounding = f.truncate
	}
	if flags.Changed("overwrite") {
		opt.OverwriteExisting = f.overwrite
	}
	return opt
}
