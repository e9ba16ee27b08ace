// Package batch applies the parser and synthesizer to a list of cells, the
// way a spreadsheet host walks a selection: one result per cell, failures
// recorded and skipped.
package batch

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/steelform/internal/category"
	"github.com/alexiusacademia/steelform/internal/formula"
	"github.com/alexiusacademia/steelform/internal/profile"
)

// Cell is one source value and the current content of its target cell.
type Cell struct {
	Text     string
	Existing string
}

// Status records what happened to a cell.
type Status int

const (
	StatusPending      Status = iota // not processed (run cancelled)
	StatusWritten                    // output produced
	StatusBlank                      // source cell empty
	StatusMismatch                   // text is not a profile
	StatusUnsupported                // no formula for the requested tier
	StatusFiltered                   // outside the category filter
	StatusKeptExisting               // target occupied and overwrite disabled
)

var statusNames = []string{"pending", "written", "blank", "mismatch", "unsupported", "filtered", "kept"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Result is the outcome for one cell.
type Result struct {
	Index  int
	Cell   Cell
	Output string
	Status Status
	Offset formula.Offset
	Err    error
}

// Processor is safe for concurrent use.
type Processor struct {
	parser   *profile.Parser
	registry *category.Registry
	synth    *formula.Synthesizer
	logger   *zap.Logger
	workers  int
}

// NewProcessor wires the engine components. A nil logger disables logging.
func NewProcessor(parser *profile.Parser, registry *category.Registry, synth *formula.Synthesizer, logger *zap.Logger, workers int) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		parser:   parser,
		registry: registry,
		synth:    synth,
		logger:   logger,
		workers:  workers,
	}
}

// Process handles one cell. filter may be nil to accept every category.
func (p *Processor) Process(index int, cell Cell, opt formula.GenerationOption, filter *category.Filter) Result {
	res := Result{Index: index, Cell: cell, Offset: opt.TargetOffset}

	if strings.TrimSpace(cell.Text) == "" {
		res.Status = StatusBlank
		return res
	}
	if filter != nil && !filter.Matches(p.registry, cell.Text) {
		res.Status = StatusFiltered
		return res
	}
	if cell.Existing != "" && !opt.OverwriteExisting {
		res.Status = StatusKeptExisting
		p.logger.Debug("Target cell occupied", zap.Int("index", index), zap.String("existing", cell.Existing))
		return res
	}

	prof, err := p.parser.Parse(cell.Text)
	if err != nil {
		res.Status = StatusMismatch
		res.Err = err
		p.logger.Debug("Skipping cell", zap.Int("index", index), zap.Error(err))
		return res
	}

	res.Output = p.synth.Synthesize(prof, opt)
	if res.Output == "" {
		res.Status = StatusUnsupported
		p.logger.Debug("No formula for profile",
			zap.Int("index", index),
			zap.Stringer("profile", prof),
			zap.Stringer("type", opt.Type),
			zap.Stringer("accuracy", opt.Accuracy))
		return res
	}
	res.Status = StatusWritten
	return res
}

// Run processes cells concurrently and returns results in input order. It
// stops between cells when ctx is cancelled and returns ctx.Err(); cells
// already processed keep their results.
func (p *Processor) Run(ctx context.Context, cells []Cell, opt formula.GenerationOption, filter *category.Filter) ([]Result, error) {
	results := make([]Result, len(cells))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, cell := range cells {
		if gctx.Err() != nil {
			break
		}
		i, cell := i, cell
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.Process(i, cell, opt, filter)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return results, err
	}

	s := Summarize(results)
	p.logger.Info("Batch finished",
		zap.Int("cells", s.Total),
		zap.Int("written", s.Counts[StatusWritten]),
		zap.Int("skipped", s.Total-s.Counts[StatusWritten]),
		zap.Bool("cancelled", err != nil))
	return results, err
}

// Summary counts results by status.
type Summary struct {
	Total  int
	Counts map[Status]int
}

// Summarize counts results by status.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results), Counts: make(map[Status]int)}
	for _, r := range results {
		s.Counts[r.Status]++
	}
	return s
}
