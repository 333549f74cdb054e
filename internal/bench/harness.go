// Package bench drives the timed benchmark loop: one discarded warmup pass
// over the query set followed by a fixed number of measured iterations.
package bench

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/go-fuzzy-bench/internal/errors"
	"github.com/gcbaptista/go-fuzzy-bench/internal/scoring"
	"github.com/gcbaptista/go-fuzzy-bench/model"
)

// Options configure a benchmark run.
type Options struct {
	// Iterations is the number of timed passes over the query set. Must be
	// at least 1; the warmup pass is extra and never measured.
	Iterations int
	// Workers bounds how many queries are scored concurrently within one
	// iteration. Values below 1 are treated as 1, which reproduces the
	// serial reference behavior.
	Workers int
	// OnWarmup, when set, is called once after the warmup pass completes.
	OnWarmup func()
	// OnIteration, when set, is called after each timed iteration with the
	// 1-based iteration number and the iteration's total milliseconds.
	OnIteration func(iteration int, totalMs float64)
}

// Timing accumulates the measurements of a benchmark run.
type Timing struct {
	// QueryMs[q] is query q's per-iteration durations in milliseconds, in
	// iteration order. Rows follow query input order.
	QueryMs [][]float64
	// IterationTotalMs[i] is the summed per-query duration of iteration i.
	IterationTotalMs []float64
	// MatchCounts[q] is query q's match count, recorded during the first
	// timed iteration. Later iterations are assumed to agree.
	MatchCounts []int
}

// Runner executes the warmup and timed iterations for one scoring service.
type Runner struct {
	service *scoring.Service
	queries []model.Query
	opts    Options
}

// NewRunner creates a new benchmark Runner.
func NewRunner(service *scoring.Service, queries []model.Query, opts Options) (*Runner, error) {
	if service == nil {
		return nil, fmt.Errorf("scoring service cannot be nil")
	}
	if opts.Iterations < 1 {
		return nil, errors.NewValidationError("iterations", fmt.Sprintf("must be at least 1, got %d", opts.Iterations))
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Runner{service: service, queries: queries, opts: opts}, nil
}

// Run executes one warmup pass and then the timed iterations. Warmup
// results and durations are discarded so first-touch costs never reach the
// timing matrix.
func (r *Runner) Run(ctx context.Context) (*Timing, error) {
	if _, _, err := r.runPass(ctx); err != nil {
		return nil, err
	}
	if r.opts.OnWarmup != nil {
		r.opts.OnWarmup()
	}

	timing := &Timing{
		QueryMs:          make([][]float64, len(r.queries)),
		IterationTotalMs: make([]float64, 0, r.opts.Iterations),
		MatchCounts:      make([]int, len(r.queries)),
	}
	for q := range timing.QueryMs {
		timing.QueryMs[q] = make([]float64, 0, r.opts.Iterations)
	}

	for iter := 0; iter < r.opts.Iterations; iter++ {
		durations, counts, err := r.runPass(ctx)
		if err != nil {
			return nil, err
		}

		total := 0.0
		for q, d := range durations {
			timing.QueryMs[q] = append(timing.QueryMs[q], d)
			total += d
		}
		timing.IterationTotalMs = append(timing.IterationTotalMs, total)
		if iter == 0 {
			copy(timing.MatchCounts, counts)
		}

		if r.opts.OnIteration != nil {
			r.opts.OnIteration(iter+1, total)
		}
	}

	return timing, nil
}

// runPass scores every query once, returning per-query durations in
// milliseconds and per-query match counts, both indexed by query input
// order.
func (r *Runner) runPass(ctx context.Context) ([]float64, []int, error) {
	durations := make([]float64, len(r.queries))
	counts := make([]int, len(r.queries))

	if r.opts.Workers == 1 {
		for q, query := range r.queries {
			if err := ctx.Err(); err != nil {
				return nil, nil, fmt.Errorf("benchmark cancelled: %w", err)
			}
			start := time.Now()
			result := r.service.ScoreQuery(query)
			durations[q] = float64(time.Since(start).Nanoseconds()) / 1e6
			counts[q] = result.MatchCount
		}
		return durations, counts, nil
	}

	// Each query owns its slot in the output slices, so workers share no
	// mutable state.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)
	for q, query := range r.queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			result := r.service.ScoreQuery(query)
			durations[q] = float64(time.Since(start).Nanoseconds()) / 1e6
			counts[q] = result.MatchCount
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("benchmark cancelled: %w", err)
	}
	return durations, counts, nil
}
