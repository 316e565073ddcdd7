// Package pipeline runs one reconciliation: load settings and both exports
// through a source, map them, and reconcile.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mileagelog/mileagelog/internal/config"
	"github.com/mileagelog/mileagelog/internal/importer"
	"github.com/mileagelog/mileagelog/internal/model"
	"github.com/mileagelog/mileagelog/internal/reconcile"
	"github.com/mileagelog/mileagelog/internal/source"
)

// ErrInvalidConfig reports settings reconciliation cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// ErrUnreadableInput reports a named export that could not be read while the
// runner is strict.
var ErrUnreadableInput = errors.New("unreadable input")

// Inputs names the two exports to read from the source. An empty name skips
// that dataset.
type Inputs struct {
	Trips string
	Tolls string
}

// Result is the outcome of one run.
type Result struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Inputs    Inputs
	Settings  config.Settings
	Ledger    model.Ledger
	TripRows  int // records mapped from the trips export
	TollRows  int // records mapped from the tolls export
}

// Runner executes pipeline runs against a source.
type Runner struct {
	// Strict fails the run when a named export cannot be read instead of
	// reconciling without it.
	Strict bool

	src      source.Source
	logger   *slog.Logger
	location *time.Location
	now      func() time.Time
}

// NewRunner creates a Runner. Timestamps in the exports are read in loc; nil
// means time.Local.
func NewRunner(src source.Source, logger *slog.Logger, loc *time.Location) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{src: src, logger: logger, location: loc, now: time.Now}
}

// LoadSettings reads and parses the named settings file from the source.
func (r *Runner) LoadSettings(ctx context.Context, name string) (config.Settings, error) {
	text, err := r.src.ReadText(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return config.Parse([]byte(text))
}

// Run loads both exports concurrently and reconciles them. An export that
// cannot be read is logged and contributes no rows, unless the runner is
// strict; an export that cannot be tokenized fails the run.
func (r *Runner) Run(ctx context.Context, settings config.Settings, in Inputs) (*Result, error) {
	res := &Result{
		RunID:     uuid.New(),
		StartedAt: r.now(),
		Inputs:    in,
		Settings:  settings,
	}
	log := r.logger.With("run_id", res.RunID.String())

	for _, problem := range settings.Validate() {
		if problem.Fatal {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, problem)
		}
		log.Warn("config problem", "key", problem.Key, "problem", problem.Description)
	}

	parsers, err := importer.FromSettings(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var trips, tolls []model.Record
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := r.load(gctx, log, parsers.Get(importer.FormatTrips), in.Trips)
		trips = recs
		return err
	})
	g.Go(func() error {
		recs, err := r.load(gctx, log, parsers.Get(importer.FormatTolls), in.Tolls)
		tolls = recs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts := reconcile.OptionsFrom(settings)
	opts.Location = r.location
	res.Ledger = reconcile.Reconcile(trips, tolls, opts)
	res.TripRows = len(trips)
	res.TollRows = len(tolls)

	log.Info("reconciled",
		"trips", len(res.Ledger.Trips),
		"skipped_trips", res.Ledger.SkippedTrips,
		"skipped_tolls", res.Ledger.SkippedTolls,
		"total_miles", model.FormatFixed(res.Ledger.TotalMiles, 1),
		"total_tolls", res.Ledger.TotalTolls.StringFixed(2),
	)
	return res, nil
}

func (r *Runner) load(ctx context.Context, log *slog.Logger, p importer.Parser, name string) ([]model.Record, error) {
	if name == "" {
		log.Warn("no input given", "dataset", p.Format())
		return nil, nil
	}

	text, err := r.src.ReadText(ctx, name)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if r.Strict {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableInput, p.Format(), err)
		}
		log.Warn("skipping unreadable input", "dataset", p.Format(), "name", name, "error", err)
		return nil, nil
	}

	recs, err := p.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	log.Debug("loaded input", "dataset", p.Format(), "name", name, "records", len(recs))
	return recs, nil
}
