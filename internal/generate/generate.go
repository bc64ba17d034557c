// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate runs one deck document through load, build and save, and
// records the outcome. It is the library entry point behind `deckgen build`.
package generate

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/deckgen/internal/deck"
	"github.com/pdiddy/deckgen/internal/load"
	"github.com/pdiddy/deckgen/internal/picture"
	"github.com/pdiddy/deckgen/pkg/types"
)

// Recorder stores run records. *history.Store implements it.
type Recorder interface {
	Record(ctx context.Context, r types.RunRecord) error
}

// Generator turns deck documents into .pptx files.
type Generator struct {
	cfg      types.Config
	log      logrus.FieldLogger
	pictures deck.PictureFetcher
	history  Recorder
	now      func() time.Time
	newID    func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithHistory records every run, successful or not, in r.
func WithHistory(r Recorder) Option {
	return func(g *Generator) { g.history = r }
}

// WithPictures replaces the picture source built from the image config.
func WithPictures(p deck.PictureFetcher) Option {
	return func(g *Generator) { g.pictures = p }
}

// WithClock sets the time source used for run timestamps and the output
// filename.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New returns a Generator for cfg. Zero config fields take their defaults.
func New(cfg types.Config, log logrus.FieldLogger, opts ...Option) *Generator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	g := &Generator{
		cfg:   cfg.WithDefaults(),
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.pictures == nil {
		g.pictures = picture.NewSource(g.cfg.Images, nil, log)
	}
	return g
}

// Generate builds the deck at input and returns the written filename. On a
// fatal error it logs the error chain once and returns "" with the error;
// no output file is left behind.
func (g *Generator) Generate(ctx context.Context, input string) (string, error) {
	rec, err := g.Run(ctx, input)
	return rec.Output, err
}

// Run is Generate returning the full run record.
func (g *Generator) Run(ctx context.Context, input string) (types.RunRecord, error) {
	rec := types.RunRecord{
		ID:        g.newID(),
		Input:     input,
		StartedAt: g.now(),
	}
	log := g.log.WithFields(logrus.Fields{"run_id": rec.ID, "path": input})

	output, stats, err := g.build(ctx, input, log)
	rec.FinishedAt = g.now()
	rec.Stats = stats

	if err != nil {
		rec.Status = types.RunFailed
		rec.Error = err.Error()
		log.WithError(err).WithField("trace", Trace(err)).Error("generation failed")
		g.record(ctx, rec, log)
		return rec, err
	}

	rec.Status = types.RunSucceeded
	rec.Output = output
	log.WithFields(logrus.Fields{
		"output": output,
		"slides": stats.Slides,
	}).Infof("presentation generated with %d slides", stats.Slides)
	g.record(ctx, rec, log)
	return rec, nil
}

func (g *Generator) build(ctx context.Context, input string, log logrus.FieldLogger) (string, types.RunStats, error) {
	d, err := load.Load(input)
	if err != nil {
		return "", types.RunStats{}, err
	}
	log.WithField("slides", len(d.Slides)).Debug("deck loaded")

	res, err := deck.NewBuilder(g.pictures, log, g.cfg.TOCTitle).Build(ctx, d)
	if err != nil {
		return "", types.RunStats{}, err
	}

	path, err := deck.Save(res.Presentation, g.cfg.Dir, g.cfg.FilenamePrefix, g.now())
	if err != nil {
		return "", res.Stats, err
	}
	return path, res.Stats, nil
}

// record stores the run. A history failure never fails the run.
func (g *Generator) record(ctx context.Context, rec types.RunRecord, log logrus.FieldLogger) {
	if g.history == nil {
		return
	}
	if err := g.history.Record(context.WithoutCancel(ctx), rec); err != nil {
		log.WithError(err).Warn("recording run history")
	}
}

// Trace flattens an error chain into its messages, outermost first.
func Trace(err error) []string {
	var out []string
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		out = append(out, e.Error())
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				if isSentinel(inner) {
					continue
				}
				walk(inner)
			}
		default:
			if inner := errors.Unwrap(e); !isSentinel(inner) {
				walk(inner)
			}
		}
	}
	walk(err)
	return out
}

// isSentinel reports whether e is one of the classification sentinels the
// typed errors carry alongside their cause.
func isSentinel(e error) bool {
	for _, s := range []error{types.ErrParse, types.ErrMissingKey, types.ErrStructural, types.ErrImage} {
		if e == s {
			return true
		}
	}
	return false
}
