package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/rireport/internal/export"
	"github.com/hyperifyio/rireport/internal/manifest"
	"github.com/hyperifyio/rireport/internal/report"
	"github.com/hyperifyio/rireport/internal/rpa"
)

// ErrExtractionFailed is returned by Run when at least one report could not
// be extracted. The per-file errors are logged and joined into the result.
var ErrExtractionFailed = errors.New("report extraction failed")

type App struct {
	cfg       Config
	extractor *report.Extractor
	now       func() time.Time
}

// Outcome records what happened to one input.
type Outcome struct {
	Input    string
	Output   string
	Manifest string
	Rows     int
	Err      error
}

func New(cfg Config) (*App, error) {
	ApplyDefaults(&cfg)
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	strategy, err := report.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	opts := report.DefaultOptions()
	opts.Encoding = cfg.Encoding
	opts.Selection = strategy
	opts.Lenient = cfg.Lenient
	opts.DisableTransferDecoding = cfg.DisableTransferDecoding
	if len(cfg.Columns) > 0 {
		opts.Columns = cfg.Columns
	}
	ex := report.New(opts)
	ex.Logger = log.Logger
	return &App{cfg: cfg, extractor: ex, now: time.Now}, nil
}

// Run extracts every input in order. A failing input does not stop the batch.
func (a *App) Run(ctx context.Context) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(a.cfg.Inputs))
	var errs []error
	for _, in := range a.cfg.Inputs {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		o := a.runOne(ctx, rpa.PathSource(in))
		if o.Err != nil {
			ev := log.Error().Err(o.Err).Str("input", o.Input)
			if k := report.KindOf(o.Err); k != "" {
				ev = ev.Str("kind", string(k))
			}
			ev.Msg("extraction failed")
			errs = append(errs, o.Err)
		} else {
			log.Info().Str("input", o.Input).Str("output", o.Output).Int("rows", o.Rows).Msg("report extracted")
		}
		outcomes = append(outcomes, o)
	}
	if len(errs) > 0 {
		return outcomes, fmt.Errorf("%w: %d of %d: %w", ErrExtractionFailed, len(errs), len(a.cfg.Inputs), errors.Join(errs...))
	}
	return outcomes, nil
}

func (a *App) runOne(ctx context.Context, src rpa.ReportSource) Outcome {
	path, err := src.Download(ctx)
	if err != nil {
		return Outcome{Err: fmt.Errorf("locate report: %w", err)}
	}
	o := Outcome{Input: path}
	res, err := a.extractor.ExtractReport(path)
	if err != nil {
		o.Err = err
		return o
	}
	o.Rows = res.Records.Len()

	format, out, err := a.outputFor(path)
	if err != nil {
		o.Err = err
		return o
	}
	var sink rpa.RecordSink = export.FileSink{Path: out, Format: format}
	if err := sink.Consume(ctx, res.Records); err != nil {
		o.Err = fmt.Errorf("write %s: %w", out, err)
		return o
	}
	o.Output = out

	if a.cfg.Manifest {
		m := manifest.Build(res, out, BuildVersion, a.now())
		mp := manifest.PathFor(out)
		if err := manifest.Write(mp, m); err != nil {
			o.Err = err
			return o
		}
		o.Manifest = mp
		log.Debug().Str("manifest", mp).Str("run_id", m.RunID).Msg("manifest written")
	}
	return o
}
