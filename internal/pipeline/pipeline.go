// Package pipeline runs one delivery request through every stage: load,
// quote, filter, sort and export. It owns the logging and metrics around
// the stages; the stages themselves stay silent.
package pipeline

import (
	"context"
	"logistics/internal/config"
	"logistics/internal/export"
	"logistics/internal/pricing"
	"logistics/internal/quote"
	"logistics/internal/selection"
	"logistics/pkg/domain"
	"logistics/pkg/logger"
	"logistics/pkg/metrics"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Options configure a pipeline run. These settings are typically derived
// from application configuration and then refined by command line flags.
type Options struct {
	// Transport pins the request to one transport kind, overriding the file.
	Transport string
	// Filters are applied in order; an option must satisfy all of them.
	Filters []selection.Predicate
	// Order sorts the kept options. Nil keeps registry order.
	Order selection.Comparator
	// OutputDir is the directory export files are written to.
	OutputDir string
	// OutputName is the file name without extension. Empty derives it from
	// the input file name.
	OutputName string
	// Formats lists the base export formats; each gets its own file.
	Formats []string
	// Transformers wrap every exporter, in application order.
	Transformers []export.Transformer
	// Breakdown also collects the itemized cost of every kept option.
	Breakdown bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	opts := Options{
		OutputDir: cfg.Export.Dir,
		Formats:   append([]string(nil), cfg.Export.Formats...),
	}

	if cfg.Filter.MaxPrice > 0 {
		opts.Filters = append(opts.Filters, selection.MaxPrice(cfg.Filter.MaxPrice))
	}
	if cfg.Filter.MaxHours > 0 {
		opts.Filters = append(opts.Filters, selection.MaxTime(cfg.Filter.MaxHours))
	}
	if cfg.Filter.TransportName != "" {
		p, err := selection.TransportName(cfg.Filter.TransportName)
		if err != nil {
			return Options{}, err
		}
		opts.Filters = append(opts.Filters, p)
	}

	order, err := selection.ParseOrder(cfg.Sort.Order)
	if err != nil {
		return Options{}, err
	}
	opts.Order = order

	compress, err := export.Compression(cfg.Export.Compress)
	if err != nil {
		return Options{}, err
	}
	opts.Transformers = Transformers(compress, cfg.Export.Encrypt, cfg.Export.Passphrase, cfg.Export.EncryptFirst)

	return opts, nil
}

// Transformers orders the optional compression and cipher stages. By
// default the output is compressed first and the archive encrypted.
func Transformers(compress export.Transformer, encrypt bool, passphrase string, encryptFirst bool) []export.Transformer {
	var out []export.Transformer
	if compress != nil {
		out = append(out, compress)
	}
	if encrypt {
		cipher := export.Encrypt(passphrase)
		if encryptFirst {
			out = append([]export.Transformer{cipher}, out...)
		} else {
			out = append(out, cipher)
		}
	}

	return out
}

// Result describes a completed run.
type Result struct {
	Request *domain.IngestedRequest
	// Computed is the number of options before filtering.
	Computed int
	// Options are the kept options in output order.
	Options []domain.DeliveryOption
	// Breakdowns follow Options when Options.Breakdown is set.
	Breakdowns []pricing.Breakdown
	// Files lists the written export files.
	Files []string
}

// Pipeline runs requests through a Planner.
type Pipeline struct {
	planner  quote.Planner
	recorder *metrics.Recorder
	opts     Options
}

// New returns a Pipeline. recorder may be nil.
func New(planner quote.Planner, recorder *metrics.Recorder, opts Options) *Pipeline {
	return &Pipeline{planner: planner, recorder: recorder, opts: opts}
}

// Run processes the request file at input.
func (p *Pipeline) Run(ctx context.Context, input string) (*Result, error) {
	ctx = logger.WithFields(ctx, zap.String("input", input))

	var req *domain.IngestedRequest
	if err := p.stage(ctx, "load", func() error {
		var err error
		req, err = p.planner.LoadRequest(ctx, input)

		return err
	}); err != nil {
		return nil, err
	}
	p.recorder.RequestIngested(ctx, inputFormat(input))
	if p.opts.Transport != "" {
		pinned := req.WithTransport(p.opts.Transport)
		req = &pinned
	}

	res := &Result{Request: req}
	if err := p.stage(ctx, "compute", func() error {
		options, err := p.planner.ComputeOptions(ctx, *req)
		res.Computed = len(options)
		res.Options = options

		return err
	}); err != nil {
		return nil, err
	}
	p.recorder.QuotesProduced(ctx, res.Computed)
	if res.Computed == 0 {
		logger.Warn(ctx, "no transport could price the request")
	}

	_ = p.stage(ctx, "select", func() error {
		res.Options = selection.Filter(res.Options, p.opts.Filters...)
		if p.opts.Order != nil {
			res.Options = selection.Sort(res.Options, p.opts.Order)
		}

		return nil
	})
	logger.Info(ctx, "computed delivery options",
		zap.Int("computed", res.Computed),
		zap.Int("kept", len(res.Options)))

	if p.opts.Breakdown {
		if err := p.stage(ctx, "breakdown", func() error {
			var err error
			res.Breakdowns, err = p.breakdowns(ctx, *req, res.Options)

			return err
		}); err != nil {
			return nil, err
		}
	}

	if err := p.stage(ctx, "export", func() error {
		var err error
		res.Files, err = p.export(ctx, input, res.Options)

		return err
	}); err != nil {
		return nil, err
	}

	return res, nil
}

func (p *Pipeline) breakdowns(
	ctx context.Context,
	req domain.IngestedRequest,
	kept []domain.DeliveryOption,
) ([]pricing.Breakdown, error) {
	all, err := p.planner.Breakdowns(ctx, req)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]pricing.Breakdown, len(all))
	for _, b := range all {
		byName[b.TransportName] = b
	}

	out := make([]pricing.Breakdown, 0, len(kept))
	for _, o := range kept {
		if b, ok := byName[o.TransportName]; ok {
			out = append(out, b)
		}
	}

	return out, nil
}

func (p *Pipeline) export(ctx context.Context, input string, options []domain.DeliveryOption) ([]string, error) {
	name := p.opts.OutputName
	if name == "" {
		base := filepath.Base(input)
		name = strings.TrimSuffix(base, filepath.Ext(base)) + "-quotes"
	}

	files := make([]string, 0, len(p.opts.Formats))
	for _, format := range p.opts.Formats {
		base, err := export.ForFormat(format)
		if err != nil {
			return nil, err
		}
		e := export.Chain(base, p.opts.Transformers...)

		path, err := export.WriteFile(filepath.Join(p.opts.OutputDir, name+base.Extension()), e, options)
		if err != nil {
			return nil, err
		}
		p.recorder.QuotesExported(ctx, e.Format(), len(options))
		logger.Info(ctx, "exported delivery options",
			zap.String("format", e.Format()),
			zap.String("content_type", e.ContentType()),
			zap.String("path", path))
		files = append(files, path)
	}

	return files, nil
}

func (p *Pipeline) stage(ctx context.Context, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	p.recorder.ObserveStage(ctx, name, time.Since(start))
	if err != nil {
		logger.Error(ctx, "stage failed", zap.String("stage", name), zap.Error(err))
	}

	return err
}

func inputFormat(input string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(input)), ".")
}
