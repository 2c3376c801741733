package main

import (
	"context"
	"fmt"
	"io"
	"logistics/internal/catalog"
	"logistics/internal/config"
	"logistics/internal/ingest"
	"logistics/internal/pipeline"
	"logistics/internal/quote"
	"logistics/pkg/domain"
	"logistics/pkg/logger"
	"logistics/pkg/metrics"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// quoteFlags mirror the configuration keys a single run may override.
type quoteFlags struct {
	transport  string
	maxPrice   float64
	maxHours   float64
	name       string
	sort       string
	formats    []string
	out        string
	encrypt    bool
	passphrase string
	compress   string
	breakdown  bool
}

// apply copies the flags that were set on the command line into cfg.
func (f *quoteFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("max-price") {
		cfg.Filter.MaxPrice = f.maxPrice
	}
	if changed("max-hours") {
		cfg.Filter.MaxHours = f.maxHours
	}
	if changed("name") {
		cfg.Filter.TransportName = f.name
	}
	if changed("sort") {
		cfg.Sort.Order = f.sort
	}
	if changed("format") {
		cfg.Export.Formats = f.formats
	}
	if changed("out") {
		cfg.Export.Dir = f.out
	}
	if changed("encrypt") {
		cfg.Export.Encrypt = f.encrypt
	}
	if changed("passphrase") {
		cfg.Export.Passphrase = f.passphrase
	}
	if changed("compress") {
		cfg.Export.Compress = f.compress
	}
}

func quoteCommand(cfg *config.Config) *cobra.Command {
	flags := &quoteFlags{}
	dispatcher := ingest.NewDispatcher()

	cmd := &cobra.Command{
		Use:   "quote <input>",
		Short: "Computes delivery options for a request file and exports them",
		Long: "Computes delivery options for a request file and exports them.\n\n" +
			"The input format follows the file extension (.json, .xml, .csv).\n" +
			"Accepted content types: " + strings.Join(dispatcher.ContentTypes(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			runCfg := *cfg
			flags.apply(cmd, &runCfg)
			if err := runCfg.Validate(); err != nil {
				return err
			}

			opts, err := pipeline.NewOptions(&runCfg)
			if err != nil {
				return err
			}
			opts.Transport = flags.transport
			opts.Breakdown = flags.breakdown

			var recorder *metrics.Recorder
			if runCfg.Metrics.Textfile != "" {
				if recorder, err = metrics.New(ctx); err != nil {
					return err
				}
				defer func() {
					if err := recorder.WriteTextfile(runCfg.Metrics.Textfile); err != nil {
						logger.Warn(ctx, "could not write metrics", zap.Error(err))
					}
					_ = recorder.Shutdown(context.Background())
				}()
			}

			planner := quote.New(catalog.Default(), dispatcher)
			res, err := pipeline.New(planner, recorder, opts).Run(ctx, args[0])
			if err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), res)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.transport, "transport", "", "Quote only this transport kind")
	f.Float64Var(&flags.maxPrice, "max-price", 0, "Drop options costing more than this")
	f.Float64Var(&flags.maxHours, "max-hours", 0, "Drop options slower than this many hours")
	f.StringVar(&flags.name, "name", "", "Keep options whose transport name matches this regular expression")
	f.StringVar(&flags.sort, "sort", "", "Sort keys, e.g. price:asc,name:desc")
	f.StringSliceVar(&flags.formats, "format", nil, "Export formats (json, csv)")
	f.StringVar(&flags.out, "out", "", "Output directory")
	f.BoolVar(&flags.encrypt, "encrypt", false, "Encrypt exported files")
	f.StringVar(&flags.passphrase, "passphrase", "", "Passphrase for --encrypt")
	f.StringVar(&flags.compress, "compress", "", "Compress exported files (zip, gzip)")
	f.BoolVar(&flags.breakdown, "breakdown", false, "Print the itemized cost of every option")

	return cmd
}

func printResult(w io.Writer, res *pipeline.Result) {
	if res.Request.Destination != "" {
		_, _ = fmt.Fprintf(w, "Destination: %s\n", res.Request.Destination)
	}
	_, _ = fmt.Fprintf(w, "%d of %d delivery options kept\n", len(res.Options), res.Computed)
	for _, o := range res.Options {
		printOption(w, o)
	}
	for _, b := range res.Breakdowns {
		_, _ = fmt.Fprintln(w)
		_, _ = io.WriteString(w, b.Report())
	}
	for _, path := range res.Files {
		_, _ = fmt.Fprintf(w, "wrote %s\n", path)
	}
}

func printOption(w io.Writer, o domain.DeliveryOption) {
	_, _ = fmt.Fprintf(w, "  %-12s %-6s %12.2f $ %8.2f h %6.0f km/h\n",
		o.TransportName, o.TransportType, o.TotalCost, o.DeliveryTimeHours, o.Speed)
}
