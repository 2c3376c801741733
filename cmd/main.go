// Package main provides the CLI entrypoint for the logistics pricing tool.
// It wires subcommands (quote, catalog), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"logistics/internal/config"
	"logistics/pkg/logger"
	"logistics/pkg/serrors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:           "logistics",
		Short:         "Prices delivery requests against the transport catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// cobra flags are not available before Execute, so -c is read with the
	// standard flag package; the persistent flag only keeps cobra from
	// rejecting it.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not set up logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		quoteCommand(cfg),
		catalogCommand(),
	)

	err = rootCmd.Execute()
	if err != nil {
		logger.Error(ctx, "command failed", errorFields(err)...)
	}
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// errorFields describes a command failure, tagging it with its error kind
// when it has one.
func errorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}
	if kind := serrors.KindOf(err); kind != nil {
		fields = append(fields, zap.String("kind", kind.Error()))
	}

	return fields
}
