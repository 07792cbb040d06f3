package main

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cobra"

	"github.com/angeloszaimis/handler-chain/config"
	"github.com/angeloszaimis/handler-chain/internal/animal"
	"github.com/angeloszaimis/handler-chain/internal/chain"
	"github.com/angeloszaimis/handler-chain/internal/dispatcher"
	"github.com/angeloszaimis/handler-chain/internal/metrics"
	"github.com/angeloszaimis/handler-chain/pkg/logger"
)

type options struct {
	configPath string
	format     string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "handler-chain",
		Short: "Send requests through a chain of responsibility",
		Long: `handler-chain builds a chain of animal handlers from configuration and
feeds requests through it. The first animal that likes the food eats it;
food nobody wants is left untouched.

Examples:
  handler-chain demo
  handler-chain demo Nut Banana "Cup of coffee"
  handler-chain demo --format json --stats
  handler-chain describe --config ./chain.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"Path to config file (default: config.yaml in ./config or .)")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "",
		"Output format: text or json (overrides output.format)")

	rootCmd.AddCommand(newDemoCommand(opts))
	rootCmd.AddCommand(newDescribeCommand(opts))

	return rootCmd
}

// loadConfig applies command line overrides on top of the loaded config.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.format != "" {
		cfg.Output.Format = opts.format
		if err := validation.Validate(cfg.Output.Format, validation.In(config.FormatText, config.FormatJSON)); err != nil {
			return nil, fmt.Errorf("invalid --format %q: %w", opts.format, err)
		}
	}

	return cfg, nil
}

func newDispatcher(cfg *config.Config, log *slog.Logger, m *metrics.Metrics) (*dispatcher.Dispatcher[string, string], error) {
	handlers, err := animal.NewAll(cfg.Specs())
	if err != nil {
		return nil, fmt.Errorf("failed to create handlers: %w", err)
	}

	head, err := chain.Build(handlers...)
	if err != nil {
		return nil, fmt.Errorf("failed to build chain: %w", err)
	}

	return dispatcher.New(log, head, m)
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logger.New(cfg.Logging.Level, false, cfg.Environment, cmd.ErrOrStderr())
}
