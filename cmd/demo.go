package main

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/angeloszaimis/handler-chain/config"
	"github.com/angeloszaimis/handler-chain/internal/dispatcher"
	"github.com/angeloszaimis/handler-chain/internal/metrics"
)

var json = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

func newDemoCommand(opts *options) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "demo [request...]",
		Short: "Dispatch requests through the configured chain",
		Long: `Dispatch each request through the chain and print who took it.
Without arguments the requests from the config are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			requests := cfg.Requests
			if len(args) > 0 {
				requests = args
			}

			d, err := newDispatcher(cfg, newLogger(cmd, cfg), metrics.NewMetrics())
			if err != nil {
				return err
			}

			return runDemo(cmd.OutOrStdout(), d, requests, cfg.Output.Format, stats)
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "Print dispatch statistics as JSON afterwards")

	return cmd
}

func runDemo(w io.Writer, d *dispatcher.Dispatcher[string, string], requests []string, format string, stats bool) error {
	for _, out := range d.DispatchAll(requests) {
		if err := printOutcome(w, out, format); err != nil {
			return err
		}
	}

	if !stats {
		return nil
	}

	snap, ok := d.Snapshot()
	if !ok {
		return nil
	}

	return json.NewEncoder(w).Encode(snap)
}

func printOutcome(w io.Writer, out dispatcher.Outcome[string, string], format string) error {
	if format == config.FormatJSON {
		return json.NewEncoder(w).Encode(out)
	}

	if _, err := fmt.Fprintf(w, "Client: Who wants a %s?\n", out.Request); err != nil {
		return err
	}

	if out.Handled {
		_, err := fmt.Fprintf(w, "  %s\n", out.Result)
		return err
	}

	_, err := fmt.Fprintf(w, "  %s was left untouched.\n", out.Request)
	return err
}
