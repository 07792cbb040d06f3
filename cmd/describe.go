package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angeloszaimis/handler-chain/config"
)

func newDescribeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the configured chain in dispatch order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			d, err := newDispatcher(cfg, newLogger(cmd, cfg), nil)
			if err != nil {
				return err
			}

			if cfg.Output.Format == config.FormatJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(d.Handlers())
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Describe())
			return err
		},
	}
}
