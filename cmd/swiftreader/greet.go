package main

import (
	"fmt"

	"github.com/fadumoaideed/swiftreader/internal/diag"
	"github.com/fadumoaideed/swiftreader/internal/host"
	"github.com/fadumoaideed/swiftreader/internal/ops"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var greetCmd = &cobra.Command{
	Use:   "greet NAME",
	Short: "Greet a name (names over 1000 bytes are rejected)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		var greeting string
		if cfg.Guest.ModulePath != "" {
			ctx := cmd.Context()
			m, err := host.Load(ctx, cfg.Guest.ModulePath,
				host.WithStderr(host.SinkWriter(diag.NewZapSink(logger))))
			if err != nil {
				return err
			}
			defer m.Close(ctx)
			logger.Debug("running greet through guest", zap.String("module", cfg.Guest.ModulePath))
			greeting, err = m.Greet(ctx, args[0])
			if err != nil {
				return err
			}
		} else {
			greeting = ops.Greet(args[0])
		}

		fmt.Fprintln(cmd.OutOrStdout(), greeting)
		return nil
	},
}
