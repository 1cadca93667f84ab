package main

import (
	"fmt"
	"strconv"

	"github.com/fadumoaideed/swiftreader/internal/diag"
	"github.com/fadumoaideed/swiftreader/internal/host"
	"github.com/fadumoaideed/swiftreader/internal/ops"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addCmd = &cobra.Command{
	Use:   "add A B",
	Short: "Add two 32-bit integers (0 on overflow)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseInt32(args[0])
		if err != nil {
			return err
		}
		b, err := parseInt32(args[1])
		if err != nil {
			return err
		}

		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		var sum int32
		if cfg.Guest.ModulePath != "" {
			ctx := cmd.Context()
			m, err := host.Load(ctx, cfg.Guest.ModulePath,
				host.WithStderr(host.SinkWriter(diag.NewZapSink(logger))))
			if err != nil {
				return err
			}
			defer m.Close(ctx)
			logger.Debug("running add through guest", zap.String("module", cfg.Guest.ModulePath))
			sum, err = m.Add(ctx, a, b)
			if err != nil {
				return err
			}
		} else {
			sum = ops.Add(a, b)
		}

		fmt.Fprintln(cmd.OutOrStdout(), sum)
		return nil
	},
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a 32-bit integer", s)
	}
	return int32(v), nil
}
