// Package main is the swiftreader host CLI. It runs the guarded
// operations either natively or through the compiled wasip1 guest
// module, mirroring what the browser embedding does with the js build.
package main

import (
	"fmt"
	"os"

	"github.com/fadumoaideed/swiftreader/internal/config"
	"github.com/fadumoaideed/swiftreader/internal/diag"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:     "swiftreader",
	Short:   "Run the swiftreader bounded operations natively or through the wasm guest",
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to yaml config file")
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(greetCmd)
}

// setup loads config, builds the logger and installs it as the
// diagnostic sink.
func setup() (*config.Config, *zap.Logger, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	diag.SetSink(diag.NewZapSink(logger))
	return cfg, logger, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
