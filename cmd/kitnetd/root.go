package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	debug   bool

	logger *slog.Logger
	vcfg   = viper.New()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kitnetd",
		Short: "kitnetd drives the online anomaly-detection engine",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = newLogger(debug)

			if cfgFile != "" {
				vcfg.SetConfigFile(cfgFile)
				if err := vcfg.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config file %q: %w", cfgFile, err)
				}
				logger.Info("loaded config", "path", cfgFile)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	bindPersistentFlags(flags)

	root.AddCommand(newReplayCmd())
	root.AddCommand(newServeCmd())

	return root
}

// bindPersistentFlags registers the root command's persistent flags
// directly on the pflag.FlagSet cobra hands back, matching the teacher's
// flag-binding style rather than going through Cobra's wrapper methods.
func bindPersistentFlags(flags *pflag.FlagSet) {
	flags.StringVar(&cfgFile, "config", "", "path to a YAML config file")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
}

// Execute runs the kitnetd CLI, exiting the process with status 1 on
// error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
