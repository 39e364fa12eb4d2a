package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kitnet/ingest"
	"github.com/katalvlaran/kitnet/kitnet"
)

func newServeCmd() *cobra.Command {
	var (
		n    int
		m    int
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the websocket ingestion server",
		RunE: func(cmd *cobra.Command, args []string) error {
			vcfg.Set("n", n)
			if cmd.Flags().Changed("m") {
				vcfg.Set("m", m)
			} else {
				vcfg.SetDefault("m", m)
			}
			if addr != "" {
				vcfg.Set("listen_addr", addr)
			}
			cfg, err := loadConfig(vcfg)
			if err != nil {
				return err
			}
			logger.Debug("resolved config", "yaml", cfg.dumpYAML())

			factory := func() (*kitnet.Engine, error) {
				return kitnet.New(cfg.N, cfg.M, cfg.options()...)
			}
			srv := ingest.NewServer(factory, logger)

			mux := http.NewServeMux()
			mux.Handle("/ws", srv)

			logger.Info("serving", "addr", cfg.ListenAddr)
			return http.ListenAndServe(cfg.ListenAddr, mux)
		},
	}

	cmd.Flags().IntVar(&n, "n", 0, "input dimension")
	cmd.Flags().IntVar(&m, "m", 10, "maximum autoencoder cluster size")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config listen_addr)")
	cmd.MarkFlagRequired("n")

	return cmd
}
