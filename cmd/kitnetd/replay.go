package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kitnet/kitnet"
)

type replayFrame struct {
	Vector []float64 `json:"vector"`
}

func newReplayCmd() *cobra.Command {
	var (
		n    int
		m    int
		path string
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "stream a JSONL file of observation vectors through the engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			vcfg.Set("n", n)
			if cmd.Flags().Changed("m") {
				vcfg.Set("m", m)
			} else {
				vcfg.SetDefault("m", m)
			}
			cfg, err := loadConfig(vcfg)
			if err != nil {
				return err
			}
			logger.Debug("resolved config", "yaml", cfg.dumpYAML())

			engine, err := kitnet.New(cfg.N, cfg.M, cfg.options()...)
			if err != nil {
				return fmt.Errorf("constructing engine: %w", err)
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening %q: %w", path, err)
			}
			defer f.Close()

			scanner := bufio.NewScanner(f)
			lineNo := 0
			for scanner.Scan() {
				lineNo++
				line := scanner.Bytes()
				if len(line) == 0 {
					continue
				}
				var frame replayFrame
				if err := json.Unmarshal(line, &frame); err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				score, err := engine.Process(frame.Vector)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				logger.Info("processed observation", "line", lineNo, "score", score)
			}
			return scanner.Err()
		},
	}

	cmd.Flags().IntVar(&n, "n", 0, "input dimension")
	cmd.Flags().IntVar(&m, "m", 10, "maximum autoencoder cluster size")
	cmd.Flags().StringVar(&path, "input", "", "path to a JSONL file of {\"vector\":[...]} frames")
	cmd.MarkFlagRequired("n")
	cmd.MarkFlagRequired("input")

	return cmd
}
