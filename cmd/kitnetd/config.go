package main

import (
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kitnet/kitnet"
)

// engineConfig is the subset of kitnet.Option fields exposed through
// configuration (YAML file plus flag overrides), grounded on the
// teacher's flat per-service config style.
type engineConfig struct {
	N          int     `mapstructure:"n" yaml:"n"`
	M          int     `mapstructure:"m" yaml:"m"`
	FMGrace    int     `mapstructure:"fm_grace" yaml:"fm_grace"`
	ADGrace    int     `mapstructure:"ad_grace" yaml:"ad_grace"`
	LR         float64 `mapstructure:"learning_rate" yaml:"learning_rate"`
	HiddenRato float64 `mapstructure:"hidden_ratio" yaml:"hidden_ratio"`
	Normalize  bool    `mapstructure:"normalize" yaml:"normalize"`
	Quantize   bool    `mapstructure:"quantize" yaml:"quantize"`
	WBits      int     `mapstructure:"w_bits" yaml:"w_bits"`
	ABits      int     `mapstructure:"a_bits" yaml:"a_bits"`
	ModelPath  string  `mapstructure:"model_path" yaml:"model_path"`
	ListenAddr string  `mapstructure:"listen_addr" yaml:"listen_addr"`
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		M:          10,
		FMGrace:    5000,
		ADGrace:    5000,
		LR:         0.1,
		HiddenRato: 0.75,
		Normalize:  true,
		ModelPath:  "kitnet_model.pkl",
		ListenAddr: ":8080",
	}
}

// loadConfig reads engineConfig from v, which the caller has already
// pointed at a YAML file (if any) and bound to command flags.
func loadConfig(v *viper.Viper) (engineConfig, error) {
	cfg := defaultEngineConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return engineConfig{}, err
	}
	return cfg, nil
}

// dumpYAML renders cfg as YAML for debug logging, letting an operator see
// exactly which resolved values (file + flag overrides + defaults) an
// engine was constructed with.
func (cfg engineConfig) dumpYAML() string {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return ""
	}
	return string(b)
}

// options translates cfg into the kitnet.Option set New expects.
func (cfg engineConfig) options() []kitnet.Option {
	opts := []kitnet.Option{
		kitnet.WithFMGrace(cfg.FMGrace),
		kitnet.WithADGrace(cfg.ADGrace),
		kitnet.WithLearningRate(cfg.LR),
		kitnet.WithHiddenRatio(cfg.HiddenRato),
		kitnet.WithNormalize(cfg.Normalize),
		kitnet.WithModelPath(cfg.ModelPath),
	}
	if cfg.Quantize {
		opts = append(opts, kitnet.WithQuantization(cfg.WBits, cfg.ABits))
	}
	return opts
}
