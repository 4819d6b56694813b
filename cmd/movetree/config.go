package main

import (
	"github.com/spf13/viper"
)

type Config struct {
	Depth    int   `mapstructure:"DEPTH"`
	Seed     int64 `mapstructure:"SEED"`
	NoColor  bool  `mapstructure:"NO_COLOR"`
	Endgames bool  `mapstructure:"ENDGAMES"`
	Verbose  bool  `mapstructure:"VERBOSE"`
}

// Setup reads the optional config file and the environment,
// missing keys fall back to the defaults
func Setup(cfgPath string) (*Config, error) {
	viper.SetDefault("DEPTH", 3)
	viper.SetDefault("SEED", 0)
	viper.SetDefault("NO_COLOR", false)
	viper.SetDefault("ENDGAMES", true)
	viper.SetDefault("VERBOSE", false)
	viper.AutomaticEnv()

	if cfgPath != "" {
		viper.SetConfigFile(cfgPath)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
