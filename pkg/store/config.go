package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the store lives and how to reach the advice
// generator.
type Config interface {
	BasePath() string
	AdviceURL() string
	AdviceKey() string
}

// LoadConfig reads the optional .momentum config file, falling back to
// defaults and MOMENTUM_* environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.momentum.db")
	viper.SetDefault("advice.url", "")
	viper.SetDefault("advice.key", "")
	viper.SetConfigName(".momentum") // .yaml is implicit
	viper.SetEnvPrefix("MOMENTUM")
	viper.AutomaticEnv()

	if override := os.Getenv("MOMENTUM_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:      path,
		AdviceAPI: viper.GetString("advice.url"),
		AdviceTok: viper.GetString("advice.key"),
	}, nil
}

type fileConfig struct {
	Path      string `json:"path"`
	AdviceAPI string `json:"adviceURL"`
	AdviceTok string `json:"adviceKey"`
}

func (f *fileConfig) BasePath() string  { return f.Path }
func (f *fileConfig) AdviceURL() string { return f.AdviceAPI }
func (f *fileConfig) AdviceKey() string { return f.AdviceTok }
