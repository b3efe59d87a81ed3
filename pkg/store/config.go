package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the planner's storage directory.
type Config interface {
	BasePath() string
	ConfigFile() string
}

// LoadConfig reads an optional .planner.yaml from $PLANNER_CONFIG_PATH or the
// working directory. PLANNER_PATH overrides the storage path.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.planner.db")
	v.SetConfigName(".planner") // .yaml is implicit
	v.SetEnvPrefix("PLANNER")
	v.AutomaticEnv()

	if override := os.Getenv("PLANNER_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path, File: v.ConfigFileUsed()}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	File string `json:"file,omitempty"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) ConfigFile() string {
	return f.File
}
