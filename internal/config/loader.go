package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = ".promptgen"
	configType = "yaml"
	envPrefix  = "PROMPTGEN"
)

// Load builds a Config from defaults, an optional .env file, PROMPTGEN_*
// environment variables and an optional YAML config file. A missing config
// file is not an error unless configPath names it explicitly.
func Load(configPath string) (*Config, error) {
	// .env is optional, the environment may already carry everything
	_ = godotenv.Load()

	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("output", DefaultOutputFile)
	v.SetDefault("source_extensions", DefaultSourceExtensions)
	v.SetDefault("test_dir_marker", DefaultTestDirMarker)
	v.SetDefault("source_dir", DefaultSourceDirName)
	v.SetDefault("dependency_dir", DefaultDependencyDirName)
	v.SetDefault("ignore_dirs", DefaultPathsToIgnore)
	v.SetDefault("include_assistant", DefaultIncludeAssistant)
	v.SetDefault("progress", DefaultShowProgress)
	v.SetDefault("log_level", DefaultLogLevel)
}
