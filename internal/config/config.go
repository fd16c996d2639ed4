package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	DataDir  string   `json:"data_dir" mapstructure:"data_dir"`
	EnvFile  string   `json:"env_file" mapstructure:"env_file"`
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
}

// Database names the environment variables that carry the credentials for
// the remote datastore. The values themselves never live in the config
// file.
type Database struct {
	URLEnv string `json:"url_env" mapstructure:"url_env"`
	KeyEnv string `json:"key_env" mapstructure:"key_env"`
}

// Seed holds the default run options; the CLI flags override them.
type Seed struct {
	ClearExisting bool `json:"clear_existing" mapstructure:"clear_existing"`
	VerifyData    bool `json:"verify_data" mapstructure:"verify_data"`
}

func Load() (*Config, error) {
	// mapstructure only overwrites keys present in the source, so the
	// booleans keep their defaults when the config file omits them.
	cfg := Config{Seed: Seed{ClearExisting: true, VerifyData: true}}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.EnvFile == "" {
		cfg.EnvFile = ".env"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "SUPABASE_URL"
	}
	if cfg.Database.KeyEnv == "" {
		cfg.Database.KeyEnv = "API_Key"
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	if c.Database.URLEnv == "" || c.Database.KeyEnv == "" {
		return fmt.Errorf("database env var names cannot be empty")
	}
	return nil
}
