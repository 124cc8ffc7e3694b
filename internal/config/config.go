package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/eazysvn/eazysvn/internal/types"
)

func Load(configPath string) (*types.Config, error) {
	cfg := &types.Config{
		SvnPath:  types.DefaultSvnPath,
		LogLevel: types.DefaultLogLevel,
	}

	if configPath == "" {
		return cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func GetDefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eazysvn.json"
	}
	return filepath.Join(home, ".eazysvn", "config.json")
}

func LoadFromEnv(cfg *types.Config) {
	if val := os.Getenv("EAZYSVN_SVN_PATH"); val != "" {
		cfg.SvnPath = val
	}
	if val := os.Getenv("EAZYSVN_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
}
