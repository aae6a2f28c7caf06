// Package config loads the GasTrip TOML configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Bind      string `toml:"bind"`
	StaticDir string `toml:"static_dir"`
}

type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

type AssistantConfig struct {
	Model     string `toml:"model"`
	APIKeyEnv string `toml:"api_key_env"`
	BaseURL   string `toml:"base_url"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type Config struct {
	DataDir   string          `toml:"data_dir"`
	Server    ServerConfig    `toml:"server"`
	Storage   StorageConfig   `toml:"storage"`
	Assistant AssistantConfig `toml:"assistant"`
	Log       LogConfig       `toml:"log"`
}

func Default() Config {
	dataDir := defaultDataDir()
	return Config{
		DataDir: dataDir,
		Server: ServerConfig{
			Bind:      ":8080",
			StaticDir: "",
		},
		Storage: StorageConfig{
			DBPath: filepath.Join(dataDir, "gastrip.db"),
		},
		Assistant: AssistantConfig{
			Model:     "gemini-3-flash-preview",
			APIKeyEnv: "GEMINI_API_KEY",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath is where the config lives when no --config flag is given.
func DefaultPath() string {
	return filepath.Join(Default().DataDir, "config.toml")
}

// LoadOrCreate reads the config at path, writing the defaults there first if
// the file does not exist.
func LoadOrCreate(path string) (Config, error) {
	config := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return config, err
			}

			configData, err := toml.Marshal(config)
			if err != nil {
				return config, err
			}

			if err := os.WriteFile(path, configData, 0o644); err != nil {
				return config, err
			}

			return config, nil
		}

		return config, err
	}

	configData, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	if err := toml.Unmarshal(configData, &config); err != nil {
		return config, err
	}

	config.DataDir = expandPath(config.DataDir)
	config.Storage.DBPath = expandPath(strings.TrimSpace(config.Storage.DBPath))
	config.Server.Bind = strings.TrimSpace(config.Server.Bind)
	config.Server.StaticDir = expandPath(config.Server.StaticDir)

	if config.Storage.DBPath == "" {
		config.Storage.DBPath = filepath.Join(config.DataDir, "gastrip.db")
	}
	if config.Server.Bind == "" {
		config.Server.Bind = ":8080"
	}
	config.Assistant.APIKeyEnv = strings.TrimSpace(config.Assistant.APIKeyEnv)

	return config, nil
}

// APIKey reads the assistant credential from the environment.
// An empty key, or no variable name at all, disables the assistant.
func (c Config) APIKey() string {
	if c.Assistant.APIKeyEnv == "" {
		return ""
	}
	return strings.TrimSpace(os.Getenv(c.Assistant.APIKeyEnv))
}

func defaultDataDir() string {
	homeDir, _ := os.UserHomeDir()

	if homeDir == "" {
		return ".gastrip"
	}

	return filepath.Join(homeDir, ".gastrip")
}

func expandPath(path string) string {
	if path == "" {
		return ""
	}

	if strings.HasPrefix(path, "~") {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}

	return path
}
