package state

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the user configuration for go-modlist.
// The mapstructure tags let the CLI overlay environment variables through viper.
type Config struct {
	Catalogs CatalogsConfig `yaml:"catalogs" mapstructure:"catalogs"`
	Defaults DefaultsConfig `yaml:"defaults" mapstructure:"defaults"`
	Import   ImportConfig   `yaml:"import" mapstructure:"import"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// CatalogsConfig holds settings shared by the catalog clients.
type CatalogsConfig struct {
	Modrinth   ModrinthConfig   `yaml:"modrinth" mapstructure:"modrinth"`
	CurseForge CurseForgeConfig `yaml:"curseforge" mapstructure:"curseforge"`
	Minecraft  MinecraftConfig  `yaml:"minecraft" mapstructure:"minecraft"`
	UserAgent  string           `yaml:"user_agent" mapstructure:"user_agent"`
	Timeout    time.Duration    `yaml:"timeout" mapstructure:"timeout"`
}

// ModrinthConfig holds Modrinth API settings.
type ModrinthConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// CurseForgeConfig holds CurseForge API settings.
// The secondary catalog is only searched when APIKey is set.
type CurseForgeConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	APIKey  string `yaml:"api_key" mapstructure:"api_key"`
}

// MinecraftConfig holds the game version manifest settings.
type MinecraftConfig struct {
	ManifestURL string        `yaml:"manifest_url" mapstructure:"manifest_url"`
	CacheTTL    time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
}

// DefaultsConfig holds default resolution targets.
type DefaultsConfig struct {
	GameVersion string `yaml:"game_version" mapstructure:"game_version"`
	Loader      string `yaml:"loader" mapstructure:"loader"`
	AutoPick    bool   `yaml:"auto_pick" mapstructure:"auto_pick"`
}

// ImportConfig holds batch import settings.
type ImportConfig struct {
	Delay time.Duration `yaml:"delay" mapstructure:"delay"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Listen string `yaml:"listen" mapstructure:"listen"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Catalogs: CatalogsConfig{
			Modrinth: ModrinthConfig{
				BaseURL: "https://api.modrinth.com/v2",
			},
			CurseForge: CurseForgeConfig{
				BaseURL: "https://api.curseforge.com/v1",
			},
			Minecraft: MinecraftConfig{
				ManifestURL: "https://launchermeta.mojang.com/mc/game/version_manifest.json",
				CacheTTL:    time.Hour,
			},
			UserAgent: "go-modlist/dev (https://github.com/steviee/go-modlist)",
			Timeout:   30 * time.Second,
		},
		Defaults: DefaultsConfig{
			Loader:   "fabric",
			AutoPick: true,
		},
		Import: ImportConfig{
			Delay: 300 * time.Millisecond,
		},
		Server: ServerConfig{
			Listen: "127.0.0.1:8080",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from the default config file.
func LoadConfig(ctx context.Context) (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadConfigFrom(ctx, configPath)
}

// LoadConfigFrom loads the configuration at configPath.
// If the file doesn't exist, it creates a new one with defaults.
// If the file is corrupted, it backs up the corrupted file and creates a fresh one.
func LoadConfigFrom(ctx context.Context, configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := DefaultConfig()
		if err := SaveConfigTo(ctx, configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unset keys keep their defaults
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		backupPath := configPath + ".corrupted"
		if backupErr := os.Rename(configPath, backupPath); backupErr != nil {
			return nil, fmt.Errorf("config file is corrupted and failed to create backup: %w (original error: %v)", backupErr, err)
		}

		fresh := DefaultConfig()
		if saveErr := SaveConfigTo(ctx, configPath, fresh); saveErr != nil {
			return nil, fmt.Errorf("config file was corrupted (backed up to %s), failed to save fresh config: %w (original error: %v)", backupPath, saveErr, err)
		}
		return fresh, nil
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to the default config file.
func SaveConfig(ctx context.Context, cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveConfigTo(ctx, configPath, cfg)
}

// SaveConfigTo validates cfg and writes it to configPath atomically while
// holding the config lock. The file may hold an API key, so it is 0600.
func SaveConfigTo(ctx context.Context, configPath string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return WithLock(configPath+".lock", func() error {
		if err := AtomicWrite(configPath, data, 0o600); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		return nil
	})
}

// ValidateConfig validates the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := ValidateBaseURL(cfg.Catalogs.Modrinth.BaseURL); err != nil {
		return fmt.Errorf("invalid Modrinth base URL: %w", err)
	}

	if err := ValidateBaseURL(cfg.Catalogs.CurseForge.BaseURL); err != nil {
		return fmt.Errorf("invalid CurseForge base URL: %w", err)
	}

	if err := ValidateBaseURL(cfg.Catalogs.Minecraft.ManifestURL); err != nil {
		return fmt.Errorf("invalid version manifest URL: %w", err)
	}

	if cfg.Catalogs.Minecraft.CacheTTL < 0 {
		return fmt.Errorf("version cache TTL must be >= 0, got %v", cfg.Catalogs.Minecraft.CacheTTL)
	}

	if cfg.Catalogs.Timeout <= 0 {
		return fmt.Errorf("catalog timeout must be > 0, got %v", cfg.Catalogs.Timeout)
	}

	if cfg.Defaults.GameVersion != "" {
		if err := ValidateGameVersion(cfg.Defaults.GameVersion); err != nil {
			return fmt.Errorf("invalid default game version: %w", err)
		}
	}

	if cfg.Defaults.Loader != "" {
		if err := ValidateLoader(cfg.Defaults.Loader); err != nil {
			return fmt.Errorf("invalid default loader: %w", err)
		}
	}

	if cfg.Import.Delay < 0 {
		return fmt.Errorf("import delay must be >= 0, got %v", cfg.Import.Delay)
	}

	if err := ValidateListenAddr(cfg.Server.Listen); err != nil {
		return fmt.Errorf("invalid server listen address: %w", err)
	}

	if err := ValidateLogLevel(cfg.Logging.Level); err != nil {
		return err
	}

	return nil
}
