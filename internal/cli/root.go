package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steviee/go-modlist/internal/cli/config"
	"github.com/steviee/go-modlist/internal/cli/mods"
	"github.com/steviee/go-modlist/internal/state"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. GOMODLIST_DEFAULTS_GAME_VERSION.
const EnvPrefix = "GOMODLIST"

var (
	// Global flags
	cfgFile string
	jsonOut bool
	quiet   bool
	verbose bool

	// Global logger
	logger *slog.Logger
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand(version, commit, date, builtBy string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "go-modlist",
		Short: "Resolve Minecraft mod lists against Modrinth and CurseForge",
		Long: `go-modlist turns a list of mod names into downloadable files.

It searches Modrinth first and falls back to CurseForge when an API key is
configured, picking the best file for a game version and mod loader:
  - Search either catalog
  - Resolve single mods with fuzzy name matching
  - Parse text, CSV, JSON, packwiz and modpack mod lists
  - Import whole lists with progress and write an export file
  - Serve the same operations over HTTP`,
		Example: `  # Resolve a mod for a game version and loader
  go-modlist mods resolve sodium --game-version 1.20.1 --loader fabric

  # Import a mod list and export the result
  go-modlist mods import mods.txt --game-version 1.20.1 --output export.json

  # Include CurseForge
  GOMODLIST_CURSEFORGE_API_KEY=... go-modlist mods resolve "Just Enough Items"

  # List game versions
  go-modlist versions --limit 10

  # Start the HTTP API
  go-modlist serve --listen 127.0.0.1:8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Bootstrap logger so config loading can log
			initLogger(cmd.ErrOrStderr(), "info")

			cfg, err := initConfig()
			if err != nil {
				logger.Error("failed to initialize config", "error", err)
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			initLogger(cmd.ErrOrStderr(), cfg.Logging.Level)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(state.WithConfig(ctx, cfg))

			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/go-modlist/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")

	rootCmd.MarkFlagsMutuallyExclusive("json", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(NewVersionCommand(version, commit, date, builtBy))
	rootCmd.AddCommand(NewModsCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewVersionsCommand())
	rootCmd.AddCommand(NewServeCommand())

	return rootCmd
}

// NewModsCommand creates the mods command group
func NewModsCommand() *cobra.Command {
	return mods.NewCommand()
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	return config.NewCommand()
}

// initLogger installs the global logger. --quiet and --verbose win over level.
func initLogger(out io.Writer, level string) {
	var lvl slog.Level
	switch {
	case quiet:
		lvl = slog.LevelError
	case verbose:
		lvl = slog.LevelDebug
	default:
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = slog.LevelInfo
		}
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if jsonOut {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// initConfig reads the config file, then environment variables, on top of
// the defaults.
func initConfig() (*state.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		configDir, err := state.GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("get config directory: %w", err)
		}
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
	}

	setDefaults(v, state.DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("catalogs.curseforge.api_key", EnvPrefix+"_CURSEFORGE_API_KEY", "CURSEFORGE_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind API key env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults apply
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		logger.Debug("using config file", "path", v.ConfigFileUsed())
	}

	cfg := &state.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := state.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every config key so environment overrides apply to it.
func setDefaults(v *viper.Viper, cfg *state.Config) {
	v.SetDefault("catalogs.modrinth.base_url", cfg.Catalogs.Modrinth.BaseURL)
	v.SetDefault("catalogs.curseforge.base_url", cfg.Catalogs.CurseForge.BaseURL)
	v.SetDefault("catalogs.curseforge.api_key", cfg.Catalogs.CurseForge.APIKey)
	v.SetDefault("catalogs.minecraft.manifest_url", cfg.Catalogs.Minecraft.ManifestURL)
	v.SetDefault("catalogs.minecraft.cache_ttl", cfg.Catalogs.Minecraft.CacheTTL)
	v.SetDefault("catalogs.user_agent", cfg.Catalogs.UserAgent)
	v.SetDefault("catalogs.timeout", cfg.Catalogs.Timeout)
	v.SetDefault("defaults.game_version", cfg.Defaults.GameVersion)
	v.SetDefault("defaults.loader", cfg.Defaults.Loader)
	v.SetDefault("defaults.auto_pick", cfg.Defaults.AutoPick)
	v.SetDefault("import.delay", cfg.Import.Delay)
	v.SetDefault("server.listen", cfg.Server.Listen)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// GetLogger returns the global logger instance
func GetLogger() *slog.Logger {
	return logger
}

// IsJSONOutput returns true if JSON output is enabled
func IsJSONOutput() bool {
	return jsonOut
}

// IsQuiet returns true if quiet mode is enabled
func IsQuiet() bool {
	return quiet
}

// IsVerbose returns true if verbose mode is enabled
func IsVerbose() bool {
	return verbose
}
