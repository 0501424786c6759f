package config

import (
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/steviee/go-modlist/internal/state"
)

// NewCommand creates the config command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `View and initialize go-modlist configuration settings.

Configuration is stored in ~/.config/go-modlist/config.yaml by default
($XDG_CONFIG_HOME is honoured). Every key can be overridden by an
environment variable, e.g. GOMODLIST_DEFAULTS_GAME_VERSION=1.20.1.
The CurseForge API key is also read from CURSEFORGE_API_KEY.`,
		Example: `  # View the effective configuration
  go-modlist config show

  # Show configuration file path
  go-modlist config path

  # Write a config file with the defaults
  go-modlist config init`,
		Aliases: []string{"cfg"},
	}

	cmd.AddCommand(NewShowCommand())
	cmd.AddCommand(NewPathCommand())
	cmd.AddCommand(NewInitCommand())

	return cmd
}

// Output is the JSON envelope of every config subcommand
type Output struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// isJSONMode reports whether the global --json flag is set.
func isJSONMode(cmd *cobra.Command) bool {
	if f := cmd.Flags().Lookup("json"); f != nil {
		if v, err := strconv.ParseBool(f.Value.String()); err == nil && v {
			return true
		}
	}
	return os.Getenv("GOMODLIST_JSON") == "true"
}

// configPath returns the --config flag value or the default location.
func configPath(cmd *cobra.Command) (string, error) {
	if f := cmd.Flags().Lookup("config"); f != nil && f.Value.String() != "" {
		return f.Value.String(), nil
	}
	return state.GetConfigPath()
}

func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Output{Status: "success", Data: data})
}

func outputError(w io.Writer, jsonMode bool, err error) error {
	if jsonMode {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(Output{Status: "error", Error: err.Error()})
	}
	return err
}
