package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/steviee/go-modlist/internal/state"
)

// NewShowCommand creates the config show subcommand
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Print the configuration after defaults, the config file and environment
variables have been applied. The CurseForge API key is masked.`,
		Example: `  go-modlist config show
  go-modlist config show --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, cmd.OutOrStdout())
		},
	}
}

func runShow(cmd *cobra.Command, stdout io.Writer) error {
	jsonMode := isJSONMode(cmd)

	cfg := *state.ConfigFromContext(cmd.Context())
	cfg.Catalogs.CurseForge.APIKey = maskSecret(cfg.Catalogs.CurseForge.APIKey)

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return outputError(stdout, jsonMode, fmt.Errorf("encode config: %w", err))
	}

	if !jsonMode {
		_, err := stdout.Write(data)
		return err
	}

	// Round-trip through YAML so JSON keys match the file
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return outputError(stdout, jsonMode, fmt.Errorf("encode config: %w", err))
	}
	return writeJSON(stdout, doc)
}

// maskSecret keeps the last four characters of long secrets.
func maskSecret(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 8:
		return strings.Repeat("*", len(s))
	default:
		return strings.Repeat("*", 8) + s[len(s)-4:]
	}
}
