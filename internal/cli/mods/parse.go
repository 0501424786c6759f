package mods

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/steviee/go-modlist/internal/modlist"
)

// NewParseCommand creates the mods parse subcommand
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Show the mods a mod list contains",
		Long: `Parse a mod list without contacting any catalog.

Supported inputs:
  - Plain text, one mod per line (# starts a comment)
  - CSV, first column
  - JSON: go-modlist exports, {"mods": [...]}, CurseForge manifest.json,
    modrinth.index.json and bare arrays
  - packwiz index.toml
  - .mrpack and .zip modpacks`,
		Example: `  # Parse a text list
  go-modlist mods parse mods.txt

  # Inspect a modpack
  go-modlist mods parse pack.mrpack --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.Context(), cmd, cmd.OutOrStdout(), args[0])
		},
	}

	return cmd
}

// runParse executes the parse command
func runParse(ctx context.Context, cmd *cobra.Command, stdout io.Writer, path string) error {
	jsonMode := isJSONMode(cmd)

	list, err := modlist.ParseFile(ctx, path)
	if err != nil {
		return outputError(stdout, jsonMode, err)
	}

	if jsonMode {
		return writeJSON(stdout, list)
	}

	_, _ = fmt.Fprintf(stdout, "Format:       %s\n", list.Format)
	_, _ = fmt.Fprintf(stdout, "Game version: %s\n", firstNonEmpty(list.GameVersion, "-"))
	_, _ = fmt.Fprintf(stdout, "Loader:       %s\n", firstNonEmpty(list.Loader, "-"))
	_, _ = fmt.Fprintf(stdout, "Mods (%d):\n", len(list.Queries))
	for _, q := range list.Queries {
		_, _ = fmt.Fprintf(stdout, "  - %s\n", q)
	}
	return nil
}
