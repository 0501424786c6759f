package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/steviee/go-modlist/internal/app"
	"github.com/steviee/go-modlist/internal/minecraft"
	"github.com/steviee/go-modlist/internal/state"
)

var (
	versionsType  string
	versionsLimit int
)

// NewVersionsCommand creates the versions command
func NewVersionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List Minecraft game versions",
		Long: `List Minecraft versions from Mojang's version manifest, newest first.

These are the values accepted by --game-version. When the manifest cannot
be reached, releases are listed from a built-in table.`,
		Example: `  # Latest ten releases
  go-modlist versions --limit 10

  # Snapshots too
  go-modlist versions --type all --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersions(cmd, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&versionsType, "type", "t", minecraft.TypeRelease, "Version type: release, snapshot or all")
	cmd.Flags().IntVarP(&versionsLimit, "limit", "n", 0, "Maximum versions to list (0 for all)")

	return cmd
}

func runVersions(cmd *cobra.Command, stdout io.Writer) error {
	if versionsLimit < 0 {
		return fmt.Errorf("limit cannot be negative")
	}

	a := app.New(state.ConfigFromContext(cmd.Context()))
	versions, err := a.GameVersions(cmd.Context(), versionsType, versionsLimit)
	if err != nil {
		return fmt.Errorf("list game versions: %w", err)
	}

	if IsJSONOutput() {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"status": "success",
			"data":   map[string]any{"versions": versions, "count": len(versions)},
		})
	}

	for _, v := range versions {
		if versionsType == minecraft.TypeRelease {
			_, _ = fmt.Fprintln(stdout, v.ID)
			continue
		}
		_, _ = fmt.Fprintf(stdout, "%-12s %s\n", v.ID, v.Type)
	}
	return nil
}
