package mods

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the mods command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mods",
		Short: "Search and resolve Minecraft mods",
		Long: `Search Modrinth and CurseForge, resolve mod names to downloadable files,
and import whole mod lists.

Resolution tries Modrinth first. CurseForge is searched only when an API key
is configured (catalogs.curseforge.api_key, GOMODLIST_CURSEFORGE_API_KEY or
--curseforge-key). Game version and loader fall back to the configured defaults.`,
		Example: `  # Search Modrinth
  go-modlist mods search sodium --game-version 1.20.1

  # Search CurseForge
  go-modlist mods search jei --source curseforge --curseforge-key $KEY

  # Resolve names to files
  go-modlist mods resolve sodium lithium "Fabric API" --game-version 1.20.1

  # Show what a mod list contains
  go-modlist mods parse modrinth.index.json

  # Import a mod list and write an export
  go-modlist mods import mods.txt --output export.json --tui`,
		Aliases: []string{"mod"},
	}

	cmd.AddCommand(NewSearchCommand())
	cmd.AddCommand(NewResolveCommand())
	cmd.AddCommand(NewParseCommand())
	cmd.AddCommand(NewImportCommand())

	return cmd
}
