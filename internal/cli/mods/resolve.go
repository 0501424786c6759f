package mods

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/steviee/go-modlist/internal/resolve"
	"github.com/steviee/go-modlist/internal/tui"
)

var (
	resolveVersion    string
	resolveLoader     string
	resolveNoAutoPick bool
	resolveAPIKey     string
	resolveDelay      time.Duration
)

// NewResolveCommand creates the mods resolve subcommand
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <query>...",
		Short: "Resolve mod names to downloadable files",
		Long: `Resolve one or more mod names, slugs or ids to the best file for a game
version and loader.

Each query is tried as an exact slug or id first, then as a fuzzy search
over name variations. Modrinth is searched first; CurseForge is searched when
an API key is available and Modrinth has no matching file.

Statuses:
  - found:            a matching mod (and file, unless --no-auto-pick)
  - version_mismatch: the mod exists but has no file for the game version
  - not_found:        no catalog knows the mod
  - error:            a catalog request failed`,
		Example: `  # Resolve a single mod
  go-modlist mods resolve sodium --game-version 1.20.1

  # Resolve several mods for Forge
  go-modlist mods resolve jei "Applied Energistics 2" --loader forge

  # Only identify mods, do not pick files
  go-modlist mods resolve sodium lithium --no-auto-pick --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, cmd.OutOrStdout(), args)
		},
	}

	cmd.Flags().StringVarP(&resolveVersion, "game-version", "g", "", "Target Minecraft version (default: config defaults.game_version)")
	cmd.Flags().StringVarP(&resolveLoader, "loader", "l", "", "Target mod loader (default: config defaults.loader)")
	cmd.Flags().BoolVar(&resolveNoAutoPick, "no-auto-pick", false, "Identify mods without selecting a file")
	cmd.Flags().StringVar(&resolveAPIKey, "curseforge-key", "", "CurseForge API key for this call")
	cmd.Flags().DurationVar(&resolveDelay, "delay", resolve.DefaultDelay, "Pause between queries")

	return cmd
}

// runResolve executes the resolve command
func runResolve(ctx context.Context, cmd *cobra.Command, stdout io.Writer, queries []string) error {
	jsonMode := isJSONMode(cmd)

	if err := validateFilters(resolveVersion, resolveLoader); err != nil {
		return outputError(stdout, jsonMode, err)
	}

	cleaned := make([]string, 0, len(queries))
	for _, q := range queries {
		if q = strings.TrimSpace(q); q != "" {
			cleaned = append(cleaned, q)
		}
	}
	if len(cleaned) == 0 {
		return outputError(stdout, jsonMode, fmt.Errorf("at least one non-empty query is required"))
	}

	a := newApp(cmd)
	autoPick := a.Config().Defaults.AutoPick
	if cmd.Flags().Changed("no-auto-pick") {
		autoPick = !resolveNoAutoPick
	}
	req := a.Request("", resolveVersion, resolveLoader, autoPick)

	delay := time.Duration(-1)
	if cmd.Flags().Changed("delay") {
		delay = resolveDelay
	}

	outcomes, err := a.NewBatch(delay, resolve.Hooks{}).Run(ctx, a.Session(resolveAPIKey), cleaned, req)
	if err != nil {
		return outputError(stdout, jsonMode, fmt.Errorf("resolve cancelled after %d of %d queries: %w", len(outcomes), len(cleaned), err))
	}

	if jsonMode {
		return writeJSON(stdout, map[string]any{
			"game_version": req.GameVersion,
			"loader":       req.Loader,
			"outcomes":     outcomes,
			"summary":      resolve.Summarize(outcomes),
		})
	}

	for _, o := range outcomes {
		printOutcome(stdout, o)
	}
	return nil
}

// printOutcome writes a one or two line description of an outcome.
func printOutcome(w io.Writer, o resolve.Outcome) {
	_, _ = fmt.Fprintf(w, "%s %s\n", tui.RenderStatus(o.Status), o.Query)

	switch {
	case o.HasFile():
		_, _ = fmt.Fprintf(w, "    %s (%s) -> %s [%s]\n",
			o.Mod.Title, o.Mod.Source.DisplayName(), o.File.Filename, formatSize(o.File.Size))
		_, _ = fmt.Fprintf(w, "    %s\n", o.File.URL)
	case o.Mod != nil && o.Status == resolve.StatusFound:
		_, _ = fmt.Fprintf(w, "    %s (%s) %s\n", o.Mod.Title, o.Mod.Source.DisplayName(), o.Mod.PageURL())
	case o.Status == resolve.StatusVersionMismatch:
		_, _ = fmt.Fprintf(w, "    %s\n", o.Message)
		_, _ = fmt.Fprintf(w, "    available: %s\n", strings.Join(o.AvailableVersions, ", "))
	case o.Message != "":
		_, _ = fmt.Fprintf(w, "    %s\n", o.Message)
	}
}
