package mods

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steviee/go-modlist/internal/catalog"
)

var (
	searchSource  string
	searchVersion string
	searchLoader  string
	searchOffset  int
	searchAPIKey  string
)

// SearchResultData holds one search hit for JSON output
type SearchResultData struct {
	ID          string         `json:"id"`
	Source      catalog.Source `json:"source"`
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Downloads   int            `json:"downloads"`
	IconURL     string         `json:"icon_url"`
	Author      string         `json:"author"`
	Categories  []string       `json:"categories"`
	URL         string         `json:"url"`
}

// NewSearchCommand creates the mods search subcommand
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search Modrinth or CurseForge for mods",
		Long: `Search one catalog for mods with optional game version and loader filters.

Modrinth is searched by default. CurseForge requires an API key. Results are
paged; use --offset to see the next page.`,
		Example: `  # Search for a mod
  go-modlist mods search sodium

  # Filter by game version and loader
  go-modlist mods search "fabric api" --game-version 1.20.1 --loader fabric

  # Search CurseForge
  go-modlist mods search jei --source curseforge --curseforge-key $KEY

  # Get JSON output for scripting
  go-modlist mods search lithium --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), cmd, cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().StringVarP(&searchSource, "source", "s", string(catalog.SourceModrinth), "Catalog to search: modrinth or curseforge")
	cmd.Flags().StringVarP(&searchVersion, "game-version", "g", "", "Filter by Minecraft version (e.g., 1.20.1)")
	cmd.Flags().StringVarP(&searchLoader, "loader", "l", "", "Filter by mod loader (fabric, forge, neoforge, quilt)")
	cmd.Flags().IntVar(&searchOffset, "offset", 0, "Number of results to skip")
	cmd.Flags().StringVar(&searchAPIKey, "curseforge-key", "", "CurseForge API key for this call")

	return cmd
}

// runSearch executes the search command
func runSearch(ctx context.Context, cmd *cobra.Command, stdout io.Writer, query string) error {
	jsonMode := isJSONMode(cmd)

	query = strings.TrimSpace(query)
	if query == "" {
		return outputError(stdout, jsonMode, fmt.Errorf("query cannot be empty"))
	}
	if searchOffset < 0 {
		return outputError(stdout, jsonMode, fmt.Errorf("offset cannot be negative"))
	}
	if err := validateFilters(searchVersion, searchLoader); err != nil {
		return outputError(stdout, jsonMode, err)
	}

	a := newApp(cmd)
	source := catalog.Source(strings.ToLower(searchSource))
	adapter, err := a.Adapter(source, a.Session(searchAPIKey))
	if err != nil {
		return outputError(stdout, jsonMode, err)
	}

	page, err := adapter.Search(ctx, catalog.SearchQuery{
		Query:       query,
		GameVersion: searchVersion,
		Loader:      strings.ToLower(searchLoader),
		Offset:      searchOffset,
	})
	if err != nil {
		return outputError(stdout, jsonMode, fmt.Errorf("search failed: %w", err))
	}

	if jsonMode {
		return outputSearchJSON(stdout, adapter.Source(), page)
	}
	return outputSearchTable(stdout, adapter.Source(), page)
}

// outputSearchTable outputs results in table format
func outputSearchTable(stdout io.Writer, source catalog.Source, page catalog.SearchPage) error {
	if len(page.Mods) == 0 {
		_, _ = fmt.Fprintf(stdout, "No mods found on %s. Try a different search query.\n", source.DisplayName())
		return nil
	}

	_, _ = fmt.Fprintf(stdout, "%-24s %-28s %-10s %-16s %s\n",
		"SLUG", "TITLE", "DOWNLOADS", "AUTHOR", "DESCRIPTION")
	_, _ = fmt.Fprintf(stdout, "%s\n", strings.Repeat("-", 110))

	for _, mod := range page.Mods {
		_, _ = fmt.Fprintf(stdout, "%-24s %-28s %-10s %-16s %s\n",
			truncate(mod.Slug, 24),
			truncate(mod.Title, 28),
			formatDownloads(mod.Downloads),
			truncate(mod.Author, 16),
			truncate(mod.Description, 40))
	}

	shown := searchOffset + len(page.Mods)
	if page.Total > shown {
		_, _ = fmt.Fprintf(stdout, "\nShowing %d-%d of %d results on %s. Use --offset %d for more.\n",
			searchOffset+1, shown, page.Total, source.DisplayName(), shown)
	} else {
		_, _ = fmt.Fprintf(stdout, "\nFound %d result(s) on %s.\n", page.Total, source.DisplayName())
	}

	return nil
}

// outputSearchJSON outputs results in JSON format
func outputSearchJSON(stdout io.Writer, source catalog.Source, page catalog.SearchPage) error {
	results := make([]SearchResultData, len(page.Mods))
	for i, mod := range page.Mods {
		results[i] = SearchResultData{
			ID:          mod.ID,
			Source:      mod.Source,
			Slug:        mod.Slug,
			Title:       mod.Title,
			Description: mod.Description,
			Downloads:   mod.Downloads,
			IconURL:     mod.IconURL,
			Author:      mod.Author,
			Categories:  mod.Categories,
			URL:         mod.PageURL(),
		}
	}

	return writeJSON(stdout, map[string]any{
		"source":  source,
		"results": results,
		"count":   len(results),
		"total":   page.Total,
		"offset":  searchOffset,
	})
}
