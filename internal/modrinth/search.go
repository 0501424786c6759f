package modrinth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// Search searches projects on Modrinth.
func (c *Client) Search(ctx context.Context, opts *SearchOptions) (*SearchResult, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	params := url.Values{}
	if opts.Query != "" {
		params.Add("query", opts.Query)
	}

	if len(opts.Facets) > 0 {
		facetsJSON, err := json.Marshal(opts.Facets)
		if err != nil {
			return nil, fmt.Errorf("marshal facets: %w", err)
		}
		params.Add("facets", string(facetsJSON))
	}

	params.Add("limit", strconv.Itoa(limit))
	params.Add("offset", strconv.Itoa(opts.Offset))

	slog.Debug("searching Modrinth",
		"query", opts.Query,
		"limit", limit,
		"offset", opts.Offset)

	var result SearchResult
	if err := c.getJSON(ctx, "/search?"+params.Encode(), &result); err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}

	slog.Debug("search completed",
		"hits", len(result.Hits),
		"total", result.TotalHits)

	return &result, nil
}

// SearchMods searches mods, optionally narrowed to a game version and loader.
func (c *Client) SearchMods(ctx context.Context, query, gameVersion, loader string, offset int) (*SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidSearchQuery
	}

	return c.Search(ctx, &SearchOptions{
		Query:  query,
		Facets: ModFacets(gameVersion, loader),
		Offset: offset,
	})
}

// ModFacets builds the facet filter for mod searches.
// Each inner slice is OR-ed, the outer slice is AND-ed.
func ModFacets(gameVersion, loader string) [][]string {
	facets := [][]string{{"project_type:mod"}}
	if gameVersion != "" {
		facets = append(facets, []string{"versions:" + gameVersion})
	}
	if loader != "" {
		facets = append(facets, []string{"categories:" + strings.ToLower(loader)})
	}
	return facets
}
