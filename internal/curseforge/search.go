package curseforge

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultSearchPageSize = 20
	maxPageSize           = 50
)

// Search searches Minecraft mods, most popular first.
func (c *Client) Search(ctx context.Context, opts *SearchOptions) (*SearchResult, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}

	pageSize := opts.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultSearchPageSize
	}

	params := url.Values{}
	params.Set("gameId", strconv.Itoa(GameIDMinecraft))
	params.Set("classId", strconv.Itoa(ClassIDMods))
	if opts.Slug != "" {
		params.Set("slug", opts.Slug)
	} else {
		params.Set("searchFilter", opts.Query)
		params.Set("sortField", strconv.Itoa(sortFieldPopularity))
		params.Set("sortOrder", "desc")
		params.Set("pageSize", strconv.Itoa(pageSize))
		params.Set("index", strconv.Itoa(opts.Index))
	}
	if opts.GameVersion != "" {
		params.Set("gameVersion", opts.GameVersion)
	}
	if opts.LoaderType != LoaderAny {
		params.Set("modLoaderType", strconv.Itoa(int(opts.LoaderType)))
	}

	slog.Debug("searching CurseForge",
		"query", opts.Query,
		"slug", opts.Slug,
		"index", opts.Index)

	var result SearchResult
	if err := c.getJSON(ctx, "/mods/search", params, &result); err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}

	slog.Debug("search completed",
		"hits", len(result.Data),
		"total", result.Pagination.TotalCount)

	return &result, nil
}

// SearchBySlug returns the mod whose slug matches exactly (case-insensitive),
// else the first hit, else nil.
func (c *Client) SearchBySlug(ctx context.Context, slug string) (*Mod, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, nil
	}

	result, err := c.Search(ctx, &SearchOptions{Slug: slug})
	if err != nil {
		return nil, err
	}
	if len(result.Data) == 0 {
		return nil, nil
	}

	for i := range result.Data {
		if strings.EqualFold(result.Data[i].Slug, slug) {
			return &result.Data[i], nil
		}
	}
	return &result.Data[0], nil
}

// GetMod fetches a mod by numeric id.
func (c *Client) GetMod(ctx context.Context, modID int) (*Mod, error) {
	if modID <= 0 {
		return nil, ErrInvalidModID
	}

	slog.Debug("fetching mod details", "mod_id", modID)

	var res struct {
		Data Mod `json:"data"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/mods/%d", modID), nil, &res); err != nil {
		return nil, fmt.Errorf("get mod request: %w", err)
	}
	return &res.Data, nil
}
