package curseforge

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
)

// GetFiles lists the files of a mod, newest first.
func (c *Client) GetFiles(ctx context.Context, modID int, opts *FilesOptions) ([]File, error) {
	if modID <= 0 {
		return nil, ErrInvalidModID
	}
	if opts == nil {
		opts = &FilesOptions{}
	}

	pageSize := opts.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(pageSize))
	if opts.GameVersion != "" {
		params.Set("gameVersion", opts.GameVersion)
	}
	if opts.LoaderType != LoaderAny {
		params.Set("modLoaderType", strconv.Itoa(int(opts.LoaderType)))
	}

	slog.Debug("fetching mod files",
		"mod_id", modID,
		"game_version", opts.GameVersion,
		"loader_type", opts.LoaderType)

	var res struct {
		Data []File `json:"data"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/mods/%d/files", modID), params, &res); err != nil {
		return nil, fmt.Errorf("get files request: %w", err)
	}

	slog.Debug("files retrieved",
		"mod_id", modID,
		"count", len(res.Data))

	return res.Data, nil
}
