package modrinth

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// GetProject fetches project details by ID or slug.
func (c *Client) GetProject(ctx context.Context, idOrSlug string) (*ProjectDetails, error) {
	if strings.TrimSpace(idOrSlug) == "" {
		return nil, fmt.Errorf("project ID or slug cannot be empty")
	}

	slog.Debug("fetching project details",
		"id_or_slug", idOrSlug)

	var project ProjectDetails
	if err := c.getJSON(ctx, "/project/"+url.PathEscape(idOrSlug), &project); err != nil {
		return nil, fmt.Errorf("get project request: %w", err)
	}

	slog.Debug("project details retrieved",
		"id", project.ID,
		"title", project.Title)

	return &project, nil
}
