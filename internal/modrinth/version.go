package modrinth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
)

// GetVersions fetches the versions of a project, newest first, with optional filtering.
func (c *Client) GetVersions(ctx context.Context, projectID string, filter *VersionFilter) ([]Version, error) {
	if projectID == "" {
		return nil, fmt.Errorf("project ID cannot be empty")
	}

	params := url.Values{}
	if filter != nil {
		if len(filter.Loaders) > 0 {
			loadersJSON, err := json.Marshal(filter.Loaders)
			if err != nil {
				return nil, fmt.Errorf("marshal loaders: %w", err)
			}
			params.Add("loaders", string(loadersJSON))
		}

		if len(filter.GameVersions) > 0 {
			versionsJSON, err := json.Marshal(filter.GameVersions)
			if err != nil {
				return nil, fmt.Errorf("marshal game versions: %w", err)
			}
			params.Add("game_versions", string(versionsJSON))
		}
	}

	path := "/project/" + url.PathEscape(projectID) + "/version"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	slog.Debug("fetching project versions",
		"project_id", projectID,
		"filter", filter)

	var versions []Version
	if err := c.getJSON(ctx, path, &versions); err != nil {
		return nil, fmt.Errorf("get versions request: %w", err)
	}

	slog.Debug("versions retrieved",
		"project_id", projectID,
		"count", len(versions))

	return versions, nil
}

// PrimaryFile returns the file flagged primary, else the first file, else nil.
func PrimaryFile(version *Version) *File {
	if version == nil || len(version.Files) == 0 {
		return nil
	}

	for i := range version.Files {
		if version.Files[i].Primary {
			return &version.Files[i]
		}
	}

	return &version.Files[0]
}
