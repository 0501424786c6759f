// Package catalog defines the catalog-neutral mod and file model shared by the
// Modrinth and CurseForge adapters, and the Adapter contract the resolver runs against.
package catalog

import "fmt"

// Source identifies the catalog a mod or file came from.
type Source string

const (
	// SourceModrinth is the primary catalog.
	SourceModrinth Source = "modrinth"

	// SourceCurseForge is the secondary catalog. It requires an API key.
	SourceCurseForge Source = "curseforge"
)

// DisplayName returns the human-readable catalog name used in messages.
func (s Source) DisplayName() string {
	switch s {
	case SourceModrinth:
		return "Modrinth"
	case SourceCurseForge:
		return "CurseForge"
	default:
		return string(s)
	}
}

// ReleaseChannel is the stability channel of a file.
type ReleaseChannel string

const (
	ChannelRelease ReleaseChannel = "release"
	ChannelBeta    ReleaseChannel = "beta"
	ChannelAlpha   ReleaseChannel = "alpha"
)

// Mod is a project normalized from either catalog.
// Values are built once from a catalog response and never mutated afterwards.
type Mod struct {
	ID          string   `json:"id"`
	Source      Source   `json:"source"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	IconURL     string   `json:"icon_url"`
	Downloads   int      `json:"downloads"`
	Author      string   `json:"author"`
	Slug        string   `json:"slug"`
	Categories  []string `json:"categories"`

	// NumericID is the CurseForge project id. Zero for Modrinth projects.
	NumericID int `json:"numeric_id,omitempty"`
}

// Key returns the identity key of the mod, unique across both catalogs.
func (m Mod) Key() string {
	return fmt.Sprintf("%s-%s", m.Source, m.ID)
}

// PageURL returns the public project page for the mod.
func (m Mod) PageURL() string {
	switch m.Source {
	case SourceCurseForge:
		return "https://www.curseforge.com/minecraft/mc-mods/" + m.Slug
	default:
		return "https://modrinth.com/mod/" + m.Slug
	}
}

// File is a downloadable file normalized from either catalog.
type File struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Filename     string         `json:"filename"`
	URL          string         `json:"url"`
	Size         int64          `json:"size"`
	GameVersions []string       `json:"game_versions"`
	Loaders      []string       `json:"loaders"`
	Downloads    int            `json:"downloads"`
	PublishedAt  string         `json:"published_at"`
	Channel      ReleaseChannel `json:"channel"`
}

// SearchQuery holds parameters for a catalog search.
// Empty GameVersion or Loader means unfiltered.
type SearchQuery struct {
	Query       string
	GameVersion string
	Loader      string
	Offset      int
}

// SearchPage is one page of normalized search results.
type SearchPage struct {
	Mods  []Mod
	Total int
}
