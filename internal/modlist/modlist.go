// Package modlist reads mod lists in the formats players share (plain text,
// CSV, several JSON shapes, packwiz indexes, modpack archives) and writes
// the export document.
package modlist

import (
	"path"
	"strings"
)

// Format labels of parsed lists.
const (
	FormatExport             = "go-modlist export"
	FormatJSONList           = "JSON mod list"
	FormatCurseForgeManifest = "CurseForge manifest"
	FormatModrinthIndex      = "Modrinth index"
	FormatJSONArray          = "JSON array"
	FormatPackwizIndex       = "packwiz index"
	FormatCSV                = "CSV"
	FormatText               = "Text list"
)

// ParsedModList is the result of parsing one mod list.
// Queries keep file order and duplicates.
type ParsedModList struct {
	Format      string   `json:"format"`
	Queries     []string `json:"queries"`
	GameVersion string   `json:"game_version,omitempty"`
	Loader      string   `json:"loader,omitempty"`
}

// Parse converts content into mod queries, dispatching on the extension of filename.
func Parse(content []byte, filename string) (*ParsedModList, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".json":
		return parseJSON(content, filename)
	case ".csv":
		return parseCSV(string(content)), nil
	case ".toml":
		return parseTOML(content, filename)
	default:
		return parseText(string(content)), nil
	}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
