package catalog

import "strings"

// Loaders lists the mod loaders the tool understands, lower-case.
var Loaders = []string{"fabric", "forge", "neoforge", "quilt"}

// knownLoaderTags are the loader names CurseForge mixes into a file's
// gameVersions list, spelled exactly as the API returns them.
// A loader missing here would be classified as a game version.
var knownLoaderTags = map[string]bool{
	"Forge":    true,
	"Fabric":   true,
	"NeoForge": true,
	"Quilt":    true,
}

// IsKnownLoader reports whether name is a supported loader (case-insensitive).
func IsKnownLoader(name string) bool {
	name = strings.ToLower(name)
	for _, l := range Loaders {
		if l == name {
			return true
		}
	}
	return false
}

// SplitTags separates a conflated tag list into game versions and loaders.
// Loader tags are returned lower-cased; order within each group is preserved.
func SplitTags(tags []string) (gameVersions, loaders []string) {
	gameVersions = make([]string, 0, len(tags))
	loaders = make([]string, 0, 1)
	for _, tag := range tags {
		if knownLoaderTags[tag] {
			loaders = append(loaders, strings.ToLower(tag))
			continue
		}
		gameVersions = append(gameVersions, tag)
	}
	return gameVersions, loaders
}
