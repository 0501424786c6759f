package resolve

import (
	"slices"
	"strings"

	"github.com/steviee/go-modlist/internal/catalog"
)

// PickBestFile selects the best file for version and loader, or nil.
//
// A non-empty version must appear verbatim in a file's GameVersions. The loader
// only narrows the candidates when at least one of them supports it. Among the
// survivors the first release wins, then the first beta, then the first file.
func PickBestFile(files []catalog.File, version, loader string) *catalog.File {
	candidates := make([]*catalog.File, 0, len(files))
	for i := range files {
		if version == "" || slices.Contains(files[i].GameVersions, version) {
			candidates = append(candidates, &files[i])
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	if loader != "" {
		narrowed := make([]*catalog.File, 0, len(candidates))
		for _, f := range candidates {
			if supportsLoader(f, loader) {
				narrowed = append(narrowed, f)
			}
		}
		if len(narrowed) > 0 {
			candidates = narrowed
		}
	}

	for _, channel := range []catalog.ReleaseChannel{catalog.ChannelRelease, catalog.ChannelBeta} {
		for _, f := range candidates {
			if f.Channel == channel {
				return f
			}
		}
	}
	return candidates[0]
}

func supportsLoader(f *catalog.File, loader string) bool {
	for _, l := range f.Loaders {
		if strings.EqualFold(l, loader) {
			return true
		}
	}
	return false
}
