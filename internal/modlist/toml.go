package modlist

import (
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// packwizIndex is the index.toml of a packwiz pack.
type packwizIndex struct {
	HashFormat string `toml:"hash-format"`
	Files      []struct {
		File     string `toml:"file"`
		Metafile bool   `toml:"metafile"`
	} `toml:"files"`
}

// parseTOML reads a packwiz index. Every metafile entry "mods/<name>.pw.toml"
// becomes a query for <name>.
func parseTOML(content []byte, filename string) (*ParsedModList, error) {
	var index packwizIndex
	if err := toml.Unmarshal(content, &index); err != nil {
		return nil, malformed(filename, "invalid TOML", err)
	}
	if len(index.Files) == 0 {
		return nil, unrecognized(filename, "no [[files]] entries found")
	}

	names := make([]string, 0, len(index.Files))
	for _, f := range index.Files {
		if !f.Metafile && !strings.HasSuffix(f.File, ".pw.toml") {
			continue
		}
		names = append(names, strings.TrimSuffix(path.Base(f.File), ".pw.toml"))
	}
	return &ParsedModList{Format: FormatPackwizIndex, Queries: nonEmpty(names)}, nil
}
