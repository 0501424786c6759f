package modlist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"
)

// packIndexes are the index files looked up inside modpack archives, in order.
var packIndexes = []string{"modrinth.index.json", "manifest.json"}

// ParseFile reads and parses the mod list at path. Modpack archives
// (.mrpack, .zip) are opened and their index file is parsed.
func ParseFile(ctx context.Context, path string) (*ParsedModList, error) {
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mrpack", ".zip":
		return parseArchive(ctx, path, name)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mod list: %w", err)
	}
	return Parse(content, name)
}

func parseArchive(ctx context.Context, path, name string) (*ParsedModList, error) {
	fsys, err := archives.FileSystem(ctx, path, nil)
	if err != nil {
		return nil, malformed(name, "cannot open archive", err)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	for _, index := range packIndexes {
		content, err := fs.ReadFile(fsys, index)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, malformed(name, "cannot read "+index, err)
		}

		slog.Debug("Parsing modpack index", "archive", name, "index", index)
		return parseJSON(content, name)
	}

	return nil, unrecognized(name, "archive has no modrinth.index.json or manifest.json")
}
