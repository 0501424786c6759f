package modlist

import (
	"bytes"
	"encoding/json"
	"path"
	"regexp"
	"strconv"
	"strings"
)

// versionSuffix matches a trailing "-1.2.3..." version part of a jar name.
var versionSuffix = regexp.MustCompile(`-[\d.]+.*$`)

// jsonShape decodes one known document layout. ok is false when the required
// fields are missing or have the wrong type, so the next shape can be tried.
type jsonShape func(doc map[string]json.RawMessage) (list *ParsedModList, ok bool)

// objectShapes are tried in priority order; the first match wins.
var objectShapes = []jsonShape{
	exportShape,
	curseForgeManifestShape,
	modrinthIndexShape,
}

func parseJSON(content []byte, filename string) (*ParsedModList, error) {
	trimmed := bytes.TrimSpace(content)
	if !json.Valid(trimmed) {
		var probe any
		err := json.Unmarshal(trimmed, &probe)
		return nil, malformed(filename, "invalid JSON", err)
	}

	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, malformed(filename, "invalid JSON", err)
		}
		queries, ok := entryNames(items, "slug", "name")
		if !ok {
			return nil, unrecognized(filename, "array entries must be strings or objects with slug or name")
		}
		return &ParsedModList{Format: FormatJSONArray, Queries: queries}, nil

	case bytes.HasPrefix(trimmed, []byte("{")):
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, malformed(filename, "invalid JSON", err)
		}
		for _, shape := range objectShapes {
			if list, ok := shape(doc); ok {
				return list, nil
			}
		}
	}

	return nil, unrecognized(filename, "no known JSON mod list shape matched")
}

// exportShape: {"mods": [string | {slug, title}], "gameVersion"?, "loader"?}
func exportShape(doc map[string]json.RawMessage) (*ParsedModList, bool) {
	var mods []json.RawMessage
	if !decodeField(doc, "mods", &mods) {
		return nil, false
	}
	queries, ok := entryNames(mods, "slug", "title")
	if !ok {
		return nil, false
	}

	format := FormatJSONList
	for _, m := range mods {
		if isObject(m) {
			format = FormatExport
			break
		}
	}

	list := &ParsedModList{Format: format, Queries: queries}
	decodeField(doc, "gameVersion", &list.GameVersion)
	decodeField(doc, "loader", &list.Loader)
	return list, true
}

// curseForgeManifestShape: {"minecraft": {...}, "files": [{"projectID": n}]}
func curseForgeManifestShape(doc map[string]json.RawMessage) (*ParsedModList, bool) {
	var minecraft struct {
		Version    string `json:"version"`
		ModLoaders []struct {
			ID string `json:"id"`
		} `json:"modLoaders"`
	}
	var files []struct {
		ProjectID json.Number `json:"projectID"`
	}
	if !decodeObjectField(doc, "minecraft", &minecraft) || !decodeField(doc, "files", &files) {
		return nil, false
	}

	queries := make([]string, 0, len(files))
	for _, f := range files {
		if id, err := strconv.Atoi(f.ProjectID.String()); err == nil && id > 0 {
			queries = append(queries, strconv.Itoa(id))
		}
	}

	list := &ParsedModList{
		Format:      FormatCurseForgeManifest,
		Queries:     queries,
		GameVersion: minecraft.Version,
	}
	if len(minecraft.ModLoaders) > 0 {
		list.Loader = loaderFromID(minecraft.ModLoaders[0].ID)
	}
	return list, true
}

// modrinthIndexShape: {"dependencies": {...}, "files": [{"path": "mods/x.jar"}]}
func modrinthIndexShape(doc map[string]json.RawMessage) (*ParsedModList, bool) {
	var deps map[string]string
	var files []struct {
		Path string `json:"path"`
	}
	if !decodeObjectField(doc, "dependencies", &deps) || !decodeField(doc, "files", &files) {
		return nil, false
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, NameFromJar(f.Path))
	}

	return &ParsedModList{
		Format:      FormatModrinthIndex,
		Queries:     nonEmpty(names),
		GameVersion: deps["minecraft"],
		Loader:      loaderFromDependencies(deps),
	}, true
}

// NameFromJar derives a bare mod name from a file path such as
// "mods/sodium-fabric-0.5.8+mc1.20.1.jar" ("sodium-fabric").
func NameFromJar(p string) string {
	name := path.Base(strings.ReplaceAll(p, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	for _, ext := range []string{".jar", ".zip"} {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			name = name[:len(name)-len(ext)]
			break
		}
	}
	return versionSuffix.ReplaceAllString(name, "")
}

// loaderFromID maps a manifest loader id like "neoforge-20.4.80" to a loader.
func loaderFromID(id string) string {
	id = strings.ToLower(id)
	for _, loader := range []string{"neoforge", "quilt", "fabric", "forge"} {
		if strings.Contains(id, loader) {
			return loader
		}
	}
	return ""
}

// loaderFromDependencies picks the loader of a Modrinth index.
func loaderFromDependencies(deps map[string]string) string {
	for _, d := range []struct{ key, loader string }{
		{"quilt-loader", "quilt"},
		{"neoforge", "neoforge"},
		{"forge", "forge"},
		{"fabric-loader", "fabric"},
	} {
		if deps[d.key] != "" {
			return d.loader
		}
	}
	return ""
}

// entryNames reads entries that are strings or objects carrying one of keys
// as a string. ok is false if any entry is neither.
func entryNames(items []json.RawMessage, keys ...string) ([]string, bool) {
	names := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			names = append(names, s)
			continue
		}

		var obj map[string]any
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			return nil, false
		}
		name, found := "", false
		for _, k := range keys {
			v, ok := obj[k].(string)
			if !ok {
				continue
			}
			found = true
			if strings.TrimSpace(v) != "" {
				name = v
				break
			}
		}
		if !found {
			return nil, false
		}
		names = append(names, name)
	}
	return nonEmpty(names), true
}

// decodeField decodes doc[key] into out. Missing, null or mistyped fields report false.
func decodeField(doc map[string]json.RawMessage, key string, out any) bool {
	raw, ok := doc[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// decodeObjectField is decodeField restricted to JSON objects.
func decodeObjectField(doc map[string]json.RawMessage, key string, out any) bool {
	raw, ok := doc[key]
	if !ok || !isObject(raw) {
		return false
	}
	return decodeField(doc, key, out)
}

func isObject(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{"))
}
