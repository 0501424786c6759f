package modlist

import (
	"encoding/json"
	"fmt"

	"github.com/steviee/go-modlist/internal/catalog"
	"github.com/steviee/go-modlist/internal/resolve"
)

// Selection is a mod chosen for export, with the file picked for it if any.
type Selection struct {
	Mod  catalog.Mod
	File *catalog.File
}

// Export is the document written for a resolved mod list.
type Export struct {
	GameVersion string        `json:"gameVersion"`
	Loader      string        `json:"loader"`
	Mods        []ExportedMod `json:"mods"`
}

// ExportedMod is one entry of an Export.
type ExportedMod struct {
	Title  string         `json:"title"`
	Source catalog.Source `json:"source"`
	Slug   string         `json:"slug"`
	File   *ExportedFile  `json:"file"`
	URL    string         `json:"url"`
}

// ExportedFile is the download of an ExportedMod.
type ExportedFile struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// NewExport builds the export document. Selections sharing a mod key are
// collapsed to the first one.
func NewExport(gameVersion, loader string, selections []Selection) *Export {
	export := &Export{
		GameVersion: gameVersion,
		Loader:      loader,
		Mods:        make([]ExportedMod, 0, len(selections)),
	}

	seen := make(map[string]bool, len(selections))
	for _, s := range selections {
		key := s.Mod.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		entry := ExportedMod{
			Title:  s.Mod.Title,
			Source: s.Mod.Source,
			Slug:   s.Mod.Slug,
			URL:    s.Mod.PageURL(),
		}
		if s.File != nil {
			entry.File = &ExportedFile{
				Name:     s.File.Name,
				Filename: s.File.Filename,
				URL:      s.File.URL,
			}
		}
		export.Mods = append(export.Mods, entry)
	}
	return export
}

// SelectionsFrom collects every outcome that carries a mod, in order.
func SelectionsFrom(outcomes []resolve.Outcome) []Selection {
	selections := make([]Selection, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Mod == nil {
			continue
		}
		selections = append(selections, Selection{Mod: *o.Mod, File: o.File})
	}
	return selections
}

// Marshal renders the export as indented JSON.
func (e *Export) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return append(data, '\n'), nil
}

// DefaultExportName returns the file name an export is saved under by default.
func DefaultExportName(gameVersion, loader string) string {
	if gameVersion == "" {
		gameVersion = "any"
	}
	if loader == "" {
		loader = "any"
	}
	return fmt.Sprintf("modlist-%s-%s.json", gameVersion, loader)
}
