// Package resolve turns a free-form mod name into the best downloadable file
// across the primary and secondary catalogs.
package resolve

import "github.com/steviee/go-modlist/internal/catalog"

// Status discriminates a resolution outcome.
type Status string

const (
	StatusFound           Status = "found"
	StatusVersionMismatch Status = "version_mismatch"
	StatusNotFound        Status = "not_found"
	StatusError           Status = "error"
)

// Request is one mod to resolve.
type Request struct {
	Query       string
	GameVersion string
	Loader      string
	AutoPick    bool
}

// Session carries per-call caller context. It is never stored.
type Session struct {
	// SecondaryAPIKey enables the secondary catalog when non-empty.
	SecondaryAPIKey string
}

// Outcome is the typed result of resolving one query.
//
//   - found: Mod set; File set unless auto-pick was disabled or unavailable
//   - version_mismatch: Mod set, File nil, AvailableVersions non-empty
//   - not_found, error: Mod nil
type Outcome struct {
	Query             string        `json:"query"`
	Status            Status        `json:"status"`
	Mod               *catalog.Mod  `json:"mod,omitempty"`
	File              *catalog.File `json:"file,omitempty"`
	AvailableVersions []string      `json:"available_versions,omitempty"`
	TargetVersion     string        `json:"target_version,omitempty"`
	Message           string        `json:"message,omitempty"`
}

// HasFile reports whether the outcome is a match with a downloadable file.
func (o Outcome) HasFile() bool {
	return o.Status == StatusFound && o.File != nil
}
