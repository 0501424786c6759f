package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/steviee/go-modlist/internal/catalog"
	"github.com/steviee/go-modlist/internal/minecraft"
	"github.com/steviee/go-modlist/internal/modlist"
	"github.com/steviee/go-modlist/internal/resolve"
	"github.com/steviee/go-modlist/internal/state"
)

// searchResponse is one page of search results.
type searchResponse struct {
	Source catalog.Source `json:"source"`
	Mods   []catalog.Mod  `json:"mods"`
	Total  int            `json:"total"`
	Offset int            `json:"offset"`
}

// batchRequest is the body of POST /api/modlist/resolve.
type batchRequest struct {
	Queries     []string `json:"queries"`
	GameVersion string   `json:"game_version"`
	Loader      string   `json:"loader"`
	AutoPick    *bool    `json:"auto_pick"`
}

// batchResponse holds the outcomes of a batch and the export built from them.
type batchResponse struct {
	BatchID     string            `json:"batch_id"`
	GameVersion string            `json:"game_version"`
	Loader      string            `json:"loader"`
	Outcomes    []resolve.Outcome `json:"outcomes"`
	Summary     resolve.Summary   `json:"summary"`
	Export      *modlist.Export   `json:"export"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSearch runs one catalog search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := strings.TrimSpace(q.Get("q"))
	if query == "" {
		writeError(w, errBadRequest("missing query parameter q"))
		return
	}

	offset := 0
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, errBadRequest("offset must be a non-negative integer"))
			return
		}
		offset = n
	}

	gameVersion, loader := q.Get("game_version"), strings.ToLower(q.Get("loader"))
	if err := validateFilters(gameVersion, loader); err != nil {
		writeError(w, err)
		return
	}

	adapter, err := s.app.Adapter(catalog.Source(strings.ToLower(q.Get("source"))), s.session(r))
	if err != nil {
		// Unknown source or missing key
		writeError(w, errBadRequest(err.Error()))
		return
	}

	page, err := adapter.Search(r.Context(), catalog.SearchQuery{
		Query:       query,
		GameVersion: gameVersion,
		Loader:      loader,
		Offset:      offset,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	mods := page.Mods
	if mods == nil {
		mods = []catalog.Mod{}
	}
	writeData(w, searchResponse{Source: adapter.Source(), Mods: mods, Total: page.Total, Offset: offset})
}

// handleResolve resolves one query across both catalogs.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := strings.TrimSpace(q.Get("q"))
	if query == "" {
		writeError(w, errBadRequest("missing query parameter q"))
		return
	}

	gameVersion, loader := q.Get("game_version"), strings.ToLower(q.Get("loader"))
	if err := validateFilters(gameVersion, loader); err != nil {
		writeError(w, err)
		return
	}

	autoPick, err := s.autoPick(q.Get("auto_pick"))
	if err != nil {
		writeError(w, err)
		return
	}

	req := s.app.Request(query, gameVersion, loader, autoPick)
	outcome := s.app.Orchestrator().Resolve(r.Context(), s.session(r), req)
	writeData(w, outcome)
}

// handleParse parses a mod list sent as the raw request body.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	filename := strings.TrimSpace(r.URL.Query().Get("filename"))
	if filename == "" {
		filename = "modlist.txt"
	}

	content, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		writeError(w, errBadRequest("read body: "+err.Error()))
		return
	}
	if len(content) > maxBodyBytes {
		writeError(w, errBadRequest("mod list too large"))
		return
	}

	list, err := modlist.Parse(content, filename)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, list)
}

// handleBatch resolves a list of queries in order. A client disconnect
// cancels the remaining queries.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var body batchRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeError(w, errBadRequest("invalid request body: "+err.Error()))
		return
	}

	queries := make([]string, 0, len(body.Queries))
	for _, q := range body.Queries {
		if q = strings.TrimSpace(q); q != "" {
			queries = append(queries, q)
		}
	}
	if len(queries) == 0 {
		writeError(w, errBadRequest("queries must contain at least one non-empty entry"))
		return
	}
	if len(queries) > maxBatchQueries {
		writeError(w, errBadRequest(fmt.Sprintf("at most %d queries per batch", maxBatchQueries)))
		return
	}

	loader := strings.ToLower(body.Loader)
	if err := validateFilters(body.GameVersion, loader); err != nil {
		writeError(w, err)
		return
	}

	autoPick := s.app.Config().Defaults.AutoPick
	if body.AutoPick != nil {
		autoPick = *body.AutoPick
	}

	batchID := uuid.NewString()
	req := s.app.Request("", body.GameVersion, loader, autoPick)

	slog.Info("batch started",
		"batch_id", batchID,
		"queries", len(queries),
		"game_version", req.GameVersion,
		"loader", req.Loader)

	outcomes, err := s.app.NewBatch(-1, resolve.Hooks{}).Run(r.Context(), s.session(r), queries, req)
	if err != nil {
		// The client is gone; nobody reads the response
		slog.Info("batch cancelled", "batch_id", batchID, "resolved", len(outcomes), "error", err)
		return
	}

	writeData(w, batchResponse{
		BatchID:     batchID,
		GameVersion: req.GameVersion,
		Loader:      req.Loader,
		Outcomes:    outcomes,
		Summary:     resolve.Summarize(outcomes),
		Export:      modlist.NewExport(req.GameVersion, req.Loader, modlist.SelectionsFrom(outcomes)),
	})
}

// handleGameVersions lists Minecraft versions for target selection.
func (s *Server) handleGameVersions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	versionType := q.Get("type")
	if versionType == "" {
		versionType = minecraft.TypeRelease
	}
	if err := minecraft.ValidateType(versionType); err != nil {
		writeError(w, errBadRequest(err.Error()))
		return
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, errBadRequest("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	versions, err := s.app.GameVersions(r.Context(), versionType, limit)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, envelope{Status: "error", Error: err.Error()})
		return
	}
	writeData(w, map[string]any{"versions": versions})
}

// session reads the per-request CurseForge key, falling back to the configured one.
func (s *Server) session(r *http.Request) resolve.Session {
	return s.app.Session(r.Header.Get(APIKeyHeader))
}

func (s *Server) autoPick(raw string) (bool, error) {
	if raw == "" {
		return s.app.Config().Defaults.AutoPick, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errBadRequest("auto_pick must be a boolean")
	}
	return v, nil
}

func validateFilters(gameVersion, loader string) error {
	if gameVersion != "" {
		if err := state.ValidateGameVersion(gameVersion); err != nil {
			return errBadRequest(err.Error())
		}
	}
	if loader != "" {
		if err := state.ValidateLoader(loader); err != nil {
			return errBadRequest(err.Error())
		}
	}
	return nil
}
