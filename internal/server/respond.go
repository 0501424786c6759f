package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/steviee/go-modlist/internal/catalog"
	"github.com/steviee/go-modlist/internal/curseforge"
	"github.com/steviee/go-modlist/internal/modlist"
)

// envelope mirrors the CLI's --json output.
type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// badRequest marks errors caused by the caller's input.
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }

func errBadRequest(msg string) error { return badRequest{msg: msg} }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("write response failed", "error", err)
	}
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Status: "success", Data: data})
}

// writeError maps err to a status code and writes an error envelope.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), envelope{Status: "error", Error: err.Error()})
}

func statusFor(err error) int {
	var br badRequest
	var parseErr *modlist.ParseError
	var upstream *catalog.UpstreamError

	switch {
	case errors.As(err, &br), errors.Is(err, curseforge.ErrMissingAPIKey):
		return http.StatusBadRequest
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
