package mods

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/steviee/go-modlist/internal/app"
	"github.com/steviee/go-modlist/internal/state"
)

// Output is the JSON envelope of every mods subcommand
type Output struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// isJSONMode reports whether the global --json flag is set.
// GOMODLIST_JSON=true enables it for scripts that cannot pass flags.
func isJSONMode(cmd *cobra.Command) bool {
	return boolFlag(cmd, "json") || os.Getenv("GOMODLIST_JSON") == "true"
}

// isQuiet reports whether the global --quiet flag is set.
func isQuiet(cmd *cobra.Command) bool {
	return boolFlag(cmd, "quiet")
}

func boolFlag(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		return false
	}
	v, err := strconv.ParseBool(f.Value.String())
	return err == nil && v
}

// newApp builds the App from the config loaded by the root command.
func newApp(cmd *cobra.Command) *app.App {
	return app.New(state.ConfigFromContext(cmd.Context()))
}

// writeJSON writes a success envelope.
func writeJSON(stdout io.Writer, data any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(Output{Status: "success", Data: data})
}

// outputError prints err as an error envelope in JSON mode and returns it.
func outputError(stdout io.Writer, jsonMode bool, err error) error {
	if jsonMode {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(Output{Status: "error", Error: err.Error()})
	}
	return err
}

// validateFilters checks optional game version and loader flags.
func validateFilters(gameVersion, loader string) error {
	if gameVersion != "" {
		if err := state.ValidateGameVersion(gameVersion); err != nil {
			return err
		}
	}
	if loader != "" {
		if err := state.ValidateLoader(loader); err != nil {
			return err
		}
	}
	return nil
}

// truncate truncates a string to the specified maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatDownloads formats download counts in human-readable format
func formatDownloads(n int) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
	if n >= 1000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}

// formatSize formats a file size, or "-" when unknown.
func formatSize(size int64) string {
	if size <= 0 {
		return "-"
	}
	return units.HumanSize(float64(size))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
