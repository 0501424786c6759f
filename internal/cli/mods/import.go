package mods

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/steviee/go-modlist/internal/modlist"
	"github.com/steviee/go-modlist/internal/resolve"
	"github.com/steviee/go-modlist/internal/state"
	"github.com/steviee/go-modlist/internal/tui"
)

var (
	importVersion    string
	importLoader     string
	importNoAutoPick bool
	importAPIKey     string
	importDelay      time.Duration
	importOutput     string
	importTUI        bool
)

// ImportResult is the JSON payload of mods import
type ImportResult struct {
	File        string            `json:"file"`
	Format      string            `json:"format"`
	Total       int               `json:"total"`
	GameVersion string            `json:"game_version"`
	Loader      string            `json:"loader"`
	Outcomes    []resolve.Outcome `json:"outcomes"`
	Summary     resolve.Summary   `json:"summary"`
	Complete    bool              `json:"complete"`
	ExportPath  string            `json:"export_path,omitempty"`
}

// NewImportCommand creates the mods import subcommand
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Resolve every mod of a mod list",
		Long: `Parse a mod list, resolve each entry in order and optionally write an
export document.

Game version and loader come from the flags, then from the list itself
(exports, manifests and modpack indexes carry them), then from the config.
Queries run one at a time with a pause in between. Interrupting the import
keeps the results resolved so far and still writes the export.

When --output names a directory the export is saved there as
modlist-<version>-<loader>.json. An existing export is kept as .bak.`,
		Example: `  # Import a text list
  go-modlist mods import mods.txt --game-version 1.20.1 --loader fabric

  # Re-resolve a modpack for another version and save the result
  go-modlist mods import pack.mrpack --game-version 1.21.1 --output ./exports

  # Watch progress in the terminal UI
  go-modlist mods import mods.txt --tui --output export.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd, cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
		},
	}

	cmd.Flags().StringVarP(&importVersion, "game-version", "g", "", "Target Minecraft version (overrides the list)")
	cmd.Flags().StringVarP(&importLoader, "loader", "l", "", "Target mod loader (overrides the list)")
	cmd.Flags().BoolVar(&importNoAutoPick, "no-auto-pick", false, "Identify mods without selecting files")
	cmd.Flags().StringVar(&importAPIKey, "curseforge-key", "", "CurseForge API key for this import")
	cmd.Flags().DurationVar(&importDelay, "delay", resolve.DefaultDelay, "Pause between queries (default: config import.delay)")
	cmd.Flags().StringVarP(&importOutput, "output", "o", "", "Write the export to this file or directory")
	cmd.Flags().BoolVar(&importTUI, "tui", false, "Show an interactive progress view")

	return cmd
}

// runImport executes the import command
func runImport(ctx context.Context, cmd *cobra.Command, stdout, stderr io.Writer, path string) error {
	jsonMode := isJSONMode(cmd)

	if importTUI && jsonMode {
		return outputError(stdout, jsonMode, fmt.Errorf("--tui cannot be combined with --json"))
	}
	if err := validateFilters(importVersion, importLoader); err != nil {
		return outputError(stdout, jsonMode, err)
	}

	list, err := modlist.ParseFile(ctx, path)
	if err != nil {
		return outputError(stdout, jsonMode, err)
	}
	if len(list.Queries) == 0 {
		return outputError(stdout, jsonMode, fmt.Errorf("%s contains no mods", path))
	}

	a := newApp(cmd)
	autoPick := a.Config().Defaults.AutoPick
	if cmd.Flags().Changed("no-auto-pick") {
		autoPick = !importNoAutoPick
	}
	req := a.Request("",
		firstNonEmpty(importVersion, list.GameVersion),
		firstNonEmpty(importLoader, list.Loader),
		autoPick)

	delay := time.Duration(-1)
	if cmd.Flags().Changed("delay") {
		delay = importDelay
	}

	slog.Debug("importing mod list",
		"file", path,
		"format", list.Format,
		"queries", len(list.Queries),
		"game_version", req.GameVersion,
		"loader", req.Loader)

	session := a.Session(importAPIKey)
	run := func(ctx context.Context, hooks resolve.Hooks) ([]resolve.Outcome, error) {
		return a.NewBatch(delay, hooks).Run(ctx, session, list.Queries, req)
	}

	var outcomes []resolve.Outcome
	var runErr error
	if importTUI {
		outcomes, runErr = tui.Run(ctx, filepath.Base(path), list.Queries, run)
	} else {
		var hooks resolve.Hooks
		if !jsonMode && !isQuiet(cmd) {
			hooks.OnEvent = progressPrinter(stderr)
		}
		outcomes, runErr = run(ctx, hooks)
	}

	cancelled := errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded)
	if runErr != nil && !cancelled {
		return outputError(stdout, jsonMode, fmt.Errorf("import failed: %w", runErr))
	}

	result := ImportResult{
		File:        path,
		Format:      list.Format,
		Total:       len(list.Queries),
		GameVersion: req.GameVersion,
		Loader:      req.Loader,
		Outcomes:    outcomes,
		Summary:     resolve.Summarize(outcomes),
		Complete:    !cancelled,
	}

	if importOutput != "" {
		exportPath, err := writeExport(importOutput, req.GameVersion, req.Loader, outcomes)
		if err != nil {
			return outputError(stdout, jsonMode, err)
		}
		result.ExportPath = exportPath
	}

	if jsonMode {
		if err := writeJSON(stdout, result); err != nil {
			return err
		}
	} else {
		printImportSummary(stdout, result)
	}

	if cancelled {
		return fmt.Errorf("import cancelled after %d of %d queries: %w", len(outcomes), len(list.Queries), runErr)
	}
	return nil
}

// progressPrinter prints one line per resolved query.
func progressPrinter(w io.Writer) func(resolve.Event) {
	return func(e resolve.Event) {
		switch e.Kind {
		case resolve.EventResolved:
			_, _ = fmt.Fprintf(w, "[%d/%d] %s %s\n", e.Index+1, e.Total, tui.RenderStatus(e.Outcome.Status), e.Query)
		case resolve.EventCancelled:
			_, _ = fmt.Fprintf(w, "cancelled, %d of %d queries resolved\n", e.Index, e.Total)
		}
	}
}

// writeExport saves the export document and returns its path.
func writeExport(output, gameVersion, loader string, outcomes []resolve.Outcome) (string, error) {
	target := output
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		target = filepath.Join(output, modlist.DefaultExportName(gameVersion, loader))
	}

	data, err := modlist.NewExport(gameVersion, loader, modlist.SelectionsFrom(outcomes)).Marshal()
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}

	if err := state.EnsureDir(filepath.Dir(target)); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	if err := state.AtomicWriteWithBackup(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	slog.Debug("export written", "path", target, "bytes", len(data))
	return target, nil
}

func printImportSummary(w io.Writer, r ImportResult) {
	_, _ = fmt.Fprintf(w, "Imported %s (%s) for %s %s\n\n",
		r.File, r.Format, firstNonEmpty(r.GameVersion, "any version"), firstNonEmpty(r.Loader, "any loader"))

	for _, o := range r.Outcomes {
		printOutcome(w, o)
	}

	s := r.Summary
	_, _ = fmt.Fprintf(w, "\n%d found (%d with file), %d version mismatch, %d not found, %d errors\n",
		s.Found, s.WithFile, s.VersionMismatch, s.NotFound, s.Errors)
	if !r.Complete {
		_, _ = fmt.Fprintf(w, "Import was cancelled; %d of the list's mods were not resolved.\n", r.Total-len(r.Outcomes))
	}
	if r.ExportPath != "" {
		_, _ = fmt.Fprintf(w, "Export written to %s\n", r.ExportPath)
	}
}
