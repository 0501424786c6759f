// Package app wires the catalog clients, adapters and resolvers from configuration.
// The CLI and the HTTP API share one App per process.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/steviee/go-modlist/internal/catalog"
	"github.com/steviee/go-modlist/internal/curseforge"
	"github.com/steviee/go-modlist/internal/minecraft"
	"github.com/steviee/go-modlist/internal/modrinth"
	"github.com/steviee/go-modlist/internal/resolve"
	"github.com/steviee/go-modlist/internal/state"
)

// App holds the long-lived clients. It carries no per-request state: the
// CurseForge key travels in resolve.Session.
type App struct {
	cfg          *state.Config
	modrinth     *modrinth.Adapter
	curseforge   *curseforge.Client
	versions     *minecraft.Client
	orchestrator *resolve.Orchestrator
}

// New builds an App from cfg. A nil cfg uses the defaults.
func New(cfg *state.Config) *App {
	if cfg == nil {
		cfg = state.DefaultConfig()
	}

	mr := modrinth.NewAdapter(modrinth.NewClient(&modrinth.Config{
		BaseURL:   cfg.Catalogs.Modrinth.BaseURL,
		Timeout:   cfg.Catalogs.Timeout,
		UserAgent: cfg.Catalogs.UserAgent,
	}))

	cf := curseforge.NewClient(&curseforge.Config{
		BaseURL:   cfg.Catalogs.CurseForge.BaseURL,
		APIKey:    cfg.Catalogs.CurseForge.APIKey,
		Timeout:   cfg.Catalogs.Timeout,
		UserAgent: cfg.Catalogs.UserAgent,
	})

	versions := minecraft.NewClient(&minecraft.Config{
		ManifestURL: cfg.Catalogs.Minecraft.ManifestURL,
		Timeout:     cfg.Catalogs.Timeout,
		UserAgent:   cfg.Catalogs.UserAgent,
		CacheTTL:    cfg.Catalogs.Minecraft.CacheTTL,
	})

	a := &App{cfg: cfg, modrinth: mr, curseforge: cf, versions: versions}
	a.orchestrator = resolve.NewOrchestrator(mr, a.curseForgeAdapter)
	return a
}

// Config returns the configuration the App was built from.
func (a *App) Config() *state.Config {
	return a.cfg
}

// Orchestrator returns the multi-source resolver.
func (a *App) Orchestrator() *resolve.Orchestrator {
	return a.orchestrator
}

// Session builds the per-call session. A non-empty override replaces the
// configured CurseForge key.
func (a *App) Session(override string) resolve.Session {
	key := strings.TrimSpace(override)
	if key == "" {
		key = a.cfg.Catalogs.CurseForge.APIKey
	}
	return resolve.Session{SecondaryAPIKey: key}
}

// Request fills empty fields of a request from the configured defaults.
func (a *App) Request(query, gameVersion, loader string, autoPick bool) resolve.Request {
	if gameVersion == "" {
		gameVersion = a.cfg.Defaults.GameVersion
	}
	if loader == "" {
		loader = a.cfg.Defaults.Loader
	}
	return resolve.Request{
		Query:       strings.TrimSpace(query),
		GameVersion: gameVersion,
		Loader:      strings.ToLower(loader),
		AutoPick:    autoPick,
	}
}

// Adapter returns the catalog adapter for source. CurseForge requires a key.
func (a *App) Adapter(source catalog.Source, s resolve.Session) (catalog.Adapter, error) {
	switch source {
	case catalog.SourceModrinth, "":
		return a.modrinth, nil
	case catalog.SourceCurseForge:
		if s.SecondaryAPIKey == "" {
			return nil, curseforge.ErrMissingAPIKey
		}
		return a.curseForgeAdapter(s.SecondaryAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown source %q (must be modrinth or curseforge)", source)
	}
}

// NewBatch creates a batch runner over the orchestrator. A negative delay
// selects the configured import delay.
func (a *App) NewBatch(delay time.Duration, hooks resolve.Hooks) *resolve.Batch {
	if delay < 0 {
		delay = a.cfg.Import.Delay
	}
	return resolve.NewBatch(a.orchestrator, delay, hooks)
}

// GameVersions lists Minecraft versions of versionType, newest first.
func (a *App) GameVersions(ctx context.Context, versionType string, limit int) ([]minecraft.VersionInfo, error) {
	return a.versions.GameVersions(ctx, versionType, limit)
}

func (a *App) curseForgeAdapter(apiKey string) catalog.Adapter {
	return curseforge.NewAdapter(a.curseforge.WithAPIKey(apiKey))
}
