package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steviee/go-modlist/internal/app"
	"github.com/steviee/go-modlist/internal/server"
	"github.com/steviee/go-modlist/internal/state"
)

var serveListen string

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the resolver over HTTP",
		Long: `Start an HTTP API exposing search, resolution and mod-list import.

Endpoints:
  GET  /healthz
  GET  /api/search?q=&source=&game_version=&loader=&offset=
  GET  /api/resolve?q=&game_version=&loader=&auto_pick=
  GET  /api/game-versions?type=&limit=
  POST /api/modlist/parse?filename=      (mod list as request body)
  POST /api/modlist/resolve              ({"queries": [...], "game_version", "loader", "auto_pick"})

A CurseForge API key may be passed per request in the X-CurseForge-Key
header. The server stops gracefully on SIGINT or SIGTERM.`,
		Example: `  # Listen on the configured address
  go-modlist serve

  # Listen on all interfaces
  go-modlist serve --listen :8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := state.ConfigFromContext(cmd.Context())

			addr := cfg.Server.Listen
			if cmd.Flags().Changed("listen") {
				if err := state.ValidateListenAddr(serveListen); err != nil {
					return err
				}
				addr = serveListen
			}

			srv := server.New(app.New(cfg))
			if err := srv.ListenAndServe(cmd.Context(), addr); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (default: config server.listen)")

	return cmd
}
