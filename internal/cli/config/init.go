package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/steviee/go-modlist/internal/state"
)

var initForce bool

// NewInitCommand creates the config init subcommand
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the defaults",
		Long: `Create the configuration file with default values. An existing file is
left alone unless --force is given.`,
		Example: `  go-modlist config init
  go-modlist config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file")

	return cmd
}

func runInit(cmd *cobra.Command, stdout io.Writer) error {
	jsonMode := isJSONMode(cmd)

	path, err := configPath(cmd)
	if err != nil {
		return outputError(stdout, jsonMode, fmt.Errorf("get config path: %w", err))
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return outputError(stdout, jsonMode, fmt.Errorf("config file %s already exists (use --force to overwrite)", path))
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return outputError(stdout, jsonMode, fmt.Errorf("check config file: %w", err))
	}

	if err := state.EnsureDir(filepath.Dir(path)); err != nil {
		return outputError(stdout, jsonMode, fmt.Errorf("create config directory: %w", err))
	}
	if err := state.SaveConfigTo(cmd.Context(), path, state.DefaultConfig()); err != nil {
		return outputError(stdout, jsonMode, err)
	}

	if jsonMode {
		return writeJSON(stdout, map[string]string{"path": path})
	}
	_, err = fmt.Fprintf(stdout, "Configuration written to %s\n", path)
	return err
}
