package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewPathCommand creates the config path subcommand
func NewPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "path",
		Short:   "Show the configuration file path",
		Example: `  go-modlist config path`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, cmd.OutOrStdout())
		},
	}
}

func runPath(cmd *cobra.Command, stdout io.Writer) error {
	jsonMode := isJSONMode(cmd)

	path, err := configPath(cmd)
	if err != nil {
		return outputError(stdout, jsonMode, fmt.Errorf("get config path: %w", err))
	}

	if jsonMode {
		return writeJSON(stdout, map[string]string{"path": path})
	}
	_, err = fmt.Fprintln(stdout, path)
	return err
}
