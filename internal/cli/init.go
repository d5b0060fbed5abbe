package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tock/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Writes a commented default config to .tock/config.yaml in the current
directory, or to ~/.tock/config.yaml with --global. Existing config files
are never overwritten.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("global", false, "Write the global config (~/.tock/config.yaml)")
}

func runInit(cmd *cobra.Command, args []string) error {
	global, _ := cmd.Flags().GetBool("global")

	var dir, path string
	if global {
		dir = config.GlobalTockPath()
		path = config.GlobalConfigPath()
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = filepath.Join(cwd, ".tock")
		path = config.ProjectConfigPath()
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
