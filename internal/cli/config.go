package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tock/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the merged configuration (defaults, then global
~/.tock/config.yaml, then project .tock/config.yaml) and the paths the
config is read from.`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	fmt.Print(string(data))
	fmt.Println()
	fmt.Println("Global config: ", config.GlobalConfigPath())
	fmt.Println("Project config:", config.ProjectConfigPath())
	return nil
}
