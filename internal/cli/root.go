package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tock/internal/config"
	"tock/internal/journal"
	"tock/internal/store"
)

var (
	verbose     bool
	storeFile   string
	storeFormat string
	rootCmd     *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "tock",
		Short: "tock - a local task tracker",
		Long: `tock records short textual tasks in a local structured file.

Tasks are added, listed, completed, and deleted from the command line;
state persists across invocations in .tock/tasks.json (configurable).`,
		RunE:          runList, // Default action is list
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&storeFile, "file", "", "Path to the task store file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&storeFormat, "format", "", "Store format: json or yaml (overrides config)")
}

// Execute runs the root command
func Execute(version string) error {
	// Add subcommands here to ensure proper initialization order
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tock version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tock", rootCmd.Version)
	},
}

// openStore resolves the effective config and builds the store handle.
// Flags override project config, which overrides global config.
func openStore() (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	path := cfg.Store.Path
	if storeFile != "" {
		path = storeFile
	}
	format := cfg.Store.Format
	if storeFormat != "" {
		format = storeFormat
	}

	st, err := store.New(path, format)
	if err != nil {
		return nil, nil, err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "store: %s (%s)\n", st.Path(), st.Format())
	}
	return st, cfg, nil
}

// recordJournal appends an activity entry. Journal failures never fail the
// user's operation; they are only surfaced in verbose mode.
func recordJournal(cfg *config.Config, op string, taskID int64, detail string) {
	if !cfg.Journal.Enabled {
		return
	}

	j, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "journal: %v\n", err)
		}
		return
	}
	defer j.Close()

	if err := j.Append(op, taskID, detail); err != nil && verbose {
		fmt.Fprintf(os.Stderr, "journal: %v\n", err)
	}
}

// parseTaskID parses a user-supplied id argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: task id must be a positive number, got %q", store.ErrInvalidInput, arg)
	}
	return id, nil
}
