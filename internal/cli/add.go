package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")

	st, cfg, err := openStore()
	if err != nil {
		return err
	}

	task, err := st.Add(description)
	if err != nil {
		return err
	}

	recordJournal(cfg, "add", task.ID, task.Description)

	fmt.Printf("Added task %d: %s\n", task.ID, task.Description)
	return nil
}
