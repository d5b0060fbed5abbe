package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}

	task, already, err := st.Complete(id)
	if err != nil {
		return err
	}

	if already {
		fmt.Printf("Task %d is already completed: %s\n", task.ID, task.Description)
		return nil
	}

	recordJournal(cfg, "complete", task.ID, task.Description)

	fmt.Printf("Completed task %d: %s\n", task.ID, task.Description)
	return nil
}
