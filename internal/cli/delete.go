package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}

	task, err := st.Delete(id)
	if err != nil {
		return err
	}

	recordJournal(cfg, "delete", task.ID, task.Description)

	fmt.Printf("Deleted task %d: %s\n", task.ID, task.Description)
	return nil
}
