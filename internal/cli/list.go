package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks in creation order",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}

	c, err := st.Load()
	if err != nil {
		return err
	}

	if len(c.Tasks) == 0 {
		fmt.Println("No tasks yet. Add one with 'tock add <description>'.")
		return nil
	}

	total, done, open := c.Stats()
	fmt.Printf("Tasks (%d):\n\n", total)
	for _, t := range c.Tasks {
		marker := " "
		if t.Done {
			marker = "x"
		}
		fmt.Printf("  %3d  [%s]  %s\n", t.ID, marker, t.Description)
	}
	fmt.Printf("\n%d open, %d done\n", open, done)

	return nil
}
