package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all tasks",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes {
		fmt.Print("Delete all tasks? (y/n): ")
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Canceled.")
			return nil
		}
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}

	removed, err := st.Clear()
	if err != nil {
		return err
	}

	recordJournal(cfg, "clear", 0, fmt.Sprintf("%d tasks removed", removed))

	if removed == 1 {
		fmt.Println("Cleared 1 task.")
	} else {
		fmt.Printf("Cleared %d tasks.\n", removed)
	}
	return nil
}
