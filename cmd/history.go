package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent submission attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		events, err := e.store.SubmissionRepo().RecentSubmissions(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No submissions yet.")
			return nil
		}

		fmt.Printf("%-20s  %-36s  %-9s  %8s  %s\n", "Time", "User ID", "Status", "Latency", "Error")
		fmt.Println(strings.Repeat("─", 100))
		for _, ev := range events {
			fmt.Printf("%-20s  %-36s  %-9s  %6dms  %s\n",
				ev.Timestamp.Local().Format(time.DateTime), ev.UserID, ev.Status, ev.LatencyMs, ev.Error)
		}
		fmt.Printf("\n%d attempts\n", len(events))
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to show (0 for all)")
}
