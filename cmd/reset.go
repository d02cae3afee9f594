package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			confirmed := false
			prompt := &survey.Confirm{
				Message: "Delete the saved survey answers?",
				Default: false,
			}
			if err := survey.AskOne(prompt, &confirmed); err != nil {
				if errors.Is(err, terminal.InterruptErr) {
					return nil
				}
				return fmt.Errorf("confirm reset: %w", err)
			}
			if !confirmed {
				fmt.Println("Nothing deleted.")
				return nil
			}
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.drafts().Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Saved answers deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
