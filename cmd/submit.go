package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerform/internal/form"
	"github.com/abhisek/careerform/internal/submit"
	"github.com/abhisek/careerform/internal/wizard"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Validate the saved draft and submit it without the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		sess := e.newSession()
		if !sess.Restore(ctx) {
			return errors.New("no saved draft to submit")
		}

		for !sess.Machine().IsFinal() {
			if err := sess.Advance(ctx); err != nil {
				return reportValidation(err)
			}
		}

		rec, err := sess.BeginSubmit(ctx)
		if err != nil {
			return reportValidation(err)
		}

		fmt.Fprintf(os.Stderr, "Submitting to %s...\n", e.cfg.Sink.URL)
		if err := sess.Deliver(ctx, rec); err != nil {
			e.logger.Warn("headless submit failed", zap.Error(err))
			return fmt.Errorf("%s: %w", submit.MsgFailed, err)
		}

		fmt.Println(rec.UserID)
		return nil
	},
}

// reportValidation prints the fields blocking a step and returns a short
// error for the exit status.
func reportValidation(err error) error {
	var verr *wizard.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	fmt.Fprintf(os.Stderr, "Step %d (%s) is incomplete:\n", verr.Step, form.StepTitle(verr.Step))
	for _, fe := range verr.Fields {
		label := string(fe.Field)
		if spec, ok := form.Lookup(fe.Field); ok {
			label = spec.Label
		}
		fmt.Fprintf(os.Stderr, "  %s: %s\n", label, fe.Message)
	}
	return errors.New(wizard.MsgBlockingNotice)
}
