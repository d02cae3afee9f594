package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerform/internal/app"
)

// runApp opens the store, restores any saved draft and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	sess := e.newSession()
	restored := sess.Restore(ctx)
	e.logger.Info("survey started", zap.Bool("restored", restored))

	return app.Run(ctx, app.Options{
		Session:  sess,
		Logger:   e.logger,
		Restored: restored,
		History:  e.store.SubmissionRepo(),
	})
}
