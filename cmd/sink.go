package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerform/internal/sinkserver"
)

var sinkCmd = &cobra.Command{
	Use:   "sink",
	Short: "Run a local webhook that receives submitted records",
	Long: `Run a small HTTP receiver for development. It accepts records on
POST /submit, lists the most recent ones on GET /submissions and can append
every record to a JSON Lines file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		outPath, _ := cmd.Flags().GetString("out")
		keep, _ := cmd.Flags().GetInt("keep")

		_, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		out, err := sinkserver.OpenLog(outPath)
		if err != nil {
			return err
		}
		var receiver *sinkserver.Receiver
		if out != nil {
			defer out.Close()
			receiver = sinkserver.NewReceiver(keep, out, log)
		} else {
			receiver = sinkserver.NewReceiver(keep, nil, log)
		}

		log.Info("sink listening", zap.String("addr", addr), zap.String("out", outPath))
		fmt.Printf("Receiving records on http://%s/submit\n", addr)
		return sinkserver.ListenAndServe(cmd.Context(), addr, receiver)
	},
}

func init() {
	sinkCmd.Flags().String("addr", "127.0.0.1:8787", "Address to listen on")
	sinkCmd.Flags().String("out", "", "Append received records to this JSON Lines file")
	sinkCmd.Flags().Int("keep", sinkserver.DefaultKeep, "Number of records kept in memory for GET /submissions")
}
