package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amirkhaki/ptrdemo/pkg/trace"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [demo...]",
	Short: "run demos and compare them with a saved trace",
	Long: `verify runs the demos and checks every allocation, write, read and
release against a trace saved by "ptrdemo record". The demos given must be
the ones that were recorded, in the same order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := verifyInput
		if input == "" {
			input = cfg.TraceFile
		}

		replayer, err := trace.NewReplayer(input)
		if err != nil {
			return err
		}
		if err := runDemos(cmd, args, replayer); err != nil {
			return err
		}
		logger.Info("trace verified", zap.String("file", input))
		return nil
	},
}

var verifyInput string

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVarP(&verifyInput, "trace", "t", "",
		"path of the trace file to compare with (default from config)")
}
