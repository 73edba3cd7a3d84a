package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amirkhaki/ptrdemo/pkg/trace"
)

// recordCmd represents the record command
var recordCmd = &cobra.Command{
	Use:   "record [demo...]",
	Short: "run demos and save every state transition to a trace file",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		output := recordOutput
		if output == "" {
			output = cfg.TraceFile
		}
		if _, err := os.Stat(output); err == nil && !force {
			return fmt.Errorf("%s exists, use --force to overwrite it", output)
		}

		if err := runDemos(cmd, args, trace.NewRecorder(output)); err != nil {
			return err
		}
		logger.Info("trace saved", zap.String("file", output))
		return nil
	},
}

var recordOutput string
var force bool

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.Flags().StringVarP(&recordOutput, "output", "o", "",
		"path of the trace file (default from config)")
	recordCmd.Flags().BoolVarP(&force, "force", "f", false,
		"force override files")
}
