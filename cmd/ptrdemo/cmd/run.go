package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirkhaki/ptrdemo/pkg/demo"
	"github.com/amirkhaki/ptrdemo/pkg/trace"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:       "run [demo...]",
	Short:     "run the given demos, or all of them",
	ValidArgs: demo.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemos(cmd, args, trace.Discard)
	},
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the demos in run order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range demo.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", d.Name, d.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}
