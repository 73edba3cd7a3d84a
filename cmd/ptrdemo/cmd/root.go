// Package cmd implements the ptrdemo command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/amirkhaki/ptrdemo/pkg/config"
	"github.com/amirkhaki/ptrdemo/pkg/demo"
	"github.com/amirkhaki/ptrdemo/pkg/trace"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ptrdemo",
	Short: "walk through pointers to ints, arrays and structs",
	Long: `ptrdemo allocates, fills, prints and releases values in six shapes:
a pointer to an int, to an array of ints, to an array of pointers to ints,
and the same three for a two-field record.

Run without arguments to run all six.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemos(cmd, nil, trace.Discard)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path of a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

// runDemos runs the named demos (all when names is empty), feeding events
// to sink and finalizing it afterwards.
func runDemos(cmd *cobra.Command, names []string, sink trace.Sink) error {
	demos, err := demo.Lookup(names...)
	if err != nil {
		return err
	}

	r := &demo.Runner{
		Out:    cmd.OutOrStdout(),
		Config: cfg,
		Sink:   sink,
		Logger: logger,
	}
	if err := r.Run(demos); err != nil {
		return err
	}
	return sink.OnFinalize()
}
