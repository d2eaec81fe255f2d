package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/avetori/flownote"
	"github.com/avetori/flownote/pkg/core"
)

var (
	verbose  bool
	storeDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flownote",
	Short: "Deadline and note annotations for the clinic rollout flowcharts",
	Long: `Flownote renders the fixed clinic-management rollout flowcharts and lets
you attach deadlines and free-text notes to any diagram node, including
your own sub-nodes. Annotations are persisted locally as JSON snapshots.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storeDir, "store", "", "Snapshot directory (default ~/.flownote)")
}

// openService wires the store using the persistent flags.
func openService() *core.Service {
	opts := []flownote.Option{flownote.WithLogger(slog.Default())}
	if storeDir != "" {
		opts = append(opts, flownote.WithStoreDir(storeDir))
	}

	service, err := flownote.New(opts...)
	if err != nil {
		fatal("Failed to initialize flownote", err)
	}
	return service
}
