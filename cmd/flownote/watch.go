package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	storelifecycle "github.com/avetori/flownote/pkg/adapters/lifecycle"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the snapshot store for external changes",
	Long: `Watch streams change events for the snapshot files until interrupted.
Each event reloads the in-memory state, so a concurrently running
editor or sync tool is picked up immediately.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := svc.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		source := storelifecycle.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		fmt.Println("Watching for changes (Ctrl-C to stop)...")
		for ev := range source.Events() {
			fmt.Println(ev.String())
			svc.Load(ctx)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "*", "Glob pattern of snapshot keys to watch")
}
