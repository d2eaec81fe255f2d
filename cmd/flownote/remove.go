package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <diagram> <node>",
	Short: "Remove the annotation from a node",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key := resolveKey(args[0], args[1])
		svc := openService()

		if err := svc.Remove(context.Background(), key); err != nil {
			fatal("Failed to remove annotation", err)
		}
		fmt.Printf("Removed annotation from %s\n", key)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
