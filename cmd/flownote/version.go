package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avetori/flownote"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of flownote",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("flownote version %s\n", strings.TrimSpace(flownote.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
