package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/avetori/flownote/pkg/core"
)

var (
	listOverdue bool
	listJSON    bool
)

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List annotated nodes",
	Long: `List prints every annotated node key with its deadline and a note
marker. An optional glob pattern filters the keys, e.g. 'main-*' or
'*-flutter-screens'. With --overdue only keys whose deadline has
passed are shown.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := "*"
		if len(args) == 1 {
			pattern = args[0]
		}
		if !doublestar.ValidatePattern(pattern) {
			fmt.Fprintf(os.Stderr, "Error: invalid pattern %q\n", pattern)
			os.Exit(1)
		}

		svc := openService()

		matched := make(map[string]core.AnnotationRecord)
		var keys []string
		for _, key := range svc.AnnotatedKeys() {
			ok, err := doublestar.Match(pattern, key)
			if err != nil || !ok {
				continue
			}
			rec := svc.Annotation(key)
			if listOverdue && !svc.Overdue(rec.Deadline) {
				continue
			}
			matched[key] = rec
			keys = append(keys, key)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(matched); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(keys) == 0 {
			fmt.Println("No annotations.")
			return
		}
		for _, key := range keys {
			fmt.Printf("%s%s\n", key, badge(svc, key))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listOverdue, "overdue", false, "Only show nodes with a passed deadline")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
