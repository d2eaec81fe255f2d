package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/avetori/flownote/pkg/core"
	"github.com/avetori/flownote/pkg/diagram"
)

var (
	annotateDeadline string
	annotateNotes    string
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <diagram> <node>",
	Short: "Attach a deadline and notes to a node",
	Long: `Annotate attaches a deadline (YYYY-MM-DD) and free-text notes to a
diagram node. Without flags it opens an interactive prompt pre-filled
with the existing annotation. Clearing both fields removes the
annotation entirely.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key := resolveKey(args[0], args[1])
		svc := openService()
		ctx := context.Background()

		// Non-interactive path when either flag is set.
		if cmd.Flags().Changed("deadline") || cmd.Flags().Changed("notes") {
			rec := svc.Annotation(key)
			if !cmd.Flags().Changed("deadline") {
				annotateDeadline = rec.Deadline
			}
			if !cmd.Flags().Changed("notes") {
				annotateNotes = rec.Notes
			}
			if annotateDeadline != "" {
				if _, ok := core.ParseDeadline(annotateDeadline); !ok {
					fmt.Fprintf(os.Stderr, "Error: invalid deadline %q, want YYYY-MM-DD\n", annotateDeadline)
					os.Exit(1)
				}
			}
			if err := svc.Upsert(ctx, key, annotateDeadline, annotateNotes); err != nil {
				fatal("Failed to save annotation", err)
			}
			fmt.Printf("Annotated %s\n", key)
			return
		}

		sessions := core.NewSessionManager(svc)
		session := sessions.OpenNode(key)

		qs := []*survey.Question{
			{
				Name: "deadline",
				Prompt: &survey.Input{
					Message: "Deadline (YYYY-MM-DD, empty for none):",
					Default: session.Deadline,
				},
				Validate: validateDeadline,
			},
			{
				Name: "notes",
				Prompt: &survey.Multiline{
					Message: "Notes:",
					Default: session.Notes,
				},
			},
		}

		answers := struct {
			Deadline string
			Notes    string
		}{}
		if err := survey.Ask(qs, &answers); err != nil {
			sessions.Cancel()
			fmt.Fprintf(os.Stderr, "Aborted: %v\n", err)
			os.Exit(1)
		}

		session.Deadline = answers.Deadline
		session.Notes = answers.Notes
		if err := sessions.Commit(ctx); err != nil {
			fatal("Failed to save annotation", err)
		}
		fmt.Printf("Annotated %s\n", key)
	},
}

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.Flags().StringVar(&annotateDeadline, "deadline", "", "Deadline in YYYY-MM-DD format (empty clears it)")
	annotateCmd.Flags().StringVar(&annotateNotes, "notes", "", "Free-text notes (empty clears them)")
}

// resolveKey validates the diagram and node arguments and returns the
// annotation key, exiting with a usage error when either is unknown.
func resolveKey(diagramID, nodeID string) string {
	d, ok := diagram.ByID(diagramID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown diagram %q\n", diagramID)
		os.Exit(1)
	}
	if _, ok := d.Find(nodeID); !ok {
		fmt.Fprintf(os.Stderr, "Error: diagram %q has no node %q\n", diagramID, nodeID)
		os.Exit(1)
	}
	return d.NodeKey(nodeID)
}

func validateDeadline(ans interface{}) error {
	s, _ := ans.(string)
	if s == "" {
		return nil
	}
	if _, ok := core.ParseDeadline(s); !ok {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return nil
}
