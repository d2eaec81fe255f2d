package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avetori/flownote/pkg/core"
	"github.com/avetori/flownote/pkg/diagram"
)

var (
	subDeadline string
	subNotes    string
	subLabel    string
)

var subCmd = &cobra.Command{
	Use:   "sub",
	Short: "Manage user-created sub-nodes",
	Long: `Sub-nodes are small user-created boxes attached to the designated
parent nodes of a diagram. They carry their own label, annotation and
canvas position.`,
}

var subAddCmd = &cobra.Command{
	Use:   "add <diagram> <node> <label>",
	Short: "Create a sub-node under a parent node",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		parentKey := resolveSubParent(args[0], args[1])
		svc := openService()

		sub, err := svc.CreateSubNode(context.Background(), parentKey, args[2], subDeadline, subNotes)
		if err != nil {
			fatal("Failed to create sub-node", err)
		}
		fmt.Printf("Created sub-node %s under %s\n", sub.ID, parentKey)
	},
}

var subEditCmd = &cobra.Command{
	Use:   "edit <diagram> <node> <sub-id>",
	Short: "Edit a sub-node's label and annotation",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		parentKey := resolveSubParent(args[0], args[1])
		svc := openService()

		sub, ok := findSubNode(svc, parentKey, args[2])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no sub-node %q under %s\n", args[2], parentKey)
			os.Exit(1)
		}

		// Unset flags keep the current values.
		rec := svc.Annotation(core.SubKey(parentKey, sub.ID))
		label, deadline, notes := sub.Label, rec.Deadline, rec.Notes
		if cmd.Flags().Changed("label") {
			label = subLabel
		}
		if cmd.Flags().Changed("deadline") {
			deadline = subDeadline
		}
		if cmd.Flags().Changed("notes") {
			notes = subNotes
		}

		if err := svc.UpdateSubNode(context.Background(), parentKey, sub.ID, label, deadline, notes); err != nil {
			fatal("Failed to update sub-node", err)
		}
		fmt.Printf("Updated sub-node %s\n", sub.ID)
	},
}

var subRmCmd = &cobra.Command{
	Use:   "rm <diagram> <node> <sub-id>",
	Short: "Delete a sub-node and its annotation",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		parentKey := resolveSubParent(args[0], args[1])
		svc := openService()

		sub, ok := findSubNode(svc, parentKey, args[2])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no sub-node %q under %s\n", args[2], parentKey)
			os.Exit(1)
		}
		svc.DeleteSubNode(context.Background(), parentKey, sub.ID)
		fmt.Printf("Deleted sub-node %s\n", sub.ID)
	},
}

var subMoveCmd = &cobra.Command{
	Use:   "move <diagram> <node> <sub-id> <x> <y>",
	Short: "Move a sub-node on the canvas",
	Args:  cobra.ExactArgs(5),
	Run: func(cmd *cobra.Command, args []string) {
		parentKey := resolveSubParent(args[0], args[1])

		x, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			fatal("Invalid x coordinate", err)
		}
		y, err := strconv.ParseFloat(args[4], 64)
		if err != nil {
			fatal("Invalid y coordinate", err)
		}

		svc := openService()
		sub, ok := findSubNode(svc, parentKey, args[2])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no sub-node %q under %s\n", args[2], parentKey)
			os.Exit(1)
		}
		svc.RepositionSubNode(context.Background(), parentKey, sub.ID, x, y)
		fmt.Printf("Moved sub-node %s to (%.0f, %.0f)\n", sub.ID, x, y)
	},
}

func init() {
	rootCmd.AddCommand(subCmd)
	subCmd.AddCommand(subAddCmd, subEditCmd, subRmCmd, subMoveCmd)

	subAddCmd.Flags().StringVar(&subDeadline, "deadline", "", "Deadline in YYYY-MM-DD format")
	subAddCmd.Flags().StringVar(&subNotes, "notes", "", "Free-text notes")

	subEditCmd.Flags().StringVar(&subLabel, "label", "", "New label")
	subEditCmd.Flags().StringVar(&subDeadline, "deadline", "", "New deadline (empty clears it)")
	subEditCmd.Flags().StringVar(&subNotes, "notes", "", "New notes (empty clears them)")
}

// resolveSubParent validates the parent node and checks it accepts sub-nodes.
func resolveSubParent(diagramID, nodeID string) string {
	d, ok := diagram.ByID(diagramID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown diagram %q\n", diagramID)
		os.Exit(1)
	}
	n, ok := d.Find(nodeID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: diagram %q has no node %q\n", diagramID, nodeID)
		os.Exit(1)
	}
	if !n.AllowSubNodes {
		fmt.Fprintf(os.Stderr, "Error: node %q does not accept sub-nodes\n", nodeID)
		os.Exit(1)
	}
	return d.NodeKey(n.ID)
}

// findSubNode resolves a sub-node by full ID or unique prefix.
func findSubNode(svc *core.Service, parentKey, id string) (core.SubNode, bool) {
	var match core.SubNode
	var found int
	for _, sub := range svc.SubNodes(parentKey) {
		if sub.ID == id {
			return sub, true
		}
		if len(id) >= 4 && len(sub.ID) > len(id) && sub.ID[:len(id)] == id {
			match = sub
			found++
		}
	}
	return match, found == 1
}
