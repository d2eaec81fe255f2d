package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/avetori/flownote/pkg/core"
	"github.com/avetori/flownote/pkg/diagram"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	nodeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	subStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	dueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	overdueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	noteMark     = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Render("✎")
)

var showCmd = &cobra.Command{
	Use:   "show [diagram] [node]",
	Short: "Show a diagram, or the details of a single node",
	Long: `Show prints the nodes of a diagram with their annotation badges.
With a node ID, it prints the full annotation for that node, rendering
the notes as markdown.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		diagramID := "main"
		if len(args) > 0 {
			diagramID = args[0]
		}

		d, ok := diagram.ByID(diagramID)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown diagram %q (try: %s)\n", diagramID, strings.Join(diagramIDs(), ", "))
			os.Exit(1)
		}

		svc := openService()

		if len(args) == 2 {
			showNode(d, args[1], svc)
			return
		}

		fmt.Println(titleStyle.Render(d.Title))
		for _, n := range d.Nodes {
			key := d.NodeKey(n.ID)
			fmt.Printf("  %s %s%s\n", shapeGlyph(n.Shape), nodeStyle.Render(n.Label), badge(svc, key))
			for _, sub := range svc.SubNodes(key) {
				fmt.Printf("      └─ %s%s\n", subStyle.Render(sub.Label), badge(svc, core.SubKey(key, sub.ID)))
			}
		}
	},
}

func showNode(d diagram.Diagram, nodeID string, svc *core.Service) {
	n, ok := d.Find(nodeID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: diagram %q has no node %q\n", d.ID, nodeID)
		os.Exit(1)
	}

	key := d.NodeKey(n.ID)
	rec := svc.Annotation(key)

	fmt.Println(titleStyle.Render(n.Label))
	fmt.Printf("Key:      %s\n", key)
	fmt.Printf("Shape:    %s\n", n.Shape)

	if rec.Deadline != "" {
		line := dueStyle.Render(rec.Deadline)
		if svc.Overdue(rec.Deadline) {
			line = overdueStyle.Render(rec.Deadline + " (overdue)")
		}
		fmt.Printf("Deadline: %s\n", line)
	}
	if rec.Notes != "" {
		fmt.Println(renderNotes(rec.Notes))
	}
	if rec.Empty() {
		fmt.Println("No annotation.")
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// badge formats the inline annotation marker shown next to a node label.
func badge(svc *core.Service, key string) string {
	rec := svc.Annotation(key)
	var parts []string
	if rec.Deadline != "" {
		due := dueStyle.Render("due " + rec.Deadline)
		if svc.Overdue(rec.Deadline) {
			due = overdueStyle.Render("due " + rec.Deadline + " !")
		}
		parts = append(parts, due)
	}
	if rec.Notes != "" {
		parts = append(parts, noteMark)
	}
	if len(parts) == 0 {
		return ""
	}
	return "  [" + strings.Join(parts, " ") + "]"
}

func diagramIDs() []string {
	var ids []string
	for _, d := range diagram.Diagrams() {
		ids = append(ids, d.ID)
	}
	return ids
}

func shapeGlyph(s diagram.Shape) string {
	switch s {
	case diagram.ShapeTerminator:
		return "◯"
	case diagram.ShapeDecision:
		return "◇"
	case diagram.ShapeSubprocess:
		return "▣"
	default:
		return "▭"
	}
}

// renderNotes renders markdown notes for terminal display, falling back to
// the raw text when rendering fails.
func renderNotes(notes string) string {
	out, err := glamour.Render(notes, "auto")
	if err != nil {
		return notes
	}
	return strings.TrimRight(out, "\n")
}
