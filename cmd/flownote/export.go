package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/avetori/flownote/pkg/diagram"
	"github.com/avetori/flownote/pkg/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [diagram]",
	Short: "Export annotations as JSON, YAML or a rendered SVG",
	Long: `Export writes the annotation snapshot to stdout or a file. The json
and yaml formats dump the full snapshot across all diagrams; the svg
format renders one diagram with its annotations and sub-nodes and
requires a diagram argument (default: main).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		var out io.Writer = os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				fatal("Failed to create output file", err)
			}
			defer f.Close()
			out = f
		}

		var err error
		switch exportFormat {
		case "json":
			err = export.WriteJSON(out, svc)
		case "yaml":
			err = export.WriteYAML(out, svc)
		case "svg":
			diagramID := "main"
			if len(args) > 0 {
				diagramID = args[0]
			}
			d, ok := diagram.ByID(diagramID)
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: unknown diagram %q\n", diagramID)
				os.Exit(1)
			}
			err = export.WriteSVG(context.Background(), out, d, svc)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown format %q (json, yaml, svg)\n", exportFormat)
			os.Exit(1)
		}
		if err != nil {
			fatal("Export failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json, yaml or svg")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
}
