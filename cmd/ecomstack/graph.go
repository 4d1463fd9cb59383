package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecomstack/internal/graph"
)

func newGraphCmd() *cobra.Command {
	var (
		outputFormat string
		outputFile   string
		cluster      bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the resource dependency graph",
		Long: `Graph renders the stack's dependency graph.

Examples:
    ecomstack graph | dot -Tsvg > stack.svg
    ecomstack graph --format mermaid
    ecomstack graph --cluster -o stack.dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(outputFormat, outputFile, cluster)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format: dot or mermaid")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&cluster, "cluster", false, "Group resources by AWS service")

	return cmd
}

func runGraph(format, outputFile string, cluster bool) error {
	tmpl, err := buildTemplate()
	if err != nil {
		return err
	}

	var gf graph.Format
	switch format {
	case "dot":
		gf = graph.FormatDOT
	case "mermaid":
		gf = graph.FormatMermaid
	default:
		return fmt.Errorf("unknown format %q, want dot or mermaid", format)
	}

	g := &graph.Generator{Format: gf, ClusterByService: cluster}
	out, err := g.GenerateString(tmpl)
	if err != nil {
		return err
	}

	return writeOutput([]byte(out), outputFile)
}
