package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ecomstack"
	"ecomstack/internal/template"
	"ecomstack/stack"
)

func newBuildCmd() *cobra.Command {
	var (
		outputFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the CloudFormation template",
		Long: `Build serializes the declared stack into a CloudFormation template.

Examples:
    ecomstack build
    ecomstack build -o template.json
    ecomstack build --format yaml -o template.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(outputFormat, outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

// buildTemplate is the one place the CLI assembles the stack.
func buildTemplate() (*ecomstack.Template, error) {
	return template.NewBuilder(stack.Registry()).
		WithDescription(stack.StackDescription).
		Build()
}

func runBuild(format, outputFile string) error {
	tmpl, err := buildTemplate()
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	var data []byte
	switch format {
	case "json":
		data, err = template.ToJSON(tmpl)
	case "yaml":
		data, err = template.ToYAML(tmpl)
	default:
		return fmt.Errorf("unknown format %q, want json or yaml", format)
	}
	if err != nil {
		return fmt.Errorf("encoding template: %w", err)
	}

	return writeOutput(data, outputFile)
}

func writeOutput(data []byte, outputFile string) error {
	if outputFile == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(outputFile, data, 0o644)
}
