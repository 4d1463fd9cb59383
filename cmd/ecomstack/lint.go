package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lex00/cfn-lint-go/pkg/lint"
	"github.com/spf13/cobra"

	"ecomstack/internal/template"
)

func newLintCmd() *cobra.Command {
	var templateFile string

	cmd := &cobra.Command{
		Use:   "lint [template]",
		Short: "Run cfn-lint against the template",
		Long: `Lint runs CloudFormation linting against a template file, or against a
fresh build when no file is given. Warnings are reported; only error-level
findings fail the command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				templateFile = args[0]
			}
			return runLint(templateFile)
		},
	}

	return cmd
}

func runLint(templateFile string) error {
	path := templateFile
	if path == "" {
		tmpl, err := buildTemplate()
		if err != nil {
			return err
		}
		data, err := template.ToJSON(tmpl)
		if err != nil {
			return err
		}

		dir, err := os.MkdirTemp("", "ecomstack-lint")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)

		path = filepath.Join(dir, "template.json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
	}

	linter := lint.New(lint.Options{})
	matches, err := linter.LintFile(path)
	if err != nil {
		return fmt.Errorf("linting %s: %w", path, err)
	}

	errorCount := 0
	for _, match := range matches {
		fmt.Println(formatMatch(match))
		if match.Level == "Error" {
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("lint found %d error(s)", errorCount)
	}
	if len(matches) == 0 {
		fmt.Println("no findings")
	}
	return nil
}

func formatMatch(match lint.Match) string {
	if len(match.Location.Path) > 0 {
		parts := make([]string, len(match.Location.Path))
		for i, p := range match.Location.Path {
			parts[i] = fmt.Sprintf("%v", p)
		}
		return fmt.Sprintf("%s [%s] %s (at %s)",
			match.Rule.ID, match.Level, match.Message, strings.Join(parts, "/"))
	}
	return fmt.Sprintf("%s [%s] %s", match.Rule.ID, match.Level, match.Message)
}
