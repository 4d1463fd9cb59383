package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"ecomstack/internal/differ"
)

func newDiffCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "diff <template> [template]",
		Short: "Compare templates",
		Long: `Diff compares two template files, or one file against a fresh build.

Examples:
    ecomstack diff deployed.json            # file vs current build
    ecomstack diff before.json after.json   # file vs file`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runDiff(args []string, format string) error {
	var result *differ.Result

	if len(args) == 2 {
		r, err := differ.CompareFiles(args[0], args[1])
		if err != nil {
			return err
		}
		result = r
	} else {
		before, err := differ.LoadTemplate(args[0])
		if err != nil {
			return err
		}
		after, err := buildTemplate()
		if err != nil {
			return err
		}
		result, err = differ.Compare(before, after)
		if err != nil {
			return err
		}
	}

	if format == "json" {
		data, err := json.MarshalIndent(result.Diff, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if result.Empty() {
		fmt.Println("no changes")
		return nil
	}

	for _, e := range result.Diff.Added {
		fmt.Printf("+ %s (%s)\n", e.Resource, e.Type)
	}
	for _, e := range result.Diff.Removed {
		fmt.Printf("- %s (%s)\n", e.Resource, e.Type)
	}
	for _, e := range result.Diff.Modified {
		fmt.Printf("~ %s (%s)\n", e.Resource, e.Type)
		for _, c := range e.Changes {
			fmt.Printf("    %s\n", c)
		}
	}
	fmt.Printf("%d added, %d removed, %d modified\n",
		result.Summary.Added, result.Summary.Removed, result.Summary.Modified)
	return nil
}
