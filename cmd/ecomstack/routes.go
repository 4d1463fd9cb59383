package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ecomstack/internal/routing"
)

func newRoutesCmd() *cobra.Command {
	var (
		outputFormat string
		matchPath    string
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Show the load balancer routing table",
		Long: `Routes extracts the listener rules from the built template and shows how
paths are dispatched. With --match it answers where one path would go.

Examples:
    ecomstack routes
    ecomstack routes --match /api/products
    ecomstack routes -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutes(outputFormat, matchPath)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringVar(&matchPath, "match", "", "Show the target for one request path")

	return cmd
}

func runRoutes(format, matchPath string) error {
	tmpl, err := buildTemplate()
	if err != nil {
		return err
	}

	table, err := routing.FromTemplate(tmpl)
	if err != nil {
		return err
	}

	if matchPath != "" {
		fmt.Printf("%s -> %s\n", matchPath, table.Match(matchPath))
		return nil
	}

	if format == "json" {
		data, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, rule := range table.Rules {
		fmt.Printf("%4d  %-24s -> %s\n",
			rule.Priority, strings.Join(rule.Patterns, " "), rule.TargetGroup)
	}
	fmt.Printf("   *  %-24s -> %s\n", "(default)", table.DefaultTarget)
	return nil
}
