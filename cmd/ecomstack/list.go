package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"ecomstack"
	"ecomstack/internal/template"
	"ecomstack/stack"
)

func newListCmd() *cobra.Command {
	var (
		outputFormat string
		depOrder     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the stack's resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(outputFormat, depOrder)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&depOrder, "dependency-order", false, "List in dependency order instead of declaration order")

	return cmd
}

func runList(format string, depOrder bool) error {
	reg := stack.Registry()

	names := reg.ResourceNames()
	if depOrder {
		ordered, err := template.NewBuilder(reg).Order()
		if err != nil {
			return err
		}
		names = ordered
	}

	result := ecomstack.ListResult{}
	for _, name := range names {
		value, _ := reg.Lookup(name)
		result.Resources = append(result.Resources, ecomstack.ListResource{
			Name: name,
			Type: value.ResourceType(),
		})
	}

	if format == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, r := range result.Resources {
		fmt.Printf("%-36s %s\n", r.Name, r.Type)
	}
	return nil
}
