package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"ecomstack/internal/deploy"
)

func newStatusCmd() *cobra.Command {
	var (
		stackName    string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show deployed stack status and outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := deploy.New(cmd.Context())
			if err != nil {
				return err
			}

			status, err := client.Status(cmd.Context(), stackName)
			if err != nil {
				return err
			}

			if outputFormat == "json" {
				data, err := json.MarshalIndent(status, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("%s: %s\n", status.StackName, status.Status)
			for key, value := range status.Outputs {
				fmt.Printf("  %-24s %s\n", key, value)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stackName, "stack-name", deploy.DefaultStackName, "CloudFormation stack name")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}
