package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"ecomstack/internal/deploy"
)

func newDBInfoCmd() *cobra.Command {
	var (
		stackName    string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "db-info",
		Short: "Show database connection coordinates",
		Long: `db-info reads the stack outputs and the credentials secret and prints
what a MySQL client needs: host, port, database and user. The password is
never printed; fetch it from the secret named in the output when needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := deploy.New(cmd.Context())
			if err != nil {
				return err
			}

			info, err := client.DatabaseInfo(cmd.Context(), stackName)
			if err != nil {
				return err
			}

			if outputFormat == "json" {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("host:     %s\n", info.Host)
			fmt.Printf("port:     %s\n", info.Port)
			fmt.Printf("database: %s\n", info.Database)
			fmt.Printf("user:     %s\n", info.User)
			fmt.Printf("password: stored in %s\n", info.SecretArn)
			return nil
		},
	}

	cmd.Flags().StringVar(&stackName, "stack-name", deploy.DefaultStackName, "CloudFormation stack name")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}
