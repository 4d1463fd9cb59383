// Command ecomstack synthesizes, inspects and deploys the ecommerce
// platform's CloudFormation stack.
//
// Usage:
//
//	ecomstack build                 Generate the CloudFormation template
//	ecomstack validate              Check the template against policy
//	ecomstack routes                Show listener routing
//	ecomstack deploy                Deploy via change set
//	ecomstack version               Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ecomstack",
		Short: "Synthesize and deploy the ecommerce platform stack",
		Long: `ecomstack turns the Go resource declarations in the stack package into a
CloudFormation template and drives it through deployment.

The topology is fixed in code: a VPC with public and isolated subnets, two
Fargate services behind an internet-facing ALB, and a MySQL instance that
only the backend can reach. The CLI builds, checks, diffs and deploys that
template.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newBuildCmd(),
		newValidateCmd(),
		newListCmd(),
		newRoutesCmd(),
		newDiffCmd(),
		newGraphCmd(),
		newLintCmd(),
		newDeployCmd(),
		newStatusCmd(),
		newDBInfoCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ecomstack %s\n", getVersion())
		},
	}
}
