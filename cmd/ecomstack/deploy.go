package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ecomstack/internal/deploy"
	"ecomstack/internal/policy"
	"ecomstack/internal/template"
)

func newDeployCmd() *cobra.Command {
	var (
		stackName  string
		params     []string
		noExecute  bool
		skipPolicy bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the stack via a CloudFormation change set",
		Long: `Deploy builds the template, checks it against policy, and applies it with
a change set. Running deploy against an unchanged stack is a no-op.

Examples:
    ecomstack deploy --param FrontendImage=repo/frontend:v3 --param BackendImage=repo/backend:v3
    ecomstack deploy --stack-name staging --no-execute`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd, stackName, params, noExecute, skipPolicy)
		},
	}

	cmd.Flags().StringVar(&stackName, "stack-name", deploy.DefaultStackName, "CloudFormation stack name")
	cmd.Flags().StringArrayVar(&params, "param", nil, "Template parameter as Key=Value (repeatable)")
	cmd.Flags().BoolVar(&noExecute, "no-execute", false, "Create the change set without executing it")
	cmd.Flags().BoolVar(&skipPolicy, "skip-policy", false, "Deploy even when policy checks fail")

	return cmd
}

func runDeploy(cmd *cobra.Command, stackName string, params []string, noExecute, skipPolicy bool) error {
	tmpl, err := buildTemplate()
	if err != nil {
		return err
	}

	if issues := policy.Errors(policy.Check(tmpl)); len(issues) > 0 && !skipPolicy {
		for _, issue := range issues {
			fmt.Fprintln(cmd.ErrOrStderr(), issue)
		}
		return fmt.Errorf("refusing to deploy: %d policy error(s)", len(issues))
	}

	body, err := template.ToJSON(tmpl)
	if err != nil {
		return err
	}

	parameters, err := deploy.ParseParameters(params)
	if err != nil {
		return err
	}

	client, err := deploy.New(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("deploying stack %s (%d resources)\n", stackName, len(tmpl.Resources))
	err = client.Deploy(cmd.Context(), deploy.Options{
		StackName:    stackName,
		TemplateBody: string(body),
		Parameters:   parameters,
		NoExecute:    noExecute,
	})
	if errors.Is(err, deploy.ErrNoChanges) {
		fmt.Println("stack is already up to date")
		return nil
	}
	if err != nil {
		return err
	}

	if noExecute {
		fmt.Println("change set created; execute it from the console or rerun without --no-execute")
		return nil
	}

	status, err := client.Status(cmd.Context(), stackName)
	if err != nil {
		return err
	}
	fmt.Printf("stack %s: %s\n", status.StackName, status.Status)
	if url := status.Outputs["LoadBalancerUrl"]; url != "" {
		fmt.Printf("application: %s\n", url)
	}
	return nil
}
