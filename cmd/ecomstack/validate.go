package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ecomstack"
	"ecomstack/internal/policy"
)

func newValidateCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Build the template and check it against policy",
		Long: `Validate builds the template and runs the standing policy checks:

    database-private     the database declares PubliclyAccessible false
    database-ingress     the database admits traffic only from security groups
    database-isolation   no database subnet routes to an internet gateway
    no-env-secrets       credentials travel as ECS Secrets, never plain env
    api-routing          /api traffic has its own listener rule

Exits non-zero when any error-level issue is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runValidate(format string) error {
	result := ecomstack.ValidateResult{Success: true}

	tmpl, err := buildTemplate()
	if err != nil {
		result.Success = false
		result.Errors = append(result.Errors, err.Error())
		return emitValidate(result, format)
	}
	result.Resources = len(tmpl.Resources)

	for _, issue := range policy.Check(tmpl) {
		if issue.Severity == policy.SeverityError {
			result.Errors = append(result.Errors, issue.String())
		} else {
			result.Warnings = append(result.Warnings, issue.String())
		}
	}
	result.Success = len(result.Errors) == 0

	return emitValidate(result, format)
}

func emitValidate(result ecomstack.ValidateResult, format string) error {
	if format == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		if result.Success {
			fmt.Printf("OK: %d resources, %d warnings\n", result.Resources, len(result.Warnings))
		}
		for _, w := range result.Warnings {
			fmt.Println(w)
		}
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
	}

	if !result.Success {
		return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
	}
	return nil
}
