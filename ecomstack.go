// Package ecomstack declares the placeholder ecommerce deployment as Go
// resource values and provides the document model for the CloudFormation
// template synthesized from them.
//
// Infrastructure is written as plain Go structs:
//
//	var EcommerceVpc = ec2.VPC{
//	    CidrBlock: "10.0.0.0/16",
//	}
//
//	var PublicSubnetA = ec2.Subnet{
//	    VpcId: EcommerceVpc,  // direct reference, serialized as {"Ref": ...}
//	}
//
// The stack package registers every declaration under its logical name,
// and the ecomstack CLI turns the registry into a CloudFormation template.
package ecomstack

// Resource represents a CloudFormation resource.
// Every type in resources/ (ec2.VPC, ecs.Cluster, ...) implements it.
type Resource interface {
	// ResourceType returns the CloudFormation type, e.g. "AWS::EC2::VPC".
	ResourceType() string
}

// Template is a CloudFormation template document.
type Template struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
	Description              string                 `json:"Description,omitempty" yaml:"Description,omitempty"`
	Parameters               map[string]Parameter   `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
	Resources                map[string]ResourceDef `json:"Resources" yaml:"Resources"`
	Outputs                  map[string]Output      `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// ResourceDef is a single resource in the template.
type ResourceDef struct {
	Type           string         `json:"Type" yaml:"Type"`
	Properties     map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn      []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
	DeletionPolicy string         `json:"DeletionPolicy,omitempty" yaml:"DeletionPolicy,omitempty"`
}

// Parameter is a template parameter definition.
type Parameter struct {
	Type           string `json:"Type" yaml:"Type"`
	Description    string `json:"Description,omitempty" yaml:"Description,omitempty"`
	Default        any    `json:"Default,omitempty" yaml:"Default,omitempty"`
	AllowedValues  []any  `json:"AllowedValues,omitempty" yaml:"AllowedValues,omitempty"`
	AllowedPattern string `json:"AllowedPattern,omitempty" yaml:"AllowedPattern,omitempty"`
	NoEcho         bool   `json:"NoEcho,omitempty" yaml:"NoEcho,omitempty"`
}

// Output is a template output definition.
type Output struct {
	Description string  `json:"Description,omitempty" yaml:"Description,omitempty"`
	Value       any     `json:"Value" yaml:"Value"`
	Export      *Export `json:"Export,omitempty" yaml:"Export,omitempty"`
}

// Export names an output for cross-stack imports.
type Export struct {
	Name string `json:"Name" yaml:"Name"`
}

// BuildResult is the JSON output from `ecomstack build`.
type BuildResult struct {
	Success   bool     `json:"success"`
	Template  Template `json:"template,omitempty"`
	Resources []string `json:"resources,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// ValidateResult is the JSON output from `ecomstack validate`.
type ValidateResult struct {
	Success   bool     `json:"success"`
	Resources int      `json:"resources"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// ListResult is the JSON output from `ecomstack list`.
type ListResult struct {
	Resources []ListResource `json:"resources"`
}

// ListResource is a single resource in the list output.
type ListResource struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TemplateDiff describes the difference between two templates.
type TemplateDiff struct {
	Added    []DiffEntry `json:"added,omitempty"`
	Removed  []DiffEntry `json:"removed,omitempty"`
	Modified []DiffEntry `json:"modified,omitempty"`
}

// DiffEntry is a single changed resource in a diff.
type DiffEntry struct {
	Resource string   `json:"resource"`
	Type     string   `json:"type"`
	Changes  []string `json:"changes,omitempty"`
}

// DiffSummary counts the entries in a TemplateDiff.
type DiffSummary struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
	Total    int `json:"total"`
}
