// Package iam provides the IAM resource types the stack uses.
package iam

// Role is AWS::IAM::Role.
type Role struct {
	RoleName                 any   `json:"RoleName,omitempty"`
	AssumeRolePolicyDocument any   `json:"AssumeRolePolicyDocument,omitempty"`
	ManagedPolicyArns        []any `json:"ManagedPolicyArns,omitempty"`
	Policies                 []any `json:"Policies,omitempty"`
	Tags                     []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (Role) ResourceType() string { return "AWS::IAM::Role" }

// Role_Policy is an inline policy attached to a role.
type Role_Policy struct {
	PolicyName     string `json:"PolicyName,omitempty"`
	PolicyDocument any    `json:"PolicyDocument,omitempty"`
}
