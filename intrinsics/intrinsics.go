// Package intrinsics provides the CloudFormation intrinsic functions used
// by the stack declarations.
//
// The core types come from cloudformation-schema-go and are re-exported so
// declaration files need a single dot-import:
//
//	Ref{LogicalName: "EcommerceVpc"}       → {"Ref": "EcommerceVpc"}
//	GetAtt{LogicalName: "Db", Attribute: "Endpoint.Address"}
//	Sub{String: "http://${PublicLoadBalancer.DNSName}/api"}
package intrinsics

import (
	"github.com/lex00/cloudformation-schema-go/intrinsics"
)

type (
	// Ref is the CloudFormation Ref intrinsic.
	Ref = intrinsics.Ref

	// GetAtt is the Fn::GetAtt intrinsic.
	GetAtt = intrinsics.GetAtt

	// Sub is the Fn::Sub intrinsic.
	Sub = intrinsics.Sub

	// Join is the Fn::Join intrinsic.
	Join = intrinsics.Join

	// Select is the Fn::Select intrinsic.
	Select = intrinsics.Select

	// GetAZs is the Fn::GetAZs intrinsic.
	GetAZs = intrinsics.GetAZs

	// Tag is a CloudFormation resource tag.
	Tag = intrinsics.Tag
)

// Param creates a Ref to a template parameter.
var Param = intrinsics.Param

// Pointer helpers for optional properties whose zero value is meaningful.
// A plain false or 0 is dropped by the serializer; a pointer survives.

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// IntPtr returns a pointer to i.
func IntPtr(i int) *int {
	return &i
}
