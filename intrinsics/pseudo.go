package intrinsics

import (
	"github.com/lex00/cloudformation-schema-go/intrinsics"
)

// Pseudo-parameters predefined by CloudFormation, re-exported from the
// shared schema package.
var (
	// AWS_ACCOUNT_ID is the account the stack is created in.
	AWS_ACCOUNT_ID = intrinsics.AWS_ACCOUNT_ID

	// AWS_REGION is the region the stack is created in.
	AWS_REGION = intrinsics.AWS_REGION

	// AWS_STACK_NAME is the name of the stack.
	AWS_STACK_NAME = intrinsics.AWS_STACK_NAME

	// AWS_PARTITION is the partition the resource is in.
	AWS_PARTITION = intrinsics.AWS_PARTITION

	// AWS_URL_SUFFIX is the domain suffix, usually amazonaws.com.
	AWS_URL_SUFFIX = intrinsics.AWS_URL_SUFFIX
)
