// Compute cluster, log groups and the shared task execution role.
package stack

import (
	. "ecomstack/intrinsics"
	"ecomstack/resources/ecs"
	"ecomstack/resources/iam"
	"ecomstack/resources/logs"
)

// ----------------------------------------------------------------------------
// ECS Cluster
// ----------------------------------------------------------------------------

// EcommerceCluster hosts both Fargate services.
var EcommerceCluster = ecs.Cluster{
	ClusterName: Sub{String: "${AWS::StackName}-cluster"},
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-cluster"}},
	},
}

// ----------------------------------------------------------------------------
// CloudWatch Logs
// ----------------------------------------------------------------------------

// FrontendLogGroup stores frontend container logs.
var FrontendLogGroup = logs.LogGroup{
	LogGroupName:    Sub{String: "/ecs/${AWS::StackName}/frontend"},
	RetentionInDays: 30,
}

// BackendLogGroup stores backend container logs.
var BackendLogGroup = logs.LogGroup{
	LogGroupName:    Sub{String: "/ecs/${AWS::StackName}/backend"},
	RetentionInDays: 30,
}

// ----------------------------------------------------------------------------
// Task execution role
// ----------------------------------------------------------------------------

// EcsAssumeRolePolicy is the trust policy for ECS task roles.
var EcsAssumeRolePolicy = PolicyDocument{
	Version: "2012-10-17",
	Statement: []any{
		PolicyStatement{
			Effect:    "Allow",
			Principal: ServicePrincipal{"ecs-tasks.amazonaws.com"},
			Action:    "sts:AssumeRole",
		},
	},
}

// SecretAccessPolicy lets the ECS agent read the database credentials when
// it injects the container Secrets. Without this the backend tasks fail to
// start with a secrets fetch error.
var SecretAccessPolicy = iam.Role_Policy{
	PolicyName: "read-database-credentials",
	PolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect:   "Allow",
				Action:   "secretsmanager:GetSecretValue",
				Resource: DatabaseCredentials,
			},
		},
	},
}

// TaskExecutionRole is assumed by the ECS agent to pull images, write logs
// and fetch the credentials secret. The applications themselves get no AWS
// permissions.
var TaskExecutionRole = iam.Role{
	AssumeRolePolicyDocument: EcsAssumeRolePolicy,
	ManagedPolicyArns: []any{
		"arn:aws:iam::aws:policy/service-role/AmazonECSTaskExecutionRolePolicy",
	},
	Policies: []any{SecretAccessPolicy},
}
