// Fargate task definitions. Both tasks run a single essential container and
// send logs to CloudWatch. Database credentials reach the backend only as
// ECS Secrets; plain Environment entries never carry the password.
package stack

import (
	. "ecomstack/intrinsics"
	"ecomstack/resources/ecs"
)

// FrontendContainerName and BackendContainerName tie task definitions to
// service load balancer attachments.
const (
	FrontendContainerName = "FrontendContainer"
	BackendContainerName  = "BackendContainer"
)

// FrontendTaskDefinition renders the storefront. It talks to the backend
// through the load balancer, so its only configuration is the API base URL.
var FrontendTaskDefinition = ecs.TaskDefinition{
	Cpu:                     "512",
	Memory:                  "1024",
	NetworkMode:             "awsvpc",
	RequiresCompatibilities: []any{"FARGATE"},
	ExecutionRoleArn:        GetAtt{LogicalName: "TaskExecutionRole", Attribute: "Arn"},
	ContainerDefinitions: []any{
		ecs.TaskDefinition_ContainerDefinition{
			Name:      FrontendContainerName,
			Image:     Param("FrontendImage"),
			Essential: true,
			PortMappings: []any{
				ecs.TaskDefinition_PortMapping{ContainerPort: FrontendPort, Protocol: "tcp"},
			},
			Environment: []any{
				ecs.TaskDefinition_KeyValuePair{
					Name:  "API_BASE_URL",
					Value: Sub{String: "http://${PublicLoadBalancer.DNSName}/api"},
				},
				ecs.TaskDefinition_KeyValuePair{
					Name:  "PORT",
					Value: "3000",
				},
			},
			LogConfiguration: ecs.TaskDefinition_LogConfiguration{
				LogDriver: "awslogs",
				Options: map[string]any{
					"awslogs-group":         FrontendLogGroup,
					"awslogs-region":        AWS_REGION,
					"awslogs-stream-prefix": "Frontend",
				},
			},
		},
	},
}

// BackendTaskDefinition runs the API. Connection coordinates (host, port,
// schema name) are plain environment variables; the username and password
// are injected from the credentials secret at task start.
var BackendTaskDefinition = ecs.TaskDefinition{
	Cpu:                     "512",
	Memory:                  "1024",
	NetworkMode:             "awsvpc",
	RequiresCompatibilities: []any{"FARGATE"},
	ExecutionRoleArn:        GetAtt{LogicalName: "TaskExecutionRole", Attribute: "Arn"},
	ContainerDefinitions: []any{
		ecs.TaskDefinition_ContainerDefinition{
			Name:      BackendContainerName,
			Image:     Param("BackendImage"),
			Essential: true,
			PortMappings: []any{
				ecs.TaskDefinition_PortMapping{ContainerPort: BackendPort, Protocol: "tcp"},
			},
			Environment: []any{
				ecs.TaskDefinition_KeyValuePair{
					Name:  "DB_HOST",
					Value: GetAtt{LogicalName: "EcommerceDatabase", Attribute: "Endpoint.Address"},
				},
				ecs.TaskDefinition_KeyValuePair{
					Name:  "DB_PORT",
					Value: GetAtt{LogicalName: "EcommerceDatabase", Attribute: "Endpoint.Port"},
				},
				ecs.TaskDefinition_KeyValuePair{
					Name:  "DB_NAME",
					Value: DatabaseName,
				},
				ecs.TaskDefinition_KeyValuePair{
					Name:  "PORT",
					Value: "4000",
				},
			},
			Secrets: []any{
				ecs.TaskDefinition_Secret{
					Name:      "DB_USERNAME",
					ValueFrom: Sub{String: "${DatabaseCredentials}:username::"},
				},
				ecs.TaskDefinition_Secret{
					Name:      "DB_PASSWORD",
					ValueFrom: Sub{String: "${DatabaseCredentials}:password::"},
				},
			},
			LogConfiguration: ecs.TaskDefinition_LogConfiguration{
				LogDriver: "awslogs",
				Options: map[string]any{
					"awslogs-group":         BackendLogGroup,
					"awslogs-region":        AWS_REGION,
					"awslogs-stream-prefix": "Backend",
				},
			},
		},
	},
}
