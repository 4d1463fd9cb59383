// Package ecs provides the ECS resource types the stack uses.
package ecs

// Cluster is AWS::ECS::Cluster.
type Cluster struct {
	ClusterName     any   `json:"ClusterName,omitempty"`
	ClusterSettings []any `json:"ClusterSettings,omitempty"`
	Tags            []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (Cluster) ResourceType() string { return "AWS::ECS::Cluster" }

// Cluster_ClusterSettings is a cluster setting entry.
type Cluster_ClusterSettings struct {
	Name  string `json:"Name,omitempty"`
	Value string `json:"Value,omitempty"`
}

// TaskDefinition is AWS::ECS::TaskDefinition.
type TaskDefinition struct {
	Family                  any    `json:"Family,omitempty"`
	Cpu                     string `json:"Cpu,omitempty"`
	Memory                  string `json:"Memory,omitempty"`
	NetworkMode             string `json:"NetworkMode,omitempty"`
	RequiresCompatibilities []any  `json:"RequiresCompatibilities,omitempty"`
	ExecutionRoleArn        any    `json:"ExecutionRoleArn,omitempty"`
	TaskRoleArn             any    `json:"TaskRoleArn,omitempty"`
	ContainerDefinitions    []any  `json:"ContainerDefinitions,omitempty"`
	Tags                    []any  `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (TaskDefinition) ResourceType() string { return "AWS::ECS::TaskDefinition" }

// TaskDefinition_ContainerDefinition describes one container in a task.
type TaskDefinition_ContainerDefinition struct {
	Name             string `json:"Name,omitempty"`
	Image            any    `json:"Image,omitempty"`
	Essential        bool   `json:"Essential,omitempty"`
	PortMappings     []any  `json:"PortMappings,omitempty"`
	Environment      []any  `json:"Environment,omitempty"`
	Secrets          []any  `json:"Secrets,omitempty"`
	LogConfiguration any    `json:"LogConfiguration,omitempty"`
}

// TaskDefinition_PortMapping exposes a container port.
type TaskDefinition_PortMapping struct {
	ContainerPort int    `json:"ContainerPort,omitempty"`
	Protocol      string `json:"Protocol,omitempty"`
}

// TaskDefinition_KeyValuePair is a plain environment variable.
type TaskDefinition_KeyValuePair struct {
	Name  string `json:"Name,omitempty"`
	Value any    `json:"Value,omitempty"`
}

// TaskDefinition_Secret injects a secret value by reference. ValueFrom is
// a Secrets Manager ARN, optionally with a JSON field selector suffix; the
// secret value itself never appears in the template.
type TaskDefinition_Secret struct {
	Name      string `json:"Name,omitempty"`
	ValueFrom any    `json:"ValueFrom,omitempty"`
}

// TaskDefinition_LogConfiguration routes container logs to a log driver.
type TaskDefinition_LogConfiguration struct {
	LogDriver string         `json:"LogDriver,omitempty"`
	Options   map[string]any `json:"Options,omitempty"`
}

// Service is AWS::ECS::Service.
type Service struct {
	ServiceName             any   `json:"ServiceName,omitempty"`
	Cluster                 any   `json:"Cluster,omitempty"`
	TaskDefinition          any   `json:"TaskDefinition,omitempty"`
	DesiredCount            int   `json:"DesiredCount,omitempty"`
	LaunchType              string `json:"LaunchType,omitempty"`
	NetworkConfiguration    any   `json:"NetworkConfiguration,omitempty"`
	LoadBalancers           []any `json:"LoadBalancers,omitempty"`
	DeploymentConfiguration any   `json:"DeploymentConfiguration,omitempty"`
	Tags                    []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (Service) ResourceType() string { return "AWS::ECS::Service" }

// Service_NetworkConfiguration wraps the awsvpc configuration.
type Service_NetworkConfiguration struct {
	AwsvpcConfiguration any `json:"AwsvpcConfiguration,omitempty"`
}

// Service_AwsVpcConfiguration places tasks into subnets and groups.
type Service_AwsVpcConfiguration struct {
	AssignPublicIp string `json:"AssignPublicIp,omitempty"`
	Subnets        []any  `json:"Subnets,omitempty"`
	SecurityGroups []any  `json:"SecurityGroups,omitempty"`
}

// Service_LoadBalancer attaches a container port to a target group.
type Service_LoadBalancer struct {
	ContainerName  string `json:"ContainerName,omitempty"`
	ContainerPort  int    `json:"ContainerPort,omitempty"`
	TargetGroupArn any    `json:"TargetGroupArn,omitempty"`
}

// Service_DeploymentConfiguration tunes rolling deployments.
type Service_DeploymentConfiguration struct {
	MaximumPercent           int `json:"MaximumPercent,omitempty"`
	MinimumHealthyPercent    int `json:"MinimumHealthyPercent,omitempty"`
	DeploymentCircuitBreaker any `json:"DeploymentCircuitBreaker,omitempty"`
}

// Service_DeploymentCircuitBreaker rolls back failed deployments.
type Service_DeploymentCircuitBreaker struct {
	Enable   bool `json:"Enable,omitempty"`
	Rollback bool `json:"Rollback,omitempty"`
}
