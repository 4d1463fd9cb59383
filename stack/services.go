// ECS services. Both run on the public subnets with public IPs so tasks
// can pull images without NAT gateways; their security groups only admit
// the load balancer.
package stack

import (
	"ecomstack/resources/ecs"
)

// FrontendService keeps one storefront task behind the frontend target group.
var FrontendService = ecs.Service{
	Cluster:        EcommerceCluster,
	TaskDefinition: FrontendTaskDefinition,
	DesiredCount:   1,
	LaunchType:     "FARGATE",
	NetworkConfiguration: ecs.Service_NetworkConfiguration{
		AwsvpcConfiguration: ecs.Service_AwsVpcConfiguration{
			AssignPublicIp: "ENABLED",
			Subnets:        []any{PublicSubnetA, PublicSubnetB},
			SecurityGroups: []any{FrontendServiceSecurityGroup},
		},
	},
	LoadBalancers: []any{
		ecs.Service_LoadBalancer{
			ContainerName:  FrontendContainerName,
			ContainerPort:  FrontendPort,
			TargetGroupArn: FrontendTargetGroup,
		},
	},
}

// BackendService keeps one API task behind the backend target group.
var BackendService = ecs.Service{
	Cluster:        EcommerceCluster,
	TaskDefinition: BackendTaskDefinition,
	DesiredCount:   1,
	LaunchType:     "FARGATE",
	NetworkConfiguration: ecs.Service_NetworkConfiguration{
		AwsvpcConfiguration: ecs.Service_AwsVpcConfiguration{
			AssignPublicIp: "ENABLED",
			Subnets:        []any{PublicSubnetA, PublicSubnetB},
			SecurityGroups: []any{BackendServiceSecurityGroup},
		},
	},
	LoadBalancers: []any{
		ecs.Service_LoadBalancer{
			ContainerName:  BackendContainerName,
			ContainerPort:  BackendPort,
			TargetGroupArn: BackendTargetGroup,
		},
	},
}
