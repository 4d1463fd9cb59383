package stack

import (
	"ecomstack"
)

// StackDescription goes into the template Description field.
const StackDescription = "Placeholder ecommerce platform: ALB, two Fargate services, MySQL"

// Registry assembles every declared resource, parameter and output under
// its logical name. Logical names match the Go var names, so a resource in
// the template is greppable in the source.
func Registry() *ecomstack.Registry {
	r := ecomstack.NewRegistry()

	// Network
	r.MustRegister("EcommerceVpc", EcommerceVpc)
	r.MustRegister("EcommerceInternetGateway", EcommerceInternetGateway)
	r.MustRegister("GatewayAttachment", GatewayAttachment)
	r.MustRegister("PublicSubnetA", PublicSubnetA)
	r.MustRegister("PublicSubnetB", PublicSubnetB)
	r.MustRegister("IsolatedSubnetA", IsolatedSubnetA)
	r.MustRegister("IsolatedSubnetB", IsolatedSubnetB)
	r.MustRegister("PublicRouteTable", PublicRouteTable)
	// The default route is only valid once the gateway is attached;
	// CloudFormation cannot infer that from the GatewayId reference alone.
	r.MustRegister("PublicDefaultRoute", PublicDefaultRoute,
		ecomstack.DependsOn("GatewayAttachment"))
	r.MustRegister("PublicSubnetARouteAssociation", PublicSubnetARouteAssociation)
	r.MustRegister("PublicSubnetBRouteAssociation", PublicSubnetBRouteAssociation)
	r.MustRegister("IsolatedRouteTable", IsolatedRouteTable)
	r.MustRegister("IsolatedSubnetARouteAssociation", IsolatedSubnetARouteAssociation)
	r.MustRegister("IsolatedSubnetBRouteAssociation", IsolatedSubnetBRouteAssociation)

	// Security groups
	r.MustRegister("LoadBalancerSecurityGroup", LoadBalancerSecurityGroup)
	r.MustRegister("FrontendServiceSecurityGroup", FrontendServiceSecurityGroup)
	r.MustRegister("BackendServiceSecurityGroup", BackendServiceSecurityGroup)
	r.MustRegister("DatabaseSecurityGroup", DatabaseSecurityGroup)

	// Credentials and database
	r.MustRegister("DatabaseCredentials", DatabaseCredentials,
		ecomstack.WithDeletionPolicy("Delete"))
	r.MustRegister("DatabaseSubnetGroup", DatabaseSubnetGroup)
	r.MustRegister("EcommerceDatabase", EcommerceDatabase,
		ecomstack.WithDeletionPolicy("Delete"))

	// Cluster, logs, execution role
	r.MustRegister("EcommerceCluster", EcommerceCluster)
	r.MustRegister("FrontendLogGroup", FrontendLogGroup)
	r.MustRegister("BackendLogGroup", BackendLogGroup)
	r.MustRegister("TaskExecutionRole", TaskExecutionRole)

	// Load balancer tier
	r.MustRegister("PublicLoadBalancer", PublicLoadBalancer)
	r.MustRegister("FrontendTargetGroup", FrontendTargetGroup)
	r.MustRegister("BackendTargetGroup", BackendTargetGroup)
	r.MustRegister("HttpListener", HttpListener)
	r.MustRegister("BackendPathRule", BackendPathRule)

	// Services. A service whose target group is not yet attached to a
	// listener fails to stabilize, so each waits for its routing to exist.
	r.MustRegister("FrontendTaskDefinition", FrontendTaskDefinition)
	r.MustRegister("BackendTaskDefinition", BackendTaskDefinition)
	r.MustRegister("FrontendService", FrontendService,
		ecomstack.DependsOn("HttpListener"))
	r.MustRegister("BackendService", BackendService,
		ecomstack.DependsOn("HttpListener", "BackendPathRule"))

	registerParameters(r)
	registerOutputs(r)

	return r
}
