// Package stack declares the ecommerce deployment topology.
//
// Each CloudFormation resource is a named top-level var, registered under
// its logical name in stack.go. Direct struct references (VpcId:
// EcommerceVpc) serialize as Refs; attribute references use GetAtt or Sub.
//
// Network topology:
//
//	VPC (10.0.0.0/16, 2 AZs, no NAT gateways)
//	|
//	+-- Public Subnet AZ-a (10.0.0.0/24)  <- ALB, ECS tasks
//	+-- Public Subnet AZ-b (10.0.1.0/24)
//	|
//	+-- Isolated Subnet AZ-a (10.0.10.0/24)  <- database only
//	+-- Isolated Subnet AZ-b (10.0.11.0/24)
//
// The isolated subnets share a route table with no internet route, so the
// database tier has no path to or from the public internet.
package stack

import (
	. "ecomstack/intrinsics"
	"ecomstack/resources/ec2"
)

// ----------------------------------------------------------------------------
// VPC
// ----------------------------------------------------------------------------

// EcommerceVpc is the VPC everything else lives in.
var EcommerceVpc = ec2.VPC{
	CidrBlock:          "10.0.0.0/16",
	EnableDnsHostnames: true,
	EnableDnsSupport:   true,
	InstanceTenancy:    "default",
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-vpc"}},
	},
}

// ----------------------------------------------------------------------------
// Internet Gateway
// ----------------------------------------------------------------------------

// EcommerceInternetGateway provides internet access for the public subnets.
var EcommerceInternetGateway = ec2.InternetGateway{
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-igw"}},
	},
}

// GatewayAttachment attaches the internet gateway to the VPC.
var GatewayAttachment = ec2.VPCGatewayAttachment{
	InternetGatewayId: EcommerceInternetGateway,
	VpcId:             EcommerceVpc,
}

// ----------------------------------------------------------------------------
// Public subnets (load balancer and service tasks)
// ----------------------------------------------------------------------------

// PublicSubnetA is the public subnet in the first availability zone.
var PublicSubnetA = ec2.Subnet{
	VpcId:               EcommerceVpc,
	CidrBlock:           "10.0.0.0/24",
	AvailabilityZone:    Select{Index: 0, List: GetAZs{}},
	MapPublicIpOnLaunch: true,
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-public-a"}},
	},
}

// PublicSubnetB is the public subnet in the second availability zone.
var PublicSubnetB = ec2.Subnet{
	VpcId:               EcommerceVpc,
	CidrBlock:           "10.0.1.0/24",
	AvailabilityZone:    Select{Index: 1, List: GetAZs{}},
	MapPublicIpOnLaunch: true,
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-public-b"}},
	},
}

// ----------------------------------------------------------------------------
// Isolated subnets (database tier)
// ----------------------------------------------------------------------------

// IsolatedSubnetA is the isolated subnet in the first availability zone.
var IsolatedSubnetA = ec2.Subnet{
	VpcId:            EcommerceVpc,
	CidrBlock:        "10.0.10.0/24",
	AvailabilityZone: Select{Index: 0, List: GetAZs{}},
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-isolated-a"}},
	},
}

// IsolatedSubnetB is the isolated subnet in the second availability zone.
var IsolatedSubnetB = ec2.Subnet{
	VpcId:            EcommerceVpc,
	CidrBlock:        "10.0.11.0/24",
	AvailabilityZone: Select{Index: 1, List: GetAZs{}},
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-isolated-b"}},
	},
}

// ----------------------------------------------------------------------------
// Routing
// ----------------------------------------------------------------------------

// PublicRouteTable carries the default route to the internet gateway.
var PublicRouteTable = ec2.RouteTable{
	VpcId: EcommerceVpc,
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-public-rt"}},
	},
}

// PublicDefaultRoute sends non-local traffic through the internet gateway.
var PublicDefaultRoute = ec2.Route{
	RouteTableId:         PublicRouteTable,
	DestinationCidrBlock: "0.0.0.0/0",
	GatewayId:            EcommerceInternetGateway,
}

// PublicSubnetARouteAssociation puts PublicSubnetA on the public route table.
var PublicSubnetARouteAssociation = ec2.SubnetRouteTableAssociation{
	SubnetId:     PublicSubnetA,
	RouteTableId: PublicRouteTable,
}

// PublicSubnetBRouteAssociation puts PublicSubnetB on the public route table.
var PublicSubnetBRouteAssociation = ec2.SubnetRouteTableAssociation{
	SubnetId:     PublicSubnetB,
	RouteTableId: PublicRouteTable,
}

// IsolatedRouteTable has only the implicit local route. No default route is
// ever added to it; that is what keeps the database tier unreachable from
// outside the VPC.
var IsolatedRouteTable = ec2.RouteTable{
	VpcId: EcommerceVpc,
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-isolated-rt"}},
	},
}

// IsolatedSubnetARouteAssociation puts IsolatedSubnetA on the isolated route table.
var IsolatedSubnetARouteAssociation = ec2.SubnetRouteTableAssociation{
	SubnetId:     IsolatedSubnetA,
	RouteTableId: IsolatedRouteTable,
}

// IsolatedSubnetBRouteAssociation puts IsolatedSubnetB on the isolated route table.
var IsolatedSubnetBRouteAssociation = ec2.SubnetRouteTableAssociation{
	SubnetId:     IsolatedSubnetB,
	RouteTableId: IsolatedRouteTable,
}
