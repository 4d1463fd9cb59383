// Security groups. Traffic flows one way through the tiers:
// internet -> ALB -> frontend/backend tasks -> database.
package stack

import (
	"ecomstack/resources/ec2"
)

// Service ports. The ALB listens on 80 and forwards to these.
const (
	FrontendPort = 3000
	BackendPort  = 4000
	DatabasePort = 3306
)

// LoadBalancerSecurityGroup admits HTTP from anywhere.
var LoadBalancerSecurityGroup = ec2.SecurityGroup{
	GroupDescription: "Allow HTTP access to the load balancer",
	VpcId:            EcommerceVpc,
	SecurityGroupIngress: []any{
		ec2.SecurityGroup_Ingress{
			IpProtocol:  "tcp",
			FromPort:    80,
			ToPort:      80,
			CidrIp:      "0.0.0.0/0",
			Description: "Allow HTTP traffic from the internet",
		},
	},
}

// FrontendServiceSecurityGroup admits the frontend port from the ALB only.
var FrontendServiceSecurityGroup = ec2.SecurityGroup{
	GroupDescription: "Allow traffic from the load balancer to the frontend service",
	VpcId:            EcommerceVpc,
	SecurityGroupIngress: []any{
		ec2.SecurityGroup_Ingress{
			IpProtocol:            "tcp",
			FromPort:              FrontendPort,
			ToPort:                FrontendPort,
			SourceSecurityGroupId: LoadBalancerSecurityGroup,
			Description:           "Allow ALB to reach the frontend containers",
		},
	},
}

// BackendServiceSecurityGroup admits the backend port from the ALB only.
var BackendServiceSecurityGroup = ec2.SecurityGroup{
	GroupDescription: "Allow traffic from the load balancer to the backend service",
	VpcId:            EcommerceVpc,
	SecurityGroupIngress: []any{
		ec2.SecurityGroup_Ingress{
			IpProtocol:            "tcp",
			FromPort:              BackendPort,
			ToPort:                BackendPort,
			SourceSecurityGroupId: LoadBalancerSecurityGroup,
			Description:           "Allow ALB to reach the backend containers",
		},
	},
}

// DatabaseSecurityGroup admits MySQL from the backend service only. No
// other ingress rule exists, so neither the ALB nor the frontend can open
// a connection to the database.
var DatabaseSecurityGroup = ec2.SecurityGroup{
	GroupDescription: "Restrict database access to backend service",
	VpcId:            EcommerceVpc,
	SecurityGroupIngress: []any{
		ec2.SecurityGroup_Ingress{
			IpProtocol:            "tcp",
			FromPort:              DatabasePort,
			ToPort:                DatabasePort,
			SourceSecurityGroupId: BackendServiceSecurityGroup,
			Description:           "Allow backend containers to connect to MySQL",
		},
	},
}
