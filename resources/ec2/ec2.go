// Package ec2 provides the EC2 networking resource types the stack uses.
//
// Fields that can hold a reference (another resource, a Ref, a GetAtt, a
// Sub) are typed any; the serializer resolves direct struct references to
// logical names.
package ec2

// VPC is AWS::EC2::VPC.
type VPC struct {
	CidrBlock          string `json:"CidrBlock,omitempty"`
	EnableDnsHostnames bool   `json:"EnableDnsHostnames,omitempty"`
	EnableDnsSupport   bool   `json:"EnableDnsSupport,omitempty"`
	InstanceTenancy    string `json:"InstanceTenancy,omitempty"`
	Tags               []any  `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (VPC) ResourceType() string { return "AWS::EC2::VPC" }

// InternetGateway is AWS::EC2::InternetGateway.
type InternetGateway struct {
	Tags []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (InternetGateway) ResourceType() string { return "AWS::EC2::InternetGateway" }

// VPCGatewayAttachment is AWS::EC2::VPCGatewayAttachment.
type VPCGatewayAttachment struct {
	InternetGatewayId any `json:"InternetGatewayId,omitempty"`
	VpcId             any `json:"VpcId,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (VPCGatewayAttachment) ResourceType() string { return "AWS::EC2::VPCGatewayAttachment" }

// Subnet is AWS::EC2::Subnet.
type Subnet struct {
	VpcId               any    `json:"VpcId,omitempty"`
	CidrBlock           string `json:"CidrBlock,omitempty"`
	AvailabilityZone    any    `json:"AvailabilityZone,omitempty"`
	MapPublicIpOnLaunch bool   `json:"MapPublicIpOnLaunch,omitempty"`
	Tags                []any  `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (Subnet) ResourceType() string { return "AWS::EC2::Subnet" }

// RouteTable is AWS::EC2::RouteTable.
type RouteTable struct {
	VpcId any   `json:"VpcId,omitempty"`
	Tags  []any `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (RouteTable) ResourceType() string { return "AWS::EC2::RouteTable" }

// Route is AWS::EC2::Route.
type Route struct {
	RouteTableId         any    `json:"RouteTableId,omitempty"`
	DestinationCidrBlock string `json:"DestinationCidrBlock,omitempty"`
	GatewayId            any    `json:"GatewayId,omitempty"`
	NatGatewayId         any    `json:"NatGatewayId,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (Route) ResourceType() string { return "AWS::EC2::Route" }

// SubnetRouteTableAssociation is AWS::EC2::SubnetRouteTableAssociation.
type SubnetRouteTableAssociation struct {
	SubnetId     any `json:"SubnetId,omitempty"`
	RouteTableId any `json:"RouteTableId,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (SubnetRouteTableAssociation) ResourceType() string {
	return "AWS::EC2::SubnetRouteTableAssociation"
}

// SecurityGroup is AWS::EC2::SecurityGroup.
type SecurityGroup struct {
	GroupDescription     string `json:"GroupDescription,omitempty"`
	VpcId                any    `json:"VpcId,omitempty"`
	SecurityGroupIngress []any  `json:"SecurityGroupIngress,omitempty"`
	SecurityGroupEgress  []any  `json:"SecurityGroupEgress,omitempty"`
	Tags                 []any  `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (SecurityGroup) ResourceType() string { return "AWS::EC2::SecurityGroup" }

// SecurityGroup_Ingress is an inline ingress rule.
type SecurityGroup_Ingress struct {
	IpProtocol            string `json:"IpProtocol,omitempty"`
	FromPort              int    `json:"FromPort,omitempty"`
	ToPort                int    `json:"ToPort,omitempty"`
	CidrIp                string `json:"CidrIp,omitempty"`
	SourceSecurityGroupId any    `json:"SourceSecurityGroupId,omitempty"`
	Description           string `json:"Description,omitempty"`
}

// SecurityGroup_Egress is an inline egress rule.
type SecurityGroup_Egress struct {
	IpProtocol  string `json:"IpProtocol,omitempty"`
	FromPort    int    `json:"FromPort,omitempty"`
	ToPort      int    `json:"ToPort,omitempty"`
	CidrIp      string `json:"CidrIp,omitempty"`
	Description string `json:"Description,omitempty"`
}

// SecurityGroupIngress is AWS::EC2::SecurityGroupIngress, the standalone
// rule form. Needed when the source group would create a cycle between two
// inline-declared groups.
type SecurityGroupIngress struct {
	GroupId               any    `json:"GroupId,omitempty"`
	IpProtocol            string `json:"IpProtocol,omitempty"`
	FromPort              int    `json:"FromPort,omitempty"`
	ToPort                int    `json:"ToPort,omitempty"`
	CidrIp                string `json:"CidrIp,omitempty"`
	SourceSecurityGroupId any    `json:"SourceSecurityGroupId,omitempty"`
	Description           string `json:"Description,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (SecurityGroupIngress) ResourceType() string { return "AWS::EC2::SecurityGroupIngress" }
