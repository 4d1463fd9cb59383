// Package rds provides the RDS resource types the stack uses.
package rds

// DBSubnetGroup is AWS::RDS::DBSubnetGroup.
type DBSubnetGroup struct {
	DBSubnetGroupName        any    `json:"DBSubnetGroupName,omitempty"`
	DBSubnetGroupDescription string `json:"DBSubnetGroupDescription,omitempty"`
	SubnetIds                []any  `json:"SubnetIds,omitempty"`
	Tags                     []any  `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (DBSubnetGroup) ResourceType() string { return "AWS::RDS::DBSubnetGroup" }

// DBInstance is AWS::RDS::DBInstance.
//
// PubliclyAccessible, MultiAZ and DeletionProtection are pointers: their
// false values must survive serialization so the isolation posture is
// explicit in the template.
type DBInstance struct {
	Engine                 string `json:"Engine,omitempty"`
	EngineVersion          string `json:"EngineVersion,omitempty"`
	DBName                 string `json:"DBName,omitempty"`
	DBInstanceClass        string `json:"DBInstanceClass,omitempty"`
	AllocatedStorage       string `json:"AllocatedStorage,omitempty"`
	MaxAllocatedStorage    int    `json:"MaxAllocatedStorage,omitempty"`
	MasterUsername         any    `json:"MasterUsername,omitempty"`
	MasterUserPassword     any    `json:"MasterUserPassword,omitempty"`
	DBSubnetGroupName      any    `json:"DBSubnetGroupName,omitempty"`
	VPCSecurityGroups      []any  `json:"VPCSecurityGroups,omitempty"`
	MultiAZ                *bool  `json:"MultiAZ,omitempty"`
	PubliclyAccessible     *bool  `json:"PubliclyAccessible,omitempty"`
	DeletionProtection     *bool  `json:"DeletionProtection,omitempty"`
	DeleteAutomatedBackups bool   `json:"DeleteAutomatedBackups,omitempty"`
	Tags                   []any  `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (DBInstance) ResourceType() string { return "AWS::RDS::DBInstance" }
