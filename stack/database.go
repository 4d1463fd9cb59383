// Database tier: a single MySQL instance on the isolated subnets, sized
// for development.
package stack

import (
	. "ecomstack/intrinsics"
	"ecomstack/resources/rds"
)

// DatabaseName is the schema created on first boot.
const DatabaseName = "ecommerce"

// DatabaseSubnetGroup pins the database to the isolated subnets.
var DatabaseSubnetGroup = rds.DBSubnetGroup{
	DBSubnetGroupDescription: "Isolated subnets for the ecommerce database",
	SubnetIds:                []any{IsolatedSubnetA, IsolatedSubnetB},
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-db-subnets"}},
	},
}

// EcommerceDatabase is the MySQL instance. Credentials are dynamic
// references into DatabaseCredentials, resolved by CloudFormation at
// deploy time; the password never appears in the template or in source.
var EcommerceDatabase = rds.DBInstance{
	Engine:              "mysql",
	EngineVersion:       "8.0.43",
	DBName:              DatabaseName,
	DBInstanceClass:     "db.t3.micro",
	AllocatedStorage:    "20",
	MaxAllocatedStorage: 100,
	MasterUsername:      Sub{String: "{{resolve:secretsmanager:${DatabaseCredentials}:SecretString:username}}"},
	MasterUserPassword:  Sub{String: "{{resolve:secretsmanager:${DatabaseCredentials}:SecretString:password}}"},
	DBSubnetGroupName:   DatabaseSubnetGroup,
	VPCSecurityGroups:   []any{DatabaseSecurityGroup},
	MultiAZ:             BoolPtr(false),
	PubliclyAccessible:  BoolPtr(false),
	DeletionProtection:  BoolPtr(false),
	// Dev-friendly teardown: drop backups with the instance.
	DeleteAutomatedBackups: true,
}
