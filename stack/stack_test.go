package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomstack/intrinsics"
	"ecomstack/resources/ec2"
	"ecomstack/resources/ecs"
	"ecomstack/resources/elasticloadbalancingv2"
	"ecomstack/resources/secretsmanager"
)

func TestRegistryAssembles(t *testing.T) {
	r := Registry()

	names := r.ResourceNames()
	assert.NotEmpty(t, names)

	// Every registered value must round-trip through reverse lookup, or
	// direct struct references to it would not serialize as Refs.
	for _, name := range names {
		v, ok := r.Lookup(name)
		require.True(t, ok, name)
		found, ok := r.FindByValue(v)
		require.True(t, ok, name)
		assert.Equal(t, name, found)
	}
}

func TestRegistryCoreResources(t *testing.T) {
	r := Registry()

	for _, name := range []string{
		"EcommerceVpc",
		"PublicSubnetA", "PublicSubnetB",
		"IsolatedSubnetA", "IsolatedSubnetB",
		"DatabaseCredentials", "EcommerceDatabase",
		"EcommerceCluster",
		"FrontendService", "BackendService",
		"PublicLoadBalancer", "HttpListener", "BackendPathRule",
	} {
		_, ok := r.Lookup(name)
		assert.True(t, ok, "missing resource %s", name)
	}
}

func TestDatabaseCredentialsSecret(t *testing.T) {
	r := Registry()

	v, ok := r.Lookup("DatabaseCredentials")
	require.True(t, ok)
	secret, ok := v.(secretsmanager.Secret)
	require.True(t, ok)

	assert.Equal(t, "ecommerce/mysql", secret.Name)
	gen, ok := secret.GenerateSecretString.(secretsmanager.Secret_GenerateSecretString)
	require.True(t, ok)
	assert.JSONEq(t, `{"username": "appuser"}`, gen.SecretStringTemplate)
	assert.Equal(t, "password", gen.GenerateStringKey)
	assert.True(t, gen.ExcludePunctuation)

	assert.Equal(t, "Delete", r.DeletionPolicyFor("DatabaseCredentials"))
}

func TestDatabaseInstance(t *testing.T) {
	db := EcommerceDatabase

	assert.Equal(t, "mysql", db.Engine)
	assert.Equal(t, "8.0.43", db.EngineVersion)
	assert.Equal(t, "ecommerce", db.DBName)
	assert.Equal(t, "db.t3.micro", db.DBInstanceClass)
	assert.Equal(t, "20", db.AllocatedStorage)
	assert.Equal(t, 100, db.MaxAllocatedStorage)

	require.NotNil(t, db.MultiAZ)
	assert.False(t, *db.MultiAZ)
	require.NotNil(t, db.PubliclyAccessible)
	assert.False(t, *db.PubliclyAccessible)
	require.NotNil(t, db.DeletionProtection)
	assert.False(t, *db.DeletionProtection)
	assert.True(t, db.DeleteAutomatedBackups)

	// Credentials come from the secret via dynamic references; no literal
	// password anywhere.
	user, ok := db.MasterUsername.(intrinsics.Sub)
	require.True(t, ok)
	assert.Contains(t, user.String, "{{resolve:secretsmanager:")
	pass, ok := db.MasterUserPassword.(intrinsics.Sub)
	require.True(t, ok)
	assert.Contains(t, pass.String, ":SecretString:password}}")
}

func TestDatabaseNetworkPlacement(t *testing.T) {
	sub, ok := DatabaseSubnetGroup.SubnetIds[0].(ec2.Subnet)
	require.True(t, ok)
	assert.Equal(t, IsolatedSubnetA, sub)
	assert.Equal(t, IsolatedSubnetB, DatabaseSubnetGroup.SubnetIds[1])

	require.Len(t, EcommerceDatabase.VPCSecurityGroups, 1)
	assert.Equal(t, DatabaseSecurityGroup, EcommerceDatabase.VPCSecurityGroups[0])
}

func TestDatabaseSecurityGroupAdmitsBackendOnly(t *testing.T) {
	require.Len(t, DatabaseSecurityGroup.SecurityGroupIngress, 1)
	rule, ok := DatabaseSecurityGroup.SecurityGroupIngress[0].(ec2.SecurityGroup_Ingress)
	require.True(t, ok)

	assert.Equal(t, "tcp", rule.IpProtocol)
	assert.Equal(t, DatabasePort, rule.FromPort)
	assert.Equal(t, DatabasePort, rule.ToPort)
	assert.Empty(t, rule.CidrIp)
	assert.Equal(t, BackendServiceSecurityGroup, rule.SourceSecurityGroupId)
}

func TestIsolatedSubnetsHaveNoInternetRoute(t *testing.T) {
	r := Registry()

	// The only Route in the stack belongs to the public route table.
	var routes []ec2.Route
	for _, name := range r.ResourceNames() {
		v, _ := r.Lookup(name)
		if rt, ok := v.(ec2.Route); ok {
			routes = append(routes, rt)
		}
	}
	require.Len(t, routes, 1)
	assert.Equal(t, PublicRouteTable, routes[0].RouteTableId)
	assert.NotEqual(t, IsolatedRouteTable, routes[0].RouteTableId)
}

func TestTwoFargateServices(t *testing.T) {
	r := Registry()

	var services []ecs.Service
	for _, name := range r.ResourceNames() {
		v, _ := r.Lookup(name)
		if svc, ok := v.(ecs.Service); ok {
			services = append(services, svc)
		}
	}
	require.Len(t, services, 2)
	for _, svc := range services {
		assert.Equal(t, "FARGATE", svc.LaunchType)
		assert.Equal(t, 1, svc.DesiredCount)
	}
}

func TestServicesWaitForRouting(t *testing.T) {
	r := Registry()

	assert.Contains(t, r.DependsOnFor("FrontendService"), "HttpListener")
	assert.Contains(t, r.DependsOnFor("BackendService"), "HttpListener")
	assert.Contains(t, r.DependsOnFor("BackendService"), "BackendPathRule")
}

func TestBackendTaskEnvironmentAndSecrets(t *testing.T) {
	container, ok := BackendTaskDefinition.ContainerDefinitions[0].(ecs.TaskDefinition_ContainerDefinition)
	require.True(t, ok)

	env := map[string]any{}
	for _, e := range container.Environment {
		kv := e.(ecs.TaskDefinition_KeyValuePair)
		env[kv.Name] = kv.Value
	}
	assert.Contains(t, env, "DB_HOST")
	assert.Contains(t, env, "DB_PORT")
	assert.Equal(t, "ecommerce", env["DB_NAME"])
	// Credentials must never travel as plain environment variables.
	assert.NotContains(t, env, "DB_USERNAME")
	assert.NotContains(t, env, "DB_PASSWORD")

	secretNames := map[string]bool{}
	for _, s := range container.Secrets {
		sec := s.(ecs.TaskDefinition_Secret)
		secretNames[sec.Name] = true
	}
	assert.True(t, secretNames["DB_USERNAME"])
	assert.True(t, secretNames["DB_PASSWORD"])
}

func TestTaskSizing(t *testing.T) {
	for _, td := range []ecs.TaskDefinition{FrontendTaskDefinition, BackendTaskDefinition} {
		assert.Equal(t, "512", td.Cpu)
		assert.Equal(t, "1024", td.Memory)
		assert.Equal(t, "awsvpc", td.NetworkMode)
		assert.Equal(t, []any{"FARGATE"}, td.RequiresCompatibilities)
	}

	fc := FrontendTaskDefinition.ContainerDefinitions[0].(ecs.TaskDefinition_ContainerDefinition)
	pm := fc.PortMappings[0].(ecs.TaskDefinition_PortMapping)
	assert.Equal(t, 3000, pm.ContainerPort)

	bc := BackendTaskDefinition.ContainerDefinitions[0].(ecs.TaskDefinition_ContainerDefinition)
	pm = bc.PortMappings[0].(ecs.TaskDefinition_PortMapping)
	assert.Equal(t, 4000, pm.ContainerPort)
}

func TestLoadBalancerIsInternetFacing(t *testing.T) {
	assert.Equal(t, "internet-facing", PublicLoadBalancer.Scheme)
	assert.Equal(t, "application", PublicLoadBalancer.Type)
	assert.Len(t, PublicLoadBalancer.Subnets, 2)
}

func TestBackendPathRulePatterns(t *testing.T) {
	cond := BackendPathRule.Conditions[0].(elasticloadbalancingv2.ListenerRule_RuleCondition)
	ppc := cond.PathPatternConfig.(elasticloadbalancingv2.ListenerRule_PathPatternConfig)
	assert.Equal(t, "path-pattern", cond.Field)
	assert.Equal(t, []any{"/api*", "/api/*"}, ppc.Values)
	assert.Equal(t, 10, BackendPathRule.Priority)
}

func TestOutputs(t *testing.T) {
	r := Registry()

	for _, name := range []string{
		"LoadBalancerUrl",
		"FrontendDockerContext", "BackendDockerContext",
		"DatabaseSecretArn", "DatabaseEndpoint",
	} {
		_, ok := r.Output(name)
		assert.True(t, ok, "missing output %s", name)
	}

	out, _ := r.Output("FrontendDockerContext")
	assert.Equal(t, "container_images/frontend", out.Value)
	out, _ = r.Output("BackendDockerContext")
	assert.Equal(t, "container_images/backend", out.Value)
}

func TestParameters(t *testing.T) {
	r := Registry()

	for _, name := range []string{"FrontendImage", "BackendImage"} {
		p, ok := r.Parameter(name)
		require.True(t, ok, name)
		assert.Equal(t, "String", p.Type)
	}
}

// Registry must behave the same on every call; anything else would make
// repeated builds produce spurious diffs.
func TestRegistryIsDeterministic(t *testing.T) {
	a, b := Registry(), Registry()
	assert.Equal(t, a.ResourceNames(), b.ResourceNames())
	assert.Equal(t, a.OutputNames(), b.OutputNames())
	assert.Equal(t, a.ParameterNames(), b.ParameterNames())

	for _, name := range a.ResourceNames() {
		av, _ := a.Lookup(name)
		bv, _ := b.Lookup(name)
		assert.Equal(t, av, bv, name)
	}
}
