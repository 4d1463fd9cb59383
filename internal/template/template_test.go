package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ecomstack"
	"ecomstack/resources/ec2"
	"ecomstack/stack"
)

func buildStack(t *testing.T) *ecomstack.Template {
	t.Helper()
	tmpl, err := NewBuilder(stack.Registry()).
		WithDescription(stack.StackDescription).
		Build()
	require.NoError(t, err)
	return tmpl
}

func TestBuildStackTemplate(t *testing.T) {
	tmpl := buildStack(t)

	assert.Equal(t, "2010-09-09", tmpl.AWSTemplateFormatVersion)
	assert.Equal(t, stack.StackDescription, tmpl.Description)
	assert.NotEmpty(t, tmpl.Resources)

	vpc, ok := tmpl.Resources["EcommerceVpc"]
	require.True(t, ok)
	assert.Equal(t, "AWS::EC2::VPC", vpc.Type)
	assert.Equal(t, "10.0.0.0/16", vpc.Properties["CidrBlock"])

	db, ok := tmpl.Resources["EcommerceDatabase"]
	require.True(t, ok)
	assert.Equal(t, "AWS::RDS::DBInstance", db.Type)
	assert.Equal(t, "Delete", db.DeletionPolicy)
	assert.Equal(t, false, db.Properties["PubliclyAccessible"])
	assert.Equal(t, false, db.Properties["MultiAZ"])
}

func TestBuildResolvesDirectReferences(t *testing.T) {
	tmpl := buildStack(t)

	subnet := tmpl.Resources["PublicSubnetA"]
	assert.Equal(t, map[string]any{"Ref": "EcommerceVpc"}, subnet.Properties["VpcId"])

	dbsg := tmpl.Resources["DatabaseSecurityGroup"]
	ingress := dbsg.Properties["SecurityGroupIngress"].([]any)
	rule := ingress[0].(map[string]any)
	assert.Equal(t, map[string]any{"Ref": "BackendServiceSecurityGroup"}, rule["SourceSecurityGroupId"])
}

func TestBuildExplicitDependsOn(t *testing.T) {
	tmpl := buildStack(t)

	assert.Contains(t, tmpl.Resources["FrontendService"].DependsOn, "HttpListener")
	assert.Contains(t, tmpl.Resources["BackendService"].DependsOn, "BackendPathRule")
	assert.Contains(t, tmpl.Resources["PublicDefaultRoute"].DependsOn, "GatewayAttachment")
}

func TestBuildParametersAndOutputs(t *testing.T) {
	tmpl := buildStack(t)

	require.Contains(t, tmpl.Parameters, "FrontendImage")
	require.Contains(t, tmpl.Parameters, "BackendImage")

	out, ok := tmpl.Outputs["LoadBalancerUrl"]
	require.True(t, ok)
	assert.Equal(t, map[string]any{"Fn::Sub": "http://${PublicLoadBalancer.DNSName}"}, out.Value)

	out, ok = tmpl.Outputs["DatabaseSecretArn"]
	require.True(t, ok)
	assert.Equal(t, map[string]any{"Ref": "DatabaseCredentials"}, out.Value)
}

// Building twice must produce byte-identical JSON, or redeploys would see
// phantom changes.
func TestBuildIsIdempotent(t *testing.T) {
	first, err := ToJSON(buildStack(t))
	require.NoError(t, err)
	second, err := ToJSON(buildStack(t))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestOrderPutsDependenciesFirst(t *testing.T) {
	order, err := NewBuilder(stack.Registry()).Order()
	require.NoError(t, err)

	pos := make(map[string]int, len(order))
	for i, name := range order {
		pos[name] = i
	}

	before := func(a, b string) {
		t.Helper()
		assert.Less(t, pos[a], pos[b], "%s must precede %s", a, b)
	}
	before("EcommerceVpc", "PublicSubnetA")
	before("EcommerceVpc", "LoadBalancerSecurityGroup")
	before("GatewayAttachment", "PublicDefaultRoute")
	before("DatabaseSubnetGroup", "EcommerceDatabase")
	before("HttpListener", "BackendPathRule")
	before("BackendPathRule", "BackendService")
	before("DatabaseCredentials", "EcommerceDatabase")
}

func TestBuildRejectsCycle(t *testing.T) {
	r := ecomstack.NewRegistry()
	r.MustRegister("First", ec2.RouteTable{VpcId: "a"},
		ecomstack.DependsOn("Second"))
	r.MustRegister("Second", ec2.RouteTable{VpcId: "b"},
		ecomstack.DependsOn("First"))

	_, err := NewBuilder(r).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular dependency")
}

func TestBuildRejectsUnknownExplicitDependency(t *testing.T) {
	r := ecomstack.NewRegistry()
	r.MustRegister("Only", ec2.RouteTable{VpcId: "a"},
		ecomstack.DependsOn("Ghost"))

	_, err := NewBuilder(r).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ghost")
}

func TestToYAMLFlattensIntrinsics(t *testing.T) {
	data, err := ToYAML(buildStack(t))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))

	resources := doc["Resources"].(map[string]any)
	subnet := resources["PublicSubnetA"].(map[string]any)
	props := subnet["Properties"].(map[string]any)
	assert.Equal(t, map[string]any{"Ref": "EcommerceVpc"}, props["VpcId"])

	// No Go type names may leak into the document.
	assert.NotContains(t, string(data), "intrinsics.")
	assert.NotContains(t, string(data), "ecomstack.")
}
