package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomstack"
	"ecomstack/internal/template"
	"ecomstack/stack"
)

func stackTemplate(t *testing.T) *ecomstack.Template {
	t.Helper()
	tmpl, err := template.NewBuilder(stack.Registry()).Build()
	require.NoError(t, err)
	return tmpl
}

func TestGenerateDOT(t *testing.T) {
	g := &Generator{Format: FormatDOT}
	out, err := g.GenerateString(stackTemplate(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "digraph"))
	assert.Contains(t, out, "EcommerceVpc")
	assert.Contains(t, out, "AWS::EC2::VPC")
	assert.Contains(t, out, "EcommerceDatabase")
}

func TestGenerateMermaid(t *testing.T) {
	g := &Generator{Format: FormatMermaid}
	out, err := g.GenerateString(stackTemplate(t))
	require.NoError(t, err)

	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "PublicLoadBalancer")
}

func TestGenerateEdges(t *testing.T) {
	tmpl := &ecomstack.Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Resources: map[string]ecomstack.ResourceDef{
			"AppVpc": {Type: "AWS::EC2::VPC"},
			"AppSubnet": {
				Type:       "AWS::EC2::Subnet",
				Properties: map[string]any{"VpcId": map[string]any{"Ref": "AppVpc"}},
			},
			"AppService": {
				Type:      "AWS::ECS::Service",
				DependsOn: []string{"AppSubnet"},
			},
		},
	}

	out, err := (&Generator{}).GenerateString(tmpl)
	require.NoError(t, err)

	// Reference edge and explicit DependsOn edge both render.
	assert.Contains(t, out, "->")
	assert.Contains(t, out, "AppSubnet")
	assert.Contains(t, out, "AppService")
}

func TestGenerateClustered(t *testing.T) {
	g := &Generator{ClusterByService: true}
	out, err := g.GenerateString(stackTemplate(t))
	require.NoError(t, err)

	// Subgraph ids are autogenerated; the service name is the label.
	assert.Contains(t, out, "cluster_")
	assert.Contains(t, out, `label="EC2"`)
	assert.Contains(t, out, `label="ECS"`)
	assert.Contains(t, out, `label="RDS"`)
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := &Generator{}
	first, err := g.GenerateString(stackTemplate(t))
	require.NoError(t, err)
	second, err := g.GenerateString(stackTemplate(t))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
