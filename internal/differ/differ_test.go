package differ

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomstack"
	"ecomstack/internal/template"
	"ecomstack/stack"
)

func minimalTemplate() *ecomstack.Template {
	return &ecomstack.Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Resources: map[string]ecomstack.ResourceDef{
			"AppVpc": {
				Type:       "AWS::EC2::VPC",
				Properties: map[string]any{"CidrBlock": "10.0.0.0/16"},
			},
		},
	}
}

func TestCompareIdenticalTemplates(t *testing.T) {
	result, err := Compare(minimalTemplate(), minimalTemplate())
	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.Zero(t, result.Summary.Total)
}

func TestCompareAddedAndRemoved(t *testing.T) {
	before := minimalTemplate()
	after := minimalTemplate()
	after.Resources["AppIgw"] = ecomstack.ResourceDef{Type: "AWS::EC2::InternetGateway"}
	delete(after.Resources, "AppVpc")

	result, err := Compare(before, after)
	require.NoError(t, err)

	require.Len(t, result.Diff.Added, 1)
	assert.Equal(t, "AppIgw", result.Diff.Added[0].Resource)
	require.Len(t, result.Diff.Removed, 1)
	assert.Equal(t, "AppVpc", result.Diff.Removed[0].Resource)
	assert.Equal(t, 2, result.Summary.Total)
}

func TestCompareModifiedProperty(t *testing.T) {
	before := minimalTemplate()
	after := minimalTemplate()
	after.Resources["AppVpc"] = ecomstack.ResourceDef{
		Type:       "AWS::EC2::VPC",
		Properties: map[string]any{"CidrBlock": "10.1.0.0/16"},
	}

	result, err := Compare(before, after)
	require.NoError(t, err)

	require.Len(t, result.Diff.Modified, 1)
	assert.Equal(t, "AppVpc", result.Diff.Modified[0].Resource)
	assert.Contains(t, result.Diff.Modified[0].Changes, "CidrBlock modified")
}

func TestCompareNestedPropertyPath(t *testing.T) {
	before := minimalTemplate()
	before.Resources["Db"] = ecomstack.ResourceDef{
		Type: "AWS::RDS::DBInstance",
		Properties: map[string]any{
			"Endpoint": map[string]any{"Port": "3306"},
		},
	}
	after := minimalTemplate()
	after.Resources["Db"] = ecomstack.ResourceDef{
		Type: "AWS::RDS::DBInstance",
		Properties: map[string]any{
			"Endpoint": map[string]any{"Port": "3307"},
		},
	}

	result, err := Compare(before, after)
	require.NoError(t, err)
	require.Len(t, result.Diff.Modified, 1)
	assert.Contains(t, result.Diff.Modified[0].Changes, "Endpoint.Port modified")
}

func TestCompareOutputs(t *testing.T) {
	before := minimalTemplate()
	before.Outputs = map[string]ecomstack.Output{
		"Url": {Value: "http://a"},
	}
	after := minimalTemplate()
	after.Outputs = map[string]ecomstack.Output{
		"Url":      {Value: "http://b"},
		"Endpoint": {Value: "db:3306"},
	}

	result, err := Compare(before, after)
	require.NoError(t, err)

	byName := map[string][]string{}
	for _, e := range result.Diff.Modified {
		byName[e.Resource] = e.Changes
	}
	assert.Contains(t, byName["Url"], "modified")
	assert.Contains(t, byName["Endpoint"], "added")
}

// A built template written to disk and re-read must diff clean against a
// fresh build. This is the redeploy-without-changes path.
func TestCompareBuiltTemplateRoundTrip(t *testing.T) {
	tmpl, err := template.NewBuilder(stack.Registry()).
		WithDescription(stack.StackDescription).
		Build()
	require.NoError(t, err)

	data, err := template.ToJSON(tmpl)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "stack.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadTemplate(path)
	require.NoError(t, err)

	result, err := Compare(loaded, tmpl)
	require.NoError(t, err)
	assert.True(t, result.Empty(), "round-tripped template must not drift: %+v", result.Diff)
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()

	writeTemplate := func(name string, tmpl *ecomstack.Template) string {
		data, err := template.ToJSON(tmpl)
		require.NoError(t, err)
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o644))
		return path
	}

	before := minimalTemplate()
	after := minimalTemplate()
	after.Resources["AppIgw"] = ecomstack.ResourceDef{Type: "AWS::EC2::InternetGateway"}

	result, err := CompareFiles(writeTemplate("a.json", before), writeTemplate("b.json", after))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.Added)
}
