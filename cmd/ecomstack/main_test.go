package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTemplate(t *testing.T) {
	tmpl, err := buildTemplate()
	require.NoError(t, err)
	assert.NotEmpty(t, tmpl.Resources)
	assert.Contains(t, tmpl.Resources, "PublicLoadBalancer")
}

func TestRunBuildWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	require.NoError(t, runBuild("json", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "2010-09-09", doc["AWSTemplateFormatVersion"])
	assert.Contains(t, doc, "Resources")
}

func TestRunBuildYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.yaml")
	require.NoError(t, runBuild("yaml", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AWSTemplateFormatVersion")
	assert.Contains(t, string(data), "EcommerceVpc")
}

func TestRunBuildRejectsUnknownFormat(t *testing.T) {
	err := runBuild("toml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toml")
}

func TestRunValidatePasses(t *testing.T) {
	assert.NoError(t, runValidate("text"))
}

func TestGetVersionDefault(t *testing.T) {
	assert.NotEmpty(t, getVersion())
}
