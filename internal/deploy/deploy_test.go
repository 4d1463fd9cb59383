package deploy

import (
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParameters(t *testing.T) {
	params, err := ParseParameters([]string{
		"FrontendImage=123456789012.dkr.ecr.us-east-1.amazonaws.com/frontend:v1",
		"BackendImage=repo/backend:v1",
	})
	require.NoError(t, err)
	assert.Equal(t, "repo/backend:v1", params["BackendImage"])
	assert.Len(t, params, 2)
}

func TestParseParametersMalformed(t *testing.T) {
	for _, bad := range []string{"NoEquals", "=value"} {
		_, err := ParseParameters([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestParseParametersValueMayContainEquals(t *testing.T) {
	params, err := ParseParameters([]string{"Key=a=b"})
	require.NoError(t, err)
	assert.Equal(t, "a=b", params["Key"])
}

func TestToParametersSorted(t *testing.T) {
	out := toParameters(map[string]string{"B": "2", "A": "1"})
	require.Len(t, out, 2)
	assert.Equal(t, "A", awssdk.ToString(out[0].ParameterKey))
	assert.Equal(t, "B", awssdk.ToString(out[1].ParameterKey))
}

func TestSecretUsername(t *testing.T) {
	user, err := SecretUsername(`{"username": "appuser", "password": "generated"}`)
	require.NoError(t, err)
	assert.Equal(t, "appuser", user)
}

func TestSecretUsernameMissing(t *testing.T) {
	_, err := SecretUsername(`{"password": "generated"}`)
	assert.Error(t, err)

	_, err = SecretUsername(`not json`)
	assert.Error(t, err)
}

func TestSplitEndpoint(t *testing.T) {
	host, port, err := SplitEndpoint("db.cluster.us-east-1.rds.amazonaws.com:3306")
	require.NoError(t, err)
	assert.Equal(t, "db.cluster.us-east-1.rds.amazonaws.com", host)
	assert.Equal(t, "3306", port)
}

func TestSplitEndpointMalformed(t *testing.T) {
	for _, bad := range []string{"", "hostonly", ":3306", "host:"} {
		_, _, err := SplitEndpoint(bad)
		assert.Error(t, err, bad)
	}
}

func event(resource, status, reason string) cfntypes.StackEvent {
	return cfntypes.StackEvent{
		LogicalResourceId:    awssdk.String(resource),
		ResourceStatus:       cfntypes.ResourceStatus(status),
		ResourceStatusReason: awssdk.String(reason),
	}
}

func TestFilterFailedEvents(t *testing.T) {
	events := []cfntypes.StackEvent{
		event("BackendService", "CREATE_FAILED", "tasks failed to stabilize"),
		event("BackendService", "CREATE_FAILED", "older duplicate"),
		event("FrontendService", "CREATE_COMPLETE", ""),
		event("EcommerceDatabase", "CREATE_FAILED", "invalid engine version"),
	}

	failed := FilterFailedEvents(events, 5)
	require.Len(t, failed, 2)
	// Newest event per resource wins.
	assert.Equal(t, "tasks failed to stabilize", awssdk.ToString(failed[0].ResourceStatusReason))
	assert.Equal(t, "EcommerceDatabase", awssdk.ToString(failed[1].LogicalResourceId))
}

func TestFilterFailedEventsCap(t *testing.T) {
	var events []cfntypes.StackEvent
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		events = append(events, event(name, "CREATE_FAILED", "boom"))
	}
	assert.Len(t, FilterFailedEvents(events, 5), 5)
}

func TestFormatFailedEvents(t *testing.T) {
	out := FormatFailedEvents([]cfntypes.StackEvent{
		event("EcommerceDatabase", "CREATE_FAILED", "invalid engine version"),
	})
	assert.Contains(t, out, "EcommerceDatabase")
	assert.Contains(t, out, "CREATE_FAILED")
	assert.Contains(t, out, "invalid engine version")
}

func TestIsEmptyChangeSet(t *testing.T) {
	assert.True(t, IsEmptyChangeSet(&cloudformation.DescribeChangeSetOutput{
		Status:       cfntypes.ChangeSetStatusFailed,
		StatusReason: awssdk.String("The submitted information didn't contain changes."),
	}))
	assert.True(t, IsEmptyChangeSet(&cloudformation.DescribeChangeSetOutput{
		Status:       cfntypes.ChangeSetStatusFailed,
		StatusReason: awssdk.String("No updates are to be performed."),
	}))
	assert.False(t, IsEmptyChangeSet(&cloudformation.DescribeChangeSetOutput{
		Status:       cfntypes.ChangeSetStatusFailed,
		StatusReason: awssdk.String("Parameter validation failed"),
	}))
	assert.False(t, IsEmptyChangeSet(&cloudformation.DescribeChangeSetOutput{
		Status: cfntypes.ChangeSetStatusCreateComplete,
	}))
	assert.False(t, IsEmptyChangeSet(nil))
}
