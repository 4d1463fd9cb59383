// Package deploy drives the synthesized template through CloudFormation
// change sets and reads back stack state.
package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// ErrNoChanges reports that the change set was empty: the deployed stack
// already matches the template. Callers treat this as success.
var ErrNoChanges = errors.New("no changes to deploy")

// DefaultStackName is used when the caller does not override it.
const DefaultStackName = "ecommerce-platform"

// cfnAPI is the CloudFormation surface the deployer needs.
type cfnAPI interface {
	CreateChangeSet(ctx context.Context, in *cloudformation.CreateChangeSetInput, opts ...func(*cloudformation.Options)) (*cloudformation.CreateChangeSetOutput, error)
	DescribeChangeSet(ctx context.Context, in *cloudformation.DescribeChangeSetInput, opts ...func(*cloudformation.Options)) (*cloudformation.DescribeChangeSetOutput, error)
	ExecuteChangeSet(ctx context.Context, in *cloudformation.ExecuteChangeSetInput, opts ...func(*cloudformation.Options)) (*cloudformation.ExecuteChangeSetOutput, error)
	DeleteChangeSet(ctx context.Context, in *cloudformation.DeleteChangeSetInput, opts ...func(*cloudformation.Options)) (*cloudformation.DeleteChangeSetOutput, error)
	DescribeStacks(ctx context.Context, in *cloudformation.DescribeStacksInput, opts ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	DescribeStackEvents(ctx context.Context, in *cloudformation.DescribeStackEventsInput, opts ...func(*cloudformation.Options)) (*cloudformation.DescribeStackEventsOutput, error)
}

// secretsAPI is the Secrets Manager surface the deployer needs.
type secretsAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, opts ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Client deploys templates and inspects the resulting stack.
type Client struct {
	cfn     cfnAPI
	secrets secretsAPI

	// WaitTimeout bounds change set and stack waiters.
	WaitTimeout time.Duration
}

// New builds a client from the ambient AWS configuration (environment,
// shared config, instance role).
func New(ctx context.Context) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &Client{
		cfn:         cloudformation.NewFromConfig(cfg),
		secrets:     secretsmanager.NewFromConfig(cfg),
		WaitTimeout: 45 * time.Minute,
	}, nil
}

// Options configures a deployment.
type Options struct {
	StackName    string
	TemplateBody string
	// Parameters are template parameter values keyed by name.
	Parameters map[string]string
	// NoExecute creates the change set but leaves execution to the
	// operator.
	NoExecute bool
}

// Deploy creates a change set against the stack and executes it, waiting
// for the stack to stabilize. Deploying an unchanged template returns
// ErrNoChanges after cleaning up the empty change set.
func (c *Client) Deploy(ctx context.Context, opts Options) error {
	if opts.StackName == "" {
		opts.StackName = DefaultStackName
	}

	changeSetType := cfntypes.ChangeSetTypeCreate
	if exists, err := c.stackExists(ctx, opts.StackName); err != nil {
		return err
	} else if exists {
		changeSetType = cfntypes.ChangeSetTypeUpdate
	}

	changeSetName := fmt.Sprintf("%s-%d", opts.StackName, time.Now().Unix())

	_, err := c.cfn.CreateChangeSet(ctx, &cloudformation.CreateChangeSetInput{
		StackName:     awssdk.String(opts.StackName),
		ChangeSetName: awssdk.String(changeSetName),
		ChangeSetType: changeSetType,
		TemplateBody:  awssdk.String(opts.TemplateBody),
		Parameters:    toParameters(opts.Parameters),
		Capabilities:  []cfntypes.Capability{cfntypes.CapabilityCapabilityNamedIam},
	})
	if err != nil {
		return fmt.Errorf("creating change set: %w", err)
	}

	describeIn := &cloudformation.DescribeChangeSetInput{
		StackName:     awssdk.String(opts.StackName),
		ChangeSetName: awssdk.String(changeSetName),
	}

	cfnClient, ok := c.cfn.(*cloudformation.Client)
	if ok {
		waiter := cloudformation.NewChangeSetCreateCompleteWaiter(cfnClient)
		if err := waiter.Wait(ctx, describeIn, c.WaitTimeout); err != nil {
			desc, descErr := c.cfn.DescribeChangeSet(ctx, describeIn)
			if descErr == nil && IsEmptyChangeSet(desc) {
				_, _ = c.cfn.DeleteChangeSet(ctx, &cloudformation.DeleteChangeSetInput{
					StackName:     awssdk.String(opts.StackName),
					ChangeSetName: awssdk.String(changeSetName),
				})
				return ErrNoChanges
			}
			return fmt.Errorf("waiting for change set: %w", err)
		}
	}

	if opts.NoExecute {
		return nil
	}

	_, err = c.cfn.ExecuteChangeSet(ctx, &cloudformation.ExecuteChangeSetInput{
		StackName:     awssdk.String(opts.StackName),
		ChangeSetName: awssdk.String(changeSetName),
	})
	if err != nil {
		return fmt.Errorf("executing change set: %w", err)
	}

	if err := c.waitForStack(ctx, opts.StackName, changeSetType); err != nil {
		events, eventsErr := c.FailedEvents(ctx, opts.StackName)
		if eventsErr == nil && len(events) > 0 {
			return fmt.Errorf("%w\n%s", err, FormatFailedEvents(events))
		}
		return err
	}

	return nil
}

func (c *Client) waitForStack(ctx context.Context, stackName string, changeSetType cfntypes.ChangeSetType) error {
	cfnClient, ok := c.cfn.(*cloudformation.Client)
	if !ok {
		return nil
	}

	in := &cloudformation.DescribeStacksInput{StackName: awssdk.String(stackName)}
	if changeSetType == cfntypes.ChangeSetTypeCreate {
		waiter := cloudformation.NewStackCreateCompleteWaiter(cfnClient)
		if err := waiter.Wait(ctx, in, c.WaitTimeout); err != nil {
			return fmt.Errorf("stack creation did not complete: %w", err)
		}
		return nil
	}
	waiter := cloudformation.NewStackUpdateCompleteWaiter(cfnClient)
	if err := waiter.Wait(ctx, in, c.WaitTimeout); err != nil {
		return fmt.Errorf("stack update did not complete: %w", err)
	}
	return nil
}

func (c *Client) stackExists(ctx context.Context, stackName string) (bool, error) {
	out, err := c.cfn.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: awssdk.String(stackName),
	})
	if err != nil {
		if strings.Contains(err.Error(), "does not exist") {
			return false, nil
		}
		return false, fmt.Errorf("describing stack %s: %w", stackName, err)
	}
	if len(out.Stacks) == 0 {
		return false, nil
	}
	// A stack stuck in REVIEW_IN_PROGRESS has never been executed and
	// still takes a CREATE change set.
	return out.Stacks[0].StackStatus != cfntypes.StackStatusReviewInProgress, nil
}

// IsEmptyChangeSet reports whether a failed change set failed only because
// there was nothing to change.
func IsEmptyChangeSet(desc *cloudformation.DescribeChangeSetOutput) bool {
	if desc == nil || desc.Status != cfntypes.ChangeSetStatusFailed {
		return false
	}
	reason := awssdk.ToString(desc.StatusReason)
	return strings.Contains(reason, "didn't contain changes") ||
		strings.Contains(reason, "No updates are to be performed")
}

// StackStatus is the observable state of a deployed stack.
type StackStatus struct {
	StackName string            `json:"stackName"`
	Status    string            `json:"status"`
	Outputs   map[string]string `json:"outputs,omitempty"`
}

// Status describes the stack and collects its outputs.
func (c *Client) Status(ctx context.Context, stackName string) (*StackStatus, error) {
	if stackName == "" {
		stackName = DefaultStackName
	}

	out, err := c.cfn.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: awssdk.String(stackName),
	})
	if err != nil {
		return nil, fmt.Errorf("describing stack %s: %w", stackName, err)
	}
	if len(out.Stacks) == 0 {
		return nil, fmt.Errorf("stack %s not found", stackName)
	}

	stack := out.Stacks[0]
	status := &StackStatus{
		StackName: stackName,
		Status:    string(stack.StackStatus),
		Outputs:   make(map[string]string, len(stack.Outputs)),
	}
	for _, o := range stack.Outputs {
		status.Outputs[awssdk.ToString(o.OutputKey)] = awssdk.ToString(o.OutputValue)
	}
	return status, nil
}

// ConnectionInfo is what an operator needs to point a MySQL client at the
// database. The password stays in Secrets Manager; only its location is
// reported.
type ConnectionInfo struct {
	Host      string `json:"host"`
	Port      string `json:"port"`
	Database  string `json:"database"`
	User      string `json:"user"`
	SecretArn string `json:"secretArn"`
}

// DatabaseInfo resolves the database endpoint and username from the stack
// outputs and the credentials secret.
func (c *Client) DatabaseInfo(ctx context.Context, stackName string) (*ConnectionInfo, error) {
	status, err := c.Status(ctx, stackName)
	if err != nil {
		return nil, err
	}

	secretArn := status.Outputs["DatabaseSecretArn"]
	if secretArn == "" {
		return nil, fmt.Errorf("stack %s has no DatabaseSecretArn output", status.StackName)
	}

	secret, err := c.secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: awssdk.String(secretArn),
	})
	if err != nil {
		return nil, fmt.Errorf("reading credentials secret: %w", err)
	}

	user, err := SecretUsername(awssdk.ToString(secret.SecretString))
	if err != nil {
		return nil, err
	}

	host, port, err := SplitEndpoint(status.Outputs["DatabaseEndpoint"])
	if err != nil {
		return nil, err
	}

	return &ConnectionInfo{
		Host:      host,
		Port:      port,
		Database:  "ecommerce",
		User:      user,
		SecretArn: secretArn,
	}, nil
}

// SecretUsername extracts the username field from a credentials secret
// payload without retaining anything else.
func SecretUsername(payload string) (string, error) {
	var doc struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return "", fmt.Errorf("parsing credentials secret: %w", err)
	}
	if doc.Username == "" {
		return "", errors.New("credentials secret has no username field")
	}
	return doc.Username, nil
}

// SplitEndpoint splits a "host:port" endpoint output.
func SplitEndpoint(endpoint string) (host, port string, err error) {
	idx := strings.LastIndex(endpoint, ":")
	if idx <= 0 || idx == len(endpoint)-1 {
		return "", "", fmt.Errorf("malformed database endpoint %q", endpoint)
	}
	return endpoint[:idx], endpoint[idx+1:], nil
}

// FailedEvents returns the most recent *_FAILED event per resource, newest
// first, capped at five. That is usually enough to see the root cause
// without paging through rollbacks.
func (c *Client) FailedEvents(ctx context.Context, stackName string) ([]cfntypes.StackEvent, error) {
	out, err := c.cfn.DescribeStackEvents(ctx, &cloudformation.DescribeStackEventsInput{
		StackName: awssdk.String(stackName),
	})
	if err != nil {
		return nil, fmt.Errorf("describing stack events: %w", err)
	}
	return FilterFailedEvents(out.StackEvents, 5), nil
}

// FilterFailedEvents keeps the first *_FAILED event seen per logical
// resource, up to max entries. Events are expected newest-first, as
// DescribeStackEvents returns them.
func FilterFailedEvents(events []cfntypes.StackEvent, max int) []cfntypes.StackEvent {
	seen := make(map[string]bool)
	var failed []cfntypes.StackEvent

	for _, event := range events {
		resource := awssdk.ToString(event.LogicalResourceId)
		if seen[resource] {
			continue
		}
		if strings.HasSuffix(string(event.ResourceStatus), "_FAILED") {
			failed = append(failed, event)
			seen[resource] = true
			if len(failed) >= max {
				break
			}
		}
	}
	return failed
}

// FormatFailedEvents renders failed events for an error message.
func FormatFailedEvents(events []cfntypes.StackEvent) string {
	var sb strings.Builder
	for _, event := range events {
		fmt.Fprintf(&sb, "  %s (%s): %s\n",
			awssdk.ToString(event.LogicalResourceId),
			event.ResourceStatus,
			awssdk.ToString(event.ResourceStatusReason))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// ParseParameters parses Key=Value pairs from the command line.
func ParseParameters(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("malformed parameter %q, want Key=Value", pair)
		}
		params[key] = value
	}
	return params, nil
}

// toParameters converts the parameter map to SDK form in sorted key order.
func toParameters(params map[string]string) []cfntypes.Parameter {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]cfntypes.Parameter, 0, len(keys))
	for _, k := range keys {
		out = append(out, cfntypes.Parameter{
			ParameterKey:   awssdk.String(k),
			ParameterValue: awssdk.String(params[k]),
		})
	}
	return out
}
