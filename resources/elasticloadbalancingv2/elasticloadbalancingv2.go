// Package elasticloadbalancingv2 provides the ALB resource types the
// stack uses.
package elasticloadbalancingv2

// LoadBalancer is AWS::ElasticLoadBalancingV2::LoadBalancer.
type LoadBalancer struct {
	Name           any    `json:"Name,omitempty"`
	Scheme         string `json:"Scheme,omitempty"`
	Type           string `json:"Type,omitempty"`
	Subnets        []any  `json:"Subnets,omitempty"`
	SecurityGroups []any  `json:"SecurityGroups,omitempty"`
	IpAddressType  string `json:"IpAddressType,omitempty"`
	Tags           []any  `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (LoadBalancer) ResourceType() string {
	return "AWS::ElasticLoadBalancingV2::LoadBalancer"
}

// TargetGroup is AWS::ElasticLoadBalancingV2::TargetGroup.
type TargetGroup struct {
	Name                       any    `json:"Name,omitempty"`
	Port                       int    `json:"Port,omitempty"`
	Protocol                   string `json:"Protocol,omitempty"`
	VpcId                      any    `json:"VpcId,omitempty"`
	TargetType                 string `json:"TargetType,omitempty"`
	HealthCheckPath            string `json:"HealthCheckPath,omitempty"`
	HealthCheckIntervalSeconds int    `json:"HealthCheckIntervalSeconds,omitempty"`
	Matcher                    any    `json:"Matcher,omitempty"`
	Tags                       []any  `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (TargetGroup) ResourceType() string {
	return "AWS::ElasticLoadBalancingV2::TargetGroup"
}

// TargetGroup_Matcher is the HTTP code range a healthy target returns.
type TargetGroup_Matcher struct {
	HttpCode string `json:"HttpCode,omitempty"`
}

// Listener is AWS::ElasticLoadBalancingV2::Listener.
type Listener struct {
	LoadBalancerArn any    `json:"LoadBalancerArn,omitempty"`
	Port            int    `json:"Port,omitempty"`
	Protocol        string `json:"Protocol,omitempty"`
	DefaultActions  []any  `json:"DefaultActions,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (Listener) ResourceType() string {
	return "AWS::ElasticLoadBalancingV2::Listener"
}

// Listener_Action forwards matched requests to a target group.
type Listener_Action struct {
	Type           string `json:"Type,omitempty"`
	TargetGroupArn any    `json:"TargetGroupArn,omitempty"`
}

// ListenerRule is AWS::ElasticLoadBalancingV2::ListenerRule.
type ListenerRule struct {
	ListenerArn any   `json:"ListenerArn,omitempty"`
	Priority    int   `json:"Priority,omitempty"`
	Conditions  []any `json:"Conditions,omitempty"`
	Actions     []any `json:"Actions,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (ListenerRule) ResourceType() string {
	return "AWS::ElasticLoadBalancingV2::ListenerRule"
}

// ListenerRule_RuleCondition matches requests by field.
type ListenerRule_RuleCondition struct {
	Field             string `json:"Field,omitempty"`
	PathPatternConfig any    `json:"PathPatternConfig,omitempty"`
}

// ListenerRule_PathPatternConfig holds path patterns. ALB patterns use *
// (zero or more characters) and ? (exactly one character).
type ListenerRule_PathPatternConfig struct {
	Values []any `json:"Values,omitempty"`
}
