// Load balancer tier: an internet-facing ALB on port 80. Requests whose
// path matches /api* go to the backend target group; everything else falls
// through to the frontend default action.
package stack

import (
	. "ecomstack/intrinsics"
	"ecomstack/resources/elasticloadbalancingv2"
)

// ----------------------------------------------------------------------------
// Load balancer
// ----------------------------------------------------------------------------

// PublicLoadBalancer is the single entry point for all HTTP traffic.
var PublicLoadBalancer = elasticloadbalancingv2.LoadBalancer{
	Scheme:         "internet-facing",
	Type:           "application",
	IpAddressType:  "ipv4",
	Subnets:        []any{PublicSubnetA, PublicSubnetB},
	SecurityGroups: []any{LoadBalancerSecurityGroup},
	Tags: []any{
		Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-alb"}},
	},
}

// ----------------------------------------------------------------------------
// Target groups
// ----------------------------------------------------------------------------

// FrontendTargetGroup receives everything the backend rule does not claim.
var FrontendTargetGroup = elasticloadbalancingv2.TargetGroup{
	Port:                       FrontendPort,
	Protocol:                   "HTTP",
	TargetType:                 "ip",
	VpcId:                      EcommerceVpc,
	HealthCheckPath:            "/",
	HealthCheckIntervalSeconds: 30,
	Matcher:                    elasticloadbalancingv2.TargetGroup_Matcher{HttpCode: "200-399"},
}

// BackendTargetGroup receives /api traffic.
var BackendTargetGroup = elasticloadbalancingv2.TargetGroup{
	Port:                       BackendPort,
	Protocol:                   "HTTP",
	TargetType:                 "ip",
	VpcId:                      EcommerceVpc,
	HealthCheckPath:            "/",
	HealthCheckIntervalSeconds: 30,
	Matcher:                    elasticloadbalancingv2.TargetGroup_Matcher{HttpCode: "200-399"},
}

// ----------------------------------------------------------------------------
// Listener and rules
// ----------------------------------------------------------------------------

// HttpListener terminates HTTP on port 80. Its default action forwards to
// the frontend, so any path the rules do not match renders the storefront.
var HttpListener = elasticloadbalancingv2.Listener{
	LoadBalancerArn: PublicLoadBalancer,
	Port:            80,
	Protocol:        "HTTP",
	DefaultActions: []any{
		elasticloadbalancingv2.Listener_Action{
			Type:           "forward",
			TargetGroupArn: FrontendTargetGroup,
		},
	},
}

// BackendPathRule routes API calls to the backend. Both patterns are
// needed: "/api*" matches /api and /apiXyz, "/api/*" makes the subtree
// intent explicit. Evaluated before the default action.
var BackendPathRule = elasticloadbalancingv2.ListenerRule{
	ListenerArn: HttpListener,
	Priority:    10,
	Conditions: []any{
		elasticloadbalancingv2.ListenerRule_RuleCondition{
			Field: "path-pattern",
			PathPatternConfig: elasticloadbalancingv2.ListenerRule_PathPatternConfig{
				Values: []any{"/api*", "/api/*"},
			},
		},
	},
	Actions: []any{
		elasticloadbalancingv2.Listener_Action{
			Type:           "forward",
			TargetGroupArn: BackendTargetGroup,
		},
	},
}
