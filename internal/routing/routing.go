// Package routing models the load balancer's listener rules so the path a
// request would take can be answered offline, straight from the template.
//
// Matching follows ALB path-pattern semantics: rules are evaluated in
// priority order, '*' matches zero or more characters, '?' matches exactly
// one, and a request no rule claims falls through to the listener's default
// action.
package routing

import (
	"fmt"
	"sort"

	"ecomstack"
)

// Rule is one listener rule: a priority, its path patterns and the target
// group its forward action points at.
type Rule struct {
	Priority    int      `json:"priority"`
	Patterns    []string `json:"patterns"`
	TargetGroup string   `json:"targetGroup"`
}

// Table is a listener's complete routing behavior.
type Table struct {
	// Rules in ascending priority order.
	Rules []Rule `json:"rules"`
	// DefaultTarget receives everything the rules do not match.
	DefaultTarget string `json:"defaultTarget"`
}

// FromTemplate extracts the routing table of the first HTTP listener found
// in the template.
func FromTemplate(tmpl *ecomstack.Template) (*Table, error) {
	var listenerName string
	for name, def := range tmpl.Resources {
		if def.Type == "AWS::ElasticLoadBalancingV2::Listener" {
			if listenerName == "" || name < listenerName {
				listenerName = name
			}
		}
	}
	if listenerName == "" {
		return nil, fmt.Errorf("no listener in template")
	}
	listener := tmpl.Resources[listenerName]

	table := &Table{}

	defaults, _ := listener.Properties["DefaultActions"].([]any)
	if len(defaults) == 0 {
		return nil, fmt.Errorf("listener %s has no default actions", listenerName)
	}
	target, err := forwardTarget(defaults)
	if err != nil {
		return nil, fmt.Errorf("listener %s: %w", listenerName, err)
	}
	table.DefaultTarget = target

	for name, def := range tmpl.Resources {
		if def.Type != "AWS::ElasticLoadBalancingV2::ListenerRule" {
			continue
		}
		if refName(def.Properties["ListenerArn"]) != listenerName {
			continue
		}

		rule, err := parseRule(def)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", name, err)
		}
		table.Rules = append(table.Rules, rule)
	}

	sort.Slice(table.Rules, func(i, j int) bool {
		return table.Rules[i].Priority < table.Rules[j].Priority
	})

	return table, nil
}

// Match returns the logical name of the target group that would receive a
// request for path.
func (t *Table) Match(path string) string {
	for _, rule := range t.Rules {
		for _, pattern := range rule.Patterns {
			if MatchPattern(pattern, path) {
				return rule.TargetGroup
			}
		}
	}
	return t.DefaultTarget
}

// MatchPattern reports whether an ALB path pattern matches a path. The
// whole path must match: '*' consumes zero or more characters, '?' exactly
// one.
func MatchPattern(pattern, path string) bool {
	return matchFrom(pattern, path)
}

func matchFrom(pattern, path string) bool {
	if pattern == "" {
		return path == ""
	}

	switch pattern[0] {
	case '*':
		// Greedy or empty: try every split point.
		for i := 0; i <= len(path); i++ {
			if matchFrom(pattern[1:], path[i:]) {
				return true
			}
		}
		return false
	case '?':
		return path != "" && matchFrom(pattern[1:], path[1:])
	default:
		return path != "" && path[0] == pattern[0] && matchFrom(pattern[1:], path[1:])
	}
}

func parseRule(def ecomstack.ResourceDef) (Rule, error) {
	rule := Rule{}

	switch p := def.Properties["Priority"].(type) {
	case float64:
		rule.Priority = int(p)
	case int:
		rule.Priority = p
	case int64:
		rule.Priority = int(p)
	default:
		return rule, fmt.Errorf("missing or non-numeric Priority")
	}

	conditions, _ := def.Properties["Conditions"].([]any)
	for _, c := range conditions {
		cond, ok := c.(map[string]any)
		if !ok || cond["Field"] != "path-pattern" {
			continue
		}
		config, _ := cond["PathPatternConfig"].(map[string]any)
		values, _ := config["Values"].([]any)
		for _, v := range values {
			if s, ok := v.(string); ok {
				rule.Patterns = append(rule.Patterns, s)
			}
		}
	}
	if len(rule.Patterns) == 0 {
		return rule, fmt.Errorf("no path-pattern condition")
	}

	actions, _ := def.Properties["Actions"].([]any)
	target, err := forwardTarget(actions)
	if err != nil {
		return rule, err
	}
	rule.TargetGroup = target

	return rule, nil
}

// forwardTarget pulls the target group name out of the first forward
// action.
func forwardTarget(actions []any) (string, error) {
	for _, a := range actions {
		action, ok := a.(map[string]any)
		if !ok || action["Type"] != "forward" {
			continue
		}
		if name := refName(action["TargetGroupArn"]); name != "" {
			return name, nil
		}
	}
	return "", fmt.Errorf("no forward action with a target group reference")
}

// refName unwraps {"Ref": name}; anything else yields "".
func refName(v any) string {
	m, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	name, _ := m["Ref"].(string)
	return name
}
