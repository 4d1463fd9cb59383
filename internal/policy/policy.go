// Package policy checks a built template against the deployment's standing
// rules: the database stays private, credentials stay out of plain
// environment variables, and API traffic has a route of its own.
//
// The checks run on the serialized template, not the Go declarations, so
// they hold for anything the build produces.
package policy

import (
	"fmt"
	"sort"
	"strings"

	"ecomstack"
	"ecomstack/internal/routing"
)

// Severity grades an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one violated rule.
type Issue struct {
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
	Resource string   `json:"resource,omitempty"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	if i.Resource == "" {
		return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Rule, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s: %s", i.Severity, i.Rule, i.Resource, i.Message)
}

// Check runs every rule and returns the issues found, sorted by rule then
// resource. An empty result means the template passes.
func Check(tmpl *ecomstack.Template) []Issue {
	var issues []Issue

	issues = append(issues, checkDatabasePrivacy(tmpl)...)
	issues = append(issues, checkDatabaseIngress(tmpl)...)
	issues = append(issues, checkIsolatedSubnets(tmpl)...)
	issues = append(issues, checkEnvironmentSecrets(tmpl)...)
	issues = append(issues, checkApiRouting(tmpl)...)

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Rule != issues[j].Rule {
			return issues[i].Rule < issues[j].Rule
		}
		return issues[i].Resource < issues[j].Resource
	})
	return issues
}

// Errors filters issues down to the ones that should fail a build.
func Errors(issues []Issue) []Issue {
	var out []Issue
	for _, i := range issues {
		if i.Severity == SeverityError {
			out = append(out, i)
		}
	}
	return out
}

func resourcesOfType(tmpl *ecomstack.Template, cfnType string) []string {
	var names []string
	for name, def := range tmpl.Resources {
		if def.Type == cfnType {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// checkDatabasePrivacy requires every DB instance to declare
// PubliclyAccessible false. An absent property is a violation too: the RDS
// default depends on subnet configuration, and the rule wants it pinned.
func checkDatabasePrivacy(tmpl *ecomstack.Template) []Issue {
	var issues []Issue
	for _, name := range resourcesOfType(tmpl, "AWS::RDS::DBInstance") {
		def := tmpl.Resources[name]
		v, present := def.Properties["PubliclyAccessible"]
		if !present {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Rule:     "database-private",
				Resource: name,
				Message:  "PubliclyAccessible is not declared",
			})
			continue
		}
		if v != false {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Rule:     "database-private",
				Resource: name,
				Message:  "database instance is publicly accessible",
			})
		}
	}
	return issues
}

// checkDatabaseIngress requires the security groups attached to database
// instances to admit traffic only from other security groups, never from
// CIDR blocks.
func checkDatabaseIngress(tmpl *ecomstack.Template) []Issue {
	var issues []Issue

	dbGroups := make(map[string]bool)
	for _, name := range resourcesOfType(tmpl, "AWS::RDS::DBInstance") {
		def := tmpl.Resources[name]
		groups, _ := def.Properties["VPCSecurityGroups"].([]any)
		for _, g := range groups {
			if ref := refName(g); ref != "" {
				dbGroups[ref] = true
			}
		}
		if len(groups) == 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Rule:     "database-ingress",
				Resource: name,
				Message:  "database instance has no security group",
			})
		}
	}

	for sgName := range dbGroups {
		def, ok := tmpl.Resources[sgName]
		if !ok {
			continue
		}
		ingress, _ := def.Properties["SecurityGroupIngress"].([]any)
		if len(ingress) == 0 {
			continue
		}
		for _, r := range ingress {
			rule, _ := r.(map[string]any)
			if cidr, has := rule["CidrIp"]; has && cidr != "" {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Rule:     "database-ingress",
					Resource: sgName,
					Message:  fmt.Sprintf("database security group admits CIDR %v", cidr),
				})
			}
			if refName(rule["SourceSecurityGroupId"]) == "" && rule["CidrIp"] == nil {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Rule:     "database-ingress",
					Resource: sgName,
					Message:  "ingress rule has no source security group",
				})
			}
		}
	}

	return issues
}

// checkIsolatedSubnets requires that no subnet holding the database has a
// route to an internet gateway.
func checkIsolatedSubnets(tmpl *ecomstack.Template) []Issue {
	var issues []Issue

	// Subnets the database sits on, via its subnet groups.
	dbSubnets := make(map[string]bool)
	for _, name := range resourcesOfType(tmpl, "AWS::RDS::DBSubnetGroup") {
		def := tmpl.Resources[name]
		subnets, _ := def.Properties["SubnetIds"].([]any)
		for _, s := range subnets {
			if ref := refName(s); ref != "" {
				dbSubnets[ref] = true
			}
		}
	}

	// Route tables those subnets are associated with.
	subnetTables := make(map[string][]string)
	for _, name := range resourcesOfType(tmpl, "AWS::EC2::SubnetRouteTableAssociation") {
		def := tmpl.Resources[name]
		subnet := refName(def.Properties["SubnetId"])
		table := refName(def.Properties["RouteTableId"])
		if subnet != "" && table != "" {
			subnetTables[subnet] = append(subnetTables[subnet], table)
		}
	}

	// Route tables that reach an internet gateway.
	gatewayTables := make(map[string]bool)
	for _, name := range resourcesOfType(tmpl, "AWS::EC2::Route") {
		def := tmpl.Resources[name]
		gw := refName(def.Properties["GatewayId"])
		if gw == "" {
			continue
		}
		if gwDef, ok := tmpl.Resources[gw]; ok && gwDef.Type == "AWS::EC2::InternetGateway" {
			gatewayTables[refName(def.Properties["RouteTableId"])] = true
		}
	}

	for subnet := range dbSubnets {
		for _, table := range subnetTables[subnet] {
			if gatewayTables[table] {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Rule:     "database-isolation",
					Resource: subnet,
					Message:  fmt.Sprintf("database subnet routes to an internet gateway via %s", table),
				})
			}
		}
	}

	return issues
}

// checkEnvironmentSecrets requires container definitions to pass secret
// material through the Secrets list, never through plain Environment
// entries.
func checkEnvironmentSecrets(tmpl *ecomstack.Template) []Issue {
	var issues []Issue

	for _, name := range resourcesOfType(tmpl, "AWS::ECS::TaskDefinition") {
		def := tmpl.Resources[name]
		containers, _ := def.Properties["ContainerDefinitions"].([]any)
		for _, c := range containers {
			container, _ := c.(map[string]any)
			env, _ := container["Environment"].([]any)
			for _, e := range env {
				kv, _ := e.(map[string]any)
				envName, _ := kv["Name"].(string)

				if looksLikeSecretName(envName) {
					issues = append(issues, Issue{
						Severity: SeverityError,
						Rule:     "no-env-secrets",
						Resource: name,
						Message:  fmt.Sprintf("credential-like variable %s in plain environment", envName),
					})
				}
				if containsSecretResolve(kv["Value"]) {
					issues = append(issues, Issue{
						Severity: SeverityError,
						Rule:     "no-env-secrets",
						Resource: name,
						Message:  fmt.Sprintf("environment variable %s resolves a secret inline", envName),
					})
				}
			}
		}
	}

	return issues
}

func looksLikeSecretName(name string) bool {
	upper := strings.ToUpper(name)
	return strings.Contains(upper, "PASSWORD") ||
		strings.Contains(upper, "SECRET_KEY") ||
		strings.HasSuffix(upper, "_TOKEN")
}

func containsSecretResolve(v any) bool {
	switch val := v.(type) {
	case string:
		return strings.Contains(val, "{{resolve:secretsmanager")
	case map[string]any:
		for _, inner := range val {
			if containsSecretResolve(inner) {
				return true
			}
		}
	case []any:
		for _, inner := range val {
			if containsSecretResolve(inner) {
				return true
			}
		}
	}
	return false
}

// checkApiRouting requires the listener to route /api traffic somewhere
// other than its default target.
func checkApiRouting(tmpl *ecomstack.Template) []Issue {
	table, err := routing.FromTemplate(tmpl)
	if err != nil {
		return []Issue{{
			Severity: SeverityError,
			Rule:     "api-routing",
			Message:  err.Error(),
		}}
	}

	apiTarget := table.Match("/api/orders")
	if apiTarget == table.DefaultTarget {
		return []Issue{{
			Severity: SeverityError,
			Rule:     "api-routing",
			Message:  "no listener rule separates /api traffic from the default target",
		}}
	}
	if table.Match("/api") != apiTarget {
		return []Issue{{
			Severity: SeverityWarning,
			Rule:     "api-routing",
			Message:  "/api without a trailing segment does not reach the API target",
		}}
	}
	return nil
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
