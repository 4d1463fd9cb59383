package intrinsics

import (
	"encoding/json"
)

// PolicyDocument is an IAM policy document, used for ECS task role trust
// and inline policies.
type PolicyDocument struct {
	Version   string `json:"Version,omitempty"`
	Statement []any  `json:"Statement"`
}

// PolicyStatement is a single IAM policy statement.
type PolicyStatement struct {
	Sid       string `json:"Sid,omitempty"`
	Effect    string `json:"Effect"`
	Principal any    `json:"Principal,omitempty"`
	Action    any    `json:"Action,omitempty"`
	Resource  any    `json:"Resource,omitempty"`
}

// ServicePrincipal is an AWS service principal. It serializes to the
// {"Service": ...} form an AssumeRolePolicyDocument expects.
//
//	Principal: ServicePrincipal{"ecs-tasks.amazonaws.com"}
type ServicePrincipal []any

// MarshalJSON serializes to {"Service": ...}.
func (p ServicePrincipal) MarshalJSON() ([]byte, error) {
	if len(p) == 1 {
		return json.Marshal(map[string]any{"Service": p[0]})
	}
	return json.Marshal(map[string]any{"Service": []any(p)})
}
