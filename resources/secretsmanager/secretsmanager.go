// Package secretsmanager provides the Secrets Manager resource types the
// stack uses.
package secretsmanager

// Secret is AWS::SecretsManager::Secret.
type Secret struct {
	Name                 any    `json:"Name,omitempty"`
	Description          string `json:"Description,omitempty"`
	GenerateSecretString any    `json:"GenerateSecretString,omitempty"`
	Tags                 []any  `json:"Tags,omitempty"`
}

// ResourceType returns the CloudFormation type.
func (Secret) ResourceType() string { return "AWS::SecretsManager::Secret" }

// Secret_GenerateSecretString asks Secrets Manager to generate the secret
// value at creation time. SecretStringTemplate carries the fixed fields;
// GenerateStringKey names the field that receives the generated value.
type Secret_GenerateSecretString struct {
	SecretStringTemplate string `json:"SecretStringTemplate,omitempty"`
	GenerateStringKey    string `json:"GenerateStringKey,omitempty"`
	ExcludePunctuation   bool   `json:"ExcludePunctuation,omitempty"`
	PasswordLength       int    `json:"PasswordLength,omitempty"`
}
