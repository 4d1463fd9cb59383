// Database credentials. Secrets Manager generates the password at stack
// creation; the template only ever carries references to it.
package stack

import (
	"ecomstack/resources/secretsmanager"
)

// DatabaseUser is the fixed MySQL application user.
const DatabaseUser = "appuser"

// DatabaseCredentials holds the generated username/password pair for the
// database. The username is fixed in the template; Secrets Manager fills
// in the password field.
var DatabaseCredentials = secretsmanager.Secret{
	Name:        "ecommerce/mysql",
	Description: "MySQL credentials for the ecommerce database",
	GenerateSecretString: secretsmanager.Secret_GenerateSecretString{
		SecretStringTemplate: `{"username": "` + DatabaseUser + `"}`,
		GenerateStringKey:    "password",
		ExcludePunctuation:   true,
	},
}
