// Template parameters and outputs.
package stack

import (
	"ecomstack"

	. "ecomstack/intrinsics"
)

// Docker build contexts, relative to the repository root. The images are
// built and pushed out of band; their URIs come in as template parameters.
const (
	FrontendDockerContext = "container_images/frontend"
	BackendDockerContext  = "container_images/backend"
)

func registerParameters(r *ecomstack.Registry) {
	r.RegisterParameter("FrontendImage", ecomstack.Parameter{
		Type:        "String",
		Description: "Container image URI for the frontend service",
	})
	r.RegisterParameter("BackendImage", ecomstack.Parameter{
		Type:        "String",
		Description: "Container image URI for the backend service",
	})
}

func registerOutputs(r *ecomstack.Registry) {
	r.RegisterOutput("LoadBalancerUrl", ecomstack.Output{
		Description: "Public URL of the application",
		Value:       Sub{String: "http://${PublicLoadBalancer.DNSName}"},
	})
	r.RegisterOutput("FrontendDockerContext", ecomstack.Output{
		Description: "Docker build context for the frontend image",
		Value:       FrontendDockerContext,
	})
	r.RegisterOutput("BackendDockerContext", ecomstack.Output{
		Description: "Docker build context for the backend image",
		Value:       BackendDockerContext,
	})
	r.RegisterOutput("DatabaseSecretArn", ecomstack.Output{
		Description: "ARN of the generated database credentials secret",
		Value:       Ref{LogicalName: "DatabaseCredentials"},
	})
	r.RegisterOutput("DatabaseEndpoint", ecomstack.Output{
		Description: "MySQL endpoint as host:port",
		Value:       Sub{String: "${EcommerceDatabase.Endpoint.Address}:${EcommerceDatabase.Endpoint.Port}"},
	})
}
