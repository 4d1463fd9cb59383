package ecomstack

import (
	"fmt"
	"reflect"
)

// Registry maps logical names to declared resource values, parameters and
// outputs. The stack package fills one in; the template builder consumes it.
//
// Because resource declarations reference each other by value
// (ServiceNetwork.Subnets holds the actual ec2.Subnet structs), the registry
// also answers the reverse question during serialization: given a value,
// which logical name was it registered under?
type Registry struct {
	resourceOrder []string
	resources     map[string]*resourceEntry

	paramOrder []string
	parameters map[string]Parameter

	outputOrder []string
	outputs     map[string]Output
}

type resourceEntry struct {
	value          Resource
	dependsOn      []string
	deletionPolicy string
}

// ResourceOption customizes a resource registration.
type ResourceOption func(*resourceEntry)

// DependsOn adds an explicit CloudFormation DependsOn edge. Most ordering
// comes from references; this is for dependencies CloudFormation cannot
// infer, such as an ECS service that must wait for its listener rule.
func DependsOn(names ...string) ResourceOption {
	return func(e *resourceEntry) {
		e.dependsOn = append(e.dependsOn, names...)
	}
}

// WithDeletionPolicy sets the resource's DeletionPolicy attribute.
func WithDeletionPolicy(policy string) ResourceOption {
	return func(e *resourceEntry) {
		e.deletionPolicy = policy
	}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		resources:  make(map[string]*resourceEntry),
		parameters: make(map[string]Parameter),
		outputs:    make(map[string]Output),
	}
}

// Register adds a resource under its logical name.
//
// Two registrations may not share a name, and may not be deep-equal to each
// other: reference resolution works by value, so two indistinguishable
// resources would make every reference to them ambiguous.
func (r *Registry) Register(name string, value Resource, opts ...ResourceOption) error {
	if name == "" {
		return fmt.Errorf("registering resource: empty logical name")
	}
	if _, exists := r.resources[name]; exists {
		return fmt.Errorf("registering %s: duplicate logical name", name)
	}
	for _, existing := range r.resourceOrder {
		if reflect.DeepEqual(r.resources[existing].value, value) {
			return fmt.Errorf("registering %s: identical to %s; references to either would be ambiguous", name, existing)
		}
	}

	entry := &resourceEntry{value: value}
	for _, opt := range opts {
		opt(entry)
	}

	r.resourceOrder = append(r.resourceOrder, name)
	r.resources[name] = entry
	return nil
}

// MustRegister is Register that panics on error. The stack package uses it
// at assembly time, where a bad registration is a programming error.
func (r *Registry) MustRegister(name string, value Resource, opts ...ResourceOption) {
	if err := r.Register(name, value, opts...); err != nil {
		panic(err)
	}
}

// RegisterParameter adds a template parameter.
func (r *Registry) RegisterParameter(name string, p Parameter) {
	if _, exists := r.parameters[name]; !exists {
		r.paramOrder = append(r.paramOrder, name)
	}
	r.parameters[name] = p
}

// RegisterOutput adds a template output.
func (r *Registry) RegisterOutput(name string, o Output) {
	if _, exists := r.outputs[name]; !exists {
		r.outputOrder = append(r.outputOrder, name)
	}
	r.outputs[name] = o
}

// ResourceNames returns logical names in registration order.
func (r *Registry) ResourceNames() []string {
	names := make([]string, len(r.resourceOrder))
	copy(names, r.resourceOrder)
	return names
}

// Lookup returns the registered resource value for a logical name.
func (r *Registry) Lookup(name string) (Resource, bool) {
	entry, ok := r.resources[name]
	if !ok {
		return nil, false
	}
	return entry.value, true
}

// DependsOnFor returns the explicit DependsOn edges for a logical name.
func (r *Registry) DependsOnFor(name string) []string {
	if entry, ok := r.resources[name]; ok {
		return entry.dependsOn
	}
	return nil
}

// DeletionPolicyFor returns the DeletionPolicy for a logical name, if set.
func (r *Registry) DeletionPolicyFor(name string) string {
	if entry, ok := r.resources[name]; ok {
		return entry.deletionPolicy
	}
	return ""
}

// FindByValue returns the logical name a value was registered under.
// The serializer calls this to turn direct struct references into Refs.
func (r *Registry) FindByValue(v any) (string, bool) {
	for _, name := range r.resourceOrder {
		if reflect.DeepEqual(r.resources[name].value, v) {
			return name, true
		}
	}
	return "", false
}

// Has reports whether name is a registered resource or parameter.
// Dependency extraction uses it to separate stack references from
// pseudo-parameters and unresolved names.
func (r *Registry) Has(name string) bool {
	if _, ok := r.resources[name]; ok {
		return true
	}
	_, ok := r.parameters[name]
	return ok
}

// ParameterNames returns parameter names in registration order.
func (r *Registry) ParameterNames() []string {
	names := make([]string, len(r.paramOrder))
	copy(names, r.paramOrder)
	return names
}

// Parameter returns a registered parameter definition.
func (r *Registry) Parameter(name string) (Parameter, bool) {
	p, ok := r.parameters[name]
	return p, ok
}

// OutputNames returns output names in registration order.
func (r *Registry) OutputNames() []string {
	names := make([]string, len(r.outputOrder))
	copy(names, r.outputOrder)
	return names
}

// Output returns a registered output definition.
func (r *Registry) Output(name string) (Output, bool) {
	o, ok := r.outputs[name]
	return o, ok
}
