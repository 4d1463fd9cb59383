// Package template builds CloudFormation templates from a resource
// registry.
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"ecomstack"
	"ecomstack/internal/serialize"
)

// Builder constructs a CloudFormation template from registered resources.
type Builder struct {
	reg         *ecomstack.Registry
	description string
}

// NewBuilder creates a builder over a populated registry.
func NewBuilder(reg *ecomstack.Registry) *Builder {
	return &Builder{reg: reg}
}

// WithDescription sets the template Description field.
func (b *Builder) WithDescription(desc string) *Builder {
	b.description = desc
	return b
}

// Build serializes every registered resource, checks the dependency graph
// for cycles, and assembles the template document. Building the same
// registry twice yields identical templates.
func (b *Builder) Build() (*ecomstack.Template, error) {
	props := make(map[string]map[string]any)
	deps := make(map[string][]string)

	isResource := func(name string) bool {
		_, ok := b.reg.Lookup(name)
		return ok
	}

	for _, name := range b.reg.ResourceNames() {
		value, _ := b.reg.Lookup(name)

		p, err := serialize.Properties(value, b.reg)
		if err != nil {
			return nil, fmt.Errorf("serializing %s: %w", name, err)
		}
		props[name] = p

		d := serialize.Dependencies(p, isResource)
		for _, explicit := range b.reg.DependsOnFor(name) {
			if !isResource(explicit) {
				return nil, fmt.Errorf("%s depends on unknown resource %s", name, explicit)
			}
			d = append(d, explicit)
		}
		deps[name] = dedupe(d)
	}

	if _, err := topologicalSort(b.reg.ResourceNames(), deps); err != nil {
		return nil, err
	}

	tmpl := &ecomstack.Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              b.description,
		Resources:                make(map[string]ecomstack.ResourceDef),
	}

	for _, name := range b.reg.ResourceNames() {
		value, _ := b.reg.Lookup(name)
		tmpl.Resources[name] = ecomstack.ResourceDef{
			Type:           value.ResourceType(),
			Properties:     props[name],
			DependsOn:      b.reg.DependsOnFor(name),
			DeletionPolicy: b.reg.DeletionPolicyFor(name),
		}
	}

	if names := b.reg.ParameterNames(); len(names) > 0 {
		tmpl.Parameters = make(map[string]ecomstack.Parameter, len(names))
		for _, name := range names {
			p, _ := b.reg.Parameter(name)
			tmpl.Parameters[name] = p
		}
	}

	if names := b.reg.OutputNames(); len(names) > 0 {
		tmpl.Outputs = make(map[string]ecomstack.Output, len(names))
		for _, name := range names {
			o, _ := b.reg.Output(name)
			normalized, err := normalizeValue(o.Value)
			if err != nil {
				return nil, fmt.Errorf("serializing output %s: %w", name, err)
			}
			o.Value = normalized
			tmpl.Outputs[name] = o
		}
	}

	return tmpl, nil
}

// Order returns the logical names in dependency order: every resource
// appears after everything it references.
func (b *Builder) Order() ([]string, error) {
	tmpl, err := b.Build()
	if err != nil {
		return nil, err
	}

	deps := make(map[string][]string)
	isResource := func(name string) bool {
		_, ok := tmpl.Resources[name]
		return ok
	}
	for name, def := range tmpl.Resources {
		d := serialize.Dependencies(def.Properties, isResource)
		d = append(d, def.DependsOn...)
		deps[name] = dedupe(d)
	}

	return topologicalSort(b.reg.ResourceNames(), deps)
}

// normalizeValue flattens intrinsics into their wire form so the value is
// plain maps and strings regardless of the output encoder.
func normalizeValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

// topologicalSort orders names so dependencies come first, using Kahn's
// algorithm with sorted tie-breaking for deterministic output. A cycle is
// an error carrying the offending path.
func topologicalSort(names []string, deps map[string][]string) ([]string, error) {
	graph := make(map[string][]string, len(names))
	inDegree := make(map[string]int, len(names))
	for _, name := range names {
		inDegree[name] = 0
	}

	for _, name := range names {
		for _, dep := range deps[name] {
			if _, exists := inDegree[dep]; !exists {
				continue
			}
			graph[dep] = append(graph[dep], name)
			inDegree[name]++
		}
	}

	var queue []string
	for _, name := range names {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	result := make([]string, 0, len(names))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, next := range graph[node] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
				sort.Strings(queue)
			}
		}
	}

	if len(result) != len(names) {
		return nil, cycleError(names, deps)
	}
	return result, nil
}

func cycleError(names []string, deps map[string][]string) error {
	visited := make(map[string]bool)
	onPath := make(map[string]bool)

	var cycle []string
	var walk func(node string) bool
	walk = func(node string) bool {
		visited[node] = true
		onPath[node] = true
		for _, dep := range deps[node] {
			if onPath[dep] {
				cycle = append(cycle, node, dep)
				return true
			}
			if !visited[dep] {
				if walk(dep) {
					cycle = append([]string{node}, cycle...)
					return true
				}
			}
		}
		onPath[node] = false
		return false
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	for _, name := range sorted {
		if !visited[name] && walk(name) {
			break
		}
	}

	if len(cycle) > 0 {
		return fmt.Errorf("circular dependency: %s", strings.Join(cycle, " -> "))
	}
	return errors.New("circular dependency detected")
}

// ToJSON renders the template as indented JSON. Map keys serialize in
// sorted order, so the bytes are stable across builds.
func ToJSON(t *ecomstack.Template) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// ToYAML renders the template as YAML. The document is routed through its
// JSON form first so intrinsic marshalers apply before YAML encoding.
func ToYAML(t *ecomstack.Template) ([]byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}
