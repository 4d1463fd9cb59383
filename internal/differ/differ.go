// Package differ compares CloudFormation templates semantically: by
// resource, property path and output, not by text.
package differ

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"

	"ecomstack"
)

// Result is a computed diff with its summary counts.
type Result struct {
	Diff    ecomstack.TemplateDiff
	Summary ecomstack.DiffSummary
}

// Empty reports whether the diff found no changes.
func (r *Result) Empty() bool {
	return r.Summary.Total == 0
}

// Compare diffs two templates. Values are normalized through their JSON
// form first, so a freshly built template and one re-read from disk
// compare equal when they describe the same stack.
func Compare(before, after *ecomstack.Template) (*Result, error) {
	a, err := normalizeTemplate(before)
	if err != nil {
		return nil, fmt.Errorf("normalizing first template: %w", err)
	}
	b, err := normalizeTemplate(after)
	if err != nil {
		return nil, fmt.Errorf("normalizing second template: %w", err)
	}

	result := &Result{}

	for name, def := range b.Resources {
		if _, exists := a.Resources[name]; !exists {
			result.Diff.Added = append(result.Diff.Added, ecomstack.DiffEntry{
				Resource: name,
				Type:     def.Type,
			})
		}
	}
	for name, def := range a.Resources {
		if _, exists := b.Resources[name]; !exists {
			result.Diff.Removed = append(result.Diff.Removed, ecomstack.DiffEntry{
				Resource: name,
				Type:     def.Type,
			})
		}
	}
	for name, defA := range a.Resources {
		defB, exists := b.Resources[name]
		if !exists {
			continue
		}
		if changes := compareResources(defA, defB); len(changes) > 0 {
			result.Diff.Modified = append(result.Diff.Modified, ecomstack.DiffEntry{
				Resource: name,
				Type:     defA.Type,
				Changes:  changes,
			})
		}
	}

	result.Diff.Modified = append(result.Diff.Modified, compareOutputs(a, b)...)

	sortEntries(result.Diff.Added)
	sortEntries(result.Diff.Removed)
	sortEntries(result.Diff.Modified)

	result.Summary = ecomstack.DiffSummary{
		Added:    len(result.Diff.Added),
		Removed:  len(result.Diff.Removed),
		Modified: len(result.Diff.Modified),
	}
	result.Summary.Total = result.Summary.Added + result.Summary.Removed + result.Summary.Modified

	return result, nil
}

// CompareFiles diffs two template files.
func CompareFiles(beforePath, afterPath string) (*Result, error) {
	before, err := LoadTemplate(beforePath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", beforePath, err)
	}
	after, err := LoadTemplate(afterPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", afterPath, err)
	}
	return Compare(before, after)
}

// LoadTemplate reads a template from disk, accepting JSON or YAML.
func LoadTemplate(path string) (*ecomstack.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tmpl ecomstack.Template
	if err := json.Unmarshal(data, &tmpl); err != nil {
		if yamlErr := yaml.Unmarshal(data, &tmpl); yamlErr != nil {
			return nil, fmt.Errorf("parsing %s as JSON or YAML: %w", path, yamlErr)
		}
	}
	return &tmpl, nil
}

// normalizeTemplate round-trips the template through JSON so both sides of
// a comparison use the same scalar types.
func normalizeTemplate(t *ecomstack.Template) (*ecomstack.Template, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	var out ecomstack.Template
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func compareResources(a, b ecomstack.ResourceDef) []string {
	var changes []string

	if a.Type != b.Type {
		changes = append(changes, fmt.Sprintf("Type changed: %s to %s", a.Type, b.Type))
	}
	if a.DeletionPolicy != b.DeletionPolicy {
		changes = append(changes, "DeletionPolicy changed")
	}
	if !reflect.DeepEqual(a.DependsOn, b.DependsOn) {
		changes = append(changes, "DependsOn changed")
	}
	changes = append(changes, compareProperties("", a.Properties, b.Properties)...)

	return changes
}

func compareProperties(prefix string, a, b map[string]any) []string {
	var changes []string

	path := func(key string) string {
		if prefix == "" {
			return key
		}
		return prefix + "." + key
	}

	for key, bv := range b {
		av, exists := a[key]
		if !exists {
			changes = append(changes, path(key)+" added")
			continue
		}
		am, aok := av.(map[string]any)
		bm, bok := bv.(map[string]any)
		if aok && bok {
			changes = append(changes, compareProperties(path(key), am, bm)...)
			continue
		}
		if !reflect.DeepEqual(av, bv) {
			changes = append(changes, path(key)+" modified")
		}
	}
	for key := range a {
		if _, exists := b[key]; !exists {
			changes = append(changes, path(key)+" removed")
		}
	}

	sort.Strings(changes)
	return changes
}

// compareOutputs reports output changes as pseudo-entries so they show in
// the same diff listing as resources.
func compareOutputs(a, b *ecomstack.Template) []ecomstack.DiffEntry {
	var entries []ecomstack.DiffEntry

	for name, outB := range b.Outputs {
		outA, exists := a.Outputs[name]
		if !exists {
			entries = append(entries, ecomstack.DiffEntry{
				Resource: name,
				Type:     "Output",
				Changes:  []string{"added"},
			})
			continue
		}
		if !reflect.DeepEqual(outA, outB) {
			entries = append(entries, ecomstack.DiffEntry{
				Resource: name,
				Type:     "Output",
				Changes:  []string{"modified"},
			})
		}
	}
	for name := range a.Outputs {
		if _, exists := b.Outputs[name]; !exists {
			entries = append(entries, ecomstack.DiffEntry{
				Resource: name,
				Type:     "Output",
				Changes:  []string{"removed"},
			})
		}
	}

	return entries
}

func sortEntries(entries []ecomstack.DiffEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Resource < entries[j].Resource
	})
}
