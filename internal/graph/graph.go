// Package graph renders the stack dependency graph in DOT or Mermaid form.
package graph

import (
	"io"
	"sort"
	"strings"

	"github.com/emicklei/dot"

	"ecomstack"
	"ecomstack/internal/serialize"
)

// Format selects the output encoding.
type Format string

const (
	// FormatDOT outputs Graphviz DOT.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid for markdown rendering.
	FormatMermaid Format = "mermaid"
)

// Generator renders a template's resource graph.
type Generator struct {
	// Format selects DOT or Mermaid output. Defaults to DOT.
	Format Format

	// ClusterByService groups nodes by AWS service (EC2, ECS, RDS, ...).
	ClusterByService bool
}

// Generate writes the dependency graph of tmpl to w. Edges run from a
// resource to what it references, whether through an intrinsic or an
// explicit DependsOn.
func (g *Generator) Generate(tmpl *ecomstack.Template, w io.Writer) error {
	graph := g.build(tmpl)

	var output string
	if g.Format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := w.Write([]byte(output))
	return err
}

// GenerateString renders the graph into a string.
func (g *Generator) GenerateString(tmpl *ecomstack.Template) (string, error) {
	var sb strings.Builder
	if err := g.Generate(tmpl, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Generator) build(tmpl *ecomstack.Template) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")
	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})

	names := make([]string, 0, len(tmpl.Resources))
	for name := range tmpl.Resources {
		names = append(names, name)
	}
	sort.Strings(names)

	node := func(name string) dot.Node {
		def := tmpl.Resources[name]
		var n dot.Node
		if g.ClusterByService {
			cluster := graph.Subgraph("cluster_"+serviceOf(def.Type), dot.ClusterOption{})
			cluster.Attr("label", serviceOf(def.Type))
			n = cluster.Node(name)
		} else {
			n = graph.Node(name)
		}
		n.Label(name + "\n" + def.Type)
		return n
	}

	for _, name := range names {
		node(name)
	}

	isResource := func(name string) bool {
		_, ok := tmpl.Resources[name]
		return ok
	}

	for _, name := range names {
		def := tmpl.Resources[name]
		deps := serialize.Dependencies(def.Properties, isResource)
		deps = append(deps, def.DependsOn...)
		sort.Strings(deps)

		seen := make(map[string]bool)
		for _, dep := range deps {
			if !isResource(dep) || seen[dep] {
				continue
			}
			seen[dep] = true
			graph.Edge(node(name), node(dep))
		}
	}

	return graph
}

// serviceOf extracts the service segment of a CloudFormation type, e.g.
// "AWS::EC2::Subnet" yields "EC2".
func serviceOf(resourceType string) string {
	parts := strings.Split(resourceType, "::")
	if len(parts) >= 2 {
		return parts[1]
	}
	return resourceType
}
