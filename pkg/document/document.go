package document

import (
	"github.com/diagramlab/stencil/pkg/diagram"
)

// Document is the canonical serialization format for diagram graphs.
// Used for save/load, API responses, storage, and export tooling.
//
// The format is complete and stable: every field needed to reconstruct an
// identical graph is included. Port lists are emitted as stored, never
// regenerated from shape type on load, so a node whose ports were altered
// after creation still round-trips exactly. Node and edge order matches the
// graph's insertion order for deterministic output.
type Document struct {
	Nodes []Node           `json:"nodes" bson:"nodes"`
	Edges []Edge           `json:"edges" bson:"edges"`
	Meta  diagram.Metadata `json:"meta,omitempty" bson:"meta,omitempty"`
}

// Node is the serialized form of a diagram node.
type Node struct {
	ID       string             `json:"id" bson:"id"`
	Type     diagram.ShapeType  `json:"type" bson:"type"`
	Position diagram.Position   `json:"position" bson:"position"`
	Size     diagram.Size       `json:"size" bson:"size"`
	Attrs    diagram.Attributes `json:"attrs,omitempty" bson:"attrs,omitempty"`
	Ports    []diagram.Port     `json:"ports" bson:"ports"`
}

// Edge is the serialized form of a diagram edge.
type Edge struct {
	ID         string             `json:"id" bson:"id"`
	SourceNode string             `json:"source_node" bson:"source_node"`
	SourcePort string             `json:"source_port" bson:"source_port"`
	TargetNode string             `json:"target_node" bson:"target_node"`
	TargetPort string             `json:"target_port" bson:"target_port"`
	Type       diagram.EdgeType   `json:"type,omitempty" bson:"type,omitempty"`
	Label      string             `json:"label,omitempty" bson:"label,omitempty"`
	Attrs      diagram.Attributes `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// FromGraph converts a graph to its serialization format. Nodes and edges
// appear in the graph's insertion order; document-level metadata is carried
// through, never silently dropped.
func FromGraph(g *diagram.Graph) Document {
	nodes := g.Nodes()
	edges := g.Edges()

	out := Document{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, len(edges)),
	}
	if len(g.Meta()) > 0 {
		out.Meta = copyMeta(g.Meta())
	}

	for i, n := range nodes {
		out.Nodes[i] = Node{
			ID:       n.ID,
			Type:     n.Type,
			Position: n.Position,
			Size:     n.Size,
			Attrs:    copyAttrs(n.Attrs),
			Ports:    append([]diagram.Port(nil), n.Ports...),
		}
	}
	for i, e := range edges {
		out.Edges[i] = Edge{
			ID:         e.ID,
			SourceNode: e.SourceNode,
			SourcePort: e.SourcePort,
			TargetNode: e.TargetNode,
			TargetPort: e.TargetPort,
			Type:       e.Type,
			Label:      e.Label,
			Attrs:      copyAttrs(e.Attrs),
		}
	}

	return out
}

// ToGraph rebuilds a graph from its serialized form. Nodes are restored
// verbatim, including their stored port lists. Edges are added through
// [diagram.Graph.AddEdge], so an edge referencing a node or port absent from
// the supplied node set, or reusing an earlier edge's ID, is dropped rather
// than reintroduced as an integrity violation. The second return value is the
// number of edges dropped - zero for any document produced by FromGraph on a
// well-formed graph.
func ToGraph(d Document) (*diagram.Graph, int) {
	g := diagram.New(copyMeta(d.Meta))

	for _, n := range d.Nodes {
		g.AddNode(&diagram.Node{
			ID:       n.ID,
			Type:     n.Type,
			Position: n.Position,
			Size:     n.Size,
			Attrs:    copyAttrs(n.Attrs),
			Ports:    append([]diagram.Port(nil), n.Ports...),
		})
	}

	dropped := 0
	for _, e := range d.Edges {
		ok := g.AddEdge(&diagram.Edge{
			ID:         e.ID,
			SourceNode: e.SourceNode,
			SourcePort: e.SourcePort,
			TargetNode: e.TargetNode,
			TargetPort: e.TargetPort,
			Type:       e.Type,
			Label:      e.Label,
			Attrs:      copyAttrs(e.Attrs),
		})
		if !ok {
			dropped++
		}
	}

	return g, dropped
}

// copyAttrs creates a shallow copy of an attribute bag to avoid mutation
// leaking between a graph and its serialized form.
func copyAttrs(a diagram.Attributes) diagram.Attributes {
	if a == nil {
		return nil
	}
	result := make(diagram.Attributes, len(a))
	for k, v := range a {
		result[k] = v
	}
	return result
}

// copyMeta creates a shallow copy of document metadata.
func copyMeta(m diagram.Metadata) diagram.Metadata {
	if m == nil {
		return nil
	}
	result := make(diagram.Metadata, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
