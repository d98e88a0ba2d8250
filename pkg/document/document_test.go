package document

import (
	"bytes"
	"testing"

	"github.com/diagramlab/stencil/pkg/diagram"
)

// buildGraph assembles a small well-formed graph: three nodes of mixed
// shapes, two edges, and document metadata.
func buildGraph(t *testing.T) *diagram.Graph {
	t.Helper()

	g := diagram.New(diagram.Metadata{"title": "test diagram", "layer": "main"})

	a, err := diagram.NewNode(diagram.NodeSpec{
		Type:     diagram.ShapeCylinder,
		Position: diagram.Position{X: 0, Y: 0},
		Attrs:    diagram.Attributes{"text": "db", "color": "blue"},
	})
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}
	b, err := diagram.NewNode(diagram.NodeSpec{
		Type:     diagram.ShapeRectangle,
		Position: diagram.Position{X: 200, Y: 50},
		Size:     &diagram.Size{Width: 160, Height: 90},
	})
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}
	c, err := diagram.NewNode(diagram.NodeSpec{
		Type:     diagram.ShapeHexagon,
		Position: diagram.Position{X: 400, Y: 100},
	})
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}

	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)

	e1 := diagram.NewEdge(diagram.EdgeSpec{
		SourceNode: a.ID, SourcePort: a.Ports[1].ID,
		TargetNode: b.ID, TargetPort: b.Ports[0].ID,
		Label: "reads",
	})
	e2 := diagram.NewEdge(diagram.EdgeSpec{
		SourceNode: b.ID, SourcePort: b.Ports[1].ID,
		TargetNode: c.ID, TargetPort: c.Ports[0].ID,
		Type:  diagram.EdgeOrthogonal,
		Attrs: diagram.Attributes{"dashed": true},
	})
	if !g.AddEdge(e1) || !g.AddEdge(e2) {
		t.Fatal("AddEdge rejected a well-formed edge")
	}

	return g
}

func TestRoundTrip(t *testing.T) {
	g := buildGraph(t)
	doc := FromGraph(g)

	data, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	decoded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	restored, dropped := ToGraph(decoded)
	if dropped != 0 {
		t.Fatalf("dropped = %d, want 0 for a well-formed document", dropped)
	}

	// Re-serializing the restored graph must reproduce the original bytes.
	// JSON output is deterministic (ordered slices, sorted map keys), so
	// byte equality is graph equality.
	data2, err := Marshal(FromGraph(restored))
	if err != nil {
		t.Fatalf("Marshal restored: %v", err)
	}
	if !bytes.Equal(data, data2) {
		t.Errorf("round-trip changed serialization:\nfirst:  %s\nsecond: %s", data, data2)
	}
}

func TestRoundTripPreservesOrder(t *testing.T) {
	g := buildGraph(t)
	doc := FromGraph(g)

	nodes := g.Nodes()
	for i, n := range nodes {
		if doc.Nodes[i].ID != n.ID {
			t.Errorf("Nodes[%d] = %s, want %s", i, doc.Nodes[i].ID, n.ID)
		}
	}
	edges := g.Edges()
	for i, e := range edges {
		if doc.Edges[i].ID != e.ID {
			t.Errorf("Edges[%d] = %s, want %s", i, doc.Edges[i].ID, e.ID)
		}
	}
}

func TestRoundTripPreservesAlteredPorts(t *testing.T) {
	g := diagram.New(nil)
	n, err := diagram.NewNode(diagram.NodeSpec{Type: diagram.ShapeRectangle})
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}
	// Grow the port list past the shape default. Loading must keep the
	// stored list, not regenerate from shape type.
	extra := diagram.Port{
		ID:    diagram.PortID(n.ID, diagram.SideTop, 1),
		Side:  diagram.SideTop,
		Index: 1,
	}
	n.Ports = append(n.Ports, extra)
	g.AddNode(n)

	data, err := Marshal(FromGraph(g))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	doc, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	restored, _ := ToGraph(doc)

	got, ok := restored.Node(n.ID)
	if !ok {
		t.Fatal("node missing after round trip")
	}
	if len(got.Ports) != 5 {
		t.Fatalf("port count = %d, want 5", len(got.Ports))
	}
	if _, ok := got.Port(extra.ID); !ok {
		t.Error("extra port lost in round trip")
	}
}

func TestToGraphDropsInvalidEdges(t *testing.T) {
	g := buildGraph(t)
	doc := FromGraph(g)

	doc.Edges = append(doc.Edges,
		Edge{
			ID:         "bad-node",
			SourceNode: "ghost",
			SourcePort: "ghost-top-0",
			TargetNode: doc.Nodes[0].ID,
			TargetPort: doc.Nodes[0].Ports[0].ID,
		},
		Edge{
			ID:         "bad-port",
			SourceNode: doc.Nodes[0].ID,
			SourcePort: "not-a-port",
			TargetNode: doc.Nodes[1].ID,
			TargetPort: doc.Nodes[1].Ports[0].ID,
		},
	)

	restored, dropped := ToGraph(doc)
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	if got := restored.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount = %d, want the 2 valid edges", got)
	}
	if _, ok := restored.Edge("bad-node"); ok {
		t.Error("edge with missing node survived load")
	}
	if _, ok := restored.Edge("bad-port"); ok {
		t.Error("edge with missing port survived load")
	}
}

func TestToGraphDropsDuplicateEdgeIDs(t *testing.T) {
	g := buildGraph(t)
	doc := FromGraph(g)

	// A second edge reusing the first edge's ID but pointing elsewhere.
	dup := Edge{
		ID:         doc.Edges[0].ID,
		SourceNode: doc.Nodes[1].ID,
		SourcePort: doc.Nodes[1].Ports[1].ID,
		TargetNode: doc.Nodes[2].ID,
		TargetPort: doc.Nodes[2].Ports[0].ID,
	}
	doc.Edges = append(doc.Edges, dup)

	restored, dropped := ToGraph(doc)
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if got := restored.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount = %d, want 2", got)
	}

	// The first occurrence wins and the degree counts describe it, not the
	// discarded duplicate.
	stored, ok := restored.Edge(doc.Edges[0].ID)
	if !ok || stored.TargetNode != doc.Edges[0].TargetNode {
		t.Errorf("stored edge = %+v, want the first occurrence", stored)
	}
	if got := restored.InDegree(dup.TargetNode); got != 1 {
		t.Errorf("InDegree(target) = %d, want only the original b→c edge", got)
	}

	restored.RemoveEdge(doc.Edges[0].ID)
	if restored.HasCycle() {
		t.Error("HasCycle inconsistent after removing the surviving edge")
	}
}

func TestFromGraphCopiesAttrs(t *testing.T) {
	g := diagram.New(nil)
	n, err := diagram.NewNode(diagram.NodeSpec{
		Type:  diagram.ShapeOval,
		Attrs: diagram.Attributes{"color": "red"},
	})
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}
	g.AddNode(n)

	doc := FromGraph(g)
	doc.Nodes[0].Attrs["color"] = "green"

	stored, _ := g.Node(n.ID)
	if stored.Attrs["color"] != "red" {
		t.Error("mutating the document leaked into the graph")
	}
}

func TestRoundTripMetadata(t *testing.T) {
	g := diagram.New(diagram.Metadata{"title": "arch", "version": "2"})
	doc := FromGraph(g)

	data, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	decoded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	restored, _ := ToGraph(decoded)

	if restored.Meta()["title"] != "arch" || restored.Meta()["version"] != "2" {
		t.Errorf("metadata lost: %v", restored.Meta())
	}
}
