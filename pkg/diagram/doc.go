// Package diagram provides the in-memory graph model underlying the stencil
// diagram editor: typed shape nodes connected through directional edges
// attached to discrete ports.
//
// # Overview
//
// A [Graph] owns all nodes and edges of a document and enforces referential
// integrity between them. Nodes are shapes with a position, size, and an
// ordered set of [Port] attachment points generated from the shape type.
// Edges connect a port on one node to a port on another, directionally.
//
// # Basic Usage
//
// Create nodes and edges with their factories, then attach them to a graph:
//
//	g := diagram.New(nil)
//	a, _ := diagram.NewNode(diagram.NodeSpec{Type: diagram.ShapeRectangle})
//	b, _ := diagram.NewNode(diagram.NodeSpec{Type: diagram.ShapeDiamond})
//	g.AddNode(a)
//	g.AddNode(b)
//	g.AddEdge(diagram.NewEdge(diagram.EdgeSpec{
//	    SourceNode: a.ID, SourcePort: a.Ports[1].ID,
//	    TargetNode: b.ID, TargetPort: b.Ports[0].ID,
//	}))
//
// [Graph.AddEdge] returns a boolean rather than an error: stale or invalid
// endpoints are a routine outcome while a user is still dragging a
// connection, so callers check the result instead of unwrapping failures.
// Malformed construction input (an unrecognized shape type) is the opposite
// case - a programming or data error - and [NewNode] fails hard with a
// structured error.
//
// # Integrity
//
// Removing a node cascades to every edge incident to it, atomically, so no
// query ever observes a dangling edge. Removal and update of absent IDs are
// idempotent no-ops. Node and edge IDs are never reused within a graph.
//
// # Analysis
//
// [Graph.Roots] returns the in-degree-zero nodes in insertion order,
// [Graph.HasCycle] detects directed cycles with an iterative tri-color DFS,
// and [Graph.Bounds] computes the minimal axis-aligned rectangle enclosing
// all node extents. All three are side-effect-free and run in O(N+E).
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. The owning document or
// editor component must serialize access - the model assumes a single writer
// and offers no internal locking.
//
// Serialization of graphs to and from the canonical document format lives in
// [github.com/diagramlab/stencil/pkg/document].
package diagram
