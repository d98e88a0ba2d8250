package diagram

import "slices"

// Graph owns all nodes and edges of a diagram and enforces referential
// integrity between them: every edge endpoint resolves to a live node and a
// port on that node, and removing a node atomically removes its incident
// edges.
//
// Iteration order over nodes and edges is stable and matches insertion
// order, which keeps serialization and bounds computation deterministic.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	edges     map[string]*Edge
	edgeOrder []string
	outgoing  map[string][]string // nodeID -> outgoing edge IDs
	incoming  map[string][]string // nodeID -> incoming edge IDs
	meta      Metadata
}

// New creates an empty graph with optional document-level metadata.
// The metadata parameter can be nil, in which case an empty map is created.
func New(meta Metadata) *Graph {
	if meta == nil {
		meta = Metadata{}
	}
	return &Graph{
		nodes:    make(map[string]*Node),
		edges:    make(map[string]*Edge),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		meta:     meta,
	}
}

// Meta returns the document-level metadata map.
// The returned map is never nil and can be safely modified.
func (g *Graph) Meta() Metadata { return g.meta }

// AddNode inserts the node keyed by its ID. If a node with the same ID
// already exists it is overwritten in place, keeping its original position in
// iteration order; edges are not revalidated. Callers are expected not to
// reuse IDs - nodes from NewNode always carry fresh ones.
func (g *Graph) AddNode(n *Node) {
	if n == nil {
		return
	}
	if n.Attrs == nil {
		n.Attrs = Attributes{}
	}
	if _, exists := g.nodes[n.ID]; !exists {
		g.nodeOrder = append(g.nodeOrder, n.ID)
	}
	g.nodes[n.ID] = n
}

// Node returns the node with the given ID and true, or nil and false if not
// found. The returned pointer refers to the actual node in the graph - use
// UpdateNode for mutations so integrity stays graph-mediated.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// RemoveNode removes the node if present and, as one atomic step, every edge
// incident to it as source or target. No-op if the ID is absent - removal is
// idempotent by design.
func (g *Graph) RemoveNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		return
	}

	// Collect incident edge IDs first, then remove node and edges together,
	// so no observer ever sees a dangling edge.
	incident := make([]string, 0, len(g.outgoing[id])+len(g.incoming[id]))
	incident = append(incident, g.outgoing[id]...)
	for _, eid := range g.incoming[id] {
		if !slices.Contains(incident, eid) { // self-loops appear in both lists
			incident = append(incident, eid)
		}
	}

	delete(g.nodes, id)
	g.nodeOrder = slices.DeleteFunc(g.nodeOrder, func(s string) bool { return s == id })
	delete(g.outgoing, id)
	delete(g.incoming, id)

	for _, eid := range incident {
		g.removeEdgeEntry(eid)
	}
}

// NodeUpdate describes a partial update applied by UpdateNode. Nil fields
// are left untouched; a supplied field replaces the node's whole value for
// that field (a new Position replaces both axes, a non-nil Attrs replaces
// the entire attribute bag).
type NodeUpdate struct {
	Position *Position
	Size     *Size
	Attrs    Attributes
}

// UpdateNode merges the update into the existing node, leaving ID, type, and
// port set untouched. No-op if the ID is absent - callers that need to
// distinguish success from no-op should check Node first.
func (g *Graph) UpdateNode(id string, u NodeUpdate) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	if u.Position != nil {
		n.Position = *u.Position
	}
	if u.Size != nil {
		n.Size = *u.Size
	}
	if u.Attrs != nil {
		n.Attrs = u.Attrs
	}
}

// AddEdge validates the edge's endpoints and inserts it on success.
//
// It returns false without inserting when the source or target node is not
// present, or when the source/target port does not belong to its respective
// node. Invalid endpoints are a routine interactive outcome (a connection
// still being dragged), so this is a boolean result rather than an error.
//
// Self-loops (same node, different ports) and parallel edges between the
// same port pair are permitted, but edge IDs are unique: an edge whose ID is
// already present is rejected, never silently overwritten, so the adjacency
// indices always describe exactly the stored edges.
func (g *Graph) AddEdge(e *Edge) bool {
	if e == nil {
		return false
	}
	if _, exists := g.edges[e.ID]; exists {
		return false
	}
	src, ok := g.nodes[e.SourceNode]
	if !ok {
		return false
	}
	dst, ok := g.nodes[e.TargetNode]
	if !ok {
		return false
	}
	if _, ok := src.Port(e.SourcePort); !ok {
		return false
	}
	if _, ok := dst.Port(e.TargetPort); !ok {
		return false
	}

	if e.Attrs == nil {
		e.Attrs = Attributes{}
	}
	g.edgeOrder = append(g.edgeOrder, e.ID)
	g.edges[e.ID] = e
	g.outgoing[e.SourceNode] = append(g.outgoing[e.SourceNode], e.ID)
	g.incoming[e.TargetNode] = append(g.incoming[e.TargetNode], e.ID)
	return true
}

// Edge returns the edge with the given ID and true, or nil and false if not
// found.
func (g *Graph) Edge(id string) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		edges = append(edges, g.edges[id])
	}
	return edges
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// RemoveEdge removes the edge if present; no-op otherwise.
func (g *Graph) RemoveEdge(id string) {
	if _, ok := g.edges[id]; !ok {
		return
	}
	g.removeEdgeEntry(id)
}

// removeEdgeEntry deletes an edge from the edge map, order slice, and both
// adjacency indices. The caller guarantees the edge exists.
func (g *Graph) removeEdgeEntry(id string) {
	e := g.edges[id]
	delete(g.edges, id)
	g.edgeOrder = slices.DeleteFunc(g.edgeOrder, func(s string) bool { return s == id })
	g.outgoing[e.SourceNode] = slices.DeleteFunc(g.outgoing[e.SourceNode], func(s string) bool { return s == id })
	g.incoming[e.TargetNode] = slices.DeleteFunc(g.incoming[e.TargetNode], func(s string) bool { return s == id })
}

// InDegree returns the number of incoming edges to the node.
// Returns 0 if the node doesn't exist.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// OutDegree returns the number of outgoing edges from the node.
// Returns 0 if the node doesn't exist.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }
