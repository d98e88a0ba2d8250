package diagram

// Roots returns the nodes with in-degree zero (no edge targets them), in the
// graph's insertion order. A graph with no edges has every node as a root; a
// fully cyclic graph returns an empty slice - a valid result, not an error.
func (g *Graph) Roots() []*Node {
	roots := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		if len(g.incoming[id]) == 0 {
			roots = append(roots, g.nodes[id])
		}
	}
	return roots
}

// HasCycle reports whether the directed graph contains at least one cycle,
// treating nodes as vertices and edges as directed arcs (port identity is
// ignored). Self-loops count as cycles.
//
// Detection is a tri-color depth-first search with an explicit stack, so
// very large graphs cannot exhaust the goroutine stack. Every node is tried
// as a traversal root to cover disconnected components. Runs in O(N+E).
func (g *Graph) HasCycle() bool {
	const (
		white = iota // unvisited
		gray         // on the current traversal path
		black        // fully explored
	)

	color := make(map[string]int, len(g.nodes))

	type frame struct {
		id   string
		next int // index into outgoing edge list
	}

	for _, root := range g.nodeOrder {
		if color[root] != white {
			continue
		}

		stack := []frame{{id: root}}
		color[root] = gray

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			out := g.outgoing[top.id]

			if top.next >= len(out) {
				color[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}

			child := g.edges[out[top.next]].TargetNode
			top.next++

			switch color[child] {
			case white:
				color[child] = gray
				stack = append(stack, frame{id: child})
			case gray:
				// Back-edge onto the active path.
				return true
			}
		}
	}
	return false
}

// Rect is an axis-aligned rectangle in document coordinate space.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bounds computes the smallest axis-aligned rectangle covering every node's
// position-to-position+size extent. The second return value is false when
// the graph has zero nodes - there is no degenerate zero-rectangle.
func (g *Graph) Bounds() (Rect, bool) {
	if len(g.nodeOrder) == 0 {
		return Rect{}, false
	}

	first := g.nodes[g.nodeOrder[0]]
	minX, minY := first.Left(), first.Top()
	maxX, maxY := first.Right(), first.Bottom()

	for _, id := range g.nodeOrder[1:] {
		n := g.nodes[id]
		minX = min(minX, n.Left())
		minY = min(minY, n.Top())
		maxX = max(maxX, n.Right())
		maxY = max(maxY, n.Bottom())
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}
