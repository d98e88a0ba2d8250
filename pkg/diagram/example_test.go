package diagram_test

import (
	"fmt"

	"github.com/diagramlab/stencil/pkg/diagram"
)

func Example() {
	g := diagram.New(diagram.Metadata{"title": "pipeline"})

	source, _ := diagram.NewNode(diagram.NodeSpec{
		Type:     diagram.ShapeCylinder,
		Position: diagram.Position{X: 0, Y: 0},
	})
	step, _ := diagram.NewNode(diagram.NodeSpec{
		Type:     diagram.ShapeRectangle,
		Position: diagram.Position{X: 200, Y: 0},
	})
	g.AddNode(source)
	g.AddNode(step)

	g.AddEdge(diagram.NewEdge(diagram.EdgeSpec{
		SourceNode: source.ID,
		SourcePort: source.Ports[1].ID,
		TargetNode: step.ID,
		TargetPort: step.Ports[0].ID,
	}))

	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("roots:", len(g.Roots()))
	fmt.Println("cyclic:", g.HasCycle())
	// Output:
	// nodes: 2
	// edges: 1
	// roots: 1
	// cyclic: false
}

func ExampleGraph_Bounds() {
	g := diagram.New(nil)

	a, _ := diagram.NewNode(diagram.NodeSpec{
		Type:     diagram.ShapeRectangle,
		Position: diagram.Position{X: 0, Y: 0},
		Size:     &diagram.Size{Width: 100, Height: 100},
	})
	b, _ := diagram.NewNode(diagram.NodeSpec{
		Type:     diagram.ShapeRectangle,
		Position: diagram.Position{X: 300, Y: 200},
		Size:     &diagram.Size{Width: 100, Height: 100},
	})
	g.AddNode(a)
	g.AddNode(b)

	bounds, ok := g.Bounds()
	fmt.Println(ok, bounds.Width, bounds.Height)
	// Output: true 400 300
}
