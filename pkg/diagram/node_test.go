package diagram

import (
	"fmt"
	"testing"

	"github.com/diagramlab/stencil/pkg/errors"
)

func TestNewNodeDefaults(t *testing.T) {
	n, err := NewNode(NodeSpec{Type: ShapeRectangle, Position: Position{X: 5, Y: 7}})
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}

	if n.ID == "" {
		t.Error("empty node ID")
	}
	if n.Size != (Size{Width: DefaultWidth, Height: DefaultHeight}) {
		t.Errorf("Size = %+v, want defaults %gx%g", n.Size, DefaultWidth, DefaultHeight)
	}
	if n.Attrs == nil {
		t.Error("Attrs not initialized")
	}
}

func TestNewNodeUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n, err := NewNode(NodeSpec{Type: ShapeOval})
		if err != nil {
			t.Fatalf("NewNode: %v", err)
		}
		if seen[n.ID] {
			t.Fatalf("duplicate ID %s", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestNewNodeInvalidShape(t *testing.T) {
	_, err := NewNode(NodeSpec{Type: "triangle"})
	if err == nil {
		t.Fatal("expected error for unrecognized shape type")
	}
	if !errors.Is(err, errors.ErrCodeInvalidShapeType) {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidShapeType)
	}
}

func TestDefaultPortLayouts(t *testing.T) {
	tests := []struct {
		shape ShapeType
		want  []Side
	}{
		{ShapeRectangle, []Side{SideTop, SideRight, SideBottom, SideLeft}},
		{ShapeOval, []Side{SideTop, SideRight, SideBottom, SideLeft}},
		{ShapeDiamond, []Side{SideTop, SideRight, SideBottom, SideLeft}},
		{ShapeParallelogram, []Side{SideTop, SideRight, SideBottom, SideLeft}},
		{ShapeText, []Side{SideTop, SideRight, SideBottom, SideLeft}},
		{ShapeCylinder, []Side{SideTop, SideBottom}},
		{ShapeHexagon, []Side{SideTop, SideRight, SideRight, SideBottom, SideLeft, SideLeft}},
	}

	for _, tt := range tests {
		t.Run(string(tt.shape), func(t *testing.T) {
			n, err := NewNode(NodeSpec{Type: tt.shape})
			if err != nil {
				t.Fatalf("NewNode: %v", err)
			}
			if len(n.Ports) != len(tt.want) {
				t.Fatalf("port count = %d, want %d", len(n.Ports), len(tt.want))
			}
			seen := make(map[Side]int)
			for i, p := range n.Ports {
				if p.Side != tt.want[i] {
					t.Errorf("Ports[%d].Side = %s, want %s", i, p.Side, tt.want[i])
				}
				if p.Index != seen[p.Side] {
					t.Errorf("Ports[%d].Index = %d, want %d", i, p.Index, seen[p.Side])
				}
				seen[p.Side]++
				want := fmt.Sprintf("%s-%s-%d", n.ID, p.Side, p.Index)
				if p.ID != want {
					t.Errorf("Ports[%d].ID = %s, want %s", i, p.ID, want)
				}
			}
		})
	}
}

func TestPortLookup(t *testing.T) {
	n, err := NewNode(NodeSpec{Type: ShapeRectangle})
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}

	p, ok := n.Port(n.Ports[2].ID)
	if !ok {
		t.Fatal("known port not found")
	}
	if p.Side != SideBottom {
		t.Errorf("Side = %s, want bottom", p.Side)
	}

	if _, ok := n.Port("nope"); ok {
		t.Error("unknown port ID reported found")
	}
}

func TestNodeExtent(t *testing.T) {
	n, err := NewNode(NodeSpec{
		Type:     ShapeRectangle,
		Position: Position{X: 10, Y: 20},
		Size:     &Size{Width: 100, Height: 50},
	})
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}

	if n.Left() != 10 || n.Top() != 20 || n.Right() != 110 || n.Bottom() != 70 {
		t.Errorf("extent = (%g,%g)-(%g,%g), want (10,20)-(110,70)",
			n.Left(), n.Top(), n.Right(), n.Bottom())
	}
}
