package diagram

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/diagramlab/stencil/pkg/errors"
)

// ShapeType identifies the visual shape of a node. The set of shapes is
// closed - NewNode rejects anything outside this enumeration.
type ShapeType string

// Recognized shape types.
const (
	ShapeRectangle     ShapeType = "rectangle"
	ShapeOval          ShapeType = "oval"
	ShapeDiamond       ShapeType = "diamond"
	ShapeParallelogram ShapeType = "parallelogram"
	ShapeHexagon       ShapeType = "hexagon"
	ShapeCylinder      ShapeType = "cylinder"
	ShapeText          ShapeType = "text"
)

// shapeTypes is the recognized enumeration used for validation.
var shapeTypes = map[ShapeType]bool{
	ShapeRectangle:     true,
	ShapeOval:          true,
	ShapeDiamond:       true,
	ShapeParallelogram: true,
	ShapeHexagon:       true,
	ShapeCylinder:      true,
	ShapeText:          true,
}

// ValidShapeType reports whether t is in the recognized shape enumeration.
func ValidShapeType(t ShapeType) bool { return shapeTypes[t] }

// Side identifies which boundary of a node a port is attached to.
type Side string

// Port attachment sides.
const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// Default node dimensions applied when a NodeSpec omits size.
const (
	DefaultWidth  = 120.0
	DefaultHeight = 80.0
)

// Position is a point in document coordinate space.
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Size is a node's extent in document coordinate space.
type Size struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Attributes stores arbitrary presentation key-value pairs (color, border,
// opacity, text). The core stores and round-trips them but never interprets
// them.
type Attributes map[string]any

// Metadata stores arbitrary document-level key-value pairs attached to the
// graph (e.g., layer assignments). Like node attributes, it is opaque to the
// core and must survive serialization round-trips.
type Metadata map[string]any

// Port is a named attachment point on a node's boundary where edges connect.
// Ports are owned by their node: they are created by NewNode based on shape
// type, are never shared between nodes, and live exactly as long as the node.
type Port struct {
	ID    string `json:"id" bson:"id"`
	Side  Side   `json:"side" bson:"side"`
	Index int    `json:"index" bson:"index"`
}

// Node is a shape instance in the diagram. The ID is unique within a graph
// and immutable after creation. Ports is an ordered sequence owned by the
// node - it is populated by NewNode and left untouched by UpdateNode.
//
// The zero value is not usable - construct nodes with NewNode.
type Node struct {
	ID       string     `json:"id" bson:"id"`
	Type     ShapeType  `json:"type" bson:"type"`
	Position Position   `json:"position" bson:"position"`
	Size     Size       `json:"size" bson:"size"`
	Attrs    Attributes `json:"attrs,omitempty" bson:"attrs,omitempty"`
	Ports    []Port     `json:"ports" bson:"ports"`
}

// Left returns the node's minimum x coordinate.
func (n *Node) Left() float64 { return n.Position.X }

// Top returns the node's minimum y coordinate.
func (n *Node) Top() float64 { return n.Position.Y }

// Right returns the node's maximum x coordinate.
func (n *Node) Right() float64 { return n.Position.X + n.Size.Width }

// Bottom returns the node's maximum y coordinate.
func (n *Node) Bottom() float64 { return n.Position.Y + n.Size.Height }

// Port returns the port with the given ID and true, or nil and false if no
// such port exists on this node.
func (n *Node) Port(id string) (*Port, bool) {
	for i := range n.Ports {
		if n.Ports[i].ID == id {
			return &n.Ports[i], true
		}
	}
	return nil, false
}

// NodeSpec describes a node to be created by NewNode.
// Type and Position are required; Size and Attrs are optional.
type NodeSpec struct {
	Type     ShapeType
	Position Position
	Size     *Size
	Attrs    Attributes
}

// NewNode creates a fully-formed node from a spec: a fresh unique ID, the
// default port layout for the shape type, and default size when unspecified.
// It does not touch any graph - add the result with Graph.AddNode.
//
// Returns an error with code errors.ErrCodeInvalidShapeType if the spec's
// type is not a recognized shape.
func NewNode(spec NodeSpec) (*Node, error) {
	if !ValidShapeType(spec.Type) {
		return nil, errors.New(errors.ErrCodeInvalidShapeType, "unrecognized shape type: %q", spec.Type)
	}

	size := Size{Width: DefaultWidth, Height: DefaultHeight}
	if spec.Size != nil {
		size = *spec.Size
	}

	attrs := spec.Attrs
	if attrs == nil {
		attrs = Attributes{}
	}

	id := uuid.NewString()
	return &Node{
		ID:       id,
		Type:     spec.Type,
		Position: spec.Position,
		Size:     size,
		Attrs:    attrs,
		Ports:    defaultPorts(id, spec.Type),
	}, nil
}

// defaultPorts computes the deterministic port layout for a shape type.
// Most shapes get one port per side. Cylinders connect only vertically
// (top, bottom). Hexagons get doubled left/right ports for fan-in/fan-out.
func defaultPorts(nodeID string, t ShapeType) []Port {
	var layout []Side
	switch t {
	case ShapeCylinder:
		layout = []Side{SideTop, SideBottom}
	case ShapeHexagon:
		layout = []Side{SideTop, SideRight, SideRight, SideBottom, SideLeft, SideLeft}
	default:
		layout = []Side{SideTop, SideRight, SideBottom, SideLeft}
	}

	ports := make([]Port, len(layout))
	seen := make(map[Side]int, 4)
	for i, side := range layout {
		idx := seen[side]
		seen[side] = idx + 1
		ports[i] = Port{
			ID:    PortID(nodeID, side, idx),
			Side:  side,
			Index: idx,
		}
	}
	return ports
}

// PortID builds the deterministic port identifier for a node, side, and
// per-side index. Port IDs are unique within a document because node IDs are.
func PortID(nodeID string, side Side, index int) string {
	return fmt.Sprintf("%s-%s-%d", nodeID, side, index)
}
