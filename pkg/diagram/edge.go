package diagram

import "github.com/google/uuid"

// EdgeType identifies the routing style of an edge. The type is stored and
// round-tripped but never interpreted by the core - routing is the renderer's
// concern.
type EdgeType string

// Recognized edge types.
const (
	EdgeBezier     EdgeType = "bezier"
	EdgeOrthogonal EdgeType = "orthogonal"
	EdgeStraight   EdgeType = "straight"
	EdgeStep       EdgeType = "step"
)

// Edge is a directed connection between a port on one node and a port on
// another (or the same) node. Endpoint validity is enforced by Graph.AddEdge,
// not by the edge itself.
type Edge struct {
	ID         string     `json:"id" bson:"id"`
	SourceNode string     `json:"source_node" bson:"source_node"`
	SourcePort string     `json:"source_port" bson:"source_port"`
	TargetNode string     `json:"target_node" bson:"target_node"`
	TargetPort string     `json:"target_port" bson:"target_port"`
	Type       EdgeType   `json:"type,omitempty" bson:"type,omitempty"`
	Label      string     `json:"label,omitempty" bson:"label,omitempty"`
	Attrs      Attributes `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// EdgeSpec describes an edge to be created by NewEdge.
// All four endpoint fields are required; Type defaults to bezier.
type EdgeSpec struct {
	SourceNode string
	SourcePort string
	TargetNode string
	TargetPort string
	Type       EdgeType
	Label      string
	Attrs      Attributes
}

// NewEdge creates a fully-formed edge with a fresh unique ID. It performs no
// existence validation against any graph - the factory is graph-agnostic so
// edges can be constructed before their nodes are attached. Validation
// happens at Graph.AddEdge time.
func NewEdge(spec EdgeSpec) *Edge {
	typ := spec.Type
	if typ == "" {
		typ = EdgeBezier
	}
	attrs := spec.Attrs
	if attrs == nil {
		attrs = Attributes{}
	}
	return &Edge{
		ID:         uuid.NewString(),
		SourceNode: spec.SourceNode,
		SourcePort: spec.SourcePort,
		TargetNode: spec.TargetNode,
		TargetPort: spec.TargetPort,
		Type:       typ,
		Label:      spec.Label,
		Attrs:      attrs,
	}
}
