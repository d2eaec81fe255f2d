// Package diagram holds the fixed, hand-authored flowchart set for the
// clinic-management rollout. Positions, shapes and arrows are literal
// constants; there is no layout engine.
package diagram

import "github.com/avetori/flownote/pkg/core"

// Shape enumerates the flowchart node shapes.
type Shape int

const (
	ShapeTerminator Shape = iota // rounded start/end marker
	ShapeProcess                 // rectangular step
	ShapeDecision                // diamond branch
	ShapeSubprocess              // double-edged step with its own detail
)

// String returns the display name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeTerminator:
		return "terminator"
	case ShapeProcess:
		return "process"
	case ShapeDecision:
		return "decision"
	case ShapeSubprocess:
		return "subprocess"
	default:
		return "unknown"
	}
}

// Point is a 2D position in diagram coordinates (origin top-left).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a node's rendered extent.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Node is a single fixed flowchart node.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Shape Shape  `json:"shape"`
	Pos   Point  `json:"pos"`
	Size  Size   `json:"size"`

	// AllowSubNodes marks nodes the user may attach sub-nodes to.
	AllowSubNodes bool `json:"allow_sub_nodes,omitempty"`
}

// Arrow is a directed connection between two nodes of the same diagram.
type Arrow struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Label     string  `json:"label,omitempty"` // e.g. "yes"/"no" on decisions
	Waypoints []Point `json:"waypoints,omitempty"`
}

// Diagram is one complete flowchart.
type Diagram struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Nodes  []Node  `json:"nodes"`
	Arrows []Arrow `json:"arrows"`
}

// Find returns the node with the given id.
func (d Diagram) Find(nodeID string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == nodeID {
			return n, true
		}
	}
	return Node{}, false
}

// NodeKey derives the annotation store key for one of this diagram's nodes.
func (d Diagram) NodeKey(nodeID string) string {
	return core.NodeKey(d.ID, nodeID)
}
