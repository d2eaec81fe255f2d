package diagram

import "strings"

// SubNodeSpacing is the default vertical offset between a parent node and
// its lazily placed sub-nodes.
const SubNodeSpacing = 70

// registry lists all diagrams in display order.
var registry = []Diagram{
	mainDiagram,
	intakeDiagram,
	trainingDiagram,
	goliveDiagram,
}

// Diagrams returns all diagrams in display order. The returned slice is
// shared; callers must treat it as read-only.
func Diagrams() []Diagram {
	return registry
}

// ByID returns the diagram with the given id.
func ByID(id string) (Diagram, bool) {
	for _, d := range registry {
		if d.ID == id {
			return d, true
		}
	}
	return Diagram{}, false
}

// SplitKey resolves a node key back to its diagram and node. The diagram
// id is always the first key segment, so keys stay unambiguous even though
// node ids may contain the separator.
func SplitKey(key string) (Diagram, Node, bool) {
	for _, d := range registry {
		prefix := d.ID + "-"
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if n, ok := d.Find(strings.TrimPrefix(key, prefix)); ok {
			return d, n, true
		}
	}
	return Diagram{}, Node{}, false
}
