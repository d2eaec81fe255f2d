package core

import "strings"

// AnnotationRecord holds the user-supplied data attached to a diagram node.
// Both fields are optional; a record with neither field set is never stored,
// its absence from the store is the "no annotation" state.
type AnnotationRecord struct {
	Deadline string `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewRecord builds a record from raw user input. Both fields are trimmed;
// whitespace-only input normalizes to absent.
func NewRecord(deadline, notes string) AnnotationRecord {
	return AnnotationRecord{
		Deadline: strings.TrimSpace(deadline),
		Notes:    strings.TrimSpace(notes),
	}
}

// Empty reports whether the record carries no data at all.
func (r AnnotationRecord) Empty() bool {
	return r.Deadline == "" && r.Notes == ""
}

const (
	// keySeparator joins diagram and node ids into a node key.
	// Diagram ids must not contain it; node ids may (the diagram id is
	// always the first segment, so keys stay unambiguous).
	keySeparator = "-"

	// subMarker separates a parent node key from a sub-node id in derived
	// keys. It is reserved: no diagram or node id may contain it.
	subMarker = "_sub_"
)

// NodeKey derives the stable store key for a diagram node.
// Identical (diagramID, nodeID) pairs always produce identical keys.
func NodeKey(diagramID, nodeID string) string {
	return diagramID + keySeparator + nodeID
}

// SubKey derives the annotation key for a sub-node of the given parent.
func SubKey(parentKey, subID string) string {
	return parentKey + subMarker + subID
}
