package core

// SubNode is a user-created child node attached to one specific parent
// node key. Its deadline/notes live in the annotation store under the
// derived sub-key, not on the sub-node itself.
type SubNode struct {
	ID    string  `json:"id" yaml:"id"`
	Label string  `json:"label" yaml:"label"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`

	// Placed distinguishes a real position from the initial (0,0) state.
	// It is set by Reposition/ResolvePlacement and never cleared, so a
	// sub-node dragged to the literal origin stays placed.
	Placed bool `json:"placed,omitempty" yaml:"placed,omitempty"`
}
