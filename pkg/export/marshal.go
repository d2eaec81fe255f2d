// Package export renders store state into interchange formats: JSON and
// YAML snapshots of the annotation data, and SVG drawings of the diagrams.
package export

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/avetori/flownote/pkg/core"
)

// Snapshot bundles both mappings for export.
type Snapshot struct {
	Annotations map[string]core.AnnotationRecord `json:"annotations" yaml:"annotations"`
	SubNodes    map[string][]core.SubNode        `json:"subnodes" yaml:"subnodes"`
}

// Build captures the current store state.
func Build(svc *core.Service) Snapshot {
	return Snapshot{
		Annotations: svc.Annotations(),
		SubNodes:    svc.AllSubNodes(),
	}
}

// WriteJSON writes an indented JSON snapshot.
func WriteJSON(w io.Writer, svc *core.Service) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Build(svc))
}

// WriteYAML writes a YAML snapshot.
func WriteYAML(w io.Writer, svc *core.Service) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(Build(svc))
}
