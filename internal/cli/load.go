package cli

import (
	"fmt"

	"github.com/diagramlab/stencil/pkg/diagram"
	"github.com/diagramlab/stencil/pkg/document"
)

// loadGraph reads a document file and rebuilds its graph.
// The dropped count reports edges discarded for referencing missing nodes or
// ports - nonzero means the file was produced by something other than a
// well-formed graph.
func loadGraph(path string) (*diagram.Graph, document.Document, int, error) {
	doc, err := document.ReadFile(path)
	if err != nil {
		return nil, document.Document{}, 0, fmt.Errorf("load document %s: %w", path, err)
	}
	g, dropped := document.ToGraph(doc)
	return g, doc, dropped, nil
}
