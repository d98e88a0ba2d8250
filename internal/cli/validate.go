package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diagramlab/stencil/pkg/diagram"
)

// validateCommand creates the validate command for integrity checking.
func (c *CLI) validateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [document.json]",
		Short: "Check a diagram document for integrity defects",
		Long: `Check a diagram document for integrity defects.

The validate command loads a document and reports edges that reference
missing nodes or ports, unrecognized shape types, and (with --strict)
directed cycles. The exit status is non-zero when defects are found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "also fail on directed cycles")

	return cmd
}

func (c *CLI) runValidate(path string, strict bool) error {
	g, doc, dropped, err := loadGraph(path)
	if err != nil {
		return err
	}

	defects := 0

	if dropped > 0 {
		printError("%d edge(s) reference missing nodes or ports", dropped)
		defects += dropped
	}

	for _, n := range doc.Nodes {
		if !diagram.ValidShapeType(n.Type) {
			printError("node %s has unrecognized shape type %q", n.ID, n.Type)
			defects++
		}
	}

	if strict && g.HasCycle() {
		printError("document contains a directed cycle")
		defects++
	}

	if defects > 0 {
		return fmt.Errorf("%d defect(s) found", defects)
	}

	printSuccess("%s is valid", path)
	printStats(g.NodeCount(), g.EdgeCount(), false)
	return nil
}
