package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// inspectCommand creates the inspect command for summarizing a document.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [document.json]",
		Short: "Summarize a diagram document",
		Long: `Summarize a diagram document.

The inspect command loads a document and prints its structural summary:
node and edge counts, root nodes (no incoming edges), whether the directed
graph contains a cycle, and the bounding box enclosing all node extents.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0])
		},
	}
	return cmd
}

func (c *CLI) runInspect(path string) error {
	g, _, dropped, err := loadGraph(path)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(path))
	printStats(g.NodeCount(), g.EdgeCount(), false)
	if dropped > 0 {
		printWarning("%d invalid edge(s) dropped on load", dropped)
	}

	roots := g.Roots()
	ids := make([]string, len(roots))
	for i, n := range roots {
		ids[i] = n.ID
	}
	printKeyValue("roots", fmt.Sprintf("%d", len(roots)))
	if len(ids) > 0 {
		printKeyValue("", strings.Join(ids, ", "))
	}

	cycle := "no"
	if g.HasCycle() {
		cycle = "yes"
	}
	printKeyValue("cyclic", cycle)

	if bounds, ok := g.Bounds(); ok {
		printKeyValue("bounds", fmt.Sprintf("(%g, %g) %gx%g", bounds.X, bounds.Y, bounds.Width, bounds.Height))
	} else {
		printKeyValue("bounds", "empty")
	}

	return nil
}
