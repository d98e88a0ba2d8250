package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/diagramlab/stencil/pkg/diagram"
)

// browseCommand creates the browse command for interactive inspection.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [document.json]",
		Short: "Browse a document's nodes interactively",
		Long: `Browse a document's nodes interactively.

The browse command opens a terminal UI listing every node with its shape,
position, size, port count, and edge degrees. Use the arrow keys to move
through the list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, dropped, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			if dropped > 0 {
				printWarning("%d invalid edge(s) dropped on load", dropped)
			}
			if g.NodeCount() == 0 {
				printInfo("Document has no nodes")
				return nil
			}

			model := newNodeListModel(g)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// nodeListModel is the bubbletea model for the node browser.
type nodeListModel struct {
	graph  *diagram.Graph
	nodes  []*diagram.Node
	cursor int
	height int
	offset int
}

func newNodeListModel(g *diagram.Graph) nodeListModel {
	return nodeListModel{
		graph:  g,
		nodes:  g.Nodes(),
		height: 15,
	}
}

func (m nodeListModel) Init() tea.Cmd {
	return nil
}

func (m nodeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.nodes)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m nodeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Nodes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.nodes) {
		end = len(m.nodes)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		n := m.nodes[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		label := n.ID
		if text, ok := n.Attrs["text"].(string); ok && text != "" {
			label = text
		}

		rows = append(rows, []string{
			cursor,
			label,
			string(n.Type),
			fmt.Sprintf("(%g, %g)", n.Position.X, n.Position.Y),
			fmt.Sprintf("%gx%g", n.Size.Width, n.Size.Height),
			fmt.Sprintf("%d", len(n.Ports)),
			fmt.Sprintf("%d/%d", m.graph.InDegree(n.ID), m.graph.OutDegree(n.ID)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Shape", "Position", "Size", "Ports", "In/Out").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.nodes))))

	return b.String()
}
