// package formatter renders the tool catalog for terminal listing (styled table, plain text, JSON)
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/desertthunder/spotify-mcp/internal/shared"
	"github.com/desertthunder/spotify-mcp/internal/ui"
	"github.com/mark3labs/mcp-go/server"
)

// Tool is one row of the rendered catalog.
type Tool struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Args        []string `json:"args"`
}

// FromServerTools flattens registered tools into catalog rows, preserving
// registration order. Required arguments are marked with a trailing star.
func FromServerTools(tools []server.ServerTool) []Tool {
	rows := make([]Tool, 0, len(tools))

	for _, st := range tools {
		required := make(map[string]bool, len(st.Tool.InputSchema.Required))
		for _, name := range st.Tool.InputSchema.Required {
			required[name] = true
		}

		args := make([]string, 0, len(st.Tool.InputSchema.Properties))
		for name := range st.Tool.InputSchema.Properties {
			if required[name] {
				name += "*"
			}
			args = append(args, name)
		}
		sort.Strings(args)

		rows = append(rows, Tool{
			Name:        st.Tool.Name,
			Description: st.Tool.Description,
			Args:        args,
		})
	}

	return rows
}

// ToJSON renders rows as indented JSON.
func ToJSON(rows []Tool) ([]byte, error) {
	return shared.MarshalJSON(rows, true)
}

// RenderPlain renders one tool per line without styling.
func RenderPlain(rows []Tool) string {
	var b strings.Builder

	for _, row := range rows {
		fmt.Fprintf(&b, "%s\t%s\n", row.Name, row.Description)
		if len(row.Args) > 0 {
			fmt.Fprintf(&b, "\targs: %s\n", strings.Join(row.Args, ", "))
		}
	}

	return b.String()
}

// RenderTable renders an aligned, styled listing.
func RenderTable(rows []Tool) string {
	width := 0
	for _, row := range rows {
		if len(row.Name) > width {
			width = len(row.Name)
		}
	}

	var b strings.Builder
	b.WriteString(ui.Title(fmt.Sprintf("Tool catalog (%d tools)", len(rows))))
	b.WriteString("\n")

	for _, row := range rows {
		fmt.Fprintf(&b, "%s  %s\n", ui.OK(fmt.Sprintf("%-*s", width, row.Name)), row.Description)
		if len(row.Args) > 0 {
			fmt.Fprintf(&b, "%s  %s\n", strings.Repeat(" ", width), ui.Help("args: "+strings.Join(row.Args, ", ")))
		}
	}

	return b.String()
}
