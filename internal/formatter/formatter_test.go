package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/desertthunder/spotify-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func fakeTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: mcp.NewTool("first_tool",
			mcp.WithDescription("Does the first thing."),
			mcp.WithString("token", mcp.Required(), mcp.Description("Bearer token.")),
			mcp.WithString("market", mcp.Description("Market code.")),
		)},
		{Tool: mcp.NewTool("second_tool",
			mcp.WithDescription("Does the second thing."),
		)},
	}
}

func TestFromServerTools(t *testing.T) {
	rows := FromServerTools(fakeTools())

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	t.Run("preserves registration order", func(t *testing.T) {
		if rows[0].Name != "first_tool" || rows[1].Name != "second_tool" {
			t.Errorf("unexpected row order: %s, %s", rows[0].Name, rows[1].Name)
		}
	})

	t.Run("marks required args with a star", func(t *testing.T) {
		want := []string{"market", "token*"}
		if len(rows[0].Args) != len(want) {
			t.Fatalf("expected args %v, got %v", want, rows[0].Args)
		}
		for i, arg := range want {
			if rows[0].Args[i] != arg {
				t.Errorf("arg %d: expected %q, got %q", i, arg, rows[0].Args[i])
			}
		}
	})

	t.Run("handles tools without args", func(t *testing.T) {
		if len(rows[1].Args) != 0 {
			t.Errorf("expected no args, got %v", rows[1].Args)
		}
	})

	t.Run("covers the full catalog", func(t *testing.T) {
		catalog := FromServerTools(tools.New().Tools())
		if len(catalog) != 63 {
			t.Errorf("expected 63 rows, got %d", len(catalog))
		}
		for _, row := range catalog {
			found := false
			for _, arg := range row.Args {
				if arg == "token*" {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("tool %s is missing the token* arg", row.Name)
			}
		}
	})
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(FromServerTools(fakeTools()))
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var rows []Tool
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(rows) != 2 || rows[0].Name != "first_tool" {
		t.Errorf("unexpected decoded rows: %+v", rows)
	}

	if !strings.Contains(string(data), "\n") {
		t.Error("expected indented output")
	}
}

func TestRenderPlain(t *testing.T) {
	out := RenderPlain(FromServerTools(fakeTools()))

	if !strings.Contains(out, "first_tool") {
		t.Error("output missing tool name")
	}

	if !strings.Contains(out, "Does the first thing.") {
		t.Error("output missing tool description")
	}

	if !strings.Contains(out, "args: market, token*") {
		t.Error("output missing arg listing")
	}

	if strings.Contains(strings.SplitN(out, "second_tool", 2)[1], "args:") {
		t.Error("tool without args should not print an arg line")
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(FromServerTools(fakeTools()))

	if !strings.Contains(out, "Tool catalog (2 tools)") {
		t.Error("output missing header")
	}

	if !strings.Contains(out, "first_tool") || !strings.Contains(out, "second_tool") {
		t.Error("output missing tool names")
	}

	if !strings.Contains(out, "args: market, token*") {
		t.Error("output missing arg listing")
	}
}
