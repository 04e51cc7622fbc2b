package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/pillars/internal/catalog"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	var b strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			b.WriteString(tc.Text)
		}
	}
	return b.String()
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func TestToolDefinitions(t *testing.T) {
	// Verify tool names and required properties.
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_pillars", listPillarsTool, "list_pillars"},
		{"get_pillar", getPillarTool, "get_pillar"},
		{"next_pillar", nextPillarTool, "next_pillar"},
		{"previous_pillar", previousPillarTool, "previous_pillar"},
		{"search_pillars", searchPillarsTool, "search_pillars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := NewServer(catalog.Default())
	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
}

func TestHandleListPillars(t *testing.T) {
	srv := NewServer(catalog.Default())
	text := resultText(t, call(t, srv.handleListPillars, map[string]any{}))
	for _, p := range catalog.Default().All() {
		if !strings.Contains(text, p.Title) {
			t.Errorf("list missing %q", p.Title)
		}
	}
	if !strings.HasPrefix(text, "1. Budgeting Basics") {
		t.Errorf("unexpected first line: %q", text)
	}
}

func TestHandleGetPillar(t *testing.T) {
	srv := NewServer(catalog.Default())

	t.Run("found", func(t *testing.T) {
		result := call(t, srv.handleGetPillar, map[string]any{"id": float64(4)})
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := resultText(t, result)
		for _, want := range []string{"# Understanding Credit", "## What Makes Up a Score", "## Key Stats", "AnnualCreditReport.com"} {
			if !strings.Contains(text, want) {
				t.Errorf("article missing %q", want)
			}
		}
	})

	t.Run("unknown", func(t *testing.T) {
		result := call(t, srv.handleGetPillar, map[string]any{"id": float64(12)})
		if !result.IsError {
			t.Error("expected error for unknown id")
		}
	})

	t.Run("fractional", func(t *testing.T) {
		result := call(t, srv.handleGetPillar, map[string]any{"id": 1.5})
		if !result.IsError {
			t.Errorf("expected error for fractional id, got %q", resultText(t, result))
		}
	})

	t.Run("missing id", func(t *testing.T) {
		result := call(t, srv.handleGetPillar, map[string]any{})
		if !result.IsError {
			t.Error("expected error for missing id")
		}
	})
}

func TestHandleNextPrevious(t *testing.T) {
	srv := NewServer(catalog.Default())
	tests := []struct {
		name    string
		handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
		id      float64
		want    string
	}{
		{"next of 7", srv.handleNextPillar, 7, "8. Taxes & Wealth Building"},
		{"next of last", srv.handleNextPillar, 8, "There is no pillar after 8."},
		{"next of unknown", srv.handleNextPillar, 40, "There is no pillar after 40."},
		{"previous of 5", srv.handlePreviousPillar, 5, "4. Understanding Credit"},
		{"previous of first", srv.handlePreviousPillar, 1, "There is no pillar before 1."},
		{"next of fractional", srv.handleNextPillar, 7.9, "There is no pillar after 7.9."},
		{"previous of fractional", srv.handlePreviousPillar, 5.5, "There is no pillar before 5.5."},
		{"next of huge", srv.handleNextPillar, 1e20, "There is no pillar after 1e+20."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := call(t, tt.handler, map[string]any{"id": tt.id})
			if result.IsError {
				t.Fatalf("absent neighbour must not be a tool error: %v", result.Content)
			}
			if text := resultText(t, result); !strings.HasPrefix(text, tt.want) {
				t.Errorf("got %q, want prefix %q", text, tt.want)
			}
		})
	}
}

func TestHandleSearchPillars(t *testing.T) {
	srv := NewServer(catalog.Default())

	text := resultText(t, call(t, srv.handleSearchPillars, map[string]any{"query": "retirement"}))
	if !strings.Contains(text, "Retirement Planning") {
		t.Errorf("search result missing Retirement Planning: %q", text)
	}

	text = resultText(t, call(t, srv.handleSearchPillars, map[string]any{"query": "cryptocurrency"}))
	if !strings.HasPrefix(text, "No pillars match") {
		t.Errorf("expected no-match message, got %q", text)
	}

	if result := call(t, srv.handleSearchPillars, map[string]any{}); !result.IsError {
		t.Error("expected error for missing query")
	}
}
