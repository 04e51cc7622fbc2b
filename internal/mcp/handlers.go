package mcp

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/pillars/internal/catalog"
)

// handleListPillars returns a one-line summary of every pillar.
func (s *Server) handleListPillars(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatPillarList(s.catalog.All())), nil
}

// handleGetPillar returns the full article for a pillar.
func (s *Server) handleGetPillar(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireFloat("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	p, ok := lookup(raw, s.catalog.Get)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("No pillar with id %s. Use list_pillars to see valid ids.", formatID(raw))), nil
	}
	return mcp.NewToolResultText(formatPillar(p)), nil
}

// handleNextPillar returns the successor of a pillar. An unknown id and the
// last pillar get the same answer.
func (s *Server) handleNextPillar(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireFloat("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	p, ok := lookup(raw, s.catalog.Next)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("There is no pillar after %s.", formatID(raw))), nil
	}
	return mcp.NewToolResultText(formatSummary(p)), nil
}

// handlePreviousPillar returns the predecessor of a pillar.
func (s *Server) handlePreviousPillar(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireFloat("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	p, ok := lookup(raw, s.catalog.Previous)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("There is no pillar before %s.", formatID(raw))), nil
	}
	return mcp.NewToolResultText(formatSummary(p)), nil
}

// handleSearchPillars runs a keyword search over the catalog.
func (s *Server) handleSearchPillars(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	results := s.catalog.Search(query)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No pillars match %q.", query)), nil
	}
	return mcp.NewToolResultText(formatPillarList(results)), nil
}

// maxExactID bounds ids to integers a float64 represents exactly.
const maxExactID = 1 << 53

// lookup resolves a JSON number id through fn. Fractional, non-finite and
// out-of-range values are treated like any other id the catalog lacks.
func lookup(raw float64, fn func(int) (catalog.Pillar, bool)) (catalog.Pillar, bool) {
	if raw != math.Trunc(raw) || math.Abs(raw) > maxExactID {
		return catalog.Pillar{}, false
	}
	return fn(int(raw))
}

func formatID(raw float64) string {
	return strconv.FormatFloat(raw, 'g', -1, 64)
}

func formatSummary(p catalog.Pillar) string {
	return fmt.Sprintf("%d. %s [%s] (%s)\n   %s", p.ID, p.Title, p.Difficulty.Label(), p.Path, p.Description)
}

func formatPillarList(pillars []catalog.Pillar) string {
	var b strings.Builder
	for i, p := range pillars {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatSummary(p))
	}
	return b.String()
}

// formatPillar renders the full article as markdown.
func formatPillar(p catalog.Pillar) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	fmt.Fprintf(&b, "%s\n\n", p.Description)
	fmt.Fprintf(&b, "- Difficulty: %s\n", p.Difficulty.Label())
	if p.ReadMinutes > 0 {
		fmt.Fprintf(&b, "- Reading time: %d min\n", p.ReadMinutes)
	}
	if p.Prerequisite != nil {
		fmt.Fprintf(&b, "- Recommended first: pillar %d\n", *p.Prerequisite)
	}

	for _, sec := range p.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", sec.Title, sec.Body)
	}

	if len(p.Stats) > 0 {
		b.WriteString("\n## Key Stats\n\n")
		for _, st := range p.Stats {
			fmt.Fprintf(&b, "- %s: %s\n", st.Label, st.Value)
		}
	}
	if len(p.Related) > 0 {
		b.WriteString("\n## Related\n\n")
		for _, l := range p.Related {
			fmt.Fprintf(&b, "- [%s](%s)\n", l.Title, l.URL)
		}
	}
	return b.String()
}
