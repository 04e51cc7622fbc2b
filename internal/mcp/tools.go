package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listPillarsTool defines the list_pillars MCP tool.
var listPillarsTool = mcp.NewTool("list_pillars",
	mcp.WithDescription("List every pillar of the financial literacy curriculum in reading order."),
)

// getPillarTool defines the get_pillar MCP tool.
var getPillarTool = mcp.NewTool("get_pillar",
	mcp.WithDescription("Get the full article for one pillar: description, sections, key stats and related links."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("Pillar id (1-based position in the curriculum)"),
	),
)

// nextPillarTool defines the next_pillar MCP tool.
var nextPillarTool = mcp.NewTool("next_pillar",
	mcp.WithDescription("Get the pillar that comes immediately after the given one. Reports that there is none for the last pillar or an unknown id."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("Id of the pillar currently being read"),
	),
)

// previousPillarTool defines the previous_pillar MCP tool.
var previousPillarTool = mcp.NewTool("previous_pillar",
	mcp.WithDescription("Get the pillar that comes immediately before the given one. Reports that there is none for the first pillar or an unknown id."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("Id of the pillar currently being read"),
	),
)

// searchPillarsTool defines the search_pillars MCP tool.
var searchPillarsTool = mcp.NewTool("search_pillars",
	mcp.WithDescription("Find pillars whose title, description or section titles mention all query terms."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Keywords, e.g. \"credit score\""),
	),
)
