package mcp

import "github.com/mark3labs/mcp-go/mcp"

// matchAxisTool defines the match_axis MCP tool.
var matchAxisTool = mcp.NewTool("match_axis",
	mcp.WithDescription("Find the section whose heading is equivalent to an axis label. Labels are compared after removing whitespace and unifying Alef and Yeh variants."),
	mcp.WithString("label",
		mcp.Required(),
		mcp.Description("Axis label as shown in the intro list"),
	),
)

// listSectionsTool defines the list_sections MCP tool.
var listSectionsTool = mcp.NewTool("list_sections",
	mcp.WithDescription("List every section of the page with its id, category, heading and canonical heading, followed by the intro axes and the section each one navigates to."),
)

// filterCategoryTool defines the filter_category MCP tool.
var filterCategoryTool = mcp.NewTool("filter_category",
	mcp.WithDescription("Show the filtered view of a category: its title and cards with their reveal delays."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description("Category value as used by the category filter"),
	),
)
