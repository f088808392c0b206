package catalog

// allTools returns every built-in tool descriptor in catalog order.
// Grouping follows the OpenAPI project the tools belong to.
func allTools() []ToolDescriptor {
	var tools []ToolDescriptor
	tools = append(tools, imTools()...)
	tools = append(tools, mailTools()...)
	tools = append(tools, docxTools()...)
	tools = append(tools, driveTools()...)
	tools = append(tools, calendarTools()...)
	tools = append(tools, contactTools()...)
	tools = append(tools, wikiTools()...)
	return tools
}

// useUATSchema is the common schema fragment for the useUAT switch that
// selects user-level authorization on a per-call basis.
const useUATSchema = `"useUAT":{"type":"boolean","description":"Use user access token instead of tenant access token for this call"}`
