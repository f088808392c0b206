package catalog

import "encoding/json"

func contactTools() []ToolDescriptor {
	return []ToolDescriptor{
		{
			Name: "contact_v3_user_batch_get_id",
			Description: Text{
				EN: "Resolve user ids from email addresses or phone numbers.",
				ZH: "通过邮箱或手机号批量查询用户 ID。",
			},
			Project: "contact",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"params": {
						"type": "object",
						"properties": {
							"user_id_type": {"type": "string", "enum": ["open_id", "union_id", "user_id"], "description": "Type of ids in the response"}
						}
					},
					"data": {
						"type": "object",
						"properties": {
							"emails": {"type": "array", "items": {"type": "string"}, "description": "Email addresses to resolve"},
							"mobiles": {"type": "array", "items": {"type": "string"}, "description": "Phone numbers to resolve"}
						}
					},
					` + useUATSchema + `
				},
				"required": ["data"]
			}`),
			AccessTokens: []TokenKind{TokenTenant},
			Execution: Declarative{
				HTTPMethod: "POST",
				Path:       "/open-apis/contact/v3/users/batch_get_id",
				SDKName:    "contact.v3.user.batchGetId",
			},
		},
		{
			Name: "contact_v3_department_children",
			Description: Text{
				EN: "List the child departments of a department.",
				ZH: "获取部门的子部门列表。",
			},
			Project: "contact",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "object",
						"properties": {
							"department_id": {"type": "string", "description": "Parent department id"}
						},
						"required": ["department_id"]
					},
					"params": {
						"type": "object",
						"properties": {
							"department_id_type": {"type": "string", "description": "Type of department ids"},
							"fetch_child": {"type": "boolean", "description": "Recurse into all descendants"},
							"page_size": {"type": "integer", "description": "Page size, max 50"},
							"page_token": {"type": "string", "description": "Pagination token from a previous call"}
						}
					},
					` + useUATSchema + `
				},
				"required": ["path"]
			}`),
			AccessTokens: []TokenKind{TokenTenant},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/contact/v3/departments/:department_id/children",
				SDKName:    "contact.v3.department.children",
			},
		},
	}
}

func wikiTools() []ToolDescriptor {
	return []ToolDescriptor{
		{
			Name: "wiki_v2_space_get_node",
			Description: Text{
				EN: "Get a wiki node by its token, including the document it points to.",
				ZH: "通过节点 token 获取知识库节点信息及其指向的文档。",
			},
			Project: "wiki",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"params": {
						"type": "object",
						"properties": {
							"token": {"type": "string", "description": "Wiki node token"},
							"obj_type": {"type": "string", "description": "Object type of the token, default wiki"}
						},
						"required": ["token"]
					},
					` + useUATSchema + `
				},
				"required": ["params"]
			}`),
			AccessTokens: []TokenKind{TokenTenant, TokenUser},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/wiki/v2/spaces/get_node",
				SDKName:    "wiki.v2.space.getNode",
			},
		},
		{
			Name: "wiki_v1_node_search",
			Description: Text{
				EN: "Search wiki nodes visible to the authorized user by keyword.",
				ZH: "以用户身份按关键词搜索可见的知识库节点。",
			},
			Project: "wiki",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"data": {
						"type": "object",
						"properties": {
							"query": {"type": "string", "description": "Search keyword"},
							"space_id": {"type": "string", "description": "Restrict search to one wiki space"},
							"page_size": {"type": "integer", "description": "Page size, max 50"},
							"page_token": {"type": "string", "description": "Pagination token from a previous call"}
						},
						"required": ["query"]
					},
					` + useUATSchema + `
				},
				"required": ["data"]
			}`),
			AccessTokens: []TokenKind{TokenUser},
			Execution: Declarative{
				HTTPMethod: "POST",
				Path:       "/open-apis/wiki/v1/nodes/search",
				SDKName:    "wiki.v1.node.search",
			},
		},
	}
}
