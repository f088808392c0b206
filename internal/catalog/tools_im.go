package catalog

import "encoding/json"

func imTools() []ToolDescriptor {
	return []ToolDescriptor{
		{
			Name: "im_v1_message_create",
			Description: Text{
				EN: "Send a message to a chat or user. Supports text, post, image, interactive card and other message types.",
				ZH: "发送消息到指定会话或用户，支持文本、富文本、图片、卡片等消息类型。",
			},
			Project: "im",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"params": {
						"type": "object",
						"properties": {
							"receive_id_type": {"type": "string", "enum": ["open_id", "union_id", "user_id", "email", "chat_id"], "description": "Type of the receive_id"}
						},
						"required": ["receive_id_type"]
					},
					"data": {
						"type": "object",
						"properties": {
							"receive_id": {"type": "string", "description": "Receiver id matching receive_id_type"},
							"msg_type": {"type": "string", "description": "Message type, e.g. text, post, image, interactive"},
							"content": {"type": "string", "description": "Message content as a JSON string"}
						},
						"required": ["receive_id", "msg_type", "content"]
					},
					` + useUATSchema + `
				},
				"required": ["params", "data"]
			}`),
			AccessTokens: []TokenKind{TokenTenant, TokenUser},
			Execution: Declarative{
				HTTPMethod: "POST",
				Path:       "/open-apis/im/v1/messages",
				SDKName:    "im.v1.message.create",
			},
		},
		{
			Name: "im_v1_message_list",
			Description: Text{
				EN: "List messages in a chat, paginated, optionally bounded by a time range.",
				ZH: "获取会话的消息历史，支持分页和时间范围。",
			},
			Project: "im",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"params": {
						"type": "object",
						"properties": {
							"container_id_type": {"type": "string", "description": "Container type, currently only chat"},
							"container_id": {"type": "string", "description": "Chat id to read messages from"},
							"start_time": {"type": "string", "description": "Start of the time range, unix seconds"},
							"end_time": {"type": "string", "description": "End of the time range, unix seconds"},
							"page_size": {"type": "integer", "description": "Page size, max 50"},
							"page_token": {"type": "string", "description": "Pagination token from a previous call"}
						},
						"required": ["container_id_type", "container_id"]
					},
					` + useUATSchema + `
				},
				"required": ["params"]
			}`),
			AccessTokens: []TokenKind{TokenTenant, TokenUser},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/im/v1/messages",
				SDKName:    "im.v1.message.list",
			},
		},
		{
			Name: "im_v1_chat_create",
			Description: Text{
				EN: "Create a new group chat and optionally invite initial members.",
				ZH: "创建群聊，可同时拉入初始成员。",
			},
			Project: "im",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"data": {
						"type": "object",
						"properties": {
							"name": {"type": "string", "description": "Group chat name"},
							"description": {"type": "string", "description": "Group chat description"},
							"user_id_list": {"type": "array", "items": {"type": "string"}, "description": "Initial member ids"}
						}
					},
					"params": {
						"type": "object",
						"properties": {
							"user_id_type": {"type": "string", "enum": ["open_id", "union_id", "user_id"], "description": "Type of ids in user_id_list"}
						}
					},
					` + useUATSchema + `
				}
			}`),
			AccessTokens: []TokenKind{TokenTenant, TokenUser},
			Execution: Declarative{
				HTTPMethod: "POST",
				Path:       "/open-apis/im/v1/chats",
				SDKName:    "im.v1.chat.create",
			},
		},
		{
			Name: "im_v1_chat_list",
			Description: Text{
				EN: "List the chats the app or authorized user has joined.",
				ZH: "获取应用或用户所在的群列表。",
			},
			Project: "im",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"params": {
						"type": "object",
						"properties": {
							"page_size": {"type": "integer", "description": "Page size, max 100"},
							"page_token": {"type": "string", "description": "Pagination token from a previous call"}
						}
					},
					` + useUATSchema + `
				}
			}`),
			AccessTokens: []TokenKind{TokenTenant, TokenUser},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/im/v1/chats",
				SDKName:    "im.v1.chat.list",
			},
		},
		{
			Name: "im_v1_chat_search",
			Description: Text{
				EN: "Search visible group chats by keyword on behalf of the authorized user.",
				ZH: "以用户身份按关键词搜索对其可见的群聊。",
			},
			Project: "im",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"params": {
						"type": "object",
						"properties": {
							"query": {"type": "string", "description": "Search keyword"},
							"page_size": {"type": "integer", "description": "Page size, max 100"},
							"page_token": {"type": "string", "description": "Pagination token from a previous call"}
						}
					},
					` + useUATSchema + `
				}
			}`),
			AccessTokens: []TokenKind{TokenUser},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/im/v1/chats/search",
				SDKName:    "im.v1.chat.search",
			},
		},
		{
			Name: "im_v1_chat_members_get",
			Description: Text{
				EN: "List the members of a group chat.",
				ZH: "获取群成员列表。",
			},
			Project: "im",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "object",
						"properties": {
							"chat_id": {"type": "string", "description": "Chat id"}
						},
						"required": ["chat_id"]
					},
					"params": {
						"type": "object",
						"properties": {
							"member_id_type": {"type": "string", "enum": ["open_id", "union_id", "user_id"], "description": "Type of member ids in the response"},
							"page_size": {"type": "integer", "description": "Page size, max 100"},
							"page_token": {"type": "string", "description": "Pagination token from a previous call"}
						}
					},
					` + useUATSchema + `
				},
				"required": ["path"]
			}`),
			AccessTokens: []TokenKind{TokenTenant, TokenUser},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/im/v1/chats/:chat_id/members",
				SDKName:    "im.v1.chatMembers.get",
			},
		},
	}
}
