package catalog

import "encoding/json"

func calendarTools() []ToolDescriptor {
	return []ToolDescriptor{
		{
			Name: "calendar_v4_calendar_list",
			Description: Text{
				EN: "List the calendars visible to the app or authorized user.",
				ZH: "获取应用或用户可见的日历列表。",
			},
			Project: "calendar",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"params": {
						"type": "object",
						"properties": {
							"page_size": {"type": "integer", "description": "Page size, max 1000"},
							"page_token": {"type": "string", "description": "Pagination token from a previous call"}
						}
					},
					` + useUATSchema + `
				}
			}`),
			AccessTokens: []TokenKind{TokenTenant, TokenUser},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/calendar/v4/calendars",
				SDKName:    "calendar.v4.calendar.list",
			},
		},
		{
			Name: "calendar_v4_calendar_event_create",
			Description: Text{
				EN: "Create an event on a calendar.",
				ZH: "在指定日历上创建日程。",
			},
			Project: "calendar",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "object",
						"properties": {
							"calendar_id": {"type": "string", "description": "Calendar id"}
						},
						"required": ["calendar_id"]
					},
					"data": {
						"type": "object",
						"properties": {
							"summary": {"type": "string", "description": "Event title"},
							"description": {"type": "string", "description": "Event description"},
							"start_time": {"type": "object", "description": "Start time, {timestamp} or {date}"},
							"end_time": {"type": "object", "description": "End time, {timestamp} or {date}"}
						},
						"required": ["summary", "start_time", "end_time"]
					},
					` + useUATSchema + `
				},
				"required": ["path", "data"]
			}`),
			AccessTokens: []TokenKind{TokenTenant, TokenUser},
			Execution: Declarative{
				HTTPMethod: "POST",
				Path:       "/open-apis/calendar/v4/calendars/:calendar_id/events",
				SDKName:    "calendar.v4.calendarEvent.create",
			},
		},
		{
			Name: "calendar_v4_calendar_event_list",
			Description: Text{
				EN: "List events on a calendar within an optional time range.",
				ZH: "获取日历下的日程列表，可限定时间范围。",
			},
			Project: "calendar",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "object",
						"properties": {
							"calendar_id": {"type": "string", "description": "Calendar id"}
						},
						"required": ["calendar_id"]
					},
					"params": {
						"type": "object",
						"properties": {
							"start_time": {"type": "string", "description": "Range start, unix seconds"},
							"end_time": {"type": "string", "description": "Range end, unix seconds"},
							"page_size": {"type": "integer", "description": "Page size, max 1000"},
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
				Path:       "/open-apis/calendar/v4/calendars/:calendar_id/events",
				SDKName:    "calendar.v4.calendarEvent.list",
			},
		},
	}
}
