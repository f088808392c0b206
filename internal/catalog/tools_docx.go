package catalog

import (
	"context"
	"encoding/json"
	"fmt"
)

func docxTools() []ToolDescriptor {
	return []ToolDescriptor{
		{
			Name: "docx_v1_document_create",
			Description: Text{
				EN: "Create an empty document, optionally inside a folder.",
				ZH: "创建空白文档，可指定所在文件夹。",
			},
			Project: "docx",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"data": {
						"type": "object",
						"properties": {
							"title": {"type": "string", "description": "Document title"},
							"folder_token": {"type": "string", "description": "Folder to create the document in"}
						}
					},
					` + useUATSchema + `
				}
			}`),
			AccessTokens: []TokenKind{TokenTenant, TokenUser},
			Execution: Declarative{
				HTTPMethod: "POST",
				Path:       "/open-apis/docx/v1/documents",
				SDKName:    "docx.v1.document.create",
			},
		},
		{
			Name: "docx_v1_document_raw_content_get",
			Description: Text{
				EN: "Read the plain text content of a document.",
				ZH: "获取文档的纯文本内容。",
			},
			Project: "docx",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "object",
						"properties": {
							"document_id": {"type": "string", "description": "Document id"}
						},
						"required": ["document_id"]
					},
					"params": {
						"type": "object",
						"properties": {
							"lang": {"type": "integer", "description": "Language for mention rendering, 0 for default"}
						}
					},
					` + useUATSchema + `
				},
				"required": ["path"]
			}`),
			AccessTokens: []TokenKind{TokenTenant, TokenUser},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/docx/v1/documents/:document_id/raw_content",
				SDKName:    "docx.v1.document.rawContent",
			},
		},
		{
			Name: "docx_builtin_search",
			Description: Text{
				EN: "Search documents visible to the authorized user by keyword, aggregating result pages.",
				ZH: "以用户身份按关键词搜索可见文档，自动聚合分页结果。",
			},
			Project: "docx",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"data": {
						"type": "object",
						"properties": {
							"search_key": {"type": "string", "description": "Search keyword"},
							"count": {"type": "integer", "description": "Maximum number of results to return (default 20, max 200)"},
							"docs_types": {"type": "array", "items": {"type": "string"}, "description": "Document types to search, e.g. doc, docx, sheet, wiki"}
						},
						"required": ["search_key"]
					},
					` + useUATSchema + `
				},
				"required": ["data"]
			}`),
			AccessTokens: []TokenKind{TokenUser},
			Execution:    Custom{Run: runDocxSearch},
		},
		{
			Name: "docx_builtin_import",
			Description: Text{
				EN: "Import a previously uploaded file as a new document and report the import result.",
				ZH: "将已上传的文件导入为新文档并返回导入结果。",
			},
			Project: "docx",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"data": {
						"type": "object",
						"properties": {
							"file_token": {"type": "string", "description": "Token of the uploaded source file"},
							"file_name": {"type": "string", "description": "Name for the imported document"},
							"type": {"type": "string", "description": "Target document type (default docx)"},
							"mount_key": {"type": "string", "description": "Folder token to mount the imported document under"}
						},
						"required": ["file_token", "file_name"]
					},
					` + useUATSchema + `
				},
				"required": ["data"]
			}`),
			AccessTokens:       []TokenKind{TokenTenant, TokenUser},
			Execution:          Custom{Run: runDocxImport},
			SupportsFileUpload: true,
		},
	}
}

const docxSearchPath = "/open-apis/suite/docs-api/search/object"

// runDocxSearch aggregates paginated search results into a single
// response. The underlying endpoint caps a page at 50 entities, so one
// logical search may take several remote calls.
func runDocxSearch(ctx context.Context, client Caller, params map[string]any, auth Authorization) (json.RawMessage, error) {
	data, _ := params["data"].(map[string]any)
	if data == nil {
		return nil, fmt.Errorf("data object is required")
	}
	searchKey, _ := data["search_key"].(string)
	if searchKey == "" {
		return nil, fmt.Errorf("data.search_key is required")
	}

	count := 20
	if v, ok := data["count"].(float64); ok && v > 0 {
		count = int(v)
	}
	if count > 200 {
		count = 200
	}

	var entities []json.RawMessage
	offset := 0
	for len(entities) < count {
		pageSize := count - len(entities)
		if pageSize > 50 {
			pageSize = 50
		}
		body := map[string]any{
			"search_key": searchKey,
			"count":      pageSize,
			"offset":     offset,
		}
		if types, ok := data["docs_types"]; ok {
			body["docs_types"] = types
		}

		raw, err := client.Do(ctx, "POST", docxSearchPath, nil, body, auth)
		if err != nil {
			return nil, err
		}

		var page struct {
			Entities []json.RawMessage `json:"docs_entities"`
			HasMore  bool              `json:"has_more"`
		}
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("failed to decode search page: %w", err)
		}
		entities = append(entities, page.Entities...)
		if !page.HasMore || len(page.Entities) == 0 {
			break
		}
		offset += len(page.Entities)
	}

	return json.Marshal(map[string]any{
		"total":         len(entities),
		"docs_entities": entities,
	})
}

// runDocxImport creates an import task for an uploaded file and fetches
// the task result once, so callers get the ticket and any immediately
// available outcome in one tool call.
func runDocxImport(ctx context.Context, client Caller, params map[string]any, auth Authorization) (json.RawMessage, error) {
	data, _ := params["data"].(map[string]any)
	if data == nil {
		return nil, fmt.Errorf("data object is required")
	}
	fileToken, _ := data["file_token"].(string)
	fileName, _ := data["file_name"].(string)
	if fileToken == "" || fileName == "" {
		return nil, fmt.Errorf("data.file_token and data.file_name are required")
	}
	docType, _ := data["type"].(string)
	if docType == "" {
		docType = "docx"
	}

	body := map[string]any{
		"file_extension": "md",
		"file_token":     fileToken,
		"file_name":      fileName,
		"type":           docType,
	}
	if mountKey, ok := data["mount_key"].(string); ok && mountKey != "" {
		body["point"] = map[string]any{
			"mount_type": 1,
			"mount_key":  mountKey,
		}
	}

	created, err := client.Do(ctx, "POST", "/open-apis/drive/v1/import_tasks", nil, body, auth)
	if err != nil {
		return nil, err
	}

	var task struct {
		Ticket string `json:"ticket"`
	}
	if err := json.Unmarshal(created, &task); err != nil || task.Ticket == "" {
		// No ticket means nothing to poll; surface the raw response.
		return created, nil
	}

	result, err := client.Do(ctx, "GET", "/open-apis/drive/v1/import_tasks/"+task.Ticket, nil, nil, auth)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]any{
		"ticket": task.Ticket,
		"result": json.RawMessage(result),
	})
}
