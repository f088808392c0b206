package catalog

import "encoding/json"

func driveTools() []ToolDescriptor {
	return []ToolDescriptor{
		{
			Name: "drive_v1_file_list",
			Description: Text{
				EN: "List files in a folder of the authorized user's drive.",
				ZH: "获取用户云空间指定文件夹下的文件清单。",
			},
			Project: "drive",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"params": {
						"type": "object",
						"properties": {
							"folder_token": {"type": "string", "description": "Folder to list; root folder when omitted"},
							"page_size": {"type": "integer", "description": "Page size, max 200"},
							"page_token": {"type": "string", "description": "Pagination token from a previous call"},
							"order_by": {"type": "string", "enum": ["EditedTime", "CreatedTime"], "description": "Sort order"}
						}
					},
					` + useUATSchema + `
				}
			}`),
			AccessTokens: []TokenKind{TokenUser},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/drive/v1/files",
				SDKName:    "drive.v1.file.list",
			},
		},
		{
			Name: "drive_v1_permission_member_create",
			Description: Text{
				EN: "Grant a user or chat permission on a document, sheet or other drive object.",
				ZH: "为用户或群添加云文档协作者权限。",
			},
			Project: "drive",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "object",
						"properties": {
							"token": {"type": "string", "description": "Token of the drive object"}
						},
						"required": ["token"]
					},
					"params": {
						"type": "object",
						"properties": {
							"type": {"type": "string", "description": "Object type, e.g. doc, docx, sheet, file"}
						},
						"required": ["type"]
					},
					"data": {
						"type": "object",
						"properties": {
							"member_type": {"type": "string", "description": "Member id type, e.g. openid, email, openchat"},
							"member_id": {"type": "string", "description": "Member id"},
							"perm": {"type": "string", "enum": ["view", "edit", "full_access"], "description": "Permission to grant"}
						},
						"required": ["member_type", "member_id", "perm"]
					},
					` + useUATSchema + `
				},
				"required": ["path", "params", "data"]
			}`),
			AccessTokens: []TokenKind{TokenTenant, TokenUser},
			Execution: Declarative{
				HTTPMethod: "POST",
				Path:       "/open-apis/drive/v1/permissions/:token/members",
				SDKName:    "drive.v1.permissionMember.create",
			},
		},
		{
			Name: "drive_v1_media_upload_all",
			Description: Text{
				EN: "Upload a file to drive in a single request.",
				ZH: "一次性上传文件到云空间。",
			},
			Project: "drive",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"data": {
						"type": "object",
						"properties": {
							"file_name": {"type": "string", "description": "File name"},
							"parent_type": {"type": "string", "description": "Mount point type, e.g. explorer, ccm_import_open"},
							"parent_node": {"type": "string", "description": "Mount point token"},
							"size": {"type": "integer", "description": "File size in bytes"},
							"file": {"type": "string", "description": "File content, base64 encoded"}
						},
						"required": ["file_name", "parent_type", "size", "file"]
					},
					` + useUATSchema + `
				},
				"required": ["data"]
			}`),
			AccessTokens: []TokenKind{TokenTenant, TokenUser},
			Execution: Declarative{
				HTTPMethod: "POST",
				Path:       "/open-apis/drive/v1/medias/upload_all",
				SDKName:    "drive.v1.media.uploadAll",
			},
			SupportsFileUpload: true,
		},
		{
			Name: "drive_v1_media_download",
			Description: Text{
				EN: "Download a media file from drive.",
				ZH: "下载云空间中的素材文件。",
			},
			Project: "drive",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "object",
						"properties": {
							"file_token": {"type": "string", "description": "File token"}
						},
						"required": ["file_token"]
					},
					` + useUATSchema + `
				},
				"required": ["path"]
			}`),
			AccessTokens: []TokenKind{TokenTenant, TokenUser},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/drive/v1/medias/:file_token/download",
				SDKName:    "drive.v1.media.download",
			},
			SupportsFileDownload: true,
		},
	}
}
