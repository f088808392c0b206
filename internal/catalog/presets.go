package catalog

// PresetPrefix is the reserved prefix that distinguishes preset
// identifiers from tool names in allow-lists.
const PresetPrefix = "preset."

// Preset identifiers accepted in --tools lists.
const (
	PresetDefault  = "preset.default"
	PresetLight    = "preset.light"
	PresetIM       = "preset.im.default"
	PresetMail     = "preset.mail.default"
	PresetDoc      = "preset.doc.default"
	PresetCalendar = "preset.calendar.default"
	PresetBase     = "preset.base.default"
)

// presets maps each preset identifier to its ordered member tool names.
// Member order matters only for documentation; filtering always follows
// catalog order.
var presets = map[string][]string{
	PresetLight: {
		"im_v1_message_create",
		"im_v1_chat_list",
		"docx_v1_document_raw_content_get",
		"docx_builtin_search",
	},
	PresetDefault: {
		"im_v1_message_create",
		"im_v1_message_list",
		"im_v1_chat_list",
		"im_v1_chat_search",
		"im_v1_chat_members_get",
		"docx_v1_document_raw_content_get",
		"docx_builtin_search",
		"docx_builtin_import",
		"drive_v1_permission_member_create",
		"wiki_v2_space_get_node",
		"wiki_v1_node_search",
		"contact_v3_user_batch_get_id",
	},
	PresetIM: {
		"im_v1_message_create",
		"im_v1_message_list",
		"im_v1_chat_create",
		"im_v1_chat_list",
		"im_v1_chat_search",
		"im_v1_chat_members_get",
	},
	PresetMail: {
		"mail_v1_user_mailbox_message_list",
		"mail_v1_user_mailbox_message_get",
		"mail_v1_user_mailbox_message_send",
		"mail_v1_user_mailbox_folder_list",
		"mail_v1_user_mailbox_attachment_download_url",
	},
	PresetDoc: {
		"docx_v1_document_create",
		"docx_v1_document_raw_content_get",
		"docx_builtin_search",
		"docx_builtin_import",
		"drive_v1_file_list",
		"drive_v1_media_upload_all",
		"drive_v1_media_download",
		"wiki_v2_space_get_node",
		"wiki_v1_node_search",
	},
	PresetCalendar: {
		"calendar_v4_calendar_list",
		"calendar_v4_calendar_event_create",
		"calendar_v4_calendar_event_list",
	},
	PresetBase: {
		"contact_v3_user_batch_get_id",
		"contact_v3_department_children",
	},
}

// DefaultToolNames returns the member list of the default preset.
func DefaultToolNames() []string {
	return append([]string(nil), presets[PresetDefault]...)
}

// PresetNames returns the known preset identifiers.
func PresetNames() []string {
	return []string{
		PresetDefault, PresetLight, PresetIM, PresetMail,
		PresetDoc, PresetCalendar, PresetBase,
	}
}

// ExpandPresets flattens a mixed list of tool names and preset
// identifiers into an ordered list of tool names. Presets expand to
// their member lists in place; unknown preset identifiers pass through
// unexpanded so they can be rejected later as tool names. An empty
// input defaults to the default preset. The function is pure.
func ExpandPresets(tokens []string) []string {
	if len(tokens) == 0 {
		return DefaultToolNames()
	}
	expanded := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if members, ok := presets[token]; ok {
			expanded = append(expanded, members...)
			continue
		}
		expanded = append(expanded, token)
	}
	return expanded
}
