package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/lark-mcp/internal/catalog"
)

func TestPrintToolListEmitsSingleDocumentWithTotal(t *testing.T) {
	selected := catalog.Filter(catalog.Default(), catalog.FilterCriteria{
		AllowTools: catalog.ExpandPresets(nil),
	})
	require.NotEmpty(t, selected)

	var buf bytes.Buffer
	require.NoError(t, printToolList(&buf, selected, catalog.LocaleEN, catalog.CaseSnake, false))

	var doc struct {
		Total int `json:"total"`
		Tools []struct {
			Name         string          `json:"name"`
			Project      string          `json:"project"`
			Description  string          `json:"description"`
			AccessTokens []string        `json:"access_tokens"`
			Schema       json.RawMessage `json:"schema"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, len(selected), doc.Total)
	require.Len(t, doc.Tools, doc.Total)
	for _, tool := range doc.Tools {
		assert.NotEmpty(t, tool.Name)
		assert.NotEmpty(t, tool.Description)
		assert.NotEmpty(t, tool.AccessTokens)
		assert.Empty(t, tool.Schema, "schemas belong to verbose output only")
	}
}

func TestPrintToolListVerboseIncludesSchemas(t *testing.T) {
	selected := catalog.Filter(catalog.Default(), catalog.FilterCriteria{
		AllowTools: []string{"im_v1_message_create"},
	})
	require.Len(t, selected, 1)

	var buf bytes.Buffer
	require.NoError(t, printToolList(&buf, selected, catalog.LocaleEN, catalog.CaseCamel, true))

	var doc toolList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, 1, doc.Total)
	assert.Equal(t, "imV1MessageCreate", doc.Tools[0].Name)
	assert.True(t, json.Valid(doc.Tools[0].Schema))
}

func TestPrintToolListEmptySelection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printToolList(&buf, nil, catalog.LocaleEN, catalog.CaseSnake, false))

	var doc toolList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Zero(t, doc.Total)
	assert.Empty(t, doc.Tools)
}
