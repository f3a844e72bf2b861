package analyzer_test

import (
	"encoding/json"
	"testing"

	"github.com/finners68/textract-proxy/pkg/analyzer"

	"github.com/stretchr/testify/require"
)

func TestResultDecodesBlockShape(t *testing.T) {
	data := `{
		"Blocks": [
			{
				"Id": "k-1",
				"BlockType": "KEY_VALUE_SET",
				"EntityTypes": ["KEY"],
				"Relationships": [
					{"Type": "CHILD", "Ids": ["w-1"]},
					{"Type": "VALUE", "Ids": ["v-1"]}
				]
			},
			{"Id": "w-1", "BlockType": "WORD", "Text": "Total"}
		]
	}`

	var result analyzer.Result
	require.NoError(t, json.Unmarshal([]byte(data), &result))

	require.Len(t, result.Blocks, 2)

	key := result.Blocks[0]
	require.Equal(t, "k-1", key.ID)
	require.Equal(t, analyzer.BlockTypeKeyValueSet, key.BlockType)
	require.True(t, key.HasEntityType(analyzer.EntityTypeKey))
	require.False(t, key.HasEntityType(analyzer.EntityTypeValue))

	require.Equal(t, analyzer.RelationshipTypeChild, key.Relationships[0].Type)
	require.Equal(t, []string{"v-1"}, key.Relationships[1].IDs)

	require.Equal(t, "Total", result.Blocks[1].Text)
}

func TestResultDecodesExpenseShape(t *testing.T) {
	data := `{
		"ExpenseDocuments": [
			{
				"SummaryFields": [
					{"Type": {"Text": "VENDOR_NAME"}, "ValueDetection": {"Text": "Acme Ltd"}}
				],
				"LineItemGroups": [
					{
						"LineItems": [
							{
								"LineItemExpenseFields": [
									{"Type": {"Text": "ITEM"}, "ValueDetection": {"Text": "Widget"}}
								]
							}
						]
					}
				]
			}
		]
	}`

	var result analyzer.Result
	require.NoError(t, json.Unmarshal([]byte(data), &result))

	require.Len(t, result.ExpenseDocuments, 1)

	document := result.ExpenseDocuments[0]
	require.Equal(t, "VENDOR_NAME", document.SummaryFields[0].Type.Text)
	require.Equal(t, "Acme Ltd", document.SummaryFields[0].ValueDetection.Text)
	require.Equal(t, "Widget", document.LineItemGroups[0].LineItems[0].LineItemExpenseFields[0].ValueDetection.Text)
}
