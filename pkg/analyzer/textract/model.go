package textract

import (
	"github.com/finners68/textract-proxy/pkg/analyzer"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

func convertBlocks(blocks []types.Block) []analyzer.Block {
	result := make([]analyzer.Block, 0, len(blocks))

	for _, block := range blocks {
		result = append(result, analyzer.Block{
			ID: aws.ToString(block.Id),

			BlockType: analyzer.BlockType(block.BlockType),

			Text: aws.ToString(block.Text),

			EntityTypes: convertEntityTypes(block.EntityTypes),

			Relationships: convertRelationships(block.Relationships),
		})
	}

	return result
}

func convertEntityTypes(entities []types.EntityType) []analyzer.EntityType {
	if len(entities) == 0 {
		return nil
	}

	result := make([]analyzer.EntityType, 0, len(entities))

	for _, entity := range entities {
		result = append(result, analyzer.EntityType(entity))
	}

	return result
}

func convertRelationships(relationships []types.Relationship) []analyzer.Relationship {
	if len(relationships) == 0 {
		return nil
	}

	result := make([]analyzer.Relationship, 0, len(relationships))

	for _, relationship := range relationships {
		result = append(result, analyzer.Relationship{
			Type: analyzer.RelationshipType(relationship.Type),

			IDs: relationship.Ids,
		})
	}

	return result
}

func convertExpenseDocuments(documents []types.ExpenseDocument) []analyzer.ExpenseDocument {
	result := make([]analyzer.ExpenseDocument, 0, len(documents))

	for _, document := range documents {
		result = append(result, analyzer.ExpenseDocument{
			SummaryFields: convertFields(document.SummaryFields),

			LineItemGroups: convertGroups(document.LineItemGroups),
		})
	}

	return result
}

func convertGroups(groups []types.LineItemGroup) []analyzer.LineItemGroup {
	if len(groups) == 0 {
		return nil
	}

	result := make([]analyzer.LineItemGroup, 0, len(groups))

	for _, group := range groups {
		items := make([]analyzer.LineItem, 0, len(group.LineItems))

		for _, item := range group.LineItems {
			items = append(items, analyzer.LineItem{
				LineItemExpenseFields: convertFields(item.LineItemExpenseFields),
			})
		}

		result = append(result, analyzer.LineItemGroup{
			LineItems: items,
		})
	}

	return result
}

func convertFields(fields []types.ExpenseField) []analyzer.ExpenseField {
	if len(fields) == 0 {
		return nil
	}

	result := make([]analyzer.ExpenseField, 0, len(fields))

	for _, field := range fields {
		converted := analyzer.ExpenseField{}

		if field.Type != nil {
			converted.Type.Text = aws.ToString(field.Type.Text)
		}

		if field.ValueDetection != nil {
			converted.ValueDetection.Text = aws.ToString(field.ValueDetection.Text)
		}

		result = append(result, converted)
	}

	return result
}
