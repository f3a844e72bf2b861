package extract

import (
	"strings"

	"github.com/finners68/textract-proxy/pkg/analyzer"
)

// valueJoin separates multiple value blocks paired to a single key.
const valueJoin = " | "

// Pairs extracts label/value pairs from a block graph by following the VALUE
// edges of KEY-role KEY_VALUE_SET blocks.
//
// A KEY_VALUE_SET block without the KEY role counts as a value, even when it
// carries no role at all; anything else would silently misclassify such
// blocks as keys. Keys whose own text resolves empty are skipped, and keys
// with no non-empty value text are omitted entirely rather than mapped to an
// empty string. Duplicate key text is last-wins in block order.
func Pairs(blocks []analyzer.Block) *Fields {
	graph := NewGraph(blocks)

	values := map[string]analyzer.Block{}

	for _, block := range blocks {
		if block.BlockType != analyzer.BlockTypeKeyValueSet {
			continue
		}

		if block.HasEntityType(analyzer.EntityTypeKey) {
			continue
		}

		values[block.ID] = block
	}

	result := NewFields()

	for _, block := range blocks {
		if block.BlockType != analyzer.BlockTypeKeyValueSet {
			continue
		}

		if !block.HasEntityType(analyzer.EntityTypeKey) {
			continue
		}

		key := graph.Text(block)

		if key == "" {
			continue
		}

		var texts []string

		for _, relationship := range block.Relationships {
			if relationship.Type != analyzer.RelationshipTypeValue {
				continue
			}

			for _, id := range relationship.IDs {
				value, ok := values[id]

				if !ok {
					continue
				}

				if text := graph.Text(value); text != "" {
					texts = append(texts, text)
				}
			}
		}

		if len(texts) == 0 {
			continue
		}

		result.Set(key, strings.Join(texts, valueJoin))
	}

	return result
}
