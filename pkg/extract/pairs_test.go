package extract_test

import (
	"testing"

	"github.com/finners68/textract-proxy/pkg/analyzer"
	"github.com/finners68/textract-proxy/pkg/extract"

	"github.com/stretchr/testify/require"
)

func keyBlock(id string, children, values []string) analyzer.Block {
	block := analyzer.Block{
		ID:          id,
		BlockType:   analyzer.BlockTypeKeyValueSet,
		EntityTypes: []analyzer.EntityType{analyzer.EntityTypeKey},
	}

	if len(children) > 0 {
		block.Relationships = append(block.Relationships, analyzer.Relationship{
			Type: analyzer.RelationshipTypeChild,
			IDs:  children,
		})
	}

	if len(values) > 0 {
		block.Relationships = append(block.Relationships, analyzer.Relationship{
			Type: analyzer.RelationshipTypeValue,
			IDs:  values,
		})
	}

	return block
}

func valueBlock(id string, children ...string) analyzer.Block {
	block := analyzer.Block{
		ID:          id,
		BlockType:   analyzer.BlockTypeKeyValueSet,
		EntityTypes: []analyzer.EntityType{analyzer.EntityTypeValue},
	}

	if len(children) > 0 {
		block.Relationships = []analyzer.Relationship{
			{Type: analyzer.RelationshipTypeChild, IDs: children},
		}
	}

	return block
}

func TestPairs(t *testing.T) {
	blocks := []analyzer.Block{
		keyBlock("k-1", []string{"w-1", "w-2"}, []string{"v-1"}),
		valueBlock("v-1", "w-3", "w-4"),
		word("w-1", "Vendor"),
		word("w-2", "Name"),
		word("w-3", "Acme"),
		word("w-4", "Ltd"),
	}

	pairs := extract.Pairs(blocks)

	require.Equal(t, 1, pairs.Len())

	value, ok := pairs.Get("Vendor Name")
	require.True(t, ok)
	require.Equal(t, "Acme Ltd", value)
}

func TestPairsSkipsEmptyKeyText(t *testing.T) {
	blocks := []analyzer.Block{
		keyBlock("k-1", nil, []string{"v-1"}),
		valueBlock("v-1", "w-1"),
		word("w-1", "orphaned"),
	}

	pairs := extract.Pairs(blocks)

	require.Zero(t, pairs.Len())
}

func TestPairsOmitsValuelessKeys(t *testing.T) {
	blocks := []analyzer.Block{
		keyBlock("k-1", []string{"w-1"}, []string{"v-1", "missing"}),
		valueBlock("v-1"),
		word("w-1", "Total"),
	}

	pairs := extract.Pairs(blocks)

	_, ok := pairs.Get("Total")
	require.False(t, ok)
	require.Zero(t, pairs.Len())
}

func TestPairsJoinsMultipleValues(t *testing.T) {
	blocks := []analyzer.Block{
		keyBlock("k-1", []string{"w-1"}, []string{"v-1", "v-2"}),
		valueBlock("v-1", "w-2"),
		valueBlock("v-2", "w-3"),
		word("w-1", "Address"),
		word("w-2", "22 High Street"),
		word("w-3", "London"),
	}

	pairs := extract.Pairs(blocks)

	value, _ := pairs.Get("Address")
	require.Equal(t, "22 High Street | London", value)
}

func TestPairsDuplicateKeysLastWins(t *testing.T) {
	blocks := []analyzer.Block{
		keyBlock("k-1", []string{"w-1"}, []string{"v-1"}),
		keyBlock("k-2", []string{"w-2"}, []string{"v-2"}),
		valueBlock("v-1", "w-3"),
		valueBlock("v-2", "w-4"),
		word("w-1", "Total"),
		word("w-2", "Total"),
		word("w-3", "10.00"),
		word("w-4", "20.00"),
	}

	pairs := extract.Pairs(blocks)

	require.Equal(t, 1, pairs.Len())

	value, _ := pairs.Get("Total")
	require.Equal(t, "20.00", value)
}

func TestPairsTreatsRolelessBlocksAsValues(t *testing.T) {
	roleless := analyzer.Block{
		ID:        "v-1",
		BlockType: analyzer.BlockTypeKeyValueSet,
		Relationships: []analyzer.Relationship{
			{Type: analyzer.RelationshipTypeChild, IDs: []string{"w-2"}},
		},
	}

	blocks := []analyzer.Block{
		keyBlock("k-1", []string{"w-1"}, []string{"v-1"}),
		roleless,
		word("w-1", "Currency"),
		word("w-2", "GBP"),
	}

	pairs := extract.Pairs(blocks)

	value, ok := pairs.Get("Currency")
	require.True(t, ok)
	require.Equal(t, "GBP", value)
}

func TestPairsIdempotent(t *testing.T) {
	blocks := []analyzer.Block{
		keyBlock("k-1", []string{"w-1"}, []string{"v-1"}),
		valueBlock("v-1", "w-2"),
		word("w-1", "Date"),
		word("w-2", "01/02/2024"),
	}

	first := extract.Pairs(blocks)
	second := extract.Pairs(blocks)

	require.Equal(t, first.Map(), second.Map())
	require.Equal(t, first.Keys(), second.Keys())
}
