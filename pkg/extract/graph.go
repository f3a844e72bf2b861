package extract

import (
	"strings"

	"github.com/finners68/textract-proxy/pkg/analyzer"
)

// Graph is a read-only index over one analysis result's block set. It is
// built once per extraction call and never outlives it.
type Graph struct {
	blocks []analyzer.Block

	index map[string]analyzer.Block
}

// NewGraph indexes blocks by id. Duplicate ids resolve last-write-wins in
// input order. Construction never fails.
func NewGraph(blocks []analyzer.Block) *Graph {
	index := make(map[string]analyzer.Block, len(blocks))

	for _, block := range blocks {
		index[block.ID] = block
	}

	return &Graph{
		blocks: blocks,

		index: index,
	}
}

func (g *Graph) Blocks() []analyzer.Block {
	return g.blocks
}

func (g *Graph) Block(id string) (analyzer.Block, bool) {
	block, ok := g.index[id]
	return block, ok
}

// Text assembles the visible text of a block from the WORD blocks its CHILD
// relationships point to, in graph order. Blocks without CHILD relationships
// resolve to the empty string; dangling targets contribute nothing.
func (g *Graph) Text(block analyzer.Block) string {
	var words []string

	for _, relationship := range block.Relationships {
		if relationship.Type != analyzer.RelationshipTypeChild {
			continue
		}

		for _, id := range relationship.IDs {
			child, ok := g.index[id]

			if !ok {
				continue
			}

			if child.BlockType != analyzer.BlockTypeWord {
				continue
			}

			words = append(words, child.Text)
		}
	}

	return strings.Join(words, " ")
}
