package analyzer

type BlockType string

const (
	BlockTypePage        BlockType = "PAGE"
	BlockTypeLine        BlockType = "LINE"
	BlockTypeWord        BlockType = "WORD"
	BlockTypeKeyValueSet BlockType = "KEY_VALUE_SET"
	BlockTypeTable       BlockType = "TABLE"
	BlockTypeCell        BlockType = "CELL"
)

type RelationshipType string

const (
	RelationshipTypeChild RelationshipType = "CHILD"
	RelationshipTypeValue RelationshipType = "VALUE"
)

type EntityType string

const (
	EntityTypeKey   EntityType = "KEY"
	EntityTypeValue EntityType = "VALUE"
)

// Result is the analysis engine's response, holding one of the two wire
// shapes depending on the requested mode.
type Result struct {
	Blocks []Block `json:"Blocks,omitempty"`

	ExpenseDocuments []ExpenseDocument `json:"ExpenseDocuments,omitempty"`
}

// Block is one node of the analysis graph. Ids are opaque and unique within
// a single result; relationship targets may dangle.
type Block struct {
	ID string `json:"Id"`

	BlockType BlockType `json:"BlockType"`

	Text string `json:"Text,omitempty"`

	EntityTypes []EntityType `json:"EntityTypes,omitempty"`

	Relationships []Relationship `json:"Relationships,omitempty"`
}

type Relationship struct {
	Type RelationshipType `json:"Type"`

	IDs []string `json:"Ids"`
}

func (b Block) HasEntityType(t EntityType) bool {
	for _, e := range b.EntityTypes {
		if e == t {
			return true
		}
	}

	return false
}

type ExpenseDocument struct {
	SummaryFields []ExpenseField `json:"SummaryFields,omitempty"`

	LineItemGroups []LineItemGroup `json:"LineItemGroups,omitempty"`
}

// ExpenseField is a pre-flattened label/value pair with no relationship
// graph behind it.
type ExpenseField struct {
	Type ExpenseDetection `json:"Type"`

	ValueDetection ExpenseDetection `json:"ValueDetection"`
}

type ExpenseDetection struct {
	Text string `json:"Text"`
}

type LineItemGroup struct {
	LineItems []LineItem `json:"LineItems,omitempty"`
}

// LineItem is one row of a tabular document section.
type LineItem struct {
	LineItemExpenseFields []ExpenseField `json:"LineItemExpenseFields,omitempty"`
}
