package extract

import (
	"strings"

	"github.com/finners68/textract-proxy/pkg/analyzer"
)

// Summary flattens an expense document's summary fields into ordered raw
// fields. Fields missing either label or value are dropped.
func Summary(document analyzer.ExpenseDocument) *Fields {
	result := NewFields()

	for _, field := range document.SummaryFields {
		label := field.Type.Text
		value := field.ValueDetection.Text

		if label == "" || value == "" {
			continue
		}

		result.Set(label, value)
	}

	return result
}

// LineItems reconstructs tabular rows from an expense document's line-item
// groups. Labels are lowercased (case only, no further normalization) and
// fields missing either side are dropped; a row left without any field is
// dropped entirely. Group boundaries are not preserved: rows come out as one
// flat sequence in input order.
func LineItems(groups []analyzer.LineItemGroup) []map[string]string {
	var result []map[string]string

	for _, group := range groups {
		for _, item := range group.LineItems {
			row := map[string]string{}

			for _, field := range item.LineItemExpenseFields {
				label := field.Type.Text
				value := field.ValueDetection.Text

				if label == "" || value == "" {
					continue
				}

				row[strings.ToLower(label)] = value
			}

			if len(row) == 0 {
				continue
			}

			result = append(result, row)
		}
	}

	return result
}
