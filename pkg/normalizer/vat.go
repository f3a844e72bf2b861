package normalizer

import (
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"

	"github.com/finners68/textract-proxy/pkg/extract"
)

var (
	rateLabelPattern = regexp.MustCompile(`(?i)(vat|tax).*%`)
	rateValuePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)
	numberPattern    = regexp.MustCompile(`\d+(?:\.\d+)?`)

	// UK VAT registration numbers: "GB" followed by exactly nine digits.
	// The prefix is case-sensitive.
	vatNumberPattern = regexp.MustCompile(`GB\d{9}\b`)
)

// vatRate resolves the VAT rate, first from an explicit percent field (a
// label matching rateLabelPattern or a value carrying a number glued to a
// percent sign, first hit in field order), then derived from the tax and
// total amounts when both parse and the total is positive.
func vatRate(fields *extract.Fields, vat, total *string) *string {
	for _, key := range fields.Keys() {
		value, _ := fields.Get(key)

		if rateLabelPattern.MatchString(key) {
			if number := numberPattern.FindString(value); number != "" {
				rate := number + "%"
				return &rate
			}

			continue
		}

		if match := rateValuePattern.FindStringSubmatch(value); match != nil {
			rate := match[1] + "%"
			return &rate
		}
	}

	if vat == nil || total == nil {
		return nil
	}

	vatAmount := ParseAmount(*vat)
	totalAmount := ParseAmount(*total)

	if vatAmount == nil || totalAmount == nil || *totalAmount <= 0 {
		return nil
	}

	rate := fmt.Sprintf("%.2f%%", math.Round(*vatAmount / *totalAmount*100*100)/100)

	return &rate
}

// vatNumber scans every value text from both extraction paths for a VAT
// registration number. First match wins; line-item fields scan in sorted
// label order to keep the result stable.
func vatNumber(fields *extract.Fields, items []map[string]string) *string {
	for _, key := range fields.Keys() {
		value, _ := fields.Get(key)

		if match := vatNumberPattern.FindString(value); match != "" {
			return &match
		}
	}

	for _, item := range items {
		for _, label := range slices.Sorted(maps.Keys(item)) {
			if match := vatNumberPattern.FindString(item[label]); match != "" {
				return &match
			}
		}
	}

	return nil
}
