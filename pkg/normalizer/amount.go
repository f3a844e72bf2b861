package normalizer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var amountPattern = regexp.MustCompile(`\d+\.\d{2}`)

// ParseAmount reads a monetary amount out of free text: comma thousands
// separators and currency symbols are stripped, then the first number with a
// two-digit decimal part is parsed. Amounts written without two decimal
// places ("12.5", "12") are not recognized and yield nil; that limitation is
// intentional.
func ParseAmount(text string) *float64 {
	text = strings.ReplaceAll(text, ",", "")

	text = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Sc, r) {
			return -1
		}

		return r
	}, text)

	match := amountPattern.FindString(text)

	if match == "" {
		return nil
	}

	value, err := strconv.ParseFloat(match, 64)

	if err != nil {
		return nil
	}

	return &value
}
