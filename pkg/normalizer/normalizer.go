package normalizer

import (
	"github.com/finners68/textract-proxy/pkg/extract"
)

// Record is the canonical output schema, independent of the source vendor's
// label vocabulary. Fields are pointers so that "absent" and "present but
// empty" stay distinguishable; every key is always serialized.
type Record struct {
	VendorName     *string `json:"vendor_name"`
	TotalAmount    *string `json:"total_amount"`
	SubtotalAmount *string `json:"subtotal_amount"`
	VATAmount      *string `json:"vat_amount"`
	VATRatePercent *string `json:"vat_rate_percent"`
	Currency       *string `json:"currency"`
	InvoiceDate    *string `json:"invoice_date"`
	VATNumber      *string `json:"vat_number"`

	RawFields map[string]string `json:"raw_fields"`

	LineItems []map[string]string `json:"line_items,omitempty"`
}

// Normalize maps raw summary fields onto the canonical schema. Labels are
// canonicalized (UPPER_SNAKE, see extract.Canonical) for schema lookup; the
// fields as extracted ride along in RawFields as a fallback layer. Line
// items, when present, feed the VAT-number scan and pass through unchanged.
func Normalize(fields *extract.Fields, items []map[string]string) *Record {
	record := &Record{
		RawFields: fields.Map(),

		LineItems: items,
	}

	canonical := fields.Canonicalized()

	record.VendorName = first(canonical, "VENDOR_NAME", "SUPPLIER")
	record.TotalAmount = first(canonical, "TOTAL", "INVOICE_TOTAL")
	record.SubtotalAmount = first(canonical, "SUBTOTAL", "AMOUNT_BEFORE_TAX")
	record.VATAmount = first(canonical, "TAX", "VAT")
	record.Currency = first(canonical, "CURRENCY")
	record.InvoiceDate = first(canonical, "INVOICE_RECEIPT_DATE", "DATE")

	record.VATRatePercent = vatRate(canonical, record.VATAmount, record.TotalAmount)
	record.VATNumber = vatNumber(canonical, items)

	return record
}

func first(fields *extract.Fields, keys ...string) *string {
	for _, key := range keys {
		if value, ok := fields.Get(key); ok {
			return &value
		}
	}

	return nil
}
