package extract

import (
	"strings"
)

// Fields is a string map that remembers insertion order. Extraction output
// depends on field order (duplicate labels are last-wins, derived lookups
// take the first hit), so a plain map is not enough.
type Fields struct {
	keys   []string
	values map[string]string
}

func NewFields() *Fields {
	return &Fields{
		values: map[string]string{},
	}
}

func (f *Fields) Set(key, value string) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}

	f.values[key] = value
}

func (f *Fields) Get(key string) (string, bool) {
	value, ok := f.values[key]
	return value, ok
}

func (f *Fields) Keys() []string {
	return f.keys
}

func (f *Fields) Len() int {
	return len(f.keys)
}

// Map returns a plain copy, losing order.
func (f *Fields) Map() map[string]string {
	result := make(map[string]string, len(f.keys))

	for key, value := range f.values {
		result[key] = value
	}

	return result
}

// Canonicalized returns a copy with every key passed through Canonical.
// Labels that collide after canonicalization are last-wins, matching the
// duplicate-key policy of the extractors.
func (f *Fields) Canonicalized() *Fields {
	result := NewFields()

	for _, key := range f.keys {
		result.Set(Canonical(key), f.values[key])
	}

	return result
}

// Canonical normalizes a vendor label for schema lookup: trimmed, uppercased,
// spaces replaced with underscores ("Vendor Name" -> "VENDOR_NAME").
func Canonical(label string) string {
	label = strings.TrimSpace(label)
	label = strings.ToUpper(label)
	label = strings.ReplaceAll(label, " ", "_")

	return label
}
