package entity

import "encoding/json"

// QuoteItem is one row of a quotation. Field names match the stored jsonb
// shape exactly.
type QuoteItem struct {
	Qty  float64 `json:"qty"`
	Desc string  `json:"desc"`
	Unit float64 `json:"unit"`
}

// InvoiceItem additionally carries an item label.
type InvoiceItem struct {
	Item        string  `json:"item"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Price       float64 `json:"price"`
}

// NormalizeQuoteItems clamps negative quantities and prices to zero.
// Clamping happens at the point of entry, not at totals time.
func NormalizeQuoteItems(items []QuoteItem) []QuoteItem {
	out := make([]QuoteItem, len(items))

	for i, it := range items {
		it.Qty = clampNonNegative(it.Qty)
		it.Unit = clampNonNegative(it.Unit)
		out[i] = it
	}

	return out
}

func NormalizeInvoiceItems(items []InvoiceItem) []InvoiceItem {
	out := make([]InvoiceItem, len(items))

	for i, it := range items {
		it.Qty = clampNonNegative(it.Qty)
		it.Price = clampNonNegative(it.Price)
		out[i] = it
	}

	return out
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}

// DecodeQuoteItems turns the stored items value back into typed rows. The
// store may hand back a jsonb array or the same array serialized as a text
// value, so a failed first decode retries through an intermediate string.
// Null, absent and malformed input all decode to an empty slice.
func DecodeQuoteItems(raw []byte) []QuoteItem {
	var items []QuoteItem

	if decodeStoredJSON(raw, &items) {
		return NormalizeQuoteItems(items)
	}

	return []QuoteItem{}
}

func DecodeInvoiceItems(raw []byte) []InvoiceItem {
	var items []InvoiceItem

	if decodeStoredJSON(raw, &items) {
		return NormalizeInvoiceItems(items)
	}

	return []InvoiceItem{}
}

func decodeStoredJSON(raw []byte, dst any) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return false
	}

	if json.Unmarshal(raw, dst) == nil {
		return true
	}

	// Double-encoded: a JSON string holding the serialized array.
	var text string
	if json.Unmarshal(raw, &text) != nil {
		return false
	}

	return json.Unmarshal([]byte(text), dst) == nil
}
