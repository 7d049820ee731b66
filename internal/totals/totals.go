// Package totals derives document totals from line items and surcharges.
// Everything here is pure; callers recompute on every change.
package totals

import (
	"github.com/shopspring/decimal"

	"github.com/jaessolutions/docdesk/internal/entity"
)

var hundred = decimal.NewFromInt(100)

// QuoteTotals carries the derived amounts of a quotation. VAT is a
// percentage of the subtotal for this document class.
type QuoteTotals struct {
	Subtotal  decimal.Decimal
	VATAmount decimal.Decimal
	Total     decimal.Decimal
}

// InvoiceTotals carries the derived amounts of an invoice. VAT, shipping
// and other are flat additive amounts, not percentages.
type InvoiceTotals struct {
	Subtotal decimal.Decimal
	Total    decimal.Decimal
}

// Quote computes subtotal, VAT amount and grand total:
// total = subtotal * (1 + vatPercent/100) + shipping.
func Quote(items []entity.QuoteItem, vatPercent, shippingCost float64) QuoteTotals {
	subtotal := decimal.Zero

	for _, it := range items {
		subtotal = subtotal.Add(LineTotal(it.Qty, it.Unit))
	}

	vatAmount := subtotal.Mul(decimal.NewFromFloat(vatPercent)).Div(hundred)
	total := subtotal.Add(vatAmount).Add(decimal.NewFromFloat(shippingCost))

	return QuoteTotals{
		Subtotal:  subtotal,
		VATAmount: vatAmount,
		Total:     total,
	}
}

// Invoice computes subtotal and grand total:
// total = subtotal + vat + shipping + other.
func Invoice(items []entity.InvoiceItem, vat, shipping, other float64) InvoiceTotals {
	subtotal := decimal.Zero

	for _, it := range items {
		subtotal = subtotal.Add(LineTotal(it.Qty, it.Price))
	}

	total := subtotal.
		Add(decimal.NewFromFloat(vat)).
		Add(decimal.NewFromFloat(shipping)).
		Add(decimal.NewFromFloat(other))

	return InvoiceTotals{
		Subtotal: subtotal,
		Total:    total,
	}
}

// LineTotal is quantity times unit price for a single row.
func LineTotal(qty, unitPrice float64) decimal.Decimal {
	return decimal.NewFromFloat(qty).Mul(decimal.NewFromFloat(unitPrice))
}

// Format renders an amount to exactly two decimal places behind the
// currency glyph.
func Format(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
