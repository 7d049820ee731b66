package entity

import (
	"fmt"
	"strings"
	"time"
)

type DocClass string

const (
	DocClassQuote   DocClass = "quote"
	DocClassInvoice DocClass = "invoice"
)

func (c DocClass) IsValid() bool {
	switch c {
	case DocClassQuote, DocClassInvoice:
		return true
	default:
		return false
	}
}

// Party is the structured vendor / ship-to block of an invoice. It is
// persisted as three separate columns but edited as a single free-text
// field, see EditorText.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// EditorText collapses the party into the one-field editor representation:
// non-empty parts joined by newlines.
func (p Party) EditorText() string {
	parts := make([]string, 0, 3)

	for _, v := range []string{p.Name, p.Address, p.Phone} {
		if v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, "\n")
}

// SetEditorText writes the whole free-text value into Name and clears the
// other two parts. The editor reads three columns but writes back only one;
// changing that here would alter what existing rows hold after a re-save.
func (p *Party) SetEditorText(text string) {
	p.Name = text
	p.Address = ""
	p.Phone = ""
}

// Quote is a quotation document keyed by its immutable QuoteNumber.
type Quote struct {
	QuoteNumber     int64         `json:"quoteNumber"`
	Items           []QuoteItem   `json:"items"`
	VATPercent      float64       `json:"vatPercent"`
	Currency        QuoteCurrency `json:"currency"`
	ShippingCost    float64       `json:"shippingCost"`
	SalesConsultant string        `json:"salesConsultant"`
	ValidUntil      *time.Time    `json:"validUntil"`
	InvoiceAddress  string        `json:"invoiceAddress"`
	DeliveryAddress string        `json:"deliveryAddress"`
	Page2Notes      string        `json:"page2Notes"`
	PDFPath         string        `json:"pdfPath"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// Invoice is an invoice document keyed by its immutable InvoiceNumber.
// Unlike a quote, its VAT is a flat amount, not a percentage.
type Invoice struct {
	InvoiceNumber int64           `json:"invoiceNumber"`
	Currency      InvoiceCurrency `json:"currency"`
	PONumber      string          `json:"poNumber"`
	PaymentTerms  string          `json:"paymentTerms"`
	Vendor        Party           `json:"vendor"`
	ShipTo        Party           `json:"shipTo"`
	Items         []InvoiceItem   `json:"items"`
	Comments      string          `json:"comments"`
	VAT           float64         `json:"vat"`
	Shipping      float64         `json:"shipping"`
	Other         float64         `json:"other"`
	PDFPath       string          `json:"pdfPath"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

const (
	PaymentTerms30Days = "30 days"
	PaymentTerms60Days = "60 days"
	PaymentTerms90Days = "90 days"
)

func IsValidPaymentTerms(terms string) bool {
	switch terms {
	case PaymentTerms30Days, PaymentTerms60Days, PaymentTerms90Days:
		return true
	default:
		return false
	}
}

type QuoteSummary struct {
	QuoteNumber int64     `json:"quoteNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

type InvoiceSummary struct {
	InvoiceNumber int64     `json:"invoiceNumber"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PartyHistory is a reusable vendor / ship-to pair sourced from a previous
// invoice, offered to the editor as a fill-in option.
type PartyHistory struct {
	Label  string `json:"label"`
	Vendor Party  `json:"vendor"`
	ShipTo Party  `json:"shipTo"`
}

// QuotePDFName is the deterministic artifact key for a quote. Re-saving a
// document overwrites the same object.
func QuotePDFName(number int64) string {
	return fmt.Sprintf("Quotation-%d.pdf", number)
}

func InvoicePDFName(number int64) string {
	return fmt.Sprintf("Invoice-%d.pdf", number)
}
