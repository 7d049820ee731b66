package render

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaessolutions/docdesk/internal/entity"
	"github.com/jaessolutions/docdesk/internal/totals"
)

// Fixed page chrome of the quotation layout.
const (
	companyName     = "JAES SOLUTIONS LTD"
	companyAddress1 = "Devonshire House, 582 Honeypot Lane,"
	companyAddress2 = "Stanmore, England, HA7 1JS, UK"
	companyVATReg   = "VAT Reg No: 158 9915 51"
	companyReg      = "Company Reg No: 8452633"
	contactNumber   = "+44 1279 217307"

	quoteTerms = "PRICES SUBJECT TO CHANGE – PRICES BASED UPON TOTAL PURCHASE – ALL " +
		"DELIVERY, TRAINING OR CONSULTING SERVICES TO BE BILLED AT PUBLISHED RATES " +
		"FOR EACH ACTIVITY INVOLVED – GENERALLY ALL HARDWARE COMPONENTS PROPOSED " +
		"ABOVE ARE COVERED BY A LIMITED WARRANTY, COVERING PARTS AND LABOUR FOR " +
		"HARDWARE ONLY AND ON A DEPOT BASIS – WE SPECIFICALLY DISCLAIM ANY AND ALL " +
		"WARRANTIES, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO ANY IMPLIED " +
		"WARRANTIES. WE SHALL NOT BE LIABLE FOR ANY LOSS OF PROFITS, BUSINESS, " +
		"GOODWILL, DATA, INTERRUPTION OF BUSINESS. ALL PRICES INCLUDING VAT. " +
		"CUSTOMER UNDERSTANDS THAT ONCE GOODS HAVE BEEN PLACED THE ORDER WITH THE " +
		"VENDOR A NON-CANCELLATION AND NON-RETURNABLE POLICY WILL APPLY."
)

// Page layout metrics in base pixels (A4 with 20 mm padding).
const (
	contentLeft  = 76.0
	contentRight = 718.0
	contentWidth = contentRight - contentLeft
)

// QuoteRegions builds the two capturable pages of a quotation. Page one is
// the page shown when the editor opens; page two starts hidden, the way
// the page toggle leaves it.
func QuoteRegions(q entity.Quote) []Region {
	return []Region{
		&pageRegion{
			name:    "quote-page-1",
			visible: true,
			draw:    func(s *sheet) { drawQuotePageOne(s, q) },
		},
		&pageRegion{
			name:    "quote-page-2",
			visible: false,
			draw:    func(s *sheet) { drawQuotePageTwo(s, q) },
		},
	}
}

func drawQuotePageOne(s *sheet, q entity.Quote) {
	sym := q.Currency.Symbol()
	tt := totals.Quote(q.Items, q.VATPercent, q.ShippingCost)

	s.fillRect(contentLeft, 56, contentWidth, 6, 0.73, 0.90, 1)

	s.text(contentLeft, 100, 22, true, "QUOTATION")

	y := 126.0
	s.labelValue(contentLeft, y, 12, "Quote Number: ", fmt.Sprintf("%d", q.QuoteNumber))
	y += 20
	s.labelValue(contentLeft, y, 12, "Quote Date: ", time.Now().Format("02/01/2006"))
	y += 22

	s.text(contentLeft, y, 12, false, "Valid Until:")
	s.field(contentLeft+70, y-14, 160, 20, 12, formatDate(q.ValidUntil))
	y += 26

	s.text(contentLeft, y, 12, false, "Sales Consultant:")
	s.field(contentLeft+100, y-14, 160, 20, 12, q.SalesConsultant)
	y += 26

	s.labelValue(contentLeft, y, 12, "Contact no: ", contactNumber)
	y += 22

	s.text(contentLeft, y, 12, false, "Currency:")
	s.field(contentLeft+62, y-14, 80, 20, 12, string(q.Currency))

	// Company block, right-aligned.
	s.textRight(contentRight, 110, 12, true, companyName)
	s.textRight(contentRight, 128, 12, false, companyAddress1)
	s.textRight(contentRight, 144, 12, false, companyAddress2)
	s.textRight(contentRight, 168, 11, false, companyVATReg)
	s.textRight(contentRight, 184, 11, false, companyReg)

	s.line(contentLeft, 268, contentRight, 268, 1)

	// Addresses.
	s.text(contentLeft, 290, 12, true, "Invoice Address")
	s.fieldArea(contentLeft, 298, 260, 90, 12, q.InvoiceAddress)

	s.text(contentLeft+360, 290, 12, true, "Delivery Address")
	s.fieldArea(contentLeft+360, 298, 260, 90, 12, q.DeliveryAddress)

	s.line(contentLeft, 408, contentRight, 408, 1)

	y = drawQuoteItemsTable(s, q, sym, 424)

	if s.mode == ModeEdit {
		s.rect(contentLeft, y+8, 90, 24, 1)
		s.text(contentLeft+10, y+24, 12, false, "+ Add Item")
	}

	drawQuoteTotalsBox(s, q, sym, tt, y+44)

	termsTop := y + 190.0
	s.line(contentLeft, termsTop-14, contentRight, termsTop-14, 1)
	s.wrapped(contentLeft, termsTop, contentWidth, 11, 1.4, quoteTerms)
}

// drawQuoteItemsTable renders the four-column items table and returns the
// y coordinate just below the last row. The Action column only exists in
// edit mode; it never reaches the capture.
func drawQuoteItemsTable(s *sheet, q entity.Quote, sym string, top float64) float64 {
	cols := []struct {
		title string
		width float64
	}{
		{"Quantity", 0.12 * contentWidth},
		{"Description", 0.44 * contentWidth},
		{"Unit Price", 0.22 * contentWidth},
		{"Total Price", 0.22 * contentWidth},
	}

	const rowHeight = 26.0

	editExtra := 0.0
	if s.mode == ModeEdit {
		editExtra = 50
		cols[1].width -= editExtra
	}

	// Header.
	s.fillRect(contentLeft, top, contentWidth, rowHeight, 0.85, 0.95, 1)

	x := contentLeft
	for _, col := range cols {
		s.rect(x, top, col.width, rowHeight, 1)
		s.text(x+6, top+18, 12, true, col.title)
		x += col.width
	}

	if s.mode == ModeEdit {
		s.rect(x, top, editExtra, rowHeight, 1)
		s.text(x+6, top+18, 12, true, "Action")
	}

	y := top + rowHeight

	for _, it := range q.Items {
		x = contentLeft

		cells := []string{
			fmt.Sprintf("%g", it.Qty),
			it.Desc,
			totals.Format(sym, totals.LineTotal(1, it.Unit)),
			totals.Format(sym, totals.LineTotal(it.Qty, it.Unit)),
		}

		for i, col := range cols {
			s.rect(x, y, col.width, rowHeight, 1)

			value := cells[i]
			if s.mode == ModeExport && value == "" {
				value = emptyValue
			}

			s.text(x+6, y+18, 12, false, value)
			x += col.width
		}

		if s.mode == ModeEdit {
			s.rect(x, y, editExtra, rowHeight, 1)
			s.text(x+20, y+18, 12, false, "✕")
		}

		y += rowHeight
	}

	return y
}

func drawQuoteTotalsBox(s *sheet, q entity.Quote, sym string, tt totals.QuoteTotals, top float64) {
	const boxWidth = 280.0

	left := contentRight - boxWidth

	s.rect(left, top, boxWidth, 132, 1)

	y := top + 22
	s.text(left+10, y, 11, false, fmt.Sprintf("Subtotal (%s)", q.Currency))
	s.textRight(left+boxWidth-10, y, 11, true, totals.Format(sym, tt.Subtotal))

	y += 22
	s.text(left+10, y, 11, false, "VAT (%)")
	if s.mode == ModeEdit {
		s.field(left+boxWidth-70, y-14, 56, 18, 11, fmt.Sprintf("%g", q.VATPercent))
	} else {
		s.textRight(left+boxWidth-10, y, 11, true, fmt.Sprintf("%g%%", q.VATPercent))
	}

	y += 22
	s.text(left+10, y, 11, false, "VAT Amount")
	s.textRight(left+boxWidth-10, y, 11, true, totals.Format(sym, tt.VATAmount))

	y += 22
	s.text(left+10, y, 11, false, "Shipping")
	if s.mode == ModeEdit {
		s.field(left+boxWidth-80, y-14, 70, 18, 11, fmt.Sprintf("%g", q.ShippingCost))
	} else {
		s.textRight(left+boxWidth-10, y, 11, true, totals.Format(sym, decimal.NewFromFloat(q.ShippingCost)))
	}

	y += 16
	s.line(left+8, y, left+boxWidth-8, y, 1)

	y += 22
	s.text(left+10, y, 13, true, "Total Inc-VAT")
	s.textRight(left+boxWidth-10, y, 13, true, totals.Format(sym, tt.Total))
}

func drawQuotePageTwo(s *sheet, q entity.Quote) {
	s.fillRect(contentLeft, 56, contentWidth, 6, 0.73, 0.90, 1)

	s.text(contentLeft, 100, 18, true, "Item Breakdown")

	cols := []struct {
		title string
		width float64
	}{
		{"Quantity", 0.2 * contentWidth},
		{"Description", 0.8 * contentWidth},
	}

	const rowHeight = 26.0

	top := 116.0

	s.fillRect(contentLeft, top, contentWidth, rowHeight, 0.85, 0.95, 1)

	x := contentLeft
	for _, col := range cols {
		s.rect(x, top, col.width, rowHeight, 1)
		s.text(x+6, top+18, 12, true, col.title)
		x += col.width
	}

	y := top + rowHeight

	for _, it := range q.Items {
		x = contentLeft

		cells := []string{fmt.Sprintf("%g", it.Qty), it.Desc}
		for i, col := range cols {
			s.rect(x, y, col.width, rowHeight, 1)

			value := cells[i]
			if s.mode == ModeExport && value == "" {
				value = emptyValue
			}

			s.text(x+6, y+18, 12, false, value)
			x += col.width
		}

		y += rowHeight
	}

	if s.mode == ModeEdit {
		s.rect(contentLeft, y+12, 90, 24, 1)
		s.text(contentLeft+10, y+28, 12, false, "+ Add Item")
	}

	y += 60
	s.line(contentLeft, y, contentRight, y, 1)

	y += 34
	s.text(contentLeft, y, 18, true, "Additional Information")
	s.fieldArea(contentLeft, y+12, contentWidth, 220, 12, q.Page2Notes)

	s.textRight(contentRight, y+260, 11, false, "Page 2 of 2")
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format("2006-01-02")
}
