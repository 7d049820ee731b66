package render

import (
	"fmt"
	"time"

	"github.com/jaessolutions/docdesk/internal/entity"
	"github.com/jaessolutions/docdesk/internal/totals"
)

// Fixed chrome of the invoice layout.
const (
	invoicePhone = "Phone: 01279 213707"
	invoiceEmail = "Email: info@jaessolutions.com"

	bankAccountName = "Account name: JAES SOLUTIONS LTD"
	bankName        = "Bank: NatWest Bank"
	bankSortCode    = "Sort Code: 60-10-05"
	bankAccountNo   = "Account number: 84694467"
	bankBIC         = "BIC: NWBKGB2L"
	bankIBAN        = "IBAN: GB47NWBK60100584694467"
)

// InvoiceRegions builds the single capturable page of an invoice.
func InvoiceRegions(inv entity.Invoice) []Region {
	return []Region{
		&pageRegion{
			name:    "invoice-page",
			visible: true,
			draw:    func(s *sheet) { drawInvoicePage(s, inv) },
		},
	}
}

func drawInvoicePage(s *sheet, inv entity.Invoice) {
	tt := totals.Invoice(inv.Items, inv.VAT, inv.Shipping, inv.Other)

	// Header: company block left, invoice meta right.
	s.text(contentLeft, 80, 14, true, companyName)
	s.text(contentLeft, 100, 12, false, companyAddress1)
	s.text(contentLeft, 116, 12, false, companyAddress2)
	s.text(contentLeft, 132, 12, false, invoicePhone)
	s.text(contentLeft, 148, 12, false, invoiceEmail)

	s.textRight(contentRight, 84, 20, true, "INVOICE")

	y := 110.0
	s.textRight(contentRight, y, 12, false, "Date: "+time.Now().Format("02/01/2006"))

	y += 26
	s.textRight(contentRight-130, y, 12, true, "PO#:")
	s.field(contentRight-124, y-14, 124, 20, 12, inv.PONumber)

	y += 26
	s.textRight(contentRight-130, y, 12, true, "Payment:")
	s.field(contentRight-124, y-14, 124, 20, 12, inv.PaymentTerms)

	y += 26
	s.textRight(contentRight-130, y, 12, true, "Currency:")
	s.field(contentRight-124, y-14, 124, 20, 12, string(inv.Currency))

	y += 30
	s.fillRect(contentRight-150, y-16, 150, 24, 0.92, 0.95, 1)
	s.textRight(contentRight-10, y, 12, true, fmt.Sprintf("INV: I-%d", inv.InvoiceNumber))

	s.line(contentLeft, 210, contentRight, 210, 1)

	// Vendor / ship-to, the collapsed single-field editors.
	half := (contentWidth - 16) / 2

	s.fillRect(contentLeft, 224, half, 24, 0.92, 0.95, 1)
	s.text(contentLeft+6, 241, 12, true, "VENDOR")
	s.fieldArea(contentLeft, 252, half, 120, 12, inv.Vendor.EditorText())

	right := contentLeft + half + 16
	s.fillRect(right, 224, half, 24, 0.92, 0.95, 1)
	s.text(right+6, 241, 12, true, "SHIP TO")
	s.fieldArea(right, 252, half, 120, 12, inv.ShipTo.EditorText())

	y = drawInvoiceItemsTable(s, inv, 396)

	if s.mode == ModeEdit {
		s.rect(contentLeft, y+8, 90, 24, 1)
		s.text(contentLeft+10, y+24, 12, false, "+ Add Item")
	}

	y += 48

	// Comments left, totals right.
	s.fillRect(contentLeft, y, half, 24, 0.92, 0.95, 1)
	s.text(contentLeft+6, y+17, 12, true, "Comments or Special Instructions")
	s.fieldArea(contentLeft, y+28, half, 96, 12, inv.Comments)

	drawInvoiceTotalsTable(s, inv, tt, right, y)

	y += 150

	s.fillRect(contentLeft, y, half, 24, 0.92, 0.95, 1)
	s.text(contentLeft+6, y+17, 12, true, "Bank Details")

	for i, line := range []string{
		bankAccountName, bankName, bankSortCode, bankAccountNo, bankBIC, bankIBAN,
	} {
		s.text(contentLeft, y+44+float64(i)*16, 12, false, line)
	}
}

func drawInvoiceItemsTable(s *sheet, inv entity.Invoice, top float64) float64 {
	cols := []struct {
		title string
		width float64
	}{
		{"ITEM", 0.15 * contentWidth},
		{"DESCRIPTION", 0.35 * contentWidth},
		{"QTY", 0.10 * contentWidth},
		{"UNIT PRICE", 0.20 * contentWidth},
		{"TOTAL", 0.20 * contentWidth},
	}

	const rowHeight = 26.0

	s.fillRect(contentLeft, top, contentWidth, rowHeight, 0.92, 0.95, 1)

	x := contentLeft
	for _, col := range cols {
		s.rect(x, top, col.width, rowHeight, 1)
		s.text(x+6, top+18, 12, true, col.title)
		x += col.width
	}

	y := top + rowHeight

	for _, it := range inv.Items {
		x = contentLeft

		// The invoice table shows plain numbers, no currency glyph.
		cells := []string{
			it.Item,
			it.Description,
			fmt.Sprintf("%g", it.Qty),
			totals.LineTotal(1, it.Price).StringFixed(2),
			totals.LineTotal(it.Qty, it.Price).StringFixed(2),
		}

		for i, col := range cols {
			s.rect(x, y, col.width, rowHeight, 1)

			value := cells[i]
			if s.mode == ModeExport && value == "" {
				value = emptyValue
			}

			if i == len(cols)-1 {
				s.textRight(x+col.width-6, y+18, 12, false, value)
			} else {
				s.text(x+6, y+18, 12, false, value)
			}

			x += col.width
		}

		y += rowHeight
	}

	return y
}

func drawInvoiceTotalsTable(s *sheet, inv entity.Invoice, tt totals.InvoiceTotals, left, top float64) {
	width := contentRight - left

	const rowHeight = 26.0

	rows := []struct {
		label    string
		value    string
		editable bool
		bold     bool
	}{
		{"Subtotal", tt.Subtotal.StringFixed(2), false, false},
		{"VAT", fmt.Sprintf("%g", inv.VAT), true, false},
		{"Shipping", fmt.Sprintf("%g", inv.Shipping), true, false},
		{"Other", fmt.Sprintf("%g", inv.Other), true, false},
		{fmt.Sprintf("TOTAL %s", inv.Currency), tt.Total.StringFixed(2), false, true},
	}

	y := top

	for _, row := range rows {
		if row.bold {
			s.fillRect(left, y, width, rowHeight, 0.85, 0.85, 0.85)
		}

		s.rect(left, y, width/2, rowHeight, 1)
		s.rect(left+width/2, y, width/2, rowHeight, 1)

		s.text(left+6, y+18, 12, row.bold, row.label)

		if row.editable && s.mode == ModeEdit {
			s.field(left+width/2+4, y+3, width/2-8, rowHeight-6, 12, row.value)
		} else {
			s.text(left+width/2+6, y+18, 12, row.bold, row.value)
		}

		y += rowHeight
	}
}
