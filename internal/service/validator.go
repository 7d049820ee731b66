package service

import (
	"fmt"

	"github.com/jaessolutions/docdesk/internal/entity"
	"github.com/jaessolutions/docdesk/internal/sequence"
)

func ValidateQuote(q entity.Quote) error {
	if q.QuoteNumber <= sequence.QuoteFloor {
		return fmt.Errorf("%w: quote number %d", entity.ErrIncorrectRequestBody, q.QuoteNumber)
	}

	if !q.Currency.IsValid() {
		return fmt.Errorf("%w: invalid currency %q", entity.ErrIncorrectRequestBody, q.Currency)
	}

	if q.VATPercent < 0 || q.VATPercent > 100 {
		return fmt.Errorf("%w: vat percent %v out of range", entity.ErrIncorrectRequestBody, q.VATPercent)
	}

	if q.ShippingCost < 0 {
		return fmt.Errorf("%w: negative shipping cost", entity.ErrIncorrectRequestBody)
	}

	return nil
}

func ValidateInvoice(inv entity.Invoice) error {
	if inv.InvoiceNumber <= sequence.InvoiceFloor {
		return fmt.Errorf("%w: invoice number %d", entity.ErrIncorrectRequestBody, inv.InvoiceNumber)
	}

	if !inv.Currency.IsValid() {
		return fmt.Errorf("%w: invalid currency %q", entity.ErrIncorrectRequestBody, inv.Currency)
	}

	if inv.PaymentTerms != "" && !entity.IsValidPaymentTerms(inv.PaymentTerms) {
		return fmt.Errorf("%w: invalid payment terms %q", entity.ErrIncorrectRequestBody, inv.PaymentTerms)
	}

	if inv.VAT < 0 || inv.Shipping < 0 || inv.Other < 0 {
		return fmt.Errorf("%w: negative charge", entity.ErrIncorrectRequestBody)
	}

	return nil
}
