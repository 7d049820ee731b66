package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jaessolutions/docdesk/internal/entity"
	"github.com/jaessolutions/docdesk/internal/service"
	"github.com/jaessolutions/docdesk/internal/totals"
)

type Service interface {
	OpenQuote(ctx context.Context, ref string) (entity.Quote, error)
	GetQuote(ctx context.Context, number int64) (entity.Quote, error)
	SaveQuote(ctx context.Context, q entity.Quote) (entity.Quote, error)
	RecentQuotes(ctx context.Context) ([]entity.QuoteSummary, error)
	DownloadQuotePDF(ctx context.Context, number int64) (service.DownloadedDocument, error)
	QuotePDFURL(ctx context.Context, number int64) (string, error)

	OpenInvoice(ctx context.Context, ref string) (entity.Invoice, error)
	GetInvoice(ctx context.Context, number int64) (entity.Invoice, error)
	SaveInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
	RecentInvoices(ctx context.Context) ([]entity.InvoiceSummary, error)
	DownloadInvoicePDF(ctx context.Context, number int64) (service.DownloadedDocument, error)
	InvoicePDFURL(ctx context.Context, number int64) (string, error)

	PartyHistory(ctx context.Context) ([]entity.PartyHistory, error)
}

// @title DocDesk API
// @version 1.0
// @description Quotation and invoice editing, numbering and PDF export.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Service health check
// @Tags         health
// @Success      200 {string} string "Service is up"
// @Failure      500 {object} ResponseError "Service is down"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Service is up\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Service is down")
	}
}

type OpenDocumentRequest struct {
	Ref string `json:"ref"`
}

type QuoteTotalsView struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	VATAmount decimal.Decimal `json:"vatAmount"`
	Total     decimal.Decimal `json:"total"`
}

type QuoteResponse struct {
	Quote  entity.Quote    `json:"quote"`
	Totals QuoteTotalsView `json:"totals"`
}

func quoteResponse(q entity.Quote) QuoteResponse {
	tt := totals.Quote(q.Items, q.VATPercent, q.ShippingCost)

	return QuoteResponse{
		Quote: q,
		Totals: QuoteTotalsView{
			Subtotal:  tt.Subtotal,
			VATAmount: tt.VATAmount,
			Total:     tt.Total,
		},
	}
}

// OpenQuote godoc
// @Summary      Open a quotation
// @Description  Loads the quote for a numeric ref, otherwise allocates a fresh number and registers an empty quote under it.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body OpenDocumentRequest true "Editor reference"
// @Success      200 {object} QuoteResponse "The opened quote"
// @Failure      400 {object} ResponseError "Malformed request body"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /quotes/open [post]
func (h *Handler) OpenQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OpenDocumentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Malformed request body")
		return
	}

	q, err := h.s.OpenQuote(ctx, req.Ref)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to open quote")
		return
	}

	SendJSON(ctx, w, http.StatusOK, quoteResponse(q))
}

// SaveQuote godoc
// @Summary      Save a quotation
// @Description  Persists the quote, regenerates its PDF artifact and returns the stored state with computed totals.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body entity.Quote true "The quote to save"
// @Success      200 {object} QuoteResponse "The saved quote"
// @Failure      400 {object} ResponseError "Invalid quote"
// @Failure      409 {object} ResponseError "A save for this quote is already running"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /quotes [put]
func (h *Handler) SaveQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var q entity.Quote

	err := json.NewDecoder(r.Body).Decode(&q)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Malformed request body")
		return
	}

	saved, err := h.s.SaveQuote(ctx, q)
	if err != nil {
		sendDocumentError(ctx, w, err, "Failed to save quote")
		return
	}

	SendJSON(ctx, w, http.StatusOK, quoteResponse(saved))
}

// GetQuote godoc
// @Summary      Read-only quote view
// @Tags         quotes
// @Produce      json
// @Param        number path int true "Quote number"
// @Success      200 {object} QuoteResponse "The stored quote"
// @Failure      404 {object} ResponseError "Quote not found"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /quotes/{number} [get]
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	number, err := documentNumber(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid document number")
		return
	}

	q, err := h.s.GetQuote(ctx, number)
	if err != nil {
		sendDocumentError(ctx, w, err, "Failed to load quote")
		return
	}

	SendJSON(ctx, w, http.StatusOK, quoteResponse(q))
}

// RecentQuotes godoc
// @Summary      Recently saved quotations
// @Tags         quotes
// @Produce      json
// @Success      200 {array} entity.QuoteSummary "Newest first"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /quotes/recent [get]
func (h *Handler) RecentQuotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.s.RecentQuotes(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to list quotes")
		return
	}

	SendJSON(ctx, w, http.StatusOK, summaries)
}

// DownloadQuotePDF godoc
// @Summary      Download the stored quote PDF
// @Tags         quotes
// @Produce      application/pdf
// @Param        number path int true "Quote number"
// @Success      200 {file} file "The PDF artifact"
// @Failure      404 {object} ResponseError "Quote or artifact not found"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /quotes/{number}/download [get]
func (h *Handler) DownloadQuotePDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	number, err := documentNumber(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid document number")
		return
	}

	doc, err := h.s.DownloadQuotePDF(ctx, number)
	if err != nil {
		sendDocumentError(ctx, w, err, "Failed to download quote PDF")
		return
	}

	sendPDF(ctx, w, doc)
}

type SignedURLResponse struct {
	URL string `json:"url"`
}

// QuotePDFURL godoc
// @Summary      Short-lived share link for the quote PDF
// @Tags         quotes
// @Produce      json
// @Param        number path int true "Quote number"
// @Success      200 {object} SignedURLResponse "Signed URL, valid for five minutes"
// @Failure      404 {object} ResponseError "Quote or artifact not found"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /quotes/{number}/url [get]
func (h *Handler) QuotePDFURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	number, err := documentNumber(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid document number")
		return
	}

	url, err := h.s.QuotePDFURL(ctx, number)
	if err != nil {
		sendDocumentError(ctx, w, err, "Failed to sign quote PDF URL")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SignedURLResponse{URL: url})
}

type InvoiceTotalsView struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
}

type InvoiceResponse struct {
	Invoice entity.Invoice    `json:"invoice"`
	Totals  InvoiceTotalsView `json:"totals"`
}

func invoiceResponse(inv entity.Invoice) InvoiceResponse {
	tt := totals.Invoice(inv.Items, inv.VAT, inv.Shipping, inv.Other)

	return InvoiceResponse{
		Invoice: inv,
		Totals: InvoiceTotalsView{
			Subtotal: tt.Subtotal,
			Total:    tt.Total,
		},
	}
}

// OpenInvoice godoc
// @Summary      Open an invoice
// @Description  Loads the invoice for a numeric ref, otherwise allocates a fresh number and registers an empty invoice under it.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body OpenDocumentRequest true "Editor reference"
// @Success      200 {object} InvoiceResponse "The opened invoice"
// @Failure      400 {object} ResponseError "Malformed request body"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /invoices/open [post]
func (h *Handler) OpenInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OpenDocumentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Malformed request body")
		return
	}

	inv, err := h.s.OpenInvoice(ctx, req.Ref)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to open invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceResponse(inv))
}

// SaveInvoice godoc
// @Summary      Save an invoice
// @Description  Persists the invoice, regenerates its PDF artifact and returns the stored state with computed totals.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body entity.Invoice true "The invoice to save"
// @Success      200 {object} InvoiceResponse "The saved invoice"
// @Failure      400 {object} ResponseError "Invalid invoice"
// @Failure      409 {object} ResponseError "A save for this invoice is already running"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /invoices [put]
func (h *Handler) SaveInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var inv entity.Invoice

	err := json.NewDecoder(r.Body).Decode(&inv)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Malformed request body")
		return
	}

	saved, err := h.s.SaveInvoice(ctx, inv)
	if err != nil {
		sendDocumentError(ctx, w, err, "Failed to save invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceResponse(saved))
}

// GetInvoice godoc
// @Summary      Read-only invoice view
// @Tags         invoices
// @Produce      json
// @Param        number path int true "Invoice number"
// @Success      200 {object} InvoiceResponse "The stored invoice"
// @Failure      404 {object} ResponseError "Invoice not found"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /invoices/{number} [get]
func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	number, err := documentNumber(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid document number")
		return
	}

	inv, err := h.s.GetInvoice(ctx, number)
	if err != nil {
		sendDocumentError(ctx, w, err, "Failed to load invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceResponse(inv))
}

// RecentInvoices godoc
// @Summary      Recently saved invoices
// @Tags         invoices
// @Produce      json
// @Success      200 {array} entity.InvoiceSummary "Newest first"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /invoices/recent [get]
func (h *Handler) RecentInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.s.RecentInvoices(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to list invoices")
		return
	}

	SendJSON(ctx, w, http.StatusOK, summaries)
}

// DownloadInvoicePDF godoc
// @Summary      Download the stored invoice PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        number path int true "Invoice number"
// @Success      200 {file} file "The PDF artifact"
// @Failure      404 {object} ResponseError "Invoice or artifact not found"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /invoices/{number}/download [get]
func (h *Handler) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	number, err := documentNumber(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid document number")
		return
	}

	doc, err := h.s.DownloadInvoicePDF(ctx, number)
	if err != nil {
		sendDocumentError(ctx, w, err, "Failed to download invoice PDF")
		return
	}

	sendPDF(ctx, w, doc)
}

// InvoicePDFURL godoc
// @Summary      Short-lived share link for the invoice PDF
// @Tags         invoices
// @Produce      json
// @Param        number path int true "Invoice number"
// @Success      200 {object} SignedURLResponse "Signed URL, valid for five minutes"
// @Failure      404 {object} ResponseError "Invoice or artifact not found"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /invoices/{number}/url [get]
func (h *Handler) InvoicePDFURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	number, err := documentNumber(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid document number")
		return
	}

	url, err := h.s.InvoicePDFURL(ctx, number)
	if err != nil {
		sendDocumentError(ctx, w, err, "Failed to sign invoice PDF URL")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SignedURLResponse{URL: url})
}

// PartyHistory godoc
// @Summary      Vendor and ship-to pairs from recent invoices
// @Tags         invoices
// @Produce      json
// @Success      200 {array} entity.PartyHistory "Fill-in options"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /invoices/parties [get]
func (h *Handler) PartyHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	history, err := h.s.PartyHistory(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to list parties")
		return
	}

	SendJSON(ctx, w, http.StatusOK, history)
}

func documentNumber(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "number"), 10, 64)
}

func sendDocumentError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entity.ErrIncorrectRequestBody):
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid document")
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, "Document not found")
	case errors.Is(err, entity.ErrSaveInFlight):
		SendErr(ctx, w, http.StatusConflict, err, "A save for this document is already running")
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, msg)
	}
}

func sendPDF(ctx context.Context, w http.ResponseWriter, doc service.DownloadedDocument) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))

	_, err := w.Write(doc.Data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to send PDF")
	}
}
