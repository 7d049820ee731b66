package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/jaessolutions/docdesk/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	SaveQuote(ctx context.Context, q entity.Quote) error
	QuoteByNumber(ctx context.Context, number int64) (entity.Quote, error)
	RecentQuotes(ctx context.Context, limit uint64) ([]entity.QuoteSummary, error)
	SetQuotePDFPath(ctx context.Context, number int64, path string) error

	SaveInvoice(ctx context.Context, inv entity.Invoice) error
	InvoiceByNumber(ctx context.Context, number int64) (entity.Invoice, error)
	RecentInvoices(ctx context.Context, limit uint64) ([]entity.InvoiceSummary, error)
	SetInvoicePDFPath(ctx context.Context, number int64, path string) error

	Next(ctx context.Context, class entity.DocClass) (int64, error)
	PartyHistory(ctx context.Context, limit uint64) ([]entity.PartyHistory, error)
}

type ObjectStorage interface {
	Upload(ctx context.Context, bucket, key string, body []byte) error
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	SignedURL(ctx context.Context, bucket, key string) (string, error)
}

type PDFExporter interface {
	QuotePDF(q entity.Quote) ([]byte, error)
	InvoicePDF(inv entity.Invoice) ([]byte, error)
}

type Events interface {
	SendDocumentSaved(ctx context.Context, class entity.DocClass, number int64, pdfPath string)
}

type Service struct {
	repo           Repository
	storage        ObjectStorage
	exporter       PDFExporter
	events         Events
	quotesBucket   string
	invoicesBucket string
	recentLimit    uint64

	// One in-flight save per document, later attempts are rejected.
	saving sync.Map
}

func New(
	repo Repository,
	storage ObjectStorage,
	exporter PDFExporter,
	events Events,
	quotesBucket string,
	invoicesBucket string,
	recentLimit uint64,
) *Service {
	return &Service{
		repo:           repo,
		storage:        storage,
		exporter:       exporter,
		events:         events,
		quotesBucket:   quotesBucket,
		invoicesBucket: invoicesBucket,
		recentLimit:    recentLimit,
	}
}

// OpenQuote resolves an editor reference to a quote. A numeric ref loads
// the stored document; anything else allocates a fresh number and
// persists an empty quote under it right away, so the number is burned
// even if the user never saves.
func (s *Service) OpenQuote(ctx context.Context, ref string) (entity.Quote, error) {
	number, numErr := strconv.ParseInt(ref, 10, 64)
	if numErr == nil && number > 0 {
		q, err := s.repo.QuoteByNumber(ctx, number)
		if err == nil {
			return q, nil
		}

		if !errors.Is(err, entity.ErrNotFound) {
			return entity.Quote{}, err
		}
	} else {
		var err error

		number, err = s.repo.Next(ctx, entity.DocClassQuote)
		if err != nil {
			return entity.Quote{}, err
		}
	}

	q := entity.Quote{
		QuoteNumber: number,
		Currency:    entity.QuoteCurrencyGBP,
		VATPercent:  20,
	}

	err := s.repo.SaveQuote(ctx, q)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("register quote %d: %w", number, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("opened new quote %d", number))

	return q, nil
}

// OpenInvoice mirrors OpenQuote and additionally parks an empty artifact
// under the invoice's PDF key, so share links resolve before the first
// real export.
func (s *Service) OpenInvoice(ctx context.Context, ref string) (entity.Invoice, error) {
	number, numErr := strconv.ParseInt(ref, 10, 64)
	if numErr == nil && number > 0 {
		inv, err := s.repo.InvoiceByNumber(ctx, number)
		if err == nil {
			return inv, nil
		}

		if !errors.Is(err, entity.ErrNotFound) {
			return entity.Invoice{}, err
		}
	} else {
		var err error

		number, err = s.repo.Next(ctx, entity.DocClassInvoice)
		if err != nil {
			return entity.Invoice{}, err
		}
	}

	inv := entity.Invoice{
		InvoiceNumber: number,
		Currency:      entity.InvoiceCurrencyUSD,
		PaymentTerms:  entity.PaymentTerms30Days,
	}

	err := s.repo.SaveInvoice(ctx, inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("register invoice %d: %w", number, err)
	}

	err = s.storage.Upload(ctx, s.invoicesBucket, entity.InvoicePDFName(number), nil)
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("upload placeholder for invoice %d: %s", number, err))
	}

	slog.InfoContext(ctx, fmt.Sprintf("opened new invoice %d", number))

	return inv, nil
}

// SaveQuote persists the quote, regenerates its PDF and refreshes the
// stored artifact. The database write is the source of truth: its failure
// aborts the save, while an artifact upload failure is logged and
// swallowed so the user's data is never lost over storage hiccups.
func (s *Service) SaveQuote(ctx context.Context, q entity.Quote) (entity.Quote, error) {
	err := ValidateQuote(q)
	if err != nil {
		return entity.Quote{}, err
	}

	release, err := s.acquireSaveSlot(entity.DocClassQuote, q.QuoteNumber)
	if err != nil {
		return entity.Quote{}, err
	}
	defer release()

	q.Items = entity.NormalizeQuoteItems(q.Items)

	err = s.repo.SaveQuote(ctx, q)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("save quote %d: %w", q.QuoteNumber, err)
	}

	pdf, err := s.exporter.QuotePDF(q)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("export quote %d: %w", q.QuoteNumber, err)
	}

	name := entity.QuotePDFName(q.QuoteNumber)

	err = s.storage.Upload(ctx, s.quotesBucket, name, pdf)
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("upload %s: %s", name, err))

		return s.repo.QuoteByNumber(ctx, q.QuoteNumber)
	}

	err = s.repo.SetQuotePDFPath(ctx, q.QuoteNumber, name)
	if err != nil {
		return entity.Quote{}, err
	}

	s.events.SendDocumentSaved(ctx, entity.DocClassQuote, q.QuoteNumber, name)

	return s.repo.QuoteByNumber(ctx, q.QuoteNumber)
}

func (s *Service) SaveInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	err := ValidateInvoice(inv)
	if err != nil {
		return entity.Invoice{}, err
	}

	release, err := s.acquireSaveSlot(entity.DocClassInvoice, inv.InvoiceNumber)
	if err != nil {
		return entity.Invoice{}, err
	}
	defer release()

	inv.Items = entity.NormalizeInvoiceItems(inv.Items)

	err = s.repo.SaveInvoice(ctx, inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("save invoice %d: %w", inv.InvoiceNumber, err)
	}

	pdf, err := s.exporter.InvoicePDF(inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("export invoice %d: %w", inv.InvoiceNumber, err)
	}

	name := entity.InvoicePDFName(inv.InvoiceNumber)

	err = s.storage.Upload(ctx, s.invoicesBucket, name, pdf)
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("upload %s: %s", name, err))

		return s.repo.InvoiceByNumber(ctx, inv.InvoiceNumber)
	}

	err = s.repo.SetInvoicePDFPath(ctx, inv.InvoiceNumber, name)
	if err != nil {
		return entity.Invoice{}, err
	}

	s.events.SendDocumentSaved(ctx, entity.DocClassInvoice, inv.InvoiceNumber, name)

	return s.repo.InvoiceByNumber(ctx, inv.InvoiceNumber)
}

func (s *Service) GetQuote(ctx context.Context, number int64) (entity.Quote, error) {
	return s.repo.QuoteByNumber(ctx, number)
}

func (s *Service) GetInvoice(ctx context.Context, number int64) (entity.Invoice, error) {
	return s.repo.InvoiceByNumber(ctx, number)
}

func (s *Service) RecentQuotes(ctx context.Context) ([]entity.QuoteSummary, error) {
	return s.repo.RecentQuotes(ctx, s.recentLimit)
}

func (s *Service) RecentInvoices(ctx context.Context) ([]entity.InvoiceSummary, error) {
	return s.repo.RecentInvoices(ctx, s.recentLimit)
}

func (s *Service) PartyHistory(ctx context.Context) ([]entity.PartyHistory, error) {
	return s.repo.PartyHistory(ctx, s.recentLimit)
}

type DownloadedDocument struct {
	Name string
	Data []byte
}

func (s *Service) DownloadQuotePDF(ctx context.Context, number int64) (DownloadedDocument, error) {
	q, err := s.repo.QuoteByNumber(ctx, number)
	if err != nil {
		return DownloadedDocument{}, err
	}

	if q.PDFPath == "" {
		return DownloadedDocument{}, fmt.Errorf("%w: quote %d has no artifact yet", entity.ErrNotFound, number)
	}

	data, err := s.storage.Download(ctx, s.quotesBucket, q.PDFPath)
	if err != nil {
		return DownloadedDocument{}, err
	}

	return DownloadedDocument{Name: q.PDFPath, Data: data}, nil
}

func (s *Service) DownloadInvoicePDF(ctx context.Context, number int64) (DownloadedDocument, error) {
	inv, err := s.repo.InvoiceByNumber(ctx, number)
	if err != nil {
		return DownloadedDocument{}, err
	}

	if inv.PDFPath == "" {
		return DownloadedDocument{}, fmt.Errorf("%w: invoice %d has no artifact yet", entity.ErrNotFound, number)
	}

	data, err := s.storage.Download(ctx, s.invoicesBucket, inv.PDFPath)
	if err != nil {
		return DownloadedDocument{}, err
	}

	return DownloadedDocument{Name: inv.PDFPath, Data: data}, nil
}

// QuotePDFURL returns a short-lived share link for the stored artifact.
func (s *Service) QuotePDFURL(ctx context.Context, number int64) (string, error) {
	q, err := s.repo.QuoteByNumber(ctx, number)
	if err != nil {
		return "", err
	}

	if q.PDFPath == "" {
		return "", fmt.Errorf("%w: quote %d has no artifact yet", entity.ErrNotFound, number)
	}

	return s.storage.SignedURL(ctx, s.quotesBucket, q.PDFPath)
}

func (s *Service) InvoicePDFURL(ctx context.Context, number int64) (string, error) {
	inv, err := s.repo.InvoiceByNumber(ctx, number)
	if err != nil {
		return "", err
	}

	if inv.PDFPath == "" {
		return "", fmt.Errorf("%w: invoice %d has no artifact yet", entity.ErrNotFound, number)
	}

	return s.storage.SignedURL(ctx, s.invoicesBucket, inv.PDFPath)
}

func (s *Service) acquireSaveSlot(class entity.DocClass, number int64) (func(), error) {
	key := string(class) + "-" + strconv.FormatInt(number, 10)

	_, inFlight := s.saving.LoadOrStore(key, struct{}{})
	if inFlight {
		return nil, fmt.Errorf("%w: %s", entity.ErrSaveInFlight, key)
	}

	return func() { s.saving.Delete(key) }, nil
}
