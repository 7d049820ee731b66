package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jaessolutions/docdesk/internal/entity"
	"github.com/jaessolutions/docdesk/internal/mocks"
	"github.com/jaessolutions/docdesk/internal/service"
)

const (
	quotesBucket   = "quotes-pdf"
	invoicesBucket = "invoices"
	recentLimit    = 50
)

type TestService struct {
	repo     *mocks.MockRepository
	storage  *mocks.MockObjectStorage
	exporter *mocks.MockPDFExporter
	events   *mocks.MockEvents
	s        *service.Service
}

func NewTestService(t *testing.T) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRepository(ctrl)
	storage := mocks.NewMockObjectStorage(ctrl)
	exporter := mocks.NewMockPDFExporter(ctrl)
	events := mocks.NewMockEvents(ctrl)

	s := service.New(repo, storage, exporter, events, quotesBucket, invoicesBucket, recentLimit)

	return &TestService{
		repo:     repo,
		storage:  storage,
		exporter: exporter,
		events:   events,
		s:        s,
	}
}

func validQuote() entity.Quote {
	return entity.Quote{
		QuoteNumber: 7001,
		Items:       []entity.QuoteItem{{Qty: 2, Desc: "rack server", Unit: 50}},
		VATPercent:  20,
		Currency:    entity.QuoteCurrencyGBP,
	}
}

func TestService_SaveQuote(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()
	q := validQuote()
	pdf := []byte("%PDF-1.4 quote")
	name := entity.QuotePDFName(q.QuoteNumber)

	stored := q
	stored.PDFPath = name

	ts.repo.EXPECT().SaveQuote(ctx, gomock.Any()).Return(nil)
	ts.exporter.EXPECT().QuotePDF(gomock.Any()).Return(pdf, nil)
	ts.storage.EXPECT().Upload(ctx, quotesBucket, name, pdf).Return(nil)
	ts.repo.EXPECT().SetQuotePDFPath(ctx, q.QuoteNumber, name).Return(nil)
	ts.events.EXPECT().SendDocumentSaved(ctx, entity.DocClassQuote, q.QuoteNumber, name)
	ts.repo.EXPECT().QuoteByNumber(ctx, q.QuoteNumber).Return(stored, nil)

	got, err := ts.s.SaveQuote(ctx, q)
	r.NoError(err)
	r.Equal(name, got.PDFPath)
}

func TestService_SaveQuote_RepoFailureAborts(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()
	dbErr := errors.New("connection refused")

	// No exporter, storage or event expectations: the save stops at the
	// database write.
	ts.repo.EXPECT().SaveQuote(ctx, gomock.Any()).Return(dbErr)

	_, err := ts.s.SaveQuote(ctx, validQuote())
	r.ErrorIs(err, dbErr)
}

func TestService_SaveQuote_ExportFailureSurfaces(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()
	exportErr := errors.New("rasterize failed")

	ts.repo.EXPECT().SaveQuote(ctx, gomock.Any()).Return(nil)
	ts.exporter.EXPECT().QuotePDF(gomock.Any()).Return(nil, exportErr)

	_, err := ts.s.SaveQuote(ctx, validQuote())
	r.ErrorIs(err, exportErr)
}

func TestService_SaveQuote_UploadFailureKeepsData(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()
	q := validQuote()
	name := entity.QuotePDFName(q.QuoteNumber)

	ts.repo.EXPECT().SaveQuote(ctx, gomock.Any()).Return(nil)
	ts.exporter.EXPECT().QuotePDF(gomock.Any()).Return([]byte("%PDF"), nil)
	ts.storage.EXPECT().Upload(ctx, quotesBucket, name, gomock.Any()).Return(errors.New("bucket unreachable"))
	// pdf_path stays untouched and no event goes out, but the saved row
	// still comes back without an error.
	ts.repo.EXPECT().QuoteByNumber(ctx, q.QuoteNumber).Return(q, nil)

	got, err := ts.s.SaveQuote(ctx, q)
	r.NoError(err)
	r.Empty(got.PDFPath)
}

func TestService_SaveQuote_RejectsInvalid(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()

	for _, q := range []entity.Quote{
		{QuoteNumber: 500, Currency: entity.QuoteCurrencyGBP},
		{QuoteNumber: 7001, Currency: "EUR"},
		{QuoteNumber: 7001, Currency: entity.QuoteCurrencyGBP, VATPercent: 120},
		{QuoteNumber: 7001, Currency: entity.QuoteCurrencyGBP, ShippingCost: -1},
	} {
		_, err := ts.s.SaveQuote(ctx, q)
		r.ErrorIs(err, entity.ErrIncorrectRequestBody)
	}
}

func TestService_SaveQuote_SecondSaveIsRejectedWhileFirstRuns(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()
	q := validQuote()
	name := entity.QuotePDFName(q.QuoteNumber)

	entered := make(chan struct{})
	release := make(chan struct{})

	ts.repo.EXPECT().SaveQuote(ctx, gomock.Any()).DoAndReturn(
		func(context.Context, entity.Quote) error {
			close(entered)
			<-release
			return nil
		})
	ts.exporter.EXPECT().QuotePDF(gomock.Any()).Return([]byte("%PDF"), nil)
	ts.storage.EXPECT().Upload(ctx, quotesBucket, name, gomock.Any()).Return(nil)
	ts.repo.EXPECT().SetQuotePDFPath(ctx, q.QuoteNumber, name).Return(nil)
	ts.events.EXPECT().SendDocumentSaved(ctx, entity.DocClassQuote, q.QuoteNumber, name)
	ts.repo.EXPECT().QuoteByNumber(ctx, q.QuoteNumber).Return(q, nil)

	done := make(chan error, 1)

	go func() {
		_, err := ts.s.SaveQuote(ctx, q)
		done <- err
	}()

	<-entered

	// Same document, save still in flight.
	_, err := ts.s.SaveQuote(ctx, q)
	r.ErrorIs(err, entity.ErrSaveInFlight)

	close(release)
	r.NoError(<-done)

	// The latch is released once the first save finishes.
	ts.repo.EXPECT().SaveQuote(ctx, gomock.Any()).Return(errors.New("enough"))

	_, err = ts.s.SaveQuote(ctx, q)
	r.Error(err)
	r.NotErrorIs(err, entity.ErrSaveInFlight)
}

func TestService_OpenQuote(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()
	stored := validQuote()

	// A numeric ref loads the stored document without touching the counter.
	ts.repo.EXPECT().QuoteByNumber(ctx, int64(7001)).Return(stored, nil)

	got, err := ts.s.OpenQuote(ctx, "7001")
	r.NoError(err)
	r.Equal(stored, got)

	// Anything else allocates a fresh number and registers it immediately.
	for _, ref := range []string{"", "new", "12abc", "-5"} {
		ts.repo.EXPECT().Next(ctx, entity.DocClassQuote).Return(int64(7042), nil)
		ts.repo.EXPECT().SaveQuote(ctx, gomock.Any()).Return(nil)

		got, err = ts.s.OpenQuote(ctx, ref)
		r.NoError(err)
		r.Equal(int64(7042), got.QuoteNumber)
		r.Equal(entity.QuoteCurrencyGBP, got.Currency)
	}

	// A numeric ref with no stored row keeps the requested number.
	ts.repo.EXPECT().QuoteByNumber(ctx, int64(7100)).Return(entity.Quote{}, entity.ErrNotFound)
	ts.repo.EXPECT().SaveQuote(ctx, gomock.Any()).Return(nil)

	got, err = ts.s.OpenQuote(ctx, "7100")
	r.NoError(err)
	r.Equal(int64(7100), got.QuoteNumber)
}

func TestService_OpenInvoice_ParksPlaceholderArtifact(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()

	ts.repo.EXPECT().Next(ctx, entity.DocClassInvoice).Return(int64(9001), nil)
	ts.repo.EXPECT().SaveInvoice(ctx, gomock.Any()).Return(nil)
	ts.storage.EXPECT().Upload(ctx, invoicesBucket, entity.InvoicePDFName(9001), gomock.Any()).
		Return(errors.New("bucket unreachable"))

	// The placeholder upload failing never fails the open.
	got, err := ts.s.OpenInvoice(ctx, "new")
	r.NoError(err)
	r.Equal(int64(9001), got.InvoiceNumber)
	r.Equal(entity.PaymentTerms30Days, got.PaymentTerms)
}

func TestService_SaveInvoice(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()
	inv := entity.Invoice{
		InvoiceNumber: 9001,
		Currency:      entity.InvoiceCurrencyUSD,
		PaymentTerms:  entity.PaymentTerms60Days,
		Items:         []entity.InvoiceItem{{Item: "A1", Qty: 1, Price: 10}},
	}
	name := entity.InvoicePDFName(inv.InvoiceNumber)

	stored := inv
	stored.PDFPath = name

	ts.repo.EXPECT().SaveInvoice(ctx, gomock.Any()).Return(nil)
	ts.exporter.EXPECT().InvoicePDF(gomock.Any()).Return([]byte("%PDF"), nil)
	ts.storage.EXPECT().Upload(ctx, invoicesBucket, name, gomock.Any()).Return(nil)
	ts.repo.EXPECT().SetInvoicePDFPath(ctx, inv.InvoiceNumber, name).Return(nil)
	ts.events.EXPECT().SendDocumentSaved(ctx, entity.DocClassInvoice, inv.InvoiceNumber, name)
	ts.repo.EXPECT().InvoiceByNumber(ctx, inv.InvoiceNumber).Return(stored, nil)

	got, err := ts.s.SaveInvoice(ctx, inv)
	r.NoError(err)
	r.Equal(name, got.PDFPath)

	_, err = ts.s.SaveInvoice(ctx, entity.Invoice{
		InvoiceNumber: 9002,
		Currency:      entity.InvoiceCurrencyUSD,
		PaymentTerms:  "45 days",
	})
	r.ErrorIs(err, entity.ErrIncorrectRequestBody)
}

func TestService_DownloadQuotePDF(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()
	name := entity.QuotePDFName(7001)

	stored := validQuote()
	stored.PDFPath = name

	ts.repo.EXPECT().QuoteByNumber(ctx, int64(7001)).Return(stored, nil)
	ts.storage.EXPECT().Download(ctx, quotesBucket, name).Return([]byte("%PDF"), nil)

	doc, err := ts.s.DownloadQuotePDF(ctx, 7001)
	r.NoError(err)
	r.Equal(name, doc.Name)
	r.NotEmpty(doc.Data)

	// No artifact yet.
	ts.repo.EXPECT().QuoteByNumber(ctx, int64(7002)).Return(validQuote(), nil)

	_, err = ts.s.DownloadQuotePDF(ctx, 7002)
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_InvoicePDFURL(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()
	name := entity.InvoicePDFName(9001)

	stored := entity.Invoice{InvoiceNumber: 9001, PDFPath: name}

	ts.repo.EXPECT().InvoiceByNumber(ctx, int64(9001)).Return(stored, nil)
	ts.storage.EXPECT().SignedURL(ctx, invoicesBucket, name).Return("https://signed.example/"+name, nil)

	url, err := ts.s.InvoicePDFURL(ctx, 9001)
	r.NoError(err)
	r.Contains(url, name)
}
