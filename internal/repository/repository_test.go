package repository_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/jaessolutions/docdesk/internal/entity"
	"github.com/jaessolutions/docdesk/internal/repository"
	"github.com/jaessolutions/docdesk/pkg/postgres"
)

func TestRepository_QuoteRoundTrip(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	number := testNumber()
	validUntil := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	want := entity.Quote{
		QuoteNumber: number,
		Items: []entity.QuoteItem{
			{Qty: 2, Desc: "rack server", Unit: 1250.50},
			{Qty: 1, Desc: "install", Unit: 300},
		},
		VATPercent:      20,
		Currency:        entity.QuoteCurrencyGBP,
		ShippingCost:    45,
		SalesConsultant: "J. Smith",
		ValidUntil:      &validUntil,
		InvoiceAddress:  "1 High Street",
		DeliveryAddress: "2 Low Street",
		Page2Notes:      "Delivery in 4-6 weeks.",
	}

	err := repo.SaveQuote(ctx, want)
	require.NoError(t, err)

	got, err := repo.QuoteByNumber(ctx, number)
	require.NoError(t, err)
	require.Equal(t, want.Items, got.Items)
	require.Equal(t, want.VATPercent, got.VATPercent)
	require.Equal(t, want.Currency, got.Currency)
	require.Equal(t, want.SalesConsultant, got.SalesConsultant)
	require.True(t, validUntil.Equal(*got.ValidUntil))
	require.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)

	// Re-saving the same number replaces the row, last write wins.
	want.Items = []entity.QuoteItem{{Qty: 3, Desc: "rack server", Unit: 1200}}
	want.ShippingCost = 0

	err = repo.SaveQuote(ctx, want)
	require.NoError(t, err)

	got, err = repo.QuoteByNumber(ctx, number)
	require.NoError(t, err)
	require.Equal(t, want.Items, got.Items)
	require.Zero(t, got.ShippingCost)

	err = repo.SetQuotePDFPath(ctx, number, entity.QuotePDFName(number))
	require.NoError(t, err)

	got, err = repo.QuoteByNumber(ctx, number)
	require.NoError(t, err)
	require.Equal(t, entity.QuotePDFName(number), got.PDFPath)
}

func TestRepository_InvoiceRoundTrip(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	number := testNumber()

	want := entity.Invoice{
		InvoiceNumber: number,
		Currency:      entity.InvoiceCurrencyINR,
		PONumber:      "PO-4711",
		PaymentTerms:  entity.PaymentTerms60Days,
		Vendor:        entity.Party{Name: "ACME Ltd\n3 Side Road"},
		ShipTo:        entity.Party{Name: "Receiver\n4 Dock Lane"},
		Items: []entity.InvoiceItem{
			{Item: "A1", Description: "widget", Qty: 4, Price: 12.5},
		},
		Comments: "Leave at reception.",
		VAT:      10,
		Shipping: 5,
		Other:    1.5,
	}

	err := repo.SaveInvoice(ctx, want)
	require.NoError(t, err)

	got, err := repo.InvoiceByNumber(ctx, number)
	require.NoError(t, err)
	require.Equal(t, want.Items, got.Items)
	require.Equal(t, want.Vendor, got.Vendor)
	require.Equal(t, want.ShipTo, got.ShipTo)
	require.Equal(t, want.VAT, got.VAT)
	require.Equal(t, want.PaymentTerms, got.PaymentTerms)

	history, err := repo.PartyHistory(ctx, 50)
	require.NoError(t, err)
	require.NotEmpty(t, history)

	for _, h := range history {
		require.NotEmpty(t, h.Label)
	}
}

func TestRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	_, err := repo.QuoteByNumber(ctx, 1)
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = repo.InvoiceByNumber(ctx, 1)
	require.ErrorIs(t, err, entity.ErrNotFound)

	err = repo.SetQuotePDFPath(ctx, 1, "Quotation-1.pdf")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_RecentQuotesOrder(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	first := testNumber()
	second := first + 1

	for _, number := range []int64{first, second} {
		err := repo.SaveQuote(ctx, entity.Quote{
			QuoteNumber: number,
			Currency:    entity.QuoteCurrencyUSD,
		})
		require.NoError(t, err)
	}

	summaries, err := repo.RecentQuotes(ctx, 100)
	require.NoError(t, err)

	positions := make(map[int64]int, len(summaries))
	for i, s := range summaries {
		positions[s.QuoteNumber] = i
	}

	require.Contains(t, positions, first)
	require.Contains(t, positions, second)
	require.Less(t, positions[second], positions[first], "newest number comes first")
}

func TestRepository_NextIsAtomic(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	first, err := repo.Next(ctx, entity.DocClassQuote)
	require.NoError(t, err)
	require.Greater(t, first, int64(7000))

	const workers = 8

	var (
		mu      sync.Mutex
		numbers = make(map[int64]struct{}, workers)
		wg      sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			n, err := repo.Next(ctx, entity.DocClassQuote)
			require.NoError(t, err)

			mu.Lock()
			numbers[n] = struct{}{}
			mu.Unlock()
		}()
	}

	wg.Wait()
	require.Len(t, numbers, workers, "every caller gets a distinct number")

	invoiceNumber, err := repo.Next(ctx, entity.DocClassInvoice)
	require.NoError(t, err)
	require.Greater(t, invoiceNumber, int64(9000), "classes count independently")

	_, err = repo.Next(ctx, entity.DocClass("letter"))
	require.Error(t, err)
}

func dbPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	err := postgres.UpMigrations(dsn)
	require.NoError(t, err)

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

// testNumber derives a document number unlikely to collide between runs
// against a shared database.
func testNumber() int64 {
	return time.Now().UnixNano() % 1_000_000_000
}
