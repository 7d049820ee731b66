package totals_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jaessolutions/docdesk/internal/entity"
	"github.com/jaessolutions/docdesk/internal/totals"
)

func TestQuote(t *testing.T) {
	t.Parallel()

	got := totals.Quote([]entity.QuoteItem{
		{Qty: 2, Desc: "workstation", Unit: 50},
	}, 20, 10)

	require.Equal(t, "100.00", got.Subtotal.StringFixed(2))
	require.Equal(t, "20.00", got.VATAmount.StringFixed(2))
	require.Equal(t, "130.00", got.Total.StringFixed(2))
}

func TestQuote_NoItems(t *testing.T) {
	t.Parallel()

	got := totals.Quote(nil, 20, 7.5)

	require.True(t, got.Subtotal.IsZero())
	require.True(t, got.VATAmount.IsZero())
	require.Equal(t, "7.50", got.Total.StringFixed(2))
}

func TestInvoice(t *testing.T) {
	t.Parallel()

	got := totals.Invoice([]entity.InvoiceItem{
		{Item: "A1", Description: "workstation", Qty: 2, Price: 50},
	}, 20, 10, 5)

	require.Equal(t, "100.00", got.Subtotal.StringFixed(2))
	require.Equal(t, "135.00", got.Total.StringFixed(2))
}

func TestQuote_SubtotalOrderIndependent(t *testing.T) {
	t.Parallel()

	items := make([]entity.QuoteItem, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, entity.QuoteItem{
			Qty:  float64(rand.Intn(10)),
			Unit: float64(rand.Intn(500)) / 4,
		})
	}

	want := totals.Quote(items, 0, 0).Subtotal

	shuffled := make([]entity.QuoteItem, len(items))
	copy(shuffled, items)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	require.True(t, want.Equal(totals.Quote(shuffled, 0, 0).Subtotal))
}

func TestNormalizeClampsNegativeEntry(t *testing.T) {
	t.Parallel()

	items := entity.NormalizeQuoteItems([]entity.QuoteItem{
		{Qty: -3, Desc: "bad row", Unit: -10},
		{Qty: 1, Desc: "good row", Unit: 25},
	})

	require.Equal(t, float64(0), items[0].Qty)
	require.Equal(t, float64(0), items[0].Unit)

	// With clamped rows the total can never drop below the
	// surcharge-only floor.
	got := totals.Quote(items, 0, 10)
	require.Equal(t, "35.00", got.Total.StringFixed(2))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tt := totals.Quote([]entity.QuoteItem{{Qty: 3, Unit: 3.333}}, 0, 0)

	require.Equal(t, "£9.99", totals.Format(entity.QuoteCurrencyGBP.Symbol(), tt.Subtotal))
	require.Equal(t, "₹9.99", totals.Format(entity.InvoiceCurrencyINR.Symbol(), tt.Subtotal))
	require.Equal(t, "د.إ9.99", totals.Format(entity.QuoteCurrencyAED.Symbol(), tt.Subtotal))
}
