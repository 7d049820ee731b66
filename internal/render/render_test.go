package render_test

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jaessolutions/docdesk/internal/entity"
	"github.com/jaessolutions/docdesk/internal/render"
)

func TestController_RestoreRunsOnEveryExit(t *testing.T) {
	t.Parallel()

	c := render.NewController()
	require.Equal(t, render.ModeEdit, c.Mode())

	restore := c.BeginExport()
	require.Equal(t, render.ModeExport, c.Mode())

	restore()
	require.Equal(t, render.ModeEdit, c.Mode())

	// Restore is idempotent, calling it again must not flip anything.
	restore()
	require.Equal(t, render.ModeEdit, c.Mode())

	func() {
		defer c.BeginExport()()

		require.Equal(t, render.ModeExport, c.Mode())
		// Simulated capture failure, the deferred restore still runs.
	}()

	require.Equal(t, render.ModeEdit, c.Mode())
}

func TestQuoteRegions(t *testing.T) {
	t.Parallel()

	validUntil := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	q := entity.Quote{
		QuoteNumber: 7001,
		Items: []entity.QuoteItem{
			{Qty: 2, Desc: "rack server", Unit: 1250.50},
			{Qty: 1, Desc: "", Unit: 0},
		},
		VATPercent:      20,
		Currency:        entity.QuoteCurrencyGBP,
		ShippingCost:    10,
		SalesConsultant: "J. Smith",
		ValidUntil:      &validUntil,
		Page2Notes:      "Delivery in 4-6 weeks.",
	}

	regions := render.QuoteRegions(q)
	require.Len(t, regions, 2)

	require.Equal(t, "quote-page-1", regions[0].Name())
	require.True(t, regions[0].Visible())

	require.Equal(t, "quote-page-2", regions[1].Name())
	require.False(t, regions[1].Visible(), "page two starts hidden like the editor leaves it")

	for _, mode := range []render.Mode{render.ModeEdit, render.ModeExport} {
		for _, region := range regions {
			img, err := region.Rasterize(mode, 2)
			require.NoError(t, err)

			bounds := img.Bounds()
			require.Equal(t, 794*2, bounds.Dx())
			require.Equal(t, 1123*2, bounds.Dy())

			// Forced white background in the page corner.
			r, g, b, _ := img.At(bounds.Min.X, bounds.Min.Y).RGBA()
			require.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255},
				color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255})
		}
	}
}

func TestInvoiceRegions(t *testing.T) {
	t.Parallel()

	regions := render.InvoiceRegions(entity.Invoice{
		InvoiceNumber: 9001,
		Currency:      entity.InvoiceCurrencyUSD,
		PaymentTerms:  entity.PaymentTerms30Days,
	})
	require.Len(t, regions, 1)
	require.True(t, regions[0].Visible())

	img, err := regions[0].Rasterize(render.ModeExport, 3)
	require.NoError(t, err)
	require.Equal(t, 794*3, img.Bounds().Dx())
}

func TestRegion_RasterizeRejectsBadScale(t *testing.T) {
	t.Parallel()

	regions := render.InvoiceRegions(entity.Invoice{InvoiceNumber: 9001})

	_, err := regions[0].Rasterize(render.ModeExport, 0)
	require.Error(t, err)
}
