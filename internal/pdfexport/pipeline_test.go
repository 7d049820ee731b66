package pdfexport

import (
	"bytes"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jaessolutions/docdesk/internal/entity"
	"github.com/jaessolutions/docdesk/internal/render"
)

type fakeRegion struct {
	name             string
	visible          bool
	failWith         error
	captured         int
	modeSeen         render.Mode
	visibleAtCapture bool
}

func (r *fakeRegion) Name() string { return r.name }

func (r *fakeRegion) Visible() bool { return r.visible }

func (r *fakeRegion) SetVisible(visible bool) { r.visible = visible }

func (r *fakeRegion) Rasterize(mode render.Mode, scale float64) (image.Image, error) {
	r.captured++
	r.modeSeen = mode
	r.visibleAtCapture = r.visible

	if r.failWith != nil {
		return nil, r.failWith
	}

	w := int(100 * scale)

	img := image.NewRGBA(image.Rect(0, 0, w, w*2))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	return img, nil
}

func testPipeline() *Pipeline {
	return &Pipeline{scale: 2, settle: time.Millisecond}
}

func TestAssemble_MultiPage(t *testing.T) {
	t.Parallel()

	page1 := &fakeRegion{name: "page-1", visible: true}
	page2 := &fakeRegion{name: "page-2", visible: false}
	ctrl := render.NewController()

	out, err := testPipeline().Assemble(ctrl, []render.Region{page1, page2})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	require.Equal(t, 1, page1.captured)
	require.Equal(t, 1, page2.captured)
	require.Equal(t, render.ModeExport, page1.modeSeen)

	// A hidden page is forced visible for its capture and put back after.
	require.True(t, page2.visibleAtCapture)
	require.False(t, page2.Visible())
	require.True(t, page1.Visible())

	require.Equal(t, render.ModeEdit, ctrl.Mode())
}

func TestAssemble_FailureRestoresEverything(t *testing.T) {
	t.Parallel()

	captureErr := errors.New("canvas lost")
	page1 := &fakeRegion{name: "page-1", visible: true}
	page2 := &fakeRegion{name: "page-2", visible: false, failWith: captureErr}
	ctrl := render.NewController()

	_, err := testPipeline().Assemble(ctrl, []render.Region{page1, page2})
	require.ErrorIs(t, err, captureErr)

	require.Equal(t, render.ModeEdit, ctrl.Mode())
	require.True(t, page1.Visible())
	require.False(t, page2.Visible())
}

func TestAssemble_CaptureOrderIsCallerDefined(t *testing.T) {
	t.Parallel()

	var order []string

	first := &orderedRegion{fakeRegion: fakeRegion{name: "first", visible: true}, order: &order}
	second := &orderedRegion{fakeRegion: fakeRegion{name: "second", visible: true}, order: &order}

	_, err := testPipeline().Assemble(render.NewController(), []render.Region{first, second})
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, order)
}

type orderedRegion struct {
	fakeRegion
	order *[]string
}

func (r *orderedRegion) Rasterize(mode render.Mode, scale float64) (image.Image, error) {
	*r.order = append(*r.order, r.name)
	return r.fakeRegion.Rasterize(mode, scale)
}

func TestAssemble_NoRegions(t *testing.T) {
	t.Parallel()

	_, err := testPipeline().Assemble(render.NewController(), nil)
	require.Error(t, err)
}

func TestExporter_RealDocuments(t *testing.T) {
	t.Parallel()

	e := NewExporter()

	quotePDF, err := e.QuotePDF(entity.Quote{
		QuoteNumber: 7001,
		Items:       []entity.QuoteItem{{Qty: 2, Desc: "rack server", Unit: 50}},
		VATPercent:  20,
		Currency:    entity.QuoteCurrencyGBP,
	})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(quotePDF, []byte("%PDF")))

	invoicePDF, err := e.InvoicePDF(entity.Invoice{
		InvoiceNumber: 9001,
		Currency:      entity.InvoiceCurrencyINR,
		Items:         []entity.InvoiceItem{{Item: "A1", Qty: 1, Price: 10}},
	})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(invoicePDF, []byte("%PDF")))
}
