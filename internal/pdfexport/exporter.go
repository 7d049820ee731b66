package pdfexport

import (
	"github.com/jaessolutions/docdesk/internal/entity"
	"github.com/jaessolutions/docdesk/internal/render"
)

// Exporter renders whole documents. Each export gets its own mode
// controller, so concurrent exports of different documents cannot leave
// each other stuck mid-toggle.
type Exporter struct {
	pipeline *Pipeline
}

func NewExporter() *Exporter {
	return &Exporter{pipeline: NewPipeline()}
}

// QuotePDF captures both quotation pages regardless of which one the
// editor last displayed.
func (e *Exporter) QuotePDF(q entity.Quote) ([]byte, error) {
	return e.pipeline.Assemble(render.NewController(), render.QuoteRegions(q))
}

func (e *Exporter) InvoicePDF(inv entity.Invoice) ([]byte, error) {
	return e.pipeline.Assemble(render.NewController(), render.InvoiceRegions(inv))
}
