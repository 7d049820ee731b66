// Package pdfexport assembles captured page regions into a print-ready
// A4 PDF.
package pdfexport

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/jaessolutions/docdesk/internal/render"
)

const (
	pageWidthMM = 210.0
	marginMM    = 15.0

	// Supersampling factor for print-quality output.
	captureScale = 3.0

	// Brief pause after the mode flip so region state settles before the
	// first capture.
	settleDelay = 10 * time.Millisecond
)

type Pipeline struct {
	scale  float64
	settle time.Duration
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		scale:  captureScale,
		settle: settleDelay,
	}
}

// Assemble captures every region in order into one PDF and returns the
// serialized bytes. Hidden regions are forced visible for their capture.
// Whatever happens, the controller mode and all visibility flags are
// restored before returning.
func (p *Pipeline) Assemble(ctrl *render.Controller, regions []render.Region) (_ []byte, err error) {
	if len(regions) == 0 {
		return nil, fmt.Errorf("nothing to capture")
	}

	restore := ctrl.BeginExport()
	defer restore()

	wasVisible := make([]bool, len(regions))

	for i, region := range regions {
		wasVisible[i] = region.Visible()
		region.SetVisible(true)
	}

	defer func() {
		for i, region := range regions {
			region.SetVisible(wasVisible[i])
		}
	}()

	time.Sleep(p.settle)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	usableWidth := pageWidthMM - 2*marginMM

	for i, region := range regions {
		if i > 0 {
			pdf.AddPage()
		}

		img, rErr := region.Rasterize(render.ModeExport, p.scale)
		if rErr != nil {
			return nil, fmt.Errorf("rasterize %s: %w", region.Name(), rErr)
		}

		var buf bytes.Buffer

		err = png.Encode(&buf, img)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", region.Name(), err)
		}

		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(region.Name(), opts, &buf)

		// Fill the usable width, height follows the aspect ratio.
		bounds := img.Bounds()
		height := usableWidth * float64(bounds.Dy()) / float64(bounds.Dx())

		pdf.ImageOptions(region.Name(), marginMM, marginMM, usableWidth, height, false, opts, 0, "")
	}

	var out bytes.Buffer

	err = pdf.Output(&out)
	if err != nil {
		return nil, fmt.Errorf("serialize pdf: %w", err)
	}

	return out.Bytes(), nil
}
