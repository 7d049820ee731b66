package render

import "image"

// A4 page geometry in pixels at 96 dpi, before supersampling.
const (
	pageWidthPx  = 794
	pageHeightPx = 1123
)

// Region is one capturable document page. Multi-page documents keep only
// the page being edited visible; capture forces the rest visible and
// restores the flags afterwards.
type Region interface {
	Name() string
	Visible() bool
	SetVisible(visible bool)
	Rasterize(mode Mode, scale float64) (image.Image, error)
}

type pageRegion struct {
	name    string
	visible bool
	draw    func(s *sheet)
}

func (r *pageRegion) Name() string { return r.name }

func (r *pageRegion) Visible() bool { return r.visible }

func (r *pageRegion) SetVisible(visible bool) { r.visible = visible }

func (r *pageRegion) Rasterize(mode Mode, scale float64) (image.Image, error) {
	s, err := newSheet(mode, pageWidthPx, pageHeightPx, scale)
	if err != nil {
		return nil, err
	}

	r.draw(s)

	return s.image(), nil
}
