package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// basicFace is the fallback when a sized face cannot be built.
var basicFace font.Face = basicfont.Face7x13

// Empty values render as a dash in export mode, matching the printed
// documents this layout reproduces.
const emptyValue = "—"

var (
	fontRegular *opentype.Font
	fontBold    *opentype.Font
)

func init() {
	var err error

	fontRegular, err = opentype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("parse regular font: %s", err))
	}

	fontBold, err = opentype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("parse bold font: %s", err))
	}
}

type faceKey struct {
	size float64
	bold bool
}

// sheet is a drawing surface for one page. All coordinates are in base
// pixels; the sheet multiplies by the supersampling scale so print-quality
// rasterization needs no changes in the page code.
type sheet struct {
	dc    *gg.Context
	mode  Mode
	scale float64
	faces map[faceKey]font.Face
}

func newSheet(mode Mode, widthPx, heightPx int, scale float64) (*sheet, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid capture scale %v", scale)
	}

	dc := gg.NewContext(int(float64(widthPx)*scale), int(float64(heightPx)*scale))

	// Deterministic white background, no transparency artifacts.
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)

	return &sheet{
		dc:    dc,
		mode:  mode,
		scale: scale,
		faces: make(map[faceKey]font.Face),
	}, nil
}

func (s *sheet) image() image.Image {
	return s.dc.Image()
}

func (s *sheet) face(size float64, bold bool) font.Face {
	key := faceKey{size: size, bold: bold}
	if f, ok := s.faces[key]; ok {
		return f
	}

	src := fontRegular
	if bold {
		src = fontBold
	}

	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size * s.scale,
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		f = basicFace
	}

	s.faces[key] = f

	return f
}

func (s *sheet) text(x, y, size float64, bold bool, value string) {
	s.dc.SetFontFace(s.face(size, bold))
	s.dc.DrawString(value, x*s.scale, y*s.scale)
}

func (s *sheet) textRight(x, y, size float64, bold bool, value string) {
	s.dc.SetFontFace(s.face(size, bold))
	w, _ := s.dc.MeasureString(value)
	s.dc.DrawString(value, x*s.scale-w, y*s.scale)
}

// wrapped draws multi-line text inside a fixed width, top-aligned.
func (s *sheet) wrapped(x, y, w, size, lineSpacing float64, value string) {
	s.dc.SetFontFace(s.face(size, false))
	s.dc.DrawStringWrapped(value, x*s.scale, y*s.scale, 0, 0, w*s.scale, lineSpacing, gg.AlignLeft)
}

func (s *sheet) line(x1, y1, x2, y2, width float64) {
	s.dc.SetLineWidth(width * s.scale)
	s.dc.DrawLine(x1*s.scale, y1*s.scale, x2*s.scale, y2*s.scale)
	s.dc.Stroke()
}

func (s *sheet) rect(x, y, w, h, strokeWidth float64) {
	s.dc.SetLineWidth(strokeWidth * s.scale)
	s.dc.DrawRectangle(x*s.scale, y*s.scale, w*s.scale, h*s.scale)
	s.dc.Stroke()
}

func (s *sheet) fillRect(x, y, w, h, r, g, b float64) {
	s.dc.SetRGB(r, g, b)
	s.dc.DrawRectangle(x*s.scale, y*s.scale, w*s.scale, h*s.scale)
	s.dc.Fill()
	s.dc.SetRGB(0, 0, 0)
}

// labelValue draws a regular label followed by its bold value.
func (s *sheet) labelValue(x, y, size float64, label, value string) {
	s.dc.SetFontFace(s.face(size, false))
	s.dc.DrawString(label, x*s.scale, y*s.scale)

	w, _ := s.dc.MeasureString(label)
	s.text(x+w/s.scale, y, size, true, value)
}

// field renders one editable value. Edit mode draws the input box around
// it; export mode renders static text only, with a dash for empty values.
func (s *sheet) field(x, y, w, h, size float64, value string) {
	if s.mode == ModeEdit {
		s.rect(x, y, w, h, 1)
		s.text(x+4, y+h-5, size, false, value)

		return
	}

	if value == "" {
		value = emptyValue
	}

	s.text(x+4, y+h-5, size, true, value)
}

// fieldArea is the multi-line variant of field, used for addresses and
// notes.
func (s *sheet) fieldArea(x, y, w, h, size float64, value string) {
	if s.mode == ModeEdit {
		s.rect(x, y, w, h, 1)
		s.wrapped(x+4, y+4, w-8, size, 1.35, value)

		return
	}

	if value == "" {
		value = emptyValue
	}

	s.wrapped(x, y+4, w, size, 1.35, value)
}
