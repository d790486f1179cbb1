// Package canvassurface implements letter.Surface and letter.Measurer on
// github.com/tdewolff/canvas with the PDF renderer backend.
package canvassurface

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/inkfold/letterpress/fonts"
	"github.com/inkfold/letterpress/letter"
)

// Surface draws letter pages into an in-memory PDF. The engine hands it
// coordinates in points with the origin at the top-left corner; internally
// canvas works in millimeters with the same origin (CartesianIV), so the
// adaptation is a single scale factor applied at this boundary and nowhere
// else.
type Surface struct {
	widthMM  float64
	heightMM float64

	buf    bytes.Buffer
	writer *pdf.PDF
	page   *canvas.Canvas
	ctx    *canvas.Context

	fontMu   sync.Mutex
	families map[string]*canvas.FontFamily
	faces    map[faceKey]*canvas.FontFace

	finished bool
}

var (
	_ letter.Surface     = (*Surface)(nil)
	_ letter.Measurer    = (*Surface)(nil)
	_ letter.MetaSurface = (*Surface)(nil)
)

type faceKey struct {
	family string
	bold   bool
	size   float64
	color  letter.Color
}

// New creates a surface for pages of the given size in points and loads the
// full face set eagerly so that measuring is infallible afterwards.
func New(widthPt, heightPt float64) (*Surface, error) {
	if widthPt <= 0 || heightPt <= 0 {
		return nil, fmt.Errorf("canvassurface: page size must be positive")
	}
	s := &Surface{
		widthMM:  widthPt * letter.PtToMm,
		heightMM: heightPt * letter.PtToMm,
		families: map[string]*canvas.FontFamily{},
		faces:    map[faceKey]*canvas.FontFace{},
	}
	for _, name := range fonts.Names() {
		fam, err := fonts.Load(name)
		if err != nil {
			return nil, err
		}
		family := canvas.NewFontFamily(name)
		if err := family.LoadFont(fam.Regular, 0, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("canvassurface: loading %s regular: %w", name, err)
		}
		if err := family.LoadFont(fam.Bold, 0, canvas.FontBold); err != nil {
			return nil, fmt.Errorf("canvassurface: loading %s bold: %w", name, err)
		}
		s.families[name] = family
	}
	s.writer = pdf.New(&s.buf, s.widthMM, s.heightMM, nil)
	s.startPage()
	return s, nil
}

func (s *Surface) startPage() {
	s.page = canvas.New(s.widthMM, s.heightMM)
	s.ctx = canvas.NewContext(s.page)
	// Top-left origin, y growing downward, matching the engine's convention.
	s.ctx.SetCoordSystem(canvas.CartesianIV)
}

// SetMeta records the PDF document information.
func (s *Surface) SetMeta(title, author, subject string) {
	s.writer.SetInfo(title, subject, "", author, "letterpress")
}

// DrawText draws one line with its baseline at (x, y) points from the
// top-left corner.
func (s *Surface) DrawText(x, y float64, text string, font letter.Font, size float64, col letter.Color) {
	if text == "" {
		return
	}
	face := s.face(font, size, col)
	line := canvas.NewTextLine(face, text, canvas.Left)
	s.ctx.DrawText(x*letter.PtToMm, y*letter.PtToMm, line)
}

// DrawLine strokes a segment; width is points.
func (s *Surface) DrawLine(x1, y1, x2, y2 float64, col letter.Color, width float64, dashed bool) {
	w := width * letter.PtToMm
	if w <= 0 {
		w = 0.2
	}
	s.ctx.SetStrokeColor(rgba(col))
	s.ctx.SetStrokeWidth(w)
	if dashed {
		s.ctx.SetDashes(0, 1.0, 1.0)
	}
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo((x2-x1)*letter.PtToMm, (y2-y1)*letter.PtToMm)
	s.ctx.DrawPath(x1*letter.PtToMm, y1*letter.PtToMm, p)
	if dashed {
		s.ctx.SetDashes(0)
	}
}

// NewPage flushes the current page to the PDF writer and starts a fresh one.
func (s *Surface) NewPage() {
	s.page.RenderTo(s.writer)
	s.writer.NewPage(s.widthMM, s.heightMM)
	s.startPage()
}

// Finish flushes the last page, closes the writer and returns the PDF
// bytes. The surface must not be used afterwards.
func (s *Surface) Finish() ([]byte, error) {
	if s.finished {
		return nil, fmt.Errorf("canvassurface: surface already finished")
	}
	s.finished = true
	s.page.RenderTo(s.writer)
	if err := s.writer.Close(); err != nil {
		return nil, fmt.Errorf("canvassurface: closing PDF writer: %w", err)
	}
	return s.buf.Bytes(), nil
}

// TextWidth implements letter.Measurer, reporting widths in points.
func (s *Surface) TextWidth(text string, font letter.Font, size float64) float64 {
	face := s.face(font, size, letter.Black)
	return face.TextWidth(text) * letter.MmToPt
}

func (s *Surface) face(font letter.Font, size float64, col letter.Color) *canvas.FontFace {
	key := faceKey{family: font.Family, bold: font.Bold, size: size, color: col}
	s.fontMu.Lock()
	defer s.fontMu.Unlock()
	if face, ok := s.faces[key]; ok {
		return face
	}
	family, ok := s.families[font.Family]
	if !ok {
		// Unknown families fall back to the first loaded one; Config
		// validation makes this unreachable for engine-driven calls.
		for _, fam := range s.families {
			family = fam
			break
		}
	}
	style := canvas.FontRegular
	if font.Bold {
		style = canvas.FontBold
	}
	face := family.Face(size, rgba(col), style, canvas.FontNormal)
	s.faces[key] = face
	return face
}

func rgba(c letter.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
