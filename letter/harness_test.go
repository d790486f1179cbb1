package letter

import (
	"fmt"
	"strings"
)

// Test doubles shared by the letter test suite: a deterministic measurer and
// a surface that records every drawing call per page, keeping the tests free
// of any rendering backend.

// fixedMeasurer prices every character at a fixed width, ignoring font and
// size, so wrapping is exactly predictable.
type fixedMeasurer struct {
	charWidth float64
}

func (m fixedMeasurer) TextWidth(text string, _ Font, _ float64) float64 {
	return float64(len(text)) * m.charWidth
}

type recordedOp struct {
	kind string // "text" or "line"
	x    float64
	y    float64
	text string
	font Font
	size float64
	col  Color
}

type recordSurface struct {
	pages     [][]recordedOp
	finishErr error
	finished  bool
}

func newRecordSurface() *recordSurface {
	return &recordSurface{pages: [][]recordedOp{{}}}
}

func (s *recordSurface) DrawText(x, y float64, text string, font Font, size float64, col Color) {
	cur := len(s.pages) - 1
	s.pages[cur] = append(s.pages[cur], recordedOp{
		kind: "text", x: x, y: y, text: text, font: font, size: size, col: col,
	})
}

func (s *recordSurface) DrawLine(x1, y1, x2, y2 float64, col Color, width float64, dashed bool) {
	cur := len(s.pages) - 1
	s.pages[cur] = append(s.pages[cur], recordedOp{kind: "line", x: x1, y: y1, col: col})
}

func (s *recordSurface) NewPage() {
	s.pages = append(s.pages, nil)
}

func (s *recordSurface) Finish() ([]byte, error) {
	if s.finishErr != nil {
		return nil, s.finishErr
	}
	s.finished = true
	var b strings.Builder
	for i, page := range s.pages {
		fmt.Fprintf(&b, "page %d\n", i+1)
		for _, op := range page {
			fmt.Fprintf(&b, "%s %.2f %.2f %q %v %.1f\n", op.kind, op.x, op.y, op.text, op.font, op.size)
		}
	}
	return []byte(b.String()), nil
}

// pagesWithText returns the 1-based page numbers containing a text op whose
// content includes marker.
func (s *recordSurface) pagesWithText(marker string) []int {
	var out []int
	for i, page := range s.pages {
		for _, op := range page {
			if op.kind == "text" && strings.Contains(op.text, marker) {
				out = append(out, i+1)
				break
			}
		}
	}
	return out
}

// textOps returns all text ops of the given 1-based page.
func (s *recordSurface) textOps(page int) []recordedOp {
	var out []recordedOp
	for _, op := range s.pages[page-1] {
		if op.kind == "text" {
			out = append(out, op)
		}
	}
	return out
}

// testMeasurer yields 11 five-character words per wrapped line with the
// default configuration (wrap width 396pt).
func testMeasurer() fixedMeasurer { return fixedMeasurer{charWidth: 6} }

// para builds a body paragraph of exactly lines wrapped lines under
// testMeasurer: 11 five-character marker words per line.
func para(marker string, lines int) string {
	if len(marker) != 5 {
		panic("marker must be 5 characters")
	}
	words := make([]string, 11*lines)
	for i := range words {
		words[i] = marker
	}
	return strings.Join(words, " ")
}

// markerFor derives a distinct 5-character marker word for paragraph i.
func markerFor(i int) string { return fmt.Sprintf("w%02dxy", i)[:5] }

// baseRequest is a minimal valid request without a subject so the body
// cursor math stays simple.
func baseRequest(body ...string) *Request {
	return &Request{
		Sender: Sender{
			Name:    "Jane Doe",
			Street1: "12 Oak Street",
			City:    "Springfield",
			State:   "IL",
			Zip:     "62704",
		},
		Recipient: Recipient{
			Honorific: "The Honorable",
			Name:      "John Smith",
			Title:     "United States Senator",
			Street1:   "100 Senate Office Building",
			City:      "Washington",
			State:     "DC",
			Zip:       "20510",
		},
		Salutation: "Dear Senator Smith",
		Body:       body,
	}
}
