package letter

// The body-flow arithmetic lives here, in one place, and is walked by both
// the pagination simulator and the page renderer through the flowSink
// interface. Keeping a single walker is what guarantees the two passes
// agree on the page count.

const (
	// flowBottomPt is the floor the body flow may reach, independent of the
	// configured bottom margin.
	flowBottomPt = 0.75 * PtPerIn
	// closingReservePt is the block reserved for the closing phrase,
	// signature gap and typed contact lines.
	closingReservePt = 3.0 * PtPerIn
	// orphanMaxLines caps how many lines of the paragraph following a
	// heading must accompany it on the same page.
	orphanMaxLines = 4
	orphanMinLines = 2
)

// wrapped is one classified, line-broken paragraph.
type wrapped struct {
	kind  ParagraphKind
	lines []string
}

// flowSink receives the walker's placement events. The simulator counts
// page breaks and discards text; the renderer draws both.
type flowSink interface {
	// text places one body line with its baseline at (x, y) on the current
	// page.
	text(x, y float64, line string)
	// pageBreak advances to a fresh page.
	pageBreak() error
}

// engine binds one (Config, Request, Measurer) triple for a single
// simulate or render pass.
type engine struct {
	cfg *Config
	req *Request
	m   Measurer
}

func newEngine(cfg *Config, req *Request, m Measurer) *engine {
	return &engine{cfg: cfg, req: req, m: m}
}

func (e *engine) bodyFont() Font {
	return Font{Family: e.cfg.Formatting.FontFamily}
}

func (e *engine) emphasisFont() Font {
	return Font{Family: e.cfg.Formatting.FontFamily, Bold: true}
}

func (e *engine) lineHeight() float64 {
	return e.cfg.Formatting.FontSize * e.cfg.Formatting.LineSpacing
}

func (e *engine) indentPt() float64 {
	if !e.cfg.Formatting.IndentParagraphs {
		return 0
	}
	return InToPt(e.cfg.Formatting.IndentSize)
}

// wrapWidth is the width budget passed to the wrapper. Like the flow, it
// reserves the first-line indent for every line, so an indented first line
// can never overflow.
func (e *engine) wrapWidth() float64 {
	m := e.cfg.Margins
	return PageWidthPt - InToPt(m.Left+m.Right) - e.indentPt()
}

func (e *engine) bodyStartPt() float64 {
	return InToPt(e.cfg.BodyStartY)
}

func (e *engine) topMarginPt() float64 {
	return InToPt(e.cfg.Margins.Top)
}

// salutationHeight is the vertical space the subject and salutation block
// consumes below BodyStartY. The renderer draws the block piecewise but
// advances by exactly these terms.
func (e *engine) salutationHeight() float64 {
	ps := e.cfg.Formatting.ParagraphSpacing
	h := ps
	if e.req.Subject != "" {
		h += ps * 1.5
	}
	h += e.lineHeight() * 1.5
	return h
}

// wrapAll classifies and wraps every body paragraph with the shared
// wrapper and measurer.
func (e *engine) wrapAll() []wrapped {
	font := e.bodyFont()
	size := e.cfg.Formatting.FontSize
	width := e.wrapWidth()
	out := make([]wrapped, len(e.req.Body))
	for i, p := range e.req.Body {
		out[i] = wrapped{
			kind:  Classify(p),
			lines: Wrap(p, width, font, size, e.m),
		}
	}
	return out
}

// paragraphSpace is the vertical space paragraph i consumes, including the
// trailing paragraph spacing unless it is the last paragraph.
func (e *engine) paragraphSpace(paras []wrapped, i int) float64 {
	space := float64(len(paras[i].lines)) * e.lineHeight()
	if i < len(paras)-1 {
		space += e.cfg.Formatting.ParagraphSpacing
	}
	return space
}

// breakNeeded decides whether paragraph i must move to a fresh page given
// the cursor position. Headings additionally reserve a lookahead of the
// following paragraph's first lines and refuse the bottom third of the page
// (orphan control).
func (e *engine) breakNeeded(paras []wrapped, i int, cursor float64) bool {
	limit := PageHeightPt - flowBottomPt
	space := e.paragraphSpace(paras, i)

	if paras[i].kind == KindHeading && i < len(paras)-1 {
		lookahead := len(paras[i+1].lines) / 2
		if lookahead < orphanMinLines {
			lookahead = orphanMinLines
		}
		if lookahead > orphanMaxLines {
			lookahead = orphanMaxLines
		}
		need := space + float64(lookahead)*e.lineHeight()
		if cursor > limit-need {
			return true
		}
		third := (PageHeightPt - e.topMarginPt()) / 3
		return PageHeightPt-cursor < third
	}
	return cursor > limit-space
}

// walkBody flows every paragraph and the closing reservation through the
// sink, starting from cursor (points from the top of page 1's body area).
// It returns the cursor at which the closing block begins. Paragraphs are
// atomic: a paragraph that still needs a break immediately after one was
// taken for it cannot fit any page, and the walk fails fast instead of
// looping.
func (e *engine) walkBody(cursor float64, paras []wrapped, sink flowSink) (float64, error) {
	lh := e.lineHeight()
	left := InToPt(e.cfg.Margins.Left)
	indent := e.indentPt()

	for i := range paras {
		broke := false
		for e.breakNeeded(paras, i, cursor) {
			if broke {
				return 0, &ContentError{Paragraph: i, Lines: len(paras[i].lines)}
			}
			if err := sink.pageBreak(); err != nil {
				return 0, err
			}
			cursor = e.topMarginPt()
			broke = true
		}

		for j, line := range paras[i].lines {
			x := left
			if j == 0 && paras[i].kind != KindHeading {
				x += indent
			}
			sink.text(x, cursor, line)
			cursor += lh
		}
		if i < len(paras)-1 {
			cursor += e.cfg.Formatting.ParagraphSpacing
		}
	}

	cursor += e.cfg.Formatting.ParagraphSpacing * 2
	if cursor > PageHeightPt-InToPt(e.cfg.Margins.Bottom)-closingReservePt {
		if err := sink.pageBreak(); err != nil {
			return 0, err
		}
		cursor = e.topMarginPt()
	}
	return cursor, nil
}
