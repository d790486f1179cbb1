package letter

// The render pass. It draws the fixed page-1 furniture (addresses, date,
// subject and salutation), flows the body through the shared walker, and
// finishes with the closing block, driving the Surface for every mark.

const (
	headerBaselinePt = 0.5 * PtPerIn
	ruleGapBelowPt   = 5
	ruleGapAbovePt   = 15
	addressLeading   = 1.2
)

var ruleColor = Color{204, 204, 204}

// drawSink renders the walker's events onto the surface and keeps the
// realized page count.
type drawSink struct {
	e     *engine
	s     Surface
	page  int
	total int
}

func (d *drawSink) text(x, y float64, line string) {
	d.s.DrawText(x, y, line, d.e.bodyFont(), d.e.cfg.Formatting.FontSize, Black)
}

func (d *drawSink) pageBreak() error {
	d.s.NewPage()
	d.page++
	d.startPage()
	return nil
}

// startPage draws the per-page furniture: fold ticks, the role's header and
// the footer.
func (d *drawSink) startPage() {
	role := PageRoleSubsequent
	if d.page == 1 {
		role = PageRoleFirst
	}
	d.e.drawFoldLines(d.s)
	d.e.drawHeader(d.s, role, d.page, d.total)
	d.e.drawFooter(d.s, d.page, d.total)
}

func (e *engine) drawFoldLines(s Surface) {
	fl := e.cfg.FoldLines
	if !fl.Enabled {
		return
	}
	length := fl.Style.LengthMm * MmToPt
	offset := fl.Style.MarginOffsetMm * MmToPt
	for _, pos := range fl.Positions {
		y := InToPt(pos)
		s.DrawLine(offset, y, offset+length, y, fl.Style.Color, fl.Style.Width, fl.Style.Dashed)
		s.DrawLine(PageWidthPt-offset-length, y, PageWidthPt-offset, y, fl.Style.Color, fl.Style.Width, fl.Style.Dashed)
	}
}

func (e *engine) drawHeader(s Surface, role PageRole, page, total int) {
	content := e.cfg.Header.Content(role)
	if !content.Enabled {
		return
	}
	font := e.bodyFont()
	size := e.cfg.Header.FontSize
	col := e.cfg.Header.Color
	y := headerBaselinePt
	left := InToPt(e.cfg.Margins.Left)
	right := PageWidthPt - InToPt(e.cfg.Margins.Right)
	date := e.req.FormattedDate()

	if content.Left != "" {
		s.DrawText(left, y, expandPlaceholders(content.Left, page, total, date), font, size, col)
	}
	if content.Center != "" {
		text := expandPlaceholders(content.Center, page, total, date)
		w := e.m.TextWidth(text, font, size)
		s.DrawText(PageWidthPt/2-w/2, y, text, font, size, col)
	}
	if content.Right != "" {
		text := expandPlaceholders(content.Right, page, total, date)
		w := e.m.TextWidth(text, font, size)
		s.DrawText(right-w, y, text, font, size, col)
	}
	if e.cfg.Header.RuleBelow {
		s.DrawLine(left, y+ruleGapBelowPt, right, y+ruleGapBelowPt, ruleColor, 0.5, false)
	}
}

func (e *engine) drawFooter(s Surface, page, total int) {
	f := e.cfg.Footer
	if !f.Enabled {
		return
	}
	font := e.bodyFont()
	col := f.Color
	y := PageHeightPt - headerBaselinePt
	left := InToPt(e.cfg.Margins.Left)
	right := PageWidthPt - InToPt(e.cfg.Margins.Right)
	date := e.req.FormattedDate()

	if f.RuleAbove {
		s.DrawLine(left, y-ruleGapAbovePt, right, y-ruleGapAbovePt, ruleColor, 0.5, false)
	}
	if f.Left != "" {
		s.DrawText(left, y, expandPlaceholders(f.Left, page, total, date), font, f.FontSize, col)
	}
	if f.Center != "" {
		text := expandPlaceholders(f.Center, page, total, date)
		w := e.m.TextWidth(text, font, f.FontSize)
		s.DrawText(PageWidthPt/2-w/2, y, text, font, f.FontSize, col)
	}
	if f.Right != "" {
		text := expandPlaceholders(f.Right, page, total, date)
		w := e.m.TextWidth(text, font, f.FontSize)
		s.DrawText(right-w, y, text, font, f.FontSize, col)
	}
}

// drawAddressBlock draws one line per non-blank field, left-aligned at the
// box's x, advancing by 1.2 line heights.
func (e *engine) drawAddressBlock(s Surface, box AddressPosition, lines []string) {
	font := e.bodyFont()
	size := e.cfg.Formatting.FontSize
	x := InToPt(box.X)
	y := InToPt(box.Y)
	for _, line := range lines {
		if line == "" {
			continue
		}
		s.DrawText(x, y, line, font, size, Black)
		y += size * addressLeading
	}
}

func (e *engine) drawDate(s Surface) {
	font := e.bodyFont()
	size := e.cfg.Formatting.FontSize
	text := e.req.FormattedDate()
	y := InToPt(e.cfg.DatePosition.Y)

	switch e.cfg.DatePosition.Alignment {
	case AlignRight:
		// Flush with the recipient window's right edge.
		x := InToPt(e.cfg.RecipientAddress.X + e.cfg.RecipientAddress.Width)
		s.DrawText(x-e.m.TextWidth(text, font, size), y, text, font, size, Black)
	case AlignCenter:
		x := InToPt(e.cfg.DatePosition.X)
		s.DrawText(x-e.m.TextWidth(text, font, size)/2, y, text, font, size, Black)
	default:
		s.DrawText(InToPt(e.cfg.DatePosition.X), y, text, font, size, Black)
	}
}

// drawSalutation draws the subject (emphasized) and the salutation and
// returns the body cursor. The advances sum to salutationHeight so the
// simulator starts from the identical cursor.
func (e *engine) drawSalutation(s Surface) float64 {
	ps := e.cfg.Formatting.ParagraphSpacing
	size := e.cfg.Formatting.FontSize
	x := InToPt(e.cfg.Margins.Left)
	cursor := e.bodyStartPt()

	cursor += ps
	if e.req.Subject != "" {
		s.DrawText(x, cursor, e.req.Subject, e.emphasisFont(), size, Black)
		cursor += ps * 1.5
	}
	s.DrawText(x, cursor, e.req.Salutation+",", e.bodyFont(), size, Black)
	cursor += e.lineHeight() * 1.5
	return cursor
}

// drawClosing places the closing phrase, the signature gap, the typed name
// and the optional contact lines. The walker has already guaranteed the
// block fits above the bottom margin.
func (e *engine) drawClosing(s Surface, cursor float64) {
	font := e.bodyFont()
	size := e.cfg.Formatting.FontSize
	x := InToPt(e.cfg.Margins.Left)

	s.DrawText(x, cursor, e.req.closing()+",", font, size, Black)
	cursor += 0.25 * PtPerIn
	// Gap for the handwritten signature.
	cursor += 0.6 * PtPerIn
	cursor += 0.15 * PtPerIn

	s.DrawText(x, cursor, e.req.Sender.Name, font, size, Black)
	cursor += size * addressLeading
	if e.req.Sender.IncludeEmail && e.req.Sender.Email != "" {
		s.DrawText(x, cursor, e.req.Sender.Email, font, size, Black)
		cursor += size * addressLeading
	}
	if e.req.Sender.IncludePhone && e.req.Sender.Phone != "" {
		s.DrawText(x, cursor, e.req.Sender.Phone, font, size, Black)
	}
}

// Render draws the full letter onto the surface. totalPages feeds the
// {total} placeholder and normally comes from Simulate with the same
// measurer; Rendered.Pages reports the realized count so callers can verify
// parity.
func Render(cfg *Config, req *Request, totalPages int, s Surface, m Measurer) (*Rendered, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := newEngine(cfg, req, m)

	if ms, ok := s.(MetaSurface); ok {
		ms.SetMeta("Letter to "+req.Recipient.Name, req.Sender.Name, req.Subject)
	}

	sink := &drawSink{e: e, s: s, page: 1, total: totalPages}
	sink.startPage()

	e.drawAddressBlock(s, cfg.ReturnAddress, req.Sender.addressLines())
	e.drawDate(s)
	e.drawAddressBlock(s, cfg.RecipientAddress, req.Recipient.addressLines())
	cursor := e.drawSalutation(s)

	cursor, err := e.walkBody(cursor, e.wrapAll(), sink)
	if err != nil {
		return nil, err
	}
	e.drawClosing(s, cursor)

	pdf, err := s.Finish()
	if err != nil {
		return nil, &SurfaceError{Err: err}
	}
	return &Rendered{PDF: pdf, Pages: sink.page}, nil
}

// Generate runs the simulation pass and then the render pass on the same
// measurer, failing with *PageCountError if the two disagree.
func Generate(cfg *Config, req *Request, s Surface, m Measurer) (*Rendered, error) {
	total, err := Simulate(cfg, req, m)
	if err != nil {
		return nil, err
	}
	out, err := Render(cfg, req, total, s, m)
	if err != nil {
		return nil, err
	}
	if out.Pages != total {
		return nil, &PageCountError{Simulated: total, Rendered: out.Pages}
	}
	return out, nil
}
