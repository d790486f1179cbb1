package letter

// countSink discards placements and counts pages.
type countSink struct {
	pages int
}

func (c *countSink) text(x, y float64, line string) {}

func (c *countSink) pageBreak() error {
	c.pages++
	return nil
}

// Simulate performs the dry-run pagination pass: it walks the exact flow the
// renderer will walk, with the same wrapper and measurer, and returns the
// total page count without emitting any drawing calls. The result feeds the
// renderer's footer placeholders.
func Simulate(cfg *Config, req *Request, m Measurer) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	e := newEngine(cfg, req, m)
	sink := &countSink{pages: 1}
	cursor := e.bodyStartPt() + e.salutationHeight()
	if _, err := e.walkBody(cursor, e.wrapAll(), sink); err != nil {
		return 0, err
	}
	return sink.pages, nil
}
