package letter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedDateRequest(body ...string) *Request {
	req := baseRequest(body...)
	req.Date = time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	return req
}

func findOp(ops []recordedOp, text string) (recordedOp, bool) {
	for _, op := range ops {
		if op.text == text {
			return op, true
		}
	}
	return recordedOp{}, false
}

func TestRenderAddressBlocks(t *testing.T) {
	cfg := DefaultConfig()
	req := fixedDateRequest(para("aaaaa", 1))

	s := newRecordSurface()
	_, err := Render(&cfg, req, 1, s, testMeasurer())
	require.NoError(t, err)
	ops := s.textOps(1)

	// Return address starts at (0.5in, 0.625in) and advances by 1.2 line
	// heights per line.
	op, ok := findOp(ops, "Jane Doe")
	require.True(t, ok)
	require.Equal(t, 36.0, op.x)
	require.Equal(t, 45.0, op.y)

	op, ok = findOp(ops, "12 Oak Street")
	require.True(t, ok)
	require.InDelta(t, 45.0+11*1.2, op.y, 1e-9)

	op, ok = findOp(ops, "Springfield, IL 62704")
	require.True(t, ok)
	require.InDelta(t, 45.0+2*11*1.2, op.y, 1e-9)

	// Recipient block sits in the envelope window at (0.75in, 2.0625in).
	op, ok = findOp(ops, "The Honorable John Smith")
	require.True(t, ok)
	require.Equal(t, 54.0, op.x)
	require.Equal(t, 148.5, op.y)

	op, ok = findOp(ops, "Washington, DC 20510")
	require.True(t, ok)
	require.InDelta(t, 148.5+3*11*1.2, op.y, 1e-9)
}

func TestRenderDateRightAligned(t *testing.T) {
	cfg := DefaultConfig()
	req := fixedDateRequest(para("aaaaa", 1))

	s := newRecordSurface()
	_, err := Render(&cfg, req, 1, s, testMeasurer())
	require.NoError(t, err)

	// Flush with the recipient window's right edge at (0.75+4.0)in, width
	// measured at 6pt per character.
	op, ok := findOp(s.textOps(1), "March 5, 2026")
	require.True(t, ok)
	require.InDelta(t, 342.0-float64(len("March 5, 2026"))*6, op.x, 1e-9)
	require.InDelta(t, 1.7*72, op.y, 1e-9)
}

func TestRenderSubjectAndSalutation(t *testing.T) {
	cfg := DefaultConfig()
	req := fixedDateRequest(para("aaaaa", 1))
	req.Subject = "Support for the Transit Funding Bill"

	s := newRecordSurface()
	_, err := Render(&cfg, req, 1, s, testMeasurer())
	require.NoError(t, err)
	ops := s.textOps(1)

	subj, ok := findOp(ops, req.Subject)
	require.True(t, ok)
	require.True(t, subj.font.Bold)
	require.InDelta(t, 264.24+12, subj.y, 1e-9)

	sal, ok := findOp(ops, "Dear Senator Smith,")
	require.True(t, ok)
	require.False(t, sal.font.Bold)
	require.InDelta(t, 264.24+12+18, sal.y, 1e-9)
}

func TestRenderFoldLines(t *testing.T) {
	cfg := DefaultConfig()
	req := fixedDateRequest(para("aaaaa", 1))

	s := newRecordSurface()
	_, err := Render(&cfg, req, 1, s, testMeasurer())
	require.NoError(t, err)

	var foldYs []float64
	for _, op := range s.pages[0] {
		if op.kind == "line" && op.col == (Color{204, 204, 204}) && op.x < 20 {
			foldYs = append(foldYs, op.y)
		}
	}
	// One tick at each page edge per fold position; the left-edge ticks
	// start 3mm in.
	require.Len(t, foldYs, 2)
	require.InDelta(t, 3.67*72, foldYs[0], 1e-9)
	require.InDelta(t, 7.33*72, foldYs[1], 1e-9)
}

func TestRenderFoldLinesDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FoldLines.Enabled = false
	req := fixedDateRequest(para("aaaaa", 1))

	s := newRecordSurface()
	_, err := Render(&cfg, req, 1, s, testMeasurer())
	require.NoError(t, err)

	for _, op := range s.pages[0] {
		if op.kind == "line" {
			// Only the footer rule remains.
			require.Greater(t, op.x, 20.0)
		}
	}
}

func TestSubsequentPageHeader(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Header.Subsequent = HeaderContent{
		Enabled: true,
		Left:    "Jane Doe",
		Right:   "{formatted_date}",
	}
	req := fixedDateRequest(para("bbbbb", 15))

	pages, err := Simulate(&cfg, req, testMeasurer())
	require.NoError(t, err)
	require.Equal(t, 2, pages)

	s := newRecordSurface()
	_, err = Render(&cfg, req, pages, s, testMeasurer())
	require.NoError(t, err)

	headerOps := func(page int) []recordedOp {
		var out []recordedOp
		for _, op := range s.textOps(page) {
			if op.y == 36.0 {
				out = append(out, op)
			}
		}
		return out
	}

	// First page carries no header; page 2 shows the sender and the date at
	// the header size.
	require.Empty(t, headerOps(1))
	ops := headerOps(2)
	require.Len(t, ops, 2)
	left, ok := findOp(ops, "Jane Doe")
	require.True(t, ok)
	require.Equal(t, 90.0, left.x)
	require.Equal(t, 10.0, left.size)
	right, ok := findOp(ops, "March 5, 2026")
	require.True(t, ok)
	require.InDelta(t, 522.0-float64(len("March 5, 2026"))*6, right.x, 1e-9)
}

func TestFooterZones(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Footer.Left = "{formatted_date}"
	cfg.Footer.Right = "Confidential"
	req := fixedDateRequest(para("aaaaa", 1))

	s := newRecordSurface()
	_, err := Render(&cfg, req, 1, s, testMeasurer())
	require.NoError(t, err)

	footerY := PageHeightPt - 36
	var texts []string
	for _, op := range s.textOps(1) {
		if op.y == footerY {
			texts = append(texts, op.text)
		}
	}
	require.ElementsMatch(t, []string{"March 5, 2026", "Page 1 of 1", "Confidential"}, texts)
}

func TestFooterDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Footer.Enabled = false
	req := fixedDateRequest(para("aaaaa", 1))

	s := newRecordSurface()
	_, err := Render(&cfg, req, 1, s, testMeasurer())
	require.NoError(t, err)
	require.Empty(t, s.pagesWithText("Page 1 of 1"))
}

func TestClosingContactLines(t *testing.T) {
	cfg := DefaultConfig()
	req := fixedDateRequest(para("aaaaa", 1))
	req.Sender.Email = "jane@example.com"
	req.Sender.Phone = "(217) 555-0137"
	req.Sender.IncludeEmail = true
	req.Sender.IncludePhone = true

	s := newRecordSurface()
	_, err := Render(&cfg, req, 1, s, testMeasurer())
	require.NoError(t, err)
	ops := s.textOps(1)

	closing, ok := findOp(ops, "Respectfully,")
	require.True(t, ok)
	name, ok := findOp(ops, "Jane Doe")
	require.True(t, ok)
	// Return-address block also carries the name; take the lower op.
	for _, op := range ops {
		if op.text == "Jane Doe" && op.y > name.y {
			name = op
		}
	}
	require.InDelta(t, closing.y+72, name.y, 1e-9)

	email, ok := findOp(ops, "jane@example.com")
	require.True(t, ok)
	require.InDelta(t, name.y+11*1.2, email.y, 1e-9)
	phone, ok := findOp(ops, "(217) 555-0137")
	require.True(t, ok)
	require.InDelta(t, email.y+11*1.2, phone.y, 1e-9)
}

func TestClosingContactLinesOmitted(t *testing.T) {
	cfg := DefaultConfig()
	req := fixedDateRequest(para("aaaaa", 1))
	req.Sender.Email = "jane@example.com"

	s := newRecordSurface()
	_, err := Render(&cfg, req, 1, s, testMeasurer())
	require.NoError(t, err)
	require.Empty(t, s.pagesWithText("jane@example.com"))
}

type metaSurface struct {
	*recordSurface
	title   string
	author  string
	subject string
}

func (m *metaSurface) SetMeta(title, author, subject string) {
	m.title, m.author, m.subject = title, author, subject
}

func TestRenderSetsMetadata(t *testing.T) {
	cfg := DefaultConfig()
	req := fixedDateRequest(para("aaaaa", 1))
	req.Subject = "Transit Funding"

	s := &metaSurface{recordSurface: newRecordSurface()}
	_, err := Render(&cfg, req, 1, s, testMeasurer())
	require.NoError(t, err)
	require.Equal(t, "Letter to John Smith", s.title)
	require.Equal(t, "Jane Doe", s.author)
	require.Equal(t, "Transit Funding", s.subject)
}

func TestRenderWrapsFinishError(t *testing.T) {
	cfg := DefaultConfig()
	req := fixedDateRequest(para("aaaaa", 1))

	s := newRecordSurface()
	boom := errors.New("stream closed")
	s.finishErr = boom

	_, err := Render(&cfg, req, 1, s, testMeasurer())
	var serr *SurfaceError
	require.ErrorAs(t, err, &serr)
	require.ErrorIs(t, err, boom)
}

func TestRenderRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Formatting.FontSize = -1
	req := fixedDateRequest(para("aaaaa", 1))

	_, err := Render(&cfg, req, 1, newRecordSurface(), testMeasurer())
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)

	_, err = Simulate(&cfg, req, testMeasurer())
	require.ErrorAs(t, err, &cerr)
}
