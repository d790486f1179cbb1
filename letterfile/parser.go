// Package letterfile parses the .letter source format: a small block
// document carrying the sender, recipient, subject, body paragraphs and
// optional formatting overrides for one letter.
//
//	letter {
//	    from {
//	        name: "Jane Doe"
//	        street: "12 Oak Street"
//	        city: "Springfield"
//	        state: "IL"
//	        zip: "62704"
//	    }
//	    to {
//	        honorific: "The Honorable"
//	        name: "John Smith"
//	        title: "United States Senator"
//	        street: "100 Senate Office Building"
//	        city: "Washington"
//	        state: "DC"
//	        zip: "20510"
//	    }
//	    subject: "RE: Surface transportation funding"
//	    salutation: "Dear Senator Smith"
//	    closing: "Respectfully"
//	    date: "2026-08-29"
//	    body {
//	        "I am writing to urge..."
//	        "BACKGROUND"
//	        "The program in question..."
//	    }
//	}
package letterfile

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/inkfold/letterpress/letter"
)

var (
	letterLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[{}:]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(letterLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// File is the root AST node for a .letter document.
type File struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Entries []*Entry       `parser:"'letter' '{' @@* '}'"`
}

// Entry is one statement inside the letter block.
type Entry struct {
	From   []*Field `parser:"  'from' '{' @@* '}'"`
	To     []*Field `parser:"| 'to' '{' @@* '}'"`
	Format []*Field `parser:"| 'format' '{' @@* '}'"`
	Body   *Body    `parser:"| 'body' @@"`
	Field  *Field   `parser:"| @@"`
}

// Body is the ordered list of paragraph strings.
type Body struct {
	Paragraphs []StringLiteral `parser:"'{' @String* '}'"`
}

// Field is a key: "value" pair.
type Field struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident ':'"`
	Value StringLiteral  `parser:"@String"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse reads a .letter document from r.
func Parse(r io.Reader) (*File, error) {
	return fileParser.Parse("", r)
}

// ParseString parses a .letter document from a string.
func ParseString(input string) (*File, error) {
	return fileParser.ParseString("", input)
}

// Letter converts the AST into a render request and a configuration (the
// defaults with any format overrides applied). Unknown keys are errors so
// typos surface instead of silently dropping a field.
func (f *File) Letter() (*letter.Request, letter.Config, error) {
	cfg := letter.DefaultConfig()
	req := &letter.Request{}

	for _, entry := range f.Entries {
		switch {
		case entry.From != nil:
			if err := applySender(&req.Sender, entry.From); err != nil {
				return nil, cfg, err
			}
		case entry.To != nil:
			if err := applyRecipient(&req.Recipient, entry.To); err != nil {
				return nil, cfg, err
			}
		case entry.Format != nil:
			if err := applyFormat(&cfg.Formatting, entry.Format); err != nil {
				return nil, cfg, err
			}
		case entry.Body != nil:
			for _, p := range entry.Body.Paragraphs {
				req.Body = append(req.Body, string(p))
			}
		case entry.Field != nil:
			if err := applyTopLevel(req, entry.Field); err != nil {
				return nil, cfg, err
			}
		}
	}
	return req, cfg, nil
}

func applySender(s *letter.Sender, fields []*Field) error {
	for _, f := range fields {
		v := string(f.Value)
		switch f.Key {
		case "name":
			s.Name = v
		case "street":
			s.Street1 = v
		case "street2":
			s.Street2 = v
		case "city":
			s.City = v
		case "state":
			s.State = v
		case "zip":
			s.Zip = v
		case "email":
			s.Email = v
			s.IncludeEmail = v != ""
		case "phone":
			s.Phone = v
			s.IncludePhone = v != ""
		default:
			return unknownKey("from", f)
		}
	}
	return nil
}

func applyRecipient(r *letter.Recipient, fields []*Field) error {
	for _, f := range fields {
		v := string(f.Value)
		switch f.Key {
		case "honorific":
			r.Honorific = v
		case "name":
			r.Name = v
		case "title":
			r.Title = v
		case "street":
			r.Street1 = v
		case "street2":
			r.Street2 = v
		case "city":
			r.City = v
		case "state":
			r.State = v
		case "zip":
			r.Zip = v
		default:
			return unknownKey("to", f)
		}
	}
	return nil
}

func applyFormat(fmtg *letter.Formatting, fields []*Field) error {
	for _, f := range fields {
		v := string(f.Value)
		switch f.Key {
		case "family":
			fmtg.FontFamily = v
		case "size":
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s: format size %q is not a number", f.Pos, v)
			}
			fmtg.FontSize = n
		case "line-spacing":
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s: format line-spacing %q is not a number", f.Pos, v)
			}
			fmtg.LineSpacing = n
		case "indent":
			switch strings.ToLower(v) {
			case "on", "true", "yes":
				fmtg.IndentParagraphs = true
			case "off", "false", "no":
				fmtg.IndentParagraphs = false
			default:
				return fmt.Errorf("%s: format indent must be on or off, got %q", f.Pos, v)
			}
		default:
			return unknownKey("format", f)
		}
	}
	return nil
}

func applyTopLevel(req *letter.Request, f *Field) error {
	v := string(f.Value)
	switch f.Key {
	case "subject":
		req.Subject = v
	case "salutation":
		req.Salutation = v
	case "closing":
		req.Closing = v
	case "date":
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fmt.Errorf("%s: date must be YYYY-MM-DD, got %q", f.Pos, v)
		}
		req.Date = t
	default:
		return unknownKey("letter", f)
	}
	return nil
}

func unknownKey(block string, f *Field) error {
	return fmt.Errorf("%s: unknown %s key %q", f.Pos, block, f.Key)
}
