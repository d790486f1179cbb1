package letter

import (
	"strings"
	"time"
)

// Sender identifies the letter's author. Email and phone are printed in the
// closing block only when the corresponding Include flag is set.
type Sender struct {
	Name    string
	Street1 string
	Street2 string
	City    string
	State   string
	Zip     string

	Email        string
	Phone        string
	IncludeEmail bool
	IncludePhone bool
}

// Recipient identifies the addressee. Blank fields are omitted from the
// address block; the remaining lines compact upward.
type Recipient struct {
	Honorific string
	Name      string
	Title     string
	Street1   string
	Street2   string
	City      string
	State     string
	Zip       string
}

// Request is the runtime input of one render call: identities, subject,
// salutation, ordered body paragraphs and closing. It is caller-constructed
// and immutable for the duration of the call.
type Request struct {
	Sender    Sender
	Recipient Recipient

	Subject    string
	Salutation string
	Body       []string
	Closing    string
	// Date of the letter; the zero value means today.
	Date time.Time
}

// Rendered is the output of a render call.
type Rendered struct {
	PDF   []byte
	Pages int
}

const defaultClosing = "Respectfully"

func (r *Request) closing() string {
	if r.Closing == "" {
		return defaultClosing
	}
	return r.Closing
}

func (r *Request) date() time.Time {
	if r.Date.IsZero() {
		return time.Now()
	}
	return r.Date
}

// FormattedDate renders the letter date as "Month D, YYYY" with no leading
// zero on the day.
func (r *Request) FormattedDate() string {
	return r.date().Format("January 2, 2006")
}

func (s Sender) addressLines() []string {
	lines := []string{s.Name, s.Street1}
	if s.Street2 != "" {
		lines = append(lines, s.Street2)
	}
	if l := cityStateZipLine(s.City, s.State, s.Zip); l != "" {
		lines = append(lines, l)
	}
	return lines
}

func (r Recipient) addressLines() []string {
	var lines []string
	if r.Honorific != "" {
		lines = append(lines, r.Honorific+" "+r.Name)
	} else if r.Name != "" {
		lines = append(lines, r.Name)
	}
	if r.Title != "" {
		lines = append(lines, r.Title)
	}
	if r.Street1 != "" {
		lines = append(lines, r.Street1)
	}
	if r.Street2 != "" {
		lines = append(lines, r.Street2)
	}
	if l := cityStateZipLine(r.City, r.State, r.Zip); l != "" {
		lines = append(lines, l)
	}
	return lines
}

// cityStateZipLine assembles "City, ST ZIP", dropping blank components and
// the comma when either side is missing.
func cityStateZipLine(city, state, zip string) string {
	right := strings.TrimSpace(strings.TrimSpace(state) + " " + strings.TrimSpace(zip))
	city = strings.TrimSpace(city)
	switch {
	case city == "":
		return right
	case right == "":
		return city
	default:
		return city + ", " + right
	}
}
