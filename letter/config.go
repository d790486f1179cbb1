package letter

// Configuration for the letter layout. All distances are inches measured
// from the top-left corner of the page unless noted otherwise; the builder
// converts to points internally. A Config is validated once, up front, and
// treated as immutable for the duration of a render.

// Font families available to Formatting.FontFamily. Each carries an
// emphasized (bold) variant used for the subject line.
const (
	FamilyRoman = "roman"
	FamilySans  = "sans"
)

// Families lists the closed set of known font families.
var Families = []string{FamilyRoman, FamilySans}

// Font selects a face for a drawing or measuring call.
type Font struct {
	Family string
	Bold   bool
}

// Alignment of the date line.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// PageRole distinguishes the first page from continuation pages; headers are
// configured per role.
type PageRole int

const (
	PageRoleFirst PageRole = iota
	PageRoleSubsequent
)

// Margins are the page margins in inches.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// AddressPosition is a box for an address block, positioned so the block
// shows through the matching window of a #10 envelope. Height 0 means
// unconstrained.
type AddressPosition struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// DatePosition places the formatted date. With AlignRight the X coordinate
// is ignored and the date sits flush with the recipient box's right edge.
type DatePosition struct {
	X         float64
	Y         float64
	Alignment Alignment
}

// Formatting holds the body text settings. ParagraphSpacing and FontSize are
// points; IndentSize is inches.
type Formatting struct {
	FontFamily       string
	FontSize         float64
	LineSpacing      float64
	ParagraphSpacing float64
	IndentParagraphs bool
	IndentSize       float64
}

// FoldLineStyle describes the tick marks drawn at tri-fold positions.
// Length and offset are millimeters, the stroke width is points.
type FoldLineStyle struct {
	LengthMm       float64
	MarginOffsetMm float64
	Color          Color
	Width          float64
	Dashed         bool
}

// FoldLines enables fold tick marks at the given y offsets (inches from the
// top edge), drawn near both page edges.
type FoldLines struct {
	Enabled   bool
	Positions []float64
	Style     FoldLineStyle
}

// HeaderContent is one header role's zone templates. Templates may contain
// {page}, {total} and {formatted_date} placeholders.
type HeaderContent struct {
	Enabled bool
	Left    string
	Center  string
	Right   string
}

// Header configures per-role page headers. FontSize is points.
type Header struct {
	FirstPage  HeaderContent
	Subsequent HeaderContent
	FontSize   float64
	Color      Color
	RuleBelow  bool
}

// Content returns the header zones for the given page role.
func (h Header) Content(role PageRole) HeaderContent {
	if role == PageRoleFirst {
		return h.FirstPage
	}
	return h.Subsequent
}

// Footer configures the uniform page footer. FontSize is points.
type Footer struct {
	Enabled   bool
	Left      string
	Center    string
	Right     string
	FontSize  float64
	Color     Color
	RuleAbove bool
}

// Config aggregates the full layout configuration.
type Config struct {
	Margins          Margins
	ReturnAddress    AddressPosition
	RecipientAddress AddressPosition
	DatePosition     DatePosition
	// BodyStartY is where the salutation block begins on page 1, inches
	// from the top edge.
	BodyStartY float64
	Formatting Formatting
	FoldLines  FoldLines
	Header     Header
	Footer     Footer
}

// DefaultConfig returns the stock #10 windowed-envelope layout.
func DefaultConfig() Config {
	return Config{
		Margins:          Margins{Top: 1.25, Bottom: 1.25, Left: 1.25, Right: 1.25},
		ReturnAddress:    AddressPosition{X: 0.5, Y: 0.625, Width: 3.5, Height: 1.0},
		RecipientAddress: AddressPosition{X: 0.75, Y: 2.0625, Width: 4.0, Height: 1.125},
		DatePosition:     DatePosition{X: 4.875, Y: 1.7, Alignment: AlignRight},
		BodyStartY:       3.67,
		Formatting: Formatting{
			FontFamily:       FamilyRoman,
			FontSize:         11,
			LineSpacing:      1.5,
			ParagraphSpacing: 12,
			IndentParagraphs: true,
			IndentSize:       0.5,
		},
		FoldLines: FoldLines{
			Enabled:   true,
			Positions: []float64{3.67, 7.33},
			Style: FoldLineStyle{
				LengthMm:       4,
				MarginOffsetMm: 3,
				Color:          Color{204, 204, 204},
				Width:          0.5,
			},
		},
		Header: Header{
			FirstPage:  HeaderContent{Enabled: false},
			Subsequent: HeaderContent{Enabled: true},
			FontSize:   10,
			Color:      Color{51, 51, 51},
			RuleBelow:  true,
		},
		Footer: Footer{
			Enabled:   true,
			Center:    "Page {page} of {total}",
			FontSize:  10,
			Color:     Color{102, 102, 102},
			RuleAbove: true,
		},
	}
}

const (
	pageWidthIn  = 8.5
	pageHeightIn = 11.0
)

// Validate checks every structural invariant eagerly so that rendering never
// has to. It returns a *ConfigError describing the first violation found.
func (c *Config) Validate() error {
	m := c.Margins
	if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 {
		return &ConfigError{Field: "margins", Reason: "margins must be non-negative"}
	}
	if m.Top+m.Bottom >= pageHeightIn {
		return &ConfigError{Field: "margins", Reason: "top and bottom margins exceed the page height"}
	}
	if m.Left+m.Right >= pageWidthIn {
		return &ConfigError{Field: "margins", Reason: "left and right margins exceed the page width"}
	}

	if err := validateAddressBox("return_address", c.ReturnAddress); err != nil {
		return err
	}
	if err := validateAddressBox("recipient_address", c.RecipientAddress); err != nil {
		return err
	}
	if boxesOverlap(c.ReturnAddress, c.RecipientAddress) {
		return &ConfigError{Field: "recipient_address", Reason: "recipient box overlaps the return address box"}
	}

	d := c.DatePosition
	if d.X < 0 || d.X > pageWidthIn || d.Y < 0 || d.Y > pageHeightIn {
		return &ConfigError{Field: "date_position", Reason: "date position lies outside the page"}
	}
	switch d.Alignment {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		return &ConfigError{Field: "date_position", Reason: "unknown alignment"}
	}

	if c.BodyStartY <= 0 || c.BodyStartY >= pageHeightIn {
		return &ConfigError{Field: "body_start_y", Reason: "body start must lie inside the page"}
	}

	f := c.Formatting
	if !knownFamily(f.FontFamily) {
		return &ConfigError{Field: "formatting", Reason: "unknown font family " + f.FontFamily}
	}
	if f.FontSize <= 0 {
		return &ConfigError{Field: "formatting", Reason: "font size must be positive"}
	}
	if f.LineSpacing <= 0 {
		return &ConfigError{Field: "formatting", Reason: "line spacing must be positive"}
	}
	if f.ParagraphSpacing < 0 {
		return &ConfigError{Field: "formatting", Reason: "paragraph spacing must be non-negative"}
	}
	if f.IndentSize < 0 {
		return &ConfigError{Field: "formatting", Reason: "indent size must be non-negative"}
	}
	if f.IndentParagraphs && f.IndentSize >= pageWidthIn-m.Left-m.Right {
		return &ConfigError{Field: "formatting", Reason: "indent consumes the whole text width"}
	}

	for _, pos := range c.FoldLines.Positions {
		if pos <= 0 || pos >= pageHeightIn {
			return &ConfigError{Field: "fold_lines", Reason: "fold position lies outside the page"}
		}
	}
	if c.FoldLines.Enabled && c.FoldLines.Style.Width <= 0 {
		return &ConfigError{Field: "fold_lines", Reason: "stroke width must be positive"}
	}

	if c.Header.FontSize <= 0 {
		return &ConfigError{Field: "header", Reason: "font size must be positive"}
	}
	if c.Footer.FontSize <= 0 {
		return &ConfigError{Field: "footer", Reason: "font size must be positive"}
	}
	return nil
}

func validateAddressBox(field string, b AddressPosition) error {
	if b.X < 0 || b.Y < 0 || b.Width <= 0 || b.Height < 0 {
		return &ConfigError{Field: field, Reason: "box coordinates must be non-negative and width positive"}
	}
	if b.X+b.Width > pageWidthIn || b.Y+b.effectiveHeight() > pageHeightIn {
		return &ConfigError{Field: field, Reason: "box extends beyond the page"}
	}
	return nil
}

// effectiveHeight substitutes a nominal height for overlap checks when the
// box height is unconstrained.
func (b AddressPosition) effectiveHeight() float64 {
	if b.Height > 0 {
		return b.Height
	}
	return 1.0
}

func boxesOverlap(a, b AddressPosition) bool {
	if a.X+a.Width <= b.X || b.X+b.Width <= a.X {
		return false
	}
	if a.Y+a.effectiveHeight() <= b.Y || b.Y+b.effectiveHeight() <= a.Y {
		return false
	}
	return true
}

func knownFamily(name string) bool {
	for _, f := range Families {
		if f == name {
			return true
		}
	}
	return false
}
