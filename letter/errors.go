package letter

import "fmt"

// ConfigError reports a configuration value that violates a structural
// invariant. It is returned by Config.Validate and never surfaces during
// rendering.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("letter: invalid config %s: %s", e.Field, e.Reason)
}

// ContentError reports a paragraph that cannot fit within one page's content
// height even on an empty page. Paragraphs are atomic, so this is the one
// structurally unrecoverable input.
type ContentError struct {
	Paragraph int
	Lines     int
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("letter: paragraph %d (%d wrapped lines) is taller than a page", e.Paragraph, e.Lines)
}

// SurfaceError wraps a failure reported by the drawing surface.
type SurfaceError struct {
	Err error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("letter: drawing surface failed: %v", e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }

// PageCountError reports a divergence between the simulated and the realized
// page count. The two passes share one layout core, so this indicates a
// defect rather than bad input.
type PageCountError struct {
	Simulated int
	Rendered  int
}

func (e *PageCountError) Error() string {
	return fmt.Sprintf("letter: simulated %d pages but rendered %d", e.Simulated, e.Rendered)
}
