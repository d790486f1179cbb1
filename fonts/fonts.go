// Package fonts carries the byte data for the closed set of faces the
// letter engine may use. Each family provides a regular and a bold cut.
package fonts

import (
	"fmt"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10regular"
)

// Family is one named face with both cuts.
type Family struct {
	Regular []byte
	Bold    []byte
}

var families = map[string]Family{
	"roman": {Regular: lmroman10regular.TTF, Bold: lmroman10bold.TTF},
	"sans":  {Regular: lmsans10regular.TTF, Bold: lmsans10bold.TTF},
}

// Load returns the byte data for a named family.
func Load(name string) (Family, error) {
	fam, ok := families[name]
	if !ok {
		return Family{}, fmt.Errorf("fonts: unknown family %q", name)
	}
	return fam, nil
}

// Names lists the available family names.
func Names() []string {
	out := make([]string, 0, len(families))
	for name := range families {
		out = append(out, name)
	}
	return out
}
