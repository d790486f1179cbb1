package letter

import (
	"regexp"
	"strconv"
)

var placeholderPattern = regexp.MustCompile(`\{(page|total|formatted_date)\}`)

// expandPlaceholders substitutes {page}, {total} and {formatted_date} in a
// header or footer template. Unknown braces are left untouched.
func expandPlaceholders(text string, page, total int, formattedDate string) string {
	if text == "" {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		switch match {
		case "{page}":
			return strconv.Itoa(page)
		case "{total}":
			return strconv.Itoa(total)
		case "{formatted_date}":
			return formattedDate
		}
		return match
	})
}
