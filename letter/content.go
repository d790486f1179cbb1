package letter

import "strings"

// Content is the result of splitting a drafted letter text into the parts a
// Request needs.
type Content struct {
	Salutation string
	Paragraphs []string
	Closing    string
}

var closingPhrases = []string{
	"Sincerely", "Respectfully", "Best regards", "Thank you", "Yours truly",
}

// ParseContent splits free-form letter text into salutation, body
// paragraphs and closing. Paragraphs are separated by blank lines; an
// ALL-CAPS heading line always becomes its own paragraph. Missing parts
// fall back to conventional defaults.
func ParseContent(text string) Content {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	salutation := "Dear Senator"
	salutationIdx := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "Dear") {
			salutation = strings.TrimRight(strings.TrimSpace(line), ":,")
			salutationIdx = i
			break
		}
	}

	closing := defaultClosing
	closingIdx := len(lines) - 1
	for i := len(lines) - 1; i > salutationIdx; i-- {
		line := strings.TrimSuffix(strings.TrimSpace(lines[i]), ",")
		if containsClosingPhrase(line) {
			closing = line
			closingIdx = i
			break
		}
	}

	if closingIdx < salutationIdx+1 {
		closingIdx = salutationIdx + 1
	}
	if closingIdx > len(lines) {
		closingIdx = len(lines)
	}

	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}
	for _, raw := range lines[salutationIdx+1 : closingIdx] {
		line := strings.TrimSpace(raw)
		if line == "" {
			flush()
			continue
		}
		if isUpper(line) && len(strings.Fields(line)) <= 10 {
			flush()
			paragraphs = append(paragraphs, line)
			continue
		}
		current = append(current, line)
	}
	flush()

	return Content{Salutation: salutation, Paragraphs: paragraphs, Closing: closing}
}

func containsClosingPhrase(line string) bool {
	for _, phrase := range closingPhrases {
		if strings.Contains(line, phrase) {
			return true
		}
	}
	return false
}
