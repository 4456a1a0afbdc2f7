package response

import (
	"regexp"
	"strings"
)

const FallbackAnswer = "I'm sorry, I couldn't generate a response."

const (
	ConfidenceHigh   = "HIGH"
	ConfidenceMedium = "MEDIUM"
	ConfidenceLow    = "LOW"
)

var (
	bracketToken  = regexp.MustCompile(`\[.*?\]`)
	citationToken = regexp.MustCompile(`\[([^\[\]:]+:[^\[\]]+)\]`)
	confidenceTag = regexp.MustCompile(`(?i)confidence(?:\s+level)?\s*:?\s*\[?\s*(HIGH|MEDIUM|LOW)\b`)
)

// ChatAnswer returns raw verbatim unless the model produced nothing.
func ChatAnswer(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return FallbackAnswer
	}
	return raw
}

// SpeechText drops bracketed citations and confidence tags so they are not read aloud.
func SpeechText(answer string) string {
	return bracketToken.ReplaceAllString(answer, "")
}

// Citations lists distinct [filename:chunk] references in order of first use.
// The model is only asked to cite, so an answer may have none.
func Citations(answer string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range citationToken.FindAllStringSubmatch(answer, -1) {
		ref := strings.TrimSpace(m[1])
		if ref == "" || seen[ref] {
			continue
		}
		seen[ref] = true
		out = append(out, ref)
	}
	return out
}

// Confidence returns HIGH, MEDIUM or LOW when the answer states one, else "".
func Confidence(answer string) string {
	m := confidenceTag.FindStringSubmatch(answer)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1])
}
