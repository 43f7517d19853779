// Package matching computes semantic and keyword-overlap similarity between
// a job description and a resume, combined into a weighted score.
package matching

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/catalog"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// specialChars matches everything outside word characters, whitespace,
	// and the token characters '.', '+', '#', '-'.
	specialChars = regexp.MustCompile(`[^\w\s.+#-]`)
)

// PreprocessText normalizes text before embedding: lower-case, collapse
// whitespace runs, strip special characters, then rewrite token variants
// (c++ -> cpp, node.js -> nodejs, ...) from the fixed normalization table.
func PreprocessText(text string) string {
	text = strings.ToLower(text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = specialChars.ReplaceAllString(text, " ")

	for _, norm := range catalog.TokenNormalizations {
		text = strings.ReplaceAll(text, norm.From, norm.To)
	}

	return strings.TrimSpace(text)
}
