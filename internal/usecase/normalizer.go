package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
	bracketCharsRegex   = regexp.MustCompile(`[()\[\]]`)
	fragmentSplitRegex  = regexp.MustCompile(`[,;./]`)
	insCodeRegex        = regexp.MustCompile(`^ins\s*(\d+)`)
	eCodeRegex          = regexp.MustCompile(`^e\s*(\d+)`)
)

// NormalizeToken canonicalizes a single ingredient fragment: lowercase,
// periods removed, whitespace collapsed, and additive codes folded into the
// "e<digits>" form so that "INS 211", "E 211" and "e211" all compare equal.
func NormalizeToken(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	token = strings.ReplaceAll(token, ".", "")
	token = multipleSpacesRegex.ReplaceAllString(token, " ")
	token = strings.TrimSpace(token)
	token = insCodeRegex.ReplaceAllString(token, "e$1")
	token = eCodeRegex.ReplaceAllString(token, "e$1")
	return token
}

// ExtractTokens splits a printed ingredient list into unique canonical
// tokens, preserving first-occurrence order. Brackets become separators so
// parenthetical sub-ingredient lists split into their own tokens. An empty
// input yields no tokens.
func ExtractTokens(ingredientsRaw string) []string {
	if strings.TrimSpace(ingredientsRaw) == "" {
		return nil
	}

	cleaned := bracketCharsRegex.ReplaceAllString(ingredientsRaw, ",")
	cleaned = multipleSpacesRegex.ReplaceAllString(cleaned, " ")

	var tokens []string
	seen := make(map[string]bool)
	for _, fragment := range fragmentSplitRegex.Split(cleaned, -1) {
		token := NormalizeToken(fragment)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}

	return tokens
}
