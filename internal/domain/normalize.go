package domain

import (
	"sort"
	"strings"
	"unicode"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// NormalizeKeywords lowercases, trims and de-duplicates keywords.
// Empty entries are dropped. The result is sorted.
func NormalizeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = NormalizeText(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Tokenize splits text into lowercase word tokens. Letters and digits of any
// script are kept; everything else separates tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// SharedKeywords returns the keywords present in both a and b, sorted.
func SharedKeywords(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(a))
	for _, k := range NormalizeKeywords(a) {
		set[k] = struct{}{}
	}
	var out []string
	for _, k := range NormalizeKeywords(b) {
		if _, ok := set[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// EqualFoldPtr reports whether both strings are set and equal ignoring case
// and surrounding whitespace.
func EqualFoldPtr(a, b *string) bool {
	if a == nil || b == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(*a), strings.TrimSpace(*b))
}
