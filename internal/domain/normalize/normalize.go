package normalize

import "strings"

// abbreviations maps common shorthand skill names to their canonical form.
// Values must already be in canonical form so Normalize stays idempotent.
var abbreviations = map[string]string{
	"py":       "python",
	"js":       "javascript",
	"ts":       "typescript",
	"ml":       "machine learning",
	"dl":       "deep learning",
	"ai":       "artificial intelligence",
	"nlp":      "natural language processing",
	"cv":       "computer vision",
	"k8s":      "kubernetes",
	"postgres": "postgresql",
	"pg":       "postgresql",
	"tf":       "tensorflow",
	"oop":      "object oriented programming",
}

// Normalize canonicalizes a raw skill string: lowercase, trimmed, surrounding
// punctuation stripped, whitespace collapsed, known abbreviations expanded.
// Normalize(Normalize(s)) == Normalize(s) for all s.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, "\"'`,;:!?()[]")
	s = strings.Join(strings.Fields(s), " ")
	if canonical, ok := abbreviations[s]; ok {
		return canonical
	}
	return s
}

// List splits a delimited skill string ("," ";" or "|") and normalizes each
// part, dropping empty entries and duplicates while preserving order.
func List(raw string) []string {
	raw = strings.ReplaceAll(raw, "|", ",")
	raw = strings.ReplaceAll(raw, ";", ",")
	return Slice(strings.Split(raw, ","))
}

// Slice normalizes every entry, dropping empties and duplicates while
// preserving the original order.
func Slice(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		n := Normalize(it)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Set is Slice with set semantics for membership checks.
func Set(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		n := Normalize(it)
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return set
}
