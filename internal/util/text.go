package util

import (
	"regexp"
	"strings"
)

var reSpaces = regexp.MustCompile(`\s+`)

// titleSynonyms rewrites long-form modality phrases to the abbreviation used
// in catalog titles. Order matters and every rule is applied: a title may
// carry more than one long-form phrase.
var titleSynonyms = []struct {
	phrase string
	abbr   string
}{
	{"tomografia computadorizada de", "tc"},
	{"tomografia computadorizada", "tc"},
	{"ressonância magnética de", "rm"},
	{"ressonância magnética", "rm"},
	{"radiografia de", "rx"},
	{"radiografia", "rx"},
	{"ultrassonografia de", "usg"},
	{"ultrassonografia", "usg"},
	{"ultrassom de", "usg"},
	{"ultrassom", "usg"},
}

// NormalizeTitle reduces a template title to a comparison key. The result is
// never displayed.
func NormalizeTitle(input string) string {
	s := strings.ToLower(input)
	for _, rule := range titleSynonyms {
		s = strings.ReplaceAll(s, rule.phrase, rule.abbr)
	}
	s = strings.ReplaceAll(s, "–", "-")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeModality folds the historical US spelling into USG so the two
// compare equal. Every other code passes through uppercased.
func NormalizeModality(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "US" {
		return "USG"
	}
	return c
}

// ContainsFold reports whether substr occurs in s ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
