package catalog

import (
	"regexp"
	"strings"

	"laudos/internal"
)

var (
	reBilateral   = regexp.MustCompile(`(?i)\s*-?\s*bilateral`)
	reLeft        = regexp.MustCompile(`(?i)\s*-?\s*esquerd[oa]`)
	reRight       = regexp.MustCompile(`(?i)\s*-?\s*direit[oa]`)
	reEmptyParens = regexp.MustCompile(`\(\s*\)`)
	reSpaceRuns   = regexp.MustCompile(`\s+`)
)

// ExtractLaterality detects a side indicator embedded in a free-text exam
// name, strips it and returns the clean base name with the side as a tagged
// value. Bilateral is checked before the single sides. The function never
// re-appends a side; that is the caller's job via AppendSide.
func ExtractLaterality(rawName string) (cleanName string, side internal.Laterality) {
	lower := strings.ToLower(rawName)

	var re *regexp.Regexp
	switch {
	case strings.Contains(lower, "bilateral"):
		side = internal.SideBilateral
		re = reBilateral
	case strings.Contains(lower, "esquerdo"), strings.Contains(lower, "esquerda"):
		side = internal.SideLeft
		re = reLeft
	case strings.Contains(lower, "direito"), strings.Contains(lower, "direita"):
		side = internal.SideRight
		re = reRight
	default:
		return strings.TrimSpace(rawName), internal.SideNone
	}

	return cleanup(removeFirst(re, rawName)), side
}

// AppendSide rebuilds a display name from a clean base name and a chosen
// side. Used when the user picks a catalog entry with laterality.
func AppendSide(cleanName string, side internal.Laterality) string {
	if side == internal.SideNone {
		return cleanName
	}
	return cleanName + " " + side.String()
}

func removeFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + " " + s[loc[1]:]
}

// cleanup repairs what the removal leaves behind: an empty trailing
// parenthetical, a dangling hyphen, runs of whitespace.
func cleanup(s string) string {
	s = reEmptyParens.ReplaceAllString(s, " ")
	s = reSpaceRuns.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "-")
	return strings.TrimSpace(s)
}
