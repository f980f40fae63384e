package textutil

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnumPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	spacePattern    = regexp.MustCompile(`\s+`)
	yearHintPattern = regexp.MustCompile(`^(.*?)\s*[\(\[]((?:18|19|20)\d{2})[\)\]]\s*$`)
)

func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeTitle lowercases a title, folds compatibility forms and
// diacritics, turns "&" into "and" and collapses punctuation to spaces.
func NormalizeTitle(title string) string {
	s := strings.TrimSpace(title)
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	s = stripDiacritics(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", " and ")
	s = nonAlnumPattern.ReplaceAllString(s, " ")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SplitYearHint separates a bracketed trailing release year from a title,
// accepting "Heat (1995)" and "Heat [1995]". Bare years are left alone so
// titles like "Blade Runner 2049" survive.
func SplitYearHint(input string) (string, int) {
	input = strings.TrimSpace(input)
	match := yearHintPattern.FindStringSubmatch(input)
	if match == nil || strings.TrimSpace(match[1]) == "" {
		return input, 0
	}
	year, err := strconv.Atoi(match[2])
	if err != nil {
		return input, 0
	}
	return strings.TrimSpace(match[1]), year
}

// ReleaseYear returns the year of a YYYY-MM-DD date, or "N/A".
func ReleaseYear(date string) string {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return "N/A"
	}
	if _, err := strconv.Atoi(date[:4]); err != nil {
		return "N/A"
	}
	return date[:4]
}
