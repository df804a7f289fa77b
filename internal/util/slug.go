// Package util holds small string helpers shared across packages.
package util

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases input, folds accents and joins alphanumeric runs with
// single hyphens.
func Slugify(input string) string {
	folded, _, err := transform.String(foldAccents(), input)
	if err != nil {
		folded = input
	}

	s := strings.ToLower(strings.TrimSpace(folded))
	s = nonSlugChars.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// UniqueSlug derives a slug from title that taken does not report as used.
// An empty slug becomes "post-<id>"; collisions get the next sequential id
// appended, then a counter.
func UniqueSlug(title string, nextID int, taken func(string) bool) string {
	base := Slugify(title)
	if base == "" {
		base = "post-" + strconv.Itoa(nextID)
	}
	if !taken(base) {
		return base
	}

	candidate := base + "-" + strconv.Itoa(nextID)
	for n := 2; taken(candidate); n++ {
		candidate = base + "-" + strconv.Itoa(nextID) + "-" + strconv.Itoa(n)
	}

	return candidate
}

func foldAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
