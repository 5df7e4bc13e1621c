package logic

import (
	"strings"
	"unicode"

	"gadgetfind/internal/domain"
)

// Filter returns the items whose title contains query, ignoring case, in catalog order.
// A blank query matches nothing. The query itself is matched untrimmed.
func Filter(items []domain.Item, query string) []domain.Item {
	results := []domain.Item{}
	if strings.TrimSpace(query) == "" {
		return results
	}

	q := foldRunes(query)
	for _, item := range items {
		if indexFold(foldRunes(item.Title), q) >= 0 {
			results = append(results, item)
		}
	}
	return results
}

// Matches reports whether title contains query, ignoring case.
// An empty query matches nothing.
func Matches(title, query string) bool {
	if query == "" {
		return false
	}
	return indexFold(foldRunes(title), foldRunes(query)) >= 0
}

// foldRunes lowercases s rune by rune so offsets line up with the original runes
func foldRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

// indexFold returns the rune offset of the first occurrence of needle in haystack, or -1
func indexFold(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	last := len(haystack) - len(needle)
outer:
	for i := 0; i <= last; i++ {
		for j, r := range needle {
			if haystack[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}
