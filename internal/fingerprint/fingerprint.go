package fingerprint

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Of returns the letter-frequency fingerprint of word: the occurrence count
// of each distinct rune, sorted in descending order. Case is ignored.
func Of(word string) []int {
	counts := make(map[rune]int)
	for _, r := range strings.ToLower(word) {
		counts[r]++
	}

	fp := make([]int, 0, len(counts))
	for _, n := range counts {
		fp = append(fp, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(fp)))
	return fp
}

// Equal reports whether two words share a fingerprint
func Equal(a, b string) bool {
	fa, fb := Of(a), Of(b)
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if fa[i] != fb[i] {
			return false
		}
	}
	return true
}

// Normalize trims and lower-cases a word using the casing rules of lang
func Normalize(lang, word string) string {
	return cases.Lower(language.Make(lang)).String(strings.TrimSpace(word))
}
