package novel

import (
	"sort"
	"unicode"
)

// fingerprintLen is the number of significant runes compared between bodies.
const fingerprintLen = 5

// Fingerprint returns the first five Han ideographs or ASCII alphanumerics of
// body. Punctuation, whitespace and every other rune are skipped.
func Fingerprint(body string) string {
	fp := make([]rune, 0, fingerprintLen)
	for _, r := range body {
		if !significant(r) {
			continue
		}
		fp = append(fp, r)
		if len(fp) == fingerprintLen {
			break
		}
	}
	return string(fp)
}

func significant(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	default:
		return unicode.Is(unicode.Han, r)
	}
}

// Dedupe removes repeated chapters. Chapters sharing a number are compared in
// order of appearance: the first is always kept, and a later one is dropped
// when its fingerprint is non-empty and equals the fingerprint of any chapter
// already kept for that number. The result lists numbered chapters in
// ascending order followed by unnumbered chapters in their original order.
func Dedupe(chapters []Chapter) []Chapter {
	kept := make(map[int][]string)
	var numbered, unnumbered []Chapter

	for _, c := range chapters {
		if !c.Numbered {
			unnumbered = append(unnumbered, c)
			continue
		}

		fps, seen := kept[c.Number]
		fp := Fingerprint(c.Body)
		if seen && isDuplicate(fp, fps) {
			continue
		}
		kept[c.Number] = append(fps, fp)
		numbered = append(numbered, c)
	}

	sort.SliceStable(numbered, func(i, j int) bool {
		return numbered[i].Number < numbered[j].Number
	})
	return append(numbered, unnumbered...)
}

func isDuplicate(fp string, kept []string) bool {
	if fp == "" {
		return false
	}
	for _, k := range kept {
		if k == fp {
			return true
		}
	}
	return false
}
